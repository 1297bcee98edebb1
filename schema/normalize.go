package schema

import (
	"fmt"

	"gantt-proyectos/models"
)

// Fila es una fila cruda tal como llega del editor, de un CSV o de la API:
// columnas en cualquier subconjunto y orden, celdas de cualquier tipo.
type Fila map[string]any

// Normalize convierte una tabla arbitraria en la tabla canónica de tareas.
// Nunca falla: toda entrada malformada se corrige y la corrección se reporta
// como warning legible (uno por categoría, no por fila). No hace I/O.
func Normalize(filas []Fila) ([]models.Tarea, []string) {
	tareas := make([]models.Tarea, 0, len(filas))
	var warnings []string

	maxID := 0
	sinID := 0
	invertidas := 0
	recortadas := 0
	vistos := map[int]bool{}

	for _, f := range filas {
		var t models.Tarea

		// Un id duplicado se trata como faltante para garantizar unicidad.
		if id, ok := coerceEntero(f["id"]); ok && id > 0 {
			if id > maxID {
				maxID = id
			}
			if vistos[id] {
				sinID++
			} else {
				vistos[id] = true
				t.ID = id
			}
		} else {
			sinID++
		}
		t.TempID = coerceTexto(f["temp_id"])

		t.Project = coerceTexto(f["project"])
		t.Task = coerceTexto(f["task"])
		t.Details = coerceTexto(f["details"])
		t.Owner = coerceTexto(f["owner"])
		t.Collaborators = SplitLista(f["collaborators"])

		t.Start = coerceFecha(f["start"])
		t.End = coerceFecha(f["end"])
		t.BaselineStart = coerceFecha(f["baseline_start"])
		t.BaselineEnd = coerceFecha(f["baseline_end"])

		if t.Start != nil && t.End != nil && t.Start.After(*t.End) {
			t.Start, t.End = t.End, t.Start
			invertidas++
		}

		progreso, ok := coerceEntero(f["progress"])
		if !ok {
			progreso = 0
		}
		if progreso < 0 || progreso > 100 {
			recortadas++
		}
		if progreso < 0 {
			progreso = 0
		}
		if progreso > 100 {
			progreso = 100
		}
		t.Progress = progreso

		t.Status = coerceEnum(f["status"], models.Statuses, models.StatusDefault)
		t.Priority = coerceEnum(f["priority"], models.Priorities, models.PriorityDefault)
		t.Rag = coerceEnumOpt(f["rag"], models.RagValues)

		t.Milestone = coerceBool(f["milestone"])
		t.Phase = coerceTexto(f["phase"])
		t.Workstream = coerceTexto(f["workstream"])
		t.Tags = SplitLista(f["tags"])
		t.ExternalLink = coerceTexto(f["external_link"])

		tareas = append(tareas, t)
	}

	// Asignación secuencial de IDs faltantes, de arriba hacia abajo,
	// siempre por encima del máximo preexistente.
	if sinID > 0 {
		for i := range tareas {
			if tareas[i].ID == 0 {
				maxID++
				tareas[i].ID = maxID
			}
		}
		warnings = append(warnings, "Se autocompletaron IDs faltantes.")
	}
	if invertidas > 0 {
		warnings = append(warnings, fmt.Sprintf("%d fila(s) tenían start > end y se invirtieron.", invertidas))
	}
	if recortadas > 0 {
		warnings = append(warnings, "Se ajustó progress a [0,100].")
	}

	return tareas, warnings
}

// AFila devuelve la tarea como fila cruda. Normalize(AFila(t)) es la
// identidad para una tarea ya normalizada.
func AFila(t models.Tarea) Fila {
	f := Fila{
		"id":             t.ID,
		"project":        t.Project,
		"task":           t.Task,
		"details":        t.Details,
		"owner":          t.Owner,
		"collaborators":  t.Collaborators,
		"start":          t.Start,
		"end":            t.End,
		"baseline_start": t.BaselineStart,
		"baseline_end":   t.BaselineEnd,
		"progress":       t.Progress,
		"status":         t.Status,
		"priority":       t.Priority,
		"milestone":      t.Milestone,
		"phase":          t.Phase,
		"workstream":     t.Workstream,
		"tags":           t.Tags,
		"external_link":  t.ExternalLink,
	}
	if t.TempID != "" {
		f["temp_id"] = t.TempID
	}
	if t.Rag != nil {
		f["rag"] = *t.Rag
	}
	return f
}

// AFilas convierte la tabla completa, para renormalizar o exportar.
func AFilas(tareas []models.Tarea) []Fila {
	filas := make([]Fila, 0, len(tareas))
	for _, t := range tareas {
		filas = append(filas, AFila(t))
	}
	return filas
}
