package schema

import (
	"sort"
	"strings"
	"time"

	"gantt-proyectos/models"
)

// Filtro son los filtros de vista. Solo afectan lo que se muestra,
// nunca lo que se persiste.
type Filtro struct {
	Projects     []string
	Statuses     []string
	Priorities   []string
	Collaborator string     // subcadena, sin distinguir mayúsculas
	StartAfter   *time.Time // conserva tareas sin fin o con fin >= esta fecha
	EndBefore    *time.Time // conserva tareas sin inicio o con inicio <= esta fecha
}

// Aplicar devuelve la vista filtrada sobre la tabla completa.
func (f Filtro) Aplicar(tareas []models.Tarea) []models.Tarea {
	out := make([]models.Tarea, 0, len(tareas))
	for _, t := range tareas {
		if len(f.Projects) > 0 && !contiene(f.Projects, t.Project) {
			continue
		}
		if len(f.Statuses) > 0 && !contiene(f.Statuses, t.Status) {
			continue
		}
		if len(f.Priorities) > 0 && !contiene(f.Priorities, t.Priority) {
			continue
		}
		if f.Collaborator != "" {
			sub := strings.ToLower(f.Collaborator)
			texto := strings.ToLower(JoinLista(t.Collaborators) + " " + t.Owner)
			if !strings.Contains(texto, sub) {
				continue
			}
		}
		if f.StartAfter != nil && t.End != nil && t.End.Before(*f.StartAfter) {
			continue
		}
		if f.EndBefore != nil && t.Start != nil && t.Start.After(*f.EndBefore) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func contiene(lista []string, v string) bool {
	for _, e := range lista {
		if e == v {
			return true
		}
	}
	return false
}

// EntradaCalendario es una celda de la vista mensual: una tarea activa
// en un día concreto.
type EntradaCalendario struct {
	Date          time.Time `json:"date"`
	Project       string    `json:"project"`
	Task          string    `json:"task"`
	Collaborators string    `json:"collaborators"`
	Progress      int       `json:"progress"`
	Status        string    `json:"status"`
}

// CalendarioMensual expande las tareas con ambas fechas en una fila por día
// dentro del mes indicado, ordenadas por fecha, proyecto y tarea.
func CalendarioMensual(tareas []models.Tarea, mes time.Time) []EntradaCalendario {
	inicioMes := time.Date(mes.Year(), mes.Month(), 1, 0, 0, 0, 0, time.UTC)
	finMes := inicioMes.AddDate(0, 1, -1)

	var entradas []EntradaCalendario
	for _, t := range tareas {
		if t.Start == nil || t.End == nil {
			continue
		}
		d := time.Date(t.Start.Year(), t.Start.Month(), t.Start.Day(), 0, 0, 0, 0, time.UTC)
		fin := time.Date(t.End.Year(), t.End.Month(), t.End.Day(), 0, 0, 0, 0, time.UTC)
		for !d.After(fin) {
			if !d.Before(inicioMes) && !d.After(finMes) {
				entradas = append(entradas, EntradaCalendario{
					Date:          d,
					Project:       t.Project,
					Task:          t.Task,
					Collaborators: JoinLista(t.Collaborators),
					Progress:      t.Progress,
					Status:        t.Status,
				})
			}
			d = d.AddDate(0, 0, 1)
		}
	}

	sort.Slice(entradas, func(i, j int) bool {
		if !entradas[i].Date.Equal(entradas[j].Date) {
			return entradas[i].Date.Before(entradas[j].Date)
		}
		if entradas[i].Project != entradas[j].Project {
			return entradas[i].Project < entradas[j].Project
		}
		return entradas[i].Task < entradas[j].Task
	})
	return entradas
}
