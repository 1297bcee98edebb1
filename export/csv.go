package export

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"gantt-proyectos/models"
	"gantt-proyectos/schema"
)

// CSV serializa la tabla con las columnas canónicas, una fila por tarea.
func CSV(tareas []models.Tarea) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(models.Columnas); err != nil {
		return nil, err
	}
	for _, t := range tareas {
		if err := w.Write(RegistroCSV(t)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// PlantillaCSV devuelve un CSV vacío con solo el encabezado canónico,
// para descargar como plantilla de carga.
func PlantillaCSV() []byte {
	datos, _ := CSV(nil)
	return datos
}

// RegistroCSV devuelve la tarea como registro CSV en el orden canónico.
func RegistroCSV(t models.Tarea) []string {
	rag := ""
	if t.Rag != nil {
		rag = *t.Rag
	}
	milestone := "false"
	if t.Milestone {
		milestone = "true"
	}
	return []string{
		strconv.Itoa(t.ID),
		t.Project,
		t.Task,
		t.Details,
		t.Owner,
		schema.JoinLista(t.Collaborators),
		fechaCSV(t.Start),
		fechaCSV(t.End),
		fechaCSV(t.BaselineStart),
		fechaCSV(t.BaselineEnd),
		strconv.Itoa(t.Progress),
		t.Status,
		t.Priority,
		rag,
		milestone,
		t.Phase,
		t.Workstream,
		schema.JoinLista(t.Tags),
		t.ExternalLink,
	}
}

func fechaCSV(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
