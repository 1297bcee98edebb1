package export

import (
	"fmt"
	"strings"
	"time"

	"gantt-proyectos/models"
	"gantt-proyectos/schema"
)

// ICS exporta las tareas como calendario mínimo: un evento de día completo
// por tarea, abarcando start..end. Las tareas sin alguna de las dos fechas
// se omiten.
func ICS(tareas []models.Tarea, nombreCal string) string {
	lineas := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"X-WR-CALNAME:" + nombreCal,
		"PRODID:-//Gantt Proyectos//ES",
	}
	ahora := time.Now().UTC().Format("20060102T150405Z")

	for _, t := range tareas {
		if t.Start == nil || t.End == nil {
			continue
		}
		// DTEND es exclusivo en el formato: se corre un día
		dtstart := t.Start.Format("20060102")
		dtend := t.End.AddDate(0, 0, 1).Format("20060102")
		resumen := fmt.Sprintf("%s – %s (%d%%)", t.Project, t.Task, t.Progress)
		descripcion := fmt.Sprintf("Colaboradores: %s. Estado: %s.",
			schema.JoinLista(t.Collaborators), t.Status)

		lineas = append(lineas,
			"BEGIN:VEVENT",
			fmt.Sprintf("UID:%d@gantt-proyectos", t.ID),
			"DTSTAMP:"+ahora,
			"DTSTART;VALUE=DATE:"+dtstart,
			"DTEND;VALUE=DATE:"+dtend,
			"SUMMARY:"+resumen,
			"DESCRIPTION:"+descripcion,
			"END:VEVENT",
		)
	}

	lineas = append(lineas, "END:VCALENDAR")
	return strings.Join(lineas, "\n")
}
