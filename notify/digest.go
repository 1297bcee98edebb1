package notify

import (
	"fmt"
	"html"
	"strconv"
	"strings"
	"time"

	"gantt-proyectos/models"
	"gantt-proyectos/schema"
)

// Columnas del resumen, en el orden en que se muestran.
var columnasDigest = []string{
	"id", "project", "task", "details", "owner", "collaborators",
	"start", "end", "status", "priority", "progress", "rag", "external_link",
}

// ConstruirDigestHTML arma un único HTML con las filas seleccionadas.
// Se renderiza una sola vez por invocación; todos los destinatarios
// reciben exactamente el mismo contenido.
func ConstruirDigestHTML(tareas []models.Tarea) string {
	var b strings.Builder

	b.WriteString(`<div style="font-family:system-ui,-apple-system,Segoe UI,Roboto,Arial">` + "\n")
	b.WriteString("<h2>Resumen de tareas seleccionadas</h2>\n")
	b.WriteString(`<table cellspacing="0" cellpadding="0" style="border-collapse:collapse;width:100%;font-size:14px">` + "\n")

	b.WriteString("<thead><tr>")
	for _, c := range columnasDigest {
		b.WriteString(`<th style='text-align:left;padding:6px;border-bottom:2px solid #333'>` + c + "</th>")
	}
	b.WriteString("</tr></thead>\n<tbody>\n")

	for _, t := range tareas {
		b.WriteString("<tr>")
		for _, c := range columnasDigest {
			b.WriteString(`<td style='padding:6px;border:1px solid #ddd'>` + html.EscapeString(celdaDigest(t, c)) + "</td>")
		}
		b.WriteString("</tr>\n")
	}

	b.WriteString("</tbody>\n</table>\n")
	b.WriteString(`<p style="color:#666;margin-top:12px">Enviado automáticamente desde Gantt de Proyectos.</p>` + "\n")
	b.WriteString("</div>\n")
	return b.String()
}

func celdaDigest(t models.Tarea, col string) string {
	switch col {
	case "id":
		return strconv.Itoa(t.ID)
	case "project":
		return t.Project
	case "task":
		return t.Task
	case "details":
		return t.Details
	case "owner":
		return t.Owner
	case "collaborators":
		return schema.JoinLista(t.Collaborators)
	case "start":
		return fechaISO(t.Start)
	case "end":
		return fechaISO(t.End)
	case "status":
		return t.Status
	case "priority":
		return t.Priority
	case "progress":
		return strconv.Itoa(t.Progress)
	case "rag":
		if t.Rag != nil {
			return *t.Rag
		}
		return ""
	case "external_link":
		return t.ExternalLink
	}
	return ""
}

func fechaISO(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

// Asunto del digest: cantidad de tareas más el primer proyecto no vacío.
func Asunto(tareas []models.Tarea) string {
	asunto := fmt.Sprintf("[Gantt] Resumen de %d tarea(s)", len(tareas))
	for _, t := range tareas {
		if t.Project != "" {
			return asunto + " · " + t.Project
		}
	}
	return asunto
}
