package handlers

import (
	"net/http"

	"gantt-proyectos/export"
	"gantt-proyectos/utilities"
)

// ExportCSVHandler descarga la tabla completa como CSV canónico.
func ExportCSVHandler(w http.ResponseWriter, r *http.Request) {
	tareas, err := tareaRepo.FetchAll()
	if err != nil {
		utilities.LogError(err, "Error al buscar tareas para exportar")
		http.Error(w, "Error al leer la tabla de tareas", http.StatusInternalServerError)
		return
	}

	datos, err := export.CSV(tareas)
	if err != nil {
		utilities.LogError(err, "Error al serializar el CSV")
		http.Error(w, "Error al generar el CSV", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="gantt_tasks.csv"`)
	w.Write(datos)
}

// ExportICSHandler descarga el calendario: un evento de día completo por
// tarea con ambas fechas.
func ExportICSHandler(w http.ResponseWriter, r *http.Request) {
	tareas, err := tareaRepo.FetchAll()
	if err != nil {
		utilities.LogError(err, "Error al buscar tareas para exportar")
		http.Error(w, "Error al leer la tabla de tareas", http.StatusInternalServerError)
		return
	}

	nombreCal := r.URL.Query().Get("cal")
	if nombreCal == "" {
		nombreCal = "Proyectos"
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="gantt_calendar.ics"`)
	w.Write([]byte(export.ICS(tareas, nombreCal)))
}

// ExportTemplateHandler descarga la plantilla CSV vacía con el encabezado
// canónico.
func ExportTemplateHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="gantt_template.csv"`)
	w.Write(export.PlantillaCSV())
}
