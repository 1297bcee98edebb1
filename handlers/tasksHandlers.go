package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"gantt-proyectos/models"
	"gantt-proyectos/schema"
	"gantt-proyectos/utilities"

	"github.com/google/uuid"
)

// ListTasksHandler lista las tareas, con filtros de vista opcionales por
// query param: status, priority, project (separados por coma),
// collaborator (subcadena), desde, hasta (YYYY-MM-DD).
func ListTasksHandler(w http.ResponseWriter, r *http.Request) {
	utilities.LogDebug("Iniciando listado de tareas")

	q := r.URL.Query()
	// status y priority se filtran en el servidor de datos,
	// el resto en memoria
	tareas, err := tareaRepo.FetchFiltered(q.Get("status"), q.Get("priority"))
	if err != nil {
		utilities.LogError(err, "Error al buscar tareas")
		http.Error(w, "Error al leer la tabla de tareas", http.StatusInternalServerError)
		return
	}

	filtro := schema.Filtro{
		Collaborator: q.Get("collaborator"),
	}
	if p := q.Get("project"); p != "" {
		filtro.Projects = strings.Split(p, ",")
	}
	if d := q.Get("desde"); d != "" {
		if t, err := time.Parse("2006-01-02", d); err == nil {
			filtro.StartAfter = &t
		}
	}
	if h := q.Get("hasta"); h != "" {
		if t, err := time.Parse("2006-01-02", h); err == nil {
			filtro.EndBefore = &t
		}
	}
	tareas = filtro.Aplicar(tareas)

	utilities.LogInfo("Tareas listadas con éxito - total: %d", len(tareas))
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tareas)
}

// SaveTasksHandler guarda la tabla completa tal como quedó en el editor:
// normaliza, reemplaza todo y devuelve la tabla corregida con los warnings.
func SaveTasksHandler(w http.ResponseWriter, r *http.Request) {
	utilities.LogDebug("Iniciando guardado de la tabla completa")

	var filas []schema.Fila
	if err := json.NewDecoder(r.Body).Decode(&filas); err != nil {
		utilities.LogError(err, "Error al decodificar el JSON de tareas")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	tareas, warnings := schema.Normalize(filas)

	if err := tareaRepo.ReplaceAll(tareas); err != nil {
		utilities.LogError(err, "Error al guardar la tabla de tareas")
		// la tabla en memoria del cliente queda intacta; se informa el fallo
		http.Error(w, "No se pudo guardar la tabla de tareas", http.StatusInternalServerError)
		return
	}

	utilities.LogInfo("Tabla guardada con éxito - %d tarea(s), %d warning(s)", len(tareas), len(warnings))
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"tasks":    tareas,
		"warnings": warnings,
	})
}

// UpsertTasksHandler inserta o actualiza un subconjunto de filas editadas
// (variante alojada), previa normalización.
func UpsertTasksHandler(w http.ResponseWriter, r *http.Request) {
	utilities.LogDebug("Iniciando upsert de tareas")

	var filas []schema.Fila
	if err := json.NewDecoder(r.Body).Decode(&filas); err != nil {
		utilities.LogError(err, "Error al decodificar el JSON de tareas")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	tareas, warnings := schema.Normalize(filas)

	if err := tareaRepo.Upsert(tareas); err != nil {
		utilities.LogError(err, "Error en el upsert de tareas")
		http.Error(w, "No se pudo actualizar la tabla de tareas", http.StatusInternalServerError)
		return
	}

	utilities.LogInfo("Upsert con éxito - %d tarea(s)", len(tareas))
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"tasks":    tareas,
		"warnings": warnings,
	})
}

// DeleteTasksHandler borra tareas por id. Las filas nunca persistidas se
// descartan en el cliente por su temp_id y no llegan acá.
func DeleteTasksHandler(w http.ResponseWriter, r *http.Request) {
	utilities.LogDebug("Iniciando borrado de tareas")

	var input struct {
		IDs []int `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utilities.LogError(err, "Error al decodificar el JSON de borrado")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if len(input.IDs) == 0 {
		http.Error(w, "No hay IDs para borrar", http.StatusBadRequest)
		return
	}

	if err := tareaRepo.DeleteByIDs(input.IDs); err != nil {
		utilities.LogError(err, "Error al borrar tareas")
		http.Error(w, "No se pudieron borrar las tareas", http.StatusInternalServerError)
		return
	}

	utilities.LogInfo("Tareas borradas con éxito: %v", input.IDs)
	w.WriteHeader(http.StatusNoContent)
}

// NewTaskTemplateHandler devuelve la fila vacía para "agregar tarea".
// Lleva un temp_id generado en el servidor; el id real se asigna recién
// al normalizar el guardado.
func NewTaskTemplateHandler(w http.ResponseWriter, r *http.Request) {
	hoy := time.Now().Truncate(24 * time.Hour)
	fin := hoy.AddDate(0, 0, 7)

	plantilla := models.Tarea{
		TempID:   uuid.NewString(),
		Project:  "Nuevo Proyecto",
		Task:     "Nueva tarea",
		Start:    &hoy,
		End:      &fin,
		Progress: 0,
		Status:   models.StatusDefault,
		Priority: models.PriorityDefault,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(plantilla)
}

// CalendarHandler devuelve la vista mensual: una entrada por tarea y día.
// Query param mes=YYYY-MM (por defecto, el mes actual).
func CalendarHandler(w http.ResponseWriter, r *http.Request) {
	utilities.LogDebug("Iniciando vista de calendario")

	mes := time.Now()
	if m := r.URL.Query().Get("mes"); m != "" {
		parsed, err := time.Parse("2006-01", m)
		if err != nil {
			http.Error(w, "Mes inválido, se espera YYYY-MM", http.StatusBadRequest)
			return
		}
		mes = parsed
	}

	tareas, err := tareaRepo.FetchAll()
	if err != nil {
		utilities.LogError(err, "Error al buscar tareas para el calendario")
		http.Error(w, "Error al leer la tabla de tareas", http.StatusInternalServerError)
		return
	}

	entradas := schema.CalendarioMensual(tareas, mes)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entradas)
}
