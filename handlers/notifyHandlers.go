package handlers

import (
	"encoding/json"
	"net/http"

	"gantt-proyectos/models"
	"gantt-proyectos/notify"
	"gantt-proyectos/utilities"
)

// NotifyTasksHandler resuelve destinatarios para las tareas seleccionadas y
// envía el digest (o solo lo renderiza, con solo_vista=true). Un directorio
// inaccesible degrada a "todos los nombres sin resolver"; un envío fallido
// no corta los restantes.
func NotifyTasksHandler(w http.ResponseWriter, r *http.Request) {
	utilities.LogDebug("Iniciando envío del digest de tareas")

	var input struct {
		IDs       []int `json:"ids"`
		SoloVista bool  `json:"solo_vista"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utilities.LogError(err, "Error al decodificar el JSON de notificación")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if len(input.IDs) == 0 {
		http.Error(w, "No hay tareas seleccionadas", http.StatusBadRequest)
		return
	}

	todas, err := tareaRepo.FetchAll()
	if err != nil {
		utilities.LogError(err, "Error al buscar las tareas seleccionadas")
		http.Error(w, "Error al leer la tabla de tareas", http.StatusInternalServerError)
		return
	}

	// selección en el orden pedido
	porID := map[int]models.Tarea{}
	for _, t := range todas {
		porID[t.ID] = t
	}
	seleccion := []models.Tarea{}
	for _, id := range input.IDs {
		if t, ok := porID[id]; ok {
			seleccion = append(seleccion, t)
		}
	}

	// directorio inaccesible o ausente: índice vacío, nunca un fallo
	indice := map[string]models.Usuario{}
	if userRepo != nil {
		usuarios, err := userRepo.ListActiveUsers()
		if err != nil {
			utilities.LogError(err, "Directorio de usuarios inaccesible, se degrada a sin cruces")
		} else {
			indice = notify.IndiceUsuarios(usuarios)
		}
	}

	mailer := notify.NewSMTPMailerDesdeEnv()
	var transporte notify.Mailer
	if mailer.Habilitado() {
		transporte = mailer
	} else if !input.SoloVista {
		utilities.LogInfo("SMTP no configurado: el digest no se envía")
	}

	resultado := notify.EnviarDigest(seleccion, indice, transporte, input.SoloVista)

	utilities.LogInfo("Digest procesado - destinatarios: %d, enviados: %d, fallidos: %d, sin resolver: %d",
		len(resultado.Recipients), resultado.Enviados, len(resultado.Fallidos), len(resultado.NoResueltos))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resultado)
}
