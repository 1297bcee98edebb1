package handlers

import (
	"encoding/json"
	"net/http"

	"gantt-proyectos/models"
	"gantt-proyectos/utilities"
)

// GetActiveUsersHandler lista el directorio de usuarios activos
// (nombre y email), el que usa la resolución de destinatarios.
func GetActiveUsersHandler(w http.ResponseWriter, r *http.Request) {
	utilities.LogDebug("Iniciando listado de usuarios activos")

	usuarios := []models.Usuario{}
	if userRepo != nil {
		var err error
		usuarios, err = userRepo.ListActiveUsers()
		if err != nil {
			utilities.LogError(err, "Error al listar el directorio de usuarios")
			http.Error(w, "Error al leer el directorio de usuarios", http.StatusInternalServerError)
			return
		}
	}

	utilities.LogInfo("Usuarios listados con éxito - total: %d", len(usuarios))
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(usuarios)
}
