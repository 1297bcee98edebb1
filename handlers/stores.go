package handlers

import (
	"database/sql"

	"gantt-proyectos/storage"
	"gantt-proyectos/utilities"
)

var (
	db        *sql.DB
	tareaRepo storage.TareaRepo
	userRepo  storage.UserRepo
)

// InitDB inicializa la conexión con la base de datos
func InitDB(database *sql.DB) {
	utilities.LogInfo("Inicializando la conexión con la base de datos")
	db = database
}

// InitStores inyecta los colaboradores de persistencia. usuarios puede ser
// nil (variante de archivo local): la resolución de destinatarios degrada a
// "sin cruces" en vez de fallar.
func InitStores(tareas storage.TareaRepo, usuarios storage.UserRepo) {
	tareaRepo = tareas
	userRepo = usuarios
}
