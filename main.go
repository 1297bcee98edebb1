package main

import (
	"log"
	"os"

	"gantt-proyectos/database"
	"gantt-proyectos/handlers"
	"gantt-proyectos/storage"

	"github.com/joho/godotenv"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No se encontró el archivo .env, se usa el entorno del proceso")
	}

	if database.Configurado() {
		// Variante alojada: Postgres con tabla de tareas y directorio de usuarios
		db, err := database.ConnectPostgres()
		if err != nil {
			log.Fatalf("Error al conectar a la base de datos: %v", err)
		}
		defer db.Close()

		handlers.InitDB(db)
		handlers.InitStores(&storage.TareaStore{DB: db}, &storage.UserStore{DB: db})
	} else {
		// Variante local: archivo CSV, un solo usuario, sin directorio
		path := os.Getenv("TASKS_FILE")
		if path == "" {
			path = "tareas.txt"
		}
		log.Printf("Sin base de datos configurada: se usa el archivo local %s", path)
		handlers.InitStores(&storage.ArchivoStore{Path: path}, nil)
	}

	LoadRoutes()
}
