package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"gantt-proyectos/handlers"
	"gantt-proyectos/utilities"

	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

func LoadRoutes() {
	// Inicializar el sistema de logs
	utilities.InitLogger()

	r := mux.NewRouter()

	// Middleware de logging global en todas las rutas
	r.Use(handlers.LoggingMiddleware)

	// --- Autenticación (solo variante alojada) ---
	r.HandleFunc("/auth/finalize-login", handlers.FinalizeFirebaseLoginHandler).Methods("POST")

	// --- Tabla de tareas ---
	r.HandleFunc("/tasks/list", handlers.AuthMiddleware(handlers.ListTasksHandler)).Methods("GET")
	r.HandleFunc("/tasks/save", handlers.AuthMiddleware(handlers.SaveTasksHandler)).Methods("PUT")
	r.HandleFunc("/tasks/upsert", handlers.AuthMiddleware(handlers.UpsertTasksHandler)).Methods("POST")
	r.HandleFunc("/tasks/delete", handlers.AuthMiddleware(handlers.DeleteTasksHandler)).Methods("POST")
	r.HandleFunc("/tasks/template", handlers.AuthMiddleware(handlers.NewTaskTemplateHandler)).Methods("GET")
	r.HandleFunc("/tasks/calendar", handlers.AuthMiddleware(handlers.CalendarHandler)).Methods("GET")

	// --- Export ---
	r.HandleFunc("/tasks/export/csv", handlers.AuthMiddleware(handlers.ExportCSVHandler)).Methods("GET")
	r.HandleFunc("/tasks/export/ics", handlers.AuthMiddleware(handlers.ExportICSHandler)).Methods("GET")
	r.HandleFunc("/tasks/export/template", handlers.AuthMiddleware(handlers.ExportTemplateHandler)).Methods("GET")

	// --- Notificaciones ---
	r.HandleFunc("/tasks/notify", handlers.AuthMiddleware(handlers.NotifyTasksHandler)).Methods("POST")

	// --- Directorio de usuarios ---
	r.HandleFunc("/users/list", handlers.AuthMiddleware(handlers.GetActiveUsersHandler)).Methods("GET")

	// Configuración del CORS
	headers := gorillahandlers.AllowedHeaders([]string{"X-Requested-With", "Content-Type", "Authorization"})
	methods := gorillahandlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})

	allowedOriginsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	var allowedOrigins []string
	if allowedOriginsEnv == "" {
		allowedOrigins = []string{"*"}
		utilities.LogInfo("CORS_ALLOWED_ORIGINS no definida, se permiten todos los orígenes ('*'). Definila para mayor seguridad en producción.")
	} else {
		allowedOrigins = strings.Split(allowedOriginsEnv, ",")
	}
	origins := gorillahandlers.AllowedOrigins(allowedOrigins)
	utilities.LogInfo("Configurando CORS con orígenes permitidos: %v", allowedOrigins)

	handler := gorillahandlers.CORS(headers, methods, origins)(r)

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	utilities.LogInfo("Servidor iniciado en el puerto %s", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
