package handlers

import (
	"net/http"
	"time"

	"gantt-proyectos/utilities"
)

// LoggingMiddleware registra información sobre cada petición HTTP
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Crear un ResponseWriter propio para capturar el status code
		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		utilities.LogRequest(r.Method, r.URL.Path, r.RemoteAddr, rw.statusCode, duration)
	})
}

// responseWriter es un wrapper de http.ResponseWriter que captura el status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

// WriteHeader captura el status code antes de escribirlo
func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
