package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/lib/pq"
)

// ConnectPostgres abre la conexión al Postgres alojado (Supabase u otro)
// usando la configuración del entorno.
func ConnectPostgres() (*sql.DB, error) {
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")
	sslmode := os.Getenv("DB_SSLMODE")

	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Printf("Error al abrir la conexión con la base de datos: %v", err)
		return nil, err
	}

	// Probar la conexión
	err = db.Ping()
	if err != nil {
		log.Printf("Error al conectar a la base de datos: %v", err)
		return nil, err
	}

	log.Println("Conectado a PostgreSQL con éxito!")
	return db, nil
}

// Configurado indica si el entorno apunta a un Postgres. Si no, el
// servicio trabaja con el archivo CSV local.
func Configurado() bool {
	return os.Getenv("DB_HOST") != ""
}
