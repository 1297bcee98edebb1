package firebase

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"firebase.google.com/go/v4/auth"
)

func VerifyUserToken(token string) (*auth.Token, error) {
	ctx := context.Background()
	client := GetAuthClient()

	verifiedToken, err := client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("error al verificar el token: %v", err)
	}

	return verifiedToken, nil
}

// CheckOrCreateUserInPostgres sincroniza el usuario del token con la tabla
// users (el directorio contra el que se resuelven las notificaciones).
func CheckOrCreateUserInPostgres(db *sql.DB, token *auth.Token) (string, error) {
	uid := token.UID
	email, _ := token.Claims["email"].(string)
	fullName, _ := token.Claims["name"].(string)

	var dbUID string
	err := db.QueryRow("SELECT firebase_uid FROM users WHERE firebase_uid = $1", uid).Scan(&dbUID)

	switch {
	case err == sql.ErrNoRows:
		// Primer acceso: se crea el registro, activo por defecto
		log.Printf("Primer acceso para UID %s. Creando en PostgreSQL...", uid)
		_, insertErr := db.Exec(
			"INSERT INTO users (firebase_uid, full_name, email, is_active) VALUES ($1, $2, $3, true)",
			uid, fullName, email,
		)
		if insertErr != nil {
			log.Printf("Error al insertar el usuario en la base: %v", insertErr)
			return "", fmt.Errorf("error al insertar el usuario en la base: %v", insertErr)
		}
		return uid, nil

	case err != nil:
		log.Printf("Error al buscar el usuario en la base: %v", err)
		return "", fmt.Errorf("error al buscar el usuario en la base: %v", err)

	default:
		return dbUID, nil
	}
}
