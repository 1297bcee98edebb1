package firebase

import (
	"context"
	"fmt"
	"log"
	"os"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

func InitializeFirebase() (*firebase.App, error) {
	credentialsPath := os.Getenv("FIREBASE_CREDENTIALS_PATH")
	if credentialsPath == "" {
		return nil, fmt.Errorf("FIREBASE_CREDENTIALS_PATH no está definida en las variables de entorno")
	}

	opt := option.WithCredentialsFile(credentialsPath)

	app, err := firebase.NewApp(context.Background(), nil, opt)
	if err != nil {
		log.Fatalf("Error al inicializar Firebase: %v", err)
	}

	return app, nil
}

// Habilitado indica si hay credenciales de Firebase configuradas.
// Sin credenciales el servicio corre en modo de un solo usuario.
func Habilitado() bool {
	return os.Getenv("FIREBASE_CREDENTIALS_PATH") != ""
}

// GetAuthClient devuelve el cliente de autenticación
func GetAuthClient() *auth.Client {
	ctx := context.Background()
	app, err := InitializeFirebase()
	if err != nil {
		log.Fatalf("Error al inicializar Firebase: %v", err)
	}
	authClient, err := app.Auth(ctx)
	if err != nil {
		log.Fatalf("Error al obtener el cliente de Auth: %v", err)
	}
	return authClient
}
