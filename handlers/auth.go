package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"gantt-proyectos/firebase"
	"gantt-proyectos/utilities"
)

type LoginInput struct {
	IDToken string `json:"idToken"`
}

type LoginResponse struct {
	Message     string `json:"message"`
	FirebaseUID string `json:"firebaseUid"`
}

// AuthMiddleware verifica el token de Firebase. Sin credenciales
// configuradas (variante de archivo local, un solo usuario) deja pasar.
func AuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !firebase.Habilitado() {
			next.ServeHTTP(w, r)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			utilities.LogError(fmt.Errorf("header de autorización ausente"), "Autenticación fallida")
			http.Error(w, "Authorization header missing", http.StatusUnauthorized)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		verifiedToken, err := firebase.VerifyUserToken(tokenString)
		if err != nil {
			utilities.LogError(err, "Token inválido")
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), "userUID", verifiedToken.UID)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// FinalizeFirebaseLoginHandler procesa un ID Token de Firebase para
// verificar al usuario y sincronizarlo con la tabla users local.
func FinalizeFirebaseLoginHandler(w http.ResponseWriter, r *http.Request) {
	utilities.LogInfo("Recibida petición para finalizar login con ID Token de Firebase.")

	var input LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utilities.LogError(err, "Error al decodificar el cuerpo de la petición de login")
		http.Error(w, "Cuerpo de la petición inválido", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if strings.TrimSpace(input.IDToken) == "" {
		utilities.LogError(nil, "ID Token no provisto en el cuerpo de la petición")
		http.Error(w, "ID Token es obligatorio", http.StatusBadRequest)
		return
	}

	verifiedToken, err := firebase.VerifyUserToken(input.IDToken)
	if err != nil {
		utilities.LogError(err, "Fallo la verificación del ID Token de Firebase")
		http.Error(w, "Token inválido o fallo en la verificación", http.StatusUnauthorized)
		return
	}
	utilities.LogInfo("ID Token verificado con éxito para Firebase UID: %s", verifiedToken.UID)

	if db == nil {
		utilities.LogError(fmt.Errorf("sin base de datos"), "Login requiere la variante alojada")
		http.Error(w, "Servicio sin base de datos configurada", http.StatusServiceUnavailable)
		return
	}

	localUserUID, err := firebase.CheckOrCreateUserInPostgres(db, verifiedToken)
	if err != nil {
		utilities.LogError(err, "Error al sincronizar el usuario con la base local")
		http.Error(w, "Error interno del servidor al procesar el usuario", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(LoginResponse{
		Message:     "Login finalizado y usuario sincronizado con éxito.",
		FirebaseUID: localUserUID,
	})
}
