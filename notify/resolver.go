package notify

import (
	"regexp"
	"strings"

	"gantt-proyectos/models"
)

var espacios = regexp.MustCompile(`\s+`)

// NormalizarNombre prepara un nombre para el cruce contra el directorio:
// recorta, colapsa espacios internos y pasa a minúsculas. No quita tildes
// para no romper nombres.
func NormalizarNombre(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return strings.ToLower(espacios.ReplaceAllString(s, " "))
}

// IndiceUsuarios construye el índice nombre normalizado -> usuario a partir
// del directorio. Solo entran usuarios activos con nombre no vacío.
func IndiceUsuarios(usuarios []models.Usuario) map[string]models.Usuario {
	indice := make(map[string]models.Usuario, len(usuarios))
	for _, u := range usuarios {
		if !u.IsActive {
			continue
		}
		n := NormalizarNombre(u.FullName)
		if n == "" {
			continue
		}
		indice[n] = u
	}
	return indice
}

// ResolverDestinatarios cruza owner y collaborators de las filas
// seleccionadas contra el directorio y devuelve (emails únicos, nombres no
// resueltos). El orden es el de primera aparición recorriendo las filas en
// orden de entrada, owner antes que collaborators dentro de cada fila.
//
// Política: un nombre que existe en el directorio pero con email vacío se
// reporta como no resuelto (no puede ser notificado y conviene que el
// operador lo vea).
func ResolverDestinatarios(tareas []models.Tarea, indice map[string]models.Usuario) (emails []string, noResueltos []string) {
	emailsVistos := map[string]bool{}
	nombresVistos := map[string]bool{}

	agregar := func(nombre string) {
		nm := NormalizarNombre(nombre)
		if nm == "" {
			return
		}
		if u, ok := indice[nm]; ok && u.Email != "" {
			if !emailsVistos[u.Email] {
				emailsVistos[u.Email] = true
				emails = append(emails, u.Email)
			}
			return
		}
		// sin cruce o con email vacío: se reporta una sola vez,
		// con la grafía original de la primera aparición
		if !nombresVistos[nm] {
			nombresVistos[nm] = true
			noResueltos = append(noResueltos, strings.TrimSpace(nombre))
		}
	}

	for _, t := range tareas {
		if t.Owner != "" {
			agregar(t.Owner)
		}
		for _, c := range t.Collaborators {
			agregar(c)
		}
	}
	return emails, noResueltos
}
