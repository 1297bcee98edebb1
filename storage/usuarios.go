package storage

import (
	"database/sql"

	"gantt-proyectos/models"
	"gantt-proyectos/utilities"
)

// UserRepo es el directorio de usuarios contra el que se cruzan los
// nombres de owner y collaborators.
type UserRepo interface {
	ListActiveUsers() ([]models.Usuario, error)
}

// UserStore implementa UserRepo sobre la tabla users.
type UserStore struct {
	DB *sql.DB
}

// ListActiveUsers devuelve los usuarios activos con nombre y email.
func (s *UserStore) ListActiveUsers() ([]models.Usuario, error) {
	rows, err := s.DB.Query(
		"SELECT id, full_name, email, is_active FROM users WHERE is_active = true ORDER BY full_name")
	if err != nil {
		utilities.LogError(err, "Error al consultar el directorio de usuarios")
		return nil, err
	}
	defer rows.Close()

	usuarios := []models.Usuario{}
	for rows.Next() {
		var u models.Usuario
		if err := rows.Scan(&u.ID, &u.FullName, &u.Email, &u.IsActive); err != nil {
			utilities.LogError(err, "Error al leer el resultado de la consulta de usuarios")
			return nil, err
		}
		usuarios = append(usuarios, u)
	}
	return usuarios, rows.Err()
}
