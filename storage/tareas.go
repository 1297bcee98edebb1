package storage

import (
	"database/sql"
	"fmt"
	"time"

	"gantt-proyectos/models"
	"gantt-proyectos/utilities"

	"github.com/lib/pq"
)

// TareaRepo es el colaborador de persistencia de la tabla de tareas.
// El guardado es siempre de tabla completa (el último que escribe gana).
type TareaRepo interface {
	FetchAll() ([]models.Tarea, error)
	FetchFiltered(status, priority string) ([]models.Tarea, error)
	ReplaceAll(tareas []models.Tarea) error
	Upsert(tareas []models.Tarea) error
	DeleteByIDs(ids []int) error
}

// TareaStore implementa TareaRepo sobre el Postgres alojado.
type TareaStore struct {
	DB *sql.DB
}

const columnasTarea = `id, project, task, details, owner, collaborators,
	       start_date, end_date, baseline_start, baseline_end,
	       progress, status, priority, rag, milestone,
	       phase, workstream, tags, external_link`

// FetchAll devuelve la tabla completa ordenada por id.
func (s *TareaStore) FetchAll() ([]models.Tarea, error) {
	return s.FetchFiltered("", "")
}

// FetchFiltered permite filtrar por status y priority en el servidor.
// Los demás filtros de vista se aplican en memoria (schema.Filtro).
func (s *TareaStore) FetchFiltered(status, priority string) ([]models.Tarea, error) {
	query := "SELECT " + columnasTarea + " FROM tareas"
	params := []interface{}{}
	paramCount := 1

	if status != "" {
		query += fmt.Sprintf(" WHERE status = $%d", paramCount)
		params = append(params, status)
		paramCount++
	}
	if priority != "" {
		if paramCount == 1 {
			query += " WHERE"
		} else {
			query += " AND"
		}
		query += fmt.Sprintf(" priority = $%d", paramCount)
		params = append(params, priority)
	}
	query += " ORDER BY id"

	rows, err := s.DB.Query(query, params...)
	if err != nil {
		utilities.LogError(err, "Error al consultar tareas en la base de datos")
		return nil, err
	}
	defer rows.Close()

	tareas := []models.Tarea{}
	for rows.Next() {
		t, err := escanearTarea(rows)
		if err != nil {
			utilities.LogError(err, "Error al leer el resultado de la consulta de tareas")
			return nil, err
		}
		tareas = append(tareas, t)
	}
	return tareas, rows.Err()
}

func escanearTarea(rows *sql.Rows) (models.Tarea, error) {
	var t models.Tarea
	var inicio, fin, baseInicio, baseFin sql.NullTime
	var rag sql.NullString
	var colaboradores, tags pq.StringArray

	err := rows.Scan(
		&t.ID, &t.Project, &t.Task, &t.Details, &t.Owner, &colaboradores,
		&inicio, &fin, &baseInicio, &baseFin,
		&t.Progress, &t.Status, &t.Priority, &rag, &t.Milestone,
		&t.Phase, &t.Workstream, &tags, &t.ExternalLink,
	)
	if err != nil {
		return t, err
	}

	t.Collaborators = colaboradores
	t.Tags = tags
	if inicio.Valid {
		t.Start = &inicio.Time
	}
	if fin.Valid {
		t.End = &fin.Time
	}
	if baseInicio.Valid {
		t.BaselineStart = &baseInicio.Time
	}
	if baseFin.Valid {
		t.BaselineEnd = &baseFin.Time
	}
	if rag.Valid && rag.String != "" {
		t.Rag = &rag.String
	}
	return t, nil
}

// ReplaceAll reemplaza la tabla completa dentro de una transacción.
func (s *TareaStore) ReplaceAll(tareas []models.Tarea) error {
	tx, err := s.DB.Begin()
	if err != nil {
		utilities.LogError(err, "Error al abrir la transacción de guardado")
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM tareas"); err != nil {
		utilities.LogError(err, "Error al vaciar la tabla de tareas")
		return err
	}

	query := `INSERT INTO tareas (` + columnasTarea + `)
	          VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)`
	for _, t := range tareas {
		if _, err := tx.Exec(query, argumentosTarea(t)...); err != nil {
			utilities.LogError(err, fmt.Sprintf("Error al insertar la tarea %d", t.ID))
			return err
		}
	}
	return tx.Commit()
}

// Upsert inserta o actualiza por id (variante alojada, guardado parcial).
func (s *TareaStore) Upsert(tareas []models.Tarea) error {
	query := `INSERT INTO tareas (` + columnasTarea + `)
	          VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)
	          ON CONFLICT (id) DO UPDATE SET
	              project = EXCLUDED.project,
	              task = EXCLUDED.task,
	              details = EXCLUDED.details,
	              owner = EXCLUDED.owner,
	              collaborators = EXCLUDED.collaborators,
	              start_date = EXCLUDED.start_date,
	              end_date = EXCLUDED.end_date,
	              baseline_start = EXCLUDED.baseline_start,
	              baseline_end = EXCLUDED.baseline_end,
	              progress = EXCLUDED.progress,
	              status = EXCLUDED.status,
	              priority = EXCLUDED.priority,
	              rag = EXCLUDED.rag,
	              milestone = EXCLUDED.milestone,
	              phase = EXCLUDED.phase,
	              workstream = EXCLUDED.workstream,
	              tags = EXCLUDED.tags,
	              external_link = EXCLUDED.external_link`
	for _, t := range tareas {
		if _, err := s.DB.Exec(query, argumentosTarea(t)...); err != nil {
			utilities.LogError(err, fmt.Sprintf("Error en el upsert de la tarea %d", t.ID))
			return err
		}
	}
	return nil
}

// DeleteByIDs borra por id. Las filas nunca persistidas no llegan acá:
// el cliente las descarta por su temp_id.
func (s *TareaStore) DeleteByIDs(ids []int) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := s.DB.Exec("DELETE FROM tareas WHERE id = ANY($1)", pq.Array(ids))
	if err != nil {
		utilities.LogError(err, "Error al borrar tareas de la base de datos")
	}
	return err
}

func argumentosTarea(t models.Tarea) []interface{} {
	var rag interface{}
	if t.Rag != nil {
		rag = *t.Rag
	}
	return []interface{}{
		t.ID, t.Project, t.Task, t.Details, t.Owner, pq.StringArray(t.Collaborators),
		fechaNullable(t.Start), fechaNullable(t.End),
		fechaNullable(t.BaselineStart), fechaNullable(t.BaselineEnd),
		t.Progress, t.Status, t.Priority, rag, t.Milestone,
		t.Phase, t.Workstream, pq.StringArray(t.Tags), t.ExternalLink,
	}
}

func fechaNullable(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return *t
}
