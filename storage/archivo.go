package storage

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gantt-proyectos/export"
	"gantt-proyectos/models"
	"gantt-proyectos/schema"
	"gantt-proyectos/utilities"
)

// ArchivoStore es la variante de un solo usuario: la tabla vive en un
// archivo CSV local. Implementa el mismo contrato que el store de Postgres.
type ArchivoStore struct {
	Path string
}

// Load lee la tabla del archivo. Si el archivo no existe o está vacío,
// se siembra con los datos de ejemplo.
func (s *ArchivoStore) Load() ([]models.Tarea, error) {
	info, err := os.Stat(s.Path)
	if os.IsNotExist(err) || (err == nil && info.Size() == 0) {
		tareas := DatosEjemplo()
		if err := s.Save(tareas); err != nil {
			return nil, err
		}
		return tareas, nil
	}
	if err != nil {
		return nil, err
	}

	f, err := os.Open(s.Path)
	if err != nil {
		utilities.LogError(err, "Error al abrir el archivo de tareas")
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	registros, err := r.ReadAll()
	if err != nil {
		utilities.LogError(err, "Error al leer el CSV de tareas")
		return nil, err
	}
	if len(registros) == 0 {
		return []models.Tarea{}, nil
	}

	encabezado := registros[0]
	filas := make([]schema.Fila, 0, len(registros)-1)
	for _, registro := range registros[1:] {
		fila := schema.Fila{}
		for i, col := range encabezado {
			if i < len(registro) {
				fila[strings.TrimSpace(col)] = registro[i]
			}
		}
		filas = append(filas, fila)
	}

	tareas, warnings := schema.Normalize(filas)
	for _, w := range warnings {
		utilities.LogInfo("Normalización de %s: %s", s.Path, w)
	}
	return tareas, nil
}

// Save escribe la tabla completa de forma atómica (archivo temporal +
// rename) para no dejar archivos truncos.
func (s *ArchivoStore) Save(tareas []models.Tarea) error {
	dir := filepath.Dir(s.Path)
	tmp, err := os.CreateTemp(dir, "tasks_*.csv")
	if err != nil {
		utilities.LogError(err, "Error al crear el archivo temporal de guardado")
		return err
	}
	tmpPath := tmp.Name()

	w := csv.NewWriter(tmp)
	err = w.Write(models.Columnas)
	if err == nil {
		for _, t := range tareas {
			if err = w.Write(export.RegistroCSV(t)); err != nil {
				break
			}
		}
	}
	if err == nil {
		w.Flush()
		err = w.Error()
	}
	if errCierre := tmp.Close(); err == nil {
		err = errCierre
	}
	if err != nil {
		utilities.LogError(err, "Error al guardar "+s.Path)
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, s.Path); err != nil {
		utilities.LogError(err, "Error al reemplazar "+s.Path)
		os.Remove(tmpPath)
		return err
	}
	return nil
}

// FetchAll implementa TareaRepo.
func (s *ArchivoStore) FetchAll() ([]models.Tarea, error) {
	return s.Load()
}

// FetchFiltered aplica los filtros de status/priority en memoria.
func (s *ArchivoStore) FetchFiltered(status, priority string) ([]models.Tarea, error) {
	tareas, err := s.Load()
	if err != nil {
		return nil, err
	}
	filtro := schema.Filtro{}
	if status != "" {
		filtro.Statuses = []string{status}
	}
	if priority != "" {
		filtro.Priorities = []string{priority}
	}
	return filtro.Aplicar(tareas), nil
}

// ReplaceAll implementa TareaRepo.
func (s *ArchivoStore) ReplaceAll(tareas []models.Tarea) error {
	return s.Save(tareas)
}

// Upsert mezcla por id sobre la tabla del archivo.
func (s *ArchivoStore) Upsert(tareas []models.Tarea) error {
	existentes, err := s.Load()
	if err != nil {
		return err
	}
	porID := map[int]int{}
	for i, t := range existentes {
		porID[t.ID] = i
	}
	for _, t := range tareas {
		if i, ok := porID[t.ID]; ok {
			existentes[i] = t
		} else {
			porID[t.ID] = len(existentes)
			existentes = append(existentes, t)
		}
	}
	return s.Save(existentes)
}

// DeleteByIDs implementa TareaRepo.
func (s *ArchivoStore) DeleteByIDs(ids []int) error {
	if len(ids) == 0 {
		return nil
	}
	tareas, err := s.Load()
	if err != nil {
		return err
	}
	borrar := map[int]bool{}
	for _, id := range ids {
		borrar[id] = true
	}
	restantes := make([]models.Tarea, 0, len(tareas))
	for _, t := range tareas {
		if !borrar[t.ID] {
			restantes = append(restantes, t)
		}
	}
	return s.Save(restantes)
}

// DatosEjemplo son las tareas iniciales de la primera ejecución.
func DatosEjemplo() []models.Tarea {
	hoy := time.Now().Truncate(24 * time.Hour)
	dia := func(n int) *time.Time {
		d := hoy.AddDate(0, 0, n)
		return &d
	}
	return []models.Tarea{
		{ID: 1, Project: "Encuesta Clima ACE", Task: "Diseño cuestionario", Details: "Versión 1 + validación",
			Owner: "Felipe", Collaborators: []string{"Felipe", "Carla"}, Start: dia(-7), End: dia(2),
			Progress: 75, Status: "In Progress", Priority: "High"},
		{ID: 2, Project: "Encuesta Clima ACE", Task: "Limpieza de datos", Details: "Detectar y tratar nulos",
			Owner: "Felipe", Collaborators: []string{"Felipe"}, Start: dia(3), End: dia(8),
			Progress: 10, Status: "Planned", Priority: "Medium"},
		{ID: 3, Project: "Portal BI Ventas", Task: "Definir permisos", Details: "Mapa RLS por área",
			Owner: "Gise", Collaborators: []string{"Gise"}, Start: dia(-2), End: dia(10),
			Progress: 30, Status: "In Progress", Priority: "High"},
		{ID: 4, Project: "Portal BI Ventas", Task: "Dashboard margen", Details: "Márgenes por BU, semanales",
			Owner: "Felipe", Collaborators: []string{"Felipe"}, Start: dia(1), End: dia(14),
			Progress: 0, Status: "Planned", Priority: "High"},
		{ID: 5, Project: "CDF Finanzas", Task: "Arqueo ODC/ODV", Details: "Conciliar contra pagos/recibos",
			Owner: "Nico V.", Collaborators: []string{"Nico V.", "Fer T."}, Start: dia(-10), End: dia(-1),
			Progress: 100, Status: "Done", Priority: "Critical"},
		{ID: 6, Project: "RRHH", Task: "Formulario consultas", Details: "Google Forms -> tablero",
			Owner: "Felipe", Collaborators: []string{"Felipe"}, Start: dia(-1), End: dia(6),
			Progress: 45, Status: "In Progress", Priority: "Medium"},
	}
}
