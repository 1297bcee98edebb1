package schema

import (
	"testing"
	"time"

	"gantt-proyectos/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tareasDePrueba() []models.Tarea {
	d := func(s string) *time.Time {
		f := fecha(s)
		return &f
	}
	return []models.Tarea{
		{ID: 1, Project: "Encuestas", Task: "Cuestionario", Owner: "Felipe",
			Collaborators: []string{"Felipe", "Carla"}, Start: d("2024-03-01"), End: d("2024-03-10"),
			Progress: 75, Status: "In Progress", Priority: "High"},
		{ID: 2, Project: "Portal BI", Task: "Permisos", Owner: "Gise",
			Start: d("2024-03-28"), End: d("2024-04-05"),
			Progress: 30, Status: "Planned", Priority: "Medium"},
		{ID: 3, Project: "Portal BI", Task: "Dashboard", Owner: "Felipe",
			Status: "Blocked", Priority: "Critical"}, // sin fechas
	}
}

func TestFiltro(t *testing.T) {
	tareas := tareasDePrueba()

	t.Run("sin filtros devuelve todo", func(t *testing.T) {
		assert.Len(t, Filtro{}.Aplicar(tareas), 3)
	})

	t.Run("por proyecto", func(t *testing.T) {
		out := Filtro{Projects: []string{"Portal BI"}}.Aplicar(tareas)
		require.Len(t, out, 2)
		assert.Equal(t, 2, out[0].ID)
		assert.Equal(t, 3, out[1].ID)
	})

	t.Run("por status y priority", func(t *testing.T) {
		out := Filtro{Statuses: []string{"Blocked"}, Priorities: []string{"Critical"}}.Aplicar(tareas)
		require.Len(t, out, 1)
		assert.Equal(t, 3, out[0].ID)
	})

	t.Run("por colaborador, subcadena sin mayúsculas, incluye al owner", func(t *testing.T) {
		out := Filtro{Collaborator: "carla"}.Aplicar(tareas)
		require.Len(t, out, 1)
		assert.Equal(t, 1, out[0].ID)

		out = Filtro{Collaborator: "gise"}.Aplicar(tareas)
		require.Len(t, out, 1)
		assert.Equal(t, 2, out[0].ID)
	})

	t.Run("ventana de fechas conserva tareas sin fechas", func(t *testing.T) {
		desde := fecha("2024-03-20")
		hasta := fecha("2024-03-31")
		out := Filtro{StartAfter: &desde, EndBefore: &hasta}.Aplicar(tareas)
		// la 1 termina antes de la ventana; la 3 no tiene fechas y queda
		require.Len(t, out, 2)
		assert.Equal(t, 2, out[0].ID)
		assert.Equal(t, 3, out[1].ID)
	})
}

func TestCalendarioMensual(t *testing.T) {
	tareas := tareasDePrueba()

	t.Run("expande una fila por día dentro del mes", func(t *testing.T) {
		entradas := CalendarioMensual(tareas, fecha("2024-03-01"))

		// tarea 1: 1..10 de marzo (10 días); tarea 2: 28..31 de marzo (4 días);
		// tarea 3 sin fechas no aparece
		require.Len(t, entradas, 14)
		assert.Equal(t, "Cuestionario", entradas[0].Task)
		assert.Equal(t, fecha("2024-03-01"), entradas[0].Date)
		ultima := entradas[len(entradas)-1]
		assert.Equal(t, "Permisos", ultima.Task)
		assert.Equal(t, fecha("2024-03-31"), ultima.Date)
	})

	t.Run("recorta al mes pedido", func(t *testing.T) {
		entradas := CalendarioMensual(tareas, fecha("2024-04-01"))
		// solo la cola de la tarea 2: 1..5 de abril
		require.Len(t, entradas, 5)
		for _, e := range entradas {
			assert.Equal(t, time.April, e.Date.Month())
		}
	})

	t.Run("mes sin tareas", func(t *testing.T) {
		assert.Empty(t, CalendarioMensual(tareas, fecha("2025-01-01")))
	})

	t.Run("orden por fecha, proyecto y tarea", func(t *testing.T) {
		entradas := CalendarioMensual(tareas, fecha("2024-03-01"))
		for i := 1; i < len(entradas); i++ {
			assert.False(t, entradas[i].Date.Before(entradas[i-1].Date))
		}
	})
}
