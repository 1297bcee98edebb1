package schema

import (
	"testing"
	"time"

	"gantt-proyectos/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fecha(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNormalize_EscenarioCanonico(t *testing.T) {
	filas := []Fila{{
		"id":       nil,
		"start":    "2024-03-10",
		"end":      "2024-03-01",
		"progress": 150,
		"status":   "bogus",
	}}

	tareas, warnings := Normalize(filas)
	require.Len(t, tareas, 1)

	tarea := tareas[0]
	assert.Equal(t, 1, tarea.ID)
	require.NotNil(t, tarea.Start)
	require.NotNil(t, tarea.End)
	assert.Equal(t, fecha("2024-03-01"), *tarea.Start)
	assert.Equal(t, fecha("2024-03-10"), *tarea.End)
	assert.Equal(t, 100, tarea.Progress)
	assert.Equal(t, models.StatusDefault, tarea.Status)
	assert.Equal(t, models.PriorityDefault, tarea.Priority)

	require.Len(t, warnings, 3)
	assert.Equal(t, "Se autocompletaron IDs faltantes.", warnings[0])
	assert.Equal(t, "1 fila(s) tenían start > end y se invirtieron.", warnings[1])
	assert.Equal(t, "Se ajustó progress a [0,100].", warnings[2])
}

func TestNormalize_FilaVacia(t *testing.T) {
	tareas, _ := Normalize([]Fila{{}})
	require.Len(t, tareas, 1)

	tarea := tareas[0]
	assert.Equal(t, 1, tarea.ID)
	assert.Equal(t, "", tarea.Project)
	assert.Nil(t, tarea.Collaborators)
	assert.Nil(t, tarea.Start)
	assert.Nil(t, tarea.End)
	assert.Equal(t, 0, tarea.Progress)
	assert.Equal(t, models.StatusDefault, tarea.Status)
	assert.Equal(t, models.PriorityDefault, tarea.Priority)
	assert.Nil(t, tarea.Rag)
	assert.False(t, tarea.Milestone)
}

func TestNormalize_AsignacionDeIDs(t *testing.T) {
	t.Run("faltantes por encima del máximo, de arriba hacia abajo", func(t *testing.T) {
		filas := []Fila{
			{"id": 5, "task": "a"},
			{"task": "b"},
			{"id": 3, "task": "c"},
			{"id": "no-numérico", "task": "d"},
		}
		tareas, warnings := Normalize(filas)

		assert.Equal(t, []int{5, 6, 3, 7}, []int{tareas[0].ID, tareas[1].ID, tareas[2].ID, tareas[3].ID})
		assert.Contains(t, warnings, "Se autocompletaron IDs faltantes.")
	})

	t.Run("duplicados se reasignan para garantizar unicidad", func(t *testing.T) {
		filas := []Fila{
			{"id": 2, "task": "a"},
			{"id": 2, "task": "b"},
		}
		tareas, _ := Normalize(filas)

		assert.Equal(t, 2, tareas[0].ID)
		assert.Equal(t, 3, tareas[1].ID)
	})

	t.Run("sin faltantes no hay warning", func(t *testing.T) {
		_, warnings := Normalize([]Fila{{"id": 1}, {"id": 2}})
		assert.Empty(t, warnings)
	})
}

func TestNormalize_Fechas(t *testing.T) {
	casos := []struct {
		nombre string
		valor  any
		espera string
		esNulo bool
	}{
		{"ISO", "2024-03-10", "2024-03-10", false},
		{"DD/MM/YYYY", "13/05/2024", "2024-05-13", false},
		{"MM/DD/YYYY", "05/13/2024", "2024-05-13", false},
		{"fallback RFC3339", "2024-03-10T00:00:00Z", "2024-03-10", false},
		{"vacío", "", "", true},
		{"nulo", nil, "", true},
		{"basura", "no es una fecha", "", true},
		{"nativo", fecha("2024-07-01"), "2024-07-01", false},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			tareas, _ := Normalize([]Fila{{"id": 1, "start": c.valor}})
			if c.esNulo {
				assert.Nil(t, tareas[0].Start)
				return
			}
			require.NotNil(t, tareas[0].Start)
			assert.Equal(t, c.espera, tareas[0].Start.Format("2006-01-02"))
		})
	}
}

func TestNormalize_InversionDeFechas(t *testing.T) {
	filas := []Fila{
		{"id": 1, "start": "2024-03-10", "end": "2024-03-01"},
		{"id": 2, "start": "2024-04-01", "end": "2024-04-05"},
		{"id": 3, "start": "2024-05-10"}, // sin end: no se toca
	}
	tareas, warnings := Normalize(filas)

	assert.True(t, tareas[0].Start.Before(*tareas[0].End))
	assert.True(t, tareas[1].Start.Before(*tareas[1].End))
	assert.Nil(t, tareas[2].End)
	assert.Contains(t, warnings, "1 fila(s) tenían start > end y se invirtieron.")
}

func TestNormalize_Progress(t *testing.T) {
	casos := []struct {
		nombre string
		valor  any
		espera int
		aviso  bool
	}{
		{"en rango", 45, 45, false},
		{"por encima", 150, 100, true},
		{"negativo", -5, 0, true},
		{"texto numérico", "80", 80, false},
		{"texto basura", "mucho", 0, false},
		{"nulo", nil, 0, false},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			tareas, warnings := Normalize([]Fila{{"id": 1, "progress": c.valor}})
			assert.Equal(t, c.espera, tareas[0].Progress)
			if c.aviso {
				assert.Contains(t, warnings, "Se ajustó progress a [0,100].")
			} else {
				assert.NotContains(t, warnings, "Se ajustó progress a [0,100].")
			}
		})
	}
}

func TestNormalize_Enums(t *testing.T) {
	t.Run("status y priority válidos se conservan", func(t *testing.T) {
		tareas, _ := Normalize([]Fila{{"id": 1, "status": "Done", "priority": "Critical"}})
		assert.Equal(t, "Done", tareas[0].Status)
		assert.Equal(t, "Critical", tareas[0].Priority)
	})

	t.Run("inválidos caen al default en silencio", func(t *testing.T) {
		tareas, warnings := Normalize([]Fila{{"id": 1, "status": "Terminadísima", "priority": "Urgente"}})
		assert.Equal(t, models.StatusDefault, tareas[0].Status)
		assert.Equal(t, models.PriorityDefault, tareas[0].Priority)
		assert.Empty(t, warnings)
	})

	t.Run("rag inválido normaliza a nulo, nunca a un default", func(t *testing.T) {
		tareas, _ := Normalize([]Fila{
			{"id": 1, "rag": "Red"},
			{"id": 2, "rag": "Violeta"},
			{"id": 3, "rag": ""},
		})
		require.NotNil(t, tareas[0].Rag)
		assert.Equal(t, "Red", *tareas[0].Rag)
		assert.Nil(t, tareas[1].Rag)
		assert.Nil(t, tareas[2].Rag)
	})
}

func TestNormalize_Booleanos(t *testing.T) {
	verdaderos := []any{true, "true", "TRUE", "1", "t", "Y", "yes"}
	for _, v := range verdaderos {
		tareas, _ := Normalize([]Fila{{"id": 1, "milestone": v}})
		assert.True(t, tareas[0].Milestone, "valor %v", v)
	}

	falsos := []any{false, nil, "", "no", "0", "si"}
	for _, v := range falsos {
		tareas, _ := Normalize([]Fila{{"id": 1, "milestone": v}})
		assert.False(t, tareas[0].Milestone, "valor %v", v)
	}
}

func TestNormalize_Listas(t *testing.T) {
	t.Run("texto delimitado", func(t *testing.T) {
		tareas, _ := Normalize([]Fila{{"id": 1, "collaborators": " Ana ,  Luis ,,"}})
		assert.Equal(t, []string{"Ana", "Luis"}, tareas[0].Collaborators)
	})

	t.Run("vacío normaliza a nulo, no a lista con string vacío", func(t *testing.T) {
		tareas, _ := Normalize([]Fila{{"id": 1, "collaborators": "  "}, {"id": 2}})
		assert.Nil(t, tareas[0].Collaborators)
		assert.Nil(t, tareas[1].Collaborators)
	})

	t.Run("ida y vuelta con el texto editado", func(t *testing.T) {
		original := "Ana, Luis, Fer T."
		lista := SplitLista(original)
		assert.Equal(t, original, JoinLista(lista))
		assert.Equal(t, lista, SplitLista(JoinLista(lista)))
	})
}

func TestNormalize_Idempotente(t *testing.T) {
	filas := []Fila{
		{"start": "10/03/2024", "end": "2024-03-01", "progress": "150", "status": "Done",
			"collaborators": "Ana, Luis", "rag": "Yellow", "milestone": "yes", "tags": "q1, interno"},
		{"id": 9, "project": "Portal BI", "task": "Permisos", "priority": "High"},
	}

	primera, _ := Normalize(filas)
	segunda, warnings := Normalize(AFilas(primera))

	assert.Equal(t, primera, segunda)
	assert.Empty(t, warnings)
}

func TestNormalize_NuncaFalla(t *testing.T) {
	// celdas de tipos arbitrarios: nada debe entrar en pánico
	filas := []Fila{
		{"id": []any{1, 2}, "start": 3.14, "progress": true, "status": 42,
			"collaborators": 7, "milestone": []string{"x"}, "tags": map[string]any{}},
	}
	require.NotPanics(t, func() {
		tareas, _ := Normalize(filas)
		require.Len(t, tareas, 1)
		assert.Equal(t, 1, tareas[0].ID)
	})
}
