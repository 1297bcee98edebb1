package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"gantt-proyectos/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dia(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestCSV(t *testing.T) {
	rag := "Green"
	tareas := []models.Tarea{{
		ID: 3, Project: "Portal BI", Task: "Permisos", Details: "Mapa RLS",
		Owner: "Gise", Collaborators: []string{"Gise", "Felipe"},
		Start: dia("2024-03-01"), End: dia("2024-03-10"),
		Progress: 30, Status: "In Progress", Priority: "High",
		Rag: &rag, Milestone: true, Tags: []string{"q1"},
	}}

	datos, err := CSV(tareas)
	require.NoError(t, err)

	registros, err := csv.NewReader(bytes.NewReader(datos)).ReadAll()
	require.NoError(t, err)
	require.Len(t, registros, 2)

	// el encabezado es exactamente el conjunto canónico, en orden
	assert.Equal(t, models.Columnas, registros[0])

	fila := registros[1]
	assert.Equal(t, "3", fila[0])
	assert.Equal(t, "Portal BI", fila[1])
	assert.Equal(t, "Gise, Felipe", fila[5])
	assert.Equal(t, "2024-03-01", fila[6])
	assert.Equal(t, "2024-03-10", fila[7])
	assert.Equal(t, "30", fila[10])
	assert.Equal(t, "Green", fila[13])
	assert.Equal(t, "true", fila[14])
}

func TestCSV_CamposVacios(t *testing.T) {
	datos, err := CSV([]models.Tarea{{ID: 1, Status: "Planned", Priority: "Medium"}})
	require.NoError(t, err)

	registros, err := csv.NewReader(bytes.NewReader(datos)).ReadAll()
	require.NoError(t, err)

	fila := registros[1]
	assert.Equal(t, "", fila[6])  // start
	assert.Equal(t, "", fila[13]) // rag
	assert.Equal(t, "false", fila[14])
}

func TestPlantillaCSV(t *testing.T) {
	registros, err := csv.NewReader(bytes.NewReader(PlantillaCSV())).ReadAll()
	require.NoError(t, err)
	require.Len(t, registros, 1)
	assert.Equal(t, models.Columnas, registros[0])
}

func TestICS(t *testing.T) {
	tareas := []models.Tarea{
		{ID: 1, Project: "Encuestas", Task: "Cuestionario", Progress: 75,
			Collaborators: []string{"Felipe", "Carla"}, Status: "In Progress",
			Start: dia("2024-03-01"), End: dia("2024-03-10")},
		{ID: 2, Project: "Portal BI", Task: "Sin fechas"},
	}

	ics := ICS(tareas, "Proyectos")

	assert.True(t, strings.HasPrefix(ics, "BEGIN:VCALENDAR"))
	assert.True(t, strings.HasSuffix(ics, "END:VCALENDAR"))
	assert.Contains(t, ics, "X-WR-CALNAME:Proyectos")

	assert.Contains(t, ics, "UID:1@gantt-proyectos")
	assert.Contains(t, ics, "DTSTART;VALUE=DATE:20240301")
	// DTEND es exclusivo: un día después del fin
	assert.Contains(t, ics, "DTEND;VALUE=DATE:20240311")
	assert.Contains(t, ics, "SUMMARY:Encuestas – Cuestionario (75%)")
	assert.Contains(t, ics, "DESCRIPTION:Colaboradores: Felipe, Carla. Estado: In Progress.")

	// las tareas sin alguna de las fechas se omiten
	assert.NotContains(t, ics, "UID:2@gantt-proyectos")
	assert.Equal(t, 1, strings.Count(ics, "BEGIN:VEVENT"))
}
