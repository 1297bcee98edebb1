package models

import "time"

// Dominios cerrados de status y priority. Cualquier valor fuera del dominio
// se reemplaza por el default durante la normalización.
var (
	Statuses   = []string{"Planned", "In Progress", "Blocked", "Done"}
	Priorities = []string{"Low", "Medium", "High", "Critical"}

	// RAG es opcional: un valor inválido se normaliza a null, nunca a un default.
	RagValues = []string{"Green", "Yellow", "Red"}
)

const (
	StatusDefault   = "Planned"
	PriorityDefault = "Medium"
)

// Tarea es el registro canónico de la tabla de tareas.
// Las fechas opcionales son punteros (nil = sin fecha).
type Tarea struct {
	ID            int        `json:"id"`
	TempID        string     `json:"temp_id,omitempty"` // uuid de cliente para filas aún no persistidas
	Project       string     `json:"project"`
	Task          string     `json:"task"`
	Details       string     `json:"details"`
	Owner         string     `json:"owner"`
	Collaborators []string   `json:"collaborators"`
	Start         *time.Time `json:"start"`
	End           *time.Time `json:"end"`
	BaselineStart *time.Time `json:"baseline_start"`
	BaselineEnd   *time.Time `json:"baseline_end"`
	Progress      int        `json:"progress"`
	Status        string     `json:"status"`
	Priority      string     `json:"priority"`
	Rag           *string    `json:"rag"`
	Milestone     bool       `json:"milestone"`
	Phase         string     `json:"phase"`
	Workstream    string     `json:"workstream"`
	Tags          []string   `json:"tags"`
	ExternalLink  string     `json:"external_link"`
}

// Columnas canónicas, en orden. Todo export (CSV, plantilla) y toda tabla
// normalizada respetan exactamente este conjunto y este orden.
var Columnas = []string{
	"id", "project", "task", "details", "owner", "collaborators",
	"start", "end", "baseline_start", "baseline_end",
	"progress", "status", "priority", "rag", "milestone",
	"phase", "workstream", "tags", "external_link",
}

func EsStatusValido(s string) bool   { return contiene(Statuses, s) }
func EsPriorityValida(p string) bool { return contiene(Priorities, p) }
func EsRagValido(r string) bool      { return contiene(RagValues, r) }

func contiene(dominio []string, v string) bool {
	for _, d := range dominio {
		if d == v {
			return true
		}
	}
	return false
}
