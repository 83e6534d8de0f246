package entity

import "time"

// Prioridades de tarea.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Estados de tarea.
const (
	TaskStatusTodo       = "todo"
	TaskStatusInProgress = "in_progress"
	TaskStatusDone       = "done"
	TaskStatusCancelled  = "cancelled"
)

// Task representa una tarea del tablero. Position ordena dentro de la columna;
// los huecos o colisiones de posición se toleran porque el orden visible siempre
// se deriva de un sort estable al recargar, nunca de enteros contiguos.
type Task struct {
	ID              string
	Title           string // obligatorio
	Description     string
	Priority        string // low | medium | high | urgent
	Status          string // todo | in_progress | done | cancelled
	RelatedOrder    *string
	RelatedCustomer *string
	DueDate         *time.Time
	CompletedAt     *time.Time // se fija cuando Status pasa a done
	ColumnID        string
	Position        int
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Datos enriquecidos en lecturas con join; vacíos en escrituras.
	OrderNumber   string
	CustomerName  string
	CustomerPhone string
}

// ValidPriority indica si p es una prioridad conocida.
func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// ValidTaskStatus indica si s es un estado conocido.
func ValidTaskStatus(s string) bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone, TaskStatusCancelled:
		return true
	}
	return false
}
