package dto

import "time"

// CreateTaskRequest alta de tarea en una columna del tablero.
type CreateTaskRequest struct {
	Title           string     `json:"title" validate:"required"`
	Description     string     `json:"description"`
	Priority        string     `json:"priority"`
	ColumnID        string     `json:"column_id" validate:"required"`
	RelatedOrder    *string    `json:"related_order"`
	RelatedCustomer *string    `json:"related_customer"`
	DueDate         *time.Time `json:"due_date"`
}

// UpdateTaskRequest edición de los campos editables de una tarea.
type UpdateTaskRequest struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
}

// MoveTaskRequest movimiento por arrastre: columna e índice destino.
type MoveTaskRequest struct {
	ColumnID string `json:"column_id" validate:"required"`
	Position int    `json:"position" validate:"gte=0"`
}

// UpdateTaskStatusRequest cambio de estado (todo | in_progress | done | cancelled).
type UpdateTaskStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// TaskResponse representación pública de la tarea con datos enriquecidos.
type TaskResponse struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description,omitempty"`
	Priority        string     `json:"priority"`
	Status          string     `json:"status"`
	ColumnID        string     `json:"column_id"`
	Position        int        `json:"position"`
	RelatedOrder    *string    `json:"related_order,omitempty"`
	RelatedCustomer *string    `json:"related_customer,omitempty"`
	OrderNumber     string     `json:"order_number,omitempty"`
	CustomerName    string     `json:"customer_name,omitempty"`
	CustomerPhone   string     `json:"customer_phone,omitempty"`
	DueDate         *time.Time `json:"due_date,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// ColumnInput alta o edición de columna del tablero.
type ColumnInput struct {
	Name     string `json:"name" validate:"required"`
	Color    string `json:"color"`
	Position int    `json:"position" validate:"gte=0"`
}

// ColumnResponse representación pública de la columna.
type ColumnResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
