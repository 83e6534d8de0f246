package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
)

// TaskRepository acceso a la tabla tasks.
type TaskRepository interface {
	Create(ctx context.Context, task *entity.Task) error
	GetByID(ctx context.Context, id string) (*entity.Task, error)
	// List devuelve todas las tareas ordenadas por posición (ascendente, estable),
	// enriquecidas con número de pedido y nombre/teléfono de cliente.
	List(ctx context.Context) ([]*entity.Task, error)
	Update(ctx context.Context, task *entity.Task) error
	// UpdateStatus cambia solo status y completed_at.
	UpdateStatus(ctx context.Context, id, status string, completedAt *time.Time) error
	// Move actualiza SOLO column_id y position de la tarea indicada; las tareas
	// hermanas no se renumeran.
	Move(ctx context.Context, id, columnID string, position int) error
	Delete(ctx context.Context, id string) error
	// ReassignColumn mueve todas las tareas de una columna a otra (usado al borrar columnas).
	ReassignColumn(ctx context.Context, fromColumnID, toColumnID string) error
	// CountByColumn devuelve cuántas tareas hay en una columna (posición inicial de las nuevas).
	CountByColumn(ctx context.Context, columnID string) (int, error)
}
