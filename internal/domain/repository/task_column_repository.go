package repository

import (
	"context"

	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
)

// TaskColumnRepository acceso a la tabla task_columns.
type TaskColumnRepository interface {
	Create(ctx context.Context, column *entity.TaskColumn) error
	GetByID(ctx context.Context, id string) (*entity.TaskColumn, error)
	// List devuelve las columnas ordenadas por posición ascendente.
	List(ctx context.Context) ([]*entity.TaskColumn, error)
	Update(ctx context.Context, column *entity.TaskColumn) error
	Delete(ctx context.Context, id string) error
}
