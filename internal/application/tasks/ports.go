package tasks

import (
	"context"

	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

// BoardTxRunner ejecuta el borrado de columna (reasignación de tareas +
// eliminación) dentro de UNA transacción.
type BoardTxRunner interface {
	RunBoard(ctx context.Context, fn func(
		tasks repository.TaskRepository,
		columns repository.TaskColumnRepository,
	) error) error
}
