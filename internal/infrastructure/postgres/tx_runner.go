package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/gestion-pro/internal/application/orders"
	"github.com/tu-usuario/gestion-pro/internal/application/tasks"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

var _ orders.OrderTxRunner = (*TxRunner)(nil)
var _ tasks.BoardTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunOrder inicia una transacción con los repos del guardado de pedidos
// (cliente nuevo + cabecera + items, o nada).
func (r *TxRunner) RunOrder(ctx context.Context, fn func(
	customers repository.CustomerRepository,
	orders repository.OrderRepository,
	seq repository.SequenceRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	customerRepo := NewCustomerRepository(tx)
	orderRepo := NewOrderRepository(tx)
	seqRepo := NewSequenceRepository(tx)

	if err := fn(customerRepo, orderRepo, seqRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunBoard inicia una transacción con los repos del tablero
// (reasignar tareas + borrar columna, o nada).
func (r *TxRunner) RunBoard(ctx context.Context, fn func(
	tasks repository.TaskRepository,
	columns repository.TaskColumnRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	taskRepo := NewTaskRepository(tx)
	columnRepo := NewTaskColumnRepository(tx)

	if err := fn(taskRepo, columnRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
