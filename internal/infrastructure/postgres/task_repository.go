package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

var _ repository.TaskRepository = (*TaskRepo)(nil)

// Lecturas enriquecidas: número de pedido y datos de contacto del cliente
// relacionado, para que el tablero no haga N consultas extra.
const taskSelect = `
	SELECT t.id, t.title, t.description, t.priority, t.status, t.related_order,
		t.related_customer, t.due_date, t.completed_at, t.column_id, t.position,
		t.created_at, t.updated_at,
		COALESCE(o.order_number, ''), COALESCE(c.name, ''), COALESCE(c.phone, '')
	FROM tasks t
	LEFT JOIN orders o ON o.id = t.related_order
	LEFT JOIN customers c ON c.id = t.related_customer`

// TaskRepo implementación de TaskRepository (usable con pool o tx).
type TaskRepo struct {
	q Querier
}

// NewTaskRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTaskRepository(q Querier) *TaskRepo {
	return &TaskRepo{q: q}
}

// Create persiste una nueva tarea.
func (r *TaskRepo) Create(ctx context.Context, task *entity.Task) error {
	query := `
		INSERT INTO tasks (id, title, description, priority, status, related_order,
			related_customer, due_date, completed_at, column_id, position, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		task.ID, task.Title, task.Description, task.Priority, task.Status, task.RelatedOrder,
		task.RelatedCustomer, task.DueDate, task.CompletedAt, task.ColumnID, task.Position,
		task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// GetByID obtiene una tarea por ID con datos enriquecidos; (nil, nil) si no existe.
func (r *TaskRepo) GetByID(ctx context.Context, id string) (*entity.Task, error) {
	t, err := scanTask(r.q.QueryRow(ctx, taskSelect+` WHERE t.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

// List devuelve todas las tareas por posición ascendente (orden estable por creación).
func (r *TaskRepo) List(ctx context.Context) ([]*entity.Task, error) {
	rows, err := r.q.Query(ctx, taskSelect+` ORDER BY t.position, t.created_at`)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var list []*entity.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// Update actualiza los campos editables de una tarea (no column_id, position ni status).
func (r *TaskRepo) Update(ctx context.Context, task *entity.Task) error {
	query := `
		UPDATE tasks SET title = $2, description = $3, priority = $4, related_order = $5,
			related_customer = $6, due_date = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		task.ID, task.Title, task.Description, task.Priority, task.RelatedOrder,
		task.RelatedCustomer, task.DueDate, task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

// UpdateStatus cambia solo status y completed_at.
func (r *TaskRepo) UpdateStatus(ctx context.Context, id, status string, completedAt *time.Time) error {
	query := `UPDATE tasks SET status = $2, completed_at = $3, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(ctx, query, id, status, completedAt)
	if err != nil {
		return fmt.Errorf("update task status: %w", err)
	}
	return nil
}

// Move actualiza SOLO column_id y position; las tareas hermanas no se tocan.
func (r *TaskRepo) Move(ctx context.Context, id, columnID string, position int) error {
	query := `UPDATE tasks SET column_id = $2, position = $3, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(ctx, query, id, columnID, position)
	if err != nil {
		return fmt.Errorf("move task: %w", err)
	}
	return nil
}

// Delete elimina una tarea por ID.
func (r *TaskRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

// ReassignColumn mueve todas las tareas de una columna a otra.
func (r *TaskRepo) ReassignColumn(ctx context.Context, fromColumnID, toColumnID string) error {
	query := `UPDATE tasks SET column_id = $2, updated_at = now() WHERE column_id = $1`
	_, err := r.q.Exec(ctx, query, fromColumnID, toColumnID)
	if err != nil {
		return fmt.Errorf("reassign tasks: %w", err)
	}
	return nil
}

// CountByColumn devuelve cuántas tareas hay en una columna.
func (r *TaskRepo) CountByColumn(ctx context.Context, columnID string) (int, error) {
	var count int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM tasks WHERE column_id = $1`, columnID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count tasks: %w", err)
	}
	return count, nil
}

func scanTask(row pgx.Row) (*entity.Task, error) {
	var t entity.Task
	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &t.Priority, &t.Status, &t.RelatedOrder,
		&t.RelatedCustomer, &t.DueDate, &t.CompletedAt, &t.ColumnID, &t.Position,
		&t.CreatedAt, &t.UpdatedAt,
		&t.OrderNumber, &t.CustomerName, &t.CustomerPhone,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
