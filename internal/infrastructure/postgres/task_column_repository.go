package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/gestion-pro/internal/domain"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

var _ repository.TaskColumnRepository = (*TaskColumnRepo)(nil)

// TaskColumnRepo implementación de TaskColumnRepository (usable con pool o tx).
type TaskColumnRepo struct {
	q Querier
}

// NewTaskColumnRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTaskColumnRepository(q Querier) *TaskColumnRepo {
	return &TaskColumnRepo{q: q}
}

// Create persiste una nueva columna.
func (r *TaskColumnRepo) Create(ctx context.Context, column *entity.TaskColumn) error {
	query := `
		INSERT INTO task_columns (id, name, color, position, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		column.ID, column.Name, column.Color, column.Position, column.CreatedAt, column.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert task column: %w", err)
	}
	return nil
}

// GetByID obtiene una columna por ID; (nil, nil) si no existe.
func (r *TaskColumnRepo) GetByID(ctx context.Context, id string) (*entity.TaskColumn, error) {
	query := `SELECT id, name, color, position, created_at, updated_at FROM task_columns WHERE id = $1`
	var c entity.TaskColumn
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Color, &c.Position, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get task column: %w", err)
	}
	return &c, nil
}

// List devuelve las columnas ordenadas por posición ascendente.
func (r *TaskColumnRepo) List(ctx context.Context) ([]*entity.TaskColumn, error) {
	query := `SELECT id, name, color, position, created_at, updated_at FROM task_columns ORDER BY position, created_at`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list task columns: %w", err)
	}
	defer rows.Close()

	var list []*entity.TaskColumn
	for rows.Next() {
		var c entity.TaskColumn
		if err := rows.Scan(&c.ID, &c.Name, &c.Color, &c.Position, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan task column: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza una columna.
func (r *TaskColumnRepo) Update(ctx context.Context, column *entity.TaskColumn) error {
	query := `UPDATE task_columns SET name = $2, color = $3, position = $4, updated_at = $5 WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		column.ID, column.Name, column.Color, column.Position, column.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update task column: %w", err)
	}
	return nil
}

// Delete elimina una columna por ID.
func (r *TaskColumnRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM task_columns WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete task column: %w", err)
	}
	return nil
}
