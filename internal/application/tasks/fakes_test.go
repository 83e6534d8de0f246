package tasks_test

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

type memTaskRepo struct {
	tasks        []*entity.Task
	failReassign bool
}

func (r *memTaskRepo) Create(_ context.Context, t *entity.Task) error {
	r.tasks = append(r.tasks, t)
	return nil
}

func (r *memTaskRepo) GetByID(_ context.Context, id string) (*entity.Task, error) {
	for _, t := range r.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

func (r *memTaskRepo) List(_ context.Context) ([]*entity.Task, error) {
	out := append([]*entity.Task(nil), r.tasks...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (r *memTaskRepo) Update(_ context.Context, task *entity.Task) error {
	for i, t := range r.tasks {
		if t.ID == task.ID {
			r.tasks[i] = task
		}
	}
	return nil
}

func (r *memTaskRepo) UpdateStatus(_ context.Context, id, status string, completedAt *time.Time) error {
	for _, t := range r.tasks {
		if t.ID == id {
			t.Status = status
			t.CompletedAt = completedAt
		}
	}
	return nil
}

// Move replica el contrato del repositorio real: toca únicamente column_id y
// position de la tarea indicada.
func (r *memTaskRepo) Move(_ context.Context, id, columnID string, position int) error {
	for _, t := range r.tasks {
		if t.ID == id {
			t.ColumnID = columnID
			t.Position = position
		}
	}
	return nil
}

func (r *memTaskRepo) Delete(_ context.Context, id string) error {
	for i, t := range r.tasks {
		if t.ID == id {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *memTaskRepo) ReassignColumn(_ context.Context, from, to string) error {
	if r.failReassign {
		return errors.New("fallo simulado al reasignar")
	}
	for _, t := range r.tasks {
		if t.ColumnID == from {
			t.ColumnID = to
		}
	}
	return nil
}

func (r *memTaskRepo) CountByColumn(_ context.Context, columnID string) (int, error) {
	n := 0
	for _, t := range r.tasks {
		if t.ColumnID == columnID {
			n++
		}
	}
	return n, nil
}

type memColumnRepo struct {
	columns []*entity.TaskColumn
}

func (r *memColumnRepo) Create(_ context.Context, c *entity.TaskColumn) error {
	r.columns = append(r.columns, c)
	return nil
}

func (r *memColumnRepo) GetByID(_ context.Context, id string) (*entity.TaskColumn, error) {
	for _, c := range r.columns {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *memColumnRepo) List(_ context.Context) ([]*entity.TaskColumn, error) {
	out := append([]*entity.TaskColumn(nil), r.columns...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (r *memColumnRepo) Update(_ context.Context, col *entity.TaskColumn) error {
	for i, c := range r.columns {
		if c.ID == col.ID {
			r.columns[i] = col
		}
	}
	return nil
}

func (r *memColumnRepo) Delete(_ context.Context, id string) error {
	for i, c := range r.columns {
		if c.ID == id {
			r.columns = append(r.columns[:i], r.columns[i+1:]...)
			return nil
		}
	}
	return nil
}

// memBoardTxRunner emula la transacción del borrado de columna: si fn falla,
// el estado de tareas y columnas vuelve al punto de partida.
type memBoardTxRunner struct {
	tasks   *memTaskRepo
	columns *memColumnRepo
}

func (r *memBoardTxRunner) RunBoard(_ context.Context, fn func(
	tasks repository.TaskRepository,
	columns repository.TaskColumnRepository,
) error) error {
	taskSnap := make([]*entity.Task, len(r.tasks.tasks))
	for i, t := range r.tasks.tasks {
		cp := *t
		taskSnap[i] = &cp
	}
	colSnap := append([]*entity.TaskColumn(nil), r.columns.columns...)

	if err := fn(r.tasks, r.columns); err != nil {
		r.tasks.tasks = taskSnap
		r.columns.columns = colSnap
		return err
	}
	return nil
}
