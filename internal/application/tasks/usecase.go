package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/domain"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

// UseCase operaciones sobre tareas del tablero.
type UseCase struct {
	taskRepo   repository.TaskRepository
	columnRepo repository.TaskColumnRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(taskRepo repository.TaskRepository, columnRepo repository.TaskColumnRepository) *UseCase {
	return &UseCase{taskRepo: taskRepo, columnRepo: columnRepo}
}

// List devuelve todas las tareas ordenadas por posición con sus datos enriquecidos.
func (uc *UseCase) List(ctx context.Context) ([]dto.TaskResponse, error) {
	list, err := uc.taskRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TaskResponse, 0, len(list))
	for _, t := range list {
		out = append(out, toTaskResponse(t))
	}
	return out, nil
}

// Create da de alta una tarea al final de la columna indicada.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	col, err := uc.columnRepo.GetByID(ctx, in.ColumnID)
	if err != nil {
		return nil, err
	}
	if col == nil {
		return nil, fmt.Errorf("%w: columna %s", domain.ErrNotFound, in.ColumnID)
	}
	priority := in.Priority
	if priority == "" {
		priority = entity.PriorityMedium
	}
	if !entity.ValidPriority(priority) {
		return nil, fmt.Errorf("%w: prioridad %q", domain.ErrInvalidInput, priority)
	}
	position, err := uc.taskRepo.CountByColumn(ctx, in.ColumnID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	task := &entity.Task{
		ID:              uuid.New().String(),
		Title:           in.Title,
		Description:     in.Description,
		Priority:        priority,
		Status:          entity.TaskStatusTodo,
		RelatedOrder:    in.RelatedOrder,
		RelatedCustomer: in.RelatedCustomer,
		DueDate:         in.DueDate,
		ColumnID:        in.ColumnID,
		Position:        position,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}
	resp := toTaskResponse(task)
	return &resp, nil
}

// Update edita los campos editables de una tarea (no columna/posición/estado).
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	task, err := uc.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, fmt.Errorf("%w: tarea %s", domain.ErrNotFound, id)
	}
	if in.Priority != "" && !entity.ValidPriority(in.Priority) {
		return nil, fmt.Errorf("%w: prioridad %q", domain.ErrInvalidInput, in.Priority)
	}
	task.Title = in.Title
	task.Description = in.Description
	if in.Priority != "" {
		task.Priority = in.Priority
	}
	task.DueDate = in.DueDate
	task.UpdatedAt = time.Now()
	if err := uc.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}
	resp := toTaskResponse(task)
	return &resp, nil
}

// Move deja la tarea en la columna e índice destino actualizando SOLO esos dos
// campos. Las hermanas no se renumeran: el orden visible se deriva siempre de
// un sort estable por posición al recargar, así que los huecos y colisiones se
// toleran.
func (uc *UseCase) Move(ctx context.Context, id string, in dto.MoveTaskRequest) error {
	task, err := uc.taskRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if task == nil {
		return fmt.Errorf("%w: tarea %s", domain.ErrNotFound, id)
	}
	col, err := uc.columnRepo.GetByID(ctx, in.ColumnID)
	if err != nil {
		return err
	}
	if col == nil {
		return fmt.Errorf("%w: columna %s", domain.ErrNotFound, in.ColumnID)
	}
	return uc.taskRepo.Move(ctx, id, in.ColumnID, in.Position)
}

// UpdateStatus cambia el estado; al pasar a done se fija completed_at y al
// salir de done se limpia.
func (uc *UseCase) UpdateStatus(ctx context.Context, id, status string) error {
	if !entity.ValidTaskStatus(status) {
		return fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, status)
	}
	task, err := uc.taskRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if task == nil {
		return fmt.Errorf("%w: tarea %s", domain.ErrNotFound, id)
	}
	var completedAt *time.Time
	if status == entity.TaskStatusDone {
		now := time.Now()
		completedAt = &now
	}
	return uc.taskRepo.UpdateStatus(ctx, id, status, completedAt)
}

// Delete elimina una tarea.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	task, err := uc.taskRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if task == nil {
		return fmt.Errorf("%w: tarea %s", domain.ErrNotFound, id)
	}
	return uc.taskRepo.Delete(ctx, id)
}

func toTaskResponse(t *entity.Task) dto.TaskResponse {
	return dto.TaskResponse{
		ID:              t.ID,
		Title:           t.Title,
		Description:     t.Description,
		Priority:        t.Priority,
		Status:          t.Status,
		ColumnID:        t.ColumnID,
		Position:        t.Position,
		RelatedOrder:    t.RelatedOrder,
		RelatedCustomer: t.RelatedCustomer,
		OrderNumber:     t.OrderNumber,
		CustomerName:    t.CustomerName,
		CustomerPhone:   t.CustomerPhone,
		DueDate:         t.DueDate,
		CompletedAt:     t.CompletedAt,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}
