package tasks_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/application/tasks"
	"github.com/tu-usuario/gestion-pro/internal/domain"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
)

func newTaskUC() (*tasks.UseCase, *memTaskRepo, *memColumnRepo) {
	taskRepo := &memTaskRepo{}
	columnRepo := &memColumnRepo{columns: []*entity.TaskColumn{
		{ID: "col-1", Name: "Pendiente", Position: 0},
		{ID: "col-2", Name: "En progreso", Position: 1},
	}}
	return tasks.NewUseCase(taskRepo, columnRepo), taskRepo, columnRepo
}

// ──────────────────────────────────────────────────────────────────────────────

func TestTask_CreateAlFinalDeLaColumna(t *testing.T) {
	uc, taskRepo, _ := newTaskUC()
	taskRepo.tasks = []*entity.Task{
		{ID: "t-1", ColumnID: "col-1", Position: 0},
		{ID: "t-2", ColumnID: "col-1", Position: 1},
		{ID: "t-3", ColumnID: "col-2", Position: 0},
	}

	resp, err := uc.Create(context.Background(), dto.CreateTaskRequest{
		Title:    "Llamar al cliente",
		ColumnID: "col-1",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Position, "detrás de las dos existentes en col-1")
	assert.Equal(t, entity.PriorityMedium, resp.Priority, "prioridad por defecto")
	assert.Equal(t, entity.TaskStatusTodo, resp.Status)
}

func TestTask_CreateColumnaInexistente(t *testing.T) {
	uc, _, _ := newTaskUC()

	_, err := uc.Create(context.Background(), dto.CreateTaskRequest{Title: "X", ColumnID: "no-existe"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTask_CreatePrioridadInvalida(t *testing.T) {
	uc, _, _ := newTaskUC()

	_, err := uc.Create(context.Background(), dto.CreateTaskRequest{
		Title: "X", ColumnID: "col-1", Priority: "critical",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Move solo toca columna y posición: título, estado y el resto de campos
// quedan intactos, y las hermanas no se renumeran.
func TestTask_MoveNoTocaOtrosCampos(t *testing.T) {
	uc, taskRepo, _ := newTaskUC()
	taskRepo.tasks = []*entity.Task{
		{ID: "t-1", Title: "Preparar envío", Status: entity.TaskStatusInProgress, ColumnID: "col-1", Position: 0},
		{ID: "t-2", Title: "Hermana", ColumnID: "col-1", Position: 1},
	}

	err := uc.Move(context.Background(), "t-1", dto.MoveTaskRequest{ColumnID: "col-2", Position: 3})
	require.NoError(t, err)

	moved := taskRepo.tasks[0]
	assert.Equal(t, "col-2", moved.ColumnID)
	assert.Equal(t, 3, moved.Position)
	assert.Equal(t, "Preparar envío", moved.Title)
	assert.Equal(t, entity.TaskStatusInProgress, moved.Status)
	assert.Equal(t, 1, taskRepo.tasks[1].Position, "la hermana no se renumera")
}

func TestTask_MoveAColumnaInexistente(t *testing.T) {
	uc, taskRepo, _ := newTaskUC()
	taskRepo.tasks = []*entity.Task{{ID: "t-1", ColumnID: "col-1"}}

	err := uc.Move(context.Background(), "t-1", dto.MoveTaskRequest{ColumnID: "no-existe"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "col-1", taskRepo.tasks[0].ColumnID)
}

func TestTask_StatusDoneFijaCompletedAt(t *testing.T) {
	uc, taskRepo, _ := newTaskUC()
	taskRepo.tasks = []*entity.Task{{ID: "t-1", ColumnID: "col-1", Status: entity.TaskStatusInProgress}}

	require.NoError(t, uc.UpdateStatus(context.Background(), "t-1", entity.TaskStatusDone))
	assert.NotNil(t, taskRepo.tasks[0].CompletedAt)

	// al salir de done la marca de completado se limpia
	require.NoError(t, uc.UpdateStatus(context.Background(), "t-1", entity.TaskStatusTodo))
	assert.Nil(t, taskRepo.tasks[0].CompletedAt)
}

func TestTask_StatusInvalido(t *testing.T) {
	uc, taskRepo, _ := newTaskUC()
	taskRepo.tasks = []*entity.Task{{ID: "t-1", ColumnID: "col-1"}}

	err := uc.UpdateStatus(context.Background(), "t-1", "archived")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTask_UpdateNoCambiaColumnaNiPosicion(t *testing.T) {
	uc, taskRepo, _ := newTaskUC()
	taskRepo.tasks = []*entity.Task{{ID: "t-1", Title: "Antes", ColumnID: "col-2", Position: 4}}

	resp, err := uc.Update(context.Background(), "t-1", dto.UpdateTaskRequest{
		Title: "Después", Priority: entity.PriorityHigh,
	})
	require.NoError(t, err)

	assert.Equal(t, "Después", resp.Title)
	assert.Equal(t, entity.PriorityHigh, resp.Priority)
	assert.Equal(t, "col-2", resp.ColumnID)
	assert.Equal(t, 4, resp.Position)
}

func TestTask_Delete(t *testing.T) {
	uc, taskRepo, _ := newTaskUC()
	taskRepo.tasks = []*entity.Task{{ID: "t-1", ColumnID: "col-1"}}

	require.NoError(t, uc.Delete(context.Background(), "t-1"))
	assert.Empty(t, taskRepo.tasks)

	assert.ErrorIs(t, uc.Delete(context.Background(), "t-1"), domain.ErrNotFound)
}
