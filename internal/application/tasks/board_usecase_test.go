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

func newBoard() (*tasks.BoardUseCase, *memTaskRepo, *memColumnRepo) {
	taskRepo := &memTaskRepo{}
	columnRepo := &memColumnRepo{columns: []*entity.TaskColumn{
		{ID: "col-1", Name: "Pendiente", Position: 0},
		{ID: "col-2", Name: "En progreso", Position: 1},
		{ID: "col-3", Name: "Hecho", Position: 2},
	}}
	runner := &memBoardTxRunner{tasks: taskRepo, columns: columnRepo}
	return tasks.NewBoardUseCase(columnRepo, runner), taskRepo, columnRepo
}

// ──────────────────────────────────────────────────────────────────────────────

func TestBoard_CreateYList(t *testing.T) {
	uc, _, _ := newBoard()

	created, err := uc.Create(context.Background(), dto.ColumnInput{Name: "Bloqueado", Color: "#cc0000", Position: 3})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 4)
	assert.Equal(t, "Bloqueado", list[3].Name, "ordenadas por posición")
}

func TestBoard_UpdateColumnaInexistente(t *testing.T) {
	uc, _, _ := newBoard()

	_, err := uc.Update(context.Background(), "no-existe", dto.ColumnInput{Name: "X"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Borrar una columna reasigna sus tareas a la primera columna restante; el
// recuento total de tareas no cambia.
func TestBoard_DeleteReasignaTareas(t *testing.T) {
	uc, taskRepo, columnRepo := newBoard()
	taskRepo.tasks = []*entity.Task{
		{ID: "t-1", ColumnID: "col-2"},
		{ID: "t-2", ColumnID: "col-2"},
		{ID: "t-3", ColumnID: "col-3"},
	}

	err := uc.Delete(context.Background(), "col-2")
	require.NoError(t, err)

	assert.Len(t, columnRepo.columns, 2)
	assert.Len(t, taskRepo.tasks, 3, "ninguna tarea se pierde")
	for _, task := range taskRepo.tasks[:2] {
		assert.Equal(t, "col-1", task.ColumnID, "las huérfanas van a la primera columna restante")
	}
	assert.Equal(t, "col-3", taskRepo.tasks[2].ColumnID, "las demás no se tocan")
}

func TestBoard_DeletePrimeraColumna(t *testing.T) {
	uc, taskRepo, _ := newBoard()
	taskRepo.tasks = []*entity.Task{{ID: "t-1", ColumnID: "col-1"}}

	err := uc.Delete(context.Background(), "col-1")
	require.NoError(t, err)

	// col-1 borrada: el destino es la siguiente por posición.
	assert.Equal(t, "col-2", taskRepo.tasks[0].ColumnID)
}

func TestBoard_DeleteUltimaColumnaProhibido(t *testing.T) {
	uc, _, columnRepo := newBoard()
	columnRepo.columns = columnRepo.columns[:1]

	err := uc.Delete(context.Background(), "col-1")

	assert.ErrorIs(t, err, domain.ErrLastColumn)
	assert.Len(t, columnRepo.columns, 1, "la columna debe seguir existiendo")
}

func TestBoard_DeleteColumnaInexistente(t *testing.T) {
	uc, _, columnRepo := newBoard()

	err := uc.Delete(context.Background(), "no-existe")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Len(t, columnRepo.columns, 3)
}

// Si la reasignación falla la columna no debe borrarse: ambas operaciones van
// en la misma transacción.
func TestBoard_DeleteAtomico(t *testing.T) {
	uc, taskRepo, columnRepo := newBoard()
	taskRepo.tasks = []*entity.Task{{ID: "t-1", ColumnID: "col-2"}}
	taskRepo.failReassign = true

	err := uc.Delete(context.Background(), "col-2")

	require.Error(t, err)
	assert.Len(t, columnRepo.columns, 3, "la columna sobrevive al fallo")
	assert.Equal(t, "col-2", taskRepo.tasks[0].ColumnID)
}
