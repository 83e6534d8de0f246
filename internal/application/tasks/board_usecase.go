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

// BoardUseCase gestión de las columnas del tablero configurable.
type BoardUseCase struct {
	columnRepo repository.TaskColumnRepository
	txRunner   BoardTxRunner
}

// NewBoardUseCase construye el caso de uso.
func NewBoardUseCase(columnRepo repository.TaskColumnRepository, txRunner BoardTxRunner) *BoardUseCase {
	return &BoardUseCase{columnRepo: columnRepo, txRunner: txRunner}
}

// List devuelve las columnas ordenadas por posición.
func (uc *BoardUseCase) List(ctx context.Context) ([]dto.ColumnResponse, error) {
	list, err := uc.columnRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ColumnResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toColumnResponse(c))
	}
	return out, nil
}

// Create da de alta una columna.
func (uc *BoardUseCase) Create(ctx context.Context, in dto.ColumnInput) (*dto.ColumnResponse, error) {
	now := time.Now()
	col := &entity.TaskColumn{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Color:     in.Color,
		Position:  in.Position,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.columnRepo.Create(ctx, col); err != nil {
		return nil, err
	}
	resp := toColumnResponse(col)
	return &resp, nil
}

// Update edita nombre, color y posición de una columna.
func (uc *BoardUseCase) Update(ctx context.Context, id string, in dto.ColumnInput) (*dto.ColumnResponse, error) {
	col, err := uc.columnRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if col == nil {
		return nil, fmt.Errorf("%w: columna %s", domain.ErrNotFound, id)
	}
	col.Name = in.Name
	col.Color = in.Color
	col.Position = in.Position
	col.UpdatedAt = time.Now()
	if err := uc.columnRepo.Update(ctx, col); err != nil {
		return nil, err
	}
	resp := toColumnResponse(col)
	return &resp, nil
}

// Delete elimina una columna reasignando antes sus tareas a la primera columna
// restante (por posición), todo en una transacción. Borrar la última columna
// está prohibido: las tareas se quedarían sin destino. El recuento total de
// tareas no cambia con la reasignación.
func (uc *BoardUseCase) Delete(ctx context.Context, id string) error {
	cols, err := uc.columnRepo.List(ctx)
	if err != nil {
		return err
	}
	var target *entity.TaskColumn
	found := false
	for _, c := range cols {
		if c.ID == id {
			found = true
			continue
		}
		if target == nil {
			target = c
		}
	}
	if !found {
		return fmt.Errorf("%w: columna %s", domain.ErrNotFound, id)
	}
	if target == nil {
		return domain.ErrLastColumn
	}

	return uc.txRunner.RunBoard(ctx, func(
		taskRepo repository.TaskRepository,
		columnRepo repository.TaskColumnRepository,
	) error {
		if err := taskRepo.ReassignColumn(ctx, id, target.ID); err != nil {
			return err
		}
		return columnRepo.Delete(ctx, id)
	})
}

func toColumnResponse(c *entity.TaskColumn) dto.ColumnResponse {
	return dto.ColumnResponse{
		ID:        c.ID,
		Name:      c.Name,
		Color:     c.Color,
		Position:  c.Position,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
