package orders

import (
	"context"
	"fmt"

	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/domain"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

// OrderQueryUseCase lecturas de pedidos (listado y detalle).
type OrderQueryUseCase struct {
	orderRepo repository.OrderRepository
}

// NewOrderQueryUseCase construye el caso de uso.
func NewOrderQueryUseCase(orderRepo repository.OrderRepository) *OrderQueryUseCase {
	return &OrderQueryUseCase{orderRepo: orderRepo}
}

// List devuelve todos los pedidos con su cliente, más recientes primero.
func (uc *OrderQueryUseCase) List(ctx context.Context) ([]dto.OrderResponse, error) {
	list, err := uc.orderRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, toOrderResponse(o, o.Customer))
	}
	return out, nil
}

// Get devuelve un pedido con cliente e items.
func (uc *OrderQueryUseCase) Get(ctx context.Context, id string) (*dto.OrderResponse, error) {
	o, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, fmt.Errorf("%w: pedido %s", domain.ErrNotFound, id)
	}
	resp := toOrderResponse(o, o.Customer)
	return &resp, nil
}

// ListEntities devuelve las entidades crudas de todos los pedidos (para el informe XLSX).
func (uc *OrderQueryUseCase) ListEntities(ctx context.Context) ([]*entity.Order, error) {
	return uc.orderRepo.List(ctx)
}

// GetEntities devuelve las entidades crudas del pedido (para PDF e impresión).
func (uc *OrderQueryUseCase) GetEntities(ctx context.Context, id string) (*entity.Order, *entity.Customer, error) {
	o, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if o == nil {
		return nil, nil, fmt.Errorf("%w: pedido %s", domain.ErrNotFound, id)
	}
	return o, o.Customer, nil
}

func toOrderResponse(o *entity.Order, c *entity.Customer) dto.OrderResponse {
	resp := dto.OrderResponse{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		CustomerID:  o.CustomerID,
		Customer:    toCustomerResponse(c),
		OrderDate:   o.OrderDate,
		TotalAmount: o.TotalAmount,
		TaxPercent:  o.TaxPercent,
		TaxAmount:   o.TaxAmount,
		FinalAmount: o.FinalAmount,
		Status:      o.Status,
		CreatedAt:   o.CreatedAt,
	}
	for _, it := range o.Items {
		resp.Items = append(resp.Items, dto.OrderItemResponse{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.TotalPrice,
		})
	}
	return resp
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	return &dto.CustomerResponse{
		ID:            c.ID,
		CustomerCode:  c.CustomerCode,
		CustomerType:  c.CustomerType,
		Name:          c.Name,
		Phone:         c.Phone,
		Email:         c.Email,
		ContactPerson: c.ContactPerson,
		PayerName:     c.PayerName,
		IDNumber:      c.IDNumber,
		Address:       c.Address,
		City:          c.City,
		Notes:         c.Notes,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
