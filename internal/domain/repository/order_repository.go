package repository

import (
	"context"

	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
)

// OrderRepository acceso a las tablas orders y order_items.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	CreateItem(ctx context.Context, item *entity.OrderItem) error
	// GetByID devuelve el pedido con cliente e items; (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	// List devuelve los pedidos con su cliente, más recientes primero.
	List(ctx context.Context) ([]*entity.Order, error)
	// ListByCustomer devuelve el historial de pedidos de un cliente, más recientes primero.
	ListByCustomer(ctx context.Context, customerID string) ([]*entity.Order, error)
	// MaxOrderNumber devuelve el mayor valor numérico de order_number existente
	// (0 si no hay pedidos). Alimenta el fallback del generador de números.
	MaxOrderNumber(ctx context.Context) (int, error)
}
