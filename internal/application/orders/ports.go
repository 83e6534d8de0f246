package orders

import (
	"context"

	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

// OrderTxRunner ejecuta el guardado cliente → pedido → items dentro de UNA
// transacción: los repos que recibe el callback están atados a la tx.
type OrderTxRunner interface {
	RunOrder(ctx context.Context, fn func(
		customers repository.CustomerRepository,
		orders repository.OrderRepository,
		seq repository.SequenceRepository,
	) error) error
}

// DocumentGenerator produce el documento PDF del pedido.
type DocumentGenerator interface {
	GenerateOrderPDF(ctx context.Context, order *entity.Order, customer *entity.Customer) ([]byte, error)
}

// MessageLinkBuilder construye el deep-link de mensajería saliente
// (teléfono normalizado + cuerpo escapado). No hay confirmación de entrega.
type MessageLinkBuilder interface {
	BuildLink(phone, message string) (string, error)
}
