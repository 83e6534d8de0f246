package repository

import (
	"context"

	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
)

// CustomerRepository acceso a la tabla customers.
// Los Get* devuelven (nil, nil) cuando no hay fila.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	// List devuelve todos los clientes ordenados por nombre.
	List(ctx context.Context) ([]*entity.Customer, error)
	// Search busca por subcadena (case-insensitive) en nombre, teléfono o código,
	// ordenado por creación descendente.
	Search(ctx context.Context, term string) ([]*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id string) error
	// MaxCustomerCode devuelve el mayor valor numérico de customer_code existente
	// (0 si no hay clientes). Alimenta el fallback del generador de códigos.
	MaxCustomerCode(ctx context.Context) (int, error)
}
