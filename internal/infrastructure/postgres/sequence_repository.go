package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

var _ repository.SequenceRepository = (*SequenceRepo)(nil)

// SequenceRepo numeración del servidor: funciones PostgreSQL respaldadas por
// secuencias (atómicas bajo concurrencia, sin números repetidos).
type SequenceRepo struct {
	q Querier
}

// NewSequenceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSequenceRepository(q Querier) *SequenceRepo {
	return &SequenceRepo{q: q}
}

// NextCustomerCode devuelve el siguiente código de cliente formateado.
func (r *SequenceRepo) NextCustomerCode(ctx context.Context) (string, error) {
	var code string
	if err := r.q.QueryRow(ctx, `SELECT generate_customer_code()`).Scan(&code); err != nil {
		return "", fmt.Errorf("next customer code: %w", err)
	}
	return code, nil
}

// NextOrderNumber devuelve el siguiente número de pedido formateado.
func (r *SequenceRepo) NextOrderNumber(ctx context.Context) (string, error) {
	var number string
	if err := r.q.QueryRow(ctx, `SELECT generate_order_number()`).Scan(&number); err != nil {
		return "", fmt.Errorf("next order number: %w", err)
	}
	return number, nil
}
