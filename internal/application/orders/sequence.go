package orders

import (
	"context"
	"fmt"

	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
	"github.com/tu-usuario/gestion-pro/pkg/logger"
)

// fallbackFloor piso del generador de respaldo: el primer número emitido es 1001.
const fallbackFloor = 1000

// NumberGenerator asigna códigos de cliente y números de pedido. La vía
// principal son las funciones atómicas de PostgreSQL; si fallan, se recurre a
// escanear el máximo existente e incrementarlo. Ese fallback es mejor-esfuerzo:
// dos clientes concurrentes pueden calcular el mismo número, no es una garantía
// de corrección.
type NumberGenerator struct {
	log *logger.Logger
}

// NewNumberGenerator construye el generador.
func NewNumberGenerator(log *logger.Logger) *NumberGenerator {
	return &NumberGenerator{log: log}
}

// CustomerCode devuelve el siguiente código de cliente.
func (g *NumberGenerator) CustomerCode(ctx context.Context, seq repository.SequenceRepository, customers repository.CustomerRepository) (string, error) {
	code, err := seq.NextCustomerCode(ctx)
	if err == nil {
		return code, nil
	}
	g.log.Warn().Err(err).Msg("generador de códigos de cliente no disponible, usando fallback")
	max, err := customers.MaxCustomerCode(ctx)
	if err != nil {
		return "", fmt.Errorf("fallback de código de cliente: %w", err)
	}
	return FallbackNumber(max), nil
}

// OrderNumber devuelve el siguiente número de pedido.
func (g *NumberGenerator) OrderNumber(ctx context.Context, seq repository.SequenceRepository, orders repository.OrderRepository) (string, error) {
	number, err := seq.NextOrderNumber(ctx)
	if err == nil {
		return number, nil
	}
	g.log.Warn().Err(err).Msg("generador de números de pedido no disponible, usando fallback")
	max, err := orders.MaxOrderNumber(ctx)
	if err != nil {
		return "", fmt.Errorf("fallback de número de pedido: %w", err)
	}
	return FallbackNumber(max), nil
}

// FallbackNumber calcula max(actual, 1000)+1 formateado a 4 dígitos con ceros a
// la izquierda (los valores de 5+ dígitos conservan su anchura).
func FallbackNumber(current int) string {
	if current < fallbackFloor {
		current = fallbackFloor
	}
	return fmt.Sprintf("%04d", current+1)
}
