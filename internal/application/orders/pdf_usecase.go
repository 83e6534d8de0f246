package orders

import (
	"context"
	"fmt"

	"github.com/tu-usuario/gestion-pro/internal/domain"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

// PDFUseCase genera el documento PDF de un pedido ya persistido.
type PDFUseCase struct {
	orderRepo repository.OrderRepository
	generator DocumentGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(orderRepo repository.OrderRepository, generator DocumentGenerator) *PDFUseCase {
	return &PDFUseCase{orderRepo: orderRepo, generator: generator}
}

// OrderPDF devuelve los bytes del PDF y el nombre de archivo sugerido.
func (uc *PDFUseCase) OrderPDF(ctx context.Context, orderID string) ([]byte, string, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, "", err
	}
	if order == nil {
		return nil, "", fmt.Errorf("%w: pedido %s", domain.ErrNotFound, orderID)
	}
	pdf, err := uc.generator.GenerateOrderPDF(ctx, order, order.Customer)
	if err != nil {
		return nil, "", fmt.Errorf("generar PDF del pedido: %w", err)
	}
	return pdf, fmt.Sprintf("pedido-%s.pdf", order.OrderNumber), nil
}
