package orders

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// ItemTotal total de una línea: cantidad × precio unitario, sin redondeos.
func ItemTotal(quantity, unitPrice decimal.Decimal) decimal.Decimal {
	return quantity.Mul(unitPrice)
}

// Subtotal suma los totales de TODAS las líneas, incluidas las de descripción
// vacía (el filtrado ocurre solo al persistir).
func Subtotal(items []dto.OrderItemInput) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(ItemTotal(it.Quantity, it.UnitPrice))
	}
	return sum
}

// ComputeTotals calcula el desglose completo: subtotal, IVA (18% fijo) y total.
func ComputeTotals(items []dto.OrderItemInput) dto.OrderTotals {
	subtotal := Subtotal(items)
	tax := subtotal.Mul(entity.TaxPercent).Div(hundred)
	return dto.OrderTotals{
		Subtotal: subtotal,
		TaxRate:  entity.TaxPercent,
		Tax:      tax,
		Final:    subtotal.Add(tax),
	}
}

func toItemResponses(items []dto.OrderItemInput) []dto.OrderItemResponse {
	out := make([]dto.OrderItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.OrderItemResponse{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  ItemTotal(it.Quantity, it.UnitPrice),
		})
	}
	return out
}
