package entity

import "time"

// Nombres de plantilla que usa el flujo de pedidos.
const (
	TemplateNewOrder     = "new_order"
	TemplateOrderWithPDF = "order_with_pdf"
)

// WhatsAppTemplate representa una plantilla de mensaje saliente.
// El texto admite los placeholders {customer_name} y {order_number}.
type WhatsAppTemplate struct {
	ID           string
	TemplateName string // único
	TemplateText string
	Description  string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
