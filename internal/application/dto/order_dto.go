package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemInput una línea del formulario de pedido. Las cantidades y precios
// llegan como número o como texto; decimal.Decimal acepta ambos.
type OrderItemInput struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// SaveOptionsInput acciones post-guardado seleccionables de forma independiente.
// AttachPDF solo tiene sentido con SendWhatsApp activo; si no, se fuerza a false.
type SaveOptionsInput struct {
	CreatePDF    bool `json:"create_pdf"`
	SendWhatsApp bool `json:"send_whatsapp"`
	AttachPDF    bool `json:"attach_pdf"`
	CreateTask   bool `json:"create_task"`
	Print        bool `json:"print"`
}

// DefaultSaveOptions valores iniciales del paso "acciones post-guardado".
func DefaultSaveOptions() SaveOptionsInput {
	return SaveOptionsInput{CreatePDF: true, CreateTask: true}
}

// CreateOrderRequest petición completa del flujo de pedido.
// Con IsNewCustomer=true se usa Customer; si no, CustomerID debe referenciar
// un cliente existente.
type CreateOrderRequest struct {
	IsNewCustomer bool              `json:"is_new_customer"`
	CustomerID    string            `json:"customer_id"`
	Customer      CustomerInput     `json:"customer"`
	Items         []OrderItemInput  `json:"items"`
	Options       *SaveOptionsInput `json:"options"` // nil = DefaultSaveOptions
}

// OrderItemResponse línea de pedido con su total calculado.
type OrderItemResponse struct {
	ID          string          `json:"id,omitempty"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// OrderTotals desglose monetario del pedido.
type OrderTotals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	TaxRate  decimal.Decimal `json:"tax_percent"`
	Tax      decimal.Decimal `json:"tax_amount"`
	Final    decimal.Decimal `json:"final_amount"`
}

// PrepareOrderResponse resultado de la validación previa: totales calculados en
// el servidor y opciones por defecto para el paso de revisión.
type PrepareOrderResponse struct {
	Items   []OrderItemResponse `json:"items"`
	Totals  OrderTotals         `json:"totals"`
	Options SaveOptionsInput    `json:"options"`
}

// ActionResults resultado de las acciones post-guardado.
type ActionResults struct {
	TaskCreated  bool   `json:"task_created"`
	PDFURL       string `json:"pdf_url,omitempty"`
	WhatsAppLink string `json:"whatsapp_link,omitempty"`
	PrintURL     string `json:"print_url,omitempty"`
}

// OrderResponse representación pública del pedido.
type OrderResponse struct {
	ID          string              `json:"id"`
	OrderNumber string              `json:"order_number"`
	CustomerID  string              `json:"customer_id"`
	Customer    *CustomerResponse   `json:"customer,omitempty"`
	OrderDate   time.Time           `json:"order_date"`
	TotalAmount decimal.Decimal     `json:"total_amount"`
	TaxPercent  decimal.Decimal     `json:"tax_percent"`
	TaxAmount   decimal.Decimal     `json:"tax_amount"`
	FinalAmount decimal.Decimal     `json:"final_amount"`
	Status      string              `json:"status"`
	Items       []OrderItemResponse `json:"items,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}

// CreateOrderResponse pedido confirmado más el resultado de cada acción.
type CreateOrderResponse struct {
	Order   OrderResponse `json:"order"`
	Actions ActionResults `json:"actions"`
}
