package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del pedido. Un pedido nace "pending"; su contenido es inmutable tras la creación.
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// TaxPercent es el IVA fijo aplicado a todos los pedidos (no configurable).
var TaxPercent = decimal.NewFromInt(18)

// Order representa la cabecera de un pedido.
// TotalAmount es el subtotal sin impuestos; FinalAmount = TotalAmount + TaxAmount.
type Order struct {
	ID          string
	OrderNumber string
	CustomerID  string
	OrderDate   time.Time
	TotalAmount decimal.Decimal
	TaxPercent  decimal.Decimal
	TaxAmount   decimal.Decimal
	FinalAmount decimal.Decimal
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Customer se rellena en las lecturas con join; nil en escrituras.
	Customer *Customer
	Items    []OrderItem
}

// OrderItem representa una línea del pedido (creada junto con la cabecera, misma transacción).
type OrderItem struct {
	ID          string
	OrderID     string
	Description string
	Quantity    decimal.Decimal // >= 1
	UnitPrice   decimal.Decimal // >= 0
	TotalPrice  decimal.Decimal // Quantity * UnitPrice
}
