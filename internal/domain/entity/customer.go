package entity

import "time"

// Tipos de cliente.
const (
	CustomerTypePrivate  = "private"
	CustomerTypeBusiness = "business"
)

// Customer representa un cliente. El código se asigna una sola vez en la
// creación (secuencial, cadena de 4 dígitos con ceros a la izquierda) y nunca cambia.
type Customer struct {
	ID            string
	CustomerCode  string
	CustomerType  string // private | business
	Name          string
	Phone         string // obligatorio
	Email         string
	ContactPerson string
	PayerName     string
	IDNumber      string // NIF de empresa o documento personal
	Address       string
	City          string
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
