package dto

import "time"

// CustomerInput datos de cliente para creación o edición.
type CustomerInput struct {
	CustomerType  string `json:"customer_type"`
	Name          string `json:"name" validate:"required"`
	Phone         string `json:"phone" validate:"required"`
	Email         string `json:"email" validate:"omitempty,email"`
	ContactPerson string `json:"contact_person"`
	PayerName     string `json:"payer_name"`
	IDNumber      string `json:"id_number"`
	Address       string `json:"address"`
	City          string `json:"city"`
	Notes         string `json:"notes"`
}

// CustomerResponse representación pública del cliente.
type CustomerResponse struct {
	ID            string    `json:"id"`
	CustomerCode  string    `json:"customer_code"`
	CustomerType  string    `json:"customer_type"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email,omitempty"`
	ContactPerson string    `json:"contact_person,omitempty"`
	PayerName     string    `json:"payer_name,omitempty"`
	IDNumber      string    `json:"id_number,omitempty"`
	Address       string    `json:"address,omitempty"`
	City          string    `json:"city,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
