package dto

import "time"

// TemplateInput alta o edición de plantilla de WhatsApp.
// En edición el nombre no se modifica (es la clave que usa el flujo de pedidos).
type TemplateInput struct {
	TemplateName string `json:"template_name" validate:"required"`
	TemplateText string `json:"template_text" validate:"required"`
	Description  string `json:"description"`
	IsActive     *bool  `json:"is_active"` // nil = true
}

// TemplateResponse representación pública de la plantilla.
type TemplateResponse struct {
	ID           string    `json:"id"`
	TemplateName string    `json:"template_name"`
	TemplateText string    `json:"template_text"`
	Description  string    `json:"description,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
