package repository

import (
	"context"

	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
)

// TemplateRepository acceso a la tabla whatsapp_templates.
type TemplateRepository interface {
	Create(ctx context.Context, tpl *entity.WhatsAppTemplate) error
	GetByID(ctx context.Context, id string) (*entity.WhatsAppTemplate, error)
	// GetByName busca por template_name; (nil, nil) si no existe.
	GetByName(ctx context.Context, name string) (*entity.WhatsAppTemplate, error)
	// List devuelve las plantillas por orden de creación ascendente.
	List(ctx context.Context) ([]*entity.WhatsAppTemplate, error)
	Update(ctx context.Context, tpl *entity.WhatsAppTemplate) error
	Delete(ctx context.Context, id string) error
}
