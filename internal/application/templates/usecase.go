package templates

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/domain"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

// Render sustituye los placeholders {customer_name} y {order_number} en el
// texto de la plantilla.
func Render(text, customerName, orderNumber string) string {
	text = strings.ReplaceAll(text, "{customer_name}", customerName)
	text = strings.ReplaceAll(text, "{order_number}", orderNumber)
	return text
}

// UseCase CRUD de plantillas de WhatsApp.
type UseCase struct {
	repo repository.TemplateRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.TemplateRepository) *UseCase {
	return &UseCase{repo: repo}
}

// List devuelve todas las plantillas por orden de creación.
func (uc *UseCase) List(ctx context.Context) ([]dto.TemplateResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TemplateResponse, 0, len(list))
	for _, t := range list {
		out = append(out, toResponse(t))
	}
	return out, nil
}

// Create da de alta una plantilla. El nombre es único.
func (uc *UseCase) Create(ctx context.Context, in dto.TemplateInput) (*dto.TemplateResponse, error) {
	if strings.TrimSpace(in.TemplateName) == "" || strings.TrimSpace(in.TemplateText) == "" {
		return nil, fmt.Errorf("%w: nombre y texto de plantilla son obligatorios", domain.ErrInvalidInput)
	}
	existing, err := uc.repo.GetByName(ctx, in.TemplateName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	now := time.Now()
	tpl := &entity.WhatsAppTemplate{
		ID:           uuid.New().String(),
		TemplateName: in.TemplateName,
		TemplateText: in.TemplateText,
		Description:  in.Description,
		IsActive:     active,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, tpl); err != nil {
		return nil, err
	}
	resp := toResponse(tpl)
	return &resp, nil
}

// Update edita texto, descripción y estado. El nombre no se toca: es la clave
// que busca el flujo de pedidos.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.TemplateInput) (*dto.TemplateResponse, error) {
	tpl, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tpl == nil {
		return nil, fmt.Errorf("%w: plantilla %s", domain.ErrNotFound, id)
	}
	if strings.TrimSpace(in.TemplateText) == "" {
		return nil, fmt.Errorf("%w: el texto de la plantilla es obligatorio", domain.ErrInvalidInput)
	}
	tpl.TemplateText = in.TemplateText
	tpl.Description = in.Description
	if in.IsActive != nil {
		tpl.IsActive = *in.IsActive
	}
	tpl.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, tpl); err != nil {
		return nil, err
	}
	resp := toResponse(tpl)
	return &resp, nil
}

// Delete elimina una plantilla.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	tpl, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if tpl == nil {
		return fmt.Errorf("%w: plantilla %s", domain.ErrNotFound, id)
	}
	return uc.repo.Delete(ctx, id)
}

func toResponse(t *entity.WhatsAppTemplate) dto.TemplateResponse {
	return dto.TemplateResponse{
		ID:           t.ID,
		TemplateName: t.TemplateName,
		TemplateText: t.TemplateText,
		Description:  t.Description,
		IsActive:     t.IsActive,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}
