package templates_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/application/templates"
	"github.com/tu-usuario/gestion-pro/internal/domain"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
)

type memTemplateRepo struct {
	byID map[string]*entity.WhatsAppTemplate
}

func newMemTemplateRepo() *memTemplateRepo {
	return &memTemplateRepo{byID: make(map[string]*entity.WhatsAppTemplate)}
}

func (r *memTemplateRepo) Create(_ context.Context, t *entity.WhatsAppTemplate) error {
	r.byID[t.ID] = t
	return nil
}

func (r *memTemplateRepo) GetByID(_ context.Context, id string) (*entity.WhatsAppTemplate, error) {
	return r.byID[id], nil
}

func (r *memTemplateRepo) GetByName(_ context.Context, name string) (*entity.WhatsAppTemplate, error) {
	for _, t := range r.byID {
		if t.TemplateName == name {
			return t, nil
		}
	}
	return nil, nil
}

func (r *memTemplateRepo) List(_ context.Context) ([]*entity.WhatsAppTemplate, error) {
	out := make([]*entity.WhatsAppTemplate, 0, len(r.byID))
	for _, t := range r.byID {
		out = append(out, t)
	}
	return out, nil
}

func (r *memTemplateRepo) Update(_ context.Context, t *entity.WhatsAppTemplate) error {
	r.byID[t.ID] = t
	return nil
}

func (r *memTemplateRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Render
// ──────────────────────────────────────────────────────────────────────────────

func TestRender_SustituyePlaceholders(t *testing.T) {
	got := templates.Render("Hola {customer_name}, tu pedido {order_number} está listo", "María", "1042")

	assert.Equal(t, "Hola María, tu pedido 1042 está listo", got)
}

func TestRender_PlaceholdersRepetidos(t *testing.T) {
	got := templates.Render("{order_number} / {order_number} para {customer_name}", "Ana", "1001")

	assert.Equal(t, "1001 / 1001 para Ana", got)
}

func TestRender_TextoSinPlaceholders(t *testing.T) {
	got := templates.Render("Mensaje fijo sin variables", "Ana", "1001")

	assert.Equal(t, "Mensaje fijo sin variables", got)
}

// ──────────────────────────────────────────────────────────────────────────────
// CRUD
// ──────────────────────────────────────────────────────────────────────────────

func TestTemplates_CreateActivaPorDefecto(t *testing.T) {
	uc := templates.NewUseCase(newMemTemplateRepo())

	resp, err := uc.Create(context.Background(), dto.TemplateInput{
		TemplateName: "recordatorio",
		TemplateText: "Hola {customer_name}",
	})
	require.NoError(t, err)

	assert.True(t, resp.IsActive, "sin is_active explícito la plantilla nace activa")
}

func TestTemplates_CreateNombreDuplicado(t *testing.T) {
	repo := newMemTemplateRepo()
	uc := templates.NewUseCase(repo)
	_, err := uc.Create(context.Background(), dto.TemplateInput{TemplateName: "recordatorio", TemplateText: "A"})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), dto.TemplateInput{TemplateName: "recordatorio", TemplateText: "B"})

	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestTemplates_CreateSinTexto(t *testing.T) {
	uc := templates.NewUseCase(newMemTemplateRepo())

	_, err := uc.Create(context.Background(), dto.TemplateInput{TemplateName: "recordatorio"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El nombre es la clave que busca el flujo de pedidos: la edición nunca lo cambia.
func TestTemplates_UpdateNoCambiaElNombre(t *testing.T) {
	repo := newMemTemplateRepo()
	uc := templates.NewUseCase(repo)
	created, err := uc.Create(context.Background(), dto.TemplateInput{TemplateName: "new_order", TemplateText: "A"})
	require.NoError(t, err)

	inactive := false
	resp, err := uc.Update(context.Background(), created.ID, dto.TemplateInput{
		TemplateName: "otro_nombre",
		TemplateText: "B",
		IsActive:     &inactive,
	})
	require.NoError(t, err)

	assert.Equal(t, "new_order", resp.TemplateName)
	assert.Equal(t, "B", resp.TemplateText)
	assert.False(t, resp.IsActive)
}

func TestTemplates_DeleteInexistente(t *testing.T) {
	uc := templates.NewUseCase(newMemTemplateRepo())

	assert.ErrorIs(t, uc.Delete(context.Background(), "no-existe"), domain.ErrNotFound)
}
