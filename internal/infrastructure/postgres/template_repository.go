package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/gestion-pro/internal/domain"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

var _ repository.TemplateRepository = (*TemplateRepo)(nil)

const templateColumns = `id, template_name, template_text, description, is_active, created_at, updated_at`

// TemplateRepo implementación de TemplateRepository (usable con pool o tx).
type TemplateRepo struct {
	q Querier
}

// NewTemplateRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTemplateRepository(q Querier) *TemplateRepo {
	return &TemplateRepo{q: q}
}

// Create persiste una nueva plantilla.
func (r *TemplateRepo) Create(ctx context.Context, tpl *entity.WhatsAppTemplate) error {
	query := `
		INSERT INTO whatsapp_templates (` + templateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		tpl.ID, tpl.TemplateName, tpl.TemplateText, tpl.Description, tpl.IsActive,
		tpl.CreatedAt, tpl.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert template: %w", err)
	}
	return nil
}

// GetByID obtiene una plantilla por ID; (nil, nil) si no existe.
func (r *TemplateRepo) GetByID(ctx context.Context, id string) (*entity.WhatsAppTemplate, error) {
	t, err := scanTemplate(r.q.QueryRow(ctx, `SELECT `+templateColumns+` FROM whatsapp_templates WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get template: %w", err)
	}
	return t, nil
}

// GetByName busca por template_name; (nil, nil) si no existe.
func (r *TemplateRepo) GetByName(ctx context.Context, name string) (*entity.WhatsAppTemplate, error) {
	t, err := scanTemplate(r.q.QueryRow(ctx, `SELECT `+templateColumns+` FROM whatsapp_templates WHERE template_name = $1`, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get template by name: %w", err)
	}
	return t, nil
}

// List devuelve las plantillas por orden de creación ascendente.
func (r *TemplateRepo) List(ctx context.Context) ([]*entity.WhatsAppTemplate, error) {
	rows, err := r.q.Query(ctx, `SELECT `+templateColumns+` FROM whatsapp_templates ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	var list []*entity.WhatsAppTemplate
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// Update actualiza texto, descripción y estado de activación. El nombre nunca cambia.
func (r *TemplateRepo) Update(ctx context.Context, tpl *entity.WhatsAppTemplate) error {
	query := `
		UPDATE whatsapp_templates SET template_text = $2, description = $3, is_active = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		tpl.ID, tpl.TemplateText, tpl.Description, tpl.IsActive, tpl.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update template: %w", err)
	}
	return nil
}

// Delete elimina una plantilla por ID.
func (r *TemplateRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM whatsapp_templates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	return nil
}

func scanTemplate(row pgx.Row) (*entity.WhatsAppTemplate, error) {
	var t entity.WhatsAppTemplate
	err := row.Scan(
		&t.ID, &t.TemplateName, &t.TemplateText, &t.Description, &t.IsActive,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
