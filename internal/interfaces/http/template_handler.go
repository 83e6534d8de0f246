package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/application/templates"
	"github.com/tu-usuario/gestion-pro/pkg/validation"
)

// TemplateHandler maneja las plantillas de WhatsApp (protegido).
type TemplateHandler struct {
	uc *templates.UseCase
}

// NewTemplateHandler construye el handler.
func NewTemplateHandler(uc *templates.UseCase) *TemplateHandler {
	return &TemplateHandler{uc: uc}
}

// List lista las plantillas.
// GET /api/whatsapp-templates
func (h *TemplateHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Create crea una plantilla con nombre único.
// POST /api/whatsapp-templates
func (h *TemplateHandler) Create(c *fiber.Ctx) error {
	var in dto.TemplateInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := validation.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	resp, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Update edita texto, descripción y activación. El nombre nunca cambia.
// PUT /api/whatsapp-templates/:id
func (h *TemplateHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.TemplateInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := validation.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	resp, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Delete elimina una plantilla.
// DELETE /api/whatsapp-templates/:id
func (h *TemplateHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
