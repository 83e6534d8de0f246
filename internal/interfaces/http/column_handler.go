package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/application/tasks"
	"github.com/tu-usuario/gestion-pro/internal/interfaces/ws"
	"github.com/tu-usuario/gestion-pro/pkg/validation"
)

// ColumnHandler maneja las columnas del tablero (protegido).
type ColumnHandler struct {
	uc  *tasks.BoardUseCase
	hub *ws.Hub
}

// NewColumnHandler construye el handler.
func NewColumnHandler(uc *tasks.BoardUseCase, hub *ws.Hub) *ColumnHandler {
	return &ColumnHandler{uc: uc, hub: hub}
}

// List lista las columnas por posición.
// GET /api/board/columns
func (h *ColumnHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Create crea una columna.
// POST /api/board/columns
func (h *ColumnHandler) Create(c *fiber.Ctx) error {
	var in dto.ColumnInput
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
	h.hub.Broadcast(ws.EventColumnCreated, resp)
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Update edita una columna.
// PUT /api/board/columns/:id
func (h *ColumnHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.ColumnInput
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
	h.hub.Broadcast(ws.EventColumnUpdated, resp)
	return c.JSON(resp)
}

// Delete elimina una columna. Sus tareas pasan a la primera columna restante;
// borrar la última columna devuelve 409.
// DELETE /api/board/columns/:id
func (h *ColumnHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	h.hub.Broadcast(ws.EventColumnDeleted, fiber.Map{"id": id})
	return c.SendStatus(fiber.StatusNoContent)
}
