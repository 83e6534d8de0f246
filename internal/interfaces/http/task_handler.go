package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/application/tasks"
	"github.com/tu-usuario/gestion-pro/internal/interfaces/ws"
	"github.com/tu-usuario/gestion-pro/pkg/validation"
)

// TaskHandler maneja las peticiones HTTP de tareas (protegido).
// Cada mutación se difunde por el hub para los demás navegadores abiertos.
type TaskHandler struct {
	uc  *tasks.UseCase
	hub *ws.Hub
}

// NewTaskHandler construye el handler.
func NewTaskHandler(uc *tasks.UseCase, hub *ws.Hub) *TaskHandler {
	return &TaskHandler{uc: uc, hub: hub}
}

// List lista todas las tareas del tablero.
// GET /api/tasks
func (h *TaskHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Create crea una tarea en la columna indicada.
// POST /api/tasks
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTaskRequest
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
	h.hub.Broadcast(ws.EventTaskCreated, resp)
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Update edita los campos editables de una tarea (no columna, posición ni estado).
// PUT /api/tasks/:id
func (h *TaskHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.UpdateTaskRequest
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
	h.hub.Broadcast(ws.EventTaskUpdated, resp)
	return c.JSON(resp)
}

// Move mueve una tarea por arrastre: solo cambia columna y posición.
// PATCH /api/tasks/:id/move
func (h *TaskHandler) Move(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.MoveTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := validation.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	if err := h.uc.Move(c.Context(), id, in); err != nil {
		return respondError(c, err)
	}
	h.hub.Broadcast(ws.EventTaskMoved, fiber.Map{"id": id, "column_id": in.ColumnID, "position": in.Position})
	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateStatus cambia el estado de una tarea (done fija completed_at).
// PATCH /api/tasks/:id/status
func (h *TaskHandler) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.UpdateTaskStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := validation.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	if err := h.uc.UpdateStatus(c.Context(), id, in.Status); err != nil {
		return respondError(c, err)
	}
	h.hub.Broadcast(ws.EventTaskUpdated, fiber.Map{"id": id, "status": in.Status})
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete elimina una tarea.
// DELETE /api/tasks/:id
func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	h.hub.Broadcast(ws.EventTaskDeleted, fiber.Map{"id": id})
	return c.SendStatus(fiber.StatusNoContent)
}
