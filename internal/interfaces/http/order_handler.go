package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/application/orders"
	"github.com/tu-usuario/gestion-pro/internal/infrastructure/excel"
	"github.com/tu-usuario/gestion-pro/internal/infrastructure/printdoc"
)

// OrderHandler maneja las peticiones HTTP de pedidos (protegido).
type OrderHandler struct {
	createUC *orders.CreateOrderUseCase
	queryUC  *orders.OrderQueryUseCase
	pdfUC    *orders.PDFUseCase
	printer  *printdoc.Renderer
	report   *excel.OrdersReport
}

// NewOrderHandler construye el handler.
func NewOrderHandler(
	createUC *orders.CreateOrderUseCase,
	queryUC *orders.OrderQueryUseCase,
	pdfUC *orders.PDFUseCase,
	printer *printdoc.Renderer,
	report *excel.OrdersReport,
) *OrderHandler {
	return &OrderHandler{
		createUC: createUC,
		queryUC:  queryUC,
		pdfUC:    pdfUC,
		printer:  printer,
		report:   report,
	}
}

// Prepare valida el borrador y devuelve los totales calculados en el servidor
// sin persistir nada (paso de revisión previo al guardado).
// POST /api/orders/prepare
func (h *OrderHandler) Prepare(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.createUC.Prepare(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Create guarda el pedido (cliente + cabecera + items en una transacción)
// y ejecuta las acciones posteriores elegidas.
// POST /api/orders
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.createUC.Execute(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List devuelve todos los pedidos con su cliente.
// GET /api/orders
func (h *OrderHandler) List(c *fiber.Ctx) error {
	list, err := h.queryUC.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID devuelve un pedido con cliente e items.
// GET /api/orders/:id
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	resp, err := h.queryUC.Get(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// PDF devuelve el documento PDF del pedido.
// GET /api/orders/:id/pdf
func (h *OrderHandler) PDF(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	data, filename, err := h.pdfUC.OrderPDF(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%s", filename))
	return c.Send(data)
}

// Print devuelve la vista imprimible HTML del pedido.
// GET /api/orders/:id/print
func (h *OrderHandler) Print(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	order, customer, err := h.queryUC.GetEntities(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	html, err := h.printer.RenderOrder(order, customer)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(html)
}

// Export devuelve el listado de pedidos como XLSX.
// GET /api/orders/export
func (h *OrderHandler) Export(c *fiber.Ctx) error {
	list, err := h.queryUC.ListEntities(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	data, err := h.report.Generate(list)
	if err != nil {
		return respondError(c, err)
	}
	filename := fmt.Sprintf("pedidos_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, "attachment; filename="+filename)
	return c.Send(data)
}
