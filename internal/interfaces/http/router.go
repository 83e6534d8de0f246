package http

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/interfaces/ws"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthHandler     *AuthHandler
	CustomerHandler *CustomerHandler
	OrderHandler    *OrderHandler
	TaskHandler     *TaskHandler
	ColumnHandler   *ColumnHandler
	TemplateHandler *TemplateHandler
	Hub             *ws.Hub
	JWTSecret       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", deps.AuthHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users (solo admin)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	users.Get("/", deps.AuthHandler.ListUsers)
	users.Post("/", deps.AuthHandler.CreateUser)
	users.Get("/:id", deps.AuthHandler.GetUser)
	users.Put("/:id", deps.AuthHandler.UpdateUser)
	users.Delete("/:id", deps.AuthHandler.DeleteUser)

	// Customers
	customers := protected.Group("/customers")
	customers.Get("/", deps.CustomerHandler.List)
	customers.Get("/search", deps.CustomerHandler.Search)
	customers.Post("/", deps.CustomerHandler.Create)
	customers.Put("/:id", deps.CustomerHandler.Update)
	customers.Delete("/:id", deps.CustomerHandler.Delete)
	customers.Get("/:id/orders", deps.CustomerHandler.Orders)

	// Orders
	orders := protected.Group("/orders")
	orders.Get("/", deps.OrderHandler.List)
	orders.Get("/export", deps.OrderHandler.Export)
	orders.Post("/prepare", deps.OrderHandler.Prepare)
	orders.Post("/", deps.OrderHandler.Create)
	orders.Get("/:id", deps.OrderHandler.GetByID)
	orders.Get("/:id/pdf", deps.OrderHandler.PDF)
	orders.Get("/:id/print", deps.OrderHandler.Print)

	// Tablero de tareas
	tasks := protected.Group("/tasks")
	tasks.Get("/", deps.TaskHandler.List)
	tasks.Post("/", deps.TaskHandler.Create)
	tasks.Put("/:id", deps.TaskHandler.Update)
	tasks.Patch("/:id/move", deps.TaskHandler.Move)
	tasks.Patch("/:id/status", deps.TaskHandler.UpdateStatus)
	tasks.Delete("/:id", deps.TaskHandler.Delete)

	board := protected.Group("/board/columns")
	board.Get("/", deps.ColumnHandler.List)
	board.Post("/", deps.ColumnHandler.Create)
	board.Put("/:id", deps.ColumnHandler.Update)
	board.Delete("/:id", deps.ColumnHandler.Delete)

	// Plantillas de WhatsApp
	templates := protected.Group("/whatsapp-templates")
	templates.Get("/", deps.TemplateHandler.List)
	templates.Post("/", deps.TemplateHandler.Create)
	templates.Put("/:id", deps.TemplateHandler.Update)
	templates.Delete("/:id", deps.TemplateHandler.Delete)

	// Websocket del tablero
	app.Use("/ws/board", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/board", websocket.New(deps.Hub.Handler()))
}
