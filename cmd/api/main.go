package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/gestion-pro/internal/application/auth"
	"github.com/tu-usuario/gestion-pro/internal/application/orders"
	"github.com/tu-usuario/gestion-pro/internal/application/tasks"
	"github.com/tu-usuario/gestion-pro/internal/application/templates"
	infraexcel "github.com/tu-usuario/gestion-pro/internal/infrastructure/excel"
	infrapdf "github.com/tu-usuario/gestion-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/gestion-pro/internal/infrastructure/postgres"
	"github.com/tu-usuario/gestion-pro/internal/infrastructure/printdoc"
	"github.com/tu-usuario/gestion-pro/internal/infrastructure/whatsapp"
	httpRouter "github.com/tu-usuario/gestion-pro/internal/interfaces/http"
	"github.com/tu-usuario/gestion-pro/internal/interfaces/ws"
	"github.com/tu-usuario/gestion-pro/pkg/config"
	"github.com/tu-usuario/gestion-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if err := postgres.Migrate(cfg.DB); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	customerRepo := postgres.NewCustomerRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	seqRepo := postgres.NewSequenceRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	columnRepo := postgres.NewTaskColumnRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	tplRepo := postgres.NewTemplateRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	numbers := orders.NewNumberGenerator(log)
	linkBuilder := whatsapp.NewDeepLinkBuilder(cfg.WhatsApp.BaseURL, cfg.WhatsApp.CountryCode)
	pdfGenerator := infrapdf.NewMarotoOrderPDF(cfg.App.Name)

	createOrderUC := orders.NewCreateOrderUseCase(
		txRunner, taskRepo, columnRepo, tplRepo, linkBuilder, numbers, log,
	)
	orderQueryUC := orders.NewOrderQueryUseCase(orderRepo)
	pdfUC := orders.NewPDFUseCase(orderRepo, pdfGenerator)
	customerUC := orders.NewCustomerUseCase(customerRepo, orderRepo, seqRepo, numbers)
	taskUC := tasks.NewUseCase(taskRepo, columnRepo)
	boardUC := tasks.NewBoardUseCase(columnRepo, txRunner)
	templateUC := templates.NewUseCase(tplRepo)
	authUC := auth.NewUseCase(userRepo, cfg.JWT, log)

	hub := ws.NewHub(log)
	go hub.Run()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name + " API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthHandler:     httpRouter.NewAuthHandler(authUC),
		CustomerHandler: httpRouter.NewCustomerHandler(customerUC),
		OrderHandler: httpRouter.NewOrderHandler(
			createOrderUC, orderQueryUC, pdfUC,
			printdoc.NewRenderer(), infraexcel.NewOrdersReport(),
		),
		TaskHandler:     httpRouter.NewTaskHandler(taskUC, hub),
		ColumnHandler:   httpRouter.NewColumnHandler(boardUC, hub),
		TemplateHandler: httpRouter.NewTemplateHandler(templateUC),
		Hub:             hub,
		JWTSecret:       cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
