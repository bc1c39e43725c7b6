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

	"github.com/jhoicas/ObraCore-api/internal/application/inventory"
	"github.com/jhoicas/ObraCore-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/ObraCore-api/internal/infrastructure/pdf"
	"github.com/jhoicas/ObraCore-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/ObraCore-api/internal/interfaces/http"
	"github.com/jhoicas/ObraCore-api/pkg/config"
	"github.com/jhoicas/ObraCore-api/pkg/logger"
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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	stockTxRepo := postgres.NewStockTransactionRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	vendorRepo := postgres.NewVendorRepository(pool)
	equipmentRepo := postgres.NewEquipmentRepository(pool)
	equipmentTxRepo := postgres.NewEquipmentTransactionRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	orderRepo := postgres.NewPurchaseOrderRepository(pool)
	apiKeyRepo := postgres.NewAPIKeyRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	createProductUC := inventory.NewCreateProductUseCase(txRunner, productRepo)
	postTransactionUC := inventory.NewPostTransactionUseCase(txRunner, productRepo)
	productUC := usecase.NewProductUseCase(productRepo, stockTxRepo, categoryRepo, locationRepo)
	transactionUC := usecase.NewTransactionUseCase(stockTxRepo, productRepo)
	vendorUC := usecase.NewVendorUseCase(vendorRepo)
	equipmentUC := usecase.NewEquipmentUseCase(equipmentRepo, equipmentTxRepo)
	projectUC := usecase.NewProjectUseCase(projectRepo, taskRepo)

	// PDF: documento imprimible de la orden de compra
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	purchaseOrderUC := usecase.NewPurchaseOrderUseCase(orderRepo, pdfGenerator)
	settingsUC := usecase.NewSettingsUseCase(apiKeyRepo)

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
		Title:    "ObraCore API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CreateProduct:   createProductUC,
		PostTransaction: postTransactionUC,
		ProductUC:       productUC,
		TransactionUC:   transactionUC,
		VendorUC:        vendorUC,
		EquipmentUC:     equipmentUC,
		ProjectUC:       projectUC,
		PurchaseOrderUC: purchaseOrderUC,
		SettingsUC:      settingsUC,
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
