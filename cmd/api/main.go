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

	_ "github.com/tu-usuario/almacen-pro/docs"
	"github.com/tu-usuario/almacen-pro/internal/application/auth"
	"github.com/tu-usuario/almacen-pro/internal/application/inventory"
	"github.com/tu-usuario/almacen-pro/internal/application/purchases"
	"github.com/tu-usuario/almacen-pro/internal/application/usecase"
	infracurrency "github.com/tu-usuario/almacen-pro/internal/infrastructure/currency"
	infracxml "github.com/tu-usuario/almacen-pro/internal/infrastructure/cxml"
	infrapdf "github.com/tu-usuario/almacen-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/almacen-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/almacen-pro/internal/interfaces/http"
	"github.com/tu-usuario/almacen-pro/pkg/config"
	"github.com/tu-usuario/almacen-pro/pkg/logger"
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

	userRepo := postgres.NewUserProfileRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	purchasesRepo := postgres.NewPurchasesRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	rates := infracurrency.NewFrankfurterProvider(cfg.Currency.BaseURL)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	productUC := usecase.NewProductUseCase(productRepo, rates)
	locationUC := usecase.NewLocationUseCase(locationRepo)

	createRequestUC := purchases.NewCreateRequestUseCase(purchasesRepo)
	addItemUC := purchases.NewAddItemUseCase(purchasesRepo)
	submitUC := purchases.NewSubmitRequestUseCase(purchasesRepo)
	decideUC := purchases.NewDecideRequestUseCase(purchasesRepo)
	createOrderUC := purchases.NewCreateOrderUseCase(purchasesRepo)
	queryUC := purchases.NewQueryUseCase(purchasesRepo, supplierRepo)

	// Documentos de la orden: PDF para imprimir y cXML para punchout/EDI
	pdfGenerator := infrapdf.NewMarotoPOGenerator(cfg.App.Name)
	cxmlExporter := infracxml.NewOrderExporter(cfg.App.Name)
	documentsUC := purchases.NewDocumentUseCase(purchasesRepo, supplierRepo, pdfGenerator, cxmlExporter)

	moveUC := inventory.NewMoveUseCase(stockRepo, productRepo, txRunner)

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
		Title:    "Almacén Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		UserUC:        userUC,
		SupplierUC:    supplierUC,
		ProductUC:     productUC,
		LocationUC:    locationUC,
		CreateRequest: createRequestUC,
		AddItem:       addItemUC,
		Submit:        submitUC,
		Decide:        decideUC,
		CreateOrder:   createOrderUC,
		Queries:       queryUC,
		Documents:     documentsUC,
		MoveInventory: moveUC,
		Movements:     movementRepo,
		Stock:         stockRepo,
		UserRepo:      userRepo,
		JWTSecret:     cfg.JWT.Secret,
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
