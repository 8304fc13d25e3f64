package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/almacen-pro/internal/application/auth"
	"github.com/tu-usuario/almacen-pro/internal/application/inventory"
	"github.com/tu-usuario/almacen-pro/internal/application/purchases"
	"github.com/tu-usuario/almacen-pro/internal/application/usecase"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	UserUC     *usecase.UserUseCase
	SupplierUC *usecase.SupplierUseCase
	ProductUC  *usecase.ProductUseCase
	LocationUC *usecase.LocationUseCase

	CreateRequest *purchases.CreateRequestUseCase
	AddItem       *purchases.AddItemUseCase
	Submit        *purchases.SubmitRequestUseCase
	Decide        *purchases.DecideRequestUseCase
	CreateOrder   *purchases.CreateOrderUseCase
	Queries       *purchases.QueryUseCase
	Documents     *purchases.DocumentUseCase

	MoveInventory *inventory.MoveUseCase
	Movements     repository.StockMovementRepository
	Stock         repository.StockRepository

	UserRepo  repository.UserProfileRepository
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login es público; register queda detrás de admin.
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", AuthMiddleware(deps.JWTSecret), RequireRole("admin"), authHandler.Register)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Solicitudes de compra (protegido)
	purchaseHandler := NewPurchaseHandler(deps.UserRepo, deps.CreateRequest, deps.AddItem, deps.Submit, deps.Decide, deps.Queries)
	orderHandler := NewOrderHandler(deps.UserRepo, deps.CreateOrder, deps.Queries, deps.Documents)
	purchasesGroup := protected.Group("/purchases")
	purchasesGroup.Get("/suppliers", purchaseHandler.ListSuppliers)
	requests := purchasesGroup.Group("/requests")
	requests.Post("/", purchaseHandler.CreateRequest)
	requests.Get("/", purchaseHandler.List)
	requests.Get("/:id", purchaseHandler.GetDetail)
	requests.Post("/:id/items", purchaseHandler.AddItem)
	requests.Post("/:id/submit", purchaseHandler.Submit)
	requests.Post("/:id/approve", purchaseHandler.Approve)
	requests.Post("/:id/reject", purchaseHandler.Reject)
	requests.Post("/:id/convert", orderHandler.Convert)

	// Órdenes de compra (protegido)
	orders := purchasesGroup.Group("/orders")
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetDetail)
	orders.Get("/:id/pdf", orderHandler.PDF)
	orders.Get("/:id/cxml", orderHandler.CXML)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)

	// Locations (protegido)
	locations := protected.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Post("/", locationHandler.Create)
	locations.Get("/", locationHandler.List)
	locations.Delete("/:id", locationHandler.Delete)

	// Inventory movements (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.UserRepo, deps.MoveInventory, deps.Movements, deps.Stock)
	invGroup.Post("/movements", inventoryHandler.Move)
	invGroup.Get("/movements/:product_id", inventoryHandler.ListMovements)
	invGroup.Get("/stock/:product_id", inventoryHandler.Stock)

	// Perfil propio y administración de usuarios (esta última solo admin)
	userHandler := NewUserHandler(deps.UserUC)
	protected.Get("/me", userHandler.Me)
	users := protected.Group("/users", RequireRole("admin"))
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
}
