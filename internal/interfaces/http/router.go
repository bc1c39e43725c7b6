package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ObraCore-api/internal/application/inventory"
	"github.com/jhoicas/ObraCore-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CreateProduct   *inventory.CreateProductUseCase
	PostTransaction *inventory.PostTransactionUseCase
	ProductUC       *usecase.ProductUseCase
	TransactionUC   *usecase.TransactionUseCase
	VendorUC        *usecase.VendorUseCase
	EquipmentUC     *usecase.EquipmentUseCase
	ProjectUC       *usecase.ProjectUseCase
	PurchaseOrderUC *usecase.PurchaseOrderUseCase
	SettingsUC      *usecase.SettingsUseCase
	JWTSecret       string
}

// Router registra las rutas de la API. Todo el back-office requiere Bearer
// Token; fuera del grupo protegido solo queda /health (registrado en main).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.CreateProduct, deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Stock transactions (protegido). El historial se expone anidado bajo el
	// producto y también plano vía ?product_id=.
	transactionHandler := NewTransactionHandler(deps.PostTransaction, deps.TransactionUC)
	products.Get("/:id/transactions", transactionHandler.History)
	transactions := protected.Group("/transactions")
	transactions.Post("/", transactionHandler.Post)
	transactions.Get("/", transactionHandler.History)
	transactions.Get("/summary", transactionHandler.Summary)

	// Vendors (protegido)
	vendors := protected.Group("/vendors")
	vendorHandler := NewVendorHandler(deps.VendorUC)
	vendors.Post("/", vendorHandler.Create)
	vendors.Get("/", vendorHandler.List)
	vendors.Get("/:id", vendorHandler.GetByID)
	vendors.Patch("/:id", vendorHandler.Update)

	// Equipment (protegido)
	equipment := protected.Group("/equipment")
	equipmentHandler := NewEquipmentHandler(deps.EquipmentUC)
	equipment.Post("/", equipmentHandler.Create)
	equipment.Get("/", equipmentHandler.List)
	equipment.Get("/:id", equipmentHandler.GetByID)
	equipment.Patch("/:id", equipmentHandler.Update)
	equipment.Post("/:id/transactions", equipmentHandler.AddTransaction)
	equipment.Get("/:id/transactions", equipmentHandler.History)

	// Projects y tareas (protegido)
	projects := protected.Group("/projects")
	projectHandler := NewProjectHandler(deps.ProjectUC)
	projects.Post("/", projectHandler.Create)
	projects.Get("/", projectHandler.List)
	projects.Get("/:id", projectHandler.GetByID)
	projects.Patch("/:id", projectHandler.Update)
	projects.Post("/:id/tasks", projectHandler.CreateTask)
	projects.Get("/:id/tasks", projectHandler.ListTasks)
	projects.Patch("/:id/tasks/:taskId", projectHandler.UpdateTask)

	// Purchase orders (protegido)
	orders := protected.Group("/purchase-orders")
	orderHandler := NewPurchaseOrderHandler(deps.PurchaseOrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Patch("/:id", orderHandler.Update)
	orders.Get("/:id/pdf", orderHandler.GeneratePDF)

	// Settings (protegido)
	settings := protected.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Post("/api-keys", settingsHandler.CreateAPIKey)
	settings.Get("/api-keys", settingsHandler.ListAPIKeys)
}
