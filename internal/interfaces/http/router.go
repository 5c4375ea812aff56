package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/brewops/brewops-api/internal/application/analytics"
	"github.com/brewops/brewops-api/internal/application/auth"
	"github.com/brewops/brewops-api/internal/application/usecase"
	"github.com/brewops/brewops-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	SupplierUC  *usecase.SupplierUseCase
	DeliveryUC  *usecase.DeliveryUseCase
	ReportUC    *analytics.ReportUseCase
	StatementUC *analytics.StatementUseCase
	Identity    IdentityStore
	JWTSecret   string
}

// Router registra las rutas de la API con sus puertas de rol.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	authRequired := AuthMiddleware(deps.JWTSecret, deps.Identity)

	// Auth (registro y login públicos; perfil autenticado)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/roles", authHandler.Roles)
	authGroup.Get("/profile", authRequired, authHandler.Profile)

	// Users (lectura admin/manager; mutaciones solo admin)
	users := api.Group("/users", authRequired)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", RequireRole(entity.RoleAdmin, entity.RoleManager), userHandler.List)
	users.Get("/:id", RequireRole(entity.RoleAdmin, entity.RoleManager), userHandler.GetByID)
	users.Patch("/:id/status", RequireRole(entity.RoleAdmin), userHandler.UpdateStatus)
	users.Patch("/:id/role", RequireRole(entity.RoleAdmin), userHandler.UpdateRole)
	users.Delete("/:id", RequireRole(entity.RoleAdmin), userHandler.Delete)

	// Suppliers (admin/staff)
	suppliers := api.Group("/suppliers", authRequired, RequireRole(entity.RoleAdmin, entity.RoleStaff))
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Patch("/:id/status", supplierHandler.UpdateStatus)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Deliveries. Las rutas de supplier van antes que /:id para que Fiber no
	// capture "supplier" ni "accept" como parámetro.
	delivery := api.Group("/delivery", authRequired)
	deliveryHandler := NewDeliveryHandler(deps.DeliveryUC)
	supplierOnly := RequireRole(entity.RoleSupplier)
	staffSide := RequireRole(entity.RoleAdmin, entity.RoleManager, entity.RoleStaff)
	delivery.Get("/supplier", supplierOnly, deliveryHandler.ListMine)
	delivery.Put("/accept/:id", supplierOnly, deliveryHandler.Accept)
	delivery.Get("/", staffSide, deliveryHandler.List)
	delivery.Post("/", staffSide, deliveryHandler.Create)
	delivery.Get("/:id", staffSide, deliveryHandler.GetByID)
	delivery.Put("/:id", staffSide, deliveryHandler.Update)
	delivery.Delete("/:id", staffSide, deliveryHandler.Delete)

	// Reports (stats para cualquier autenticado; statement con chequeo propio)
	reports := api.Group("/reports", authRequired)
	reportHandler := NewReportHandler(deps.ReportUC, deps.StatementUC)
	reports.Get("/delivery-stats", reportHandler.DeliveryStats)
	reports.Get("/supplier-statement/:id",
		RequireRole(entity.RoleAdmin, entity.RoleManager, entity.RoleSupplier),
		reportHandler.SupplierStatement)

	// Liveness
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
}
