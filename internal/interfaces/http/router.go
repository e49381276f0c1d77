package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ruxshona/bakery-api/internal/application/auth"
	"github.com/ruxshona/bakery-api/internal/application/stats"
	"github.com/ruxshona/bakery-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC         *usecase.ProductUseCase
	ProductCategoryUC *usecase.CategoryUseCase
	ExpenseCategoryUC *usecase.CategoryUseCase
	UnitUC            *usecase.UnitUseCase
	ExpenseUC         *usecase.ExpenseUseCase
	OrderUC           *usecase.OrderUseCase
	AuthUC            *auth.AuthUseCase
	OverviewUC        *stats.OverviewUseCase
	DashboardUC       *stats.DashboardUseCase
	MarketingUC       *stats.MarketingUseCase
	ExportUC          *stats.ExportUseCase
	ExpenseReportUC   *stats.ExpenseReportUseCase
	JWTSecret         string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Healthcheck (público)
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Patch("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Categorías de catálogo (protegido)
	prodCats := protected.Group("/product-categories")
	prodCatHandler := NewCategoryHandler(deps.ProductCategoryUC)
	prodCats.Post("/", prodCatHandler.Create)
	prodCats.Get("/", prodCatHandler.List)
	prodCats.Patch("/:id", prodCatHandler.Update)
	prodCats.Delete("/:id", prodCatHandler.Delete)

	// Categorías de gastos (protegido)
	expCats := protected.Group("/expense-categories")
	expCatHandler := NewCategoryHandler(deps.ExpenseCategoryUC)
	expCats.Post("/", expCatHandler.Create)
	expCats.Get("/", expCatHandler.List)
	expCats.Patch("/:id", expCatHandler.Update)
	expCats.Delete("/:id", expCatHandler.Delete)

	// Unidades (protegido)
	units := protected.Group("/units")
	unitHandler := NewUnitHandler(deps.UnitUC)
	units.Post("/", unitHandler.Create)
	units.Get("/", unitHandler.List)
	units.Patch("/:id", unitHandler.Update)
	units.Delete("/:id", unitHandler.Delete)

	// Gastos (protegido)
	expenses := protected.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)
	expenses.Patch("/:id", expenseHandler.Update)
	expenses.Delete("/:id", expenseHandler.Delete)

	// Pedidos entrantes (protegido)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Post("/:id/accept", orderHandler.Accept)
	orders.Post("/:id/cancel", orderHandler.Cancel)

	// Rollups de lectura (protegido)
	statsHandler := NewStatsHandler(deps.OverviewUC, deps.DashboardUC, deps.MarketingUC)
	protected.Get("/stats/overview", statsHandler.Overview)
	protected.Get("/dashboard/summary", statsHandler.Dashboard)
	protected.Get("/analytics/marketing", statsHandler.Marketing)

	// Exportaciones descargables (protegido)
	reportHandler := NewReportHandler(deps.ExportUC, deps.ExpenseReportUC)
	reports := protected.Group("/reports")
	reports.Get("/expenses.csv", reportHandler.ExpensesCSV)
	reports.Get("/products.csv", reportHandler.ProductsCSV)
	reports.Get("/expenses.pdf", reportHandler.ExpensesPDF)
}
