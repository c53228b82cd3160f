package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/integraprice-api/internal/application/analytics"
	"github.com/jhoicas/integraprice-api/internal/application/auth"
	"github.com/jhoicas/integraprice-api/internal/application/usecase"
	"github.com/jhoicas/integraprice-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SettingsUC  *usecase.SettingsUseCase
	PricingUC   *usecase.PricingUseCase
	ProductUC   *usecase.ProductUseCase
	ReportUC    *usecase.ReportUseCase
	DashboardUC *analytics.DashboardUseCase
	AuthUC      *auth.AuthUseCase
	Health      *HealthHandler
	AuthLimiter *RateLimiter // nil desactiva el límite en /api/auth
	JWTSecret   string
	Logger      *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	if deps.Health != nil {
		app.Get("/health", deps.Health.Check)
	}

	api := app.Group("/api")
	requireAuth := AuthMiddleware(deps.JWTSecret)

	// Auth (público salvo logout)
	authGroup := api.Group("/auth")
	if deps.AuthLimiter != nil {
		authGroup.Use(RateLimit(deps.AuthLimiter, log.Named("ratelimit")))
	}
	authHandler := NewAuthHandler(deps.AuthUC, deps.ReportUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/session", authHandler.Session)
	authGroup.Post("/logout", requireAuth, authHandler.Logout)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", requireAuth)

	// Settings
	settings := protected.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/", settingsHandler.Get)
	settings.Get("/suggestions", settingsHandler.Suggestions)
	settings.Put("/company", settingsHandler.UpdateCompany)
	settings.Post("/:list", settingsHandler.AddLine)
	settings.Put("/:list/:id", settingsHandler.UpdateLine)
	settings.Delete("/:list/:id", settingsHandler.RemoveLine)

	// Pricing
	pricing := protected.Group("/pricing")
	pricingHandler := NewPricingHandler(deps.PricingUC)
	pricing.Get("/defaults", pricingHandler.Defaults)
	pricing.Post("/calculate", pricingHandler.Calculate)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Delete("/:id", productHandler.Delete)

	// Reports (DRE)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/dre", reportHandler.SessionDRE)
	reports.Post("/dre", reportHandler.DRE)
	reports.Get("/dre/export", reportHandler.Export)
	reports.Get("/selection", reportHandler.Selection)
	reports.Delete("/selection", reportHandler.ClearSelection)
	reports.Post("/selection/:id/toggle", reportHandler.Toggle)
	reports.Put("/selection/:id", reportHandler.SetQuantity)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.GetSummary)
}
