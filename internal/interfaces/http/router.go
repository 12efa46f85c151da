package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bidtracker-api/internal/application/auth"
	"github.com/jhoicas/bidtracker-api/internal/application/usecase"
)

// Versión reportada en GET /api.
const apiVersion = "1.0.0"

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName     string
	CustomerUC  *usecase.CustomerUseCase
	ImportUC    *usecase.ImportUseCase
	TemplateUC  *usecase.TemplateUseCase
	CampaignUC  *usecase.CampaignUseCase
	FollowUpUC  *usecase.FollowUpUseCase
	DashboardUC *usecase.DashboardUseCase
	ReportUC    *usecase.ReportUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Raíz del API (público): nombre y versión del servicio
	api.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"name": deps.AppName, "version": apiVersion})
	})

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	importHandler := NewImportHandler(deps.ImportUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Post("/import", importHandler.Import)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Email templates (protegido)
	templates := protected.Group("/templates")
	templateHandler := NewTemplateHandler(deps.TemplateUC)
	templates.Post("/", templateHandler.Create)
	templates.Get("/", templateHandler.List)
	templates.Get("/:id", templateHandler.GetByID)
	templates.Put("/:id", templateHandler.Update)
	templates.Delete("/:id", templateHandler.Delete)

	// Campaigns (protegido)
	campaigns := protected.Group("/campaigns")
	campaignHandler := NewCampaignHandler(deps.CampaignUC)
	campaigns.Post("/", campaignHandler.Create)
	campaigns.Get("/", campaignHandler.List)
	campaigns.Get("/:id", campaignHandler.GetByID)

	// Follow-ups (protegido)
	followUps := protected.Group("/followups")
	followUpHandler := NewFollowUpHandler(deps.FollowUpUC)
	followUps.Post("/", followUpHandler.Create)
	followUps.Get("/", followUpHandler.List)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/stats", dashboardHandler.GetStats)

	// Reports (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/customers", reportHandler.Customers)
}
