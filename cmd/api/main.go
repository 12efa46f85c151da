package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/bidtracker-api/internal/application/auth"
	"github.com/jhoicas/bidtracker-api/internal/application/usecase"
	"github.com/jhoicas/bidtracker-api/internal/infrastructure/office"
	infrapdf "github.com/jhoicas/bidtracker-api/internal/infrastructure/pdf"
	"github.com/jhoicas/bidtracker-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/bidtracker-api/internal/interfaces/http"
	"github.com/jhoicas/bidtracker-api/pkg/config"
	"github.com/jhoicas/bidtracker-api/pkg/logger"
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

	customerRepo := postgres.NewCustomerRepository(pool)
	templateRepo := postgres.NewTemplateRepository(pool)
	campaignRepo := postgres.NewCampaignRepository(pool)
	followUpRepo := postgres.NewFollowUpRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)

	customerUC := usecase.NewCustomerUseCase(customerRepo)
	importUC := usecase.NewImportUseCase(customerRepo, office.NewDocxExtractor(), office.NewSheetExtractor())
	templateUC := usecase.NewTemplateUseCase(templateRepo)
	campaignUC := usecase.NewCampaignUseCase(campaignRepo, templateRepo)
	followUpUC := usecase.NewFollowUpUseCase(followUpRepo, customerRepo)
	dashboardUC := usecase.NewDashboardUseCase(statsRepo)
	reportUC := usecase.NewReportUseCase(customerRepo, infrapdf.NewMarotoReportGenerator())
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.Import.MaxUploadMB * 1024 * 1024,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "BidTracker API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName:     cfg.App.Name,
		CustomerUC:  customerUC,
		ImportUC:    importUC,
		TemplateUC:  templateUC,
		CampaignUC:  campaignUC,
		FollowUpUC:  followUpUC,
		DashboardUC: dashboardUC,
		ReportUC:    reportUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
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
