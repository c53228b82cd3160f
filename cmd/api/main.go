package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/jhoicas/integraprice-api/internal/application/analytics"
	"github.com/jhoicas/integraprice-api/internal/application/auth"
	"github.com/jhoicas/integraprice-api/internal/application/ports"
	"github.com/jhoicas/integraprice-api/internal/application/usecase"
	"github.com/jhoicas/integraprice-api/internal/infrastructure/export"
	"github.com/jhoicas/integraprice-api/internal/infrastructure/metrics"
	"github.com/jhoicas/integraprice-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/integraprice-api/internal/interfaces/http"
	"github.com/jhoicas/integraprice-api/pkg/config"
	"github.com/jhoicas/integraprice-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	backend, err := openStorage(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("abrir almacenamiento")
	}
	defer backend.close()

	store := storage.NewService(backend.kv, log)

	var (
		appMetrics  ports.Metrics = ports.NopMetrics{}
		reqObserver httpRouter.RequestObserver
		prom        *metrics.Prometheus
	)
	if cfg.Metrics.Enabled {
		prom = metrics.NewPrometheus()
		appMetrics = prom
		reqObserver = prom
	}

	settingsUC := usecase.NewSettingsUseCase(store)
	pricingUC := usecase.NewPricingUseCase(settingsUC, appMetrics)
	productUC := usecase.NewProductUseCase(store, pricingUC, appMetrics)
	reportUC := usecase.NewReportUseCase(productUC, settingsUC, map[string]ports.StatementExporter{
		"pdf":  export.NewPDFExporter(),
		"xlsx": export.NewXLSXExporter(),
	}, appMetrics)
	dashboardUC := appanalytics.NewDashboardUseCase(store)
	authUC := auth.NewAuthUseCase(store, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, appMetrics)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(httpRouter.RequestLogger(log.Named("http"), reqObserver))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.App.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.App.SwaggerFile,
			Path:     "docs",
			Title:    "IntegraPrice API",
		}))
	} else {
		log.Warn().Str("file", cfg.App.SwaggerFile).Msg("swagger deshabilitado: archivo no encontrado")
	}

	if prom != nil {
		app.Get("/metrics", adaptor.HTTPHandler(prom.Handler()))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		SettingsUC:  settingsUC,
		PricingUC:   pricingUC,
		ProductUC:   productUC,
		ReportUC:    reportUC,
		DashboardUC: dashboardUC,
		AuthUC:      authUC,
		Health:      httpRouter.NewHealthHandler(cfg.App.Name, cfg.Storage.Driver, backend.usage),
		AuthLimiter: httpRouter.NewRateLimiter(cfg.Auth.RateLimitRPS, cfg.Auth.RateLimitBurst),
		JWTSecret:   cfg.JWT.Secret,
		Logger:      log,
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
