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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	appanalytics "github.com/jhoicas/recout-api/internal/application/analytics"
	"github.com/jhoicas/recout-api/internal/application/auth"
	"github.com/jhoicas/recout-api/internal/application/ports"
	"github.com/jhoicas/recout-api/internal/application/production"
	"github.com/jhoicas/recout-api/internal/application/recovery"
	"github.com/jhoicas/recout-api/internal/application/usecase"
	infraai "github.com/jhoicas/recout-api/internal/infrastructure/ai"
	infrapdf "github.com/jhoicas/recout-api/internal/infrastructure/pdf"
	"github.com/jhoicas/recout-api/internal/infrastructure/snapshot"
	"github.com/jhoicas/recout-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/recout-api/internal/interfaces/http"
	"github.com/jhoicas/recout-api/pkg/config"
	"github.com/jhoicas/recout-api/pkg/logger"
)

// recoveryTimeout tope para una llamada al LLM.
const recoveryTimeout = 60 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET requerido")
	}

	ctx := context.Background()
	backend, closeBackend, err := storage.Open(ctx, cfg, log.Component("storage"))
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer closeBackend()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	store := snapshot.NewStore(backend, log.Component("snapshot"), snapshot.NewMetrics(reg))
	store.Load(ctx)

	employeeRepo := snapshot.NewEmployeeRepository(store)
	clientRepo := snapshot.NewClientRepository(store)
	productRepo := snapshot.NewProductRepository(store)
	sectorRepo := snapshot.NewSectorRepository(store)
	ledgerRepo := snapshot.NewProductionRepository(store)
	currentRepo := snapshot.NewCurrentUserRepository(store)
	sessionRepo := snapshot.NewSessionRepository(backend, log.Component("session"))

	clock := ports.SystemClock{}

	authUC := auth.NewAuthUseCase(employeeRepo, currentRepo, sessionRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo, clock)
	clientUC := usecase.NewClientUseCase(clientRepo, clock)
	productUC := usecase.NewProductUseCase(productRepo, clock)
	sectorUC := usecase.NewSectorUseCase(sectorRepo, clock)
	productionSvc := production.NewService(ledgerRepo, sessionRepo, productRepo, clock, log.Component("production"))

	dashboardUC := appanalytics.NewDashboardUseCase(
		employeeRepo, productRepo, ledgerRepo, clientRepo, clock, cfg.Dashboard.Capacities,
	).WithReloader(currentRepo)

	// Proveedor LLM del plan de recuperación
	var llm ports.LLMService
	switch cfg.AI.Provider {
	case "anthropic":
		llm = infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
	default:
		llm = infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	}
	recoveryUC := recovery.NewUseCase(llm, recoveryTimeout, log.Component("recovery"))

	// PDF del reporte mensual
	reportPDF := infrapdf.NewMonthlyReportGenerator(cfg.App.Name)

	// streamCtx se cancela al apagar: cierra los streams SSE abiertos.
	streamCtx, stopStreams := context.WithCancel(ctx)
	defer stopStreams()
	dashboardHandler := httpRouter.NewDashboardHandler(
		streamCtx, dashboardUC, reportPDF, cfg.Dashboard.RefreshInterval, log.Component("dashboard"),
	)

	app := fiber.New(fiber.Config{
		AppName:     cfg.App.Name,
		ReadTimeout: time.Second * 10,
		// sin WriteTimeout: /api/dashboard/stream mantiene la conexión abierta
		IdleTimeout: time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Recout API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "storage": cfg.Storage.Driver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		EmployeeUC:  employeeUC,
		ClientUC:    clientUC,
		ProductUC:   productUC,
		SectorUC:    sectorUC,
		Production:  productionSvc,
		Dashboard:   dashboardHandler,
		RecoveryUC:  recoveryUC,
		JWTSecret:   cfg.JWT.Secret,
		MetricsFrom: reg,
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
	stopStreams()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
