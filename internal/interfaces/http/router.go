package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/recout-api/internal/application/auth"
	"github.com/jhoicas/recout-api/internal/application/production"
	"github.com/jhoicas/recout-api/internal/application/recovery"
	"github.com/jhoicas/recout-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	EmployeeUC  *usecase.EmployeeUseCase
	ClientUC    *usecase.ClientUseCase
	ProductUC   *usecase.ProductUseCase
	SectorUC    *usecase.SectorUseCase
	Production  *production.Service
	Dashboard   *DashboardHandler
	RecoveryUC  *recovery.UseCase
	JWTSecret   string
	MetricsFrom prometheus.Gatherer // nil = sin /metrics
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.MetricsFrom != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.MetricsFrom, promhttp.HandlerOpts{})))
	}

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.EmployeeUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (Bearer Token + empleado vigente)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), RequireEmployee(deps.AuthUC))
	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/me", authHandler.Me)

	employees := protected.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Get("/", employeeHandler.List)
	employees.Post("/", employeeHandler.Create)
	employees.Delete("/:id", employeeHandler.Delete)

	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Get("/", clientHandler.List)
	clients.Post("/", clientHandler.Create)
	clients.Delete("/:id", clientHandler.Delete)

	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/next-code", productHandler.NextCode)
	products.Post("/", productHandler.Create)
	products.Delete("/:id", productHandler.Delete)

	sectors := protected.Group("/sectors")
	sectorHandler := NewSectorHandler(deps.SectorUC)
	sectors.Get("/", sectorHandler.List)
	sectors.Post("/", sectorHandler.Create)
	sectors.Put("/:id", sectorHandler.Update)
	sectors.Delete("/:id", sectorHandler.Delete)

	prod := protected.Group("/production")
	productionHandler := NewProductionHandler(deps.Production)
	prod.Get("/", productionHandler.Ledger)
	prod.Get("/session", productionHandler.Session)
	prod.Put("/session/part", productionHandler.SelectPart)
	prod.Put("/session/sector", productionHandler.SelectSector)
	prod.Put("/session/next-sector", productionHandler.SelectNextSector)
	prod.Post("/start", productionHandler.Start)
	prod.Post("/advance", productionHandler.Advance)
	prod.Post("/reset", productionHandler.Reset)

	dashboard := protected.Group("/dashboard")
	dashboard.Get("/summary", deps.Dashboard.Summary)
	dashboard.Get("/stream", deps.Dashboard.Stream)
	dashboard.Get("/monthly", deps.Dashboard.Monthly)
	dashboard.Get("/monthly.pdf", deps.Dashboard.MonthlyPDF)
	dashboard.Get("/details", deps.Dashboard.Details)

	recoveryHandler := NewRecoveryHandler(deps.RecoveryUC)
	protected.Post("/recovery", recoveryHandler.Generate)
}
