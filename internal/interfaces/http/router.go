package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/Restaurante-api/internal/application/analytics"
	"github.com/jhoicas/Restaurante-api/internal/application/auth"
	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/restaurant"
	"github.com/jhoicas/Restaurante-api/internal/application/usecase"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/pkg/logger"
)

// ServerConfig parámetros de la app fiber.
type ServerConfig struct {
	Name           string
	Version        string
	Production     bool
	RequestTimeout time.Duration
}

// NewApp crea la app fiber con el manejador centralizado de errores y los middlewares globales:
// request id + log, métricas, recover y deadline por petición.
func NewApp(log *logger.Logger, cfg ServerConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ErrorHandler: ErrorHandler(log, cfg.Production),
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(RequestLogger(log))
	app.Use(Metrics())
	app.Use(recover.New(recover.Config{
		EnableStackTrace:  !cfg.Production,
		StackTraceHandler: StackTraceHandler,
	}))
	app.Use(cors.New())
	if cfg.RequestTimeout > 0 {
		app.Use(Timeout(cfg.RequestTimeout))
	}
	return app
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	UserUC           *usecase.UserUseCase
	RestaurantUC     *usecase.RestaurantUseCase
	CreateRestaurant *restaurant.CreateRestaurantUseCase
	AllergenUC       *usecase.AllergenUseCase
	ManagerUC        *usecase.ManagerUseCase
	UpdateSettings   *restaurant.UpdateSettingsUseCase
	CreateMenuItem   *restaurant.CreateMenuItemUseCase
	AnalyticsUC      *analytics.AnalyticsUseCase
	AuthRateLimiter  *RateLimiter // nil: sin límite
	JWTSecret        string
	Version          string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")
	api.Get("/status", func(c *fiber.Ctx) error {
		return c.JSON(dto.StatusResponse{
			Status:    "online",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Version:   deps.Version,
		})
	})

	// Auth (público, con límite por IP)
	authGroup := api.Group("/auth")
	if deps.AuthRateLimiter != nil {
		authGroup.Use(deps.AuthRateLimiter.Handler())
	}
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Restaurants (público)
	restaurants := api.Group("/restaurants")
	restaurantHandler := NewRestaurantHandler(deps.RestaurantUC, deps.CreateRestaurant)
	restaurants.Get("/", restaurantHandler.List)
	restaurants.Get("/:id", restaurantHandler.GetByID)
	restaurants.Post("/", restaurantHandler.Create)

	// Users (público)
	users := api.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)

	// Allergens (público)
	allergenHandler := NewAllergenHandler(deps.AllergenUC)
	api.Get("/allergens", allergenHandler.List)

	// Manager (Bearer Token + rol GERENTE)
	manager := api.Group("/manager", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleGerente))
	managerHandler := NewManagerHandler(deps.ManagerUC, deps.UpdateSettings, deps.CreateMenuItem)
	manager.Patch("/:restaurantId/settings", managerHandler.UpdateSettings)
	manager.Post("/:restaurantId/staff", managerHandler.AddStaff)
	manager.Get("/:restaurantId/staff", managerHandler.ListStaff)
	manager.Post("/:restaurantId/menu", managerHandler.CreateMenuItem)
	manager.Get("/:restaurantId/menu", managerHandler.ListMenu)
	manager.Post("/:restaurantId/tables", managerHandler.CreateTable)

	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC)
	manager.Get("/:restaurantId/analytics", analyticsHandler.Get)
	manager.Get("/:restaurantId/analytics/report.pdf", analyticsHandler.ReportPDF)
}
