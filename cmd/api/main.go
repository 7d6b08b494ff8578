package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"

	appanalytics "github.com/jhoicas/Restaurante-api/internal/application/analytics"
	"github.com/jhoicas/Restaurante-api/internal/application/auth"
	"github.com/jhoicas/Restaurante-api/internal/application/restaurant"
	"github.com/jhoicas/Restaurante-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Restaurante-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Restaurante-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Restaurante-api/internal/interfaces/http"
	"github.com/jhoicas/Restaurante-api/pkg/config"
	"github.com/jhoicas/Restaurante-api/pkg/i18n"
	"github.com/jhoicas/Restaurante-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.Log.Level,
		File:    cfg.Log.File,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	translator, err := i18n.New()
	if err != nil {
		log.Fatal().Err(err).Msg("cargar traducciones")
	}
	loc, err := time.LoadLocation(cfg.Analytics.Timezone)
	if err != nil {
		log.Fatal().Err(err).Msg("zona horaria de analítica")
	}

	userRepo := postgres.NewUserRepository(pool)
	restaurantRepo := postgres.NewRestaurantRepository(pool)
	tableRepo := postgres.NewTableRepository(pool)
	menuRepo := postgres.NewMenuRepository(pool)
	staffRepo := postgres.NewStaffRepository(pool)
	allergenRepo := postgres.NewAllergenRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret: cfg.JWT.Secret,
		TTL:    cfg.JWT.TTL(),
		Issuer: cfg.JWT.Issuer,
	})

	// PDF: reporte de analítica con nombres de días traducidos
	analyticsUC := appanalytics.NewAnalyticsUseCase(
		analyticsRepo, restaurantRepo, translator, infrapdf.NewMarotoReportGenerator(),
		appanalytics.Options{Location: loc, DefaultLocale: cfg.Analytics.Locale},
	)

	app := httpRouter.NewApp(log, httpRouter.ServerConfig{
		Name:           cfg.App.Name,
		Version:        cfg.App.Version,
		Production:     cfg.App.IsProduction(),
		RequestTimeout: cfg.HTTP.RequestTimeout,
	})

	// Swagger UI en local: http://localhost:<port>/docs (requiere docs/swagger.json)
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Restaurante API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger deshabilitado: archivo no encontrado")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		UserUC:           usecase.NewUserUseCase(userRepo),
		RestaurantUC:     usecase.NewRestaurantUseCase(restaurantRepo, tableRepo, menuRepo),
		CreateRestaurant: restaurant.NewCreateRestaurantUseCase(txRunner),
		AllergenUC:       usecase.NewAllergenUseCase(allergenRepo),
		ManagerUC:        usecase.NewManagerUseCase(restaurantRepo, staffRepo, tableRepo, menuRepo),
		UpdateSettings:   restaurant.NewUpdateSettingsUseCase(txRunner),
		CreateMenuItem:   restaurant.NewCreateMenuItemUseCase(txRunner),
		AnalyticsUC:      analyticsUC,
		AuthRateLimiter:  httpRouter.NewRateLimiter(cfg.RateLimit.AuthPerMinute, cfg.RateLimit.AuthBurst),
		JWTSecret:        cfg.JWT.Secret,
		Version:          cfg.App.Version,
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
