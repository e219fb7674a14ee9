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
	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/stockflow-api/internal/application/auth"
	"github.com/jhoicas/stockflow-api/internal/application/usecase"
	"github.com/jhoicas/stockflow-api/internal/infrastructure/cache"
	infraimaging "github.com/jhoicas/stockflow-api/internal/infrastructure/imaging"
	infrapdf "github.com/jhoicas/stockflow-api/internal/infrastructure/pdf"
	"github.com/jhoicas/stockflow-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/stockflow-api/internal/interfaces/http"
	"github.com/jhoicas/stockflow-api/pkg/config"
	"github.com/jhoicas/stockflow-api/pkg/logger"
)

// registerSwagger monta la UI de Swagger solo si el archivo de
// especificación existe; el middleware entra en pánico si no lo encuentra.
func registerSwagger(app *fiber.App, specPath string, log *logger.Logger) {
	if _, err := os.Stat(specPath); err != nil {
		log.Warn().Str("path", specPath).Msg("especificación OpenAPI no encontrada, Swagger UI deshabilitada")
		return
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: specPath,
		Path:     "docs",
		Title:    "StockFlow API",
	}))
}

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

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}
	defer redisClient.Close()

	userRepo := postgres.NewUserRepository(pool)
	restaurantRepo := postgres.NewRestaurantRepository(pool)
	accessRepo := postgres.NewAccessRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	receiptRepo := postgres.NewReceiptRepository(pool)
	inviteRepo := postgres.NewInviteRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	pendingStore := cache.NewPendingInviteStore(redisClient)
	imageProcessor := infraimaging.NewProcessor()
	pdfGenerator := infrapdf.NewMarotoReportGenerator()

	restaurantUC := usecase.NewRestaurantUseCase(restaurantRepo, accessRepo, txRunner)
	accessUC := usecase.NewAccessUseCase(accessRepo, userRepo, restaurantRepo)
	itemUC := usecase.NewItemUseCase(itemRepo, accessRepo)
	receiptUC := usecase.NewReceiptUseCase(receiptRepo, accessRepo, imageProcessor, cfg.Upload.MaxReceiptBytes)
	inviteUC := usecase.NewInviteUseCase(inviteRepo, accessRepo, txRunner, pendingStore, cfg.App.BaseURL)
	dashboardUC := usecase.NewDashboardUseCase(itemRepo, accessRepo)
	reportUC := usecase.NewReportUseCase(itemRepo, restaurantRepo, accessRepo, pdfGenerator)
	authUC := auth.NewAuthUseCase(userRepo, inviteUC, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.Upload.MaxReceiptBytes + 1<<20, // margen para el resto del multipart
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	registerSwagger(app, "./docs/swagger.json", log)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		RestaurantUC: restaurantUC,
		AccessUC:     accessUC,
		ItemUC:       itemUC,
		ReceiptUC:    receiptUC,
		InviteUC:     inviteUC,
		DashboardUC:  dashboardUC,
		ReportUC:     reportUC,
		JWTSecret:    cfg.JWT.Secret,
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
