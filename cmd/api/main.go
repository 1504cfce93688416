package main

// @title Cyprus Transfer API
// @version 1.0.0
// @description Бронирование трансферов по Кипру: справочники локаций и доп. услуг, поиск
// @description предложений по сохранённым тарифам, создание бронирований, ваучер PDF,
// @description подготовка оплаты и контактная форма.

// @contact.name Cyprus Transfer Support
// @contact.email support@cyprus-transfer.example

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/cyprus-transfer/docs/swagger"
	"github.com/cyprus-transfer/internal/config"
	httpDelivery "github.com/cyprus-transfer/internal/delivery/http"
	"github.com/cyprus-transfer/internal/delivery/http/handler"
	"github.com/cyprus-transfer/internal/delivery/http/view"
	"github.com/cyprus-transfer/internal/domain/repository"
	"github.com/cyprus-transfer/internal/infrastructure/backend"
	"github.com/cyprus-transfer/internal/infrastructure/mail"
	"github.com/cyprus-transfer/internal/infrastructure/mapbox"
	"github.com/cyprus-transfer/internal/infrastructure/pdf"
	"github.com/cyprus-transfer/internal/pkg/logger"
	"github.com/cyprus-transfer/internal/repository/cache"
	"github.com/cyprus-transfer/internal/repository/postgres"
	redisRepo "github.com/cyprus-transfer/internal/repository/redis"
	"github.com/cyprus-transfer/internal/usecase"
	"go.uber.org/zap"
)

const companyName = "Cyprus Transfer"

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, "api")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Cyprus Transfer")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("public_url", cfg.Server.PublicURL),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize repositories
	locationRepo := postgres.NewLocationRepository(db)
	vehicleRepo := postgres.NewVehicleRepository(db)
	extraRepo := postgres.NewExtraRepository(db)
	priceRepo := postgres.NewTransferPriceRepository(db)
	reservationRepo := postgres.NewReservationRepository(db)
	expenseRepo := postgres.NewExpenseRepository(db)

	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	log.Info("Repositories initialized")

	// 7. Initialize external services
	backendClient := backend.NewClient(&cfg.Backend, log)
	if !backendClient.Configured() {
		log.Warn("Backend is not configured, admin login and payments are unavailable")
	}
	authRepo := backend.NewAuthRepository(backendClient)
	paymentRepo := backend.NewPaymentRepository(backendClient)

	mailRepo := mail.NewMailer(&cfg.SMTP, log)
	if !mailRepo.Configured() {
		log.Warn("SMTP is not configured, contact form is disabled")
	}

	// Mapbox необязателен: без токена длительность оценивается по прямой
	var mapboxRepo repository.MapboxRepository
	if cfg.Mapbox.Configured() {
		mapboxRepo = mapbox.NewMapboxClient(&cfg.Mapbox, log)
	}

	voucherRenderer := pdf.NewVoucherRenderer(companyName, cfg.Server.PublicURL)

	// 8. Initialize use cases
	locationUC := usecase.NewLocationUseCase(
		locationRepo,
		cacheRepo,
		log,
		cfg.Cache.LocationsCacheTTL,
		cfg.Booking.AdminPageSize,
	)

	extraUC := usecase.NewExtraUseCase(extraRepo, cacheRepo, log, cfg.Cache.ExtrasCacheTTL)
	vehicleUC := usecase.NewVehicleUseCase(vehicleRepo, log)

	transferUC := usecase.NewTransferUseCase(
		locationRepo,
		vehicleRepo,
		priceRepo,
		mapboxRepo,
		log,
		cfg.Booking.Currency,
	)

	reservationUC := usecase.NewReservationUseCase(
		reservationRepo,
		extraRepo,
		streamRepo,
		transferUC,
		log,
		cfg.Booking.AdminPageSize,
	)

	paymentUC := usecase.NewPaymentUseCase(reservationRepo, paymentRepo, log, cfg.Server.PublicURL)
	contactUC := usecase.NewContactUseCase(mailRepo, log)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo, vehicleRepo, log, cfg.Booking.AdminPageSize)
	authUC := usecase.NewAuthUseCase(authRepo, cfg.Backend.JWTSecret, log)

	log.Info("Use cases initialized")

	// 9. Initialize HTTP handlers
	renderer, err := view.NewRenderer(log)
	if err != nil {
		log.Fatal("Failed to load templates", zap.Error(err))
	}

	handlers := httpDelivery.Handlers{
		Location:    handler.NewLocationHandler(locationUC, cfg.Booking.DefaultLocationLimit, log),
		Extra:       handler.NewExtraHandler(extraUC, log),
		Transfer:    handler.NewTransferHandler(transferUC, log),
		Reservation: handler.NewReservationHandler(reservationUC, paymentUC, voucherRenderer, log),
		Contact:     handler.NewContactHandler(contactUC, log),
		Health: handler.NewHealthHandler(map[string]handler.HealthChecker{
			"postgres": db,
			"redis":    redisClient,
		}, log),
		Page: handler.NewPageHandler(
			renderer,
			locationUC,
			vehicleUC,
			extraUC,
			transferUC,
			reservationUC,
			paymentUC,
			contactUC,
			cfg.Booking.DefaultLocationLimit,
			log,
		),
		Admin:         handler.NewAdminHandler(renderer, authUC, reservationUC, cfg.Server.CookieSecure, log),
		AdminExpense:  handler.NewAdminExpenseHandler(renderer, expenseUC, log),
		AdminVehicle:  handler.NewAdminVehicleHandler(renderer, vehicleUC, log),
		AdminLocation: handler.NewAdminLocationHandler(renderer, locationUC, log),
	}

	log.Info("HTTP handlers initialized")

	// 10. Initialize HTTP server
	server := httpDelivery.NewServer(cfg, log, handlers, authUC)

	// 11. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 12. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := db.Close(); err != nil {
		log.Error("Failed to close PostgreSQL", zap.Error(err))
	}

	if err := redisClient.Close(); err != nil {
		log.Error("Failed to close Redis", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
