package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cyprus-transfer/internal/config"
	"github.com/cyprus-transfer/internal/infrastructure/mail"
	"github.com/cyprus-transfer/internal/pkg/logger"
	"github.com/cyprus-transfer/internal/repository/cache"
	redisRepo "github.com/cyprus-transfer/internal/repository/redis"
	"github.com/cyprus-transfer/internal/usecase"
	"github.com/cyprus-transfer/internal/worker"
	"github.com/cyprus-transfer/internal/worker/notification"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if worker is enabled
	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, "worker")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Reservation Notification Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Int("batch_size", cfg.Worker.BatchSize),
		zap.Duration("shutdown_timeout", cfg.Worker.ShutdownTimeout))

	// 3. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 4. Initialize repositories
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	mailRepo := mail.NewMailer(&cfg.SMTP, log)
	if !mailRepo.Configured() {
		log.Warn("SMTP is not configured, confirmations will be acknowledged without sending")
	}

	// 5. Initialize use cases
	notificationUC := usecase.NewNotificationUseCase(mailRepo, log, cfg.Server.PublicURL)

	// 6. Initialize workers
	notificationWorker := notification.NewReservationNotificationWorker(
		streamRepo,
		notificationUC,
		cfg.Worker.ConsumerGroup,
		cfg.Worker.BatchSize,
		log,
	)

	// 7. Create worker manager and register workers
	workerManager := worker.NewWorkerManager(log, cfg.Worker.ShutdownTimeout)
	workerManager.Register(notificationWorker)

	// 8. Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	// Сначала сигнал Stop, чтобы текущий batch успел подтвердиться
	stopped := make(chan error, 1)
	go func() { stopped <- workerManager.Stop() }()

	select {
	case err := <-stopped:
		if err != nil {
			log.Error("Error stopping workers", zap.Error(err))
		}
	case <-time.After(cfg.Worker.ShutdownTimeout + time.Second):
		log.Warn("Worker manager did not return in time")
	}
	cancel()

	log.Info("Worker shutdown complete")
}
