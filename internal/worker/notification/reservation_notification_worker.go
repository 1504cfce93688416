package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cyprus-transfer/internal/domain"
	"github.com/cyprus-transfer/internal/domain/repository"
	"github.com/cyprus-transfer/internal/worker"
	"go.uber.org/zap"
)

const (
	defaultBatchSize = 20
	emptyQueuePause  = 100 * time.Millisecond
	errorPause       = time.Second
	// staleIdle - после такого простоя pending-сообщение считается брошенным упавшим процессом
	staleIdle = 5 * time.Minute
	// maxRecoverRounds ограничивает разбор pending при старте
	maxRecoverRounds = 100
)

// ReservationNotifier - отправка подтверждения бронирования
type ReservationNotifier interface {
	SendReservationConfirmation(ctx context.Context, event *domain.ReservationCreatedEvent) error
}

// ReservationNotificationWorker читает stream:reservation:created и отправляет подтверждения клиентам
type ReservationNotificationWorker struct {
	*worker.BaseWorker
	streamRepo repository.StreamRepository
	notifier   ReservationNotifier
	batchSize  int
}

// NewReservationNotificationWorker создает новый ReservationNotificationWorker
func NewReservationNotificationWorker(
	streamRepo repository.StreamRepository,
	notifier ReservationNotifier,
	consumerGroup string,
	batchSize int,
	logger *zap.Logger,
) *ReservationNotificationWorker {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	return &ReservationNotificationWorker{
		BaseWorker: worker.NewBaseWorker("reservation-notification", consumerGroup, logger),
		streamRepo: streamRepo,
		notifier:   notifier,
		batchSize:  batchSize,
	}
}

// Start запускает цикл чтения стрима
func (w *ReservationNotificationWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting ReservationNotificationWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.ConsumerName()),
		zap.Int("batch_size", w.batchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamReservationCreated, w.ConsumerGroup()); err != nil {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	if recovered, err := w.RecoverPending(ctx); err != nil {
		logger.Error("Failed to recover pending messages", zap.Error(err))
	} else if recovered > 0 {
		logger.Info("Recovered pending messages", zap.Int("count", recovered))
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil
		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()
		default:
		}

		processed, err := w.ProcessBatch(ctx)
		if err != nil {
			logger.Error("Failed to process batch", zap.Error(err))
			w.Pause(ctx, errorPause)
			continue
		}

		if processed == 0 {
			w.Pause(ctx, emptyQueuePause)
		}
	}
}

// RecoverPending забирает и обрабатывает сообщения, которые прочитали, но не подтвердили
// consumer'ы прошлых запусков (имя consumer'а содержит PID и не повторяется).
func (w *ReservationNotificationWorker) RecoverPending(ctx context.Context) (int, error) {
	total := 0
	for round := 0; round < maxRecoverRounds; round++ {
		messages, err := w.streamRepo.ClaimStale(
			ctx,
			domain.StreamReservationCreated,
			w.ConsumerGroup(),
			w.ConsumerName(),
			staleIdle,
			w.batchSize,
		)
		if err != nil {
			return total, fmt.Errorf("failed to claim pending messages: %w", err)
		}
		if len(messages) == 0 {
			return total, nil
		}

		w.handle(ctx, messages)
		total += len(messages)
	}
	return total, nil
}

// ProcessBatch читает пачку событий и отправляет письма
func (w *ReservationNotificationWorker) ProcessBatch(ctx context.Context) (int, error) {
	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamReservationCreated,
		w.ConsumerGroup(),
		w.ConsumerName(),
		w.batchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}
	if len(messages) == 0 {
		return 0, nil
	}

	w.handle(ctx, messages)
	return len(messages), nil
}

// handle отправляет письма и подтверждает все сообщения пачки независимо от результата отправки
func (w *ReservationNotificationWorker) handle(ctx context.Context, messages []domain.StreamMessage) {
	logger := w.Logger()

	ids := make([]string, 0, len(messages))
	sent := 0
	for _, msg := range messages {
		ids = append(ids, msg.ID)

		event, err := parseEvent(msg)
		if err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			continue
		}

		if err := w.notifier.SendReservationConfirmation(ctx, event); err != nil {
			logger.Error("Failed to send reservation confirmation",
				zap.String("message_id", msg.ID),
				zap.String("code", event.Code),
				zap.Error(err))
			continue
		}
		sent++
	}

	if err := w.streamRepo.AckMessages(ctx, domain.StreamReservationCreated, w.ConsumerGroup(), ids); err != nil {
		logger.Error("Failed to ack messages", zap.Error(err))
	}

	logger.Info("Batch processed",
		zap.Int("received", len(messages)),
		zap.Int("sent", sent))
}

func parseEvent(msg domain.StreamMessage) (*domain.ReservationCreatedEvent, error) {
	if msg.Data == "" {
		return nil, fmt.Errorf("missing 'data' field")
	}

	var event domain.ReservationCreatedEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	if event.Code == "" {
		return nil, fmt.Errorf("event has no reservation code")
	}

	return &event, nil
}
