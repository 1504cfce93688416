package postgres

import (
	"context"

	"github.com/cyprus-transfer/internal/domain"
	"github.com/cyprus-transfer/internal/domain/repository"
	"github.com/cyprus-transfer/internal/pkg/errors"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type transferPriceRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewTransferPriceRepository(db *DB) repository.TransferPriceRepository {
	return &transferPriceRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *transferPriceRepository) GetRoutePrices(ctx context.Context, pickupID, dropoffID int64) ([]*domain.TransferPrice, error) {
	query := `
		SELECT id, pickup_location_id, dropoff_location_id, vehicle_id, transfer_type,
			total_price, min_passengers, max_passengers, price_per_person, currency
		FROM transfer_prices
		WHERE pickup_location_id = $1 AND dropoff_location_id = $2
		ORDER BY vehicle_id, transfer_type, min_passengers NULLS FIRST
	`

	prices := make([]*domain.TransferPrice, 0)
	if err := r.db.SelectContext(ctx, &prices, query, pickupID, dropoffID); err != nil {
		r.logger.Error("Failed to get route prices",
			zap.Int64("pickup_id", pickupID),
			zap.Int64("dropoff_id", dropoffID),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return prices, nil
}
