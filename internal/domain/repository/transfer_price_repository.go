package repository

import (
	"context"

	"github.com/cyprus-transfer/internal/domain"
)

// TransferPriceRepository определяет методы для чтения сохранённых тарифов
type TransferPriceRepository interface {
	// GetRoutePrices возвращает все строки тарифа для маршрута
	GetRoutePrices(ctx context.Context, pickupID, dropoffID int64) ([]*domain.TransferPrice, error)
}
