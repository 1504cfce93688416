package repository

import (
	"context"

	"github.com/cyprus-transfer/internal/domain"
)

// ExtraRepository определяет методы для работы с доп. услугами
type ExtraRepository interface {
	// List возвращает все доп. услуги
	List(ctx context.Context) ([]*domain.Extra, error)

	// GetByIDs возвращает доп. услуги с указанными ID
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Extra, error)
}
