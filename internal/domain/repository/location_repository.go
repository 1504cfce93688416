package repository

import (
	"context"

	"github.com/cyprus-transfer/internal/domain"
)

// LocationRepository определяет методы для работы с локациями
type LocationRepository interface {
	// ListActive возвращает до limit активных локаций (подмножество колонок)
	ListActive(ctx context.Context, limit int) ([]*domain.LocationSummary, error)

	// GetByID возвращает локацию по ID
	GetByID(ctx context.Context, id int64) (*domain.Location, error)

	// List возвращает страницу всех локаций для админки и общее количество
	List(ctx context.Context, page domain.Page) ([]*domain.Location, int, error)

	Create(ctx context.Context, location *domain.Location) error
	Update(ctx context.Context, location *domain.Location) error
	Delete(ctx context.Context, id int64) error
}
