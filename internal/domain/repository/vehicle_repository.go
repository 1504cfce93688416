package repository

import (
	"context"

	"github.com/cyprus-transfer/internal/domain"
)

// VehicleRepository определяет методы для работы с автомобилями
type VehicleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)

	// List возвращает все автомобили
	List(ctx context.Context) ([]*domain.Vehicle, error)

	// ListByMinCapacity возвращает автомобили вместимостью не меньше passengers
	ListByMinCapacity(ctx context.Context, passengers int) ([]*domain.Vehicle, error)

	Create(ctx context.Context, vehicle *domain.Vehicle) error
	Update(ctx context.Context, vehicle *domain.Vehicle) error
	Delete(ctx context.Context, id int64) error
}
