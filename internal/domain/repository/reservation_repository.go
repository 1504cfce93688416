package repository

import (
	"context"

	"github.com/cyprus-transfer/internal/domain"
)

// ReservationRepository определяет методы для работы с бронированиями
type ReservationRepository interface {
	// GetDetailByCode возвращает бронирование вместе с локациями и автомобилем
	GetDetailByCode(ctx context.Context, code string) (*domain.ReservationDetail, error)

	// Create сохраняет новое бронирование, заполняя ID и временные метки
	Create(ctx context.Context, reservation *domain.Reservation) error

	// List возвращает страницу бронирований и общее количество
	List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.ReservationDetail, int, error)

	// UpdateStatus меняет статус бронирования
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error

	// GetByID возвращает бронирование по ID
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
}
