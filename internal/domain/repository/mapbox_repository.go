package repository

import (
	"context"

	"github.com/cyprus-transfer/internal/domain"
)

// MapboxRepository - оценка маршрута по дорогам
type MapboxRepository interface {
	// EstimateRoute - расстояние и время в пути на автомобиле между двумя точками
	EstimateRoute(ctx context.Context, from, to domain.Coordinate) (*domain.RouteEstimate, error)
}
