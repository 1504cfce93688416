package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/cyprus-transfer/internal/domain"
	"github.com/cyprus-transfer/internal/domain/repository"
	"github.com/cyprus-transfer/internal/pkg/errors"
	"github.com/cyprus-transfer/internal/pkg/utils"
	"github.com/cyprus-transfer/internal/pkg/validator"
	"github.com/cyprus-transfer/internal/usecase/dto"
	"go.uber.org/zap"
)

// TransferUseCase - предложения трансфера из сохранённых тарифов.
// Цена не вычисляется: private берёт сохранённую сумму, shared выбирает
// ступень по числу пассажиров.
type TransferUseCase struct {
	locationRepo repository.LocationRepository
	vehicleRepo  repository.VehicleRepository
	priceRepo    repository.TransferPriceRepository
	mapboxRepo   repository.MapboxRepository // nil, если Mapbox не настроен
	logger       *zap.Logger
	currency     string
}

func NewTransferUseCase(
	locationRepo repository.LocationRepository,
	vehicleRepo repository.VehicleRepository,
	priceRepo repository.TransferPriceRepository,
	mapboxRepo repository.MapboxRepository,
	logger *zap.Logger,
	currency string,
) *TransferUseCase {
	return &TransferUseCase{
		locationRepo: locationRepo,
		vehicleRepo:  vehicleRepo,
		priceRepo:    priceRepo,
		mapboxRepo:   mapboxRepo,
		logger:       logger,
		currency:     currency,
	}
}

// Search возвращает варианты для маршрута, даты и числа пассажиров
func (uc *TransferUseCase) Search(ctx context.Context, req dto.TransferSearchRequest) (*dto.TransferSearchResponse, error) {
	if err := validator.Validate(&req); err != nil {
		return nil, err
	}

	date, ok := parseTransferDate(req.Date)
	if !ok {
		return nil, invalidField("date", "datetime")
	}

	pickup, dropoff, err := uc.loadRoute(ctx, req.PickupID, req.DropoffID)
	if err != nil {
		return nil, err
	}

	vehicles, err := uc.vehicleRepo.ListByMinCapacity(ctx, req.Passengers)
	if err != nil {
		return nil, err
	}

	prices, err := uc.priceRepo.GetRoutePrices(ctx, pickup.ID, dropoff.ID)
	if err != nil {
		return nil, err
	}

	estimate := uc.estimate(ctx, pickup, dropoff)
	options := buildOptions(vehicles, prices, req.Passengers, estimate, uc.currency)

	uc.logger.Debug("Transfer search",
		zap.Int64("pickup_id", pickup.ID),
		zap.Int64("dropoff_id", dropoff.ID),
		zap.Int("passengers", req.Passengers),
		zap.Int("vehicles", len(vehicles)),
		zap.Int("options", len(options)))

	return &dto.TransferSearchResponse{
		Pickup:     pickup,
		Dropoff:    dropoff,
		Date:       date,
		Passengers: req.Passengers,
		Estimate:   estimate,
		Options:    options,
	}, nil
}

// Quote повторно рассчитывает выбранный вариант при создании бронирования
func (uc *TransferUseCase) Quote(
	ctx context.Context,
	pickupID, dropoffID, vehicleID int64,
	transferType domain.TransferType,
	passengers int,
) (*domain.TransferOption, error) {
	pickup, dropoff, err := uc.loadRoute(ctx, pickupID, dropoffID)
	if err != nil {
		return nil, err
	}

	vehicle, err := uc.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if !vehicle.Fits(passengers) {
		return nil, errors.ErrTransferOptionUnavailable.WithMessage(
			fmt.Sprintf("%s seats up to %d passengers", vehicle.Name, vehicle.Capacity))
	}

	prices, err := uc.priceRepo.GetRoutePrices(ctx, pickup.ID, dropoff.ID)
	if err != nil {
		return nil, err
	}

	for _, opt := range buildOptions([]*domain.Vehicle{vehicle}, prices, passengers, nil, uc.currency) {
		if opt.Type == transferType {
			return &opt, nil
		}
	}

	return nil, errors.ErrTransferOptionUnavailable
}

// loadRoute загружает обе локации; неактивная локация считается отсутствующей
func (uc *TransferUseCase) loadRoute(ctx context.Context, pickupID, dropoffID int64) (*domain.Location, *domain.Location, error) {
	if pickupID == dropoffID {
		return nil, nil, invalidField("dropoff_id", "nefield")
	}

	pickup, err := uc.locationRepo.GetByID(ctx, pickupID)
	if err != nil {
		return nil, nil, err
	}
	if !pickup.IsActive {
		return nil, nil, errors.ErrLocationNotFound
	}

	dropoff, err := uc.locationRepo.GetByID(ctx, dropoffID)
	if err != nil {
		return nil, nil, err
	}
	if !dropoff.IsActive {
		return nil, nil, errors.ErrLocationNotFound
	}

	return pickup, dropoff, nil
}

// estimate - Mapbox при наличии, иначе расстояние по прямой; без координат оценки нет
func (uc *TransferUseCase) estimate(ctx context.Context, pickup, dropoff *domain.Location) *domain.RouteEstimate {
	if !pickup.HasCoordinates() || !dropoff.HasCoordinates() {
		return nil
	}

	if uc.mapboxRepo != nil {
		estimate, err := uc.mapboxRepo.EstimateRoute(ctx,
			domain.Coordinate{Lat: *pickup.Latitude, Lon: *pickup.Longitude},
			domain.Coordinate{Lat: *dropoff.Latitude, Lon: *dropoff.Longitude},
		)
		if err == nil {
			return estimate
		}
		uc.logger.Warn("Mapbox estimate unavailable, falling back to haversine",
			zap.Int64("pickup_id", pickup.ID),
			zap.Int64("dropoff_id", dropoff.ID),
			zap.Error(err))
	}

	km := utils.HaversineDistance(*pickup.Latitude, *pickup.Longitude, *dropoff.Latitude, *dropoff.Longitude)
	return &domain.RouteEstimate{
		DistanceKm: math.Round(km*10) / 10,
		Source:     domain.EstimateSourceHaversine,
	}
}

// buildOptions собирает варианты: private при наличии сохранённой суммы,
// shared при наличии ступени, покрывающей число пассажиров
func buildOptions(
	vehicles []*domain.Vehicle,
	prices []*domain.TransferPrice,
	passengers int,
	estimate *domain.RouteEstimate,
	defaultCurrency string,
) []domain.TransferOption {
	private := make(map[int64]*domain.TransferPrice)
	tiers := make(map[int64][]domain.SharedPriceTier)
	tierCurrency := make(map[int64]string)

	for _, p := range prices {
		switch p.TransferType {
		case domain.TransferTypePrivate:
			if p.TotalPrice != nil {
				if _, seen := private[p.VehicleID]; !seen {
					private[p.VehicleID] = p
				}
			}
		case domain.TransferTypeShared:
			if p.MinPassengers != nil && p.MaxPassengers != nil && p.PricePerPerson != nil {
				tiers[p.VehicleID] = append(tiers[p.VehicleID], domain.SharedPriceTier{
					MinPassengers:  *p.MinPassengers,
					MaxPassengers:  *p.MaxPassengers,
					PricePerPerson: *p.PricePerPerson,
				})
				tierCurrency[p.VehicleID] = p.Currency
			}
		}
	}

	options := make([]domain.TransferOption, 0, len(vehicles)*2)
	for _, v := range vehicles {
		if !v.Fits(passengers) {
			continue
		}

		if p, ok := private[v.ID]; ok {
			options = append(options, withEstimate(domain.TransferOption{
				ID:      fmt.Sprintf("%d-%s", v.ID, domain.TransferTypePrivate),
				Type:    domain.TransferTypePrivate,
				Vehicle: *v,
				Private: &domain.PriceDetailsPrivate{
					Total:    roundMoney(*p.TotalPrice),
					Currency: currencyOr(p.Currency, defaultCurrency),
				},
			}, estimate))
		}

		vehicleTiers := tiers[v.ID]
		if len(vehicleTiers) == 0 {
			continue
		}
		sort.Slice(vehicleTiers, func(i, j int) bool {
			return vehicleTiers[i].MinPassengers < vehicleTiers[j].MinPassengers
		})

		for _, tier := range vehicleTiers {
			if !tier.Covers(passengers) {
				continue
			}
			options = append(options, withEstimate(domain.TransferOption{
				ID:      fmt.Sprintf("%d-%s", v.ID, domain.TransferTypeShared),
				Type:    domain.TransferTypeShared,
				Vehicle: *v,
				Shared: &domain.PriceDetailsShared{
					Tiers:          vehicleTiers,
					PricePerPerson: tier.PricePerPerson,
					Passengers:     passengers,
					Total:          roundMoney(tier.PricePerPerson * float64(passengers)),
					Currency:       currencyOr(tierCurrency[v.ID], defaultCurrency),
				},
			}, estimate))
			break
		}
	}

	return options
}

func withEstimate(opt domain.TransferOption, estimate *domain.RouteEstimate) domain.TransferOption {
	if estimate == nil {
		return opt
	}
	km := estimate.DistanceKm
	opt.EstimatedDistanceKm = &km
	opt.EstimatedDurationMinutes = estimate.DurationMinutes
	return opt
}

func currencyOr(currency, fallback string) string {
	if currency != "" {
		return currency
	}
	return fallback
}
