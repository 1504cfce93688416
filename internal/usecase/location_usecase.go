package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cyprus-transfer/internal/domain"
	"github.com/cyprus-transfer/internal/domain/repository"
	"github.com/cyprus-transfer/internal/pkg/errors"
	"github.com/cyprus-transfer/internal/pkg/pagination"
	"github.com/cyprus-transfer/internal/pkg/utils"
	"github.com/cyprus-transfer/internal/pkg/validator"
	"github.com/cyprus-transfer/internal/usecase/dto"
	"go.uber.org/zap"
)

const (
	locationsCachePrefix  = "locations:"
	locationsListCacheKey = locationsCachePrefix + "list:%d"
)

// LocationUseCase - публичный список локаций и управление ими в админке
type LocationUseCase struct {
	locationRepo repository.LocationRepository
	cacheRepo    repository.CacheRepository
	logger       *zap.Logger
	cacheTTL     time.Duration
	pageSize     int
}

func NewLocationUseCase(
	locationRepo repository.LocationRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
	pageSize int,
) *LocationUseCase {
	return &LocationUseCase{
		locationRepo: locationRepo,
		cacheRepo:    cacheRepo,
		logger:       logger,
		cacheTTL:     cacheTTL,
		pageSize:     pageSize,
	}
}

// ListActive возвращает до limit активных локаций; limit <= 0 - ошибка ввода.
// Промах или сбой кеша не ломают запрос.
func (uc *LocationUseCase) ListActive(ctx context.Context, limit int) ([]*domain.LocationSummary, error) {
	if limit <= 0 {
		return nil, errors.ErrInvalidLimit
	}

	cacheKey := fmt.Sprintf(locationsListCacheKey, limit)
	if cached, err := uc.cacheRepo.Get(ctx, cacheKey); err == nil && cached != nil {
		var locations []*domain.LocationSummary
		if err := json.Unmarshal(cached, &locations); err == nil {
			return locations, nil
		}
		uc.logger.Warn("Failed to unmarshal cached locations", zap.String("key", cacheKey))
	}

	locations, err := uc.locationRepo.ListActive(ctx, limit)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(locations); err == nil {
		if err := uc.cacheRepo.Set(ctx, cacheKey, data, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache locations", zap.Error(err))
		}
	}

	return locations, nil
}

func (uc *LocationUseCase) Get(ctx context.Context, id int64) (*domain.Location, error) {
	if id <= 0 {
		return nil, errors.ErrInvalidID
	}
	return uc.locationRepo.GetByID(ctx, id)
}

// List - страница локаций для админки
func (uc *LocationUseCase) List(ctx context.Context, page int) (*dto.LocationPage, error) {
	if page < 1 {
		page = 1
	}

	items, total, err := uc.locationRepo.List(ctx, domain.Page{Number: page, Size: uc.pageSize})
	if err != nil {
		return nil, err
	}

	return &dto.LocationPage{
		Items: items,
		Total: total,
		Pager: pagination.New(page, pagination.LastPage(total, uc.pageSize)),
	}, nil
}

func (uc *LocationUseCase) Create(ctx context.Context, form dto.LocationForm) (*domain.Location, error) {
	loc, err := locationFromForm(form)
	if err != nil {
		return nil, err
	}

	if err := uc.locationRepo.Create(ctx, loc); err != nil {
		return nil, err
	}

	uc.logger.Info("Location created", zap.Int64("id", loc.ID), zap.String("name", loc.Name))
	uc.invalidate(ctx)
	return loc, nil
}

func (uc *LocationUseCase) Update(ctx context.Context, id int64, form dto.LocationForm) (*domain.Location, error) {
	loc, err := locationFromForm(form)
	if err != nil {
		return nil, err
	}
	loc.ID = id

	if err := uc.locationRepo.Update(ctx, loc); err != nil {
		return nil, err
	}

	uc.logger.Info("Location updated", zap.Int64("id", id))
	uc.invalidate(ctx)
	return loc, nil
}

func (uc *LocationUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.locationRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.logger.Info("Location deleted", zap.Int64("id", id))
	uc.invalidate(ctx)
	return nil
}

func (uc *LocationUseCase) invalidate(ctx context.Context) {
	if err := uc.cacheRepo.DeleteByPrefix(ctx, locationsCachePrefix); err != nil {
		uc.logger.Warn("Failed to invalidate locations cache", zap.Error(err))
	}
}

// locationFromForm валидирует форму; координаты задаются обе или ни одной
func locationFromForm(form dto.LocationForm) (*domain.Location, error) {
	form.Name = strings.TrimSpace(form.Name)
	if err := validator.Validate(&form); err != nil {
		return nil, err
	}

	lat, err := parseOptionalFloat(form.Latitude)
	if err != nil {
		return nil, errors.ErrInvalidCoordinates
	}
	lon, err := parseOptionalFloat(form.Longitude)
	if err != nil {
		return nil, errors.ErrInvalidCoordinates
	}
	if !utils.ValidateOptionalCoordinates(lat, lon) {
		return nil, errors.ErrInvalidCoordinates
	}

	loc := &domain.Location{
		Name:      form.Name,
		Type:      domain.LocationType(form.Type),
		Latitude:  lat,
		Longitude: lon,
		IsActive:  form.IsActive,
	}
	if addr := strings.TrimSpace(form.Address); addr != "" {
		loc.Address = &addr
	}
	return loc, nil
}

func parseOptionalFloat(raw string) (*float64, error) {
	raw = strings.TrimSpace(strings.Replace(raw, ",", ".", 1))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
