package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cyprus-transfer/internal/domain"
	"github.com/cyprus-transfer/internal/domain/repository"
	"go.uber.org/zap"
)

const extrasCacheKey = "extras:list"

// ExtraUseCase - список дополнительных услуг
type ExtraUseCase struct {
	extraRepo repository.ExtraRepository
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
	cacheTTL  time.Duration
}

func NewExtraUseCase(
	extraRepo repository.ExtraRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *ExtraUseCase {
	return &ExtraUseCase{
		extraRepo: extraRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

func (uc *ExtraUseCase) List(ctx context.Context) ([]*domain.Extra, error) {
	if cached, err := uc.cacheRepo.Get(ctx, extrasCacheKey); err == nil && cached != nil {
		var extras []*domain.Extra
		if err := json.Unmarshal(cached, &extras); err == nil {
			return extras, nil
		}
	}

	extras, err := uc.extraRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(extras); err == nil {
		if err := uc.cacheRepo.Set(ctx, extrasCacheKey, data, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache extras", zap.Error(err))
		}
	}

	return extras, nil
}
