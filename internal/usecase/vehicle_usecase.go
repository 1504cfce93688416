package usecase

import (
	"context"
	"strconv"
	"strings"

	"github.com/cyprus-transfer/internal/domain"
	"github.com/cyprus-transfer/internal/domain/repository"
	"github.com/cyprus-transfer/internal/pkg/errors"
	"github.com/cyprus-transfer/internal/pkg/validator"
	"github.com/cyprus-transfer/internal/usecase/dto"
	"go.uber.org/zap"
)

// VehicleUseCase - автопарк
type VehicleUseCase struct {
	vehicleRepo repository.VehicleRepository
	logger      *zap.Logger
}

func NewVehicleUseCase(vehicleRepo repository.VehicleRepository, logger *zap.Logger) *VehicleUseCase {
	return &VehicleUseCase{
		vehicleRepo: vehicleRepo,
		logger:      logger,
	}
}

func (uc *VehicleUseCase) List(ctx context.Context) ([]*domain.Vehicle, error) {
	return uc.vehicleRepo.List(ctx)
}

func (uc *VehicleUseCase) Get(ctx context.Context, id int64) (*domain.Vehicle, error) {
	if id <= 0 {
		return nil, errors.ErrInvalidID
	}
	return uc.vehicleRepo.GetByID(ctx, id)
}

func (uc *VehicleUseCase) Create(ctx context.Context, form dto.VehicleForm) (*domain.Vehicle, error) {
	v, err := vehicleFromForm(form)
	if err != nil {
		return nil, err
	}

	if err := uc.vehicleRepo.Create(ctx, v); err != nil {
		return nil, err
	}

	uc.logger.Info("Vehicle created", zap.Int64("id", v.ID), zap.String("name", v.Name))
	return v, nil
}

func (uc *VehicleUseCase) Update(ctx context.Context, id int64, form dto.VehicleForm) (*domain.Vehicle, error) {
	v, err := vehicleFromForm(form)
	if err != nil {
		return nil, err
	}
	v.ID = id

	if err := uc.vehicleRepo.Update(ctx, v); err != nil {
		return nil, err
	}

	uc.logger.Info("Vehicle updated", zap.Int64("id", id))
	return v, nil
}

func (uc *VehicleUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.vehicleRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("Vehicle deleted", zap.Int64("id", id))
	return nil
}

func vehicleFromForm(form dto.VehicleForm) (*domain.Vehicle, error) {
	form.Name = strings.TrimSpace(form.Name)
	form.Type = strings.TrimSpace(form.Type)
	form.LuggageCapacity = strings.TrimSpace(form.LuggageCapacity)
	form.ImageURL = strings.TrimSpace(form.ImageURL)

	if err := validator.Validate(&form); err != nil {
		return nil, err
	}

	v := &domain.Vehicle{
		Name:     form.Name,
		Type:     form.Type,
		Capacity: form.Capacity,
	}
	if form.LuggageCapacity != "" {
		luggage, err := strconv.Atoi(form.LuggageCapacity)
		if err != nil {
			return nil, errors.ErrInvalidRequest
		}
		v.LuggageCapacity = &luggage
	}
	if form.ImageURL != "" {
		v.ImageURL = &form.ImageURL
	}
	return v, nil
}
