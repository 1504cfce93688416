package usecase_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cyprus-transfer/internal/domain"
	"github.com/cyprus-transfer/internal/pkg/errors"
	"github.com/cyprus-transfer/internal/usecase"
	"github.com/cyprus-transfer/internal/usecase/dto"
)

func TestExtraUseCase_List(t *testing.T) {
	ctx := context.Background()
	extras := []*domain.Extra{{ID: 1, Name: "Child seat", Price: 5}, {ID: 2, Name: "Meet and greet", Price: 10}}

	t.Run("cache hit", func(t *testing.T) {
		repo := new(MockExtraRepository)
		cache := new(MockCacheRepository)
		data, err := json.Marshal(extras)
		require.NoError(t, err)
		cache.On("Get", ctx, "extras:list").Return(data, nil)

		uc := usecase.NewExtraUseCase(repo, cache, zap.NewNop(), time.Hour)
		result, err := uc.List(ctx)
		require.NoError(t, err)
		assert.Len(t, result, 2)
		repo.AssertNotCalled(t, "List", mock.Anything)
	})

	t.Run("cache miss stores result", func(t *testing.T) {
		repo := new(MockExtraRepository)
		cache := new(MockCacheRepository)
		cache.On("Get", ctx, "extras:list").Return(nil, errors.ErrCacheError)
		repo.On("List", ctx).Return(extras, nil)
		cache.On("Set", ctx, "extras:list", mock.Anything, time.Hour).Return(nil)

		uc := usecase.NewExtraUseCase(repo, cache, zap.NewNop(), time.Hour)
		result, err := uc.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Meet and greet", result[1].Name)
		cache.AssertExpectations(t)
	})

	t.Run("cache write failure is ignored", func(t *testing.T) {
		repo := new(MockExtraRepository)
		cache := new(MockCacheRepository)
		cache.On("Get", ctx, "extras:list").Return(nil, nil)
		repo.On("List", ctx).Return(extras, nil)
		cache.On("Set", ctx, mock.Anything, mock.Anything, mock.Anything).Return(errors.ErrCacheError)

		uc := usecase.NewExtraUseCase(repo, cache, zap.NewNop(), time.Hour)
		result, err := uc.List(ctx)
		require.NoError(t, err)
		assert.Len(t, result, 2)
	})

	t.Run("database error", func(t *testing.T) {
		repo := new(MockExtraRepository)
		cache := new(MockCacheRepository)
		cache.On("Get", ctx, "extras:list").Return(nil, nil)
		repo.On("List", ctx).Return(nil, errors.ErrDatabaseError)

		uc := usecase.NewExtraUseCase(repo, cache, zap.NewNop(), time.Hour)
		_, err := uc.List(ctx)
		assert.Equal(t, errors.ErrDatabaseError, err)
		cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestVehicleUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("optional fields", func(t *testing.T) {
		repo := new(MockVehicleRepository)
		repo.On("Create", ctx, mock.MatchedBy(func(v *domain.Vehicle) bool {
			return v.Name == "Mercedes Vito" && v.Capacity == 8 &&
				v.LuggageCapacity != nil && *v.LuggageCapacity == 6 && v.ImageURL == nil
		})).Return(nil).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Vehicle).ID = 3
		})

		uc := usecase.NewVehicleUseCase(repo, zap.NewNop())
		v, err := uc.Create(ctx, dto.VehicleForm{Name: "  Mercedes Vito ", Type: "minivan", Capacity: 8, LuggageCapacity: " 6 "})
		require.NoError(t, err)
		assert.Equal(t, int64(3), v.ID)
		repo.AssertExpectations(t)
	})

	t.Run("invalid form", func(t *testing.T) {
		repo := new(MockVehicleRepository)
		uc := usecase.NewVehicleUseCase(repo, zap.NewNop())

		forms := []dto.VehicleForm{
			{Type: "sedan", Capacity: 4},
			{Name: "Skoda", Type: "sedan", Capacity: 0},
			{Name: "Skoda", Type: "sedan", Capacity: 4, LuggageCapacity: "many"},
			{Name: "Skoda", Type: "sedan", Capacity: 4, ImageURL: "not a url"},
		}
		for _, form := range forms {
			_, err := uc.Create(ctx, form)
			assert.Error(t, err)
		}
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestVehicleUseCase_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := new(MockVehicleRepository)
	uc := usecase.NewVehicleUseCase(repo, zap.NewNop())

	repo.On("Update", ctx, mock.MatchedBy(func(v *domain.Vehicle) bool { return v.ID == 5 })).Return(nil)
	v, err := uc.Update(ctx, 5, dto.VehicleForm{Name: "Toyota Corolla", Type: "sedan", Capacity: 4})
	require.NoError(t, err)
	assert.Equal(t, int64(5), v.ID)

	repo.On("Delete", ctx, int64(5)).Return(errors.ErrResourceInUse)
	assert.Equal(t, errors.ErrResourceInUse, uc.Delete(ctx, 5))

	_, err = uc.Get(ctx, 0)
	assert.Equal(t, errors.ErrInvalidID, err)
}
