package handler_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/cyprus-transfer/internal/domain"
)

type MockLocationRepository struct {
	mock.Mock
}

func (m *MockLocationRepository) ListActive(ctx context.Context, limit int) ([]*domain.LocationSummary, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.LocationSummary), args.Error(1)
}

func (m *MockLocationRepository) GetByID(ctx context.Context, id int64) (*domain.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Location), args.Error(1)
}

func (m *MockLocationRepository) List(ctx context.Context, page domain.Page) ([]*domain.Location, int, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*domain.Location), args.Int(1), args.Error(2)
}

func (m *MockLocationRepository) Create(ctx context.Context, location *domain.Location) error {
	return m.Called(ctx, location).Error(0)
}

func (m *MockLocationRepository) Update(ctx context.Context, location *domain.Location) error {
	return m.Called(ctx, location).Error(0)
}

func (m *MockLocationRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockCacheRepository) DeleteByPrefix(ctx context.Context, prefix string) error {
	return m.Called(ctx, prefix).Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) GetDetailByCode(ctx context.Context, code string) (*domain.ReservationDetail, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReservationDetail), args.Error(1)
}

func (m *MockReservationRepository) Create(ctx context.Context, reservation *domain.Reservation) error {
	return m.Called(ctx, reservation).Error(0)
}

func (m *MockReservationRepository) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.ReservationDetail, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*domain.ReservationDetail), args.Int(1), args.Error(2)
}

func (m *MockReservationRepository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

type MockExtraRepository struct {
	mock.Mock
}

func (m *MockExtraRepository) List(ctx context.Context) ([]*domain.Extra, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Extra), args.Error(1)
}

func (m *MockExtraRepository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Extra, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Extra), args.Error(1)
}

type MockMailRepository struct {
	mock.Mock
}

func (m *MockMailRepository) Configured() bool {
	return m.Called().Bool(0)
}

func (m *MockMailRepository) Send(ctx context.Context, msg *domain.MailMessage) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *MockMailRepository) DefaultRecipient() string {
	return m.Called().String(0)
}

type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) GetWithRelations(ctx context.Context, id int64) (*domain.Expense, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) GetPlain(ctx context.Context, id int64) (*domain.Expense, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) List(ctx context.Context, page domain.Page) ([]*domain.Expense, int, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*domain.Expense), args.Int(1), args.Error(2)
}

func (m *MockExpenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	return m.Called(ctx, expense).Error(0)
}

func (m *MockExpenseRepository) Update(ctx context.Context, expense *domain.Expense) error {
	return m.Called(ctx, expense).Error(0)
}

func (m *MockExpenseRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockExpenseRepository) ListTypes(ctx context.Context) ([]*domain.ExpenseType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ExpenseType), args.Error(1)
}

func (m *MockExpenseRepository) ListSuppliers(ctx context.Context) ([]*domain.Supplier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Supplier), args.Error(1)
}

type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) List(ctx context.Context) ([]*domain.Vehicle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) ListByMinCapacity(ctx context.Context, passengers int) ([]*domain.Vehicle, error) {
	args := m.Called(ctx, passengers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	return m.Called(ctx, vehicle).Error(0)
}

func (m *MockVehicleRepository) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	return m.Called(ctx, vehicle).Error(0)
}

func (m *MockVehicleRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
