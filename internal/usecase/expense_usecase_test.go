package usecase_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cyprus-transfer/internal/domain"
	"github.com/cyprus-transfer/internal/pkg/errors"
	"github.com/cyprus-transfer/internal/usecase"
	"github.com/cyprus-transfer/internal/usecase/dto"
)

func newExpenseUseCase() (*usecase.ExpenseUseCase, *MockExpenseRepository, *MockVehicleRepository) {
	expenses := new(MockExpenseRepository)
	vehicles := new(MockVehicleRepository)
	return usecase.NewExpenseUseCase(expenses, vehicles, zap.NewNop(), 20), expenses, vehicles
}

func TestExpenseUseCase_GetView(t *testing.T) {
	t.Run("with relations", func(t *testing.T) {
		uc, expenses, _ := newExpenseUseCase()
		expenses.On("GetWithRelations", mock.Anything, int64(3)).
			Return(&domain.Expense{ID: 3, VehicleName: ptrString("Sedan")}, nil)

		view, err := uc.GetView(context.Background(), 3)
		require.NoError(t, err)
		assert.False(t, view.RelationsMissing)
		assert.Equal(t, "Sedan", *view.Expense.VehicleName)
		expenses.AssertNotCalled(t, "GetPlain", mock.Anything, mock.Anything)
	})

	t.Run("falls back to plain query", func(t *testing.T) {
		uc, expenses, _ := newExpenseUseCase()
		expenses.On("GetWithRelations", mock.Anything, int64(3)).Return(nil, errors.ErrRelationUnavailable)
		expenses.On("GetPlain", mock.Anything, int64(3)).Return(&domain.Expense{ID: 3, TotalAmount: 120}, nil)

		view, err := uc.GetView(context.Background(), 3)
		require.NoError(t, err)
		assert.True(t, view.RelationsMissing)
		assert.Nil(t, view.Expense.VehicleName)
		assert.Equal(t, 120.0, view.Expense.TotalAmount)
	})

	t.Run("not found is not retried", func(t *testing.T) {
		uc, expenses, _ := newExpenseUseCase()
		expenses.On("GetWithRelations", mock.Anything, int64(9)).Return(nil, errors.ErrExpenseNotFound)

		_, err := uc.GetView(context.Background(), 9)
		assert.Equal(t, errors.ErrExpenseNotFound, err)
		expenses.AssertNotCalled(t, "GetPlain", mock.Anything, mock.Anything)
	})

	t.Run("invalid id", func(t *testing.T) {
		uc, _, _ := newExpenseUseCase()
		_, err := uc.GetView(context.Background(), 0)
		assert.Equal(t, errors.ErrInvalidID, err)
	})
}

func TestExpenseUseCase_Create_TotalFromLines(t *testing.T) {
	uc, expenses, _ := newExpenseUseCase()

	expenses.On("Create", mock.Anything, mock.MatchedBy(func(e *domain.Expense) bool {
		return len(e.Details) == 2 &&
			e.Details[0].ExpenseTypeID == 1 && e.Details[1].Amount == 19.95 &&
			e.VehicleID != nil && *e.VehicleID == 10 && e.SupplierID == nil
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Expense).ID = 5
	}).Return(nil)

	expense, err := uc.Create(context.Background(), dto.ExpenseForm{
		EntryDate:     "2030-02-14",
		ExpenseNumber: " EXP-001 ",
		VehicleID:     10,
		TotalAmount:   999,
		LineAmounts:   []string{"100,10", "19.95", ""},
		LineTypeIDs:   []string{"1", "2", ""},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5), expense.ID)
	assert.Equal(t, "EXP-001", expense.ExpenseNumber)
	assert.Equal(t, 120.05, expense.TotalAmount)
	assert.Equal(t, 2030, expense.EntryDate.Year())
	expenses.AssertExpectations(t)
}

func TestExpenseUseCase_Create_TotalWithoutLines(t *testing.T) {
	uc, expenses, _ := newExpenseUseCase()
	expenses.On("Create", mock.Anything, mock.Anything).Return(nil)

	expense, err := uc.Create(context.Background(), dto.ExpenseForm{
		EntryDate:     "2030-02-14",
		ExpenseNumber: "EXP-002",
		Description:   "Fuel",
		TotalAmount:   45.5,
	})
	require.NoError(t, err)
	assert.Equal(t, 45.5, expense.TotalAmount)
	assert.Empty(t, expense.Details)
	require.NotNil(t, expense.Description)
	assert.Equal(t, "Fuel", *expense.Description)
}

func TestExpenseUseCase_Create_InvalidForm(t *testing.T) {
	tests := []struct {
		name string
		form dto.ExpenseForm
	}{
		{"missing number", dto.ExpenseForm{EntryDate: "2030-02-14"}},
		{"bad date", dto.ExpenseForm{EntryDate: "14.02.2030", ExpenseNumber: "E1"}},
		{"bad line amount", dto.ExpenseForm{EntryDate: "2030-02-14", ExpenseNumber: "E1",
			LineAmounts: []string{"abc"}, LineTypeIDs: []string{"1"}}},
		{"line without type", dto.ExpenseForm{EntryDate: "2030-02-14", ExpenseNumber: "E1",
			LineAmounts: []string{"10"}, LineTypeIDs: []string{""}}},
		{"zero line amount", dto.ExpenseForm{EntryDate: "2030-02-14", ExpenseNumber: "E1",
			LineAmounts: []string{"0"}, LineTypeIDs: []string{"1"}}},
		{"infinite line amount", dto.ExpenseForm{EntryDate: "2030-02-14", ExpenseNumber: "E1",
			LineAmounts: []string{"Inf"}, LineTypeIDs: []string{"1"}}},
		{"NaN line amount", dto.ExpenseForm{EntryDate: "2030-02-14", ExpenseNumber: "E1",
			LineAmounts: []string{"NaN"}, LineTypeIDs: []string{"1"}}},
		{"line amount above column range", dto.ExpenseForm{EntryDate: "2030-02-14", ExpenseNumber: "E1",
			LineAmounts: []string{"1e12"}, LineTypeIDs: []string{"1"}}},
		{"lines sum above column range", dto.ExpenseForm{EntryDate: "2030-02-14", ExpenseNumber: "E1",
			LineAmounts: []string{"9000000000", "9000000000"}, LineTypeIDs: []string{"1", "2"}}},
		{"total above column range", dto.ExpenseForm{EntryDate: "2030-02-14", ExpenseNumber: "E1",
			TotalAmount: 1e12}},
		{"infinite total", dto.ExpenseForm{EntryDate: "2030-02-14", ExpenseNumber: "E1",
			TotalAmount: math.Inf(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, expenses, _ := newExpenseUseCase()
			_, err := uc.Create(context.Background(), tt.form)
			assertInvalidRequest(t, err)
			expenses.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestExpenseUseCase_Update(t *testing.T) {
	uc, expenses, _ := newExpenseUseCase()
	expenses.On("Update", mock.Anything, mock.MatchedBy(func(e *domain.Expense) bool {
		return e.ID == 8 && e.TotalAmount == 30
	})).Return(nil)

	_, err := uc.Update(context.Background(), 8, dto.ExpenseForm{
		EntryDate:     "2030-03-01",
		ExpenseNumber: "EXP-008",
		LineAmounts:   []string{"10", "20"},
		LineTypeIDs:   []string{"3", "3"},
	})
	require.NoError(t, err)
	expenses.AssertExpectations(t)
}

func TestExpenseUseCase_FormOptions_PartialFailure(t *testing.T) {
	uc, expenses, vehicles := newExpenseUseCase()
	expenses.On("ListTypes", mock.Anything).Return([]*domain.ExpenseType{{ID: 1, Name: "Fuel"}}, nil)
	expenses.On("ListSuppliers", mock.Anything).Return(nil, errors.ErrDatabaseError)
	vehicles.On("List", mock.Anything).Return([]*domain.Vehicle{sedan()}, nil)

	opts := uc.FormOptions(context.Background())
	assert.Len(t, opts.Types, 1)
	assert.Empty(t, opts.Suppliers)
	assert.Len(t, opts.Vehicles, 1)
}
