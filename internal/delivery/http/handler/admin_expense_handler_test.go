package handler_test

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cyprus-transfer/internal/delivery/http/handler"
	"github.com/cyprus-transfer/internal/delivery/http/view"
	"github.com/cyprus-transfer/internal/domain"
	"github.com/cyprus-transfer/internal/pkg/errors"
	"github.com/cyprus-transfer/internal/usecase"
)

func newRenderer(t *testing.T) *view.Renderer {
	t.Helper()
	r, err := view.NewRenderer(zap.NewNop())
	require.NoError(t, err)
	return r
}

func newExpenseApp(t *testing.T, repo *MockExpenseRepository) *fiber.App {
	uc := usecase.NewExpenseUseCase(repo, new(MockVehicleRepository), zap.NewNop(), 20)
	h := handler.NewAdminExpenseHandler(newRenderer(t), uc, zap.NewNop())

	app := fiber.New()
	app.Get("/admin/expenses/:id", h.Show)
	return app
}

func getBody(t *testing.T, app *fiber.App, url string) (int, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", url, nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestAdminExpenseHandler_Show(t *testing.T) {
	fuel := "Fuel"
	expense := &domain.Expense{
		ID:            3,
		EntryDate:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		ExpenseNumber: "EXP-0003",
		TotalAmount:   150.5,
		Details: []domain.ExpenseDetail{
			{ID: 1, ExpenseID: 3, Amount: 100, ExpenseTypeID: 1, ExpenseTypeName: &fuel},
			{ID: 2, ExpenseID: 3, Amount: 50.5, ExpenseTypeID: 2},
		},
	}

	t.Run("joined query", func(t *testing.T) {
		repo := new(MockExpenseRepository)
		repo.On("GetWithRelations", mock.Anything, int64(3)).Return(expense, nil)

		status, body := getBody(t, newExpenseApp(t, repo), "/admin/expenses/3")
		assert.Equal(t, fiber.StatusOK, status)
		assert.Contains(t, body, "EXP-0003")
		assert.Contains(t, body, "01.03.2024")
		assert.Contains(t, body, "150,50")
		assert.Contains(t, body, "Fuel")
		assert.NotContains(t, body, "could not be loaded")
		repo.AssertNotCalled(t, "GetPlain", mock.Anything, mock.Anything)
	})

	t.Run("relation error falls back to plain query", func(t *testing.T) {
		repo := new(MockExpenseRepository)
		repo.On("GetWithRelations", mock.Anything, int64(3)).Return(nil, errors.ErrRelationUnavailable)
		repo.On("GetPlain", mock.Anything, int64(3)).Return(expense, nil)

		status, body := getBody(t, newExpenseApp(t, repo), "/admin/expenses/3")
		assert.Equal(t, fiber.StatusOK, status)
		assert.Contains(t, body, "EXP-0003")
		assert.Contains(t, body, "names could not be loaded")
		repo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(MockExpenseRepository)
		repo.On("GetWithRelations", mock.Anything, int64(99)).Return(nil, errors.ErrExpenseNotFound)

		status, body := getBody(t, newExpenseApp(t, repo), "/admin/expenses/99")
		assert.Equal(t, fiber.StatusNotFound, status)
		assert.Contains(t, body, "Not found")
	})

	t.Run("non-numeric id", func(t *testing.T) {
		repo := new(MockExpenseRepository)

		status, _ := getBody(t, newExpenseApp(t, repo), "/admin/expenses/abc")
		assert.Equal(t, fiber.StatusBadRequest, status)
		repo.AssertNotCalled(t, "GetWithRelations", mock.Anything, mock.Anything)
	})

	t.Run("both queries fail", func(t *testing.T) {
		repo := new(MockExpenseRepository)
		repo.On("GetWithRelations", mock.Anything, int64(3)).Return(nil, errors.ErrRelationUnavailable)
		repo.On("GetPlain", mock.Anything, int64(3)).Return(nil, errors.ErrDatabaseError)

		status, body := getBody(t, newExpenseApp(t, repo), "/admin/expenses/3")
		assert.Equal(t, fiber.StatusInternalServerError, status)
		assert.Contains(t, body, "Expense could not be loaded")
	})
}

func TestAdminExpenseHandler_Create(t *testing.T) {
	repo := new(MockExpenseRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(e *domain.Expense) bool {
		return e.TotalAmount == 150.5 && len(e.Details) == 2
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Expense).ID = 12
	}).Return(nil)

	uc := usecase.NewExpenseUseCase(repo, new(MockVehicleRepository), zap.NewNop(), 20)
	h := handler.NewAdminExpenseHandler(newRenderer(t), uc, zap.NewNop())
	app := fiber.New()
	app.Post("/admin/expenses", h.Create)

	form := "entry_date=2024-03-01&expense_number=EXP-0012&total_amount=999" +
		"&line_amount=100&line_type_id=1&line_amount=50,50&line_type_id=2&line_amount=&line_type_id="
	req := httptest.NewRequest("POST", "/admin/expenses", stringsReader(form))
	req.Header.Set("Content-Type", fiber.MIMEApplicationForm)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/admin/expenses/12?flash=saved", resp.Header.Get("Location"))
	repo.AssertExpectations(t)
}
