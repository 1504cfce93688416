package handler

import (
	stderrors "errors"
	"strconv"

	"github.com/cyprus-transfer/internal/delivery/http/view"
	"github.com/cyprus-transfer/internal/pkg/errors"
	"github.com/cyprus-transfer/internal/usecase"
	"github.com/cyprus-transfer/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const expensesPath = "/admin/expenses"

// AdminExpenseHandler - расходы: список, карточка, форма со строками
type AdminExpenseHandler struct {
	renderer  *view.Renderer
	expenseUC *usecase.ExpenseUseCase
	logger    *zap.Logger
}

// NewAdminExpenseHandler - создание нового AdminExpenseHandler
func NewAdminExpenseHandler(renderer *view.Renderer, expenseUC *usecase.ExpenseUseCase, logger *zap.Logger) *AdminExpenseHandler {
	return &AdminExpenseHandler{
		renderer:  renderer,
		expenseUC: expenseUC,
		logger:    logger,
	}
}

func (h *AdminExpenseHandler) List(c *fiber.Ctx) error {
	result, err := h.expenseUC.List(c.UserContext(), c.QueryInt("page", 1))
	if err != nil {
		return renderAdminError(h.renderer, c, err)
	}
	return h.renderer.Render(c, fiber.StatusOK, "admin/expenses", adminPage(c, "Expenses", "expenses", result))
}

// Show - карточка расхода.
// Нечисловой id - 400, не найден - 404, при сбое обоих запросов - страница с баннером ошибки.
func (h *AdminExpenseHandler) Show(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return renderAdminError(h.renderer, c, errors.ErrInvalidID)
	}

	expense, err := h.expenseUC.GetView(c.UserContext(), int64(id))
	switch {
	case stderrors.Is(err, errors.ErrExpenseNotFound), stderrors.Is(err, errors.ErrInvalidID):
		return renderAdminError(h.renderer, c, err)
	case err != nil:
		page := adminPage(c, "Expense", "expenses", nil)
		page.Error = "Expense could not be loaded: " + errorText(err)
		return h.renderer.Render(c, errorStatus(err), "admin/expense_detail", page)
	}

	return h.renderer.Render(c, fiber.StatusOK, "admin/expense_detail",
		adminPage(c, "Expense "+expense.Expense.ExpenseNumber, "expenses", expense))
}

func (h *AdminExpenseHandler) New(c *fiber.Ctx) error {
	return h.renderForm(c, fiber.StatusOK, 0, dto.ExpenseForm{}, "")
}

func (h *AdminExpenseHandler) Create(c *fiber.Ctx) error {
	var form dto.ExpenseForm
	if err := c.BodyParser(&form); err != nil {
		return h.renderForm(c, fiber.StatusBadRequest, 0, form, errors.ErrInvalidRequest.Message)
	}

	expense, err := h.expenseUC.Create(c.UserContext(), form)
	if err != nil {
		return h.renderForm(c, errorStatus(err), 0, form, errorText(err))
	}
	return c.Redirect(expenseURL(expense.ID)+"?flash=saved", fiber.StatusSeeOther)
}

func (h *AdminExpenseHandler) Edit(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return renderAdminError(h.renderer, c, errors.ErrInvalidID)
	}

	expense, err := h.expenseUC.GetView(c.UserContext(), int64(id))
	if err != nil {
		return renderAdminError(h.renderer, c, err)
	}
	return h.renderForm(c, fiber.StatusOK, expense.Expense.ID, expenseToForm(expense.Expense), "")
}

func (h *AdminExpenseHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return renderAdminError(h.renderer, c, errors.ErrInvalidID)
	}

	var form dto.ExpenseForm
	if err := c.BodyParser(&form); err != nil {
		return h.renderForm(c, fiber.StatusBadRequest, int64(id), form, errors.ErrInvalidRequest.Message)
	}

	if _, err := h.expenseUC.Update(c.UserContext(), int64(id), form); err != nil {
		return h.renderForm(c, errorStatus(err), int64(id), form, errorText(err))
	}
	return c.Redirect(expenseURL(int64(id))+"?flash=saved", fiber.StatusSeeOther)
}

func (h *AdminExpenseHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return renderAdminError(h.renderer, c, errors.ErrInvalidID)
	}

	if err := h.expenseUC.Delete(c.UserContext(), int64(id)); err != nil {
		h.logger.Warn("Expense not deleted", zap.Int("id", id), zap.Error(err))
		return c.Redirect(expensesPath+"?error="+flashKey(err), fiber.StatusSeeOther)
	}
	return c.Redirect(expensesPath+"?flash=deleted", fiber.StatusSeeOther)
}

func (h *AdminExpenseHandler) renderForm(c *fiber.Ctx, status int, id int64, form dto.ExpenseForm, errMsg string) error {
	title := "New expense"
	if id > 0 {
		title = "Edit expense"
	}

	page := adminPage(c, title, "expenses", ExpenseFormView{
		ID:      id,
		Form:    form,
		Lines:   expenseLines(form),
		Options: h.expenseUC.FormOptions(c.UserContext()),
	})
	page.Error = errMsg
	return h.renderer.Render(c, status, "admin/expense_form", page)
}

func expenseURL(id int64) string {
	return expensesPath + "/" + strconv.FormatInt(id, 10)
}
