package usecase

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"github.com/cyprus-transfer/internal/domain"
	"github.com/cyprus-transfer/internal/domain/repository"
	"github.com/cyprus-transfer/internal/pkg/errors"
	"github.com/cyprus-transfer/internal/pkg/pagination"
	"github.com/cyprus-transfer/internal/pkg/validator"
	"github.com/cyprus-transfer/internal/usecase/dto"
	"go.uber.org/zap"
)

const expenseDateLayout = "2006-01-02"

// ExpenseUseCase - расходы в админке
type ExpenseUseCase struct {
	expenseRepo repository.ExpenseRepository
	vehicleRepo repository.VehicleRepository
	logger      *zap.Logger
	pageSize    int
}

func NewExpenseUseCase(
	expenseRepo repository.ExpenseRepository,
	vehicleRepo repository.VehicleRepository,
	logger *zap.Logger,
	pageSize int,
) *ExpenseUseCase {
	return &ExpenseUseCase{
		expenseRepo: expenseRepo,
		vehicleRepo: vehicleRepo,
		logger:      logger,
		pageSize:    pageSize,
	}
}

// GetView - расход со связями; если бэкенд не разрешает связи,
// повторный запрос без join-ов (имена автомобиля и поставщика теряются)
func (uc *ExpenseUseCase) GetView(ctx context.Context, id int64) (*domain.ExpenseView, error) {
	if id <= 0 {
		return nil, errors.ErrInvalidID
	}

	expense, err := uc.expenseRepo.GetWithRelations(ctx, id)
	if err == nil {
		return &domain.ExpenseView{Expense: expense}, nil
	}
	if !stderrors.Is(err, errors.ErrRelationUnavailable) {
		return nil, err
	}

	uc.logger.Warn("Falling back to plain expense query", zap.Int64("id", id))

	expense, err = uc.expenseRepo.GetPlain(ctx, id)
	if err != nil {
		return nil, err
	}
	return &domain.ExpenseView{Expense: expense, RelationsMissing: true}, nil
}

func (uc *ExpenseUseCase) List(ctx context.Context, page int) (*dto.ExpensePage, error) {
	if page < 1 {
		page = 1
	}

	items, total, err := uc.expenseRepo.List(ctx, domain.Page{Number: page, Size: uc.pageSize})
	if err != nil {
		return nil, err
	}

	return &dto.ExpensePage{
		Items: items,
		Total: total,
		Pager: pagination.New(page, pagination.LastPage(total, uc.pageSize)),
	}, nil
}

// FormOptions - справочники для формы; ошибка одного справочника не критична
func (uc *ExpenseUseCase) FormOptions(ctx context.Context) *dto.ExpenseFormOptions {
	opts := &dto.ExpenseFormOptions{}

	var err error
	if opts.Types, err = uc.expenseRepo.ListTypes(ctx); err != nil {
		uc.logger.Warn("Expense types unavailable", zap.Error(err))
	}
	if opts.Suppliers, err = uc.expenseRepo.ListSuppliers(ctx); err != nil {
		uc.logger.Warn("Suppliers unavailable", zap.Error(err))
	}
	if opts.Vehicles, err = uc.vehicleRepo.List(ctx); err != nil {
		uc.logger.Warn("Vehicles unavailable", zap.Error(err))
	}
	return opts
}

// Create сохраняет расход; при наличии строк итог равен их сумме
func (uc *ExpenseUseCase) Create(ctx context.Context, form dto.ExpenseForm) (*domain.Expense, error) {
	expense, err := expenseFromForm(form)
	if err != nil {
		return nil, err
	}

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}

	uc.logger.Info("Expense created",
		zap.Int64("id", expense.ID),
		zap.String("number", expense.ExpenseNumber),
		zap.Float64("total", expense.TotalAmount))
	return expense, nil
}

// Update перезаписывает расход и его строки
func (uc *ExpenseUseCase) Update(ctx context.Context, id int64, form dto.ExpenseForm) (*domain.Expense, error) {
	expense, err := expenseFromForm(form)
	if err != nil {
		return nil, err
	}
	expense.ID = id

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, err
	}

	uc.logger.Info("Expense updated", zap.Int64("id", id), zap.Float64("total", expense.TotalAmount))
	return expense, nil
}

func (uc *ExpenseUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.expenseRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("Expense deleted", zap.Int64("id", id))
	return nil
}

func expenseFromForm(form dto.ExpenseForm) (*domain.Expense, error) {
	form.ExpenseNumber = strings.TrimSpace(form.ExpenseNumber)
	if err := validator.Validate(&form); err != nil {
		return nil, err
	}

	entryDate, err := time.Parse(expenseDateLayout, strings.TrimSpace(form.EntryDate))
	if err != nil {
		return nil, invalidField("entry_date", "date")
	}

	lines, ok := form.Lines()
	if !ok {
		return nil, invalidField("lines", "number")
	}

	expense := &domain.Expense{
		EntryDate:     entryDate,
		ExpenseNumber: form.ExpenseNumber,
		Description:   optionalString(strings.TrimSpace(form.Description)),
		TotalAmount:   roundMoney(form.TotalAmount),
		Details:       make([]domain.ExpenseDetail, 0, len(lines)),
	}
	if form.VehicleID > 0 {
		expense.VehicleID = &form.VehicleID
	}
	if form.SupplierID > 0 {
		expense.SupplierID = &form.SupplierID
	}

	for i := range lines {
		if err := validator.Validate(&lines[i]); err != nil {
			return nil, invalidField("lines", "invalid")
		}
		expense.Details = append(expense.Details, domain.ExpenseDetail{
			Amount:        roundMoney(lines[i].Amount),
			ExpenseTypeID: lines[i].ExpenseTypeID,
		})
	}

	if len(expense.Details) > 0 {
		expense.TotalAmount = expense.DetailsTotal()
		if expense.TotalAmount > dto.MaxMoneyAmount {
			return nil, invalidField("total_amount", "max")
		}
	}

	return expense, nil
}
