package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/cyprus-transfer/internal/domain"
	"github.com/cyprus-transfer/internal/domain/repository"
	"github.com/cyprus-transfer/internal/pkg/errors"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type expenseRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewExpenseRepository(db *DB) repository.ExpenseRepository {
	return &expenseRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

const expenseColumns = `e.id, e.entry_date, e.expense_number, e.description, e.total_amount,
	e.vehicle_id, e.supplier_id, e.created_at, e.updated_at`

// GetWithRelations - расход с именами автомобиля, поставщика и типов строк
func (r *expenseRepository) GetWithRelations(ctx context.Context, id int64) (*domain.Expense, error) {
	query := `
		SELECT ` + expenseColumns + `, v.name AS vehicle_name, s.name AS supplier_name
		FROM expenses e
		LEFT JOIN vehicles v ON v.id = e.vehicle_id
		LEFT JOIN suppliers s ON s.id = e.supplier_id
		WHERE e.id = $1
	`

	var expense domain.Expense
	err := r.db.GetContext(ctx, &expense, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrExpenseNotFound
	}
	if isRelationError(err) {
		r.logger.Warn("Expense relations unavailable", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrRelationUnavailable
	}
	if err != nil {
		r.logger.Error("Failed to get expense with relations", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	detailsQuery := `
		SELECT d.id, d.expense_id, d.amount, d.expense_type_id, t.name AS expense_type_name
		FROM expense_details d
		LEFT JOIN expense_types t ON t.id = d.expense_type_id
		WHERE d.expense_id = $1
		ORDER BY d.id
	`

	details := make([]domain.ExpenseDetail, 0)
	err = r.db.SelectContext(ctx, &details, detailsQuery, id)
	if isRelationError(err) {
		r.logger.Warn("Expense detail relations unavailable", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrRelationUnavailable
	}
	if err != nil {
		r.logger.Error("Failed to get expense details", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	expense.Details = details
	return &expense, nil
}

// GetPlain - расход без join-ов; имена связей остаются пустыми
func (r *expenseRepository) GetPlain(ctx context.Context, id int64) (*domain.Expense, error) {
	var expense domain.Expense
	err := r.db.GetContext(ctx, &expense, `SELECT `+expenseColumns+` FROM expenses e WHERE e.id = $1`, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrExpenseNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get expense", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	details := make([]domain.ExpenseDetail, 0)
	err = r.db.SelectContext(ctx, &details,
		`SELECT id, expense_id, amount, expense_type_id FROM expense_details WHERE expense_id = $1 ORDER BY id`, id)
	if err != nil {
		r.logger.Error("Failed to get plain expense details", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	expense.Details = details
	return &expense, nil
}

func (r *expenseRepository) List(ctx context.Context, page domain.Page) ([]*domain.Expense, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM expenses`); err != nil {
		r.logger.Error("Failed to count expenses", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	query := `
		SELECT ` + expenseColumns + `, v.name AS vehicle_name, s.name AS supplier_name
		FROM expenses e
		LEFT JOIN vehicles v ON v.id = e.vehicle_id
		LEFT JOIN suppliers s ON s.id = e.supplier_id
		ORDER BY e.entry_date DESC, e.id DESC
		LIMIT $1 OFFSET $2
	`

	expenses := make([]*domain.Expense, 0)
	if err := r.db.SelectContext(ctx, &expenses, query, page.Size, pageOffset(page)); err != nil {
		r.logger.Error("Failed to list expenses", zap.Int("page", page.Number), zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	return expenses, total, nil
}

func (r *expenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin transaction", zap.Error(err))
		return errors.ErrDatabaseError
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO expenses (entry_date, expense_number, description, total_amount, vehicle_id, supplier_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`,
		expense.EntryDate, expense.ExpenseNumber, expense.Description, expense.TotalAmount,
		expense.VehicleID, expense.SupplierID,
	).Scan(&expense.ID, &expense.CreatedAt, &expense.UpdatedAt)
	if err != nil {
		r.logger.Error("Failed to create expense", zap.String("number", expense.ExpenseNumber), zap.Error(err))
		return errors.ErrDatabaseError
	}

	if err := r.insertDetails(ctx, tx, expense); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit expense", zap.Int64("id", expense.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *expenseRepository) Update(ctx context.Context, expense *domain.Expense) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin transaction", zap.Error(err))
		return errors.ErrDatabaseError
	}
	defer tx.Rollback()

	expense.UpdatedAt = time.Now().UTC()
	res, err := tx.ExecContext(ctx, `
		UPDATE expenses
		SET entry_date = $1, expense_number = $2, description = $3, total_amount = $4,
			vehicle_id = $5, supplier_id = $6, updated_at = $7
		WHERE id = $8`,
		expense.EntryDate, expense.ExpenseNumber, expense.Description, expense.TotalAmount,
		expense.VehicleID, expense.SupplierID, expense.UpdatedAt, expense.ID,
	)
	if err != nil {
		r.logger.Error("Failed to update expense", zap.Int64("id", expense.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if err := expectAffected(res, errors.ErrExpenseNotFound); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM expense_details WHERE expense_id = $1`, expense.ID); err != nil {
		r.logger.Error("Failed to clear expense details", zap.Int64("id", expense.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	if err := r.insertDetails(ctx, tx, expense); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit expense", zap.Int64("id", expense.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *expenseRepository) insertDetails(ctx context.Context, tx *sqlx.Tx, expense *domain.Expense) error {
	for i := range expense.Details {
		d := &expense.Details[i]
		d.ExpenseID = expense.ID

		err := tx.QueryRowContext(ctx,
			`INSERT INTO expense_details (expense_id, amount, expense_type_id) VALUES ($1, $2, $3) RETURNING id`,
			d.ExpenseID, d.Amount, d.ExpenseTypeID,
		).Scan(&d.ID)
		if err != nil {
			r.logger.Error("Failed to insert expense detail",
				zap.Int64("expense_id", expense.ID),
				zap.Int64("expense_type_id", d.ExpenseTypeID),
				zap.Error(err))
			return errors.ErrDatabaseError
		}
	}
	return nil
}

func (r *expenseRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin transaction", zap.Error(err))
		return errors.ErrDatabaseError
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM expense_details WHERE expense_id = $1`, id); err != nil {
		r.logger.Error("Failed to delete expense details", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete expense", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if err := expectAffected(res, errors.ErrExpenseNotFound); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit expense delete", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *expenseRepository) ListTypes(ctx context.Context) ([]*domain.ExpenseType, error) {
	types := make([]*domain.ExpenseType, 0)
	if err := r.db.SelectContext(ctx, &types, `SELECT id, name FROM expense_types ORDER BY name`); err != nil {
		r.logger.Error("Failed to list expense types", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return types, nil
}

func (r *expenseRepository) ListSuppliers(ctx context.Context) ([]*domain.Supplier, error) {
	suppliers := make([]*domain.Supplier, 0)
	if err := r.db.SelectContext(ctx, &suppliers, `SELECT id, name FROM suppliers ORDER BY name`); err != nil {
		r.logger.Error("Failed to list suppliers", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return suppliers, nil
}
