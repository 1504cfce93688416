package repository

import (
	"context"

	"github.com/cyprus-transfer/internal/domain"
)

// ExpenseRepository определяет методы для работы с расходами
type ExpenseRepository interface {
	// GetWithRelations возвращает расход с автомобилем, поставщиком и строками с типами.
	// Если бэкенд не может разрешить связи, возвращает errors.ErrRelationUnavailable.
	GetWithRelations(ctx context.Context, id int64) (*domain.Expense, error)

	// GetPlain возвращает расход и его строки без join-ов
	GetPlain(ctx context.Context, id int64) (*domain.Expense, error)

	// List возвращает страницу расходов и общее количество
	List(ctx context.Context, page domain.Page) ([]*domain.Expense, int, error)

	// Create сохраняет расход вместе со строками в одной транзакции
	Create(ctx context.Context, expense *domain.Expense) error

	// Update обновляет расход и полностью заменяет строки
	Update(ctx context.Context, expense *domain.Expense) error

	Delete(ctx context.Context, id int64) error

	// ListTypes возвращает справочник типов расходов
	ListTypes(ctx context.Context) ([]*domain.ExpenseType, error)

	// ListSuppliers возвращает справочник поставщиков
	ListSuppliers(ctx context.Context) ([]*domain.Supplier, error)
}
