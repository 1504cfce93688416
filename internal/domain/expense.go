package domain

import (
	"math"
	"time"
)

// Expense - расход (топливо, ремонт и т.п.) с детализацией по строкам
type Expense struct {
	ID            int64           `json:"id" db:"id"`
	EntryDate     time.Time       `json:"entry_date" db:"entry_date"`
	ExpenseNumber string          `json:"expense_number" db:"expense_number"`
	Description   *string         `json:"description,omitempty" db:"description"`
	TotalAmount   float64         `json:"total_amount" db:"total_amount"`
	VehicleID     *int64          `json:"vehicle_id,omitempty" db:"vehicle_id"`
	SupplierID    *int64          `json:"supplier_id,omitempty" db:"supplier_id"`
	VehicleName   *string         `json:"vehicle_name,omitempty" db:"vehicle_name"`
	SupplierName  *string         `json:"supplier_name,omitempty" db:"supplier_name"`
	Details       []ExpenseDetail `json:"details"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}

// ExpenseDetail - строка расхода
type ExpenseDetail struct {
	ID              int64   `json:"id" db:"id"`
	ExpenseID       int64   `json:"expense_id" db:"expense_id"`
	Amount          float64 `json:"amount" db:"amount"`
	ExpenseTypeID   int64   `json:"expense_type_id" db:"expense_type_id"`
	ExpenseTypeName *string `json:"expense_type_name,omitempty" db:"expense_type_name"`
}

// ExpenseType - справочник типов расходов
type ExpenseType struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// Supplier - поставщик
type Supplier struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// DetailsTotal - сумма строк, округлённая до копеек
func (e *Expense) DetailsTotal() float64 {
	var sum float64
	for _, d := range e.Details {
		sum += d.Amount
	}
	return math.Round(sum*100) / 100
}

// ExpenseView - расход для страницы; RelationsMissing, если имена связей не подгрузились
type ExpenseView struct {
	Expense          *Expense
	RelationsMissing bool
}
