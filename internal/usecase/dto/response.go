package dto

import (
	"time"

	"github.com/cyprus-transfer/internal/domain"
	"github.com/cyprus-transfer/internal/pkg/pagination"
)

// TransferSearchResponse - предложения трансфера для маршрута
type TransferSearchResponse struct {
	Pickup     *domain.Location        `json:"pickup"`
	Dropoff    *domain.Location        `json:"dropoff"`
	Date       time.Time               `json:"date"`
	Passengers int                     `json:"passengers"`
	Estimate   *domain.RouteEstimate   `json:"estimate,omitempty"`
	Options    []domain.TransferOption `json:"options"`
}

// ContactResponse - результат отправки формы
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ContactStatusResponse - health check почтового транспорта
type ContactStatusResponse struct {
	Status     string `json:"status"`
	Configured bool   `json:"configured"`
}

// HealthResponse - состояние зависимостей
type HealthResponse struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services"`
}

// ReservationPage - страница бронирований в админке
type ReservationPage struct {
	Items  []*domain.ReservationDetail
	Total  int
	Status string
	Pager  pagination.Pager
}

// LocationPage - страница локаций в админке
type LocationPage struct {
	Items []*domain.Location
	Total int
	Pager pagination.Pager
}

// ExpensePage - страница расходов в админке
type ExpensePage struct {
	Items []*domain.Expense
	Total int
	Pager pagination.Pager
}

// ExpenseFormOptions - справочники для формы расхода
type ExpenseFormOptions struct {
	Types     []*domain.ExpenseType
	Suppliers []*domain.Supplier
	Vehicles  []*domain.Vehicle
}

// PaymentTestResponse - сырой ответ платёжной функции для тестовой страницы
type PaymentTestResponse struct {
	StatusCode int    `json:"status_code"`
	Body       string `json:"body"`
}
