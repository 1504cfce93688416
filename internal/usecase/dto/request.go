package dto

import (
	"math"
	"strconv"
	"strings"
)

// TransferSearchRequest - параметры поиска трансфера (query string)
type TransferSearchRequest struct {
	PickupID   int64  `json:"pickup_id" query:"pickup_id" form:"pickup_id" validate:"required,min=1"`
	DropoffID  int64  `json:"dropoff_id" query:"dropoff_id" form:"dropoff_id" validate:"required,min=1,nefield=PickupID"`
	Date       string `json:"date" query:"date" form:"date" validate:"required"`
	Passengers int    `json:"passengers" query:"passengers" form:"passengers" validate:"required,min=1,max=50"`
}

// CreateReservationRequest - запрос на создание бронирования
type CreateReservationRequest struct {
	PickupLocationID  int64   `json:"pickup_location_id" form:"pickup_location_id" validate:"required,min=1"`
	DropoffLocationID int64   `json:"dropoff_location_id" form:"dropoff_location_id" validate:"required,min=1,nefield=PickupLocationID"`
	VehicleID         int64   `json:"vehicle_id" form:"vehicle_id" validate:"required,min=1"`
	TransferType      string  `json:"transfer_type" form:"transfer_type" validate:"required,oneof=private shared"`
	TransferDate      string  `json:"transfer_date" form:"transfer_date" validate:"required"`
	PassengerCount    int     `json:"passenger_count" form:"passenger_count" validate:"required,min=1,max=50"`
	CustomerName      string  `json:"customer_name" form:"customer_name" validate:"required,min=2,max=120"`
	CustomerEmail     string  `json:"customer_email" form:"customer_email" validate:"required,email,max=254"`
	CustomerPhone     string  `json:"customer_phone" form:"customer_phone" validate:"required,phone"`
	FlightNumber      string  `json:"flight_number,omitempty" form:"flight_number" validate:"omitempty,flight"`
	Notes             string  `json:"notes,omitempty" form:"notes" validate:"omitempty,max=1000"`
	ExtraIDs          []int64 `json:"extra_ids,omitempty" form:"extra_ids" validate:"omitempty,max=20,dive,min=1"`
}

// Normalize обрезает пробелы в текстовых полях
func (r *CreateReservationRequest) Normalize() {
	r.CustomerName = strings.TrimSpace(r.CustomerName)
	r.CustomerEmail = strings.TrimSpace(r.CustomerEmail)
	r.CustomerPhone = strings.TrimSpace(r.CustomerPhone)
	r.FlightNumber = strings.ToUpper(strings.TrimSpace(r.FlightNumber))
	r.Notes = strings.TrimSpace(r.Notes)
	r.TransferDate = strings.TrimSpace(r.TransferDate)
}

// ContactRequest - сообщение с формы обратной связи
type ContactRequest struct {
	Name    string `json:"name" form:"name" validate:"required,max=120"`
	Email   string `json:"email" form:"email" validate:"required,email"`
	Subject string `json:"subject" form:"subject" validate:"required,max=200"`
	Message string `json:"message" form:"message" validate:"required,max=5000"`
}

// Normalize обрезает пробелы; строка из одних пробелов считается пустой
func (r *ContactRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Subject = strings.TrimSpace(r.Subject)
	r.Message = strings.TrimSpace(r.Message)
}

// PaymentRequest - данные карты с платёжной формы
type PaymentRequest struct {
	CardHolderName string `json:"card_holder_name" form:"card_holder_name" validate:"required,max=120"`
	CardNumber     string `json:"card_number" form:"card_number" validate:"required,numeric,min=12,max=19"`
	ExpireMonth    string `json:"expire_month" form:"expire_month" validate:"required,numeric,len=2"`
	ExpireYear     string `json:"expire_year" form:"expire_year" validate:"required,numeric,min=2,max=4"`
	CVC            string `json:"cvc" form:"cvc" validate:"required,numeric,min=3,max=4"`
	Installment    int    `json:"installment,omitempty" form:"installment" validate:"omitempty,min=1,max=12"`
	Address        string `json:"address,omitempty" form:"address" validate:"omitempty,max=300"`
}

// Normalize убирает пробелы и дефисы из номера карты
func (r *PaymentRequest) Normalize() {
	r.CardHolderName = strings.TrimSpace(r.CardHolderName)
	r.CardNumber = strings.NewReplacer(" ", "", "-", "").Replace(r.CardNumber)
	r.ExpireMonth = strings.TrimSpace(r.ExpireMonth)
	r.ExpireYear = strings.TrimSpace(r.ExpireYear)
	r.CVC = strings.TrimSpace(r.CVC)
}

// LoginRequest - вход администратора
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// LocationForm - форма локации в админке. Координаты приходят строками:
// пустое поле означает отсутствие координаты.
type LocationForm struct {
	Name      string `form:"name" validate:"required,max=200"`
	Type      string `form:"type" validate:"required,oneof=airport hotel other"`
	Address   string `form:"address" validate:"omitempty,max=300"`
	Latitude  string `form:"latitude"`
	Longitude string `form:"longitude"`
	IsActive  bool   `form:"is_active"`
}

// VehicleForm - форма автомобиля в админке
type VehicleForm struct {
	Name            string `form:"name" validate:"required,max=120"`
	Type            string `form:"type" validate:"required,max=60"`
	Capacity        int    `form:"capacity" validate:"required,min=1,max=100"`
	LuggageCapacity string `form:"luggage_capacity" validate:"omitempty,numeric"`
	ImageURL        string `form:"image_url" validate:"omitempty,url"`
}

// ExpenseForm - форма расхода; строки приходят параллельными массивами
type ExpenseForm struct {
	EntryDate     string   `form:"entry_date" validate:"required"`
	ExpenseNumber string   `form:"expense_number" validate:"required,max=50"`
	Description   string   `form:"description" validate:"omitempty,max=1000"`
	VehicleID     int64    `form:"vehicle_id" validate:"omitempty,min=1"`
	SupplierID    int64    `form:"supplier_id" validate:"omitempty,min=1"`
	TotalAmount   float64  `form:"total_amount" validate:"omitempty,min=0,max=9999999999.99"`
	LineAmounts   []string `form:"line_amount"`
	LineTypeIDs   []string `form:"line_type_id"`
}

// MaxMoneyAmount - предел сумм расходов, NUMERIC(12,2)
const MaxMoneyAmount = 9999999999.99

// ExpenseLine - строка расхода после разбора формы
type ExpenseLine struct {
	Amount        float64 `validate:"gt=0,max=9999999999.99"`
	ExpenseTypeID int64   `validate:"required,min=1"`
}

// Lines собирает строки из параллельных массивов; полностью пустые строки пропускаются
func (f *ExpenseForm) Lines() ([]ExpenseLine, bool) {
	n := len(f.LineAmounts)
	if len(f.LineTypeIDs) > n {
		n = len(f.LineTypeIDs)
	}

	lines := make([]ExpenseLine, 0, n)
	for i := 0; i < n; i++ {
		amountRaw, typeRaw := at(f.LineAmounts, i), at(f.LineTypeIDs, i)
		if amountRaw == "" && typeRaw == "" {
			continue
		}

		amount, err := strconv.ParseFloat(strings.Replace(amountRaw, ",", ".", 1), 64)
		if err != nil || math.IsInf(amount, 0) || math.IsNaN(amount) {
			return nil, false
		}
		typeID, err := strconv.ParseInt(typeRaw, 10, 64)
		if err != nil {
			return nil, false
		}
		lines = append(lines, ExpenseLine{Amount: amount, ExpenseTypeID: typeID})
	}
	return lines, true
}

func at(values []string, i int) string {
	if i < len(values) {
		return strings.TrimSpace(values[i])
	}
	return ""
}

// ReservationStatusForm - смена статуса бронирования
type ReservationStatusForm struct {
	Status string `form:"status" json:"status" validate:"required,oneof=pending confirmed paid cancelled completed"`
}
