package domain

import "time"

// ReservationStatus - статус бронирования
type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusPaid      ReservationStatus = "paid"
	ReservationStatusCancelled ReservationStatus = "cancelled"
	ReservationStatusCompleted ReservationStatus = "completed"
)

// ReservationStatuses - все статусы в порядке отображения
var ReservationStatuses = []ReservationStatus{
	ReservationStatusPending,
	ReservationStatusConfirmed,
	ReservationStatusPaid,
	ReservationStatusCompleted,
	ReservationStatusCancelled,
}

func (s ReservationStatus) Valid() bool {
	for _, st := range ReservationStatuses {
		if s == st {
			return true
		}
	}
	return false
}

// Final - из завершённых статусов переходов нет
func (s ReservationStatus) Final() bool {
	return s == ReservationStatusCancelled || s == ReservationStatusCompleted
}

// Reservation - бронирование трансфера. Code уникален и служит
// единственным ключом публичного поиска.
type Reservation struct {
	ID                int64             `json:"id" db:"id"`
	Code              string            `json:"code" db:"code"`
	PickupLocationID  int64             `json:"pickup_location_id" db:"pickup_location_id"`
	DropoffLocationID int64             `json:"dropoff_location_id" db:"dropoff_location_id"`
	VehicleID         int64             `json:"vehicle_id" db:"vehicle_id"`
	TransferType      TransferType      `json:"transfer_type" db:"transfer_type"`
	TransferDate      time.Time         `json:"transfer_date" db:"transfer_date"`
	PassengerCount    int               `json:"passenger_count" db:"passenger_count"`
	CustomerName      string            `json:"customer_name" db:"customer_name"`
	CustomerEmail     string            `json:"customer_email" db:"customer_email"`
	CustomerPhone     string            `json:"customer_phone" db:"customer_phone"`
	FlightNumber      *string           `json:"flight_number,omitempty" db:"flight_number"`
	Notes             *string           `json:"notes,omitempty" db:"notes"`
	ExtraIDs          []int64           `json:"extra_ids" db:"-"`
	TotalPrice        float64           `json:"total_price" db:"total_price"`
	Currency          string            `json:"currency" db:"currency"`
	Status            ReservationStatus `json:"status" db:"status"`
	CreatedAt         time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at" db:"updated_at"`
}

// ReservationDetail - бронирование вместе с локациями и автомобилем
type ReservationDetail struct {
	Reservation
	PickupLocation  *Location `json:"pickup_location"`
	DropoffLocation *Location `json:"dropoff_location"`
	Vehicle         *Vehicle  `json:"vehicle"`
	Extras          []Extra   `json:"extras,omitempty"`
}

// ReservationFilter - фильтр списка бронирований в админке
type ReservationFilter struct {
	Status *ReservationStatus
	Page   Page
}
