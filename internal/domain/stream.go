package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stream names
const (
	StreamReservationCreated = "stream:reservation:created"
)

// ReservationCreatedEvent - событие о новом бронировании для воркера уведомлений
type ReservationCreatedEvent struct {
	EventID        uuid.UUID    `json:"event_id"`
	ReservationID  int64        `json:"reservation_id"`
	Code           string       `json:"code"`
	CustomerName   string       `json:"customer_name"`
	CustomerEmail  string       `json:"customer_email"`
	PickupName     string       `json:"pickup_name"`
	DropoffName    string       `json:"dropoff_name"`
	VehicleName    string       `json:"vehicle_name"`
	TransferType   TransferType `json:"transfer_type"`
	TransferDate   time.Time    `json:"transfer_date"`
	PassengerCount int          `json:"passenger_count"`
	TotalPrice     float64      `json:"total_price"`
	Currency       string       `json:"currency"`
	FlightNumber   *string      `json:"flight_number,omitempty"`
	OccurredAt     time.Time    `json:"occurred_at"`
}

// HasRecipient - есть ли адрес для подтверждения
func (e *ReservationCreatedEvent) HasRecipient() bool {
	return e.CustomerEmail != ""
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
