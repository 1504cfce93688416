package domain

// TransferType - тип трансфера
type TransferType string

const (
	TransferTypePrivate TransferType = "private"
	TransferTypeShared  TransferType = "shared"
)

func (t TransferType) Valid() bool {
	return t == TransferTypePrivate || t == TransferTypeShared
}

// TransferPrice - сохранённая строка тарифа для маршрута и автомобиля.
// Для private задан TotalPrice, для shared - диапазон пассажиров и цена за человека.
type TransferPrice struct {
	ID                int64        `json:"id" db:"id"`
	PickupLocationID  int64        `json:"pickup_location_id" db:"pickup_location_id"`
	DropoffLocationID int64        `json:"dropoff_location_id" db:"dropoff_location_id"`
	VehicleID         int64        `json:"vehicle_id" db:"vehicle_id"`
	TransferType      TransferType `json:"transfer_type" db:"transfer_type"`
	TotalPrice        *float64     `json:"total_price,omitempty" db:"total_price"`
	MinPassengers     *int         `json:"min_passengers,omitempty" db:"min_passengers"`
	MaxPassengers     *int         `json:"max_passengers,omitempty" db:"max_passengers"`
	PricePerPerson    *float64     `json:"price_per_person,omitempty" db:"price_per_person"`
	Currency          string       `json:"currency" db:"currency"`
}

// SharedPriceTier - ступень цены за человека для shared трансфера
type SharedPriceTier struct {
	MinPassengers  int     `json:"min_passengers"`
	MaxPassengers  int     `json:"max_passengers"`
	PricePerPerson float64 `json:"price_per_person"`
}

// Covers - попадает ли количество пассажиров в ступень
func (t SharedPriceTier) Covers(passengers int) bool {
	return passengers >= t.MinPassengers && passengers <= t.MaxPassengers
}

// PriceDetailsPrivate - фиксированная цена за автомобиль
type PriceDetailsPrivate struct {
	Total    float64 `json:"total"`
	Currency string  `json:"currency"`
}

// PriceDetailsShared - ступени цены за человека и применённая ступень
type PriceDetailsShared struct {
	Tiers          []SharedPriceTier `json:"tiers"`
	PricePerPerson float64           `json:"price_per_person"`
	Passengers     int               `json:"passengers"`
	Total          float64           `json:"total"`
	Currency       string            `json:"currency"`
}

// TransferOption - вычисляемое предложение (не хранится)
type TransferOption struct {
	ID                       string               `json:"id"`
	Type                     TransferType         `json:"type"`
	Vehicle                  Vehicle              `json:"vehicle"`
	Private                  *PriceDetailsPrivate `json:"private_price,omitempty"`
	Shared                   *PriceDetailsShared  `json:"shared_price,omitempty"`
	EstimatedDurationMinutes *int                 `json:"estimated_duration_minutes,omitempty"`
	EstimatedDistanceKm      *float64             `json:"estimated_distance_km,omitempty"`
}

// Total - итоговая цена предложения
func (o *TransferOption) Total() float64 {
	switch {
	case o.Private != nil:
		return o.Private.Total
	case o.Shared != nil:
		return o.Shared.Total
	}
	return 0
}

// Currency - валюта предложения
func (o *TransferOption) Currency() string {
	switch {
	case o.Private != nil:
		return o.Private.Currency
	case o.Shared != nil:
		return o.Shared.Currency
	}
	return ""
}
