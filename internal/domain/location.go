package domain

import "time"

// LocationType - тип локации трансфера
type LocationType string

const (
	LocationTypeAirport LocationType = "airport"
	LocationTypeHotel   LocationType = "hotel"
	LocationTypeOther   LocationType = "other"
)

// Valid - допустимый ли тип
func (t LocationType) Valid() bool {
	switch t {
	case LocationTypeAirport, LocationTypeHotel, LocationTypeOther:
		return true
	}
	return false
}

// Location - точка посадки/высадки (аэропорт, отель, прочее).
// Координаты необязательны.
type Location struct {
	ID        int64        `json:"id" db:"id"`
	Name      string       `json:"name" db:"name"`
	Type      LocationType `json:"type" db:"type"`
	Address   *string      `json:"address,omitempty" db:"address"`
	Latitude  *float64     `json:"latitude" db:"latitude"`
	Longitude *float64     `json:"longitude" db:"longitude"`
	IsActive  bool         `json:"is_active" db:"is_active"`
	CreatedAt time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt time.Time    `json:"updated_at" db:"updated_at"`
}

// HasCoordinates - заданы ли обе координаты
func (l *Location) HasCoordinates() bool {
	return l.Latitude != nil && l.Longitude != nil
}

// LocationSummary - подмножество колонок для публичного списка
type LocationSummary struct {
	ID        int64        `json:"id" db:"id"`
	Name      string       `json:"name" db:"name"`
	Type      LocationType `json:"type" db:"type"`
	Address   *string      `json:"address" db:"address"`
	Latitude  *float64     `json:"latitude" db:"latitude"`
	Longitude *float64     `json:"longitude" db:"longitude"`
}
