package domain

// Vehicle - транспортное средство трансфера
type Vehicle struct {
	ID              int64   `json:"id" db:"id"`
	Name            string  `json:"name" db:"name"`
	Type            string  `json:"type" db:"type"`
	Capacity        int     `json:"capacity" db:"capacity"`
	LuggageCapacity *int    `json:"luggage_capacity,omitempty" db:"luggage_capacity"`
	ImageURL        *string `json:"image_url,omitempty" db:"image_url"`
}

// Fits - помещаются ли пассажиры
func (v *Vehicle) Fits(passengers int) bool {
	return passengers > 0 && v.Capacity >= passengers
}
