package domain

// Extra - дополнительная услуга (детское кресло, табличка и т.п.)
type Extra struct {
	ID    int64   `json:"id" db:"id"`
	Name  string  `json:"name" db:"name"`
	Price float64 `json:"price" db:"price"`
}
