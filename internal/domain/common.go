package domain

// Coordinate - точка маршрута
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

const (
	EstimateSourceMapbox    = "mapbox"
	EstimateSourceHaversine = "haversine"
)

// RouteEstimate - оценка маршрута трансфера
type RouteEstimate struct {
	DistanceKm      float64 `json:"distance_km"`
	DurationMinutes *int    `json:"duration_minutes,omitempty"`
	Source          string  `json:"source"` // mapbox | haversine
}

// Page - параметры постраничной выборки
type Page struct {
	Number int
	Size   int
}
