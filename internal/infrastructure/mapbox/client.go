package mapbox

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cyprus-transfer/internal/config"
	"github.com/cyprus-transfer/internal/domain"
	"github.com/cyprus-transfer/internal/domain/repository"
	"github.com/cyprus-transfer/internal/pkg/utils"
	"go.uber.org/zap"
)

// directionsResponse - нужная часть ответа Directions API
type directionsResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Routes  []struct {
		Distance float64 `json:"distance"` // метры
		Duration float64 `json:"duration"` // секунды
	} `json:"routes"`
}

type client struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
	profile     string
	logger      *zap.Logger
}

// NewMapboxClient создает клиент Mapbox Directions API
func NewMapboxClient(cfg *config.MapboxConfig, logger *zap.Logger) repository.MapboxRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		accessToken: cfg.AccessToken,
		profile:     cfg.DrivingProfile,
		logger:      logger,
	}
}

// EstimateRoute - первый маршрут Directions API, км с точностью 0.1 и минуты
func (c *client) EstimateRoute(ctx context.Context, from, to domain.Coordinate) (*domain.RouteEstimate, error) {
	if !utils.ValidateCoordinates(from.Lat, from.Lon) || !utils.ValidateCoordinates(to.Lat, to.Lon) {
		return nil, fmt.Errorf("invalid route coordinates")
	}

	// Mapbox ждёт порядок lon,lat
	waypoints := lonLat(from) + ";" + lonLat(to)
	endpoint := fmt.Sprintf("%s/directions/v5/%s/%s", c.baseURL, c.profile, waypoints)

	c.logger.Debug("Calling Mapbox Directions API",
		zap.String("endpoint", endpoint),
		zap.String("profile", c.profile))

	query := url.Values{}
	query.Set("alternatives", "false")
	query.Set("overview", "false")
	query.Set("steps", "false")
	// токен добавляется после логирования
	query.Set("access_token", c.accessToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Mapbox request failed", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Warn("Mapbox API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("mapbox API error: status %d", resp.StatusCode)
	}

	var directions directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&directions); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if directions.Code != "Ok" {
		return nil, fmt.Errorf("mapbox API returned code %s: %s", directions.Code, directions.Message)
	}
	if len(directions.Routes) == 0 {
		return nil, fmt.Errorf("mapbox API returned no routes")
	}

	route := directions.Routes[0]
	minutes := int(math.Round(route.Duration / 60))

	c.logger.Debug("Mapbox route estimated",
		zap.Float64("distance_m", route.Distance),
		zap.Float64("duration_s", route.Duration))

	return &domain.RouteEstimate{
		DistanceKm:      math.Round(route.Distance/100) / 10,
		DurationMinutes: &minutes,
		Source:          domain.EstimateSourceMapbox,
	}, nil
}

func lonLat(c domain.Coordinate) string {
	return strconv.FormatFloat(c.Lon, 'f', 6, 64) + "," + strconv.FormatFloat(c.Lat, 'f', 6, 64)
}
