package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cyprus-transfer/internal/config"
	httpDelivery "github.com/cyprus-transfer/internal/delivery/http"
	"github.com/cyprus-transfer/internal/delivery/http/handler"
	"github.com/cyprus-transfer/internal/delivery/http/middleware"
	"github.com/cyprus-transfer/internal/delivery/http/view"
	"github.com/cyprus-transfer/internal/domain"
	"github.com/cyprus-transfer/internal/usecase"
)

const testJWTSecret = "test-secret-with-enough-length-000"

type stubVehicleRepository struct {
	vehicles []*domain.Vehicle
}

func (s *stubVehicleRepository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	for _, v := range s.vehicles {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, nil
}

func (s *stubVehicleRepository) List(ctx context.Context) ([]*domain.Vehicle, error) {
	return s.vehicles, nil
}

func (s *stubVehicleRepository) ListByMinCapacity(ctx context.Context, passengers int) ([]*domain.Vehicle, error) {
	return s.vehicles, nil
}

func (s *stubVehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	return nil
}
func (s *stubVehicleRepository) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	return nil
}
func (s *stubVehicleRepository) Delete(ctx context.Context, id int64) error { return nil }

func newTestServer(t *testing.T) *fiber.App {
	t.Helper()
	log := zap.NewNop()

	renderer, err := view.NewRenderer(log)
	require.NoError(t, err)

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 8080, AllowedOrigin: "https://cyprus-transfer.example"},
	}

	authUC := usecase.NewAuthUseCase(nil, testJWTSecret, log)
	vehicleUC := usecase.NewVehicleUseCase(&stubVehicleRepository{
		vehicles: []*domain.Vehicle{{ID: 1, Name: "Mercedes Vito", Type: "minivan", Capacity: 8}},
	}, log)

	handlers := httpDelivery.Handlers{
		Health:       handler.NewHealthHandler(map[string]handler.HealthChecker{}, log),
		Page:         handler.NewPageHandler(renderer, nil, vehicleUC, nil, nil, nil, nil, nil, 1000, log),
		Admin:        handler.NewAdminHandler(renderer, authUC, nil, false, log),
		AdminVehicle: handler.NewAdminVehicleHandler(renderer, vehicleUC, log),
	}

	return httpDelivery.NewServer(cfg, log, handlers, authUC).App()
}

func adminToken(t *testing.T) string {
	t.Helper()
	claims := usecase.AdminClaims{
		Email: "admin@example.com",
		Role:  "authenticated",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return token
}

func TestServer_UnknownAPIRouteIsJSON(t *testing.T) {
	resp, err := newTestServer(t).Test(httptest.NewRequest("GET", "/api/nope", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "NOT_FOUND", body.Error.Code)
}

func TestServer_UnknownPageRendersErrorPage(t *testing.T) {
	resp, err := newTestServer(t).Test(httptest.NewRequest("GET", "/nope", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Page not found")
}

func TestServer_HealthWithCORS(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/health", nil)
	req.Header.Set("Origin", "https://cyprus-transfer.example")

	resp, err := newTestServer(t).Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "https://cyprus-transfer.example", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestServer_AdminRequiresSession(t *testing.T) {
	app := newTestServer(t)

	t.Run("no cookie redirects to login", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/admin/vehicles", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/admin/login", resp.Header.Get("Location"))
	})

	t.Run("forged token redirects to login", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/admin/vehicles", nil)
		req.AddCookie(&http.Cookie{Name: middleware.AdminCookieName, Value: "not.a.jwt"})

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	})

	t.Run("valid token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/admin/vehicles", nil)
		req.AddCookie(&http.Cookie{Name: middleware.AdminCookieName, Value: adminToken(t)})

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), "Mercedes Vito")
		assert.Contains(t, string(body), "admin@example.com")
	})
}

func TestServer_AdminLoginCSRF(t *testing.T) {
	app := newTestServer(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/admin/login", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `name="_csrf"`)

	form := url.Values{"email": {"admin@example.com"}, "password": {"secret"}}
	req := httptest.NewRequest("POST", "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", fiber.MIMEApplicationForm)

	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
