package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cyprus-transfer/internal/config"
	"github.com/cyprus-transfer/internal/domain"
	"github.com/cyprus-transfer/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(&config.BackendConfig{
		URL:            server.URL + "/",
		AnonKey:        "anon-key",
		RequestTimeout: 5 * time.Second,
	}, zap.NewNop())
}

func TestClient_Headers(t *testing.T) {
	var got http.Header
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("anon key with csrf", func(t *testing.T) {
		ctx := WithCSRFToken(context.Background(), "csrf-123")
		_, status, err := client.do(ctx, http.MethodGet, "/rest/v1/health", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, status)

		assert.Equal(t, "anon-key", got.Get("apikey"))
		assert.Equal(t, "Bearer anon-key", got.Get("Authorization"))
		assert.Equal(t, "csrf-123", got.Get("X-CSRF-Token"))
	})

	t.Run("user token without csrf", func(t *testing.T) {
		ctx := WithAccessToken(context.Background(), "user-jwt")
		_, _, err := client.do(ctx, http.MethodGet, "/rest/v1/health", nil)
		require.NoError(t, err)

		assert.Equal(t, "Bearer user-jwt", got.Get("Authorization"))
		assert.Empty(t, got.Get("X-CSRF-Token"))
	})
}

func TestAuthRepository_SignInWithPassword(t *testing.T) {
	expiresAt := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		if body["password"] != "secret" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token":  "jwt-token",
			"refresh_token": "refresh",
			"token_type":    "bearer",
			"expires_in":    3600,
			"expires_at":    expiresAt.Unix(),
			"user":          map[string]string{"id": "u-1", "email": body["email"], "role": "authenticated"},
		})
	})
	repo := NewAuthRepository(client)

	t.Run("valid credentials", func(t *testing.T) {
		session, err := repo.SignInWithPassword(context.Background(), "admin@example.com", "secret")
		require.NoError(t, err)
		assert.Equal(t, "jwt-token", session.AccessToken)
		assert.Equal(t, "admin@example.com", session.User.Email)
		assert.True(t, session.ExpiresAt.Equal(expiresAt))
	})

	t.Run("invalid credentials", func(t *testing.T) {
		_, err := repo.SignInWithPassword(context.Background(), "admin@example.com", "wrong")
		assert.Equal(t, errors.ErrInvalidCredentials, err)
	})
}

func TestPaymentRepository_ProcessPayment(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, paymentFunctionPath, r.URL.Path)

		var req domain.PaymentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		if req.Order.Amount <= 0 {
			w.WriteHeader(http.StatusUnprocessableEntity)
			return
		}

		json.NewEncoder(w).Encode(domain.PaymentResult{
			RedirectURL: "https://gateway.example.com/3d",
			FormFields:  map[string]string{"orderId": req.Order.OrderID},
		})
	})
	repo := NewPaymentRepository(client)

	t.Run("success", func(t *testing.T) {
		result, err := repo.ProcessPayment(context.Background(), &domain.PaymentRequest{
			Order: domain.PaymentOrder{OrderID: "order-1", Code: "CT-AB12CD34", Amount: 80, Currency: "EUR"},
		})
		require.NoError(t, err)
		assert.Equal(t, "https://gateway.example.com/3d", result.RedirectURL)
		assert.Equal(t, "order-1", result.FormFields["orderId"])
	})

	t.Run("gateway rejects", func(t *testing.T) {
		_, err := repo.ProcessPayment(context.Background(), &domain.PaymentRequest{})
		assert.Equal(t, errors.ErrPaymentFailed, err)
	})

	t.Run("raw passthrough", func(t *testing.T) {
		data, status, err := repo.ProcessPaymentRaw(context.Background(), map[string]interface{}{
			"order": map[string]interface{}{"order_id": "raw-1", "amount": 1},
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, string(data), "raw-1")
	})
}
