package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/cyprus-transfer/internal/config"
	"go.uber.org/zap"
)

// maxErrorBody - сколько байт тела ошибки попадает в лог
const maxErrorBody = 4096

type ctxKey int

const (
	csrfTokenKey ctxKey = iota
	accessTokenKey
)

// WithCSRFToken кладёт CSRF токен из cookie запроса в контекст;
// клиент пересылает его в заголовке X-CSRF-Token
func WithCSRFToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, csrfTokenKey, token)
}

// WithAccessToken - вызов от имени пользователя вместо anon ключа
func WithAccessToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, accessTokenKey, token)
}

func tokenFrom(ctx context.Context, key ctxKey) string {
	v, _ := ctx.Value(key).(string)
	return v
}

// Client - HTTP клиент управляемого бэкенда (auth + functions).
// Создаётся один раз в main и разделяется всеми обработчиками.
type Client struct {
	httpClient *http.Client
	baseURL    string
	anonKey    string
	logger     *zap.Logger
}

func NewClient(cfg *config.BackendConfig, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL: strings.TrimRight(cfg.URL, "/"),
		anonKey: cfg.AnonKey,
		logger:  logger,
	}
}

// Configured - заданы ли URL и anon ключ
func (c *Client) Configured() bool {
	return c.baseURL != "" && c.anonKey != ""
}

// do выполняет запрос и возвращает тело и статус; ошибка только для транспортных сбоев
func (c *Client) do(ctx context.Context, method, path string, payload interface{}) ([]byte, int, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to marshal payload: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}

	bearer := c.anonKey
	if token := tokenFrom(ctx, accessTokenKey); token != "" {
		bearer = token
	}

	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+bearer)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if csrf := tokenFrom(ctx, csrfTokenKey); csrf != "" {
		req.Header.Set("X-CSRF-Token", csrf)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Backend request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return nil, 0, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		logged := data
		if len(logged) > maxErrorBody {
			logged = logged[:maxErrorBody]
		}
		c.logger.Warn("Backend returned error status",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status_code", resp.StatusCode),
			zap.ByteString("body", logged))
	}

	return data, resp.StatusCode, nil
}
