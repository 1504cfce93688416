package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/cyprus-transfer/internal/domain"
	"github.com/cyprus-transfer/internal/domain/repository"
	"github.com/cyprus-transfer/internal/pkg/errors"
	"go.uber.org/zap"
)

type authRepository struct {
	client *Client
}

// NewAuthRepository - вход администратора через hosted auth
func NewAuthRepository(client *Client) repository.AuthRepository {
	return &authRepository{client: client}
}

// tokenResponse - ответ /auth/v1/token; expires_at приходит unix-временем
type tokenResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	TokenType    string          `json:"token_type"`
	ExpiresIn    int             `json:"expires_in"`
	ExpiresAt    int64           `json:"expires_at"`
	User         domain.AuthUser `json:"user"`
}

func (r *authRepository) SignInWithPassword(ctx context.Context, email, password string) (*domain.Session, error) {
	payload := map[string]string{
		"email":    email,
		"password": password,
	}

	data, status, err := r.client.do(ctx, http.MethodPost, "/auth/v1/token?grant_type=password", payload)
	if err != nil {
		return nil, errors.ErrBackendUnavailable
	}

	switch {
	case status == http.StatusBadRequest || status == http.StatusUnauthorized:
		return nil, errors.ErrInvalidCredentials
	case status != http.StatusOK:
		return nil, errors.ErrBackendUnavailable
	}

	var tr tokenResponse
	if err := json.Unmarshal(data, &tr); err != nil || tr.AccessToken == "" {
		r.client.logger.Error("Failed to decode auth token response", zap.Error(err))
		return nil, errors.ErrBackendUnavailable
	}

	session := &domain.Session{
		AccessToken:  tr.AccessToken,
		RefreshToken: tr.RefreshToken,
		TokenType:    tr.TokenType,
		ExpiresIn:    tr.ExpiresIn,
		User:         tr.User,
	}
	if tr.ExpiresAt > 0 {
		session.ExpiresAt = time.Unix(tr.ExpiresAt, 0).UTC()
	} else {
		session.ExpiresAt = time.Now().UTC().Add(time.Duration(tr.ExpiresIn) * time.Second)
	}

	r.client.logger.Info("Admin signed in", zap.String("user_id", tr.User.ID))
	return session, nil
}

func (r *authRepository) SignOut(ctx context.Context, accessToken string) error {
	_, status, err := r.client.do(WithAccessToken(ctx, accessToken), http.MethodPost, "/auth/v1/logout", nil)
	if err != nil {
		return errors.ErrBackendUnavailable
	}
	// истёкший токен при выходе не ошибка
	if status >= http.StatusInternalServerError {
		return errors.ErrBackendUnavailable
	}
	return nil
}
