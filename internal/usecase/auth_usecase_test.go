package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cyprus-transfer/internal/domain"
	"github.com/cyprus-transfer/internal/pkg/errors"
	"github.com/cyprus-transfer/internal/usecase"
	"github.com/cyprus-transfer/internal/usecase/dto"
)

const testJWTSecret = "super-secret-jwt-token-with-at-least-32-characters"

var authNow = time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)

func signToken(t *testing.T, method jwt.SigningMethod, secret string, claims jwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func newAuthUseCase(repo *MockAuthRepository) *usecase.AuthUseCase {
	uc := usecase.NewAuthUseCase(repo, testJWTSecret, zap.NewNop())
	uc.SetClock(func() time.Time { return authNow })
	return uc
}

func TestAuthUseCase_ValidateToken(t *testing.T) {
	uc := newAuthUseCase(new(MockAuthRepository))

	valid := signToken(t, jwt.SigningMethodHS256, testJWTSecret, &usecase.AdminClaims{
		Email: "admin@example.com",
		Role:  "authenticated",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(authNow.Add(time.Hour)),
		},
	})

	claims, err := uc.ValidateToken(valid)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "admin@example.com", claims.Email)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not.a.jwt"},
		{"expired", signToken(t, jwt.SigningMethodHS256, testJWTSecret, jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(authNow.Add(-time.Minute)),
		})},
		{"wrong secret", signToken(t, jwt.SigningMethodHS256, "another-secret", jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(authNow.Add(time.Hour)),
		})},
		{"wrong algorithm", signToken(t, jwt.SigningMethodHS512, testJWTSecret, jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(authNow.Add(time.Hour)),
		})},
		{"no expiry", signToken(t, jwt.SigningMethodHS256, testJWTSecret, jwt.RegisteredClaims{
			Subject: "user-1",
		})},
		{"no subject", signToken(t, jwt.SigningMethodHS256, testJWTSecret, jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(authNow.Add(time.Hour)),
		})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.ValidateToken(tt.token)
			assert.Equal(t, errors.ErrUnauthorized, err)
		})
	}
}

func TestAuthUseCase_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := new(MockAuthRepository)
		repo.On("SignInWithPassword", mock.Anything, "admin@example.com", "secret").
			Return(&domain.Session{AccessToken: "token", User: domain.AuthUser{ID: "user-1"}}, nil)

		session, err := newAuthUseCase(repo).Login(context.Background(), dto.LoginRequest{
			Email: " Admin@Example.com ", Password: "secret",
		})
		require.NoError(t, err)
		assert.Equal(t, "token", session.AccessToken)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		repo := new(MockAuthRepository)
		repo.On("SignInWithPassword", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.ErrInvalidCredentials)

		_, err := newAuthUseCase(repo).Login(context.Background(), dto.LoginRequest{
			Email: "admin@example.com", Password: "wrong",
		})
		assert.Equal(t, errors.ErrInvalidCredentials, err)
	})

	t.Run("missing password", func(t *testing.T) {
		repo := new(MockAuthRepository)
		_, err := newAuthUseCase(repo).Login(context.Background(), dto.LoginRequest{Email: "admin@example.com"})
		assertInvalidRequest(t, err)
		repo.AssertNotCalled(t, "SignInWithPassword", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAuthUseCase_Logout_IgnoresBackendError(t *testing.T) {
	repo := new(MockAuthRepository)
	repo.On("SignOut", mock.Anything, "token").Return(errors.ErrBackendUnavailable)

	newAuthUseCase(repo).Logout(context.Background(), "token")
	newAuthUseCase(repo).Logout(context.Background(), "")

	repo.AssertNumberOfCalls(t, "SignOut", 1)
}
