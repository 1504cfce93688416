package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/cyprus-transfer/internal/domain"
	"github.com/cyprus-transfer/internal/domain/repository"
	"github.com/cyprus-transfer/internal/pkg/errors"
	"github.com/cyprus-transfer/internal/pkg/validator"
	"github.com/cyprus-transfer/internal/usecase/dto"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// AdminClaims - claims access token hosted auth
type AdminClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// AuthUseCase - вход администратора и проверка сессии
type AuthUseCase struct {
	authRepo  repository.AuthRepository
	jwtSecret []byte
	logger    *zap.Logger
	now       func() time.Time
}

func NewAuthUseCase(authRepo repository.AuthRepository, jwtSecret string, logger *zap.Logger) *AuthUseCase {
	return &AuthUseCase{
		authRepo:  authRepo,
		jwtSecret: []byte(jwtSecret),
		logger:    logger,
		now:       time.Now,
	}
}

func (uc *AuthUseCase) Login(ctx context.Context, req dto.LoginRequest) (*domain.Session, error) {
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if err := validator.Validate(&req); err != nil {
		return nil, err
	}

	session, err := uc.authRepo.SignInWithPassword(ctx, req.Email, req.Password)
	if err != nil {
		uc.logger.Warn("Admin sign-in failed", zap.String("email", req.Email), zap.Error(err))
		return nil, err
	}

	uc.logger.Info("Admin signed in", zap.String("user_id", session.User.ID))
	return session, nil
}

// Logout отзывает сессию; ошибка бэкенда не мешает выходу
func (uc *AuthUseCase) Logout(ctx context.Context, accessToken string) {
	if accessToken == "" {
		return
	}
	if err := uc.authRepo.SignOut(ctx, accessToken); err != nil {
		uc.logger.Warn("Failed to revoke admin session", zap.Error(err))
	}
}

// ValidateToken проверяет подпись HS256 и срок действия access token
func (uc *AuthUseCase) ValidateToken(token string) (*AdminClaims, error) {
	if token == "" || len(uc.jwtSecret) == 0 {
		return nil, errors.ErrUnauthorized
	}

	claims := &AdminClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return uc.jwtSecret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(uc.now),
	)
	if err != nil || !parsed.Valid {
		uc.logger.Debug("Admin token rejected", zap.Error(err))
		return nil, errors.ErrUnauthorized
	}
	if claims.Subject == "" {
		return nil, errors.ErrUnauthorized
	}

	return claims, nil
}
