package repository

import (
	"context"

	"github.com/cyprus-transfer/internal/domain"
)

// AuthRepository - hosted auth управляемого бэкенда
type AuthRepository interface {
	// SignInWithPassword выполняет вход по email/паролю и возвращает сессию
	SignInWithPassword(ctx context.Context, email, password string) (*domain.Session, error)

	// SignOut отзывает сессию по access token
	SignOut(ctx context.Context, accessToken string) error
}
