package middleware

import (
	"time"

	"github.com/cyprus-transfer/internal/infrastructure/backend"
	"github.com/cyprus-transfer/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	// AdminCookieName - HttpOnly cookie с access token администратора
	AdminCookieName = "admin_token"
	// AdminContextKey - ключ c.Locals с claims администратора
	AdminContextKey = "admin"

	adminLoginPath = "/admin/login"
)

// TokenValidator - проверка access token
type TokenValidator interface {
	ValidateToken(token string) (*usecase.AdminClaims, error)
}

// AdminAuth пропускает запрос только с валидным токеном, иначе редирект на вход
func AdminAuth(validator TokenValidator, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(AdminCookieName)

		claims, err := validator.ValidateToken(token)
		if err != nil {
			if token != "" {
				logger.Info("Admin session rejected", zap.String("path", c.Path()))
				ClearAdminCookie(c, false)
			}
			return c.Redirect(adminLoginPath, fiber.StatusSeeOther)
		}

		c.Locals(AdminContextKey, claims)
		c.SetUserContext(backend.WithAccessToken(c.UserContext(), token))
		return c.Next()
	}
}

// SetAdminCookie сохраняет access token до истечения сессии
func SetAdminCookie(c *fiber.Ctx, token string, expires time.Time, secure bool) {
	c.Cookie(&fiber.Cookie{
		Name:     AdminCookieName,
		Value:    token,
		Path:     "/admin",
		Expires:  expires,
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// ClearAdminCookie удаляет cookie сессии
func ClearAdminCookie(c *fiber.Ctx, secure bool) {
	c.Cookie(&fiber.Cookie{
		Name:     AdminCookieName,
		Value:    "",
		Path:     "/admin",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// AdminClaims - claims текущего администратора
func AdminClaims(c *fiber.Ctx) *usecase.AdminClaims {
	claims, _ := c.Locals(AdminContextKey).(*usecase.AdminClaims)
	return claims
}
