package middleware

import (
	"time"

	"github.com/cyprus-transfer/internal/infrastructure/backend"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
)

const (
	// CSRFCookieName - cookie с токеном CSRF админских форм
	CSRFCookieName = "csrf_"
	// CSRFContextKey - ключ c.Locals с токеном для шаблонов
	CSRFContextKey = "csrf"
	// CSRFFormField - скрытое поле формы с токеном
	CSRFFormField = "_csrf"
)

// CSRF - защита админских форм; токен передаётся полем _csrf
func CSRF(secureCookie bool, errorHandler fiber.ErrorHandler) fiber.Handler {
	return csrf.New(csrf.Config{
		KeyLookup:      "form:" + CSRFFormField,
		CookieName:     CSRFCookieName,
		CookieSameSite: "Lax",
		CookieSecure:   secureCookie,
		CookieHTTPOnly: true,
		Expiration:     2 * time.Hour,
		ContextKey:     CSRFContextKey,
		ErrorHandler:   errorHandler,
	})
}

// CSRFToken - токен текущего запроса для скрытого поля формы
func CSRFToken(c *fiber.Ctx) string {
	token, _ := c.Locals(CSRFContextKey).(string)
	return token
}

// BackendContext пробрасывает CSRF-токен из cookie в контекст запросов к бэкенду
func BackendContext() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := c.Cookies(CSRFCookieName); token != "" {
			c.SetUserContext(backend.WithCSRFToken(c.UserContext(), token))
		}
		return c.Next()
	}
}
