package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CORS - Cross-Origin для /api: явно разрешённые origin плюс публичный адрес сайта.
// Cookie разрешены только без "*", иначе fiber отказывается стартовать.
func CORS(allowedOrigins, publicURL string) fiber.Handler {
	origins := corsOrigins(allowedOrigins, publicURL)
	wildcard := false
	for _, o := range origins {
		if o == "*" {
			wildcard = true
			break
		}
	}

	allow := strings.Join(origins, ",")
	if wildcard {
		allow = "*"
	}

	return cors.New(cors.Config{
		AllowOrigins:     allow,
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Content-Type,Accept,Accept-Language,Authorization,X-CSRF-Token",
		ExposeHeaders:    "Content-Disposition",
		AllowCredentials: !wildcard,
		MaxAge:           600,
	})
}

func corsOrigins(allowedOrigins, publicURL string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, raw := range append(strings.Split(allowedOrigins, ","), publicURL) {
		o := strings.TrimRight(strings.TrimSpace(raw), "/")
		if o == "" {
			continue
		}
		if _, ok := seen[o]; ok {
			continue
		}
		seen[o] = struct{}{}
		out = append(out, o)
	}
	return out
}
