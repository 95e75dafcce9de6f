package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mockmate/mockmate-api/internal/domain/entities"
	"github.com/mockmate/mockmate-api/internal/usecase/auth"
)

// IdentityContextKey is the echo context key holding the resolved identity
const IdentityContextKey = "identity"

// EchoIdentity returns an Echo middleware that resolves the caller's
// identity from the bearer token and stores it in the request context. It
// never rejects a request: an absent or invalid token degrades to the guest
// identity so anonymous callers can use the interview endpoints.
func EchoIdentity(authService *auth.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c)
			ident := authService.ResolveIdentity(c.Request().Context(), token)
			c.Set(IdentityContextKey, ident)
			return next(c)
		}
	}
}

// GetIdentity retrieves the resolved identity from the Echo context. Routes
// not behind EchoIdentity see the guest identity.
func GetIdentity(c echo.Context) entities.Identity {
	ident, ok := c.Get(IdentityContextKey).(entities.Identity)
	if !ok {
		return entities.GuestIdentity()
	}
	return ident
}

func extractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
			return strings.TrimSpace(parts[1])
		}
	}

	// Cookie fallback for browser clients
	if cookie, err := c.Cookie("access_token"); err == nil {
		return cookie.Value
	}
	return ""
}
