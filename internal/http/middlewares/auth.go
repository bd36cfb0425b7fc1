package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"todolist-app.com/todolist-app/internal/services"
	"todolist-app.com/todolist-app/internal/sessions"
)

const (
	// IdentityKey is the echo context key holding the resolved identity.
	IdentityKey = "identity"
	// SessionTokenKey is the echo context key holding the raw session token.
	SessionTokenKey = "session_token"

	sessionCookieName = "session"
	loginURL          = "/login"
)

// SessionAuth resolves the session token from the Authorization header or
// the session cookie into an identity. Requests without a valid session get
// a 401 pointing at the login entry point.
func SessionAuth(auth *services.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := tokenFromRequest(c)
			if token == "" {
				return unauthenticated(c)
			}

			identity, err := auth.Authenticate(c.Request().Context(), token)
			if err != nil {
				return unauthenticated(c)
			}

			c.Set(IdentityKey, identity)
			c.Set(SessionTokenKey, token)

			return next(c)
		}
	}
}

// IdentityFrom returns the identity stored by SessionAuth.
func IdentityFrom(c echo.Context) sessions.Identity {
	identity, _ := c.Get(IdentityKey).(sessions.Identity)
	return identity
}

func tokenFromRequest(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if after, ok := strings.CutPrefix(header, "Bearer "); ok && after != "" {
		return after
	}

	cookie, err := c.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func unauthenticated(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, echo.Map{
		"message":   "authentication required",
		"login_url": loginURL,
	})
}
