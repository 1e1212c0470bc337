package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"linebot-admin/internal/utils"
)

const AuthCookieName = "auth_token"

// routes reachable without a session
var publicRoutes = map[string]bool{
	"/health":      true,
	"/api/login":   true,
	"/api/install": true,
}

// RequireAuth rejects requests without a valid JWT, taken from the
// Authorization bearer header or the auth_token cookie.
func RequireAuth(tokens *utils.TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if publicRoutes[c.Path()] {
				return next(c)
			}

			raw := bearerToken(c.Request())
			if raw == "" {
				if cookie, err := c.Cookie(AuthCookieName); err == nil {
					raw = cookie.Value
				}
			}
			if raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing credentials")
			}

			claims, err := tokens.ValidateToken(raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set("user_id", claims.UserID)
			c.Set("role", claims.Role)
			return next(c)
		}
	}
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get(echo.HeaderAuthorization)
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}
