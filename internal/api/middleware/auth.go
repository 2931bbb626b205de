package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mindfit/wellness-api/internal/core/domain"
)

// principalKey is the echo context key the auth middleware stores the caller's
// principal under.
const principalKey = "principal"

// TokenVerifier turns a raw token string into a principal. The token service
// implements it.
type TokenVerifier interface {
	Verify(token string) (domain.Principal, error)
}

// Authenticate validates the request token and injects the principal into
// context. Requests without a token are rejected.
func Authenticate(verifier TokenVerifier) echo.MiddlewareFunc {
	return authenticate(verifier, true)
}

// Optional behaves like Authenticate but never rejects: requests without a
// token, and requests whose token fails verification (expired guest tokens
// included), proceed with an anonymous guest principal.
func Optional(verifier TokenVerifier) echo.MiddlewareFunc {
	return authenticate(verifier, false)
}

func authenticate(verifier TokenVerifier, required bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := extractToken(c.Request().Header.Get("Authorization"))
			if raw == "" {
				if required {
					return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
				}
				c.Set(principalKey, domain.GuestPrincipal())
				return next(c)
			}

			p, err := verifier.Verify(raw)
			if err != nil {
				if required {
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				}
				c.Set(principalKey, domain.GuestPrincipal())
				return next(c)
			}

			c.Set(principalKey, p)
			return next(c)
		}
	}
}

// RequireRegistered rejects callers without a persistent account. Admins pass
// and act under their own numeric id, which comes from the admins sequence,
// not the users one. Must run after Authenticate.
func RequireRegistered() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := c.Get(principalKey).(domain.Principal)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}
			if p.UserID == nil {
				return echo.NewHTTPError(http.StatusForbidden, "registration required")
			}
			return next(c)
		}
	}
}

// RequireAdmin rejects everyone but admin principals. Must run after
// Authenticate.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := c.Get(principalKey).(domain.Principal)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}
			if !p.IsAdmin() {
				return echo.NewHTTPError(http.StatusForbidden, "admin access required")
			}
			return next(c)
		}
	}
}

// extractToken accepts both "Bearer <token>" and a bare token value.
func extractToken(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}
	return header
}

// Principal returns the caller's principal from context. The second return is
// false when no auth middleware ran on the route.
func Principal(c echo.Context) (domain.Principal, bool) {
	p, ok := c.Get(principalKey).(domain.Principal)
	return p, ok
}
