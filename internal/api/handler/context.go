package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mindfit/wellness-api/internal/api/middleware"
	"github.com/mindfit/wellness-api/internal/core/domain"
	"github.com/mindfit/wellness-api/internal/core/ports"
)

// ctxPrincipal extracts the principal injected by the auth middleware. Its
// absence means the route is miswired, so it fails closed with 401.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	p, ok := middleware.Principal(c)
	if !ok {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return p, nil
}

// ctxOwnerID extracts the numeric account id of the caller. Guests have none
// and are rejected; routes using this helper sit behind RequireRegistered,
// which enforces the same, so this is a second line only. Admin principals
// carry ids from the admins sequence, so an admin using a registered-only
// route scopes to whichever user holds the same numeric id.
func ctxOwnerID(c echo.Context) (int64, error) {
	p, err := ctxPrincipal(c)
	if err != nil {
		return 0, err
	}
	if p.UserID == nil {
		return 0, echo.NewHTTPError(http.StatusForbidden, "registration required")
	}
	return *p.UserID, nil
}

// clientMeta captures the caller's user agent and remote address for the
// login audit trail.
func clientMeta(c echo.Context) ports.ClientMeta {
	return ports.ClientMeta{
		UserAgent: c.Request().UserAgent(),
		IPAddress: c.RealIP(),
	}
}
