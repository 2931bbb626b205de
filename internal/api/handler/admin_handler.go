package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mindfit/wellness-api/internal/api/metrics"
	"github.com/mindfit/wellness-api/internal/core/domain"
	"github.com/mindfit/wellness-api/internal/core/ports"
)

type AdminHandler struct {
	auth  ports.AuthService
	admin ports.AdminService
}

func NewAdminHandler(auth ports.AuthService, admin ports.AdminService) *AdminHandler {
	return &AdminHandler{auth: auth, admin: admin}
}

type adminLoginResponse struct {
	Token string        `json:"token"`
	Admin *domain.Admin `json:"admin"`
}

// Login authenticates an admin account.
//
// @Summary      Admin login
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Admin credentials"
// @Success      200   {object}  adminLoginResponse
// @Failure      401   {object}  map[string]string
// @Router       /api/admin/login [post]
func (h *AdminHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, admin, err := h.auth.AdminLogin(c.Request().Context(), req.Username, req.Password, clientMeta(c))
	if err != nil {
		return err
	}

	metrics.LoginsTotal.WithLabelValues(domain.LoginTypeAdmin).Inc()
	return c.JSON(http.StatusOK, adminLoginResponse{Token: token, Admin: admin})
}

// ListUsers returns all registered accounts.
//
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Success      200  {array}   domain.User
// @Failure      403  {object}  map[string]string
// @Router       /api/admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.admin.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// ListLogins returns the most recent login audit entries.
//
// @Summary      List login audit entries
// @Tags         admin
// @Produce      json
// @Param        limit  query     int  false  "Max rows (default 200)"
// @Success      200    {array}   domain.LoginLog
// @Failure      403    {object}  map[string]string
// @Router       /api/admin/logins [get]
func (h *AdminHandler) ListLogins(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		limit = n
	}

	logs, err := h.admin.ListLoginLogs(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, logs)
}

// DeleteUser removes an account. Owned plans, measurements, and assessments
// are deleted; consultation sessions survive with their owner detached.
//
// @Summary      Delete a user
// @Tags         admin
// @Param        id  path  int  true  "User id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.admin.DeleteUser(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
