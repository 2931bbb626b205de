package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mindfit/wellness-api/internal/api/metrics"
	"github.com/mindfit/wellness-api/internal/core/domain"
	"github.com/mindfit/wellness-api/internal/core/ports"
)

type AuthHandler struct {
	auth ports.AuthService
}

func NewAuthHandler(auth ports.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type registerRequest struct {
	Username      string `json:"username" validate:"required,min=3"`
	Password      string `json:"password" validate:"required,min=6"`
	Email         string `json:"email,omitempty" validate:"omitempty,email"`
	Phone         string `json:"phone,omitempty"`
	Nickname      string `json:"nickname,omitempty"`
	AgreedToTerms bool   `json:"agreed_to_terms"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user,omitempty"`
}

// Register creates a new user account and signs it in.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.auth.Register(c.Request().Context(), ports.RegisterInput{
		Username:      req.Username,
		Password:      req.Password,
		Email:         req.Email,
		Phone:         req.Phone,
		Nickname:      req.Nickname,
		AgreedToTerms: req.AgreedToTerms,
	}, clientMeta(c))
	if err != nil {
		return err
	}

	metrics.LoginsTotal.WithLabelValues(domain.LoginTypeRegistered).Inc()
	return c.JSON(http.StatusCreated, authResponse{Token: token, User: user})
}

// Login authenticates a user and returns a JWT token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.auth.Login(c.Request().Context(), req.Username, req.Password, clientMeta(c))
	if err != nil {
		return err
	}

	metrics.LoginsTotal.WithLabelValues(domain.LoginTypeRegistered).Inc()
	return c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}

// Guest issues a short-lived anonymous token.
//
// @Summary      Start a guest session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  authResponse
// @Router       /api/auth/guest [post]
func (h *AuthHandler) Guest(c echo.Context) error {
	token, err := h.auth.GuestToken(c.Request().Context(), clientMeta(c))
	if err != nil {
		return err
	}

	metrics.LoginsTotal.WithLabelValues(domain.LoginTypeGuest).Inc()
	return c.JSON(http.StatusOK, authResponse{Token: token})
}
