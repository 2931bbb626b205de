package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mindfit/wellness-api/internal/core/ports"
)

type ProfileHandler struct {
	profiles ports.ProfileService
}

func NewProfileHandler(profiles ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

type profileUpdateRequest struct {
	Nickname      *string    `json:"nickname,omitempty"`
	Email         *string    `json:"email,omitempty" validate:"omitempty,email"`
	Phone         *string    `json:"phone,omitempty"`
	AvatarURL     *string    `json:"avatar_url,omitempty"`
	Hobbies       *[]string  `json:"hobbies,omitempty"`
	Gender        *string    `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	Age           *int       `json:"age,omitempty" validate:"omitempty,gte=0,lte=150"`
	BirthDate     *time.Time `json:"birth_date,omitempty"`
	AgreedToTerms *bool      `json:"agreed_to_terms,omitempty"`
}

// Get returns the caller's profile.
//
// @Summary      Get own profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  domain.User
// @Failure      401  {object}  map[string]string
// @Router       /api/users/profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	ownerID, err := ctxOwnerID(c)
	if err != nil {
		return err
	}
	user, err := h.profiles.Get(c.Request().Context(), ownerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update patches the caller's profile.
//
// @Summary      Update own profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body  body      profileUpdateRequest  true  "Fields to change"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Router       /api/users/profile [put]
func (h *ProfileHandler) Update(c echo.Context) error {
	ownerID, err := ctxOwnerID(c)
	if err != nil {
		return err
	}

	var req profileUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.profiles.Update(c.Request().Context(), ownerID, ports.UserProfilePatch{
		Nickname:      req.Nickname,
		Email:         req.Email,
		Phone:         req.Phone,
		AvatarURL:     req.AvatarURL,
		Hobbies:       req.Hobbies,
		Gender:        req.Gender,
		Age:           req.Age,
		BirthDate:     req.BirthDate,
		AgreedToTerms: req.AgreedToTerms,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
