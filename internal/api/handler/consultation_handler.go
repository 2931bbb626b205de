package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mindfit/wellness-api/internal/api/metrics"
	"github.com/mindfit/wellness-api/internal/core/domain"
	"github.com/mindfit/wellness-api/internal/core/ports"
)

type ConsultationHandler struct {
	consultations ports.ConsultationService
}

func NewConsultationHandler(consultations ports.ConsultationService) *ConsultationHandler {
	return &ConsultationHandler{consultations: consultations}
}

type profileHintsRequest struct {
	Age    *int     `json:"age,omitempty" validate:"omitempty,gte=0,lte=150"`
	Gender string   `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	Weight *float64 `json:"weight,omitempty"`
	Height *float64 `json:"height,omitempty"`
	Goals  []string `json:"goals,omitempty"`
}

type consultRequest struct {
	Query      string               `json:"query" validate:"required"`
	Type       string               `json:"consultation_type,omitempty" validate:"omitempty,oneof=psychological sports_advice comprehensive"`
	MoodRating *int                 `json:"mood_rating,omitempty" validate:"omitempty,gte=1,lte=10"`
	Profile    *profileHintsRequest `json:"profile,omitempty"`
}

type consultResponse struct {
	SessionID   int64              `json:"session_id"`
	AIResponse  string             `json:"ai_response"`
	PlanPreview *ports.PlanPreview `json:"plan_preview,omitempty"`
}

// Consult runs one consultation turn for the caller.
//
// @Summary      Submit a consultation query
// @Tags         consultations
// @Accept       json
// @Produce      json
// @Param        body  body      consultRequest  true  "Consultation query"
// @Success      200   {object}  consultResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/consultations [post]
func (h *ConsultationHandler) Consult(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req consultRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := ports.ConsultInput{
		Principal:  p,
		Query:      req.Query,
		Type:       domain.ConsultationType(req.Type),
		MoodRating: req.MoodRating,
	}
	if req.Profile != nil {
		in.Profile = &ports.ProfileHints{
			Age:    req.Profile.Age,
			Gender: req.Profile.Gender,
			Weight: req.Profile.Weight,
			Height: req.Profile.Height,
			Goals:  req.Profile.Goals,
		}
	}

	started := time.Now()
	res, err := h.consultations.Consult(c.Request().Context(), in)
	if err != nil {
		return err
	}

	ctype := req.Type
	if ctype == "" {
		ctype = string(domain.ConsultPsychological)
	}
	metrics.ConsultationsTotal.WithLabelValues(ctype, res.Source).Inc()
	metrics.ConsultationDuration.WithLabelValues(res.Source).Observe(time.Since(started).Seconds())

	return c.JSON(http.StatusOK, consultResponse{
		SessionID:   res.SessionID,
		AIResponse:  res.AIResponse,
		PlanPreview: res.PlanPreview,
	})
}

// List returns the caller's consultation sessions, newest first.
//
// @Summary      List consultation sessions
// @Tags         consultations
// @Produce      json
// @Success      200  {array}   domain.ConsultationSession
// @Failure      401  {object}  map[string]string
// @Router       /api/consultations [get]
func (h *ConsultationHandler) List(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	sessions, err := h.consultations.ListSessions(c.Request().Context(), p)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessions)
}
