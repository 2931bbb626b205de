package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mindfit/wellness-api/internal/api/metrics"
	"github.com/mindfit/wellness-api/internal/core/domain"
	"github.com/mindfit/wellness-api/internal/core/ports"
)

type AssessmentHandler struct {
	assessments ports.AssessmentService
}

func NewAssessmentHandler(assessments ports.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessments: assessments}
}

type psychAssessmentRequest struct {
	AssessmentDate *time.Time `json:"assessment_date,omitempty"`
	Stress         int        `json:"stress_level" validate:"required,gte=1,lte=10"`
	Anxiety        int        `json:"anxiety_level" validate:"required,gte=1,lte=10"`
	Sleep          int        `json:"sleep_quality" validate:"required,gte=1,lte=10"`
	Support        int        `json:"social_support" validate:"required,gte=1,lte=10"`
}

type physicalAssessmentRequest struct {
	AssessmentDate *time.Time `json:"assessment_date,omitempty"`
	Cardio         int        `json:"cardiovascular_level" validate:"required,gte=1,lte=10"`
	Strength       int        `json:"strength_level" validate:"required,gte=1,lte=10"`
	Flexibility    int        `json:"flexibility_level" validate:"required,gte=1,lte=10"`
	Endurance      int        `json:"endurance_level" validate:"required,gte=1,lte=10"`
}

// SubmitPsych scores and stores a psychological self-assessment.
//
// @Summary      Submit a psychological assessment
// @Tags         assessments
// @Accept       json
// @Produce      json
// @Param        body  body      psychAssessmentRequest  true  "Weekly answers (1-10 each)"
// @Success      201   {object}  domain.Assessment
// @Failure      400   {object}  map[string]string
// @Router       /api/assessments/psych [post]
func (h *AssessmentHandler) SubmitPsych(c echo.Context) error {
	ownerID, err := ctxOwnerID(c)
	if err != nil {
		return err
	}

	var req psychAssessmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := ports.PsychAssessmentInput{
		Stress:  req.Stress,
		Anxiety: req.Anxiety,
		Sleep:   req.Sleep,
		Support: req.Support,
	}
	if req.AssessmentDate != nil {
		in.AssessmentDate = *req.AssessmentDate
	}

	created, err := h.assessments.SubmitPsych(c.Request().Context(), ownerID, in)
	if err != nil {
		return err
	}

	metrics.AssessmentsSubmittedTotal.WithLabelValues(string(domain.AssessmentPsych)).Inc()
	return c.JSON(http.StatusCreated, created)
}

// ListPsych returns the caller's psychological assessments, newest first.
//
// @Summary      List psychological assessments
// @Tags         assessments
// @Produce      json
// @Success      200  {array}   domain.Assessment
// @Failure      401  {object}  map[string]string
// @Router       /api/assessments/psych [get]
func (h *AssessmentHandler) ListPsych(c echo.Context) error {
	return h.list(c, domain.AssessmentPsych)
}

// SubmitPhysical scores and stores a physical self-assessment.
//
// @Summary      Submit a physical assessment
// @Tags         assessments
// @Accept       json
// @Produce      json
// @Param        body  body      physicalAssessmentRequest  true  "Weekly answers (1-10 each)"
// @Success      201   {object}  domain.Assessment
// @Failure      400   {object}  map[string]string
// @Router       /api/assessments/physical [post]
func (h *AssessmentHandler) SubmitPhysical(c echo.Context) error {
	ownerID, err := ctxOwnerID(c)
	if err != nil {
		return err
	}

	var req physicalAssessmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := ports.PhysicalAssessmentInput{
		Cardio:      req.Cardio,
		Strength:    req.Strength,
		Flexibility: req.Flexibility,
		Endurance:   req.Endurance,
	}
	if req.AssessmentDate != nil {
		in.AssessmentDate = *req.AssessmentDate
	}

	created, err := h.assessments.SubmitPhysical(c.Request().Context(), ownerID, in)
	if err != nil {
		return err
	}

	metrics.AssessmentsSubmittedTotal.WithLabelValues(string(domain.AssessmentPhysical)).Inc()
	return c.JSON(http.StatusCreated, created)
}

// ListPhysical returns the caller's physical assessments, newest first.
//
// @Summary      List physical assessments
// @Tags         assessments
// @Produce      json
// @Success      200  {array}   domain.Assessment
// @Failure      401  {object}  map[string]string
// @Router       /api/assessments/physical [get]
func (h *AssessmentHandler) ListPhysical(c echo.Context) error {
	return h.list(c, domain.AssessmentPhysical)
}

func (h *AssessmentHandler) list(c echo.Context, kind domain.AssessmentKind) error {
	ownerID, err := ctxOwnerID(c)
	if err != nil {
		return err
	}
	out, err := h.assessments.List(c.Request().Context(), ownerID, kind)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}
