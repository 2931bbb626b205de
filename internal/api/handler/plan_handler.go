package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mindfit/wellness-api/internal/core/domain"
	"github.com/mindfit/wellness-api/internal/core/ports"
)

type PlanHandler struct {
	plans ports.PlanService
}

func NewPlanHandler(plans ports.PlanService) *PlanHandler {
	return &PlanHandler{plans: plans}
}

type planRequest struct {
	Name           string         `json:"plan_name,omitempty"`
	Description    string         `json:"plan_description,omitempty"`
	Content        map[string]any `json:"plan_content,omitempty"`
	DurationWeeks  int            `json:"duration_weeks,omitempty" validate:"omitempty,gte=1,lte=52"`
	Intensity      string         `json:"intensity_level,omitempty" validate:"omitempty,oneof=low medium high"`
	TargetAreas    []string       `json:"target_areas,omitempty"`
	CaloriesTarget int            `json:"calories_target,omitempty" validate:"omitempty,gte=0"`
	StartDate      *time.Time     `json:"start_date,omitempty"`
	EndDate        *time.Time     `json:"end_date,omitempty"`
}

type planUpdateRequest struct {
	Name           *string         `json:"plan_name,omitempty"`
	Description    *string         `json:"plan_description,omitempty"`
	Content        *map[string]any `json:"plan_content,omitempty"`
	DurationWeeks  *int            `json:"duration_weeks,omitempty" validate:"omitempty,gte=1,lte=52"`
	Intensity      *string         `json:"intensity_level,omitempty" validate:"omitempty,oneof=low medium high"`
	TargetAreas    *[]string       `json:"target_areas,omitempty"`
	CaloriesTarget *int            `json:"calories_target,omitempty" validate:"omitempty,gte=0"`
	Status         *string         `json:"status,omitempty" validate:"omitempty,oneof=active completed paused"`
	StartDate      *time.Time      `json:"start_date,omitempty"`
	EndDate        *time.Time      `json:"end_date,omitempty"`
}

func (r planRequest) toInput() ports.PlanInput {
	return ports.PlanInput{
		Name:           r.Name,
		Description:    r.Description,
		Content:        r.Content,
		DurationWeeks:  r.DurationWeeks,
		Intensity:      domain.IntensityLevel(r.Intensity),
		TargetAreas:    r.TargetAreas,
		CaloriesTarget: r.CaloriesTarget,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
	}
}

// List returns the caller's exercise plans.
//
// @Summary      List exercise plans
// @Tags         plans
// @Produce      json
// @Success      200  {array}   domain.ExercisePlan
// @Failure      401  {object}  map[string]string
// @Router       /api/plans [get]
func (h *PlanHandler) List(c echo.Context) error {
	ownerID, err := ctxOwnerID(c)
	if err != nil {
		return err
	}
	plans, err := h.plans.List(c.Request().Context(), ownerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plans)
}

// Create stores a new exercise plan for the caller.
//
// @Summary      Create an exercise plan
// @Tags         plans
// @Accept       json
// @Produce      json
// @Param        body  body      planRequest  true  "Plan details"
// @Success      201   {object}  domain.ExercisePlan
// @Failure      400   {object}  map[string]string
// @Router       /api/plans [post]
func (h *PlanHandler) Create(c echo.Context) error {
	ownerID, err := ctxOwnerID(c)
	if err != nil {
		return err
	}

	var req planRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	plan, err := h.plans.Create(c.Request().Context(), ownerID, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, plan)
}

// Get returns one of the caller's plans by id.
//
// @Summary      Get an exercise plan
// @Tags         plans
// @Produce      json
// @Param        id   path      int  true  "Plan id"
// @Success      200  {object}  domain.ExercisePlan
// @Failure      404  {object}  map[string]string
// @Router       /api/plans/{id} [get]
func (h *PlanHandler) Get(c echo.Context) error {
	ownerID, err := ctxOwnerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	plan, err := h.plans.Get(c.Request().Context(), ownerID, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plan)
}

// Update patches one of the caller's plans.
//
// @Summary      Update an exercise plan
// @Tags         plans
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "Plan id"
// @Param        body  body      planUpdateRequest  true  "Fields to change"
// @Success      200   {object}  domain.ExercisePlan
// @Failure      404   {object}  map[string]string
// @Router       /api/plans/{id} [put]
func (h *PlanHandler) Update(c echo.Context) error {
	ownerID, err := ctxOwnerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req planUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	patch := ports.PlanPatch{
		Name:           req.Name,
		Description:    req.Description,
		Content:        req.Content,
		DurationWeeks:  req.DurationWeeks,
		TargetAreas:    req.TargetAreas,
		CaloriesTarget: req.CaloriesTarget,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
	}
	if req.Intensity != nil {
		intensity := domain.IntensityLevel(*req.Intensity)
		patch.Intensity = &intensity
	}
	if req.Status != nil {
		status := domain.PlanStatus(*req.Status)
		patch.Status = &status
	}

	plan, err := h.plans.Update(c.Request().Context(), ownerID, id, patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plan)
}

// Delete removes one of the caller's plans.
//
// @Summary      Delete an exercise plan
// @Tags         plans
// @Param        id  path  int  true  "Plan id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/plans/{id} [delete]
func (h *PlanHandler) Delete(c echo.Context) error {
	ownerID, err := ctxOwnerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.plans.Delete(c.Request().Context(), ownerID, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// CreateFromSession materialises a plan out of a consultation session.
//
// @Summary      Create a plan from a consultation session
// @Tags         consultations
// @Accept       json
// @Produce      json
// @Param        id    path      int          true  "Session id"
// @Param        body  body      planRequest  true  "Plan details"
// @Success      201   {object}  domain.ExercisePlan
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/consultations/{id}/plan [post]
func (h *PlanHandler) CreateFromSession(c echo.Context) error {
	ownerID, err := ctxOwnerID(c)
	if err != nil {
		return err
	}
	sessionID, err := pathID(c)
	if err != nil {
		return err
	}

	var req planRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	plan, err := h.plans.CreateFromSession(c.Request().Context(), ownerID, sessionID, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, plan)
}

// pathID parses the numeric :id path parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
