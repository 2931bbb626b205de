package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mindfit/wellness-api/internal/core/ports"
)

type MeasurementHandler struct {
	measurements ports.MeasurementService
}

func NewMeasurementHandler(measurements ports.MeasurementService) *MeasurementHandler {
	return &MeasurementHandler{measurements: measurements}
}

type measurementRequest struct {
	Weight          *float64   `json:"weight,omitempty" validate:"omitempty,gt=0"`
	Height          *float64   `json:"height,omitempty" validate:"omitempty,gt=0"`
	WaistCm         *float64   `json:"waist_circumference,omitempty" validate:"omitempty,gt=0"`
	ChestCm         *float64   `json:"chest_circumference,omitempty" validate:"omitempty,gt=0"`
	HipCm           *float64   `json:"hip_circumference,omitempty" validate:"omitempty,gt=0"`
	BMI             *float64   `json:"bmi,omitempty" validate:"omitempty,gt=0"`
	BodyFatPercent  *float64   `json:"body_fat_percentage,omitempty" validate:"omitempty,gte=0,lte=100"`
	MuscleMass      *float64   `json:"muscle_mass,omitempty" validate:"omitempty,gt=0"`
	MeasurementDate *time.Time `json:"measurement_date,omitempty"`
	Notes           string     `json:"notes,omitempty"`
}

// List returns the caller's measurements in measurement-date order.
//
// @Summary      List body measurements
// @Tags         measurements
// @Produce      json
// @Success      200  {array}   domain.BodyMeasurement
// @Failure      401  {object}  map[string]string
// @Router       /api/measurements [get]
func (h *MeasurementHandler) List(c echo.Context) error {
	ownerID, err := ctxOwnerID(c)
	if err != nil {
		return err
	}
	out, err := h.measurements.List(c.Request().Context(), ownerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

// Create stores a new measurement row for the caller.
//
// @Summary      Record a body measurement
// @Tags         measurements
// @Accept       json
// @Produce      json
// @Param        body  body      measurementRequest  true  "Measurement values"
// @Success      201   {object}  domain.BodyMeasurement
// @Failure      400   {object}  map[string]string
// @Router       /api/measurements [post]
func (h *MeasurementHandler) Create(c echo.Context) error {
	ownerID, err := ctxOwnerID(c)
	if err != nil {
		return err
	}

	var req measurementRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := ports.MeasurementInput{
		Weight:         req.Weight,
		Height:         req.Height,
		WaistCm:        req.WaistCm,
		ChestCm:        req.ChestCm,
		HipCm:          req.HipCm,
		BMI:            req.BMI,
		BodyFatPercent: req.BodyFatPercent,
		MuscleMass:     req.MuscleMass,
		Notes:          req.Notes,
	}
	if req.MeasurementDate != nil {
		in.MeasurementDate = *req.MeasurementDate
	}

	created, err := h.measurements.Create(c.Request().Context(), ownerID, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Update patches one of the caller's measurements.
//
// @Summary      Update a body measurement
// @Tags         measurements
// @Accept       json
// @Produce      json
// @Param        id    path      int                 true  "Measurement id"
// @Param        body  body      measurementRequest  true  "Fields to change"
// @Success      200   {object}  domain.BodyMeasurement
// @Failure      404   {object}  map[string]string
// @Router       /api/measurements/{id} [put]
func (h *MeasurementHandler) Update(c echo.Context) error {
	ownerID, err := ctxOwnerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req measurementRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	patch := ports.MeasurementPatch{
		Weight:          req.Weight,
		Height:          req.Height,
		WaistCm:         req.WaistCm,
		ChestCm:         req.ChestCm,
		HipCm:           req.HipCm,
		BMI:             req.BMI,
		BodyFatPercent:  req.BodyFatPercent,
		MuscleMass:      req.MuscleMass,
		MeasurementDate: req.MeasurementDate,
	}
	if req.Notes != "" {
		patch.Notes = &req.Notes
	}

	updated, err := h.measurements.Update(c.Request().Context(), ownerID, id, patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete removes one of the caller's measurements.
//
// @Summary      Delete a body measurement
// @Tags         measurements
// @Param        id  path  int  true  "Measurement id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/measurements/{id} [delete]
func (h *MeasurementHandler) Delete(c echo.Context) error {
	ownerID, err := ctxOwnerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.measurements.Delete(c.Request().Context(), ownerID, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
