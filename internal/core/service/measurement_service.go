package service

import (
	"context"
	"time"

	"github.com/mindfit/wellness-api/internal/core/domain"
	"github.com/mindfit/wellness-api/internal/core/ports"
)

// MeasurementService implements ownership-scoped CRUD for body measurements.
type MeasurementService struct {
	measurements ports.MeasurementRepository
}

func NewMeasurementService(measurements ports.MeasurementRepository) *MeasurementService {
	return &MeasurementService{measurements: measurements}
}

func (s *MeasurementService) List(ctx context.Context, ownerID int64) ([]*domain.BodyMeasurement, error) {
	return s.measurements.ListByOwner(ctx, ownerID)
}

func (s *MeasurementService) Create(ctx context.Context, ownerID int64, in ports.MeasurementInput) (*domain.BodyMeasurement, error) {
	date := in.MeasurementDate
	if date.IsZero() {
		date = time.Now().UTC()
	}
	return s.measurements.Create(ctx, &domain.BodyMeasurement{
		UserID:          ownerID,
		Weight:          in.Weight,
		Height:          in.Height,
		WaistCm:         in.WaistCm,
		ChestCm:         in.ChestCm,
		HipCm:           in.HipCm,
		BMI:             in.BMI,
		BodyFatPercent:  in.BodyFatPercent,
		MuscleMass:      in.MuscleMass,
		MeasurementDate: date,
		Notes:           in.Notes,
		CreatedAt:       time.Now().UTC(),
	})
}

func (s *MeasurementService) Update(ctx context.Context, ownerID, id int64, patch ports.MeasurementPatch) (*domain.BodyMeasurement, error) {
	return s.measurements.Update(ctx, ownerID, id, patch)
}

func (s *MeasurementService) Delete(ctx context.Context, ownerID, id int64) error {
	return s.measurements.Delete(ctx, ownerID, id)
}
