package ports

import (
	"context"
	"time"

	"github.com/mindfit/wellness-api/internal/core/domain"
)

// PlanPatch carries the updatable exercise plan fields; nil leaves a field
// unchanged.
type PlanPatch struct {
	Name           *string
	Description    *string
	Content        *map[string]any
	DurationWeeks  *int
	Intensity      *domain.IntensityLevel
	TargetAreas    *[]string
	CaloriesTarget *int
	Status         *domain.PlanStatus
	StartDate      *time.Time
	EndDate        *time.Time
}

// PlanRepository persists exercise plans. Every lookup is filtered by both id
// and owner id; a mismatch yields domain.ErrNotFound.
type PlanRepository interface {
	Create(ctx context.Context, p *domain.ExercisePlan) (*domain.ExercisePlan, error)
	FindByOwner(ctx context.Context, ownerID, id int64) (*domain.ExercisePlan, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.ExercisePlan, error)
	Update(ctx context.Context, ownerID, id int64, patch PlanPatch) (*domain.ExercisePlan, error)
	Delete(ctx context.Context, ownerID, id int64) error
	DeleteByOwner(ctx context.Context, ownerID int64) error
}

// MeasurementPatch carries the updatable body measurement fields.
type MeasurementPatch struct {
	Weight          *float64
	Height          *float64
	WaistCm         *float64
	ChestCm         *float64
	HipCm           *float64
	BMI             *float64
	BodyFatPercent  *float64
	MuscleMass      *float64
	MeasurementDate *time.Time
	Notes           *string
}

// MeasurementRepository persists body measurements, ownership-scoped like
// PlanRepository.
type MeasurementRepository interface {
	Create(ctx context.Context, m *domain.BodyMeasurement) (*domain.BodyMeasurement, error)
	FindByOwner(ctx context.Context, ownerID, id int64) (*domain.BodyMeasurement, error)
	// ListByOwner returns measurements in ascending measurement-date order.
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.BodyMeasurement, error)
	Update(ctx context.Context, ownerID, id int64, patch MeasurementPatch) (*domain.BodyMeasurement, error)
	Delete(ctx context.Context, ownerID, id int64) error
	DeleteByOwner(ctx context.Context, ownerID int64) error
}

// AssessmentRepository persists scored weekly assessments.
type AssessmentRepository interface {
	Create(ctx context.Context, a *domain.Assessment) (*domain.Assessment, error)
	// ListByOwner returns assessments of one kind, newest assessment date first.
	ListByOwner(ctx context.Context, ownerID int64, kind domain.AssessmentKind) ([]*domain.Assessment, error)
	DeleteByOwner(ctx context.Context, ownerID int64) error
}
