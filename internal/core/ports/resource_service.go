package ports

import (
	"context"
	"time"

	"github.com/mindfit/wellness-api/internal/core/domain"
)

// PlanInput carries the fields accepted when creating an exercise plan. The
// owner id always comes from the authenticated principal, never the payload.
type PlanInput struct {
	Name           string
	Description    string
	Content        map[string]any
	DurationWeeks  int
	Intensity      domain.IntensityLevel
	TargetAreas    []string
	CaloriesTarget int
	StartDate      *time.Time
	EndDate        *time.Time
}

// PlanService is the ownership-scoped CRUD surface for exercise plans.
type PlanService interface {
	List(ctx context.Context, ownerID int64) ([]*domain.ExercisePlan, error)
	Create(ctx context.Context, ownerID int64, in PlanInput) (*domain.ExercisePlan, error)
	Get(ctx context.Context, ownerID, id int64) (*domain.ExercisePlan, error)
	Update(ctx context.Context, ownerID, id int64, patch PlanPatch) (*domain.ExercisePlan, error)
	Delete(ctx context.Context, ownerID, id int64) error
	// CreateFromSession materialises a plan from a consultation session the
	// caller owns. Guest-created (ownerless) sessions are attachable too.
	CreateFromSession(ctx context.Context, ownerID, sessionID int64, in PlanInput) (*domain.ExercisePlan, error)
}

// MeasurementInput carries the fields accepted when recording a measurement.
type MeasurementInput struct {
	Weight          *float64
	Height          *float64
	WaistCm         *float64
	ChestCm         *float64
	HipCm           *float64
	BMI             *float64
	BodyFatPercent  *float64
	MuscleMass      *float64
	MeasurementDate time.Time
	Notes           string
}

// MeasurementService is the ownership-scoped CRUD surface for measurements.
type MeasurementService interface {
	List(ctx context.Context, ownerID int64) ([]*domain.BodyMeasurement, error)
	Create(ctx context.Context, ownerID int64, in MeasurementInput) (*domain.BodyMeasurement, error)
	Update(ctx context.Context, ownerID, id int64, patch MeasurementPatch) (*domain.BodyMeasurement, error)
	Delete(ctx context.Context, ownerID, id int64) error
}

// PsychAssessmentInput carries the raw answers of a psych self-assessment.
type PsychAssessmentInput struct {
	AssessmentDate time.Time
	Stress         int
	Anxiety        int
	Sleep          int
	Support        int
}

// PhysicalAssessmentInput carries the raw answers of a physical self-assessment.
type PhysicalAssessmentInput struct {
	AssessmentDate time.Time
	Cardio         int
	Strength       int
	Flexibility    int
	Endurance      int
}

// AssessmentService scores and stores weekly self-assessments.
type AssessmentService interface {
	SubmitPsych(ctx context.Context, ownerID int64, in PsychAssessmentInput) (*domain.Assessment, error)
	SubmitPhysical(ctx context.Context, ownerID int64, in PhysicalAssessmentInput) (*domain.Assessment, error)
	List(ctx context.Context, ownerID int64, kind domain.AssessmentKind) ([]*domain.Assessment, error)
}
