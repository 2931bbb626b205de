package domain

import "time"

// IntensityLevel grades exercise plan difficulty.
type IntensityLevel string

const (
	IntensityLow    IntensityLevel = "low"
	IntensityMedium IntensityLevel = "medium"
	IntensityHigh   IntensityLevel = "high"
)

// PlanStatus is the lifecycle state of an exercise plan.
type PlanStatus string

const (
	PlanActive    PlanStatus = "active"
	PlanCompleted PlanStatus = "completed"
	PlanPaused    PlanStatus = "paused"
)

// ExercisePlan is an ownership-scoped training plan. SessionID links the plan
// back to the consultation it was generated from, when there is one.
type ExercisePlan struct {
	ID             int64          `json:"plan_id"`
	UserID         int64          `json:"-"`
	SessionID      *int64         `json:"session_id,omitempty"`
	Name           string         `json:"plan_name"`
	Description    string         `json:"plan_description,omitempty"`
	Content        map[string]any `json:"plan_content"`
	DurationWeeks  int            `json:"duration_weeks"`
	Intensity      IntensityLevel `json:"intensity_level"`
	TargetAreas    []string       `json:"target_areas,omitempty"`
	CaloriesTarget int            `json:"calories_target,omitempty"`
	Status         PlanStatus     `json:"status"`
	StartDate      *time.Time     `json:"start_date,omitempty"`
	EndDate        *time.Time     `json:"end_date,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}

// BodyMeasurement is one dated set of body metrics for a user.
type BodyMeasurement struct {
	ID              int64     `json:"measurement_id"`
	UserID          int64     `json:"-"`
	Weight          *float64  `json:"weight,omitempty"`
	Height          *float64  `json:"height,omitempty"`
	WaistCm         *float64  `json:"waist_circumference,omitempty"`
	ChestCm         *float64  `json:"chest_circumference,omitempty"`
	HipCm           *float64  `json:"hip_circumference,omitempty"`
	BMI             *float64  `json:"bmi,omitempty"`
	BodyFatPercent  *float64  `json:"body_fat_percentage,omitempty"`
	MuscleMass      *float64  `json:"muscle_mass,omitempty"`
	MeasurementDate time.Time `json:"measurement_date"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// AssessmentKind separates the two weekly self-assessment variants.
type AssessmentKind string

const (
	AssessmentPsych    AssessmentKind = "psychological"
	AssessmentPhysical AssessmentKind = "physical"
)

// Assessment is a scored weekly self-assessment. The four rating fields hold
// the raw 1-10 answers; which four depends on Kind.
type Assessment struct {
	ID             int64          `json:"assessment_id"`
	UserID         int64          `json:"-"`
	Kind           AssessmentKind `json:"-"`
	AssessmentDate time.Time      `json:"assessment_date"`
	OverallScore   int            `json:"overall_score"`
	Ratings        map[string]int `json:"ratings"`
	Recommendation string         `json:"recommendations"`
	CreatedAt      time.Time      `json:"created_at"`
}

// LoginLog is an append-only audit record, written once per login or guest
// session creation and never updated.
type LoginLog struct {
	ID        int64     `json:"log_id"`
	UserID    *int64    `json:"user_id,omitempty"`
	LoginType string    `json:"login_type"`
	UserAgent string    `json:"user_agent,omitempty"`
	IPAddress string    `json:"ip_address,omitempty"`
	LoginTime time.Time `json:"login_time"`
}

// Login types recorded in the audit trail.
const (
	LoginTypeGuest      = "guest"
	LoginTypeRegistered = "registered"
	LoginTypeAdmin      = "admin"
)
