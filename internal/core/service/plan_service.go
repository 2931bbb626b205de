package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/mindfit/wellness-api/internal/core/domain"
	"github.com/mindfit/wellness-api/internal/core/ports"
)

// PlanService implements ownership-scoped CRUD for exercise plans.
type PlanService struct {
	plans    ports.PlanRepository
	sessions ports.SessionRepository
	logger   zerolog.Logger
}

func NewPlanService(plans ports.PlanRepository, sessions ports.SessionRepository, logger zerolog.Logger) *PlanService {
	return &PlanService{plans: plans, sessions: sessions, logger: logger}
}

func (s *PlanService) List(ctx context.Context, ownerID int64) ([]*domain.ExercisePlan, error) {
	return s.plans.ListByOwner(ctx, ownerID)
}

func (s *PlanService) Create(ctx context.Context, ownerID int64, in ports.PlanInput) (*domain.ExercisePlan, error) {
	return s.create(ctx, ownerID, nil, in)
}

func (s *PlanService) Get(ctx context.Context, ownerID, id int64) (*domain.ExercisePlan, error) {
	return s.plans.FindByOwner(ctx, ownerID, id)
}

func (s *PlanService) Update(ctx context.Context, ownerID, id int64, patch ports.PlanPatch) (*domain.ExercisePlan, error) {
	return s.plans.Update(ctx, ownerID, id, patch)
}

func (s *PlanService) Delete(ctx context.Context, ownerID, id int64) error {
	return s.plans.Delete(ctx, ownerID, id)
}

// CreateFromSession attaches a new plan to a consultation session. The
// session must belong to the caller or be ownerless (guest-created before
// registration).
func (s *PlanService) CreateFromSession(ctx context.Context, ownerID, sessionID int64, in ports.PlanInput) (*domain.ExercisePlan, error) {
	session, err := s.sessions.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != nil && *session.UserID != ownerID {
		return nil, domain.ErrForbidden
	}
	return s.create(ctx, ownerID, &sessionID, in)
}

func (s *PlanService) create(ctx context.Context, ownerID int64, sessionID *int64, in ports.PlanInput) (*domain.ExercisePlan, error) {
	if in.Name == "" {
		in.Name = "Starter plan"
	}
	if in.DurationWeeks <= 0 {
		in.DurationWeeks = 4
	}
	if in.Intensity == "" {
		in.Intensity = domain.IntensityMedium
	}
	if in.Content == nil {
		in.Content = map[string]any{}
	}

	plan := &domain.ExercisePlan{
		UserID:         ownerID,
		SessionID:      sessionID,
		Name:           in.Name,
		Description:    in.Description,
		Content:        in.Content,
		DurationWeeks:  in.DurationWeeks,
		Intensity:      in.Intensity,
		TargetAreas:    in.TargetAreas,
		CaloriesTarget: in.CaloriesTarget,
		Status:         domain.PlanActive,
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
		CreatedAt:      time.Now().UTC(),
	}

	created, err := s.plans.Create(ctx, plan)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("plan_id", created.ID).Int64("user_id", ownerID).Msg("exercise plan created")
	return created, nil
}
