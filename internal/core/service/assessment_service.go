package service

import (
	"context"
	"time"

	"github.com/mindfit/wellness-api/internal/core/domain"
	"github.com/mindfit/wellness-api/internal/core/ports"
)

// AssessmentService scores weekly self-assessments and stores the results.
type AssessmentService struct {
	assessments ports.AssessmentRepository
}

func NewAssessmentService(assessments ports.AssessmentRepository) *AssessmentService {
	return &AssessmentService{assessments: assessments}
}

func (s *AssessmentService) SubmitPsych(ctx context.Context, ownerID int64, in ports.PsychAssessmentInput) (*domain.Assessment, error) {
	if !ratingsValid(in.Stress, in.Anxiety, in.Sleep, in.Support) {
		return nil, domain.ErrInvalidInput
	}

	score := domain.ScorePsych(domain.PsychRatings{
		Stress:  in.Stress,
		Anxiety: in.Anxiety,
		Sleep:   in.Sleep,
		Support: in.Support,
	})

	return s.assessments.Create(ctx, &domain.Assessment{
		UserID:         ownerID,
		Kind:           domain.AssessmentPsych,
		AssessmentDate: assessmentDate(in.AssessmentDate),
		OverallScore:   score.Overall,
		Ratings: map[string]int{
			"stress_level":   in.Stress,
			"anxiety_level":  in.Anxiety,
			"sleep_quality":  in.Sleep,
			"social_support": in.Support,
		},
		Recommendation: score.Recommendation,
		CreatedAt:      time.Now().UTC(),
	})
}

func (s *AssessmentService) SubmitPhysical(ctx context.Context, ownerID int64, in ports.PhysicalAssessmentInput) (*domain.Assessment, error) {
	if !ratingsValid(in.Cardio, in.Strength, in.Flexibility, in.Endurance) {
		return nil, domain.ErrInvalidInput
	}

	score := domain.ScorePhysical(domain.PhysicalRatings{
		Cardio:      in.Cardio,
		Strength:    in.Strength,
		Flexibility: in.Flexibility,
		Endurance:   in.Endurance,
	})

	return s.assessments.Create(ctx, &domain.Assessment{
		UserID:         ownerID,
		Kind:           domain.AssessmentPhysical,
		AssessmentDate: assessmentDate(in.AssessmentDate),
		OverallScore:   score.Overall,
		Ratings: map[string]int{
			"cardiovascular_level": in.Cardio,
			"strength_level":       in.Strength,
			"flexibility_level":    in.Flexibility,
			"endurance_level":      in.Endurance,
		},
		Recommendation: score.Recommendation,
		CreatedAt:      time.Now().UTC(),
	})
}

func (s *AssessmentService) List(ctx context.Context, ownerID int64, kind domain.AssessmentKind) ([]*domain.Assessment, error) {
	return s.assessments.ListByOwner(ctx, ownerID, kind)
}

func ratingsValid(ratings ...int) bool {
	for _, r := range ratings {
		if r < 1 || r > 10 {
			return false
		}
	}
	return true
}

func assessmentDate(d time.Time) time.Time {
	if d.IsZero() {
		return time.Now().UTC()
	}
	return d
}
