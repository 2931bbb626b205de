package service

import (
	"context"
	"testing"

	"github.com/mindfit/wellness-api/internal/core/domain"
	"github.com/mindfit/wellness-api/internal/core/ports"
)

type stubAssessmentRepo struct {
	rows   []*domain.Assessment
	nextID int64
}

func (r *stubAssessmentRepo) Create(_ context.Context, a *domain.Assessment) (*domain.Assessment, error) {
	r.nextID++
	clone := *a
	clone.ID = r.nextID
	r.rows = append(r.rows, &clone)
	out := clone
	return &out, nil
}

func (r *stubAssessmentRepo) ListByOwner(_ context.Context, ownerID int64, kind domain.AssessmentKind) ([]*domain.Assessment, error) {
	out := []*domain.Assessment{}
	for _, a := range r.rows {
		if a.UserID == ownerID && a.Kind == kind {
			clone := *a
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubAssessmentRepo) DeleteByOwner(_ context.Context, ownerID int64) error {
	kept := r.rows[:0]
	for _, a := range r.rows {
		if a.UserID != ownerID {
			kept = append(kept, a)
		}
	}
	r.rows = kept
	return nil
}

func TestAssessmentService_SubmitPsych(t *testing.T) {
	repo := &stubAssessmentRepo{}
	svc := NewAssessmentService(repo)

	a, err := svc.SubmitPsych(context.Background(), 1, ports.PsychAssessmentInput{
		Stress: 10, Anxiety: 10, Sleep: 1, Support: 1,
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if a.OverallScore != 1 {
		t.Fatalf("worst-case answers must score 1, got %d", a.OverallScore)
	}
	if a.Recommendation != domain.RecommendPsychLow {
		t.Fatalf("unexpected recommendation: %q", a.Recommendation)
	}
	if a.Kind != domain.AssessmentPsych {
		t.Fatalf("wrong kind: %s", a.Kind)
	}
	if a.Ratings["stress_level"] != 10 || a.Ratings["sleep_quality"] != 1 {
		t.Fatalf("raw ratings not preserved: %v", a.Ratings)
	}
}

func TestAssessmentService_SubmitPsych_BestCase(t *testing.T) {
	svc := NewAssessmentService(&stubAssessmentRepo{})

	a, err := svc.SubmitPsych(context.Background(), 1, ports.PsychAssessmentInput{
		Stress: 1, Anxiety: 1, Sleep: 10, Support: 10,
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if a.OverallScore != 10 {
		t.Fatalf("best-case answers must score 10, got %d", a.OverallScore)
	}
	if a.Recommendation != domain.RecommendPsychOK {
		t.Fatalf("unexpected recommendation: %q", a.Recommendation)
	}
}

func TestAssessmentService_SubmitPsych_OutOfRange(t *testing.T) {
	svc := NewAssessmentService(&stubAssessmentRepo{})

	cases := []ports.PsychAssessmentInput{
		{Stress: 0, Anxiety: 5, Sleep: 5, Support: 5},
		{Stress: 5, Anxiety: 11, Sleep: 5, Support: 5},
		{Stress: 5, Anxiety: 5, Sleep: -1, Support: 5},
	}
	for _, in := range cases {
		if _, err := svc.SubmitPsych(context.Background(), 1, in); err != domain.ErrInvalidInput {
			t.Fatalf("%+v: expected ErrInvalidInput, got %v", in, err)
		}
	}
}

func TestAssessmentService_SubmitPhysical(t *testing.T) {
	svc := NewAssessmentService(&stubAssessmentRepo{})

	a, err := svc.SubmitPhysical(context.Background(), 1, ports.PhysicalAssessmentInput{
		Cardio: 4, Strength: 5, Flexibility: 6, Endurance: 7,
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	// round((4+5+6+7)/4) = round(5.5) = 6, at the keep-going threshold.
	if a.OverallScore != 6 {
		t.Fatalf("expected score 6, got %d", a.OverallScore)
	}
	if a.Recommendation != domain.RecommendPhysicalOK {
		t.Fatalf("unexpected recommendation: %q", a.Recommendation)
	}
	if a.Kind != domain.AssessmentPhysical {
		t.Fatalf("wrong kind: %s", a.Kind)
	}
}

func TestAssessmentService_SubmitPhysical_LowScore(t *testing.T) {
	svc := NewAssessmentService(&stubAssessmentRepo{})

	a, err := svc.SubmitPhysical(context.Background(), 1, ports.PhysicalAssessmentInput{
		Cardio: 2, Strength: 3, Flexibility: 2, Endurance: 3,
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if a.OverallScore != 3 {
		t.Fatalf("expected score 3, got %d", a.OverallScore)
	}
	if a.Recommendation != domain.RecommendPhysicalLow {
		t.Fatalf("unexpected recommendation: %q", a.Recommendation)
	}
}

func TestAssessmentService_List_FiltersByKind(t *testing.T) {
	repo := &stubAssessmentRepo{}
	svc := NewAssessmentService(repo)

	_, _ = svc.SubmitPsych(context.Background(), 1, ports.PsychAssessmentInput{Stress: 5, Anxiety: 5, Sleep: 5, Support: 5})
	_, _ = svc.SubmitPhysical(context.Background(), 1, ports.PhysicalAssessmentInput{Cardio: 5, Strength: 5, Flexibility: 5, Endurance: 5})
	_, _ = svc.SubmitPsych(context.Background(), 2, ports.PsychAssessmentInput{Stress: 5, Anxiety: 5, Sleep: 5, Support: 5})

	psych, err := svc.List(context.Background(), 1, domain.AssessmentPsych)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(psych) != 1 {
		t.Fatalf("expected one psych assessment for owner 1, got %d", len(psych))
	}
}
