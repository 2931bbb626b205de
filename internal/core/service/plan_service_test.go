package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mindfit/wellness-api/internal/core/domain"
	"github.com/mindfit/wellness-api/internal/core/ports"
)

type stubPlanRepo struct {
	plans  map[int64]*domain.ExercisePlan
	nextID int64
}

func newStubPlanRepo() *stubPlanRepo {
	return &stubPlanRepo{plans: make(map[int64]*domain.ExercisePlan), nextID: 1}
}

func (r *stubPlanRepo) Create(_ context.Context, p *domain.ExercisePlan) (*domain.ExercisePlan, error) {
	clone := *p
	clone.ID = r.nextID
	r.nextID++
	r.plans[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubPlanRepo) FindByOwner(_ context.Context, ownerID, id int64) (*domain.ExercisePlan, error) {
	p, ok := r.plans[id]
	if !ok || p.UserID != ownerID {
		return nil, domain.ErrNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPlanRepo) ListByOwner(_ context.Context, ownerID int64) ([]*domain.ExercisePlan, error) {
	out := []*domain.ExercisePlan{}
	for _, p := range r.plans {
		if p.UserID == ownerID {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubPlanRepo) Update(_ context.Context, ownerID, id int64, patch ports.PlanPatch) (*domain.ExercisePlan, error) {
	p, ok := r.plans[id]
	if !ok || p.UserID != ownerID {
		return nil, domain.ErrNotFound
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	clone := *p
	return &clone, nil
}

func (r *stubPlanRepo) Delete(_ context.Context, ownerID, id int64) error {
	p, ok := r.plans[id]
	if !ok || p.UserID != ownerID {
		return domain.ErrNotFound
	}
	delete(r.plans, id)
	return nil
}

func (r *stubPlanRepo) DeleteByOwner(_ context.Context, ownerID int64) error {
	for id, p := range r.plans {
		if p.UserID == ownerID {
			delete(r.plans, id)
		}
	}
	return nil
}

func newPlanService(plans *stubPlanRepo, sessions *stubSessionRepo) *PlanService {
	return NewPlanService(plans, sessions, zerolog.Nop())
}

func TestPlanService_Create_Defaults(t *testing.T) {
	svc := newPlanService(newStubPlanRepo(), newStubSessionRepo())

	plan, err := svc.Create(context.Background(), 1, ports.PlanInput{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if plan.Name != "Starter plan" {
		t.Fatalf("unexpected default name: %q", plan.Name)
	}
	if plan.DurationWeeks != 4 {
		t.Fatalf("unexpected default duration: %d", plan.DurationWeeks)
	}
	if plan.Intensity != domain.IntensityMedium {
		t.Fatalf("unexpected default intensity: %s", plan.Intensity)
	}
	if plan.Status != domain.PlanActive {
		t.Fatalf("new plan must be active, got %s", plan.Status)
	}
	if plan.Content == nil {
		t.Fatalf("content must never be nil")
	}
}

func TestPlanService_OwnershipIsolation(t *testing.T) {
	plans := newStubPlanRepo()
	svc := newPlanService(plans, newStubSessionRepo())

	created, err := svc.Create(context.Background(), 1, ports.PlanInput{Name: "Alice's plan"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Another owner sees neither the row nor its existence.
	if _, err := svc.Get(context.Background(), 2, created.ID); err != domain.ErrNotFound {
		t.Fatalf("foreign get: expected ErrNotFound, got %v", err)
	}
	name := "hijacked"
	if _, err := svc.Update(context.Background(), 2, created.ID, ports.PlanPatch{Name: &name}); err != domain.ErrNotFound {
		t.Fatalf("foreign update: expected ErrNotFound, got %v", err)
	}
	if err := svc.Delete(context.Background(), 2, created.ID); err != domain.ErrNotFound {
		t.Fatalf("foreign delete: expected ErrNotFound, got %v", err)
	}

	// The owner still has the untouched row.
	got, err := svc.Get(context.Background(), 1, created.ID)
	if err != nil {
		t.Fatalf("owner get: %v", err)
	}
	if got.Name != "Alice's plan" {
		t.Fatalf("plan mutated by foreign update: %q", got.Name)
	}
}

func TestPlanService_CreateFromSession(t *testing.T) {
	sessions := newStubSessionRepo()
	owner := int64(5)
	session, _ := sessions.Create(context.Background(), &domain.ConsultationSession{UserID: &owner})
	svc := newPlanService(newStubPlanRepo(), sessions)

	plan, err := svc.CreateFromSession(context.Background(), owner, session.ID, ports.PlanInput{})
	if err != nil {
		t.Fatalf("create from session: %v", err)
	}
	if plan.SessionID == nil || *plan.SessionID != session.ID {
		t.Fatalf("plan must reference its session, got %v", plan.SessionID)
	}
}

func TestPlanService_CreateFromSession_ForeignSession(t *testing.T) {
	sessions := newStubSessionRepo()
	owner := int64(5)
	session, _ := sessions.Create(context.Background(), &domain.ConsultationSession{UserID: &owner})
	svc := newPlanService(newStubPlanRepo(), sessions)

	if _, err := svc.CreateFromSession(context.Background(), 6, session.ID, ports.PlanInput{}); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestPlanService_CreateFromSession_OwnerlessSession(t *testing.T) {
	sessions := newStubSessionRepo()
	session, _ := sessions.Create(context.Background(), &domain.ConsultationSession{})
	svc := newPlanService(newStubPlanRepo(), sessions)

	// A guest-created session can be claimed by whoever materialises it.
	plan, err := svc.CreateFromSession(context.Background(), 9, session.ID, ports.PlanInput{})
	if err != nil {
		t.Fatalf("create from ownerless session: %v", err)
	}
	if plan.UserID != 9 {
		t.Fatalf("plan owner mismatch: %d", plan.UserID)
	}
}
