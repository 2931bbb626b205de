package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mindfit/wellness-api/internal/core/domain"
	"github.com/mindfit/wellness-api/internal/core/ports"
)

type stubSessionRepo struct {
	sessions map[int64]*domain.ConsultationSession
	nextID   int64
}

func newStubSessionRepo() *stubSessionRepo {
	return &stubSessionRepo{sessions: make(map[int64]*domain.ConsultationSession), nextID: 1}
}

func (r *stubSessionRepo) Create(_ context.Context, s *domain.ConsultationSession) (*domain.ConsultationSession, error) {
	clone := *s
	clone.ID = r.nextID
	r.nextID++
	r.sessions[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubSessionRepo) FindByUser(_ context.Context, userID int64) (*domain.ConsultationSession, error) {
	for _, s := range r.sessions {
		if s.UserID != nil && *s.UserID == userID {
			clone := *s
			return &clone, nil
		}
	}
	return nil, domain.ErrSessionNotFound
}

func (r *stubSessionRepo) FindByID(_ context.Context, id int64) (*domain.ConsultationSession, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *stubSessionRepo) UpdateExchange(_ context.Context, id int64, query, response string) error {
	s, ok := r.sessions[id]
	if !ok {
		return domain.ErrSessionNotFound
	}
	s.UserQuery = query
	s.AIResponse = response
	return nil
}

func (r *stubSessionRepo) ListByUser(_ context.Context, userID int64) ([]*domain.ConsultationSession, error) {
	out := []*domain.ConsultationSession{}
	for _, s := range r.sessions {
		if s.UserID != nil && *s.UserID == userID {
			clone := *s
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubSessionRepo) DetachUser(_ context.Context, userID int64) error {
	for _, s := range r.sessions {
		if s.UserID != nil && *s.UserID == userID {
			s.UserID = nil
		}
	}
	return nil
}

type stubMessageRepo struct {
	messages []*domain.ConsultationMessage
	nextID   int64
}

func (r *stubMessageRepo) Append(_ context.Context, m *domain.ConsultationMessage) (*domain.ConsultationMessage, error) {
	r.nextID++
	clone := *m
	clone.ID = r.nextID
	r.messages = append(r.messages, &clone)
	out := clone
	return &out, nil
}

func (r *stubMessageRepo) ListBySession(_ context.Context, sessionID int64) ([]*domain.ConsultationMessage, error) {
	out := []*domain.ConsultationMessage{}
	for _, m := range r.messages {
		if m.SessionID == sessionID {
			clone := *m
			out = append(out, &clone)
		}
	}
	return out, nil
}

type stubAdvisor struct {
	response string
	err      error
	calls    int
}

func (a *stubAdvisor) Generate(_ context.Context, _ domain.ConsultationType, _ string) (string, error) {
	a.calls++
	return a.response, a.err
}

type stubReplay struct {
	entries map[string]replayEntry
	lookups int
	stores  int
}

type replayEntry struct {
	sessionID int64
	response  string
}

func newStubReplay() *stubReplay {
	return &stubReplay{entries: make(map[string]replayEntry)}
}

func (r *stubReplay) key(ownerKey, query string) string {
	return fmt.Sprintf("%s|%s", ownerKey, query)
}

func (r *stubReplay) Lookup(_ context.Context, ownerKey, query string) (int64, string, bool, error) {
	r.lookups++
	e, ok := r.entries[r.key(ownerKey, query)]
	return e.sessionID, e.response, ok, nil
}

func (r *stubReplay) Store(_ context.Context, ownerKey, query string, sessionID int64, response string) error {
	r.stores++
	r.entries[r.key(ownerKey, query)] = replayEntry{sessionID: sessionID, response: response}
	return nil
}

func newConsultService(sessions *stubSessionRepo, messages *stubMessageRepo, advisor *stubAdvisor, replay ReplayGuard) *ConsultationService {
	return NewConsultationService(sessions, messages, advisor, replay, zerolog.Nop())
}

func TestConsultationService_Consult_Registered(t *testing.T) {
	sessions := newStubSessionRepo()
	messages := &stubMessageRepo{}
	advisor := &stubAdvisor{response: "try a short walk before bed"}
	svc := newConsultService(sessions, messages, advisor, nil)

	userID := int64(7)
	res, err := svc.Consult(context.Background(), ports.ConsultInput{
		Principal: domain.RegisteredPrincipal(userID),
		Query:     "I can't sleep",
		Type:      domain.ConsultPsychological,
	})
	if err != nil {
		t.Fatalf("consult: %v", err)
	}
	if res.Source != ports.AdviceSourceLLM {
		t.Fatalf("expected llm source, got %s", res.Source)
	}
	if res.AIResponse != "try a short walk before bed" {
		t.Fatalf("unexpected response: %q", res.AIResponse)
	}
	if res.PlanPreview != nil {
		t.Fatalf("registered callers must not get a plan preview")
	}

	session, ok := sessions.sessions[res.SessionID]
	if !ok {
		t.Fatalf("session %d not stored", res.SessionID)
	}
	if session.UserID == nil || *session.UserID != userID {
		t.Fatalf("session owner mismatch: %+v", session.UserID)
	}

	if len(messages.messages) != 2 {
		t.Fatalf("expected two transcript messages, got %d", len(messages.messages))
	}
	if messages.messages[0].Type != domain.MessageUser || messages.messages[1].Type != domain.MessageAI {
		t.Fatalf("transcript order wrong: %s then %s", messages.messages[0].Type, messages.messages[1].Type)
	}
}

func TestConsultationService_Consult_FallbackOnAdvisorError(t *testing.T) {
	sessions := newStubSessionRepo()
	messages := &stubMessageRepo{}
	advisor := &stubAdvisor{err: errors.New("upstream down")}
	svc := newConsultService(sessions, messages, advisor, nil)

	res, err := svc.Consult(context.Background(), ports.ConsultInput{
		Principal: domain.RegisteredPrincipal(1),
		Query:     "feeling anxious about exams",
	})
	if err != nil {
		t.Fatalf("advisor failure must not surface: %v", err)
	}
	if res.Source != ports.AdviceSourceFallback {
		t.Fatalf("expected fallback source, got %s", res.Source)
	}
	if res.AIResponse == "" {
		t.Fatalf("fallback must always produce text")
	}
	if len(messages.messages) != 2 {
		t.Fatalf("fallback turn must still be persisted, got %d messages", len(messages.messages))
	}
}

func TestConsultationService_Consult_FallbackOnEmptyResponse(t *testing.T) {
	svc := newConsultService(newStubSessionRepo(), &stubMessageRepo{}, &stubAdvisor{response: "   "}, nil)

	res, err := svc.Consult(context.Background(), ports.ConsultInput{
		Principal: domain.RegisteredPrincipal(1),
		Query:     "hello",
	})
	if err != nil {
		t.Fatalf("consult: %v", err)
	}
	if res.Source != ports.AdviceSourceFallback || res.AIResponse == "" {
		t.Fatalf("blank upstream text must fall back, got source=%s response=%q", res.Source, res.AIResponse)
	}
}

func TestConsultationService_Consult_RegisteredReusesSession(t *testing.T) {
	sessions := newStubSessionRepo()
	svc := newConsultService(sessions, &stubMessageRepo{}, &stubAdvisor{response: "advice"}, nil)

	in := ports.ConsultInput{Principal: domain.RegisteredPrincipal(3), Query: "first question"}
	first, err := svc.Consult(context.Background(), in)
	if err != nil {
		t.Fatalf("first consult: %v", err)
	}

	in.Query = "second question"
	second, err := svc.Consult(context.Background(), in)
	if err != nil {
		t.Fatalf("second consult: %v", err)
	}

	if first.SessionID != second.SessionID {
		t.Fatalf("registered turns must share one session: %d != %d", first.SessionID, second.SessionID)
	}
	if len(sessions.sessions) != 1 {
		t.Fatalf("expected a single session row, got %d", len(sessions.sessions))
	}
	if got := sessions.sessions[first.SessionID].UserQuery; got != "second question" {
		t.Fatalf("session must hold the latest exchange, got %q", got)
	}
}

func TestConsultationService_Consult_GuestsGetFreshSessions(t *testing.T) {
	sessions := newStubSessionRepo()
	advisor := &stubAdvisor{response: "advice"}
	svc := newConsultService(sessions, &stubMessageRepo{}, advisor, nil)

	in := ports.ConsultInput{Principal: domain.GuestPrincipal(), Query: "same question"}
	first, err := svc.Consult(context.Background(), in)
	if err != nil {
		t.Fatalf("first consult: %v", err)
	}
	second, err := svc.Consult(context.Background(), in)
	if err != nil {
		t.Fatalf("second consult: %v", err)
	}

	if first.SessionID == second.SessionID {
		t.Fatalf("guest turns must not share sessions")
	}
	if sessions.sessions[first.SessionID].UserID != nil {
		t.Fatalf("guest session must have no owner")
	}
	if first.PlanPreview == nil || first.PlanPreview.Weeks != 4 {
		t.Fatalf("guests get a four-week plan preview, got %+v", first.PlanPreview)
	}
	if len(first.PlanPreview.Schedule) != 4 {
		t.Fatalf("preview schedule must cover all four weeks, got %d", len(first.PlanPreview.Schedule))
	}
}

func TestConsultationService_Consult_EmptyQuery(t *testing.T) {
	svc := newConsultService(newStubSessionRepo(), &stubMessageRepo{}, &stubAdvisor{}, nil)

	if _, err := svc.Consult(context.Background(), ports.ConsultInput{
		Principal: domain.GuestPrincipal(),
		Query:     "   ",
	}); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestConsultationService_Consult_InvalidType(t *testing.T) {
	svc := newConsultService(newStubSessionRepo(), &stubMessageRepo{}, &stubAdvisor{}, nil)

	if _, err := svc.Consult(context.Background(), ports.ConsultInput{
		Principal: domain.GuestPrincipal(),
		Query:     "hi",
		Type:      domain.ConsultationType("horoscope"),
	}); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestConsultationService_Consult_ReplayHit(t *testing.T) {
	sessions := newStubSessionRepo()
	messages := &stubMessageRepo{}
	advisor := &stubAdvisor{response: "advice"}
	replay := newStubReplay()
	svc := newConsultService(sessions, messages, advisor, replay)

	in := ports.ConsultInput{Principal: domain.RegisteredPrincipal(9), Query: "repeat me"}
	first, err := svc.Consult(context.Background(), in)
	if err != nil {
		t.Fatalf("first consult: %v", err)
	}

	second, err := svc.Consult(context.Background(), in)
	if err != nil {
		t.Fatalf("second consult: %v", err)
	}

	if second.Source != ports.AdviceSourceReplay {
		t.Fatalf("expected replayed result, got source %s", second.Source)
	}
	if second.SessionID != first.SessionID || second.AIResponse != first.AIResponse {
		t.Fatalf("replay must return the stored result: %+v vs %+v", second, first)
	}
	if advisor.calls != 1 {
		t.Fatalf("replayed turn must not call the advisor again, calls=%d", advisor.calls)
	}
	if len(messages.messages) != 2 {
		t.Fatalf("replayed turn must not append transcript messages, got %d", len(messages.messages))
	}
}

func TestConsultationService_Consult_GuestsSkipReplay(t *testing.T) {
	replay := newStubReplay()
	svc := newConsultService(newStubSessionRepo(), &stubMessageRepo{}, &stubAdvisor{response: "advice"}, replay)

	in := ports.ConsultInput{Principal: domain.GuestPrincipal(), Query: "same question"}
	if _, err := svc.Consult(context.Background(), in); err != nil {
		t.Fatalf("consult: %v", err)
	}
	if _, err := svc.Consult(context.Background(), in); err != nil {
		t.Fatalf("consult: %v", err)
	}
	if replay.lookups != 0 || replay.stores != 0 {
		t.Fatalf("guest turns must bypass the replay guard: lookups=%d stores=%d", replay.lookups, replay.stores)
	}
}

func TestConsultationService_ListSessions_Guest(t *testing.T) {
	svc := newConsultService(newStubSessionRepo(), &stubMessageRepo{}, &stubAdvisor{}, nil)

	out, err := svc.ListSessions(context.Background(), domain.GuestPrincipal())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Fatalf("guests must get an empty slice, got %v", out)
	}
}
