package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mindfit/wellness-api/internal/core/domain"
	"github.com/mindfit/wellness-api/internal/core/ports"
)

// ReplayGuard abstracts the short-lived submission replay store (Redis).
// A hit means the same owner submitted the same query moments ago; the
// stored result is returned without another upstream call or transcript
// append.
type ReplayGuard interface {
	Lookup(ctx context.Context, ownerKey, query string) (sessionID int64, response string, ok bool, err error)
	Store(ctx context.Context, ownerKey, query string, sessionID int64, response string) error
}

// ConsultationService orchestrates one consultation turn: advice generation
// with silent fallback, session reconciliation, and transcript appends.
type ConsultationService struct {
	sessions ports.SessionRepository
	messages ports.MessageRepository
	advisor  ports.AdviceGenerator
	replay   ReplayGuard
	log      zerolog.Logger
}

func NewConsultationService(
	sessions ports.SessionRepository,
	messages ports.MessageRepository,
	advisor ports.AdviceGenerator,
	replay ReplayGuard,
	log zerolog.Logger,
) *ConsultationService {
	return &ConsultationService{
		sessions: sessions,
		messages: messages,
		advisor:  advisor,
		replay:   replay,
		log:      log,
	}
}

func (s *ConsultationService) Consult(ctx context.Context, in ports.ConsultInput) (*ports.ConsultResult, error) {
	query := strings.TrimSpace(in.Query)
	if query == "" {
		return nil, domain.ErrInvalidInput
	}
	ctype := in.Type
	if ctype == "" {
		ctype = domain.ConsultPsychological
	}
	if !ctype.Valid() {
		return nil, domain.ErrInvalidInput
	}

	// 1. Replay check: a double submit returns the stored result as-is.
	// Guests are skipped: with no owner key their turns are independent rows.
	ownerKey := principalKey(in.Principal)
	if s.replay != nil && in.Principal.UserID != nil {
		sessionID, response, ok, err := s.replay.Lookup(ctx, ownerKey, query)
		if err != nil {
			s.log.Warn().Err(err).Msg("replay lookup failed, processing anyway")
		} else if ok {
			s.log.Debug().Int64("session_id", sessionID).Msg("duplicate submission replayed")
			return &ports.ConsultResult{
				SessionID:   sessionID,
				AIResponse:  response,
				Source:      ports.AdviceSourceReplay,
				PlanPreview: s.previewFor(in),
			}, nil
		}
	}

	// 2. Advice text. Upstream failure is absorbed here; the caller never
	// sees a hard error from this step.
	source := ports.AdviceSourceLLM
	response, err := s.advisor.Generate(ctx, ctype, query)
	if err != nil || strings.TrimSpace(response) == "" {
		if err != nil {
			s.log.Warn().Err(err).Msg("advice generator unavailable, using fallback")
		}
		response = FallbackAdvice(query)
		source = ports.AdviceSourceFallback
	}

	// 3. Session reconciliation.
	session, err := s.resolveSession(ctx, in, ctype, query, response)
	if err != nil {
		return nil, err
	}

	// 4. Transcript: exactly one user message then one ai message per turn.
	if err := s.appendTurn(ctx, session.ID, query, response, in.MoodRating); err != nil {
		return nil, err
	}

	if s.replay != nil && in.Principal.UserID != nil {
		if err := s.replay.Store(ctx, ownerKey, query, session.ID, response); err != nil {
			s.log.Warn().Err(err).Msg("failed to store replay entry")
		}
	}

	return &ports.ConsultResult{
		SessionID:   session.ID,
		AIResponse:  response,
		Source:      source,
		PlanPreview: s.previewFor(in),
	}, nil
}

// resolveSession finds or creates the owning session. Registered users keep
// one rolling session whose latest exchange is overwritten when it changes;
// every guest turn creates a fresh session so anonymous callers never share
// a row.
func (s *ConsultationService) resolveSession(
	ctx context.Context,
	in ports.ConsultInput,
	ctype domain.ConsultationType,
	query, response string,
) (*domain.ConsultationSession, error) {
	if in.Principal.UserID != nil {
		session, err := s.sessions.FindByUser(ctx, *in.Principal.UserID)
		switch {
		case err == nil:
			if session.UserQuery != query || session.AIResponse != response {
				if err := s.sessions.UpdateExchange(ctx, session.ID, query, response); err != nil {
					return nil, fmt.Errorf("update session: %w", err)
				}
				session.UserQuery = query
				session.AIResponse = response
			}
			return session, nil
		case err != domain.ErrSessionNotFound:
			return nil, fmt.Errorf("find session: %w", err)
		}
	}

	created, err := s.sessions.Create(ctx, &domain.ConsultationSession{
		UserID:     in.Principal.UserID,
		UserQuery:  query,
		AIResponse: response,
		Type:       ctype,
		MoodRating: in.MoodRating,
	})
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return created, nil
}

func (s *ConsultationService) appendTurn(ctx context.Context, sessionID int64, query, response string, mood *int) error {
	if _, err := s.messages.Append(ctx, &domain.ConsultationMessage{
		SessionID:  sessionID,
		Type:       domain.MessageUser,
		Content:    query,
		MoodRating: mood,
	}); err != nil {
		return fmt.Errorf("append user message: %w", err)
	}
	if _, err := s.messages.Append(ctx, &domain.ConsultationMessage{
		SessionID: sessionID,
		Type:      domain.MessageAI,
		Content:   response,
	}); err != nil {
		return fmt.Errorf("append ai message: %w", err)
	}
	return nil
}

func (s *ConsultationService) previewFor(in ports.ConsultInput) *ports.PlanPreview {
	// Guests get a plan sketch they can materialise after registering.
	if !in.Principal.IsGuest() {
		return nil
	}
	return BuildPlanPreview(in.Profile)
}

func (s *ConsultationService) ListSessions(ctx context.Context, p domain.Principal) ([]*domain.ConsultationSession, error) {
	if p.UserID == nil {
		return []*domain.ConsultationSession{}, nil
	}
	return s.sessions.ListByUser(ctx, *p.UserID)
}

// principalKey builds the replay-guard owner key.
func principalKey(p domain.Principal) string {
	if p.UserID == nil {
		return "guest"
	}
	return fmt.Sprintf("%s:%d", p.Type, *p.UserID)
}
