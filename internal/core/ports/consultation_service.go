package ports

import (
	"context"

	"github.com/mindfit/wellness-api/internal/core/domain"
)

// ProfileHints are optional body stats a guest can attach to a consultation
// so the plan preview is tailored without any persisted profile.
type ProfileHints struct {
	Age    *int
	Gender string
	Weight *float64
	Height *float64
	Goals  []string
}

// PlanSession is one workout slot in a plan preview week.
type PlanSession struct {
	Day       string `json:"day"`
	Type      string `json:"type"`
	Minutes   int    `json:"minutes"`
	Intensity string `json:"intensity"`
}

// PlanWeek groups a week's sessions in a plan preview.
type PlanWeek struct {
	Week     int           `json:"week"`
	Sessions []PlanSession `json:"sessions"`
}

// MixSlice is one entry of the training-mix breakdown (percentages).
type MixSlice struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// PlanPreview is a non-persisted exercise plan sketch shown to guests; a
// registered user can later materialise a real plan from their session.
type PlanPreview struct {
	Summary        string     `json:"summary"`
	Weeks          int        `json:"weeks"`
	Schedule       []PlanWeek `json:"schedule"`
	CaloriesTarget int        `json:"calories_target"`
	Mix            []MixSlice `json:"mix"`
}

// ConsultInput carries one consultation turn.
type ConsultInput struct {
	Principal  domain.Principal
	Query      string
	Type       domain.ConsultationType
	MoodRating *int
	Profile    *ProfileHints
}

// Advice sources reported on consultation results.
const (
	AdviceSourceLLM      = "llm"
	AdviceSourceFallback = "fallback"
	AdviceSourceReplay   = "replay"
)

// ConsultResult is returned for every successful consultation turn. Source
// records where the advice text came from (upstream model, local fallback,
// or a replayed recent submission).
type ConsultResult struct {
	SessionID   int64
	AIResponse  string
	Source      string
	PlanPreview *PlanPreview
}

// ConsultationService turns one user utterance into a persisted exchange.
type ConsultationService interface {
	Consult(ctx context.Context, in ConsultInput) (*ConsultResult, error)
	// ListSessions returns the caller's sessions, newest first. Guests own no
	// persisted history and always get an empty slice.
	ListSessions(ctx context.Context, p domain.Principal) ([]*domain.ConsultationSession, error)
}

// AdviceGenerator produces advice text for a consultation query. The LLM
// client implements it; failures are absorbed by the orchestrator's fallback.
type AdviceGenerator interface {
	Generate(ctx context.Context, consultationType domain.ConsultationType, query string) (string, error)
}
