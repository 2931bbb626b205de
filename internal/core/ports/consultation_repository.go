package ports

import (
	"context"

	"github.com/mindfit/wellness-api/internal/core/domain"
)

// SessionRepository defines persistence for consultation sessions.
type SessionRepository interface {
	Create(ctx context.Context, s *domain.ConsultationSession) (*domain.ConsultationSession, error)
	// FindByUser returns the user's open session, or domain.ErrSessionNotFound.
	// Guest sessions are never looked up by owner; each guest turn gets a
	// fresh session row.
	FindByUser(ctx context.Context, userID int64) (*domain.ConsultationSession, error)
	FindByID(ctx context.Context, id int64) (*domain.ConsultationSession, error)
	// UpdateExchange overwrites the session's latest query/response pair.
	UpdateExchange(ctx context.Context, id int64, query, response string) error
	// ListByUser returns the user's sessions, newest first.
	ListByUser(ctx context.Context, userID int64) ([]*domain.ConsultationSession, error)
	// DetachUser nulls user_id on all sessions owned by the user, preserving
	// them after account deletion.
	DetachUser(ctx context.Context, userID int64) error
}

// MessageRepository persists the append-only session transcript.
type MessageRepository interface {
	Append(ctx context.Context, m *domain.ConsultationMessage) (*domain.ConsultationMessage, error)
	ListBySession(ctx context.Context, sessionID int64) ([]*domain.ConsultationMessage, error)
}
