package domain

import "time"

// ConsultationType classifies what kind of advice a session is about.
type ConsultationType string

const (
	ConsultPsychological ConsultationType = "psychological"
	ConsultSportsAdvice  ConsultationType = "sports_advice"
	ConsultComprehensive ConsultationType = "comprehensive"
)

// Valid reports whether t is a known consultation type.
func (t ConsultationType) Valid() bool {
	switch t {
	case ConsultPsychological, ConsultSportsAdvice, ConsultComprehensive:
		return true
	}
	return false
}

// ConsultationSession anchors one owner's latest consultation exchange.
// UserID is nil for guest-created sessions and is set to nil again when the
// owning user is deleted, so session history outlives accounts.
type ConsultationSession struct {
	ID         int64            `json:"session_id"`
	UserID     *int64           `json:"user_id,omitempty"`
	Title      string           `json:"session_title,omitempty"`
	UserQuery  string           `json:"user_query"`
	AIResponse string           `json:"ai_response"`
	Type       ConsultationType `json:"consultation_type"`
	MoodRating *int             `json:"mood_rating,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
}

// MessageType distinguishes the two halves of a consultation turn.
type MessageType string

const (
	MessageUser MessageType = "user"
	MessageAI   MessageType = "ai"
)

// ConsultationMessage is one append-only entry in a session's transcript.
// A turn always appends exactly one user message followed by one ai message.
type ConsultationMessage struct {
	ID         int64       `json:"message_id"`
	SessionID  int64       `json:"session_id"`
	Type       MessageType `json:"message_type"`
	Content    string      `json:"content"`
	MoodRating *int        `json:"mood_rating,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
}
