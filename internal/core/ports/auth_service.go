package ports

import (
	"context"

	"github.com/mindfit/wellness-api/internal/core/domain"
)

// ClientMeta carries request metadata recorded in the login audit trail.
type ClientMeta struct {
	UserAgent string
	IPAddress string
}

// RegisterInput carries the fields accepted at registration.
type RegisterInput struct {
	Username      string
	Password      string
	Email         string
	Phone         string
	Nickname      string
	AgreedToTerms bool
}

// AuthService implements registration, login, and guest session issuance.
// Every successful call emits a login audit record.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput, meta ClientMeta) (string, *domain.User, error)
	Login(ctx context.Context, username, password string, meta ClientMeta) (string, *domain.User, error)
	// GuestToken issues a short-lived anonymous token; no user row is created.
	GuestToken(ctx context.Context, meta ClientMeta) (string, error)
	AdminLogin(ctx context.Context, username, password string, meta ClientMeta) (string, *domain.Admin, error)
}
