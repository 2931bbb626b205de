package ports

import (
	"context"

	"github.com/mindfit/wellness-api/internal/core/domain"
)

// ProfileService exposes a registered user's own profile.
type ProfileService interface {
	Get(ctx context.Context, userID int64) (*domain.User, error)
	Update(ctx context.Context, userID int64, patch UserProfilePatch) (*domain.User, error)
}

// AdminService is the back-office surface over accounts and the audit trail.
type AdminService interface {
	ListUsers(ctx context.Context) ([]*domain.User, error)
	ListLoginLogs(ctx context.Context, limit int) ([]*domain.LoginLog, error)
	// DeleteUser removes the account and its owned resources; the user's
	// consultation sessions survive with user_id set to null.
	DeleteUser(ctx context.Context, userID int64) error
}
