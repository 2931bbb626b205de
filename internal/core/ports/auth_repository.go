package ports

import (
	"context"
	"time"

	"github.com/mindfit/wellness-api/internal/core/domain"
)

// UserProfilePatch carries the editable profile fields. Nil means "leave
// unchanged"; an empty value clears the field.
type UserProfilePatch struct {
	Nickname      *string
	Email         *string
	Phone         *string
	AvatarURL     *string
	Hobbies       *[]string
	Gender        *string
	Age           *int
	BirthDate     *time.Time
	AgreedToTerms *bool
}

// UserRepository defines persistence for registered users.
type UserRepository interface {
	// Create inserts a user and returns it with its assigned id. Duplicate
	// username/email map to domain.ErrUsernameTaken / domain.ErrEmailTaken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error
	UpdateProfile(ctx context.Context, id int64, patch UserProfilePatch) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Delete(ctx context.Context, id int64) error
}

// AdminRepository defines persistence for admin accounts.
type AdminRepository interface {
	Create(ctx context.Context, admin *domain.Admin) (*domain.Admin, error)
	FindByUsername(ctx context.Context, username string) (*domain.Admin, error)
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error
}

// LoginLogRepository persists the append-only login audit trail.
type LoginLogRepository interface {
	Insert(ctx context.Context, entry *domain.LoginLog) error
	// ListRecent returns the newest entries first, at most limit rows.
	ListRecent(ctx context.Context, limit int) ([]*domain.LoginLog, error)
}
