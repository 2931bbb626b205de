package service

import (
	"context"

	"github.com/mindfit/wellness-api/internal/core/domain"
	"github.com/mindfit/wellness-api/internal/core/ports"
)

// ProfileService exposes a registered user's own profile. A token referencing
// a deleted account fails here with ErrUserNotFound, which the transport
// layer treats as an authorization failure.
type ProfileService struct {
	users ports.UserRepository
}

func NewProfileService(users ports.UserRepository) *ProfileService {
	return &ProfileService{users: users}
}

func (s *ProfileService) Get(ctx context.Context, userID int64) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *ProfileService) Update(ctx context.Context, userID int64, patch ports.UserProfilePatch) (*domain.User, error) {
	if patch.Gender != nil && *patch.Gender != "" {
		switch *patch.Gender {
		case domain.GenderMale, domain.GenderFemale, domain.GenderOther:
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	if patch.Age != nil && (*patch.Age < 0 || *patch.Age > 150) {
		return nil, domain.ErrInvalidInput
	}
	return s.users.UpdateProfile(ctx, userID, patch)
}
