package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/mindfit/wellness-api/internal/core/domain"
	"github.com/mindfit/wellness-api/internal/core/ports"
)

// AuditRecorder accepts login audit entries for asynchronous persistence.
type AuditRecorder interface {
	Record(entry domain.LoginLog)
}

// AuthService implements registration, login, and guest session issuance.
type AuthService struct {
	users  ports.UserRepository
	admins ports.AdminRepository
	tokens *TokenService
	audit  AuditRecorder
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, admins ports.AdminRepository, tokens *TokenService, audit AuditRecorder, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, admins: admins, tokens: tokens, audit: audit, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput, meta ports.ClientMeta) (string, *domain.User, error) {
	username := strings.TrimSpace(in.Username)
	if len(username) < 3 || len(in.Password) < 6 {
		return "", nil, domain.ErrInvalidInput
	}

	// Pre-checks keep the common duplicate path a clean 409; the repository's
	// unique indexes still catch the insert race.
	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return "", nil, domain.ErrUsernameTaken
	}
	if in.Email != "" {
		if _, err := s.users.FindByEmail(ctx, in.Email); err == nil {
			return "", nil, domain.ErrEmailTaken
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:      username,
		PasswordHash:  string(hash),
		Email:         in.Email,
		Phone:         in.Phone,
		Nickname:      in.Nickname,
		AgreedToTerms: in.AgreedToTerms,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(domain.RegisteredPrincipal(created.ID))
	if err != nil {
		return "", nil, err
	}

	s.recordLogin(&created.ID, domain.LoginTypeRegistered, meta)
	s.logger.Info().Int64("user_id", created.ID).Str("username", created.Username).Msg("user registered")

	return token, created, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string, meta ports.ClientMeta) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		// Indistinguishable from a bad password.
		return "", nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(domain.RegisteredPrincipal(user.ID))
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	if err := s.users.UpdateLastLogin(ctx, user.ID, now); err != nil {
		s.logger.Warn().Err(err).Int64("user_id", user.ID).Msg("failed to update last_login")
	}
	user.LastLogin = &now

	s.recordLogin(&user.ID, domain.LoginTypeRegistered, meta)

	return token, user, nil
}

func (s *AuthService) GuestToken(_ context.Context, meta ports.ClientMeta) (string, error) {
	token, err := s.tokens.Issue(domain.GuestPrincipal())
	if err != nil {
		return "", err
	}
	s.recordLogin(nil, domain.LoginTypeGuest, meta)
	return token, nil
}

func (s *AuthService) AdminLogin(ctx context.Context, username, password string, meta ports.ClientMeta) (string, *domain.Admin, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	admin, err := s.admins.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	if !admin.IsActive {
		return "", nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(domain.AdminPrincipal(admin.ID))
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	if err := s.admins.UpdateLastLogin(ctx, admin.ID, now); err != nil {
		s.logger.Warn().Err(err).Int64("admin_id", admin.ID).Msg("failed to update admin last_login")
	}

	s.recordLogin(&admin.ID, domain.LoginTypeAdmin, meta)

	return token, admin, nil
}

func (s *AuthService) recordLogin(userID *int64, loginType string, meta ports.ClientMeta) {
	if s.audit == nil {
		return
	}
	s.audit.Record(domain.LoginLog{
		UserID:    userID,
		LoginType: loginType,
		UserAgent: meta.UserAgent,
		IPAddress: meta.IPAddress,
		LoginTime: time.Now().UTC(),
	})
}
