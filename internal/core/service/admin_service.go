package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mindfit/wellness-api/internal/core/domain"
	"github.com/mindfit/wellness-api/internal/core/ports"
)

const defaultLoginLogLimit = 200

// AdminService is the back-office surface over accounts and the audit trail.
type AdminService struct {
	users        ports.UserRepository
	sessions     ports.SessionRepository
	plans        ports.PlanRepository
	measurements ports.MeasurementRepository
	assessments  ports.AssessmentRepository
	loginLogs    ports.LoginLogRepository
	logger       zerolog.Logger
}

func NewAdminService(
	users ports.UserRepository,
	sessions ports.SessionRepository,
	plans ports.PlanRepository,
	measurements ports.MeasurementRepository,
	assessments ports.AssessmentRepository,
	loginLogs ports.LoginLogRepository,
	logger zerolog.Logger,
) *AdminService {
	return &AdminService{
		users:        users,
		sessions:     sessions,
		plans:        plans,
		measurements: measurements,
		assessments:  assessments,
		loginLogs:    loginLogs,
		logger:       logger,
	}
}

func (s *AdminService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

func (s *AdminService) ListLoginLogs(ctx context.Context, limit int) ([]*domain.LoginLog, error) {
	if limit <= 0 || limit > defaultLoginLogLimit {
		limit = defaultLoginLogLimit
	}
	return s.loginLogs.ListRecent(ctx, limit)
}

// DeleteUser removes an account and its owned resources. Consultation
// sessions are detached (user_id set to null) rather than deleted, so their
// transcripts survive the account.
func (s *AdminService) DeleteUser(ctx context.Context, userID int64) error {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return err
	}

	if err := s.sessions.DetachUser(ctx, userID); err != nil {
		return fmt.Errorf("detach sessions: %w", err)
	}
	if err := s.plans.DeleteByOwner(ctx, userID); err != nil {
		return fmt.Errorf("delete plans: %w", err)
	}
	if err := s.measurements.DeleteByOwner(ctx, userID); err != nil {
		return fmt.Errorf("delete measurements: %w", err)
	}
	if err := s.assessments.DeleteByOwner(ctx, userID); err != nil {
		return fmt.Errorf("delete assessments: %w", err)
	}
	if err := s.users.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	s.logger.Info().Int64("user_id", userID).Msg("user account deleted")
	return nil
}
