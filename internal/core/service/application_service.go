package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/credora/creator-platform/internal/core/domain"
	"github.com/credora/creator-platform/internal/core/ports"
)

// ApplicationService handles creator onboarding review.
type ApplicationService struct {
	repo   ports.ApplicationRepository
	logger zerolog.Logger
}

func NewApplicationService(repo ports.ApplicationRepository, logger zerolog.Logger) *ApplicationService {
	return &ApplicationService{repo: repo, logger: logger}
}

// Submit files a new application in the pending state.
func (s *ApplicationService) Submit(ctx context.Context, in ports.SubmitApplicationInput) (*domain.Application, error) {
	app := &domain.Application{
		CreatorName: in.CreatorName,
		Email:       in.Email,
		Category:    in.Category,
		Followers:   in.Followers,
		Status:      domain.ApplicationPending,
		SubmittedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, app)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("application_id", created.ID).Str("category", created.Category).Msg("application submitted")
	return created, nil
}

// List returns applications, optionally narrowed to one status.
func (s *ApplicationService) List(ctx context.Context, status domain.ApplicationStatus) ([]domain.Application, error) {
	return s.repo.List(ctx, status)
}

// Review advances an application through the review state machine. Approved
// and rejected are terminal; any step outside the machine is rejected.
func (s *ApplicationService) Review(ctx context.Context, in ports.ReviewApplicationInput) (*domain.Application, error) {
	app, err := s.repo.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if !app.Status.CanTransitionTo(in.Status) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, app.Status, in.Status)
	}

	app.Status = in.Status
	app.ReviewedAt = time.Now().UTC()
	if in.Notes != "" {
		app.Notes = in.Notes
	}

	if err := s.repo.UpdateStatus(ctx, app); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("application_id", app.ID).
		Str("status", string(app.Status)).
		Msg("application reviewed")

	return app, nil
}
