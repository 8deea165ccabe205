package ports

import (
	"context"

	"github.com/credora/creator-platform/internal/core/domain"
)

// SubmitApplicationInput is a prospective creator's join request.
type SubmitApplicationInput struct {
	CreatorName string
	Email       string
	Category    string
	Followers   int64
}

// ReviewApplicationInput moves an application through the review machine.
type ReviewApplicationInput struct {
	ID     string
	Status domain.ApplicationStatus
	Notes  string
}

// ApplicationService handles creator onboarding review.
type ApplicationService interface {
	Submit(ctx context.Context, in SubmitApplicationInput) (*domain.Application, error)
	List(ctx context.Context, status domain.ApplicationStatus) ([]domain.Application, error)
	Review(ctx context.Context, in ReviewApplicationInput) (*domain.Application, error)
}

// ApplicationRepository persists applications.
type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) (*domain.Application, error)
	FindByID(ctx context.Context, id string) (*domain.Application, error)
	List(ctx context.Context, status domain.ApplicationStatus) ([]domain.Application, error)
	UpdateStatus(ctx context.Context, app *domain.Application) error
}
