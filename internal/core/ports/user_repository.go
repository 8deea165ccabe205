package ports

import (
	"context"

	"github.com/credora/creator-platform/internal/core/domain"
)

// UserRepository persists registered accounts.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
