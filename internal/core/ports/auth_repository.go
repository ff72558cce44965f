package ports

import (
	"context"

	"github.com/geoyouth/league-api/internal/core/domain"
)

// AuthRepository defines the interface for user persistence.
//
// Create must be a single atomic insert: when the email is already taken the
// store's uniqueness constraint fires and the implementation returns
// domain.ErrEmailExists. There is no read-before-write existence check.
type AuthRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
