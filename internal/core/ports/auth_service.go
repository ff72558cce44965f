package ports

import (
	"context"

	"github.com/geoyouth/league-api/internal/core/domain"
)

// AuthService implements registration and login, returning a signed bearer
// token alongside the user on success.
type AuthService interface {
	Register(ctx context.Context, email, password, role string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
