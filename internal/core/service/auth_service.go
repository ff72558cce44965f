package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/geoyouth/league-api/internal/core/domain"
	"github.com/geoyouth/league-api/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	repo   ports.AuthRepository
	tokens *TokenIssuer
}

func NewAuthService(repo ports.AuthRepository, tokens *TokenIssuer) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// Register hashes the password, inserts the user and issues a token for the
// new identity. Email uniqueness is enforced by the store at insert time;
// a conflict surfaces as domain.ErrEmailExists.
func (s *AuthService) Register(ctx context.Context, email, password, role string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrMissingFields
	}
	if role == "" {
		role = domain.RoleUser
	}
	if role != domain.RoleUser && role != domain.RoleAdmin {
		return "", nil, domain.ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(created.UserID, created.Role)
	if err != nil {
		return "", nil, err
	}
	return token, created, nil
}

// Login verifies the credentials and issues a token. An unknown email and a
// wrong password both return domain.ErrInvalidCredentials so the two cases
// are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrMissingFields
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.UserID, user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
