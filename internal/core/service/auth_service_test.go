package service

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/geoyouth/league-api/internal/core/domain"
)

type stubAuthRepo struct {
	users  map[string]*domain.User
	nextID int64
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{users: make(map[string]*domain.User), nextID: 1}
}

func (r *stubAuthRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrEmailExists
	}
	created := *user
	created.UserID = r.nextID
	r.nextID++
	r.users[created.Email] = &created
	return &created, nil
}

func (r *stubAuthRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func newTestAuthService() (*AuthService, *stubAuthRepo, *TokenIssuer) {
	repo := newStubAuthRepo()
	tokens := NewTokenIssuer("secret", time.Hour)
	return NewAuthService(repo, tokens), repo, tokens
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, repo, tokens := newTestAuthService()

	token, user, err := svc.Register(context.Background(), "alice@example.com", "pw123456", "")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected default role user, got %q", user.Role)
	}

	stored := repo.users["alice@example.com"]
	if stored.PasswordHash == "pw123456" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pw123456")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	claims, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.UserID != user.UserID || claims.Role != domain.RoleUser {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc, _, _ := newTestAuthService()

	if _, _, err := svc.Register(context.Background(), "", "pw123456", ""); err != domain.ErrMissingFields {
		t.Fatalf("expected ErrMissingFields for empty email, got %v", err)
	}
	if _, _, err := svc.Register(context.Background(), "a@x.com", "", ""); err != domain.ErrMissingFields {
		t.Fatalf("expected ErrMissingFields for empty password, got %v", err)
	}
	if _, _, err := svc.Register(context.Background(), "a@x.com", "pw123456", "superuser"); err != domain.ErrMissingFields {
		t.Fatalf("expected ErrMissingFields for bad role, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, _, _ := newTestAuthService()

	if _, _, err := svc.Register(context.Background(), "bob@example.com", "pw123456", ""); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, _, err := svc.Register(context.Background(), "bob@example.com", "different", ""); err != domain.ErrEmailExists {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _, tokens := newTestAuthService()

	_, registered, err := svc.Register(context.Background(), "carol@example.com", "s3cret99", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol@example.com", "s3cret99")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.UserID != registered.UserID {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if claims.UserID != registered.UserID || claims.Role != domain.RoleAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Login_EnumerationResistance(t *testing.T) {
	svc, _, _ := newTestAuthService()

	if _, _, err := svc.Register(context.Background(), "dave@example.com", "pw123456", ""); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, _, wrongPassword := svc.Login(context.Background(), "dave@example.com", "not-the-password")
	_, _, unknownEmail := svc.Login(context.Background(), "nobody@example.com", "pw123456")

	if wrongPassword != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", wrongPassword)
	}
	if unknownEmail != wrongPassword {
		t.Fatalf("wrong password and unknown email must be indistinguishable: %v vs %v", wrongPassword, unknownEmail)
	}
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	svc, _, _ := newTestAuthService()

	if _, _, err := svc.Login(context.Background(), "", "pw123456"); err != domain.ErrMissingFields {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "a@x.com", ""); err != domain.ErrMissingFields {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}
