package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/skillshare/skillshare-api/internal/core/domain"
	"github.com/skillshare/skillshare-api/internal/core/ports"
)

type stubAuthRepo struct {
	users map[string]*domain.User
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubAuthRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		copy.ID = user.Email
	}
	r.users[copy.Email] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubAuthRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func userDraft(email string) ports.RegisterInput {
	return ports.RegisterInput{
		Role:            domain.RoleUser,
		FirstName:       "Alice",
		LastName:        "Doe",
		Email:           email,
		Mobile:          "0412345678",
		AddressStreet:   "1 Main St",
		AddressCity:     "Sydney",
		AddressState:    "NSW",
		AddressPostCode: "200012",
		Password:        "pass123",
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, nil, "secret", time.Hour)

	user, err := svc.Register(context.Background(), userDraft("alice@example.com"))
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user == nil {
		t.Fatalf("expected user, got nil")
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("unexpected role: %s", user.Role)
	}
}

func TestAuthService_Register_CompanyFieldsScopedToCompanyProviders(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, nil, "secret", time.Hour)

	draft := userDraft("bob@example.com")
	draft.Role = domain.RoleProvider
	draft.ProviderType = domain.ProviderIndividual
	draft.CompanyName = "Leftover Co" // filled before the subtype was toggled away

	user, err := svc.Register(context.Background(), draft)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.CompanyName != "" {
		t.Fatalf("company fields should be dropped for individual providers, got %q", user.CompanyName)
	}

	draft = userDraft("corp@example.com")
	draft.Role = domain.RoleProvider
	draft.ProviderType = domain.ProviderCompany
	draft.CompanyName = "Acme Pty Ltd"
	draft.BusinessTaxNumber = "123456789"
	draft.RepresentativeFullName = "Jane Roe"
	draft.PhoneNumber = "+61298765432"

	user, err = svc.Register(context.Background(), draft)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.CompanyName != "Acme Pty Ltd" || user.BusinessTaxNumber != "123456789" {
		t.Fatalf("company fields not persisted: %+v", user)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, nil, "secret", time.Hour)

	draft := userDraft("")
	if _, err := svc.Register(context.Background(), draft); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for empty email, got %v", err)
	}

	draft = userDraft("bad@example.com")
	draft.Role = "admin"
	if _, err := svc.Register(context.Background(), draft); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for bad role, got %v", err)
	}

	draft = userDraft("bad2@example.com")
	draft.Role = domain.RoleProvider
	draft.ProviderType = "collective"
	if _, err := svc.Register(context.Background(), draft); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for bad provider type, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, nil, "secret", time.Hour)

	_, _ = svc.Register(context.Background(), userDraft("bob@example.com"))
	if _, err := svc.Register(context.Background(), userDraft("bob@example.com")); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, nil, "secret", time.Hour)

	draft := userDraft("carol@example.com")
	draft.Role = domain.RoleProvider
	draft.ProviderType = domain.ProviderIndividual
	if _, err := svc.Register(context.Background(), draft); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol@example.com", "pass123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Email != "carol@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["role"] != domain.RoleProvider {
		t.Fatalf("expected role %s, got %v", domain.RoleProvider, claims["role"])
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		t.Fatalf("expected exp claim, got %v", claims["exp"])
	}
	ttl := time.Until(time.Unix(int64(exp), 0))
	if ttl < 55*time.Minute || ttl > 65*time.Minute {
		t.Fatalf("expected ~1h expiry window, got %v", ttl)
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, nil, "secret", time.Hour)

	_, _ = svc.Register(context.Background(), userDraft("dave@example.com"))
	if _, _, err := svc.Login(context.Background(), "dave@example.com", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_EmptyFields(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, nil, "secret", time.Hour)

	if _, _, err := svc.Login(context.Background(), "dave@example.com", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for empty password, got %v", err)
	}
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, nil, "secret", time.Hour)

	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "pass"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
