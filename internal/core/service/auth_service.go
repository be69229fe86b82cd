package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/skillshare/skillshare-api/internal/core/domain"
	"github.com/skillshare/skillshare-api/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	repo      ports.AuthRepository
	activity  ports.ActivityRecorder
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(repo ports.AuthRepository, activity ports.ActivityRecorder, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &AuthService{repo: repo, activity: activity, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if !domain.ValidRole(input.Role) {
		return nil, domain.ErrInvalidCredentials
	}
	if input.Role == domain.RoleProvider &&
		input.ProviderType != domain.ProviderIndividual && input.ProviderType != domain.ProviderCompany {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Role:            input.Role,
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		Email:           input.Email,
		PasswordHash:    string(hash),
		Mobile:          input.Mobile,
		AddressStreet:   input.AddressStreet,
		AddressCity:     input.AddressCity,
		AddressState:    input.AddressState,
		AddressPostCode: input.AddressPostCode,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if input.Role == domain.RoleProvider {
		user.ProviderType = input.ProviderType
	}
	if input.Role == domain.RoleProvider && input.ProviderType == domain.ProviderCompany {
		user.CompanyName = input.CompanyName
		user.BusinessTaxNumber = input.BusinessTaxNumber
		user.RepresentativeFullName = input.RepresentativeFullName
		user.PhoneNumber = input.PhoneNumber
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.record(domain.ActivityEvent{
		ActorID:   created.ID,
		Role:      created.Role,
		Action:    "auth.register",
		EntityID:  created.ID,
		Timestamp: now,
	})
	return created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	s.record(domain.ActivityEvent{
		ActorID:   user.ID,
		Role:      user.Role,
		Action:    "auth.login",
		EntityID:  user.ID,
		Timestamp: time.Now().UTC(),
	})
	return token, user, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func (s *AuthService) record(event domain.ActivityEvent) {
	if s.activity != nil {
		s.activity.Record(event)
	}
}
