package ports

import (
	"context"

	"github.com/skillshare/skillshare-api/internal/core/domain"
)

// RegisterInput carries the fully accumulated registration draft.
// The transport layer has already run schema validation; the service only
// re-checks the invariants it owns (role values, password presence).
type RegisterInput struct {
	Role         string
	ProviderType string

	FirstName string
	LastName  string
	Email     string
	Mobile    string

	CompanyName            string
	BusinessTaxNumber      string
	RepresentativeFullName string
	PhoneNumber            string

	AddressStreet   string
	AddressCity     string
	AddressState    string
	AddressPostCode string

	Password string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login exchanges credentials for a signed session token. The token
	// carries {sub, role, iat, exp} and expires after the configured TTL.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
