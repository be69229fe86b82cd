package domain

import (
	"errors"
	"time"
)

const (
	RoleUser     = "user"
	RoleProvider = "provider"
)

const (
	ProviderIndividual = "individual"
	ProviderCompany    = "company"
)

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrForbidden = errors.New("access forbidden")

// ValidRole reports whether r is a role the platform knows about.
func ValidRole(r string) bool {
	return r == RoleUser || r == RoleProvider
}

// User models a registered actor: either a task-posting user or a
// skill-listing provider. Providers are further split into individuals
// and companies; the company-only fields are empty for everyone else.
type User struct {
	ID           string    `json:"id"`
	Role         string    `json:"role"`
	ProviderType string    `json:"type,omitempty"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Mobile       string    `json:"mobile"`

	// Company-only identity. The representative field keeps the wire
	// spelling used by existing clients.
	CompanyName            string `json:"company_name,omitempty"`
	BusinessTaxNumber      string `json:"business_tax_number,omitempty"`
	RepresentativeFullName string `json:"represntative_full_name,omitempty"`
	PhoneNumber            string `json:"phone_number,omitempty"`

	AddressStreet   string `json:"address_street"`
	AddressCity     string `json:"address_city"`
	AddressState    string `json:"address_state"`
	AddressPostCode string `json:"address_post_code"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
