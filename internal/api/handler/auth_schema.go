package handler

import "github.com/skillshare/skillshare-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// registerRequest carries the fully accumulated registration wizard draft.
// The conditional rules mirror the wizard steps: provider type is required
// only for providers, the company block only for company providers. The
// representative field keeps the wire spelling used by existing clients.
type registerRequest struct {
	Role      string `json:"role"       validate:"required,oneof=user provider"`
	Type      string `json:"type"       validate:"required_if=Role provider,omitempty,oneof=individual company"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
	Email     string `json:"email"      validate:"required,email"`
	Mobile    string `json:"mobile"     validate:"required,numeric,min=10"`

	CompanyName            string `json:"company_name"            validate:"required_if=Role provider Type company"`
	BusinessTaxNumber      string `json:"business_tax_number"     validate:"required_if=Role provider Type company,omitempty,numeric,len=9"`
	RepresentativeFullName string `json:"represntative_full_name" validate:"required_if=Role provider Type company"`
	PhoneNumber            string `json:"phone_number"            validate:"required_if=Role provider Type company,omitempty,min=10,max=16"`

	AddressStreet   string `json:"address_street"    validate:"required"`
	AddressCity     string `json:"address_city"      validate:"required"`
	AddressState    string `json:"address_state"     validate:"required"`
	AddressPostCode string `json:"address_post_code" validate:"required,numeric,len=6"`

	Password        string `json:"password"         validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}
