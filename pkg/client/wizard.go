package client

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Draft is the registration record accumulated across the wizard steps.
// Wire names match the API's register endpoint, including the historical
// spelling of the representative field.
type Draft struct {
	Role string `json:"role" validate:"required,oneof=user provider"`
	Type string `json:"type,omitempty" validate:"required_if=Role provider,omitempty,oneof=individual company"`

	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Mobile    string `json:"mobile" validate:"required,numeric,min=10"`

	CompanyName            string `json:"company_name,omitempty" validate:"required_if=Role provider Type company"`
	BusinessTaxNumber      string `json:"business_tax_number,omitempty" validate:"required_if=Role provider Type company,omitempty,numeric,len=9"`
	RepresentativeFullName string `json:"represntative_full_name,omitempty" validate:"required_if=Role provider Type company"`
	PhoneNumber            string `json:"phone_number,omitempty" validate:"required_if=Role provider Type company"`

	AddressStreet   string `json:"address_street" validate:"required"`
	AddressCity     string `json:"address_city" validate:"required"`
	AddressState    string `json:"address_state" validate:"required"`
	AddressPostCode string `json:"address_post_code" validate:"required,numeric,len=6"`

	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

// stepFields maps each wizard step to the draft fields it owns. Fields
// belonging to later steps are not constrained until their step validates.
var stepFields = [][]string{
	{
		"Role", "Type", "FirstName", "LastName", "Email", "Mobile",
		"CompanyName", "BusinessTaxNumber", "RepresentativeFullName", "PhoneNumber",
	},
	{"AddressStreet", "AddressCity", "AddressState", "AddressPostCode"},
	{"Password", "ConfirmPassword"},
}

// NumSteps is the number of wizard steps: identity, address, credentials.
const NumSteps = 3

// Wizard drives the multi-step registration flow. Step advances only when
// the current step's fields validate under the draft's current role and
// subtype; going back never re-validates.
type Wizard struct {
	draft    Draft
	step     int
	validate *validator.Validate
}

func NewWizard() *Wizard {
	return &Wizard{validate: validator.New()}
}

// Step returns the current step index, 0..NumSteps-1.
func (w *Wizard) Step() int {
	return w.step
}

// Draft exposes the accumulating record for field entry.
func (w *Wizard) Draft() *Draft {
	return &w.draft
}

// Next validates the current step's fields. On failure the step does not
// change and the error carries the field messages. On success the wizard
// advances; at the last step it stays put and returns done=true, handing
// the completed draft to the confirmation flow.
func (w *Wizard) Next() (done bool, err error) {
	if err := w.validateStep(w.step); err != nil {
		return false, err
	}
	if w.step == NumSteps-1 {
		return true, nil
	}
	w.step++
	return false, nil
}

// Back moves to the previous step. Values already entered are kept and
// are not re-checked until Next is pressed again.
func (w *Wizard) Back() {
	if w.step > 0 {
		w.step--
	}
}

func (w *Wizard) validateStep(step int) error {
	err := w.validate.StructPartial(w.draft, stepFields[step]...)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		msgs := make([]string, 0, len(ve))
		for _, fe := range ve {
			msgs = append(msgs, draftFieldError(fe))
		}
		return fmt.Errorf("%s", strings.Join(msgs, "; "))
	}
	return err
}

func draftFieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required", "required_if":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "eqfield":
		return field + " must match " + strings.ToLower(fe.Param())
	case "numeric":
		return field + " must be numeric"
	case "len":
		return fmt.Sprintf("%s must be %s characters", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
