package checkout

import (
	"regexp"
	"strings"

	"github.com/curiokart/CurioKart/utils"
)

// OrderForm holds the recipient and delivery details collected before any
// payment step. It is created fresh per checkout attempt and never persisted
// until the order is placed.
type OrderForm struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Pincode string `json:"pincode"`
}

var (
	contactRegex = regexp.MustCompile(`^[6-9]\d{9}$`)
	emailRegex   = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	pincodeRegex = regexp.MustCompile(`^\d{6}$`)
)

// ValidateOrderForm checks every field and returns one error per failing
// field so the client can surface and clear them individually. An empty
// result means the form may proceed to payment. No network call happens here.
func ValidateOrderForm(form OrderForm) utils.FieldValidationErrors {
	var errs utils.FieldValidationErrors

	if len(strings.TrimSpace(form.Name)) < 2 {
		errs = append(errs, utils.FieldValidationError{
			Field:   "name",
			Message: "Name must be at least 2 characters long",
		})
	}

	if !contactRegex.MatchString(form.Contact) {
		errs = append(errs, utils.FieldValidationError{
			Field:   "contact",
			Message: "Contact must be a 10-digit mobile number starting with 6, 7, 8, or 9",
		})
	}

	if !emailRegex.MatchString(form.Email) {
		errs = append(errs, utils.FieldValidationError{
			Field:   "email",
			Message: "Please enter a valid email address",
		})
	}

	if len(strings.TrimSpace(form.Address)) < 10 {
		errs = append(errs, utils.FieldValidationError{
			Field:   "address",
			Message: "Address must be at least 10 characters long",
		})
	}

	if !pincodeRegex.MatchString(form.Pincode) {
		errs = append(errs, utils.FieldValidationError{
			Field:   "pincode",
			Message: "Pincode must be exactly 6 digits",
		})
	}

	return errs
}
