package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() OrderForm {
	return OrderForm{
		Name:    "Asha Nair",
		Contact: "9876543210",
		Email:   "asha@example.com",
		Address: "14 Lakeview Road, Indiranagar, Bengaluru",
		Pincode: "560038",
	}
}

func TestValidateOrderFormAcceptsValidForm(t *testing.T) {
	errs := ValidateOrderForm(validForm())
	assert.Empty(t, errs)
}

func TestValidateOrderFormContact(t *testing.T) {
	tests := []struct {
		name    string
		contact string
		wantOK  bool
	}{
		{"valid starting with 9", "9876543210", true},
		{"valid starting with 6", "6123456789", true},
		{"starts with 1", "1234567890", false},
		{"contains a letter", "98765432a1", false},
		{"too short", "987654321", false},
		{"too long", "98765432100", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			form.Contact = tt.contact
			errs := ValidateOrderForm(form)
			if tt.wantOK {
				assert.False(t, errs.Has("contact"))
			} else {
				assert.True(t, errs.Has("contact"))
			}
		})
	}
}

func TestValidateOrderFormPincode(t *testing.T) {
	tests := []struct {
		name    string
		pincode string
		wantOK  bool
	}{
		{"six digits", "400001", true},
		{"five digits", "40001", false},
		{"seven digits", "4000011", false},
		{"letters", "40000a", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			form.Pincode = tt.pincode
			errs := ValidateOrderForm(form)
			if tt.wantOK {
				assert.False(t, errs.Has("pincode"))
			} else {
				assert.True(t, errs.Has("pincode"))
			}
		})
	}
}

func TestValidateOrderFormEmail(t *testing.T) {
	tests := []struct {
		name   string
		email  string
		wantOK bool
	}{
		{"plain address", "asha@example.com", true},
		{"missing at", "asha.example.com", false},
		{"missing domain dot", "asha@example", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			form.Email = tt.email
			errs := ValidateOrderForm(form)
			if tt.wantOK {
				assert.False(t, errs.Has("email"))
			} else {
				assert.True(t, errs.Has("email"))
			}
		})
	}
}

func TestValidateOrderFormNameAndAddress(t *testing.T) {
	form := validForm()
	form.Name = " A "
	form.Address = "   short   "
	errs := ValidateOrderForm(form)
	assert.True(t, errs.Has("name"))
	assert.True(t, errs.Has("address"))
}

func TestValidateOrderFormReportsEveryFailingField(t *testing.T) {
	errs := ValidateOrderForm(OrderForm{})
	require.Len(t, errs, 5)
	for _, field := range []string{"name", "contact", "email", "address", "pincode"} {
		assert.True(t, errs.Has(field), "expected error for field %s", field)
	}
}
