package checkout

import (
	"errors"

	"github.com/curiokart/CurioKart/models"
	"github.com/curiokart/CurioKart/utils"
)

// Amounts is the settlement breakdown for a chosen payment method, computed
// at checkout time. All values are paise. Shipping is always free.
type Amounts struct {
	Subtotal        int64 `json:"subtotal"`
	AmountDueNow    int64 `json:"amount_due_now"`
	AmountOwedLater int64 `json:"amount_owed_later"`
	TotalAmount     int64 `json:"total_amount"`
}

// ErrEmptyCart is returned when amount computation is attempted with nothing
// in the cart; a zero-amount gateway payment must never be initiated.
var ErrEmptyCart = errors.New("cart is empty")

// ErrInvalidMethod is returned for a payment method outside the two variants.
var ErrInvalidMethod = errors.New("invalid payment method")

// ComputeAmounts returns what to charge right now and what remains owed for
// the given strategy. Under partial_cod the deposit is an additional charge
// on top of the subtotal, not a credit against it; the recorded order total
// grows by the deposit. This mirrors the storefront's observed behavior.
func ComputeAmounts(subtotal int64, method string) (Amounts, error) {
	if subtotal <= 0 {
		return Amounts{}, ErrEmptyCart
	}
	switch method {
	case models.PaymentMethodFullOnline:
		return Amounts{
			Subtotal:        subtotal,
			AmountDueNow:    subtotal,
			AmountOwedLater: 0,
			TotalAmount:     subtotal,
		}, nil
	case models.PaymentMethodPartialCOD:
		return Amounts{
			Subtotal:        subtotal,
			AmountDueNow:    utils.PartialCODDeposit,
			AmountOwedLater: subtotal,
			TotalAmount:     subtotal + utils.PartialCODDeposit,
		}, nil
	default:
		return Amounts{}, ErrInvalidMethod
	}
}
