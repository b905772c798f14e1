package checkout

import (
	"fmt"

	"github.com/curiokart/CurioKart/cart"
)

// State is a named step of the checkout wizard. The flow is an explicit state
// machine so illegal jumps (such as placing an order before the gateway
// result arrives) fail at the transition instead of leaking through UI flags.
type State string

const (
	StateCollectingDetails     State = "collecting_details"
	StateReviewingPayment      State = "reviewing_payment"
	StateAwaitingGatewayResult State = "awaiting_gateway_result"
	StatePlaced                State = "placed"
)

// TransitionError reports a checkout operation attempted in the wrong state.
type TransitionError struct {
	From State
	Op   string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s while checkout is in state %q", e.Op, e.From)
}

// Draft is one checkout attempt. It lives in the caller's session so that
// back navigation never discards entered data. Each attempt is independent
// per browser session.
type Draft struct {
	ID              string // idempotent reference handed to the gateway
	State           State
	Form            OrderForm
	PaymentMethod   string
	Amounts         Amounts
	Lines           []cart.Line // snapshot the amounts were computed from
	RazorpayOrderID string
}

// NewDraft starts a checkout attempt at the details step.
func NewDraft(id string) *Draft {
	return &Draft{ID: id, State: StateCollectingDetails}
}

// SubmitDetails records a validated form and advances to payment review.
// Re-submitting from the details step after a Back keeps the flow valid.
func (d *Draft) SubmitDetails(form OrderForm) error {
	if d.State != StateCollectingDetails {
		return &TransitionError{From: d.State, Op: "submit details"}
	}
	d.Form = form
	d.State = StateReviewingPayment
	return nil
}

// Back returns from payment review to the details step without clearing
// entered fields.
func (d *Draft) Back() error {
	if d.State != StateReviewingPayment {
		return &TransitionError{From: d.State, Op: "go back"}
	}
	d.State = StateCollectingDetails
	return nil
}

// OpenGateway fixes the payment method, the amounts and the cart snapshot
// they were computed from, and moves to awaiting the gateway result. The
// placed order is built from this snapshot, so cart mutations from another
// view during the gateway round trip cannot desync items from the total.
func (d *Draft) OpenGateway(method string, amounts Amounts, lines []cart.Line, razorpayOrderID string) error {
	if d.State != StateReviewingPayment {
		return &TransitionError{From: d.State, Op: "open payment gateway"}
	}
	d.PaymentMethod = method
	d.Amounts = amounts
	d.Lines = lines
	d.RazorpayOrderID = razorpayOrderID
	d.State = StateAwaitingGatewayResult
	return nil
}

// Complete marks the attempt placed after successful verification.
func (d *Draft) Complete() error {
	if d.State != StateAwaitingGatewayResult {
		return &TransitionError{From: d.State, Op: "complete checkout"}
	}
	d.State = StatePlaced
	return nil
}

// Fail returns to payment review after a gateway cancellation or a failed
// verification, preserving the entered form data.
func (d *Draft) Fail() error {
	if d.State != StateAwaitingGatewayResult {
		return &TransitionError{From: d.State, Op: "record payment failure"}
	}
	d.Lines = nil
	d.RazorpayOrderID = ""
	d.State = StateReviewingPayment
	return nil
}
