package payment

// Outcome is the terminal result of one hosted-checkout round trip.
type Outcome string

const (
	// OutcomeSuccess means the buyer completed payment and the gateway
	// returned a callback payload. Success is not "paid" - the payload must
	// still pass signature verification.
	OutcomeSuccess Outcome = "success"
	// OutcomeCancelled means the buyer dismissed the hosted checkout.
	OutcomeCancelled Outcome = "cancelled"
	// OutcomeFailed means the gateway or transport reported an error.
	OutcomeFailed Outcome = "failed"
)

// Callback carries the opaque strings the gateway returns after the buyer
// completes payment. It exists only transiently between the gateway callback
// and the verification call.
type Callback struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

// Result is the tagged outcome of a hosted-checkout attempt, so calling code
// can handle the three cases exhaustively instead of juggling raw callbacks.
type Result struct {
	Outcome  Outcome
	Callback Callback
	Reason   string
}

// Succeeded returns a Result carrying the gateway callback payload.
func Succeeded(callback Callback) Result {
	return Result{Outcome: OutcomeSuccess, Callback: callback}
}

// Cancelled returns the distinct user-cancellation result.
func Cancelled() Result {
	return Result{Outcome: OutcomeCancelled, Reason: "Payment was cancelled"}
}

// Failed returns a failure result with the underlying message.
func Failed(reason string) Result {
	return Result{Outcome: OutcomeFailed, Reason: reason}
}
