package utils

// Application constants
const (
	// Application name
	AppName = "CurioKart"

	// API version
	APIVersion = "v1"

	// Default port
	DefaultPort = "8080"

	// PartialCODDeposit is the fixed deposit charged online upfront when the
	// buyer picks the partial cash-on-delivery strategy, in paise. It is an
	// additional charge on top of the order subtotal.
	PartialCODDeposit int64 = 5000

	// Shipping is free for every order.
	ShippingCharge int64 = 0

	// Default pagination limit
	DefaultPaginationLimit = 10

	// Maximum pagination limit
	MaxPaginationLimit = 100
)

// Issuer identity printed on invoices and order mails
const (
	StoreAddress = "42 Maker Lane, Bengaluru, KA 560001"
	StoreEmail   = "support@curiokart.in"
	StorePhone   = "+91-80-4455-6677"
)

// Error messages
const (
	ErrUnauthorized     = "Unauthorized access"
	ErrForbidden        = "Access forbidden"
	ErrEmptyCart        = "Your cart is empty"
	ErrInvalidSignature = "Invalid payment signature"
	ErrPaymentCancelled = "Payment was cancelled. You have not been charged."
	ErrOrderNotRecorded = "Your payment was received but the order could not be recorded. Please retry - you will not be charged again."
	ErrGatewayOrder     = "Failed to create payment order"
	ErrRecordNotFound   = "Record not found"
	ErrInternalServer   = "Internal server error"
)
