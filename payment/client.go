package payment

import (
	"context"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
)

// CreateOrderInput describes one gateway order request. Receipt is the
// caller-supplied idempotent reference (the checkout draft ID); the buyer
// fields pre-fill the hosted checkout.
type CreateOrderInput struct {
	AmountPaise   int64
	Receipt       string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Description   string
}

// GatewayOrder is the gateway-side order object a payment is made against.
type GatewayOrder struct {
	ID       string
	Amount   int64
	Currency string
	Receipt  string
}

// Client creates gateway-side order objects. Credentials stay server-side;
// nothing here ever marks a payment as completed - that belongs solely to
// signature verification.
type Client interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (GatewayOrder, error)
}

type razorpayClient struct {
	client *razorpay.Client
}

// NewRazorpayClient returns a Client backed by the Razorpay SDK.
func NewRazorpayClient(key, secret string) Client {
	return &razorpayClient{client: razorpay.NewClient(key, secret)}
}

func (r *razorpayClient) CreateOrder(_ context.Context, input CreateOrderInput) (GatewayOrder, error) {
	data := map[string]interface{}{
		"amount":          input.AmountPaise,
		"currency":        "INR",
		"receipt":         input.Receipt,
		"payment_capture": 1,
		"notes": map[string]interface{}{
			"customer_name":  input.CustomerName,
			"customer_email": input.CustomerEmail,
			"customer_phone": input.CustomerPhone,
			"description":    input.Description,
		},
	}
	order, err := r.client.Order.Create(data, nil)
	if err != nil {
		return GatewayOrder{}, fmt.Errorf("failed to create gateway order: %w", err)
	}

	result := GatewayOrder{
		ID:       fmt.Sprintf("%v", order["id"]),
		Amount:   input.AmountPaise,
		Currency: "INR",
		Receipt:  input.Receipt,
	}
	return result, nil
}
