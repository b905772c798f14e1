package models

import (
	"time"
)

// Payment method constants
const (
	PaymentMethodPartialCOD = "partial_cod"
	PaymentMethodFullOnline = "full_online"
)

// Payment status constants
const (
	PaymentStatusUnpaid  = "unpaid"
	PaymentStatusPartial = "partial"
	PaymentStatusPaid    = "paid"
)

// Order status constants
const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// ValidPaymentMethod reports whether m is one of the two supported methods.
func ValidPaymentMethod(m string) bool {
	return m == PaymentMethodPartialCOD || m == PaymentMethodFullOnline
}

// StatusTransitions maps each order status to the statuses the admin review
// process may move it to. Delivered and cancelled are terminal.
var StatusTransitions = map[string][]string{
	OrderStatusPending:    {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed:  {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered},
	OrderStatusDelivered:  {},
	OrderStatusCancelled:  {},
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to string) bool {
	for _, next := range StatusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Order struct {
	ID                string      `gorm:"primaryKey" json:"id"`
	UserID            string      `gorm:"index" json:"user_id"`
	Name              string      `json:"name"`
	Contact           string      `json:"contact"`
	Email             string      `json:"email"`
	Address           string      `json:"address"`
	Pincode           string      `json:"pincode"`
	TotalAmount       int64       `json:"total_amount"` // paise
	PaymentMethod     string      `json:"payment_method"`
	PaymentStatus     string      `json:"payment_status"`
	Status            string      `json:"status"`
	IsPartialCOD      bool        `json:"is_partial_cod"`
	RazorpayOrderID   string      `json:"razorpay_order_id"`
	RazorpayPaymentID string      `json:"razorpay_payment_id"`
	RazorpaySignature string      `json:"razorpay_signature"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
	Items             []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
}

// OrderItem is an immutable snapshot of one cart line at order time. Later
// cart mutations never touch it.
type OrderItem struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	OrderID   string `gorm:"index" json:"order_id"`
	ProductID uint   `json:"product_id"`
	Title     string `json:"title"`
	UnitPrice int64  `json:"unit_price"` // paise
	Quantity  int    `json:"quantity"`
}

// ItemsTotal returns the sum of unit price times quantity over the snapshot.
func (o *Order) ItemsTotal() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.UnitPrice * int64(item.Quantity)
	}
	return total
}
