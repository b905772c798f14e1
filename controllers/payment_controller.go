package controllers

import (
	"os"

	"github.com/curiokart/CurioKart/cart"
	"github.com/curiokart/CurioKart/checkout"
	"github.com/curiokart/CurioKart/config"
	"github.com/curiokart/CurioKart/models"
	"github.com/curiokart/CurioKart/payment"
	"github.com/curiokart/CurioKart/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InitiateCheckoutPayment fixes the payment method, creates the gateway-side
// order and moves the draft to awaiting the gateway result. The draft keeps a
// snapshot of the cart lines the amounts were computed from; the placed order
// is built from that snapshot. The response carries everything the hosted
// checkout needs, pre-filled with the buyer's contact details. Nothing is
// charged or recorded yet.
func InitiateCheckoutPayment(c *gin.Context) {
	utils.LogInfo("InitiateCheckoutPayment called")
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req struct {
		PaymentMethod string `json:"payment_method" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request for user %s: %v", user.ID, err)
		utils.BadRequest(c, "Invalid request. payment_method is required", err.Error())
		return
	}
	if !models.ValidPaymentMethod(req.PaymentMethod) {
		utils.LogError("Invalid payment method %q for user %s", req.PaymentMethod, user.ID)
		utils.BadRequest(c, "Invalid payment method. Must be partial_cod or full_online", nil)
		return
	}

	draft := loadDraft(c, "")
	if draft.State != checkout.StateReviewingPayment {
		utils.LogError("Payment initiated in state %s for user %s", draft.State, user.ID)
		utils.BadRequest(c, "Complete the delivery details step first", nil)
		return
	}

	lines, err := CartStore.Lines(c.Request.Context(), user.ID)
	if err != nil {
		utils.LogError("Failed to load cart for user %s: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to load cart", err.Error())
		return
	}
	subtotal := cart.Subtotal(lines)

	amounts, err := checkout.ComputeAmounts(subtotal, req.PaymentMethod)
	if err != nil {
		utils.LogError("Amount computation failed for user %s: %v", user.ID, err)
		utils.BadRequest(c, utils.ErrEmptyCart, nil)
		return
	}
	utils.LogInfo("Charging %d paise now (%s) for user %s", amounts.AmountDueNow, req.PaymentMethod, user.ID)

	gatewayOrder, err := Gateway.CreateOrder(c.Request.Context(), payment.CreateOrderInput{
		AmountPaise:   amounts.AmountDueNow,
		Receipt:       draft.ID,
		CustomerName:  draft.Form.Name,
		CustomerEmail: draft.Form.Email,
		CustomerPhone: draft.Form.Contact,
		Description:   utils.AppName + " order",
	})
	if err != nil {
		utils.LogError("Failed to create gateway order for user %s: %v", user.ID, err)
		utils.InternalServerError(c, utils.ErrGatewayOrder, err.Error())
		return
	}

	if err := draft.OpenGateway(req.PaymentMethod, amounts, lines, gatewayOrder.ID); err != nil {
		utils.LogError("Checkout transition failed for user %s: %v", user.ID, err)
		utils.BadRequest(c, err.Error(), nil)
		return
	}
	if err := saveDraft(c, draft); err != nil {
		utils.LogError("Failed to save checkout draft for user %s: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to save checkout progress", err.Error())
		return
	}

	utils.Success(c, "Payment initiated successfully", gin.H{
		"checkout_id":       draft.ID,
		"state":             draft.State,
		"razorpay_order_id": gatewayOrder.ID,
		"amount":            gatewayOrder.Amount,
		"amount_display":    utils.FormatRupees(gatewayOrder.Amount),
		"currency":          gatewayOrder.Currency,
		"key":               os.Getenv("RAZORPAY_KEY"),
		"prefill": gin.H{
			"name":    draft.Form.Name,
			"email":   draft.Form.Email,
			"contact": draft.Form.Contact,
		},
	})
}

// CancelCheckoutPayment records the buyer dismissing the hosted checkout.
// Cancellation is a distinct outcome, never a silent drop, and nothing
// retries automatically.
func CancelCheckoutPayment(c *gin.Context) {
	utils.LogInfo("CancelCheckoutPayment called")
	user, ok := currentUser(c)
	if !ok {
		return
	}

	draft := loadDraft(c, "")
	resolveGatewayResult(c, user, draft, payment.Cancelled())
}

// ConfirmCheckoutPayment receives the gateway callback payload, verifies its
// signature server-side and only then persists the order. The adapter never
// marks anything paid; this verification is the sole authority.
func ConfirmCheckoutPayment(c *gin.Context) {
	utils.LogInfo("ConfirmCheckoutPayment called")
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req struct {
		RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
		RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
		RazorpaySignature string `json:"razorpay_signature" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid callback payload for user %s: %v", user.ID, err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	draft := loadDraft(c, "")
	if draft.State != checkout.StateAwaitingGatewayResult {
		utils.LogError("Callback in state %s for user %s", draft.State, user.ID)
		utils.BadRequest(c, "No payment is awaiting confirmation", nil)
		return
	}
	if draft.RazorpayOrderID != req.RazorpayOrderID {
		utils.LogError("Gateway order mismatch for user %s. Expected %s, got %s",
			user.ID, draft.RazorpayOrderID, req.RazorpayOrderID)
		utils.BadRequest(c, "Invalid gateway order reference", nil)
		return
	}

	callback := payment.Callback{
		RazorpayOrderID:   req.RazorpayOrderID,
		RazorpayPaymentID: req.RazorpayPaymentID,
		RazorpaySignature: req.RazorpaySignature,
	}

	var result payment.Result
	if payment.VerifySignature(callback, os.Getenv("RAZORPAY_SECRET")) {
		utils.LogInfo("Payment signature verified for draft %s", draft.ID)
		result = payment.Succeeded(callback)
	} else {
		utils.LogError("Payment verification failed for draft %s, user %s", draft.ID, user.ID)
		result = payment.Failed(utils.ErrInvalidSignature)
	}
	resolveGatewayResult(c, user, draft, result)
}

// resolveGatewayResult handles the three terminal outcomes of one hosted
// checkout round trip exhaustively. Cancellation and failure return the draft
// to payment review with the entered form intact; only a verified success
// places the order.
func resolveGatewayResult(c *gin.Context, user models.User, draft *checkout.Draft, result payment.Result) {
	switch result.Outcome {
	case payment.OutcomeCancelled:
		if err := draft.Fail(); err != nil {
			utils.LogError("Cancel in state %s for user %s: %v", draft.State, user.ID, err)
			utils.BadRequest(c, err.Error(), nil)
			return
		}
		if err := saveDraft(c, draft); err != nil {
			utils.LogError("Failed to save checkout draft for user %s: %v", user.ID, err)
			utils.InternalServerError(c, "Failed to save checkout progress", err.Error())
			return
		}
		utils.Success(c, utils.ErrPaymentCancelled, gin.H{
			"outcome": result.Outcome,
			"state":   draft.State,
		})

	case payment.OutcomeFailed:
		if err := draft.Fail(); err == nil {
			_ = saveDraft(c, draft)
		}
		utils.BadRequest(c, result.Reason, gin.H{
			"outcome": result.Outcome,
			"retry":   true,
		})

	case payment.OutcomeSuccess:
		placeOrder(c, user, draft, result.Callback)
	}
}

// placeOrder persists the order from the draft's cart snapshot after a
// verified payment. The snapshot, not the live cart, becomes the order items
// so the recorded total always matches what was charged against.
func placeOrder(c *gin.Context, user models.User, draft *checkout.Draft, callback payment.Callback) {
	paymentStatus := models.PaymentStatusPaid
	if draft.PaymentMethod == models.PaymentMethodPartialCOD {
		paymentStatus = models.PaymentStatusPartial
	}

	order := models.Order{
		ID:                uuid.New().String(),
		UserID:            user.ID,
		Name:              draft.Form.Name,
		Contact:           draft.Form.Contact,
		Email:             draft.Form.Email,
		Address:           draft.Form.Address,
		Pincode:           draft.Form.Pincode,
		TotalAmount:       draft.Amounts.TotalAmount,
		PaymentMethod:     draft.PaymentMethod,
		PaymentStatus:     paymentStatus,
		Status:            models.OrderStatusPending,
		IsPartialCOD:      draft.PaymentMethod == models.PaymentMethodPartialCOD,
		RazorpayOrderID:   callback.RazorpayOrderID,
		RazorpayPaymentID: callback.RazorpayPaymentID,
		RazorpaySignature: callback.RazorpaySignature,
	}
	for _, line := range draft.Lines {
		order.Items = append(order.Items, models.OrderItem{
			ProductID: line.ProductID,
			Title:     line.Title,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
		})
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction for user %s: %v", user.ID, tx.Error)
		utils.InternalServerError(c, utils.ErrOrderNotRecorded, gin.H{
			"razorpay_payment_id": callback.RazorpayPaymentID,
		})
		return
	}
	if err := tx.Create(&order).Error; err != nil {
		// Money has moved but the order row did not land. Surface it loudly
		// and keep the cart and draft so a manual retry is possible.
		tx.Rollback()
		utils.LogError("Failed to record order after verified payment %s, user %s: %v",
			callback.RazorpayPaymentID, user.ID, err)
		utils.InternalServerError(c, utils.ErrOrderNotRecorded, gin.H{
			"razorpay_payment_id": callback.RazorpayPaymentID,
		})
		return
	}
	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit order for user %s: %v", user.ID, err)
		utils.InternalServerError(c, utils.ErrOrderNotRecorded, gin.H{
			"razorpay_payment_id": callback.RazorpayPaymentID,
		})
		return
	}
	utils.LogInfo("Created order %s for user %s", order.ID, user.ID)

	// Cart is cleared exactly once, after successful placement.
	if err := CartStore.Clear(c.Request.Context(), user.ID); err != nil {
		utils.LogError("Failed to clear cart for user %s after order %s: %v", user.ID, order.ID, err)
	}
	if err := draft.Complete(); err == nil {
		_ = clearDraft(c)
	}

	go func(placed models.Order) {
		if err := utils.SendOrderConfirmation(&placed); err != nil {
			utils.LogError("Failed to send confirmation mail for order %s: %v", placed.ID, err)
		}
	}(order)

	utils.Success(c, "Thank you for your payment! Your order has been placed.", gin.H{
		"order_id":            order.ID,
		"order_ref":           utils.ShortOrderID(order.ID),
		"total_amount":        order.TotalAmount,
		"total_display":       utils.FormatRupees(order.TotalAmount),
		"payment_method":      order.PaymentMethod,
		"payment_status":      order.PaymentStatus,
		"razorpay_payment_id": order.RazorpayPaymentID,
		"invoice_url":         "/v1/orders/" + order.ID + "/invoice",
	})
}
