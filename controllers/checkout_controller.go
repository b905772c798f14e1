package controllers

import (
	"github.com/curiokart/CurioKart/cart"
	"github.com/curiokart/CurioKart/checkout"
	"github.com/curiokart/CurioKart/models"
	"github.com/curiokart/CurioKart/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SubmitCheckoutDetails validates the recipient form and advances the
// checkout draft to payment review. No network call happens at this step.
func SubmitCheckoutDetails(c *gin.Context) {
	utils.LogInfo("SubmitCheckoutDetails called")
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var form checkout.OrderForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.LogError("Invalid request for user %s: %v", user.ID, err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if errs := checkout.ValidateOrderForm(form); len(errs) > 0 {
		utils.LogError("Checkout form validation failed for user %s: %v", user.ID, errs)
		utils.BadRequest(c, "Please correct the highlighted fields", gin.H{"fields": errs})
		return
	}

	// An empty cart must never reach the payment-review step.
	lines, err := CartStore.Lines(c.Request.Context(), user.ID)
	if err != nil {
		utils.LogError("Failed to load cart for user %s: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to load cart", err.Error())
		return
	}
	if len(lines) == 0 {
		utils.LogError("Empty cart at checkout for user %s", user.ID)
		utils.BadRequest(c, utils.ErrEmptyCart, nil)
		return
	}

	draft := loadDraft(c, uuid.New().String())
	if draft.State != checkout.StateCollectingDetails {
		// Editing details restarts from the details step but keeps the data
		// already entered; a fresh draft does the same with the new form.
		draft = checkout.NewDraft(uuid.New().String())
	}
	if err := draft.SubmitDetails(form); err != nil {
		utils.LogError("Checkout transition failed for user %s: %v", user.ID, err)
		utils.BadRequest(c, err.Error(), nil)
		return
	}
	if err := saveDraft(c, draft); err != nil {
		utils.LogError("Failed to save checkout draft for user %s: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to save checkout progress", err.Error())
		return
	}

	utils.LogInfo("Checkout details accepted for user %s, draft %s", user.ID, draft.ID)
	utils.Success(c, "Delivery details saved", gin.H{
		"checkout_id": draft.ID,
		"state":       draft.State,
	})
}

// GetCheckoutReview returns the cart snapshot plus both settlement options so
// the buyer can pick a payment method.
func GetCheckoutReview(c *gin.Context) {
	utils.LogInfo("GetCheckoutReview called")
	user, ok := currentUser(c)
	if !ok {
		return
	}

	draft := loadDraft(c, "")
	if draft.State != checkout.StateReviewingPayment {
		utils.LogError("Review requested in state %s for user %s", draft.State, user.ID)
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
	if subtotal == 0 {
		utils.LogError("Empty cart at review for user %s", user.ID)
		utils.BadRequest(c, utils.ErrEmptyCart, nil)
		return
	}

	full, err := checkout.ComputeAmounts(subtotal, models.PaymentMethodFullOnline)
	if err != nil {
		utils.LogError("Amount computation failed for user %s: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to compute amounts", err.Error())
		return
	}
	partial, err := checkout.ComputeAmounts(subtotal, models.PaymentMethodPartialCOD)
	if err != nil {
		utils.LogError("Amount computation failed for user %s: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to compute amounts", err.Error())
		return
	}

	utils.Success(c, "Checkout review", gin.H{
		"checkout_id": draft.ID,
		"state":       draft.State,
		"recipient":   draft.Form,
		"cart":        cartPayload(lines),
		"shipping":    utils.ShippingCharge,
		"payment_options": []gin.H{
			{
				"method":               models.PaymentMethodFullOnline,
				"label":                "Pay in full online",
				"amount_due_now":       full.AmountDueNow,
				"amount_due_display":   utils.FormatRupees(full.AmountDueNow),
				"amount_owed_later":    full.AmountOwedLater,
				"total_amount":         full.TotalAmount,
				"total_amount_display": utils.FormatRupees(full.TotalAmount),
			},
			{
				"method":               models.PaymentMethodPartialCOD,
				"label":                "Pay deposit now, rest on delivery",
				"amount_due_now":       partial.AmountDueNow,
				"amount_due_display":   utils.FormatRupees(partial.AmountDueNow),
				"amount_owed_later":    partial.AmountOwedLater,
				"total_amount":         partial.TotalAmount,
				"total_amount_display": utils.FormatRupees(partial.TotalAmount),
			},
		},
	})
}

// CheckoutBack returns from payment review to the details step without
// discarding anything already entered.
func CheckoutBack(c *gin.Context) {
	utils.LogInfo("CheckoutBack called")
	user, ok := currentUser(c)
	if !ok {
		return
	}

	draft := loadDraft(c, "")
	if err := draft.Back(); err != nil {
		utils.LogError("Back navigation failed for user %s: %v", user.ID, err)
		utils.BadRequest(c, err.Error(), nil)
		return
	}
	if err := saveDraft(c, draft); err != nil {
		utils.LogError("Failed to save checkout draft for user %s: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to save checkout progress", err.Error())
		return
	}

	utils.Success(c, "Returned to delivery details", gin.H{
		"state": draft.State,
		"form":  draft.Form,
	})
}
