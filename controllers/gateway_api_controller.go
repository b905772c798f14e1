package controllers

import (
	"net/http"
	"os"

	"github.com/curiokart/CurioKart/payment"
	"github.com/curiokart/CurioKart/utils"
	"github.com/gin-gonic/gin"
)

// CreateGatewayOrder is the trusted server endpoint the payment adapter calls
// to obtain a gateway-side order object. Gateway credentials never reach the
// client. Amount arrives in rupees and is converted to paise for the gateway.
func CreateGatewayOrder(c *gin.Context) {
	utils.LogInfo("CreateGatewayOrder called")

	var req struct {
		Amount        float64 `json:"amount"`
		OrderID       string  `json:"orderId"`
		CustomerName  string  `json:"customerName"`
		CustomerEmail string  `json:"customerEmail"`
		CustomerPhone string  `json:"customerPhone"`
		Description   string  `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid create-order request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Amount <= 0 || req.OrderID == "" || req.CustomerEmail == "" || req.CustomerPhone == "" {
		utils.LogError("Missing required create-order fields")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "amount, orderId, customerEmail and customerPhone are required",
		})
		return
	}

	gatewayOrder, err := Gateway.CreateOrder(c.Request.Context(), payment.CreateOrderInput{
		AmountPaise:   utils.RupeesToPaise(req.Amount),
		Receipt:       req.OrderID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Description:   req.Description,
	})
	if err != nil {
		utils.LogError("Gateway order creation failed for receipt %s: %v", req.OrderID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   utils.ErrGatewayOrder,
			"details": err.Error(),
		})
		return
	}
	utils.LogInfo("Created gateway order %s for receipt %s", gatewayOrder.ID, req.OrderID)

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"orderId":  gatewayOrder.ID,
		"amount":   gatewayOrder.Amount,
		"currency": gatewayOrder.Currency,
		"receipt":  gatewayOrder.Receipt,
	})
}

// VerifyGatewayPayment recomputes the callback signature server-side and
// accepts or rejects the payment. A mismatch gets one generic message - no
// partial-match information leaks.
func VerifyGatewayPayment(c *gin.Context) {
	utils.LogInfo("VerifyGatewayPayment called")

	var req payment.Callback
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid verify request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.RazorpayOrderID == "" || req.RazorpayPaymentID == "" || req.RazorpaySignature == "" {
		utils.LogError("Missing required verify fields")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "razorpay_order_id, razorpay_payment_id and razorpay_signature are required",
		})
		return
	}

	if !payment.VerifySignature(req, os.Getenv("RAZORPAY_SECRET")) {
		utils.LogError("Signature mismatch for gateway order %s", req.RazorpayOrderID)
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.ErrInvalidSignature})
		return
	}
	utils.LogInfo("Signature verified for gateway order %s", req.RazorpayOrderID)

	c.JSON(http.StatusOK, gin.H{
		"success":             true,
		"message":             "Payment verified successfully",
		"razorpay_payment_id": req.RazorpayPaymentID,
		"razorpay_order_id":   req.RazorpayOrderID,
	})
}
