package controllers

import (
	"github.com/curiokart/CurioKart/config"
	"github.com/curiokart/CurioKart/models"
	"github.com/curiokart/CurioKart/utils"
	"github.com/gin-gonic/gin"
)

// ListOrders returns the user's orders, newest first.
func ListOrders(c *gin.Context) {
	utils.LogInfo("ListOrders called")
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var orders []models.Order
	if err := config.DB.Preload("Items").Where("user_id = ?", user.ID).
		Order("created_at DESC").Find(&orders).Error; err != nil {
		utils.LogError("Failed to fetch orders for user %s: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch orders", err.Error())
		return
	}

	items := make([]gin.H, 0, len(orders))
	for i := range orders {
		items = append(items, orderSummary(&orders[i]))
	}
	utils.Success(c, "Orders retrieved successfully", gin.H{"orders": items})
}

// GetOrder returns one order with its item snapshot.
func GetOrder(c *gin.Context) {
	utils.LogInfo("GetOrder called")
	user, ok := currentUser(c)
	if !ok {
		return
	}

	orderID := c.Param("id")
	var order models.Order
	if err := config.DB.Preload("Items").Where("id = ? AND user_id = ?", orderID, user.ID).
		First(&order).Error; err != nil {
		utils.LogError("Order not found: %s for user %s", orderID, user.ID)
		utils.NotFound(c, "Order not found")
		return
	}

	lines := make([]gin.H, 0, len(order.Items))
	for _, item := range order.Items {
		lines = append(lines, gin.H{
			"product_id":         item.ProductID,
			"title":              item.Title,
			"unit_price":         item.UnitPrice,
			"unit_price_display": utils.FormatRupees(item.UnitPrice),
			"quantity":           item.Quantity,
			"line_total_display": utils.FormatRupees(item.UnitPrice * int64(item.Quantity)),
		})
	}

	payload := orderSummary(&order)
	payload["items"] = lines
	payload["razorpay_order_id"] = order.RazorpayOrderID
	payload["razorpay_payment_id"] = order.RazorpayPaymentID
	utils.Success(c, "Order retrieved successfully", payload)
}

func orderSummary(order *models.Order) gin.H {
	return gin.H{
		"id":             order.ID,
		"order_ref":      utils.ShortOrderID(order.ID),
		"created_at":     order.CreatedAt,
		"name":           order.Name,
		"total_amount":   order.TotalAmount,
		"total_display":  utils.FormatRupees(order.TotalAmount),
		"payment_method": order.PaymentMethod,
		"payment_status": order.PaymentStatus,
		"status":         order.Status,
		"is_partial_cod": order.IsPartialCOD,
		"item_count":     len(order.Items),
	}
}
