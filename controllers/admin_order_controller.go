package controllers

import (
	"strconv"
	"strings"

	"github.com/curiokart/CurioKart/config"
	"github.com/curiokart/CurioKart/models"
	"github.com/curiokart/CurioKart/utils"
	"github.com/gin-gonic/gin"
)

// AdminListOrders returns all orders, paginated, optionally filtered by
// status, for the review workflow driving status transitions.
func AdminListOrders(c *gin.Context) {
	utils.LogInfo("AdminListOrders called")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(utils.DefaultPaginationLimit)))
	if perPage < 1 || perPage > utils.MaxPaginationLimit {
		perPage = utils.DefaultPaginationLimit
	}

	query := config.DB.Model(&models.Order{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count orders: %v", err)
		utils.InternalServerError(c, "Failed to fetch orders", err.Error())
		return
	}

	var orders []models.Order
	if err := query.Preload("Items").Order("created_at DESC").
		Offset((page - 1) * perPage).Limit(perPage).Find(&orders).Error; err != nil {
		utils.LogError("Failed to fetch orders: %v", err)
		utils.InternalServerError(c, "Failed to fetch orders", err.Error())
		return
	}

	items := make([]gin.H, 0, len(orders))
	for i := range orders {
		payload := orderSummary(&orders[i])
		payload["user_id"] = orders[i].UserID
		payload["contact"] = orders[i].Contact
		payload["pincode"] = orders[i].Pincode
		items = append(items, payload)
	}

	utils.SuccessWithPagination(c, "Orders retrieved successfully", gin.H{"orders": items}, total, page, perPage)
}

// UpdateOrderStatus moves an order along the review workflow. Only the
// transitions the status table allows are accepted; delivered and cancelled
// are terminal.
func UpdateOrderStatus(c *gin.Context) {
	utils.LogInfo("UpdateOrderStatus called")

	orderID := c.Param("id")
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request: %v", err)
		utils.BadRequest(c, "Invalid request. status is required", err.Error())
		return
	}
	newStatus := strings.ToLower(strings.TrimSpace(req.Status))

	var order models.Order
	if err := config.DB.First(&order, "id = ?", orderID).Error; err != nil {
		utils.LogError("Order not found: %s", orderID)
		utils.NotFound(c, "Order not found")
		return
	}

	oldStatus := order.Status
	if !models.CanTransition(order.Status, newStatus) {
		utils.LogError("Illegal status transition %s -> %s for order %s", order.Status, newStatus, orderID)
		utils.BadRequest(c, "Cannot move order from "+order.Status+" to "+newStatus, gin.H{
			"allowed": models.StatusTransitions[order.Status],
		})
		return
	}

	updates := map[string]interface{}{"status": newStatus}
	// Delivery settles the remaining balance of a partial COD order.
	if newStatus == models.OrderStatusDelivered && order.IsPartialCOD {
		updates["payment_status"] = models.PaymentStatusPaid
	}
	if err := config.DB.Model(&order).Updates(updates).Error; err != nil {
		utils.LogError("Failed to update order %s: %v", orderID, err)
		utils.InternalServerError(c, "Failed to update order", err.Error())
		return
	}
	utils.LogInfo("Order %s moved from %s to %s", orderID, oldStatus, newStatus)

	utils.Success(c, "Order status updated", gin.H{
		"order_id": order.ID,
		"status":   newStatus,
	})
}
