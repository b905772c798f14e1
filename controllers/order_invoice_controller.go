package controllers

import (
	"net/http"
	"time"

	"github.com/curiokart/CurioKart/config"
	"github.com/curiokart/CurioKart/invoice"
	"github.com/curiokart/CurioKart/models"
	"github.com/curiokart/CurioKart/utils"
	"github.com/gin-gonic/gin"
)

// DownloadInvoice generates and returns the PDF invoice for one of the
// user's placed orders.
func DownloadInvoice(c *gin.Context) {
	utils.LogInfo("DownloadInvoice called")
	user, ok := currentUser(c)
	if !ok {
		return
	}

	orderID := c.Param("id")
	var order models.Order
	if err := config.DB.Preload("Items").Where("id = ? AND user_id = ?", orderID, user.ID).
		First(&order).Error; err != nil {
		utils.LogError("Order not found for invoice - order %s, user %s", orderID, user.ID)
		utils.NotFound(c, "Order not found")
		return
	}

	doc := invoice.Build(&order, time.Now())
	data, err := invoice.Render(doc)
	if err != nil {
		utils.LogError("Failed to render invoice for order %s: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to generate invoice", err.Error())
		return
	}
	utils.LogInfo("Invoice generated for order %s", order.ID)

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", "attachment; filename="+doc.Filename)
	c.Data(http.StatusOK, "application/pdf", data)
}
