package controllers

import (
	"strconv"

	"github.com/curiokart/CurioKart/cart"
	"github.com/curiokart/CurioKart/config"
	"github.com/curiokart/CurioKart/models"
	"github.com/curiokart/CurioKart/utils"
	"github.com/gin-gonic/gin"
)

// GetCart returns the user's cart lines and total.
func GetCart(c *gin.Context) {
	utils.LogInfo("GetCart called")
	user, ok := currentUser(c)
	if !ok {
		return
	}

	lines, err := CartStore.Lines(c.Request.Context(), user.ID)
	if err != nil {
		utils.LogError("Failed to load cart for user %s: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to load cart", err.Error())
		return
	}

	utils.Success(c, "Cart retrieved successfully", cartPayload(lines))
}

// AddToCart adds a product to the user's cart, merging quantities for a
// product already present.
func AddToCart(c *gin.Context) {
	utils.LogInfo("AddToCart called")
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req struct {
		ProductID uint `json:"product_id" binding:"required"`
		Quantity  int  `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request for user %s: %v", user.ID, err)
		utils.BadRequest(c, "Invalid request. product_id is required", err.Error())
		return
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}
	utils.LogInfo("Adding product %d x%d to cart for user %s", req.ProductID, req.Quantity, user.ID)

	var product models.Product
	if err := config.DB.First(&product, req.ProductID).Error; err != nil {
		utils.LogError("Product not found: %d", req.ProductID)
		utils.NotFound(c, "Product not found")
		return
	}
	if !product.InStock {
		utils.LogError("Product %d is out of stock", req.ProductID)
		utils.BadRequest(c, "Product is out of stock", nil)
		return
	}

	if err := CartStore.Add(c.Request.Context(), user.ID, product, req.Quantity); err != nil {
		utils.LogError("Failed to add to cart for user %s: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to add to cart", err.Error())
		return
	}

	lines, err := CartStore.Lines(c.Request.Context(), user.ID)
	if err != nil {
		utils.LogError("Failed to reload cart for user %s: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to load cart", err.Error())
		return
	}
	utils.Success(c, "Added to cart", cartPayload(lines))
}

// UpdateCartItem sets the quantity of a cart line. Quantities below one are
// floored at one; removal is explicit via RemoveFromCart.
func UpdateCartItem(c *gin.Context) {
	utils.LogInfo("UpdateCartItem called")
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req struct {
		ProductID uint `json:"product_id" binding:"required"`
		Quantity  int  `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request for user %s: %v", user.ID, err)
		utils.BadRequest(c, "Invalid request. product_id is required", err.Error())
		return
	}

	if err := CartStore.SetQuantity(c.Request.Context(), user.ID, req.ProductID, req.Quantity); err != nil {
		utils.LogError("Failed to update cart for user %s: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to update cart", err.Error())
		return
	}

	lines, err := CartStore.Lines(c.Request.Context(), user.ID)
	if err != nil {
		utils.LogError("Failed to reload cart for user %s: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to load cart", err.Error())
		return
	}
	utils.Success(c, "Cart updated", cartPayload(lines))
}

// RemoveFromCart deletes a line unconditionally.
func RemoveFromCart(c *gin.Context) {
	utils.LogInfo("RemoveFromCart called")
	user, ok := currentUser(c)
	if !ok {
		return
	}

	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil || productID < 1 {
		utils.LogError("Invalid product ID: %s", c.Param("productId"))
		utils.BadRequest(c, "Invalid product ID", nil)
		return
	}

	if err := CartStore.Remove(c.Request.Context(), user.ID, uint(productID)); err != nil {
		utils.LogError("Failed to remove from cart for user %s: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to remove from cart", err.Error())
		return
	}

	lines, err := CartStore.Lines(c.Request.Context(), user.ID)
	if err != nil {
		utils.LogError("Failed to reload cart for user %s: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to load cart", err.Error())
		return
	}
	utils.Success(c, "Removed from cart", cartPayload(lines))
}

func cartPayload(lines []cart.Line) gin.H {
	items := make([]gin.H, 0, len(lines))
	for _, line := range lines {
		items = append(items, gin.H{
			"product_id":         line.ProductID,
			"title":              line.Title,
			"unit_price":         line.UnitPrice,
			"unit_price_display": utils.FormatRupees(line.UnitPrice),
			"quantity":           line.Quantity,
			"line_total":         line.UnitPrice * int64(line.Quantity),
			"line_total_display": utils.FormatRupees(line.UnitPrice * int64(line.Quantity)),
		})
	}
	subtotal := cart.Subtotal(lines)
	return gin.H{
		"items":            items,
		"item_count":       len(items),
		"subtotal":         subtotal,
		"subtotal_display": utils.FormatRupees(subtotal),
	}
}
