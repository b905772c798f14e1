package controllers

import (
	"strconv"

	"github.com/curiokart/CurioKart/config"
	"github.com/curiokart/CurioKart/models"
	"github.com/curiokart/CurioKart/utils"
	"github.com/gin-gonic/gin"
)

// ListProducts returns the catalog, optionally filtered by category.
func ListProducts(c *gin.Context) {
	utils.LogInfo("ListProducts called")

	query := config.DB.Model(&models.Product{})
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var products []models.Product
	if err := query.Order("title").Find(&products).Error; err != nil {
		utils.LogError("Failed to fetch products: %v", err)
		utils.InternalServerError(c, "Failed to fetch products", err.Error())
		return
	}

	items := make([]gin.H, 0, len(products))
	for _, p := range products {
		items = append(items, gin.H{
			"id":            p.ID,
			"title":         p.Title,
			"category":      p.Category,
			"price":         p.Price,
			"price_display": utils.FormatRupees(p.Price),
			"image_url":     p.ImageURL,
			"in_stock":      p.InStock,
		})
	}

	utils.Success(c, "Products retrieved successfully", gin.H{"products": items})
}

// GetProduct returns one product's details.
func GetProduct(c *gin.Context) {
	utils.LogInfo("GetProduct called")

	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.LogError("Invalid product ID: %v", err)
		utils.BadRequest(c, "Invalid product ID", nil)
		return
	}

	var product models.Product
	if err := config.DB.First(&product, productID).Error; err != nil {
		utils.LogError("Product not found: %d", productID)
		utils.NotFound(c, "Product not found")
		return
	}

	utils.Success(c, "Product retrieved successfully", gin.H{
		"id":            product.ID,
		"title":         product.Title,
		"description":   product.Description,
		"category":      product.Category,
		"price":         product.Price,
		"price_display": utils.FormatRupees(product.Price),
		"image_url":     product.ImageURL,
		"in_stock":      product.InStock,
	})
}

// CreateDefaultProducts seeds the catalog when the table is empty so a fresh
// install has something to sell.
func CreateDefaultProducts() error {
	var count int64
	if err := config.DB.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := []models.Product{
		{Title: "Arduino Starter Lab Kit", Description: "Microcontroller board, breadboard, sensors and a 20-project guide.", Category: "electronics", Price: 249900, InStock: true},
		{Title: "Crystal Chemistry Set", Description: "Grow five crystal types with safe, pre-measured reagents.", Category: "chemistry", Price: 129900, InStock: true},
		{Title: "Telescope Explorer 70mm", Description: "Refractor telescope with two eyepieces and a moon filter.", Category: "astronomy", Price: 549900, InStock: true},
		{Title: "Robotics Gearbox Bundle", Description: "Motors, gears and chassis parts for three robot builds.", Category: "robotics", Price: 189900, InStock: true},
		{Title: "Microscope Discovery 400x", Description: "Student microscope with prepared slides and staining kit.", Category: "biology", Price: 329900, InStock: true},
	}
	return config.DB.Create(&products).Error
}
