package models

import (
	"gorm.io/gorm"
)

// Product represents a kit or learning product in the catalog
type Product struct {
	gorm.Model
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Price       int64  `json:"price"` // paise
	ImageURL    string `json:"image_url"`
	InStock     bool   `json:"in_stock" gorm:"default:true"`
}

// User represents the authenticated caller as asserted by the hosted identity
// provider's token. Identity is not stored in this service.
type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	IsAdmin bool   `json:"is_admin"`
}
