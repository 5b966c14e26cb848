package models

import (
	"strings"
	"time"
)

// Menu categories drive station routing; matching is case-insensitive
// and "raw meat" is accepted alongside "raw_meat".
const (
	CategoryFood    = "food"
	CategoryRawMeat = "raw_meat"
	CategoryDrinks  = "drinks"
)

// NormalizeCategory lowercases a category and folds "raw meat" into "raw_meat".
// Categories are stored normalized so that filters and station routing agree.
func NormalizeCategory(category string) string {
	c := strings.ToLower(strings.TrimSpace(category))
	return strings.ReplaceAll(c, " ", "_")
}

// IsValidCategory reports whether category names one of the known menu categories
func IsValidCategory(category string) bool {
	switch NormalizeCategory(category) {
	case CategoryFood, CategoryRawMeat, CategoryDrinks:
		return true
	}
	return false
}

type MenuItem struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"uniqueIndex;not null"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Category    string    `json:"category" gorm:"not null"`
	Price       float64   `json:"price" gorm:"type:decimal(10,2);not null"`
	IsAvailable bool      `json:"is_available" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
