package handlers

import (
	"errors"
	"net/http"

	"restaurant-pos-api/config"
	"restaurant-pos-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateMenuItemRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	Category    string   `json:"category" binding:"required"`
	Price       *float64 `json:"price" binding:"required"`
	IsAvailable *bool    `json:"is_available"`
}

// ListMenuItems returns the menu, optionally filtered by ?category=
func ListMenuItems(c *gin.Context) {
	var items []models.MenuItem
	query := config.DB
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", models.NormalizeCategory(category))
	}
	if err := query.Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list menu items"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(items), "items": items})
}

// GetMenuItem returns a single menu item
func GetMenuItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	var item models.MenuItem
	if err := config.DB.First(&item, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

// CreateMenuItem adds a dish or drink to the menu — admin and manager only
func CreateMenuItem(c *gin.Context) {
	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if *req.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must not be negative"})
		return
	}
	if !models.IsValidCategory(req.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category must be one of: food, raw_meat, drinks"})
		return
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	item := models.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Category:    models.NormalizeCategory(req.Category),
		Price:       *req.Price,
		IsAvailable: available,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "Menu item with this name already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create menu item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"item": item})
}

type UpdateMenuItemRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"image_url"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	IsAvailable *bool    `json:"is_available"`
}

// UpdateMenuItem changes menu item details — admin and manager only.
// Price changes never touch items already added to orders; their line
// price was captured at add time.
func UpdateMenuItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	var item models.MenuItem
	if err := config.DB.First(&item, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	var req UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.ImageURL != nil {
		item.ImageURL = *req.ImageURL
	}
	if req.Category != nil {
		if !models.IsValidCategory(*req.Category) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category must be one of: food, raw_meat, drinks"})
			return
		}
		item.Category = models.NormalizeCategory(*req.Category)
	}
	if req.Price != nil {
		if *req.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Price must not be negative"})
			return
		}
		item.Price = *req.Price
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}

	if err := config.DB.Save(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "Menu item with this name already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

// DeleteMenuItem removes a menu item — admin and manager only
func DeleteMenuItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	var item models.MenuItem
	if err := config.DB.First(&item, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	config.DB.Delete(&item)
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}
