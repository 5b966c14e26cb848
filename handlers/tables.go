package handlers

import (
	"errors"
	"net/http"

	"restaurant-pos-api/config"
	"restaurant-pos-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateTableRequest struct {
	Number string             `json:"number" binding:"required"`
	Status models.TableStatus `json:"status"`
	IsVIP  bool               `json:"is_vip"`
}

func isValidTableStatus(s models.TableStatus) bool {
	return s == models.TableAvailable || s == models.TableOccupied
}

// ListTables returns all dining tables
func ListTables(c *gin.Context) {
	var tables []models.Table
	query := config.DB
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&tables).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list tables"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(tables), "tables": tables})
}

// GetTable returns a single table
func GetTable(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Table not found"})
		return
	}
	var table models.Table
	if err := config.DB.First(&table, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Table not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"table": table})
}

// CreateTable registers a new dining table — admin and manager only
func CreateTable(c *gin.Context) {
	var req CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := req.Status
	if status == "" {
		status = models.TableAvailable
	}
	if !isValidTableStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be 'available' or 'occupied'"})
		return
	}

	table := models.Table{Number: req.Number, Status: status, IsVIP: req.IsVIP}
	if err := config.DB.Create(&table).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "Table number already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create table"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"table": table})
}

type UpdateTableRequest struct {
	Number *string             `json:"number"`
	Status *models.TableStatus `json:"status"`
	IsVIP  *bool               `json:"is_vip"`
}

// UpdateTable changes a table's number, status or VIP flag — admin and manager only
func UpdateTable(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Table not found"})
		return
	}
	var table models.Table
	if err := config.DB.First(&table, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Table not found"})
		return
	}

	var req UpdateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Number != nil {
		table.Number = *req.Number
	}
	if req.Status != nil {
		if !isValidTableStatus(*req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be 'available' or 'occupied'"})
			return
		}
		table.Status = *req.Status
	}
	if req.IsVIP != nil {
		table.IsVIP = *req.IsVIP
	}

	if err := config.DB.Save(&table).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "Table number already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update table"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"table": table})
}

// DeleteTable removes a table — admin and manager only
func DeleteTable(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Table not found"})
		return
	}
	var table models.Table
	if err := config.DB.First(&table, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Table not found"})
		return
	}
	config.DB.Delete(&table)
	c.JSON(http.StatusOK, gin.H{"message": "Table deleted"})
}
