package handlers

import (
	"errors"
	"net/http"

	"restaurant-pos-api/config"
	"restaurant-pos-api/middleware"
	"restaurant-pos-api/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type CreateUserRequest struct {
	Name     string           `json:"name" binding:"required"`
	Username string           `json:"username" binding:"required"`
	Password string           `json:"password" binding:"required,min=6"`
	Role     models.StaffRole `json:"role" binding:"required"`
}

// ListUsers returns all staff accounts — admin and manager only
func ListUsers(c *gin.Context) {
	var users []models.User
	query := config.DB
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	if err := query.Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}

// CreateUser creates a new staff account — admin and manager only
func CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.IsValidRole(req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role. Must be one of: admin, manager, waiter, kitchen, bar, butchery, cashier"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		Name:         req.Name,
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         req.Role,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "Username already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// GetUser returns one staff account. Admin and manager can read anyone;
// every other role can only read their own record.
func GetUser(c *gin.Context) {
	callerID := middleware.GetUserID(c)
	callerRole := middleware.GetRole(c)

	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if callerRole != models.RoleAdmin && callerRole != models.RoleManager && callerID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only view your own account"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

type UpdateUserRequest struct {
	Name *string           `json:"name"`
	Role *models.StaffRole `json:"role"`
}

// UpdateUser changes a staff member's name or role. The username is
// immutable and passwords are not changed here.
func UpdateUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Role != nil {
		if !models.IsValidRole(*req.Role) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
			return
		}
		user.Role = *req.Role
	}

	if err := config.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// DeleteUser removes a staff account — admin and manager only
func DeleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	config.DB.Delete(&user)
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
