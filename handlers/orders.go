package handlers

import (
	"errors"
	"net/http"
	"time"

	"restaurant-pos-api/config"
	"restaurant-pos-api/kitchentag"
	"restaurant-pos-api/middleware"
	"restaurant-pos-api/models"
	"restaurant-pos-api/statemachine"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	errOrderNotFound    = errors.New("order not found")
	errMenuItemNotFound = errors.New("menu item not found")
	errItemUnavailable  = errors.New("menu item not available")
)

// ListOrders returns all orders, optionally filtered by ?status= and ?table_id=
func ListOrders(c *gin.Context) {
	var orders []models.Order
	query := config.DB.Preload("Items")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if tableID := c.Query("table_id"); tableID != "" {
		query = query.Where("table_id = ?", tableID)
	}
	if err := query.Order("created_at desc").Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetOrder returns a single order with its items
func GetOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	var order models.Order
	if err := config.DB.Preload("Items.MenuItem").Preload("Table").First(&order, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

type CreateOrderRequest struct {
	TableID uint `json:"table_id" binding:"required"`
}

// CreateOrder opens a new order on a table for the calling staff member
func CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var table models.Table
	if err := config.DB.First(&table, req.TableID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Table not found"})
		return
	}

	order := models.Order{
		TableID:     table.ID,
		UserID:      middleware.GetUserID(c),
		Status:      models.OrderOpen,
		TotalAmount: 0,
	}
	if err := config.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"order": order})
}

type AddOrderItemRequest struct {
	MenuItemID uint   `json:"menu_item_id" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required,min=1"`
	Notes      string `json:"notes"`
}

// AddOrderItem attaches a line item to an order: it derives the preparation
// station from the menu category, issues a daily prep tag for every station
// except the bar, freezes the menu price onto the line, and increments the
// order total. Everything happens in one transaction so a failure leaves
// neither a dangling item nor a stale total, and the total update is an
// atomic SQL increment so concurrent additions to the same order cannot
// lose each other's amounts.
func AddOrderItem(c *gin.Context) {
	var req AddOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	orderID, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	var item models.OrderItem
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := config.LockForUpdate(tx).
			First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errOrderNotFound
			}
			return err
		}

		var menuItem models.MenuItem
		if err := tx.First(&menuItem, req.MenuItemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errMenuItemNotFound
			}
			return err
		}
		if !menuItem.IsAvailable {
			return errItemUnavailable
		}

		station := models.StationForCategory(menuItem.Category)

		var prepTag *string
		if station.NeedsPrepTag() {
			tag, err := kitchentag.Next(tx, time.Now())
			if err != nil {
				return err
			}
			prepTag = &tag
		}

		item = models.OrderItem{
			OrderID:    order.ID,
			MenuItemID: menuItem.ID,
			Quantity:   req.Quantity,
			Price:      menuItem.Price, // frozen: later menu price changes don't touch this line
			Notes:      req.Notes,
			PrepTag:    prepTag,
			Status:     models.ItemPending,
			Station:    station,
		}
		if err := tx.Create(&item).Error; err != nil {
			return err
		}

		return tx.Model(&order).
			Update("total_amount", gorm.Expr("total_amount + ?", menuItem.Price*float64(req.Quantity))).Error
	})

	switch {
	case err == nil:
		c.JSON(http.StatusCreated, gin.H{"item": item})
	case errors.Is(err, errOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
	case errors.Is(err, errMenuItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
	case errors.Is(err, errItemUnavailable):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Menu item not available"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to order"})
	}
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus moves an order along open → closed → paid. Only a waiter
// closes and only a cashier marks paid; paying requires the order to be
// closed already.
func UpdateOrderStatus(c *gin.Context) {
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	orderID, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	role := middleware.GetRole(c)

	var order models.Order
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := config.LockForUpdate(tx).
			First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errOrderNotFound
			}
			return err
		}
		if err := statemachine.CheckOrderTransition(order.Status, req.Status, role); err != nil {
			return err
		}
		order.Status = req.Status
		return tx.Model(&order).Update("status", req.Status).Error
	})

	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"order": order})
	case errors.Is(err, errOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
	case errors.Is(err, statemachine.ErrUnknownStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, statemachine.ErrWrongRole):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, statemachine.ErrIllegalTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
	}
}

type UpdateItemStatusRequest struct {
	Status models.ItemStatus `json:"status" binding:"required"`
}

// UpdateOrderItemStatus marks a line item ready. Only the station the item
// was routed to may touch it: a kitchen token cannot ready a butchery item.
func UpdateOrderItemStatus(c *gin.Context) {
	var req UpdateItemStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order item not found"})
		return
	}
	var item models.OrderItem
	if err := config.DB.First(&item, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order item not found"})
		return
	}

	role := middleware.GetRole(c)
	if err := statemachine.CheckItemTransition(item.Status, req.Status, item.Station, role); err != nil {
		switch {
		case errors.Is(err, statemachine.ErrUnknownStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, statemachine.ErrWrongRole):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		}
		return
	}

	item.Status = req.Status
	if err := config.DB.Model(&item).Update("status", req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item status"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}
