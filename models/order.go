package models

import "time"

// OrderStatus represents the lifecycle of an order: open → closed → paid
type OrderStatus string

const (
	OrderOpen   OrderStatus = "open"
	OrderClosed OrderStatus = "closed"
	OrderPaid   OrderStatus = "paid"
)

// ItemStatus represents the lifecycle of a single line item
type ItemStatus string

const (
	ItemPending ItemStatus = "pending"
	ItemReady   ItemStatus = "ready"
)

// Station is the preparation area responsible for an order item
type Station string

const (
	StationKitchen  Station = "kitchen"
	StationBar      Station = "bar"
	StationButchery Station = "butchery"
)

// StationForCategory derives the preparation station from a menu category.
// Matching is case-insensitive; unrecognized categories default to the kitchen.
func StationForCategory(category string) Station {
	switch NormalizeCategory(category) {
	case CategoryRawMeat:
		return StationButchery
	case CategoryDrinks:
		return StationBar
	default:
		return StationKitchen
	}
}

// NeedsPrepTag reports whether items routed to this station get a daily ticket.
// The bar works straight off the order screen and never takes a tag.
func (s Station) NeedsPrepTag() bool {
	return s != StationBar
}

type Order struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	TableID     uint        `json:"table_id" gorm:"not null"`
	Table       Table       `json:"table,omitempty" gorm:"foreignKey:TableID"`
	UserID      uint        `json:"user_id" gorm:"not null"`
	User        User        `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Status      OrderStatus `json:"status" gorm:"not null;default:'open'"`
	TotalAmount float64     `json:"total_amount" gorm:"type:decimal(10,2);default:0"`
	Items       []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	OrderID    uint       `json:"order_id" gorm:"not null"`
	MenuItemID uint       `json:"menu_item_id" gorm:"not null"`
	MenuItem   MenuItem   `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	Quantity   int        `json:"quantity" gorm:"not null"`
	Price      float64    `json:"price" gorm:"type:decimal(10,2);not null"` // snapshot price at add time
	Notes      string     `json:"notes"`
	PrepTag    *string    `json:"prep_tag"`
	Status     ItemStatus `json:"status" gorm:"not null;default:'pending'"`
	Station    Station    `json:"station" gorm:"not null"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// KitchenTagCounter holds the last prep-tag number issued for a calendar date.
// One row per date, guarded by the unique index.
type KitchenTagCounter struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	Date       string `json:"date" gorm:"uniqueIndex;not null"` // YYYY-MM-DD
	LastNumber int    `json:"last_number" gorm:"not null;default:0"`
}
