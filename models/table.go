package models

import "time"

// TableStatus tracks whether a dining table is free or seated
type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableOccupied  TableStatus = "occupied"
)

type Table struct {
	ID        uint        `json:"id" gorm:"primaryKey"`
	Number    string      `json:"number" gorm:"uniqueIndex;not null"`
	Status    TableStatus `json:"status" gorm:"not null;default:'available'"`
	IsVIP     bool        `json:"is_vip" gorm:"default:false"`
	Orders    []Order     `json:"orders,omitempty" gorm:"foreignKey:TableID"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
