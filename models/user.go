package models

import (
	"time"
)

// StaffRole defines allowed staff roles in the system
type StaffRole string

const (
	RoleAdmin    StaffRole = "admin"
	RoleManager  StaffRole = "manager"
	RoleWaiter   StaffRole = "waiter"
	RoleKitchen  StaffRole = "kitchen"
	RoleBar      StaffRole = "bar"
	RoleButchery StaffRole = "butchery"
	RoleCashier  StaffRole = "cashier"
)

// ValidRoles is the full staff role enumeration
var ValidRoles = []StaffRole{
	RoleAdmin, RoleManager, RoleWaiter,
	RoleKitchen, RoleBar, RoleButchery, RoleCashier,
}

// IsValidRole reports whether role is part of the staff enumeration
func IsValidRole(role StaffRole) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         StaffRole `json:"role" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
