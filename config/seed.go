package config

import (
	"errors"
	"log"

	"restaurant-pos-api/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the bootstrap admin account if no admin exists yet, so a
// fresh deployment can log in and create the rest of the staff. Idempotent.
func SeedAdmin() {
	var admin models.User
	err := DB.Where("role = ?", models.RoleAdmin).First(&admin).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Failed to check for admin user: %v", err)
		return
	}

	username := getEnv("ADMIN_USERNAME", "admin")
	password := getEnv("ADMIN_PASSWORD", "admin123")

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash admin password: %v", err)
		return
	}

	admin = models.User{
		Name:         "Administrator",
		Username:     username,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("Failed to seed admin user: %v", err)
		return
	}
	log.Println("Admin user seeded successfully")
}
