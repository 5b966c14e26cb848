package config

import (
	"fmt"
	"log"
	"os"

	"restaurant-pos-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB connects to Postgres when DB_HOST is configured, otherwise falls
// back to an embedded SQLite file for local development.
func InitDB() {
	var dialector gorm.Dialector
	if host := os.Getenv("DB_HOST"); host != "" {
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			host,
			mustEnv("DB_USER"),
			mustEnv("DB_PASSWORD"),
			mustEnv("DB_NAME"),
			getEnv("DB_PORT", "5432"),
			getEnv("DB_SSLMODE", "disable"),
		)
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(getEnv("DB_PATH", "restaurant_pos.db"))
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
}

// Migrate applies the schema for every model
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Table{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.KitchenTagCounter{},
	)
}

// LockForUpdate adds a row-level SELECT ... FOR UPDATE lock on Postgres.
// SQLite has no FOR UPDATE syntax and serializes writers on its own, so the
// clause is skipped there.
func LockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

func mustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("%s is required when DB_HOST is set", key)
	}
	return v
}
