package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "restaurant_pos_super_secret_2024"))

// Logger is the application-wide structured logger; InitLogger must run first
var Logger *zap.Logger

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// LoadEnv reads a .env file when present so local runs don't need exported vars
func LoadEnv() {
	if err := godotenv.Load(); err == nil {
		// JWTSecret is initialized at package load; re-read it in case
		// the .env file just supplied it.
		JWTSecret = []byte(getEnv("JWT_SECRET", "restaurant_pos_super_secret_2024"))
	}
}

// InitLogger builds the zap logger: production encoding unless running in debug
func InitLogger() {
	var err error
	if os.Getenv("GIN_MODE") == "release" {
		Logger, err = zap.NewProduction()
	} else {
		Logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
}
