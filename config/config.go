package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config holds application configuration
type Config struct {
	Port   string
	DBName string
	JWTKey string

	AdminSecretHash []byte // bcrypt hash of the shared admin secret
	AdminPanelPath  string // obscured base path for the admin API

	OutputDir   string // static file root the publisher writes into
	PublishCron string // cron spec for scheduled republish; empty disables it
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:   getEnv("PORT", "3000"),
		DBName: getEnv("DB_NAME", "content.db"),
		JWTKey: getEnv("JWT_SECRET_KEY", "defaultSecret"),

		AdminPanelPath: getEnv("ADMIN_PANEL_PATH", "/panel-x7k9m2"),
		OutputDir:      getEnv("OUTPUT_DIR", "./public"),
		PublishCron:    getEnv("PUBLISH_CRON", ""),
	}

	// The shared secret is only kept in memory as a bcrypt hash
	secret := getEnv("ADMIN_SECRET", "admin")
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), getEnvInt("SALT_ROUND", 10))
	if err != nil {
		log.Fatalf("Failed to hash admin secret: %v", err)
	}
	AppConfig.AdminSecretHash = hash

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if secret == "admin" {
		log.Println("Warning: Using default ADMIN_SECRET. Update it in your environment.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
