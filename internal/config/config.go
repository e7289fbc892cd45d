package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// MinSecretLength is the minimum accepted JWT signing secret length in
// bytes. Shorter secrets make the HS256 signature brute-forceable, so
// startup refuses them outright instead of falling back to a default.
const MinSecretLength = 32

// Config holds all configuration for the application
type Config struct {
	AppMode  string
	Port     string
	Database DatabaseConfig
	JWT      JWTConfig
	Auth     AuthConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// JWTConfig holds token service configuration
type JWTConfig struct {
	Secret        string
	ExpiryMinutes int
}

// AuthConfig holds credential and brute-force guard configuration
type AuthConfig struct {
	BcryptCost       int
	LoginMaxAttempts int
	LoginWindow      time.Duration
}

// Global config instance
var AppConfig *Config

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	jwtCfg, err := loadJWTConfig()
	if err != nil {
		return nil, err
	}

	config := &Config{
		AppMode: appMode,
		Port:    getEnv("PORT", "3000"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "3306"),
			User:     getEnv("DB_USER", "root"),
			Password: getEnv("DB_PASS", ""),
			DBName:   getEnv("DB_NAME", "securepay"),
		},
		JWT:  jwtCfg,
		Auth: loadAuthConfig(),
	}

	AppConfig = config

	log.Printf("✅ Configuration loaded successfully [MODE: %s]", appMode)
	return config, nil
}

// loadJWTConfig loads token service config. There is deliberately no
// fallback secret: a missing or short JWT_SECRET aborts startup.
func loadJWTConfig() (JWTConfig, error) {
	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		return JWTConfig{}, fmt.Errorf("JWT_SECRET is not set")
	}
	if len(secret) < MinSecretLength {
		return JWTConfig{}, fmt.Errorf("JWT_SECRET must be at least %d bytes, got %d", MinSecretLength, len(secret))
	}

	expiryMinutes, _ := strconv.Atoi(getEnv("JWT_EXPIRY_MINUTES", "60"))
	if expiryMinutes <= 0 {
		expiryMinutes = 60
	}

	return JWTConfig{
		Secret:        secret,
		ExpiryMinutes: expiryMinutes,
	}, nil
}

// loadAuthConfig loads hashing and brute-force guard config
func loadAuthConfig() AuthConfig {
	cost, _ := strconv.Atoi(getEnv("BCRYPT_COST", "10"))
	maxAttempts, _ := strconv.Atoi(getEnv("LOGIN_MAX_ATTEMPTS", "6"))
	windowMinutes, _ := strconv.Atoi(getEnv("LOGIN_WINDOW_MINUTES", "15"))

	return AuthConfig{
		BcryptCost:       cost,
		LoginMaxAttempts: maxAttempts,
		LoginWindow:      time.Duration(windowMinutes) * time.Minute,
	}
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		return "https://portal.securepay.example"
	}
	return origins
}
