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

// Config holds all configuration for the application
type Config struct {
	AppMode  string
	Port     string
	Database DatabaseConfig
	Admin    AdminConfig
	Session  SessionConfig

	// Timezone is the fixed deployment time zone used for all "today"
	// calendar decisions. Loaded once so the ledger never reads the host
	// zone ambiently.
	Timezone string
	Location *time.Location
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// AdminConfig holds the fixed admin credentials checked at login
type AdminConfig struct {
	Username string
	Password string
}

// SessionConfig holds admin session cookie configuration
type SessionConfig struct {
	Secret       string
	TTLHours     int
	CookieSecure bool
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

	tz := getEnv("TIME_ZONE", "Local")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid TIME_ZONE '%s': %w", tz, err)
	}

	ttlHours, _ := strconv.Atoi(getEnv("SESSION_TTL_HOURS", "24"))
	cookieSecure, _ := strconv.ParseBool(getEnv("COOKIE_SECURE", "false"))

	config := &Config{
		AppMode:  appMode,
		Port:     getEnv("PORT", "3000"),
		Database: loadDatabaseConfig(),
		Admin: AdminConfig{
			Username: getEnv("ADMIN_USERNAME", "Empresa"),
			Password: getEnv("ADMIN_PASSWORD", "Empresa123"),
		},
		Session: SessionConfig{
			Secret:       getEnv("SESSION_SECRET", "employee-tracker-secret-key-2024"),
			TTLHours:     ttlHours,
			CookieSecure: cookieSecure,
		},
		Timezone: tz,
		Location: loc,
	}

	// Set global config
	AppConfig = config

	log.Printf("✅ Configuration loaded successfully [MODE: %s, TZ: %s]", appMode, tz)
	return config, nil
}

// loadDatabaseConfig loads database config
func loadDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "3306"),
		User:     getEnv("DB_USER", "root"),
		Password: getEnv("DB_PASS", ""),
		DBName:   getEnv("DB_NAME", "timetracker"),
	}
}

// SessionTTL returns the admin session lifetime
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.Session.TTLHours) * time.Hour
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
	if origins == "" && c.IsDev() {
		return "*"
	}
	return origins
}
