package app

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Issuer         string // Issuer claim for access tokens (default: openlocal-market)
	BootstrapToken string // Optional: token required to perform bootstrap

	DatabaseFile         string        // Path to SQLite database file (default: ./market.db)
	PepperFile           string        // Path to password hashing pepper file (default: ./pepper)
	AccessTokenTTL       time.Duration // Access token lifetime (default: 15m)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

// LoadConfig reads configuration from the environment. A .env file in the
// working directory is loaded first when present.
func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		Issuer:               getEnvOrDefault("MARKET_ISSUER", "openlocal-market"),
		BootstrapToken:       os.Getenv("BOOTSTRAP_TOKEN"),
		DatabaseFile:         getEnvOrDefault("MARKET_DATABASE_FILE", "market.db"),
		PepperFile:           getEnvOrDefault("MARKET_PEPPER_FILE", "pepper"),
		AccessTokenTTL:       getEnvDurationOrDefault("MARKET_ACCESS_TOKEN_TTL", 15*time.Minute),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
