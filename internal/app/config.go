package app

import (
	"os"
	"strconv"
	"time"

	"github.com/socialsched/socialsched/pkg/cryptox"
)

type Config struct {
	DatabaseFile string        // Optional: path to the sqlite data file (default: ./socialsched.db)
	BcryptCost   int           // Optional: bcrypt work factor (default: 10)
	SessionTTL   time.Duration // Optional: default session expiry window (default: 24h)
	RememberTTL  time.Duration // Optional: remember-me expiry window (default: 720h)
	Env          string        // Environment (dev, staging, prod) (default: dev)
	LogLevel     string        // Log level (debug, info, warn, error) (default: info)
	LogFormat    string        // Log format (json, text) (default: json)
}

func LoadConfig() Config {
	return Config{
		DatabaseFile: getEnvOrDefault("SCHED_DATABASE_FILE", "socialsched.db"),
		BcryptCost:   getEnvIntOrDefault("SCHED_BCRYPT_COST", cryptox.DefaultCost),
		SessionTTL:   getEnvDurationOrDefault("SCHED_SESSION_TTL", 24*time.Hour),
		RememberTTL:  getEnvDurationOrDefault("SCHED_REMEMBER_TTL", 30*24*time.Hour),
		Env:          getEnvOrDefault("ENV", "dev"),
		LogLevel:     getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:    getEnvOrDefault("LOG_FORMAT", "json"),
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
