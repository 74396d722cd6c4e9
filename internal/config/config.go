package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the planner
type Config struct {
	Data    DataConfig
	Redis   RedisConfig
	Webhook WebhookConfig
}

// DataConfig locates the static reference data files
type DataConfig struct {
	// Dir contains modifiers.json, recipes.json and presets.yaml
	Dir string
}

// RedisConfig holds Redis-specific configuration. Redis is optional; when
// Addr is empty the planner runs with in-memory repositories only.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// WebhookConfig holds the optional share-beacon endpoint
type WebhookConfig struct {
	URL     string
	Timeout time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Data: DataConfig{
			Dir: getEnvOrDefault("GEARPLAN_DATA_DIR", "data"),
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
		},
		Webhook: WebhookConfig{
			URL:     os.Getenv("GEARPLAN_WEBHOOK_URL"),
			Timeout: time.Duration(getEnvAsIntOrDefault("GEARPLAN_WEBHOOK_TIMEOUT_MS", 2000)) * time.Millisecond,
		},
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
