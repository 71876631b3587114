package config

import (
	"os"
	"strconv"
)

// Config holds all configuration for the application
type Config struct {
	Redis RedisConfig
	Sim   SimConfig
}

// RedisConfig holds Redis-specific configuration for the snapshot store
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// SimConfig holds settings for the simulation driver
type SimConfig struct {
	Seed  int64
	Turns int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Redis: RedisConfig{
			Addr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
		},
		Sim: SimConfig{
			Seed:  int64(getEnvAsIntOrDefault("SIM_SEED", 1)),
			Turns: getEnvAsIntOrDefault("SIM_TURNS", 10),
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
