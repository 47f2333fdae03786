package config

import (
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Config holds all configuration for the engine
type Config struct {
	Redis     RedisConfig
	Inventory InventoryConfig
}

// RedisConfig holds Redis-specific configuration. An empty Addr selects
// the in-memory repository.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int `validate:"gte=0"`
}

// InventoryConfig holds container sizing defaults
type InventoryConfig struct {
	PlayerCapacity  int `validate:"gt=0"`
	StorageCapacity int `validate:"gt=0"`
	StartingGold    int `validate:"gte=0"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Redis: RedisConfig{
			Addr:     os.Getenv("ENGINE_REDIS_ADDR"),
			Password: os.Getenv("ENGINE_REDIS_PASSWORD"),
			DB:       getEnvAsIntOrDefault("ENGINE_REDIS_DB", 0),
		},
		Inventory: InventoryConfig{
			PlayerCapacity:  getEnvAsIntOrDefault("ENGINE_PLAYER_CAPACITY", 30),
			StorageCapacity: getEnvAsIntOrDefault("ENGINE_STORAGE_CAPACITY", 50),
			StartingGold:    getEnvAsIntOrDefault("ENGINE_STARTING_GOLD", 0),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
