// Package config loads server settings from the environment with viper.
// Binaries call godotenv first, so a local .env file is honored.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
	StorageTypeSQLite = "sqlite"
)

// Config holds the server configuration
type Config struct {
	Host        string
	Port        int
	StorageType string
	RedisURL    string
	SQLitePath  string
	LogLevel    string
}

// Load reads configuration from the environment, applying defaults
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("HOST", "")
	v.SetDefault("PORT", 4000)
	v.SetDefault("STORAGE_TYPE", StorageTypeSQLite)
	v.SetDefault("REDIS_URL", "redis://localhost:6379")
	v.SetDefault("SQLITE_PATH", "memorymatch.db")
	v.SetDefault("LOG_LEVEL", "info")

	cfg := &Config{
		Host:        v.GetString("HOST"),
		Port:        v.GetInt("PORT"),
		StorageType: v.GetString("STORAGE_TYPE"),
		RedisURL:    v.GetString("REDIS_URL"),
		SQLitePath:  v.GetString("SQLITE_PATH"),
		LogLevel:    v.GetString("LOG_LEVEL"),
	}

	switch cfg.StorageType {
	case StorageTypeMemory, StorageTypeRedis, StorageTypeSQLite:
	default:
		return nil, fmt.Errorf("unknown STORAGE_TYPE %q", cfg.StorageType)
	}

	return cfg, nil
}
