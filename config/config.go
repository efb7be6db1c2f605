package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all startup configuration. It is built once in main and
// passed to constructors; nothing mutates it after Load returns.
type Config struct {
	Port         string
	DBPath       string
	JWTSecret    string
	TokenTTL     time.Duration
	LegacyMode   bool
	SeedUsername string
	SeedPassword string
}

// Load reads configuration from the environment, after loading a .env file
// if one is present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:         getEnv("PORT", "8080"),
		DBPath:       getEnv("DB_PATH", "./data/neuroflow.db"),
		JWTSecret:    getEnv("JWT_SECRET", "your-secret-key-change-this-in-production"),
		TokenTTL:     time.Duration(getEnvInt("TOKEN_TTL_HOURS", 168)) * time.Hour,
		LegacyMode:   getEnvBool("LEGACY_MODE", false),
		SeedUsername: getEnv("SEED_USERNAME", ""),
		SeedPassword: getEnv("SEED_PASSWORD", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultVal
}
