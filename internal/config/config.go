package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Admin credentials (Basic auth + login endpoint)
	AdminUsername string
	AdminPassword string

	// Config store
	StoreDriver string // "redis" or "postgres"
	RedisURL    string
	DatabaseURL string

	// Frontend
	FrontendURL string
	StaticDir   string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:          getEnvOrDefault("PORT", "8080"),
		Env:           getEnvOrDefault("ENV", "development"),
		AdminUsername: mustGetEnv("ADMIN_USERNAME"),
		AdminPassword: mustGetEnv("ADMIN_PASSWORD"),
		StoreDriver:   getEnvOrDefault("STORE_DRIVER", "redis"),
		RedisURL:      getEnvOrDefault("REDIS_URL", ""),
		DatabaseURL:   getEnvOrDefault("DATABASE_URL", ""),
		FrontendURL:   getEnvOrDefault("FRONTEND_URL", "http://localhost:5173"),
		StaticDir:     getEnvOrDefault("STATIC_DIR", "./public"),
	}

	switch cfg.StoreDriver {
	case "redis":
		if cfg.RedisURL == "" {
			panic("REDIS_URL is required when STORE_DRIVER=redis")
		}
	case "postgres":
		if cfg.DatabaseURL == "" {
			panic("DATABASE_URL is required when STORE_DRIVER=postgres")
		}
	default:
		panic(fmt.Sprintf("unknown STORE_DRIVER %q (expected redis or postgres)", cfg.StoreDriver))
	}

	return cfg
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}
