package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config - настройки приложения из окружения
type Config struct {
	DatabaseURL string
	ServerAddr  string
	AdminAddr   string
	AdminKey    string
	CacheTTL    time.Duration
}

func Load() (*Config, error) {
	// .env опционален: в контейнере переменные приходят из окружения
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		ServerAddr:  getEnv("SERVER_ADDR", ":3000"),
		AdminAddr:   getEnv("ADMIN_ADDR", ":8080"),
		AdminKey:    os.Getenv("ADMIN_KEY"),
		CacheTTL:    getEnvDuration("CACHE_TTL_SECONDS", 60*time.Second),
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL not set")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	seconds, err := strconv.Atoi(v)
	if err != nil || seconds <= 0 {
		return fallback
	}
	return time.Duration(seconds) * time.Second
}
