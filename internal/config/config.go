package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Env         string
	DatabaseURL string

	CORSOrigins []string
	LogLevel    string

	// SeedOnStart loads the team fixture into an empty store before serving.
	SeedOnStart bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	seedOnStart, err := strconv.ParseBool(getEnv("SEED_ON_START", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid SEED_ON_START: %w", err)
	}

	cfg := &Config{
		Port:        getEnv("PORT", "8000"),
		Env:         getEnv("ENV", "development"),
		DatabaseURL: getEnv("DATABASE_URL", ""),

		CORSOrigins: parseOrigins(getEnv("CORS_ORIGINS", "http://localhost:8081,http://localhost:19006")),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		SeedOnStart: seedOnStart,
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("required environment variable not set: DATABASE_URL")
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// parseOrigins splits a comma-separated origin list. A bare "*" allows all
// origins and is meant for development only.
func parseOrigins(raw string) []string {
	if strings.TrimSpace(raw) == "*" {
		return []string{"*"}
	}

	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
