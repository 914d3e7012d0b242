package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port               string
	IsProduction       bool
	DBDriver           string
	DatabaseDSN        string
	CORSAllowedOrigins []string
	RateLimit          string // ulule/limiter format, e.g. "60-M"
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "5000")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("DB_DRIVER", "sqlite3")
	v.SetDefault("DATABASE_DSN", "database.sqlite")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("RATE_LIMIT", "60-M")

	// Environment variables override .env values, which override defaults.
	v.AutomaticEnv()

	cfg := &Config{
		Port:         v.GetString("PORT"),
		IsProduction: v.GetBool("IS_PRODUCTION"),
		DBDriver:     v.GetString("DB_DRIVER"),
		DatabaseDSN:  v.GetString("DATABASE_DSN"),
		RateLimit:    v.GetString("RATE_LIMIT"),
	}

	if cfg.Port == "" {
		cfg.Port = "5000"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = "database.sqlite"
		log.Printf("Warning: DATABASE_DSN not set. Defaulting to %s\n", cfg.DatabaseDSN)
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}
