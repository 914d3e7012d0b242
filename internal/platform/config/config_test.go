package config_test

import (
	"testing"

	"github.com/SscSPs/currency_converter_app/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "IS_PRODUCTION", "DB_DRIVER", "DATABASE_DSN", "CORS_ALLOWED_ORIGINS", "RATE_LIMIT"} {
		t.Setenv(key, "")
	}

	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "5000", cfg.Port)
	assert.False(t, cfg.IsProduction)
	assert.Equal(t, "database.sqlite", cfg.DatabaseDSN)
	assert.Equal(t, "60-M", cfg.RateLimit)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("DB_DRIVER", "pgx")
	t.Setenv("DATABASE_DSN", "postgres://localhost/conversions")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, https://converter.example.com")
	t.Setenv("RATE_LIMIT", "10-S")

	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8081", cfg.Port)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, "pgx", cfg.DBDriver)
	assert.Equal(t, "postgres://localhost/conversions", cfg.DatabaseDSN)
	assert.Equal(t, []string{"http://localhost:5173", "https://converter.example.com"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "10-S", cfg.RateLimit)
}
