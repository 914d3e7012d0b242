package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultAPIBaseURL  = "http://localhost:5000/api"
	DefaultRatesURL    = "https://open.er-api.com/v6/latest/USD"
	DefaultHTTPTimeout = 10 * time.Second
)

// ClientConfig holds the terminal client's configuration.
type ClientConfig struct {
	APIBaseURL  string
	RatesURL    string
	HTTPTimeout time.Duration
}

// LoadClientConfig loads configuration from environment variables.
// It looks for a .env file first.
func LoadClientConfig() (*ClientConfig, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	apiBaseURL := os.Getenv("API_BASE_URL")
	if apiBaseURL == "" {
		apiBaseURL = DefaultAPIBaseURL
	}

	ratesURL := os.Getenv("RATES_URL")
	if ratesURL == "" {
		ratesURL = DefaultRatesURL
	}

	timeout := DefaultHTTPTimeout
	if timeoutStr := os.Getenv("HTTP_TIMEOUT"); timeoutStr != "" {
		parsed, err := time.ParseDuration(timeoutStr)
		if err != nil || parsed <= 0 {
			slog.Warn("Invalid value for HTTP_TIMEOUT, using default",
				slog.String("value", timeoutStr),
				slog.Duration("default", DefaultHTTPTimeout),
			)
		} else {
			timeout = parsed
		}
	}

	return &ClientConfig{
		APIBaseURL:  apiBaseURL,
		RatesURL:    ratesURL,
		HTTPTimeout: timeout,
	}, nil
}
