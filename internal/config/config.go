package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/kapu/portfolio-client-go/internal/constants"
)

type Config struct {
	API     APIConfig
	Icons   IconConfig
	Logging LoggingConfig
}

type APIConfig struct {
	BaseURL    string
	Timeout    time.Duration
	AdminToken string
}

type IconConfig struct {
	CatalogPath string
}

type LoggingConfig struct {
	Level string
	File  string
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		API: APIConfig{
			BaseURL:    getEnv("PORTFOLIO_API_URL", constants.APIConfig.DefaultBaseURL),
			Timeout:    time.Duration(getEnvInt("PORTFOLIO_API_TIMEOUT_SECONDS", 0)) * time.Second,
			AdminToken: getEnv("PORTFOLIO_ADMIN_TOKEN", ""),
		},
		Icons: IconConfig{
			CatalogPath: getEnv("PORTFOLIO_ICON_CATALOG", ""),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("PORTFOLIO_API_URL is required")
	}
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("PORTFOLIO_API_URL must be an absolute URL, got %q", c.API.BaseURL)
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("PORTFOLIO_API_TIMEOUT_SECONDS must not be negative")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
