// ABOUTME: Configuration loader for the POS client
// ABOUTME: Loads settings from a .env file and environment variables with defaults

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Backend
	APIBaseURL string // base URL of the pet-shop backend, e.g. https://pos.example.com/api
	TenantName string // value of the x-tenant-name header on every request

	// Client behaviour
	RequestTimeout  time.Duration // per-request timeout (default 30s)
	RefreshInterval time.Duration // background token refresh poll interval (default 4m)

	// Local state
	CredentialsFile string // path to the persisted credential record

	// Inventory
	LowStockThreshold int // stock level considered "low" (default 10)
}

// Load reads configuration from .env (if present) and the environment.
// PETSHOP_API_URL and PETSHOP_TENANT are required.
func Load() (*Config, error) {
	// Missing .env is fine; the environment alone is a valid source.
	_ = godotenv.Load()

	cfg := &Config{
		APIBaseURL:        ensureScheme(os.Getenv("PETSHOP_API_URL")),
		TenantName:        os.Getenv("PETSHOP_TENANT"),
		RequestTimeout:    time.Duration(getEnvInt("REQUEST_TIMEOUT", 30)) * time.Second,
		RefreshInterval:   time.Duration(getEnvInt("REFRESH_INTERVAL", 240)) * time.Second,
		CredentialsFile:   os.Getenv("PETSHOP_CREDENTIALS_FILE"),
		LowStockThreshold: getEnvInt("LOW_STOCK_THRESHOLD", 10),
	}

	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("PETSHOP_API_URL is required")
	}
	if cfg.TenantName == "" {
		return nil, fmt.Errorf("PETSHOP_TENANT is required")
	}
	if cfg.RequestTimeout < time.Second {
		return nil, fmt.Errorf("REQUEST_TIMEOUT must be at least 1 second")
	}
	if cfg.RefreshInterval < 10*time.Second {
		return nil, fmt.Errorf("REFRESH_INTERVAL must be at least 10 seconds")
	}
	if cfg.LowStockThreshold < 0 {
		return nil, fmt.Errorf("LOW_STOCK_THRESHOLD must not be negative")
	}

	if cfg.CredentialsFile == "" {
		path, err := defaultCredentialsFile()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve credentials path: %w", err)
		}
		cfg.CredentialsFile = path
	}

	return cfg, nil
}

// defaultCredentialsFile returns the per-user default credential path.
func defaultCredentialsFile() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "petshop-pos", "credentials.json"), nil
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// ensureScheme adds https:// prefix if the URL has no scheme
func ensureScheme(url string) string {
	if url == "" {
		return url
	}
	url = strings.TrimRight(url, "/")
	if !strings.Contains(url, "://") {
		return "https://" + url
	}
	return url
}
