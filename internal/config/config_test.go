// ABOUTME: Tests for configuration loading
// ABOUTME: Covers required keys, defaults, URL normalization and validation limits

package config

import (
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PETSHOP_API_URL", "https://pos.example.com/api")
	t.Setenv("PETSHOP_TENANT", "petshop-central")
	t.Setenv("REQUEST_TIMEOUT", "")
	t.Setenv("REFRESH_INTERVAL", "")
	t.Setenv("PETSHOP_CREDENTIALS_FILE", "")
	t.Setenv("LOW_STOCK_THRESHOLD", "")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.APIBaseURL != "https://pos.example.com/api" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.TenantName != "petshop-central" {
		t.Errorf("TenantName = %q", cfg.TenantName)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("RequestTimeout = %v, want 30s", cfg.RequestTimeout)
	}
	if cfg.RefreshInterval != 240*time.Second {
		t.Errorf("RefreshInterval = %v, want 4m", cfg.RefreshInterval)
	}
	if cfg.LowStockThreshold != 10 {
		t.Errorf("LowStockThreshold = %d, want 10", cfg.LowStockThreshold)
	}
	if cfg.CredentialsFile == "" {
		t.Error("CredentialsFile should default to a per-user path")
	}
}

func TestLoadRequiredKeys(t *testing.T) {
	tests := []struct {
		name  string
		unset string
	}{
		{"missing api url", "PETSHOP_API_URL"},
		{"missing tenant", "PETSHOP_TENANT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.unset, "")

			if _, err := Load(); err == nil {
				t.Errorf("Load() should fail without %s", tt.unset)
			}
		})
	}
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("REQUEST_TIMEOUT", "5")
	t.Setenv("REFRESH_INTERVAL", "60")
	t.Setenv("LOW_STOCK_THRESHOLD", "3")
	t.Setenv("PETSHOP_CREDENTIALS_FILE", "/tmp/creds.json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.RequestTimeout != 5*time.Second {
		t.Errorf("RequestTimeout = %v, want 5s", cfg.RequestTimeout)
	}
	if cfg.RefreshInterval != time.Minute {
		t.Errorf("RefreshInterval = %v, want 1m", cfg.RefreshInterval)
	}
	if cfg.LowStockThreshold != 3 {
		t.Errorf("LowStockThreshold = %d, want 3", cfg.LowStockThreshold)
	}
	if cfg.CredentialsFile != "/tmp/creds.json" {
		t.Errorf("CredentialsFile = %q", cfg.CredentialsFile)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"timeout below one second", "REQUEST_TIMEOUT", "0"},
		{"refresh interval too short", "REFRESH_INTERVAL", "5"},
		{"negative low stock threshold", "LOW_STOCK_THRESHOLD", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.key, tt.value)

			if _, err := Load(); err == nil {
				t.Errorf("Load() should reject %s=%s", tt.key, tt.value)
			}
		})
	}
}

func TestEnsureScheme(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"pos.example.com/api", "https://pos.example.com/api"},
		{"https://pos.example.com/api/", "https://pos.example.com/api"},
		{"http://localhost:3000/api", "http://localhost:3000/api"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := ensureScheme(tt.in); got != tt.want {
			t.Errorf("ensureScheme(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
