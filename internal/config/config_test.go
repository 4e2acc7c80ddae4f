package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CLINIC_SERVER_URL", "")
	t.Setenv("CLINIC_STATE_DIR", "")
	t.Setenv("CLINIC_HTTP_TIMEOUT", "")

	cfg := Load()
	if cfg.ServerURL != "http://localhost:8080" {
		t.Errorf("ServerURL = %q", cfg.ServerURL)
	}
	if cfg.StateDir == "" {
		t.Error("StateDir is empty")
	}
	if cfg.HTTPTimeout != 15*time.Second {
		t.Errorf("HTTPTimeout = %v", cfg.HTTPTimeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CLINIC_SERVER_URL", "https://clinic.example.com")
	t.Setenv("CLINIC_STATE_DIR", "/tmp/clinic-test")
	t.Setenv("CLINIC_HTTP_TIMEOUT", "3s")

	cfg := Load()
	if cfg.ServerURL != "https://clinic.example.com" {
		t.Errorf("ServerURL = %q", cfg.ServerURL)
	}
	if cfg.StateDir != "/tmp/clinic-test" {
		t.Errorf("StateDir = %q", cfg.StateDir)
	}
	if cfg.HTTPTimeout != 3*time.Second {
		t.Errorf("HTTPTimeout = %v", cfg.HTTPTimeout)
	}
}

func TestLoadBadTimeoutFallsBack(t *testing.T) {
	t.Setenv("CLINIC_HTTP_TIMEOUT", "soon")
	cfg := Load()
	if cfg.HTTPTimeout != 15*time.Second {
		t.Errorf("HTTPTimeout = %v, want default", cfg.HTTPTimeout)
	}
}
