package config

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the client configuration.
type Config struct {
	ServerURL   string        // base URL of the clinic backend
	StateDir    string        // directory holding the persisted session file
	HTTPTimeout time.Duration // per-request timeout for the API client
}

// Load reads configuration from the environment, with a .env file as an
// optional source and sensible defaults for everything.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}

	serverURL := os.Getenv("CLINIC_SERVER_URL")
	if serverURL == "" {
		serverURL = "http://localhost:8080"
	}

	stateDir := os.Getenv("CLINIC_STATE_DIR")
	if stateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		stateDir = filepath.Join(home, ".clinic-portal")
	}

	timeout := 15 * time.Second
	if raw := os.Getenv("CLINIC_HTTP_TIMEOUT"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			timeout = d
		} else {
			log.Printf("Invalid CLINIC_HTTP_TIMEOUT %q, using default: %v", raw, err)
		}
	}

	return &Config{
		ServerURL:   serverURL,
		StateDir:    stateDir,
		HTTPTimeout: timeout,
	}
}
