package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL  string
	AppEnv      string
	HTTPTimeout time.Duration
	SessionFile string
}

const defaultTimeout = 15 * time.Second

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		APIBaseURL:  os.Getenv("API_BASE_URL"),
		AppEnv:      os.Getenv("APP_ENV"),
		HTTPTimeout: defaultTimeout,
		SessionFile: os.Getenv("SESSION_FILE"),
	}

	if v := os.Getenv("HTTP_TIMEOUT_SECONDS"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			log.Fatalf("invalid HTTP_TIMEOUT_SECONDS: %q", v)
		}
		cfg.HTTPTimeout = time.Duration(secs) * time.Second
	}

	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = "http://localhost:3000"
	}

	if cfg.SessionFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			log.Fatal("SESSION_FILE not set and home directory unavailable")
		}
		cfg.SessionFile = filepath.Join(home, ".shopfront", "session.json")
	}

	return cfg
}
