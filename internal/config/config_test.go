package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Success loading from env", func(t *testing.T) {
		t.Setenv("API_BASE_URL", "https://api.example.com")
		t.Setenv("APP_ENV", "test")
		t.Setenv("HTTP_TIMEOUT_SECONDS", "30")
		t.Setenv("SESSION_FILE", "/tmp/session.json")

		cfg := LoadConfig()

		assert.NotNil(t, cfg)
		assert.Equal(t, "https://api.example.com", cfg.APIBaseURL)
		assert.Equal(t, "test", cfg.AppEnv)
		assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
		assert.Equal(t, "/tmp/session.json", cfg.SessionFile)
	})

	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("API_BASE_URL", "")
		t.Setenv("APP_ENV", "")
		t.Setenv("HTTP_TIMEOUT_SECONDS", "")
		t.Setenv("SESSION_FILE", "/tmp/session.json")

		cfg := LoadConfig()

		assert.Equal(t, "http://localhost:3000", cfg.APIBaseURL)
		assert.Equal(t, defaultTimeout, cfg.HTTPTimeout)
	})
}
