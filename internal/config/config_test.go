package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Port:          "5000",
		JWTSecret:     "dev-secret-change-in-production",
		TokenTTLHours: 2160,
		Env:           "development",
	}
}

func TestValidate(t *testing.T) {
	t.Run("development defaults pass", func(t *testing.T) {
		assert.NoError(t, validConfig().Validate())
	})

	t.Run("port required", func(t *testing.T) {
		cfg := validConfig()
		cfg.Port = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("secret required", func(t *testing.T) {
		cfg := validConfig()
		cfg.JWTSecret = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("ttl must be positive", func(t *testing.T) {
		cfg := validConfig()
		cfg.TokenTTLHours = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("production rejects default secret", func(t *testing.T) {
		cfg := validConfig()
		cfg.Env = "production"
		cfg.DBPassword = "sufficiently-strong-password"
		assert.Error(t, cfg.Validate())

		cfg.JWTSecret = "a-long-production-secret-with-32plus-chars"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("production rejects short secret", func(t *testing.T) {
		cfg := validConfig()
		cfg.Env = "production"
		cfg.JWTSecret = "short"
		cfg.DBPassword = "sufficiently-strong-password"
		assert.Error(t, cfg.Validate())
	})

	t.Run("production rejects weak db password", func(t *testing.T) {
		cfg := validConfig()
		cfg.Env = "production"
		cfg.JWTSecret = "a-long-production-secret-with-32plus-chars"
		cfg.DBPassword = "password"
		assert.Error(t, cfg.Validate())
	})
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, 2160, cfg.TokenTTLHours)
	assert.Equal(t, "development", cfg.Env)
}
