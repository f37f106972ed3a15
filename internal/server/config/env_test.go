package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_parseEnv(t *testing.T) {

	t.Run("PORT becomes a bind address", func(t *testing.T) {
		t.Setenv("PORT", "8081")
		t.Setenv("DATABASE_DSN", "")
		t.Setenv("APP_ENV", "")
		t.Setenv("STATIC_DIR", "")

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, ":8081", cfg.EndpointAddr)
		assert.Equal(t, "farmconnect.db", cfg.DatabaseDSN)
	})

	t.Run("all variables overlay defaults", func(t *testing.T) {
		t.Setenv("PORT", "9000")
		t.Setenv("DATABASE_DSN", ":memory:")
		t.Setenv("APP_ENV", "development")
		t.Setenv("STATIC_DIR", "assets")

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, ":9000", cfg.EndpointAddr)
		assert.Equal(t, ":memory:", cfg.DatabaseDSN)
		assert.Equal(t, "development", cfg.Environment)
		assert.True(t, cfg.IsDevelopment())
		assert.Equal(t, "assets", cfg.StaticDir)
	})

	t.Run("empty environment leaves defaults", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("DATABASE_DSN", "")
		t.Setenv("APP_ENV", "")
		t.Setenv("STATIC_DIR", "")

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, ":3000", cfg.EndpointAddr)
		assert.Equal(t, "production", cfg.Environment)
	})
}
