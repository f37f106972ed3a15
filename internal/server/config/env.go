package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables. A local .env
// file is loaded first when present; a missing file is not an error, the
// process environment simply wins.
//
// Recognized variables:
//
//	PORT          listen port (bare port number, e.g. "3000")
//	DATABASE_DSN  SQLite database path
//	APP_ENV       environment name ("development" exposes error detail)
//	STATIC_DIR    static assets directory
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if port := os.Getenv("PORT"); port != "" {
		config.EndpointAddr = ":" + port
	}
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		config.DatabaseDSN = dsn
	}
	if env := os.Getenv("APP_ENV"); env != "" {
		config.Environment = env
	}
	if dir := os.Getenv("STATIC_DIR"); dir != "" {
		config.StaticDir = dir
	}
}
