// Package config loads the server configuration from a .env file (if
// present) and environment variables.
package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs at startup.
type Config struct {
	Port      string
	MongoURI  string
	MongoDB   string
	DBPath    string
	JWTSecret string
}

// Load reads .env (ok if missing in prod) and the environment.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:      getenv("PORT", "8080"),
		MongoURI:  os.Getenv("MONGO_URI"),
		MongoDB:   getenv("MONGO_DB", "volejbal"),
		DBPath:    getenv("DB_PATH", "./data/volejbal.db"),
		JWTSecret: os.Getenv("JWT_SECRET"),
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "volejbal-dev-secret"
		slog.Warn("JWT_SECRET not set, using development default")
	}
	return cfg
}

// UseMongo reports whether remote credentials are configured. Backend
// selection happens once, here; call sites never branch on it.
func (c Config) UseMongo() bool {
	return c.MongoURI != ""
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
