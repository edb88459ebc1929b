package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment names accepted in APP_ENV.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds all application configuration.
type Config struct {
	ServerPort string
	GinMode    string
	AppEnv     string
	LogLevel   string
	LogFormat  string
	// DatabaseURL is either a SQLite file path (optionally "sqlite://" or
	// "file:" prefixed) or a postgres:// URL.
	DatabaseURL string
	MaxDBConns  int32
	// StaticDir is the built frontend served for non-API paths in production.
	StaticDir string
	// DevServerURL, when set outside production, receives every non-API request.
	DevServerURL string
	// AllowedOrigins controls HTTP CORS.
	// Empty slice means all origins are permitted (dev default).
	AllowedOrigins []string
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load() // .env is optional

	return &Config{
		ServerPort:     getEnv("SERVER_PORT", "3000"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		AppEnv:         getEnv("APP_ENV", EnvDevelopment),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "pretty"),
		DatabaseURL:    getEnv("DATABASE_URL", "curricula.db"),
		MaxDBConns:     int32(getEnvInt("MAX_DB_CONNS", 8)),
		StaticDir:      getEnv("STATIC_DIR", "dist"),
		DevServerURL:   getEnv("DEV_SERVER_URL", ""),
		AllowedOrigins: parseOrigins(getEnv("ALLOWED_ORIGINS", "")),
	}
}

// IsProduction reports whether the process serves the built frontend itself.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, EnvProduction)
}

// ListenAddr is the address the HTTP server binds to, on all interfaces.
func (c *Config) ListenAddr() string {
	return "0.0.0.0:" + c.ServerPort
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// parseOrigins splits a comma-separated origins string into a trimmed slice.
// Returns nil (allow-all) if the input is empty.
func parseOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
