// README: Config loader with env defaults for HTTP, logging and CORS settings.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env  string
	HTTP struct {
		Addr            string
		ShutdownTimeout time.Duration
		CORSOrigins     []string
	}
	Log struct {
		Level string
	}
}

// IsRelease reports whether the service runs with production settings.
func (c Config) IsRelease() bool {
	return c.Env == "release"
}

func Load() (Config, error) {
	// A missing .env file is fine; real deployments use the process env.
	_ = godotenv.Load()

	var cfg Config
	cfg.Env = envOrDefault("TRAVEL_ENV", "development")
	cfg.HTTP.Addr = envOrDefault("TRAVEL_HTTP_ADDR", ":8080")
	cfg.HTTP.ShutdownTimeout = envOrDefaultDuration("TRAVEL_SHUTDOWN_TIMEOUT", 10*time.Second)
	cfg.HTTP.CORSOrigins = envOrDefaultList("TRAVEL_CORS_ORIGINS", []string{"http://localhost:3000"})
	cfg.Log.Level = envOrDefault("TRAVEL_LOG_LEVEL", "info")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func envOrDefaultList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
