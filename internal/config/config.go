package config

import (
	"os"
	"strings"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL string   `yaml:"database_url" env:"DATABASE_URL"`
	RedisURL    string   `yaml:"redis_url" env:"REDIS_URL"`
	ServerPort  string   `yaml:"server_port" env:"SERVER_PORT"`
	CORSOrigins []string `yaml:"cors_origins" env:"CORS_ORIGINS"`
}

// Load builds config from environment variables.
// If DATABASE_URL is not set, Load tries to load .env.local and .env from the
// current directory first. DATABASE_URL and REDIS_URL are optional: without a
// database the server runs on an in-memory store, without Redis caching is
// disabled.
func Load() (*Config, error) {
	if os.Getenv("DATABASE_URL") == "" {
		loadEnvFiles()
	}
	c := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),
		ServerPort:  os.Getenv("SERVER_PORT"),
		CORSOrigins: splitOrigins(os.Getenv("CORS_ORIGINS")),
	}
	c.applyDefaults()
	return c, nil
}

func (c *Config) applyDefaults() {
	if c.ServerPort == "" {
		c.ServerPort = "8080"
	}
	if len(c.CORSOrigins) == 0 {
		c.CORSOrigins = []string{"*"}
	}
}

// splitOrigins parses a comma-separated origin list, dropping empty entries.
func splitOrigins(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
