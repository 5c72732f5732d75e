package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

type Config struct {
	// MainDomain is the hostname (optionally host:port) of the primary
	// application. All host-header classification is performed against it.
	MainDomain string
	// ConfigAPIURL is the base URL of the tenant config service.
	ConfigAPIURL string
	DatabaseURL  string

	HTTPListenAddr    string
	MetricsListenAddr string
	MigrationsDir     string

	ServiceName     string
	LogLevel        string
	ResolverTimeout time.Duration
}

func Load() (*Config, error) {
	resolverTimeout, err := time.ParseDuration(getEnv("RESOLVER_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("parse RESOLVER_TIMEOUT: %w", err)
	}

	cfg := &Config{
		MainDomain:        getEnv("MAIN_DOMAIN", "localhost:3000"),
		ConfigAPIURL:      strings.TrimRight(getEnv("CONFIG_API_URL", "http://localhost:5000"), "/"),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		HTTPListenAddr:    getEnv("HTTP_LISTEN_ADDR", ":3000"),
		MetricsListenAddr: getEnv("METRICS_LISTEN_ADDR", ":9091"),
		MigrationsDir:     getEnv("MIGRATIONS_DIR", "migrations"),
		ServiceName:       getEnv("SERVICE_NAME", ""),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		ResolverTimeout:   resolverTimeout,
	}

	return cfg, nil
}

// Validate checks that all config required by the given service is present.
func (c *Config) Validate(service string) error {
	var missing []string

	switch service {
	case "gateway":
		if c.MainDomain == "" {
			missing = append(missing, "MAIN_DOMAIN")
		}
		if c.ConfigAPIURL == "" {
			missing = append(missing, "CONFIG_API_URL")
		}
		if c.HTTPListenAddr == "" {
			missing = append(missing, "HTTP_LISTEN_ADDR")
		}
	case "config-api":
		if c.DatabaseURL == "" {
			missing = append(missing, "DATABASE_URL")
		}
		if c.HTTPListenAddr == "" {
			missing = append(missing, "HTTP_LISTEN_ADDR")
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required config: %s", strings.Join(missing, ", "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
