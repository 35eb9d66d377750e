package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration settings.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Postgres PostgresConfig `yaml:"postgres"`
	JWT      JWTConfig      `yaml:"jwt"`
	Auth     AuthConfig     `yaml:"auth"`
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	Address     string   `yaml:"address"`
	CORSOrigins []string `yaml:"cors_origins"`
}

// PostgresConfig holds Postgres configuration.
type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

// JWTConfig holds JWT configuration.
type JWTConfig struct {
	Secret     string        `yaml:"secret"`
	DefaultTTL time.Duration `yaml:"default_ttl"`
}

// AuthConfig holds auth endpoint throttling configuration.
type AuthConfig struct {
	LoginRatePerSecond float64 `yaml:"login_rate_per_second"`
	LoginBurst         int     `yaml:"login_burst"`
}

// LoadConfig loads the configuration from a YAML file, falling back to
// environment variables when the file is absent.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return loadConfigFromEnv()
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadConfigFromEnv() (*Config, error) {
	cfg := &Config{
		HTTP: HTTPConfig{
			Address:     os.Getenv("HTTP_ADDRESS"),
			CORSOrigins: splitNonEmpty(os.Getenv("CORS_ORIGINS")),
		},
		Postgres: PostgresConfig{
			DSN: os.Getenv("POSTGRES_DSN"),
		},
		JWT: JWTConfig{
			Secret: os.Getenv("JWT_SECRET"),
		},
	}

	if ttl := os.Getenv("JWT_DEFAULT_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_DEFAULT_TTL: %w", err)
		}
		cfg.JWT.DefaultTTL = d
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.HTTP.Address == "" {
		c.HTTP.Address = ":8080"
	}
	if c.JWT.DefaultTTL == 0 {
		c.JWT.DefaultTTL = 30 * time.Minute
	}
	if c.Auth.LoginRatePerSecond == 0 {
		c.Auth.LoginRatePerSecond = 1
	}
	if c.Auth.LoginBurst == 0 {
		c.Auth.LoginBurst = 5
	}
}

func (c *Config) validate() error {
	if c.Postgres.DSN == "" {
		return fmt.Errorf("postgres DSN is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	return nil
}

func splitNonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
