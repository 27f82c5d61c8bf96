package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	DBDSN                 string        `yaml:"db_dsn"`
	Environment           string        `yaml:"env"`
	HTTPAddr              string        `yaml:"http_addr"`
	MigrationsPath        string        `yaml:"migrations_path"`
	TelegramToken         string        `yaml:"telegram_token"`
	PendingDigestInterval time.Duration `yaml:"-"`

	RawDigestInterval string `yaml:"pending_digest_interval"`
}

// Load reads .env, then the optional CONFIG_FILE, then the environment.
// Environment variables win over file values.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Environment:       "development",
		HTTPAddr:          ":8080",
		MigrationsPath:    "migrations",
		RawDigestInterval: "24h",
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	overrideFromEnv(&cfg.DBDSN, "DB_DSN")
	overrideFromEnv(&cfg.Environment, "ENV")
	overrideFromEnv(&cfg.HTTPAddr, "HTTP_ADDR")
	overrideFromEnv(&cfg.MigrationsPath, "MIGRATIONS_PATH")
	overrideFromEnv(&cfg.TelegramToken, "TELEGRAM_TOKEN")
	overrideFromEnv(&cfg.RawDigestInterval, "PENDING_DIGEST_INTERVAL")

	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required but not set")
	}

	interval, err := time.ParseDuration(cfg.RawDigestInterval)
	if err != nil {
		return nil, fmt.Errorf("parse PENDING_DIGEST_INTERVAL: %w", err)
	}
	if interval <= 0 {
		return nil, fmt.Errorf("PENDING_DIGEST_INTERVAL must be positive, got %s", interval)
	}
	cfg.PendingDigestInterval = interval

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func overrideFromEnv(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// TelegramEnabled reports whether notifications should go through Telegram
func (c *Config) TelegramEnabled() bool {
	return c.TelegramToken != ""
}
