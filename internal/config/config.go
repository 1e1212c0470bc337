package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything the server needs at startup. Values come from the
// process environment, optionally seeded from a .env file.
type Config struct {
	AppPort string `env:"APP_PORT" envDefault:"4006"`

	DBHost           string `env:"DB_HOST" envDefault:"localhost"`
	DBPort           string `env:"DB_PORT" envDefault:"5432"`
	DBUser           string `env:"DB_USER"`
	DBPassword       string `env:"DB_PASSWORD"`
	DBName           string `env:"DB_NAME"`
	DBSSLMode        string `env:"DB_SSLMODE" envDefault:"disable"`
	DBConnectRetries int    `env:"DB_CONNECT_RETRIES" envDefault:"10"`

	JWTSecret string        `env:"JWT_SECRET,required,notEmpty"`
	JWTTTL    time.Duration `env:"JWT_TTL" envDefault:"24h"`

	LinePushURL          string        `env:"LINE_PUSH_URL" envDefault:"https://api.line.me/v2/bot/message/push"`
	LineTimeout          time.Duration `env:"LINE_TIMEOUT" envDefault:"10s"`
	BroadcastConcurrency int           `env:"BROADCAST_CONCURRENCY" envDefault:"4"`

	AppsFile    string   `env:"APPS_FILE" envDefault:"apps.json"`
	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"` // text, json
	LogFile   string `env:"LOG_FILE"`
}

// Load reads the optional env files (missing files are ignored) and parses
// the environment into a Config.
func Load(files ...string) (*Config, error) {
	_ = godotenv.Load(files...)

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.BroadcastConcurrency < 1 {
		cfg.BroadcastConcurrency = 1
	}
	return cfg, nil
}

// DSN builds the postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.DBHost,
		c.DBUser,
		c.DBPassword,
		c.DBName,
		c.DBPort,
		c.DBSSLMode,
	)
}
