package config

import (
	"errors"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	HTTPPort int    `env:"HTTP_PORT" env-default:"8080"`
	Env      string `env:"ENV" env-default:"development"`

	PostgresDSN   string `env:"POSTGRES_DSN" env-required:"true"`
	MigrationsDir string `env:"MIGRATIONS_DIR" env-default:"file://migrations"`

	JWTAccessSecret  string        `env:"JWT_ACCESS_SECRET" env-required:"true"`
	JWTRefreshSecret string        `env:"JWT_REFRESH_SECRET"`
	AccessTokenTTL   time.Duration `env:"ACCESS_TOKEN_TTL" env-default:"15m"`
	RefreshTokenTTL  time.Duration `env:"REFRESH_TOKEN_TTL" env-default:"720h"`

	RedisURL string        `env:"REDIS_URL"`
	CacheTTL time.Duration `env:"CACHE_TTL" env-default:"5m"`

	KafkaBrokers []string `env:"KAFKA_BROKERS"`
	KafkaTopic   string   `env:"KAFKA_TOPIC" env-default:"classroom.events"`
}

// New reads ./config/.env when present and falls back to process env vars.
func New() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig("./config/.env", &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err := cleanenv.ReadEnv(&cfg); err != nil {
				return nil, err
			}
			return &cfg, nil
		}
		return nil, err
	}
	return &cfg, nil
}
