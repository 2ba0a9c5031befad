package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is loaded once at startup and treated as read-only afterwards.
// Components receive it (or the fields they need) explicitly.
type Config struct {
	ListenAddr  string `env:"LISTEN_ADDR" envDefault:":8000"`
	Environment string `env:"APP_ENV" envDefault:"development"`

	DatabaseURL string `env:"DATABASE_URL,notEmpty"`

	JWTSecretKey        string `env:"JWT_SECRET_KEY,notEmpty"`
	JWTRefreshSecretKey string `env:"JWT_REFRESH_SECRET_KEY,notEmpty"`
	JWTAlgorithm        string `env:"JWT_ALGORITHM" envDefault:"HS256"`
	AccessTokenTTL      int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES" envDefault:"30"`
	RefreshTokenTTL     int    `env:"REFRESH_TOKEN_EXPIRE_DAYS" envDefault:"7"`

	BcryptCost int `env:"BCRYPT_COST" envDefault:"12"`

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`

	AuthRateLimitRPM int `env:"AUTH_RATE_LIMIT_RPM" envDefault:"30"`

	// RedisAddr enables the token blacklist when set. The blacklist is
	// best-effort; an empty value or an unreachable server disables it.
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	OTELEnabled              bool          `env:"OTEL_ENABLED" envDefault:"false"`
	OTELServiceName          string        `env:"OTEL_SERVICE_NAME" envDefault:"valorant-coach-service"`
	OTELExporterOTLPEndpoint string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:"localhost:4317"`
	OTELExporterOTLPInsecure bool          `env:"OTEL_EXPORTER_OTLP_INSECURE" envDefault:"true"`
	OTELMetricsInterval      time.Duration `env:"OTEL_METRICS_EXPORT_INTERVAL" envDefault:"30s"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

func (c *Config) AccessTokenLifetime() time.Duration {
	return time.Duration(c.AccessTokenTTL) * time.Minute
}

func (c *Config) RefreshTokenLifetime() time.Duration {
	return time.Duration(c.RefreshTokenTTL) * 24 * time.Hour
}

func (c *Config) BlacklistEnabled() bool { return c.RedisAddr != "" }

// Load reads configuration from the environment, optionally seeded from a
// .env file. Variables already present in the environment win.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		_ = godotenv.Load(envFile)
	}
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		err = fmt.Errorf("parse config: %w", err)
		recordConfigLoadEvent(context.Background(), cfg.Environment, "failure", classifyConfigLoadError(err))
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		err = fmt.Errorf("validate config: %w", err)
		recordConfigLoadEvent(context.Background(), cfg.Environment, "failure", classifyConfigLoadError(err))
		return nil, err
	}
	recordConfigLoadEvent(context.Background(), cfg.Environment, "success", "none")
	return cfg, nil
}

func (c *Config) validate() error {
	if strings.ToUpper(c.JWTAlgorithm) != "HS256" {
		return fmt.Errorf("unsupported signing algorithm %q", c.JWTAlgorithm)
	}
	if c.JWTSecretKey == c.JWTRefreshSecretKey {
		return fmt.Errorf("access and refresh signing secrets must differ")
	}
	if c.AccessTokenTTL <= 0 || c.RefreshTokenTTL <= 0 {
		return fmt.Errorf("token lifetimes must be positive")
	}
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return fmt.Errorf("bcrypt cost %d out of range", c.BcryptCost)
	}
	return nil
}
