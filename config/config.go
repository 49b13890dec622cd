package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	RateLimit RateLimitConfig
	Metrics   MetricsConfig
}

type AppConfig struct {
	Name        string `env:"APP_NAME" envDefault:"cofrinho"`
	Environment string `env:"APP_ENV" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

type ServerConfig struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	AllowedOrigins  []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

type DatabaseConfig struct {
	// Driver aceita "postgres" ou "sqlite".
	Driver          string        `env:"DATABASE_DRIVER" envDefault:"postgres"`
	DSN             string        `env:"DATABASE_DSN,required,notEmpty"`
	Host            string        `env:"DATABASE_HOST" envDefault:"localhost"`
	Port            int           `env:"DATABASE_PORT" envDefault:"5432"`
	DBName          string        `env:"DATABASE_NAME" envDefault:"cofrinho"`
	MaxOpenConns    int           `env:"DATABASE_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"DATABASE_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DATABASE_CONN_MAX_LIFETIME" envDefault:"5m"`
}

type JWTConfig struct {
	Secret string        `env:"JWT_SECRET,required,notEmpty"`
	Issuer string        `env:"JWT_ISSUER" envDefault:"cofrinho"`
	TTL    time.Duration `env:"JWT_TTL" envDefault:"168h"`
}

type RateLimitConfig struct {
	Requests int           `env:"RATE_LIMIT_REQUESTS" envDefault:"100"`
	Window   time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`
}

type MetricsConfig struct {
	Enabled bool `env:"METRICS_ENABLED" envDefault:"true"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("DATABASE_DRIVER invalido: %q", c.Database.Driver)
	}
	if c.RateLimit.Requests < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS deve ser maior que zero")
	}
	if c.RateLimit.Window <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW deve ser positivo")
	}
	return nil
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// LoadJWT le apenas a configuracao de JWT, para ferramentas que nao sobem o banco.
func LoadJWT() (JWTConfig, error) {
	var cfg JWTConfig
	if err := env.Parse(&cfg); err != nil {
		return JWTConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
