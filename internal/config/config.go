package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	// Carga .env (si existe) antes de leer el entorno.
	_ "github.com/joho/godotenv/autoload"
	"github.com/kelseyhightower/envconfig"
)

// Config se lee de variables de entorno sin prefijo (PORT, DB_DSN, ...).
type Config struct {
	Port    int    `envconfig:"PORT" default:"8080" validate:"gt=0,lte=65535"`
	AppName string `envconfig:"APP_NAME" default:"furiends-pets"`

	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"5s" validate:"gt=0"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"10s" validate:"gt=0"`
	IdleTimeout     time.Duration `envconfig:"IDLE_TIMEOUT" default:"60s" validate:"gt=0"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"15s" validate:"gt=0"`

	// Vacío = repositorio in-memory (modo dev).
	DatabaseDSN     string        `envconfig:"DB_DSN"`
	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"10" validate:"gt=0"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5" validate:"gte=0"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"30m"`
	ConnMaxIdleTime time.Duration `envconfig:"DB_CONN_MAX_IDLE_TIME" default:"5m"`
	AutoMigrate     bool          `envconfig:"DB_AUTO_MIGRATE" default:"true"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn warning error"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text" validate:"oneof=text json"`

	TracingEnabled bool `envconfig:"TRACING_ENABLED" default:"false"`
	MetricsEnabled bool `envconfig:"METRICS_ENABLED" default:"true"`
	SwaggerEnabled bool `envconfig:"SWAGGER_ENABLED" default:"true"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("load config from env: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
