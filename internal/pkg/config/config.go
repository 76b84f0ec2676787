package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, Redis connection, etc.)
// - default: Values common across all environments (timeouts, TTLs, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	Redis   RedisConfig
	CORS    CORSConfig
	Log     LogConfig
	Booking BookingConfig
	Payment PaymentConfig
	Catalog CatalogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-Client-ID,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type BookingConfig struct {
	// A draft is a single-slot hand-off between checkout steps; it expires
	// rather than lingering until the next overwrite.
	DraftTTL       time.Duration `envconfig:"BOOKING_DRAFT_TTL" default:"30m"`
	IdempotencyTTL time.Duration `envconfig:"BOOKING_IDEMPOTENCY_TTL" default:"24h"`
	EventTopic     string        `envconfig:"BOOKING_EVENT_TOPIC" default:"booking-confirmed"`
}

type PaymentConfig struct {
	Currency    string        `envconfig:"PAYMENT_CURRENCY" default:"INR"`
	DeclineRate float64       `envconfig:"PAYMENT_DECLINE_RATE" default:"0.1"`
	Latency     time.Duration `envconfig:"PAYMENT_LATENCY" default:"200ms"`
}

type CatalogConfig struct {
	BaseURL string        `envconfig:"CATALOG_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"CATALOG_TIMEOUT" default:"10s"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		Redis: RedisConfig{
			Addr: "localhost:16379",
		},
		Log: LogConfig{
			Level:      "error",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Booking: BookingConfig{
			DraftTTL:       30 * time.Minute,
			IdempotencyTTL: 24 * time.Hour,
			EventTopic:     "booking-confirmed",
		},
		Payment: PaymentConfig{
			Currency:    "INR",
			DeclineRate: 0,
			Latency:     0,
		},
		Catalog: CatalogConfig{
			BaseURL: "http://localhost:18080",
			Timeout: 10 * time.Second,
		},
	}
}
