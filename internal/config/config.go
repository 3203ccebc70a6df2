// Package config loads the storefront configuration from the environment.
// Collaborator settings are optional: leaving one unset disables that surface
// rather than failing startup.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HTTPPort        string        `envconfig:"HTTP_PORT" default:"8080"`
	RequestTimeout  time.Duration `envconfig:"REQUEST_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`

	// Cart snapshots. Empty RedisAddr keeps carts in process memory.
	RedisAddr     string `envconfig:"REDIS_ADDR"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`

	// Document store. Project set -> Firestore catalog and orders.
	FirestoreProject string `envconfig:"FIRESTORE_PROJECT"`

	// Mongo order archive, used when Firestore is not configured.
	MongoURI      string `envconfig:"MONGO_URI"`
	MongoDatabase string `envconfig:"MONGO_DATABASE" default:"sunnycafe"`

	// Collaborator keys. Empty disables the corresponding surface.
	StripeSecretKey string `envconfig:"STRIPE_SECRET_KEY"`
	GeminiAPIKey    string `envconfig:"GEMINI_API_KEY"`
	GeminiModel     string `envconfig:"GEMINI_MODEL" default:"gemini-1.5-flash"`

	MenuCacheTTL time.Duration `envconfig:"MENU_CACHE_TTL" default:"5m"`

	// Commerce knobs, defaults per the cafe's standing policy.
	TaxRate               float64 `envconfig:"TAX_RATE" default:"0.10"`
	Currency              string  `envconfig:"CURRENCY" default:"usd"`
	DeliveryFee           float64 `envconfig:"DELIVERY_FEE" default:"3.99"`
	FreeDeliveryThreshold float64 `envconfig:"FREE_DELIVERY_THRESHOLD" default:"25"`
	MinOrderAmount        float64 `envconfig:"MIN_ORDER_AMOUNT" default:"5"`

	BusinessOpen  string `envconfig:"BUSINESS_OPEN" default:"08:00"`
	BusinessClose string `envconfig:"BUSINESS_CLOSE" default:"20:00"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// BusinessOpenAt reports whether the cafe accepts orders at t, using the
// configured daily open/close window.
func (c *Config) BusinessOpenAt(t time.Time) bool {
	open, err1 := time.Parse("15:04", c.BusinessOpen)
	closeAt, err2 := time.Parse("15:04", c.BusinessClose)
	if err1 != nil || err2 != nil {
		return true
	}

	minutes := t.Hour()*60 + t.Minute()
	openMin := open.Hour()*60 + open.Minute()
	closeMin := closeAt.Hour()*60 + closeAt.Minute()
	return minutes >= openMin && minutes < closeMin
}
