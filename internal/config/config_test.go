package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.InDelta(t, 0.10, cfg.TaxRate, 1e-9)
	assert.Equal(t, "usd", cfg.Currency)
	assert.InDelta(t, 3.99, cfg.DeliveryFee, 1e-9)
	assert.InDelta(t, 25, cfg.FreeDeliveryThreshold, 1e-9)
	assert.Equal(t, 5*time.Minute, cfg.MenuCacheTTL)
	assert.Equal(t, "08:00", cfg.BusinessOpen)
	assert.Equal(t, "20:00", cfg.BusinessClose)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("TAX_RATE", "0.08")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.InDelta(t, 0.08, cfg.TaxRate, 1e-9)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
}

func TestBusinessOpenAt(t *testing.T) {
	cfg := &Config{BusinessOpen: "08:00", BusinessClose: "20:00"}

	at := func(hour, min int) time.Time {
		return time.Date(2026, 3, 14, hour, min, 0, 0, time.UTC)
	}

	assert.False(t, cfg.BusinessOpenAt(at(7, 59)))
	assert.True(t, cfg.BusinessOpenAt(at(8, 0)))
	assert.True(t, cfg.BusinessOpenAt(at(13, 30)))
	assert.True(t, cfg.BusinessOpenAt(at(19, 59)))
	assert.False(t, cfg.BusinessOpenAt(at(20, 0)))
}

func TestBusinessOpenAt_BadWindowStaysOpen(t *testing.T) {
	cfg := &Config{BusinessOpen: "whenever", BusinessClose: "20:00"}
	assert.True(t, cfg.BusinessOpenAt(time.Now()))
}
