package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SLOT_STEP_MINUTES", "")
	t.Setenv("DEFAULT_BOOKING_MINUTES", "")
	t.Setenv("LOCK_TTL", "")
	t.Setenv("SERVER_PORT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Minute, cfg.SlotStep)
	assert.Equal(t, time.Hour, cfg.DefaultBookingLength)
	assert.Equal(t, 10*time.Second, cfg.LockTTL)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SLOT_STEP_MINUTES", "15")
	t.Setenv("DEFAULT_BOOKING_MINUTES", "45")
	t.Setenv("LOCK_TTL", "2s")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 15*time.Minute, cfg.SlotStep)
	assert.Equal(t, 45*time.Minute, cfg.DefaultBookingLength)
	assert.Equal(t, 2*time.Second, cfg.LockTTL)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
}

func TestLoad_CORSOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example, ,https://admin.example")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://app.example", "https://admin.example"}, cfg.CORSAllowedOrigins)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("SLOT_STEP_MINUTES", "abc")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("SLOT_STEP_MINUTES", "0")
	_, err = Load()
	assert.Error(t, err)

	t.Setenv("SLOT_STEP_MINUTES", "30")
	t.Setenv("LOCK_TTL", "forever")
	_, err = Load()
	assert.Error(t, err)
}
