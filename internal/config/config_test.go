package config

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "LOG_LEVEL", "MAX_UPLOAD_BYTES", "CACHE_TTL", "RATE_LIMIT_PER_SECOND", "RATE_LIMIT_BURST"} {
		t.Setenv(k, "")
	}
	cfg := Load(logrus.New())

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, logrus.InfoLevel, cfg.LogLevel)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes)
	assert.Equal(t, 15*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 10.0, cfg.RatePerSecond)
	assert.Equal(t, 20, cfg.RateBurst)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("MAX_UPLOAD_BYTES", "1024")
	t.Setenv("CACHE_TTL", "1h")
	t.Setenv("RATE_LIMIT_PER_SECOND", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "5")
	cfg := Load(logrus.New())

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)
	assert.Equal(t, int64(1024), cfg.MaxUploadBytes)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
	assert.Equal(t, 2.5, cfg.RatePerSecond)
	assert.Equal(t, 5, cfg.RateBurst)
}

func TestLoadMalformed(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")
	t.Setenv("MAX_UPLOAD_BYTES", "ten")
	t.Setenv("CACHE_TTL", "-5m")
	t.Setenv("RATE_LIMIT_PER_SECOND", "0")
	t.Setenv("RATE_LIMIT_BURST", "x")
	cfg := Load(logrus.New())

	assert.Equal(t, logrus.InfoLevel, cfg.LogLevel)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes)
	assert.Equal(t, 15*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 10.0, cfg.RatePerSecond)
	assert.Equal(t, 20, cfg.RateBurst)
}
