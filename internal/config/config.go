package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port           string
	LogLevel       logrus.Level
	MaxUploadBytes int64
	CacheTTL       time.Duration
	RatePerSecond  float64
	RateBurst      int
}

// Load reads an optional .env file and then the environment. Malformed values fall
// back to their defaults with a warning.
func Load(log *logrus.Logger) *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warnf("could not load .env file: %v", err)
	}

	level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		log.Warnf("invalid LOG_LEVEL, using info: %v", err)
		level = logrus.InfoLevel
	}

	return &Config{
		Port:           getEnv("PORT", "8080"),
		LogLevel:       level,
		MaxUploadBytes: getEnvAsInt64(log, "MAX_UPLOAD_BYTES", 10<<20),
		CacheTTL:       getEnvAsDuration(log, "CACHE_TTL", 15*time.Minute),
		RatePerSecond:  getEnvAsFloat(log, "RATE_LIMIT_PER_SECOND", 10),
		RateBurst:      int(getEnvAsInt64(log, "RATE_LIMIT_BURST", 20)),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt64(log *logrus.Logger, key string, fallback int64) int64 {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		log.Warnf("invalid %s %q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getEnvAsFloat(log *logrus.Logger, key string, fallback float64) float64 {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		log.Warnf("invalid %s %q, using %g", key, v, fallback)
		return fallback
	}
	return f
}

func getEnvAsDuration(log *logrus.Logger, key string, fallback time.Duration) time.Duration {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Warnf("invalid %s %q, using %s", key, v, fallback)
		return fallback
	}
	return d
}
