package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	IDStrategy string
	IDStart    int

	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	RedisMaxRetries int
	SeatCacheTTL    time.Duration

	AMQPURL      string
	BookingQueue string

	LogLevel string
	LogFile  string
}

// Load reads the given .env files (".env" when none are given) into the
// process environment, then builds the config from it. Missing files are
// not an error; variables already set in the environment win.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}

		if err := godotenv.Load(f); err != nil {
			return Config{}, fmt.Errorf("failed to read %s: %w", f, err)
		}
	}

	return FromEnv()
}

func FromEnv() (Config, error) {
	cfg := Config{
		IDStrategy:    getEnv("LEDGER_ID_STRATEGY", "external"),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		AMQPURL:       getEnv("AMQP_URL", ""),
		BookingQueue:  getEnv("BOOKING_QUEUE", "booking.confirmed"),
		LogLevel:      getEnv("LOG_LEVEL", "warn"),
		LogFile:       getEnv("LOG_FILE", ""),
	}

	var err error
	if cfg.IDStart, err = getEnvInt("LEDGER_ID_START", 101); err != nil {
		return Config{}, err
	}

	if cfg.RedisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return Config{}, err
	}

	if cfg.RedisMaxRetries, err = getEnvInt("REDIS_MAX_RETRIES", 3); err != nil {
		return Config{}, err
	}

	ttl := getEnv("SEAT_CACHE_TTL", "30s")
	if cfg.SeatCacheTTL, err = time.ParseDuration(ttl); err != nil {
		return Config{}, fmt.Errorf("invalid SEAT_CACHE_TTL %q: %w", ttl, err)
	}

	return cfg, nil
}

// getEnv reads an environment variable or returns the provided default.
func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	v := getEnv(key, "")
	if v == "" {
		return defaultValue, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid int for %s: %q", key, v)
	}

	return n, nil
}
