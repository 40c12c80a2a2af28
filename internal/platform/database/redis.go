package database

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type RedisConfig struct {
	Addr       string
	Password   string
	DB         int
	MaxRetries int
	RetryDelay time.Duration
}

// NewRedisClient connects and pings, retrying while the server comes up.
func NewRedisClient(ctx context.Context, cfg RedisConfig, log *logrus.Logger) (*redis.Client, error) {
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 1
	}

	delay := cfg.RetryDelay
	if delay <= 0 {
		delay = 2 * time.Second
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	var err error
	for i := 1; i <= maxRetries; i++ {
		log.Infof("Connecting to Redis at %s (Attempt %d/%d)...", cfg.Addr, i, maxRetries)

		if err = client.Ping(ctx).Err(); err == nil {
			log.Info("Redis connected successfully!")
			return client, nil
		}

		if i == maxRetries {
			break
		}

		log.Warnf("Redis not ready yet. Waiting %s...", delay)
		select {
		case <-ctx.Done():
			_ = client.Close()
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	_ = client.Close()
	return nil, fmt.Errorf("failed to connect to redis: %w", err)
}
