package database_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/srgjo27/transit_ledger/internal/platform/database"
	"github.com/stretchr/testify/assert"
)

func TestNewRedisClient_GivesUpWhenContextDone(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client, err := database.NewRedisClient(ctx, database.RedisConfig{
		Addr:       "127.0.0.1:1",
		MaxRetries: 3,
		RetryDelay: time.Millisecond,
	}, log)

	assert.Error(t, err)
	assert.Nil(t, client)
}
