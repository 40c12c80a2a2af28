package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/srgjo27/transit_ledger/internal/adapter/cache"
	"github.com/srgjo27/transit_ledger/internal/adapter/handler"
	"github.com/srgjo27/transit_ledger/internal/adapter/queue"
	"github.com/srgjo27/transit_ledger/internal/adapter/repository/memory"
	"github.com/srgjo27/transit_ledger/internal/core/services"
	"github.com/srgjo27/transit_ledger/internal/platform/config"
	"github.com/srgjo27/transit_ledger/internal/platform/database"
	"github.com/srgjo27/transit_ledger/internal/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		logrus.Fatalf("Failed to set up logging: %v", err)
	}

	ids, err := services.NewVehicleIDGenerator(cfg.IDStrategy, cfg.IDStart)
	if err != nil {
		log.Fatalf("Invalid id strategy: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := []services.Option{services.WithLogger(log)}

	if cfg.RedisAddr != "" {
		connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		redisClient, err := database.NewRedisClient(connectCtx, database.RedisConfig{
			Addr:       cfg.RedisAddr,
			Password:   cfg.RedisPassword,
			DB:         cfg.RedisDB,
			MaxRetries: cfg.RedisMaxRetries,
		}, log)
		cancel()

		if err != nil {
			log.Warnf("Seat cache disabled: %v", err)
		} else {
			defer redisClient.Close()
			opts = append(opts, services.WithCache(cache.NewRedisAvailabilityCache(redisClient, ""), cfg.SeatCacheTTL))
		}
	}

	if cfg.AMQPURL != "" {
		publisher, err := queue.NewPublisher(cfg.AMQPURL, cfg.BookingQueue)
		if err != nil {
			log.Warnf("Booking events disabled: %v", err)
		} else {
			defer publisher.Close()
			opts = append(opts, services.WithPublisher(publisher))
		}
	}

	ledger := services.NewLedgerService(memory.NewVehicleRepository(), memory.NewBookingRepository(), ids, opts...)

	_, sequential := ids.(*services.SequentialIDs)
	menu := handler.NewMenuHandler(ledger, !sequential)

	done := make(chan error, 1)
	go func() {
		done <- menu.Run(ctx, os.Stdin, os.Stdout)
	}()

	select {
	case err := <-done:
		if err != nil {
			log.Errorf("Menu stopped: %v", err)
		}
	case <-ctx.Done():
		log.Info("Shutting down...")
	}
}
