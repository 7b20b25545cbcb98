package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/okilairistaeva05-svg/practic6/cmd/demo/internal/demo"
	"github.com/okilairistaeva05-svg/practic6/cmd/demo/internal/relay"
	"github.com/okilairistaeva05-svg/practic6/pkg/config"
	"github.com/okilairistaeva05-svg/practic6/pkg/exchange"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	logger, err := config.NewLogger(cfg.Logger)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var relays []exchange.Observer

	if cfg.Relay.RedisEnabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		relays = append(relays, relay.NewRedisRelay(ctx, rdb, logger, relay.RealClock{}))
		logger.Info("Redis relay enabled", zap.String("addr", cfg.Redis.Addr))
	}

	if cfg.Relay.KafkaEnabled {
		kr := relay.NewKafkaRelay(ctx, relay.NewKafkaWriter(cfg.Kafka.Brokers, cfg.Kafka.Topic), logger, relay.RealClock{})
		defer func() {
			if err := kr.Close(); err != nil {
				logger.Error("Error closing Kafka writer", zap.Error(err))
			}
		}()
		relays = append(relays, kr)
		logger.Info("Kafka relay enabled", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))
	}

	d := demo.New(cfg.Traders, os.Stdout, logger, relays...)
	if err := d.Run(os.Stdin); err != nil {
		logger.Error("Demo failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}
