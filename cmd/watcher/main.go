package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/okilairistaeva05-svg/practic6/cmd/watcher/internal/feed"
	"github.com/okilairistaeva05-svg/practic6/cmd/watcher/internal/repository"
	"github.com/okilairistaeva05-svg/practic6/pkg/config"
	"github.com/okilairistaeva05-svg/practic6/pkg/exchange"
	"github.com/okilairistaeva05-svg/practic6/pkg/observer"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	store := repository.NewRedisStore(rdb)

	// Dependency Injection: Bridge depends on the FeedStore interface
	bridge := feed.NewBridge(exchange.New(), store, logger)

	trader := observer.NewTrader(cfg.Traders.TraderName, os.Stdout)
	auto := observer.NewAutoTrader(cfg.Traders.AutoTraderName, cfg.Traders.AutoTraderThreshold, os.Stdout)
	for _, sym := range cfg.Watcher.Tickers {
		if err := bridge.Watch(ctx, sym, trader); err != nil {
			logger.Fatal("Failed to watch", zap.String("symbol", sym), zap.Error(err))
		}
		if err := bridge.Watch(ctx, sym, auto); err != nil {
			logger.Fatal("Failed to watch", zap.String("symbol", sym), zap.Error(err))
		}
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		logger.Info("Watcher Started", zap.Strings("tickers", cfg.Watcher.Tickers))
		bridge.Run(ctx)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigChan:
		logger.Info("Shutdown signal received, stopping watcher...")
		cancel()
		<-done
	case <-done:
		logger.Warn("Price feed closed, stopping watcher...")
	}

	if err := store.Close(); err != nil {
		logger.Error("Error closing Redis", zap.Error(err))
	}
	logger.Info("Watcher exited cleanly")
}
