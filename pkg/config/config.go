package config

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the demo and the watcher
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Logger  LoggerConfig  `mapstructure:"logger"`
	Traders TradersConfig `mapstructure:"traders"`
	Relay   RelayConfig   `mapstructure:"relay"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Kafka   KafkaConfig   `mapstructure:"kafka"`
	Watcher WatcherConfig `mapstructure:"watcher"`
}

type AppConfig struct {
	Env string `mapstructure:"env"` // e.g., "local", "prod"
}

type LoggerConfig struct {
	Level    string `mapstructure:"level"`    // debug, info, warn, error
	Encoding string `mapstructure:"encoding"` // json or console
}

// TradersConfig describes the two observers wired into every exchange.
type TradersConfig struct {
	TraderName          string  `mapstructure:"trader_name"`
	AutoTraderName      string  `mapstructure:"auto_trader_name"`
	AutoTraderThreshold float64 `mapstructure:"auto_trader_threshold"`
}

// RelayConfig toggles forwarding of demo price updates to external feeds.
type RelayConfig struct {
	RedisEnabled bool `mapstructure:"redis_enabled"`
	KafkaEnabled bool `mapstructure:"kafka_enabled"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}

type WatcherConfig struct {
	Tickers []string `mapstructure:"tickers"`
}

// LoadConfig reads configuration from defaults, an optional .env file,
// an optional config.yaml and environment variables, in increasing priority.
func LoadConfig() (*Config, error) {
	return load(viper.New(), ".")
}

// LoadConfigFrom behaves like LoadConfig but looks for config.yaml in dir.
func LoadConfigFrom(dir string) (*Config, error) {
	return load(viper.New(), dir)
}

func load(v *viper.Viper, dir string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: No .env file found, relying on System Env Vars")
	}

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	}

	// "traders.trader_name" -> "TRADERS_TRADER_NAME"
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindEnv(v, "app.env", "logger.level", "logger.encoding")
	bindEnv(v, "traders.trader_name", "traders.auto_trader_name", "traders.auto_trader_threshold")
	bindEnv(v, "relay.redis_enabled", "relay.kafka_enabled")
	bindEnv(v, "redis.addr", "redis.password", "redis.db")
	bindEnv(v, "kafka.brokers", "kafka.topic", "watcher.tickers")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if cfg.Relay.KafkaEnabled && len(cfg.Kafka.Brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers cannot be empty when the kafka relay is enabled")
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "local")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.encoding", "json")

	v.SetDefault("traders.trader_name", "Ivan")
	v.SetDefault("traders.auto_trader_name", "Robot")
	v.SetDefault("traders.auto_trader_threshold", 100.0)

	v.SetDefault("relay.redis_enabled", false)
	v.SetDefault("relay.kafka_enabled", false)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.topic", "market_ticks")

	v.SetDefault("watcher.tickers", []string{"AAPL", "GOOG"})
}

// bindEnv is a helper to bind multiple keys at once
func bindEnv(v *viper.Viper, keys ...string) {
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			log.Printf("Could not bind env var for key %s: %v", key, err)
		}
	}
}
