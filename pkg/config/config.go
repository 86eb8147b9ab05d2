package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pac-cee/bot-logic-trade/pkg/redis"
)

// MustLoad loads the configuration from environment variables and .env file.
func MustLoad[T any](cfg T) {
	_ = godotenv.Load() // Load environment variables from .env file

	env.Must(cfg, env.Parse(cfg))
}

// Load loads the configuration from environment variables and .env file.
func Load[T any](cfg T) error {
	_ = godotenv.Load() // the .env file is optional

	if err := env.Parse(cfg); err != nil {
		return err // Return error if environment variable parsing fails
	}

	return nil
}

// Config holds the configuration for the application
type Config struct {
	App            AppConfig            `envPrefix:"APP_"`
	Redis          redis.Config         `envPrefix:"REDIS_"`
	TradePublisher TradePublisherConfig `envPrefix:"TRADE_KAFKA_"`
}

// AppConfig holds the application-level configuration.
type AppConfig struct {
	Name        string `env:"NAME" envDefault:"matching-engine"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Port        int    `env:"PORT" envDefault:"8081"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

// TradePublisherConfig holds the Kafka configuration for trade event delivery.
type TradePublisherConfig struct {
	Brokers    []string `env:"BROKERS" envSeparator:"," envDefault:"localhost:9092"`
	Topic      string   `env:"TOPIC" envDefault:"trades"`
	MaxRetries int      `env:"MAX_RETRIES" envDefault:"3"`
}
