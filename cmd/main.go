package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pac-cee/bot-logic-trade/internal/app/server"
	bookuc "github.com/pac-cee/bot-logic-trade/internal/usecase/book"
	"github.com/pac-cee/bot-logic-trade/internal/usecase/matching"
	orderuc "github.com/pac-cee/bot-logic-trade/internal/usecase/order"
	"github.com/pac-cee/bot-logic-trade/internal/usecase/store"
	"github.com/pac-cee/bot-logic-trade/internal/usecase/tradepublisher"
	"github.com/pac-cee/bot-logic-trade/pkg/config"
	"github.com/pac-cee/bot-logic-trade/pkg/logger"
	"github.com/pac-cee/bot-logic-trade/pkg/redis"
)

var cfg *config.Config
var log *logger.Logger

func init() {
	cfg = &config.Config{}
	if err := config.Load(cfg); err != nil {
		panic(err)
	}

	l, err := logger.NewLogger(logger.WithLoggingLevel(logger.Level(cfg.App.LogLevel)))
	if err != nil {
		panic(err)
	}

	log = l
}

func main() {
	// Create a context that can be cancelled
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Initialize Redis client
	rclient := redis.NewClient(log, &cfg.Redis)
	if err := rclient.Connect(ctx); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "connect_redis",
		})
		return
	}

	// Initialize components
	gateway := store.NewRedisGateway(rclient, cfg.Redis.PrefixKey, log)
	publisher := tradepublisher.NewPublisher(cfg.TradePublisher, log)
	engine := matching.NewEngine(gateway, publisher, log)
	submission := orderuc.NewService(gateway, engine, log)
	query := bookuc.NewQuery(gateway, log)

	srv := server.New(cfg.App, submission, query, log)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Run()
	}()

	log.Info("matching engine started", logger.Field{
		Key:   "port",
		Value: cfg.App.Port,
	})

	// Wait for shutdown signal or listener failure
	select {
	case sig := <-sigChan:
		log.Info("received shutdown signal", logger.Field{
			Key:   "signal",
			Value: sig.String(),
		})
	case err := <-serveErr:
		if err != nil {
			log.Error(err, logger.Field{
				Key:   "action",
				Value: "serve_http",
			})
		}
	}

	// Cancel the main context to signal shutdown
	cancel()

	// Create a timeout context for graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "shutdown_http",
		})
	}

	if err := publisher.Close(); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "close_trade_publisher",
		})
	}

	if err := rclient.Disconnect(shutdownCtx); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "disconnect_redis",
		})
	}

	log.Info("matching engine shutdown complete")
}
