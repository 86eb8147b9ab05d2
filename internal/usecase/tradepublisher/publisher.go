package tradepublisher

import (
	"context"

	"github.com/segmentio/kafka-go"

	tradev1 "github.com/pac-cee/bot-logic-trade/internal/domain/trade/v1"
	"github.com/pac-cee/bot-logic-trade/pkg/config"
	"github.com/pac-cee/bot-logic-trade/pkg/errors"
	"github.com/pac-cee/bot-logic-trade/pkg/logger"
)

// Publisher delivers trade events to the settlement Kafka topic with
// at-least-once semantics: writes are retried up to the configured bound and
// failures are logged, never silently dropped.
type Publisher struct {
	kafkaWriter *kafka.Writer
	maxRetries  int
	logger      *logger.Logger
}

// NewPublisher creates a Kafka publisher for trade events.
func NewPublisher(cfg config.TradePublisherConfig, logger *logger.Logger) *Publisher {
	kafkaWriter := kafka.NewWriter(kafka.WriterConfig{
		Brokers: cfg.Brokers,
		Topic:   cfg.Topic,
	})

	return &Publisher{
		kafkaWriter: kafkaWriter,
		maxRetries:  cfg.MaxRetries,
		logger:      logger,
	}
}

// PublishTradeEvent publishes one trade event to the Kafka topic.
func (p *Publisher) PublishTradeEvent(ctx context.Context, event *tradev1.TradeEvent) error {
	msg := kafka.Message{
		Value: tradev1.ToBytes(event),
	}

	var lastErr error
	for attempt := 0; attempt <= p.maxRetries; attempt++ {
		lastErr = p.kafkaWriter.WriteMessages(ctx, msg)
		if lastErr == nil {
			return nil
		}

		p.logger.Error(errors.TracerFromError(lastErr),
			logger.Field{Key: "attempt", Value: attempt + 1},
			logger.Field{Key: "buy_order_id", Value: event.BuyOrderID},
			logger.Field{Key: "sell_order_id", Value: event.SellOrderID},
		)

		if ctx.Err() != nil {
			break
		}
	}

	return errors.NewErrorDetails(
		"failed to publish trade event",
		string(errors.TradePublishError),
		"trade_event",
	)
}

// Close flushes and closes the underlying Kafka writer.
func (p *Publisher) Close() error {
	return p.kafkaWriter.Close()
}
