package tradev1

import "context"

// Publisher defines the interface for publishing trade events to the
// settlement stream. Delivery is at-least-once: implementations retry and
// log, and a failure must never block or roll back the match.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=tradev1_mock
type Publisher interface {
	// PublishTradeEvent publishes a trade event downstream.
	PublishTradeEvent(ctx context.Context, event *TradeEvent) error
}
