package order

import (
	"context"

	gatewayv1 "github.com/pac-cee/bot-logic-trade/internal/domain/gateway/v1"
	orderv1 "github.com/pac-cee/bot-logic-trade/internal/domain/order/v1"
	"github.com/pac-cee/bot-logic-trade/pkg/errors"
	"github.com/pac-cee/bot-logic-trade/pkg/logger"
)

// Matcher triggers one matching pass over the book.
type Matcher interface {
	Match(ctx context.Context) error
}

// Service is the submission service: it assigns identity, persists, indexes
// and triggers a synchronous matching pass.
type Service struct {
	gateway gatewayv1.Gateway
	matcher Matcher
	logger  *logger.Logger
}

// NewService creates a submission service.
func NewService(gateway gatewayv1.Gateway, matcher Matcher, logger *logger.Logger) *Service {
	return &Service{
		gateway: gateway,
		matcher: matcher,
		logger:  logger,
	}
}

// Submit accepts one limit order. The record and its index entry are durably
// written before the matching pass reads the index. The returned record is
// the snapshot taken when the submission write completed; fills produced by
// the pass this submission triggered are observable through the book listing,
// not through this return value.
func (s *Service) Submit(ctx context.Context, req orderv1.SubmitRequest) (*orderv1.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	id, err := s.gateway.NextID(ctx)
	if err != nil {
		return nil, err
	}

	order := orderv1.NewOrder(id, req.Owner, req.Side, req.Price, req.Quantity)

	if err := s.gateway.PutOrder(ctx, order); err != nil {
		return nil, err
	}
	if err := s.gateway.IndexInsert(ctx, order); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "order accepted",
		logger.Field{Key: "order_id", Value: order.ID},
		logger.Field{Key: "owner", Value: order.Owner},
		logger.Field{Key: "side", Value: order.Side},
		logger.Field{Key: "price", Value: order.Price},
		logger.Field{Key: "quantity", Value: order.Quantity},
	)

	snapshot := *order

	if err := s.matcher.Match(ctx); err != nil {
		// The order is in the book; the failed pass is this submission's
		// failure to report.
		return nil, errors.NewTracer("matching pass failed").Wrap(err)
	}

	return &snapshot, nil
}
