package book

import (
	"context"

	gatewayv1 "github.com/pac-cee/bot-logic-trade/internal/domain/gateway/v1"
	orderv1 "github.com/pac-cee/bot-logic-trade/internal/domain/order/v1"
	"github.com/pac-cee/bot-logic-trade/pkg/logger"
)

// Query is the read side of the book: a best-effort, point-in-time listing of
// the open orders per side in priority order.
type Query struct {
	gateway gatewayv1.Gateway
	logger  *logger.Logger
}

// NewQuery creates a book query service.
func NewQuery(gateway gatewayv1.Gateway, logger *logger.Logger) *Query {
	return &Query{
		gateway: gateway,
		logger:  logger,
	}
}

// ListOpenOrders reads both side indices and dereferences each record.
// Entries that cannot be resolved are skipped and logged, not surfaced: the
// listing reflects only successfully resolved records. No consistency is
// guaranteed between the index read and the record reads under concurrent
// mutation.
func (q *Query) ListOpenOrders(ctx context.Context) (*orderv1.BookView, error) {
	bids, err := q.listSide(ctx, orderv1.SideBuy)
	if err != nil {
		return nil, err
	}
	asks, err := q.listSide(ctx, orderv1.SideSell)
	if err != nil {
		return nil, err
	}

	return &orderv1.BookView{
		Bids: bids,
		Asks: asks,
	}, nil
}

func (q *Query) listSide(ctx context.Context, side orderv1.Side) ([]*orderv1.Order, error) {
	ids, err := q.gateway.IndexRange(ctx, side, 0, -1)
	if err != nil {
		return nil, err
	}

	orders := make([]*orderv1.Order, 0, len(ids))
	for _, id := range ids {
		order, err := q.gateway.GetOrder(ctx, id)
		if err != nil {
			q.logger.WarnContext(ctx, "skipping unresolvable book entry",
				logger.Field{Key: "side", Value: side},
				logger.Field{Key: "order_id", Value: id},
				logger.Field{Key: "error", Value: err.Error()},
			)
			continue
		}
		if !order.IsOpen() {
			// The index mirrors open orders; a non-open record here is a
			// concurrent fill racing this listing.
			q.logger.DebugContext(ctx, "skipping non-open book entry",
				logger.Field{Key: "order_id", Value: id},
				logger.Field{Key: "status", Value: order.Status},
			)
			continue
		}
		orders = append(orders, order)
	}
	return orders, nil
}
