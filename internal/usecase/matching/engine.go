package matching

import (
	"context"
	stderrors "errors"
	"sync"
	"time"

	gatewayv1 "github.com/pac-cee/bot-logic-trade/internal/domain/gateway/v1"
	orderv1 "github.com/pac-cee/bot-logic-trade/internal/domain/order/v1"
	tradev1 "github.com/pac-cee/bot-logic-trade/internal/domain/trade/v1"
	"github.com/pac-cee/bot-logic-trade/pkg/errors"
	"github.com/pac-cee/bot-logic-trade/pkg/logger"
)

// Engine crosses the best bid against the best ask until no crossable pair
// remains. A pass is a critical section on the whole book: an in-process
// mutex serializes passes inside this instance and the gateway match lock
// serializes them across instances sharing the store.
type Engine struct {
	mu        sync.Mutex
	gateway   gatewayv1.Gateway
	publisher tradev1.Publisher
	logger    *logger.Logger
}

// NewEngine creates a matching engine over the given gateway and trade
// event publisher.
func NewEngine(gateway gatewayv1.Gateway, publisher tradev1.Publisher, logger *logger.Logger) *Engine {
	return &Engine{
		gateway:   gateway,
		publisher: publisher,
		logger:    logger,
	}
}

// Match runs one matching pass.
//
// Each iteration peeks the best entry of both sides, stops when either side
// is empty or the best bid prices below the best ask (both indices are
// priority ordered, so no crossable pair exists anywhere), otherwise fills
// min(remaining) at the resting ask's limit price, persists both records
// atomically, unindexes filled ones and emits one trade event. The loop
// strictly decreases remaining quantity on at least one side per iteration,
// so it terminates in at most O(open orders) iterations.
//
// A best-indexed id that cannot be resolved to a record aborts the pass:
// matching never proceeds on partial information.
func (e *Engine) Match(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.gateway.AcquireMatchLock(ctx); err != nil {
		if stderrors.Is(err, gatewayv1.ErrMatchLockHeld) {
			return errors.NewErrorDetails(err.Error(), string(errors.MatchLockError), "match_lock")
		}
		return errors.NewTracer("matching pass could not take the book").Wrap(err)
	}
	defer func() {
		if err := e.gateway.ReleaseMatchLock(ctx); err != nil {
			e.logger.ErrorContext(ctx, errors.TracerFromError(err), logger.Field{
				Key:   "action",
				Value: "release_match_lock",
			})
		}
	}()

	for {
		bestBid, err := e.peekBest(ctx, orderv1.SideBuy)
		if err != nil {
			return err
		}
		bestAsk, err := e.peekBest(ctx, orderv1.SideSell)
		if err != nil {
			return err
		}

		// Empty side or no cross at the top of book means no crossable
		// pair exists anywhere.
		if bestBid == nil || bestAsk == nil || bestBid.Price < bestAsk.Price {
			return nil
		}

		quantity := min(bestBid.Remaining, bestAsk.Remaining)
		if quantity <= 0 {
			// An indexed order with zero remaining violates the book
			// invariant; stopping here keeps the pass bounded.
			return errors.NewErrorDetails(
				"indexed order with no remaining quantity",
				string(errors.PersistenceError),
				"remaining",
			)
		}

		// Both top-of-book orders are resting relative to this pass; the
		// ask's limit price governs the execution.
		price := bestAsk.Price

		bestBid.ApplyFill(quantity)
		bestAsk.ApplyFill(quantity)

		if err := e.gateway.ApplyMatch(ctx, bestBid, bestAsk); err != nil {
			return err
		}

		e.logger.InfoContext(ctx, "orders matched",
			logger.Field{Key: "buy_order_id", Value: bestBid.ID},
			logger.Field{Key: "sell_order_id", Value: bestAsk.ID},
			logger.Field{Key: "quantity", Value: quantity},
			logger.Field{Key: "price", Value: price},
		)

		e.emitTrade(ctx, bestBid, bestAsk, quantity, price)
	}
}

// peekBest resolves the best-priority order of one side, or nil when the
// side index is empty.
func (e *Engine) peekBest(ctx context.Context, side orderv1.Side) (*orderv1.Order, error) {
	ids, err := e.gateway.IndexRange(ctx, side, 0, 0)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	order, err := e.gateway.GetOrder(ctx, ids[0])
	if err != nil {
		if stderrors.Is(err, gatewayv1.ErrOrderNotFound) {
			// The index references a record that is gone; matching must not
			// proceed on partial information.
			return nil, errors.NewErrorDetailsWithObject(
				err.Error(),
				string(errors.OrderNotFoundError),
				"order_id",
				ids[0],
			)
		}
		return nil, err
	}
	return order, nil
}

// emitTrade publishes the trade event. The persisted records are the source
// of truth, so a delivery failure is logged and never rolls back the match.
func (e *Engine) emitTrade(ctx context.Context, buy, sell *orderv1.Order, quantity, price float64) {
	event := &tradev1.TradeEvent{
		BuyOrderID:  buy.ID,
		SellOrderID: sell.ID,
		BuyOwner:    buy.Owner,
		SellOwner:   sell.Owner,
		Quantity:    quantity,
		Price:       price,
		Timestamp:   time.Now().UTC(),
	}

	if err := e.publisher.PublishTradeEvent(ctx, event); err != nil {
		e.logger.ErrorContext(ctx, errors.TracerFromError(err),
			logger.Field{Key: "action", Value: "publish_trade_event"},
			logger.Field{Key: "buy_order_id", Value: buy.ID},
			logger.Field{Key: "sell_order_id", Value: sell.ID},
		)
	}
}
