package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	v9 "github.com/redis/go-redis/v9"

	gatewayv1 "github.com/pac-cee/bot-logic-trade/internal/domain/gateway/v1"
	orderv1 "github.com/pac-cee/bot-logic-trade/internal/domain/order/v1"
	"github.com/pac-cee/bot-logic-trade/pkg/errors"
	"github.com/pac-cee/bot-logic-trade/pkg/logger"
	"github.com/pac-cee/bot-logic-trade/pkg/redis"
)

const (
	orderKeyFormat = "order:%d"
	buyIndexKey    = "orders:buy"
	sellIndexKey   = "orders:sell"
	nextIDKey      = "orders:next_id"
	matchLockKey   = "orders:match_lock"

	lockAttempts = 10
	lockBackoff  = 50 * time.Millisecond
	lockTTL      = 5 * time.Second
)

// releaseLockScript deletes the lock only while it still holds the caller's
// token. After the TTL the key may belong to a newer pass and must be left
// alone.
const releaseLockScript = `if redis.call("get", KEYS[1]) == ARGV[1] then return redis.call("del", KEYS[1]) else return 0 end`

// RedisGateway persists order records and the two side indices in Redis.
//
// Records live as JSON values at order:<id>. Each side index is a sorted set
// whose score carries the price priority (negated for the buy side so the
// best bid sorts first) and whose member is the zero-padded decimal id, so
// the lexicographic tie-break at equal score equals ascending-id order.
type RedisGateway struct {
	prefix string
	client redis.Client
	logger *logger.Logger

	lockMu    sync.Mutex
	lockToken string
}

// NewRedisGateway creates a Redis-backed persistence gateway. All keys are
// namespaced under the given prefix.
func NewRedisGateway(client redis.Client, prefix string, logger *logger.Logger) *RedisGateway {
	return &RedisGateway{
		prefix: prefix,
		client: client,
		logger: logger,
	}
}

func (g *RedisGateway) key(name string) string {
	return g.prefix + name
}

func (g *RedisGateway) orderKey(id int64) string {
	return g.prefix + fmt.Sprintf(orderKeyFormat, id)
}

func (g *RedisGateway) indexKey(side orderv1.Side) string {
	if side == orderv1.SideBuy {
		return g.key(buyIndexKey)
	}
	return g.key(sellIndexKey)
}

// indexMember zero-pads the id so that members with equal score sort in
// ascending id order (first in, first out at equal price).
func indexMember(id int64) string {
	return fmt.Sprintf("%020d", id)
}

// indexScore carries the price priority: the buy side is scored by negated
// price so ZRange returns the highest bid first.
func indexScore(side orderv1.Side, price float64) float64 {
	if side == orderv1.SideBuy {
		return -price
	}
	return price
}

// NextID allocates the next order id through INCR. Redis serializes the
// increment, so ids are unique and strictly increasing across processes.
func (g *RedisGateway) NextID(ctx context.Context) (int64, error) {
	id, err := g.client.Incr(ctx, g.key(nextIDKey))
	if err != nil {
		return 0, errors.NewTracer("order id allocation failed").Wrap(err)
	}
	return id, nil
}

// GetOrder resolves an order record by id.
func (g *RedisGateway) GetOrder(ctx context.Context, id int64) (*orderv1.Order, error) {
	val, err := g.client.Get(ctx, g.orderKey(id))
	if err != nil {
		return nil, errors.NewTracer("order record read failed").Wrap(err)
	}
	if val == "" {
		return nil, fmt.Errorf("order %d: %w", id, gatewayv1.ErrOrderNotFound)
	}

	var order orderv1.Order
	if err := json.Unmarshal([]byte(val), &order); err != nil {
		return nil, errors.NewTracer("order record decode failed").Wrap(err)
	}
	return &order, nil
}

// PutOrder persists the full order record.
func (g *RedisGateway) PutOrder(ctx context.Context, order *orderv1.Order) error {
	buf, err := json.Marshal(order)
	if err != nil {
		return errors.NewTracer("order record encode failed").Wrap(err)
	}

	if err := g.client.Set(ctx, g.orderKey(order.ID), buf, 0); err != nil {
		return errors.NewTracer("order record write failed").Wrap(err)
	}
	return nil
}

// IndexInsert adds the order to its side index.
func (g *RedisGateway) IndexInsert(ctx context.Context, order *orderv1.Order) error {
	_, err := g.client.ZAdd(ctx, g.indexKey(order.Side), v9.Z{
		Score:  indexScore(order.Side, order.Price),
		Member: indexMember(order.ID),
	})
	if err != nil {
		return errors.NewTracer("side index insert failed").Wrap(err)
	}
	return nil
}

// IndexRemove removes the order from its side index.
func (g *RedisGateway) IndexRemove(ctx context.Context, order *orderv1.Order) error {
	if _, err := g.client.ZRem(ctx, g.indexKey(order.Side), indexMember(order.ID)); err != nil {
		return errors.NewTracer("side index remove failed").Wrap(err)
	}
	return nil
}

// IndexRange reads order ids from one side index in priority order.
func (g *RedisGateway) IndexRange(ctx context.Context, side orderv1.Side, start, stop int64) ([]int64, error) {
	members, err := g.client.ZRange(ctx, g.indexKey(side), start, stop)
	if err != nil {
		return nil, errors.NewTracer("side index read failed").Wrap(err)
	}

	ids := make([]int64, 0, len(members))
	for _, member := range members {
		id, err := strconv.ParseInt(member, 10, 64)
		if err != nil {
			return nil, errors.NewTracer("side index member decode failed").Wrap(err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ApplyMatch persists both touched records and removes any filled one from
// its side index inside a MULTI/EXEC pipeline, so a failure partway surfaces
// as one failed operation.
func (g *RedisGateway) ApplyMatch(ctx context.Context, buy, sell *orderv1.Order) error {
	buyBuf, err := json.Marshal(buy)
	if err != nil {
		return errors.NewTracer("order record encode failed").Wrap(err)
	}
	sellBuf, err := json.Marshal(sell)
	if err != nil {
		return errors.NewTracer("order record encode failed").Wrap(err)
	}

	err = g.client.TxPipelined(ctx, func(pipe v9.Pipeliner) error {
		pipe.Set(ctx, g.orderKey(buy.ID), buyBuf, 0)
		pipe.Set(ctx, g.orderKey(sell.ID), sellBuf, 0)
		if buy.IsFilled() {
			pipe.ZRem(ctx, g.indexKey(orderv1.SideBuy), indexMember(buy.ID))
		}
		if sell.IsFilled() {
			pipe.ZRem(ctx, g.indexKey(orderv1.SideSell), indexMember(sell.ID))
		}
		return nil
	})
	if err != nil {
		return errors.NewTracer("match write failed").Wrap(err)
	}
	return nil
}

// AcquireMatchLock takes the book lock with SETNX, retrying with a short
// backoff. The TTL bounds the damage of a crashed holder. The lock value is a
// per-pass token so that release only removes a lock this pass still owns.
func (g *RedisGateway) AcquireMatchLock(ctx context.Context) error {
	token := uuid.NewString()

	for attempt := 0; attempt < lockAttempts; attempt++ {
		ok, err := g.client.SetNX(ctx, g.key(matchLockKey), token, lockTTL)
		if err != nil {
			return errors.NewTracer("match lock acquire failed").Wrap(err)
		}
		if ok {
			g.lockMu.Lock()
			g.lockToken = token
			g.lockMu.Unlock()
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(lockBackoff):
		}
	}

	g.logger.WarnContext(ctx, "match lock contended", logger.Field{
		Key:   "attempts",
		Value: lockAttempts,
	})
	return gatewayv1.ErrMatchLockHeld
}

// ReleaseMatchLock releases the book lock through a compare-and-delete on the
// pass token. A lock whose TTL already expired, and which another pass may now
// hold under a different token, is left alone and logged.
func (g *RedisGateway) ReleaseMatchLock(ctx context.Context) error {
	g.lockMu.Lock()
	token := g.lockToken
	g.lockToken = ""
	g.lockMu.Unlock()

	if token == "" {
		return nil
	}

	deleted, err := g.client.Eval(ctx, releaseLockScript, []string{g.key(matchLockKey)}, token)
	if err != nil {
		return errors.NewTracer("match lock release failed").Wrap(err)
	}
	if n, ok := deleted.(int64); ok && n == 0 {
		g.logger.WarnContext(ctx, "match lock expired before release", logger.Field{
			Key:   "lock_ttl",
			Value: lockTTL,
		})
	}
	return nil
}
