package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	gatewayv1 "github.com/pac-cee/bot-logic-trade/internal/domain/gateway/v1"
	orderv1 "github.com/pac-cee/bot-logic-trade/internal/domain/order/v1"
)

type indexEntry struct {
	price float64
	id    int64
}

// MemoryGateway is an in-process implementation of the persistence contract,
// used by tests and local runs without a Redis instance. Records are stored
// as copies so callers observe the same value semantics as the shared store.
type MemoryGateway struct {
	mu     sync.Mutex
	nextID int64
	orders map[int64]orderv1.Order
	bids   []indexEntry
	asks   []indexEntry
	locked bool
}

// NewMemoryGateway creates an empty in-memory gateway.
func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{
		orders: make(map[int64]orderv1.Order),
	}
}

// NextID allocates the next order id.
func (g *MemoryGateway) NextID(ctx context.Context) (int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nextID++
	return g.nextID, nil
}

// GetOrder resolves an order record by id.
func (g *MemoryGateway) GetOrder(ctx context.Context, id int64) (*orderv1.Order, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	order, ok := g.orders[id]
	if !ok {
		return nil, fmt.Errorf("order %d: %w", id, gatewayv1.ErrOrderNotFound)
	}
	return &order, nil
}

// PutOrder persists a copy of the order record.
func (g *MemoryGateway) PutOrder(ctx context.Context, order *orderv1.Order) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.orders[order.ID] = *order
	return nil
}

// IndexInsert adds the order to its side index, keeping priority order.
func (g *MemoryGateway) IndexInsert(ctx context.Context, order *orderv1.Order) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.insertEntry(order.Side, indexEntry{price: order.Price, id: order.ID})
	return nil
}

// IndexRemove removes the order from its side index.
func (g *MemoryGateway) IndexRemove(ctx context.Context, order *orderv1.Order) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.removeEntry(order.Side, order.ID)
	return nil
}

// IndexRange reads order ids from one side index in priority order.
func (g *MemoryGateway) IndexRange(ctx context.Context, side orderv1.Side, start, stop int64) ([]int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	entries := g.entries(side)
	if stop < 0 {
		stop = int64(len(entries)) + stop
	}
	if start >= int64(len(entries)) || stop < start {
		return nil, nil
	}
	if stop >= int64(len(entries)) {
		stop = int64(len(entries)) - 1
	}

	ids := make([]int64, 0, stop-start+1)
	for _, entry := range entries[start : stop+1] {
		ids = append(ids, entry.id)
	}
	return ids, nil
}

// ApplyMatch persists both records and unindexes filled ones atomically
// under the store mutex.
func (g *MemoryGateway) ApplyMatch(ctx context.Context, buy, sell *orderv1.Order) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.orders[buy.ID] = *buy
	g.orders[sell.ID] = *sell
	if buy.IsFilled() {
		g.removeEntry(orderv1.SideBuy, buy.ID)
	}
	if sell.IsFilled() {
		g.removeEntry(orderv1.SideSell, sell.ID)
	}
	return nil
}

// AcquireMatchLock takes the book lock without waiting.
func (g *MemoryGateway) AcquireMatchLock(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.locked {
		return gatewayv1.ErrMatchLockHeld
	}
	g.locked = true
	return nil
}

// ReleaseMatchLock releases the book lock.
func (g *MemoryGateway) ReleaseMatchLock(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.locked = false
	return nil
}

func (g *MemoryGateway) entries(side orderv1.Side) []indexEntry {
	if side == orderv1.SideBuy {
		return g.bids
	}
	return g.asks
}

// before reports whether a sorts ahead of b on the given side: best price
// first, ties by ascending id.
func before(side orderv1.Side, a, b indexEntry) bool {
	if a.price != b.price {
		if side == orderv1.SideBuy {
			return a.price > b.price
		}
		return a.price < b.price
	}
	return a.id < b.id
}

func (g *MemoryGateway) insertEntry(side orderv1.Side, entry indexEntry) {
	entries := g.entries(side)
	at := sort.Search(len(entries), func(i int) bool {
		return before(side, entry, entries[i])
	})

	entries = append(entries, indexEntry{})
	copy(entries[at+1:], entries[at:])
	entries[at] = entry

	if side == orderv1.SideBuy {
		g.bids = entries
	} else {
		g.asks = entries
	}
}

func (g *MemoryGateway) removeEntry(side orderv1.Side, id int64) {
	entries := g.entries(side)
	for i, entry := range entries {
		if entry.id == id {
			entries = append(entries[:i], entries[i+1:]...)
			break
		}
	}

	if side == orderv1.SideBuy {
		g.bids = entries
	} else {
		g.asks = entries
	}
}
