package gatewayv1

import (
	"context"
	"errors"

	orderv1 "github.com/pac-cee/bot-logic-trade/internal/domain/order/v1"
)

var (
	// ErrOrderNotFound is returned by GetOrder when a referenced id has no
	// backing record.
	ErrOrderNotFound = errors.New("order record not found")
	// ErrMatchLockHeld is returned by AcquireMatchLock when another matching
	// pass holds the book.
	ErrMatchLockHeld = errors.New("match lock held by another pass")
)

// Gateway is the persistence contract the engine requires from the shared
// store, independent of the backing technology. Every call is a potential
// blocking boundary; a timeout is a persistence failure, never a partial
// success.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=gatewayv1_mock
type Gateway interface {
	// NextID returns the next order id from the single authoritative
	// sequencer. Ids are unique and strictly increasing across concurrent
	// callers.
	NextID(ctx context.Context) (int64, error)

	// GetOrder resolves an order record by id. Returns ErrOrderNotFound
	// (possibly wrapped) when no record exists.
	GetOrder(ctx context.Context, id int64) (*orderv1.Order, error)

	// PutOrder persists the full order record, overwriting any previous state.
	PutOrder(ctx context.Context, order *orderv1.Order) error

	// IndexInsert adds the order to its side index keyed by (price, id).
	IndexInsert(ctx context.Context, order *orderv1.Order) error

	// IndexRemove removes the order from its side index.
	IndexRemove(ctx context.Context, order *orderv1.Order) error

	// IndexRange returns order ids from one side index in priority order:
	// best price first (highest for buy, lowest for sell), ties by ascending
	// id. Start and stop follow sorted-set range semantics; stop -1 means the
	// whole index.
	IndexRange(ctx context.Context, side orderv1.Side, start, stop int64) ([]int64, error)

	// ApplyMatch persists both touched records and removes any filled one
	// from its side index as a single atomic write. A failure partway
	// surfaces as one failed operation with no half-applied state.
	ApplyMatch(ctx context.Context, buy, sell *orderv1.Order) error

	// AcquireMatchLock serializes matching passes on the book across
	// processes. Returns ErrMatchLockHeld when the lock cannot be taken.
	AcquireMatchLock(ctx context.Context) error

	// ReleaseMatchLock releases the book lock taken by AcquireMatchLock.
	ReleaseMatchLock(ctx context.Context) error
}
