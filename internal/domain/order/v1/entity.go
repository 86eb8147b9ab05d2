package orderv1

import (
	"fmt"

	"github.com/pac-cee/bot-logic-trade/pkg/errors"
)

// Side classifies an order as buying or selling.
type Side string

const (
	// SideBuy represents a buy (bid) order.
	SideBuy Side = "buy"
	// SideSell represents a sell (ask) order.
	SideSell Side = "sell"
)

// Opposite returns the counterparty side.
func (s Side) Opposite() Side {
	if s == SideBuy {
		return SideSell
	}
	return SideBuy
}

// Status represents the lifecycle state of an order.
type Status string

const (
	// StatusOpen represents an order resting in the book with remaining quantity.
	StatusOpen Status = "open"
	// StatusFilled represents an order whose remaining quantity reached zero.
	StatusFilled Status = "filled"
	// StatusCancelled is reserved for future extension; no transition into it
	// is produced by this engine.
	StatusCancelled Status = "cancelled"
)

// Order represents a single order record. The record is persisted by id and
// never deleted; only its side-index membership is removed once filled.
type Order struct {
	ID        int64   `json:"id"`
	Owner     string  `json:"owner"`
	Side      Side    `json:"side"`
	Price     float64 `json:"price"`
	Quantity  float64 `json:"quantity"`
	Remaining float64 `json:"remaining"`
	Status    Status  `json:"status"`
}

// NewOrder constructs an open order record with remaining equal to quantity.
// The id is assigned by the submission service.
func NewOrder(id int64, owner string, side Side, price, quantity float64) *Order {
	return &Order{
		ID:        id,
		Owner:     owner,
		Side:      side,
		Price:     price,
		Quantity:  quantity,
		Remaining: quantity,
		Status:    StatusOpen,
	}
}

// IsOpen checks if the order is still resting in the book.
func (o *Order) IsOpen() bool {
	return o.Status == StatusOpen
}

// IsFilled checks if the order is fully filled.
func (o *Order) IsFilled() bool {
	return o.Status == StatusFilled
}

// ApplyFill decrements the remaining quantity and transitions the order to
// filled once remaining reaches zero. Returns true when the fill closed the order.
func (o *Order) ApplyFill(quantity float64) bool {
	o.Remaining -= quantity
	if o.Remaining <= 0 {
		o.Remaining = 0
		o.Status = StatusFilled
		return true
	}
	return false
}

// SubmitRequest represents a request to submit a new limit order.
type SubmitRequest struct {
	Owner    string  `json:"owner"`
	Side     Side    `json:"side"`
	Price    float64 `json:"price"`
	Quantity float64 `json:"quantity"`
}

// Validate rejects requests that must never reach the book.
func (r SubmitRequest) Validate() error {
	if r.Side != SideBuy && r.Side != SideSell {
		return errors.NewErrorDetails(
			fmt.Sprintf("side must be %q or %q", SideBuy, SideSell),
			string(errors.ValidationError),
			"side",
		)
	}
	if r.Price <= 0 {
		return errors.NewErrorDetails("price must be positive", string(errors.ValidationError), "price")
	}
	if r.Quantity <= 0 {
		return errors.NewErrorDetails("quantity must be positive", string(errors.ValidationError), "quantity")
	}
	return nil
}

// BookView is a point-in-time snapshot of the open orders per side, bids in
// descending price order and asks in ascending price order, ties by ascending id.
type BookView struct {
	Bids []*Order `json:"buy_orders"`
	Asks []*Order `json:"sell_orders"`
}
