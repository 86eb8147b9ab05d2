package tradev1

import (
	"encoding/json"
	"time"
)

// TradeEvent represents one execution between a bid and an ask. Delivery is
// fire-and-forget from the engine's perspective; the persisted order records
// remain the source of truth.
type TradeEvent struct {
	BuyOrderID  int64     `json:"buy_order_id"`
	SellOrderID int64     `json:"sell_order_id"`
	BuyOwner    string    `json:"buy_owner"`
	SellOwner   string    `json:"sell_owner"`
	Quantity    float64   `json:"quantity"`
	Price       float64   `json:"price"`
	Timestamp   time.Time `json:"timestamp"`
}

// ToBytes converts the trade event to a byte array.
func ToBytes(event *TradeEvent) []byte {
	buf, err := json.Marshal(event)
	if err != nil {
		return nil
	}

	return buf
}

// FromBytes converts a byte array to a trade event.
func FromBytes(data []byte) *TradeEvent {
	var event TradeEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil
	}
	return &event
}
