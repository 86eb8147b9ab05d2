package orderv1

import "context"

// Submitter accepts new limit orders into the book.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=orderv1_mock
type Submitter interface {
	// Submit validates, persists and indexes the order, then triggers one
	// synchronous matching pass. The returned record is the snapshot taken
	// when the submission write completed, before the triggered pass.
	Submit(ctx context.Context, req SubmitRequest) (*Order, error)
}

// BookViewer produces the open-order listing per side.
type BookViewer interface {
	// ListOpenOrders reads both side indices in priority order and
	// dereferences each record. Unresolvable entries are skipped.
	ListOpenOrders(ctx context.Context) (*BookView, error)
}
