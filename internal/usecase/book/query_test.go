package book

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orderv1 "github.com/pac-cee/bot-logic-trade/internal/domain/order/v1"
	"github.com/pac-cee/bot-logic-trade/internal/usecase/store"
	"github.com/pac-cee/bot-logic-trade/pkg/logger"
)

type testFixture struct {
	gateway *store.MemoryGateway
	query   *Query
}

func setupTestFixture(t *testing.T) *testFixture {
	log, err := logger.NewLogger()
	require.NoError(t, err)

	gateway := store.NewMemoryGateway()
	return &testFixture{
		gateway: gateway,
		query:   NewQuery(gateway, log),
	}
}

func (f *testFixture) seedOrder(t *testing.T, id int64, side orderv1.Side, price, quantity float64) *orderv1.Order {
	order := orderv1.NewOrder(id, "owner", side, price, quantity)
	require.NoError(t, f.gateway.PutOrder(context.Background(), order))
	require.NoError(t, f.gateway.IndexInsert(context.Background(), order))
	return order
}

func orderIDs(orders []*orderv1.Order) []int64 {
	ids := make([]int64, 0, len(orders))
	for _, order := range orders {
		ids = append(ids, order.ID)
	}
	return ids
}

func TestQuery_ListOpenOrders_EmptyBook(t *testing.T) {
	f := setupTestFixture(t)

	view, err := f.query.ListOpenOrders(context.Background())

	require.NoError(t, err)
	assert.Empty(t, view.Bids)
	assert.Empty(t, view.Asks)
}

func TestQuery_ListOpenOrders_PriorityOrder(t *testing.T) {
	f := setupTestFixture(t)
	// Bids list highest price first, asks lowest price first, price ties by
	// ascending id regardless of insertion order.
	f.seedOrder(t, 3, orderv1.SideBuy, 101, 1)
	f.seedOrder(t, 1, orderv1.SideBuy, 100, 1)
	f.seedOrder(t, 2, orderv1.SideBuy, 101, 1)
	f.seedOrder(t, 6, orderv1.SideSell, 103, 1)
	f.seedOrder(t, 4, orderv1.SideSell, 105, 1)
	f.seedOrder(t, 5, orderv1.SideSell, 103, 1)

	view, err := f.query.ListOpenOrders(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3, 1}, orderIDs(view.Bids))
	assert.Equal(t, []int64{5, 6, 4}, orderIDs(view.Asks))
}

func TestQuery_ListOpenOrders_SkipsUnresolvableEntries(t *testing.T) {
	f := setupTestFixture(t)
	f.seedOrder(t, 1, orderv1.SideBuy, 100, 1)

	// Index an id that has no backing record.
	ghost := orderv1.NewOrder(2, "owner", orderv1.SideBuy, 99, 1)
	require.NoError(t, f.gateway.IndexInsert(context.Background(), ghost))

	view, err := f.query.ListOpenOrders(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []int64{1}, orderIDs(view.Bids))
}

func TestQuery_ListOpenOrders_SkipsNonOpenEntries(t *testing.T) {
	f := setupTestFixture(t)
	f.seedOrder(t, 1, orderv1.SideSell, 100, 1)

	// A filled record still indexed models a fill racing the listing.
	filled := f.seedOrder(t, 2, orderv1.SideSell, 101, 1)
	filled.ApplyFill(1)
	require.NoError(t, f.gateway.PutOrder(context.Background(), filled))

	view, err := f.query.ListOpenOrders(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []int64{1}, orderIDs(view.Asks))
}
