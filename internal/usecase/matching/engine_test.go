package matching

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	gatewayv1 "github.com/pac-cee/bot-logic-trade/internal/domain/gateway/v1"
	gatewaymock "github.com/pac-cee/bot-logic-trade/internal/domain/gateway/v1/mock"
	orderv1 "github.com/pac-cee/bot-logic-trade/internal/domain/order/v1"
	tradev1 "github.com/pac-cee/bot-logic-trade/internal/domain/trade/v1"
	trademock "github.com/pac-cee/bot-logic-trade/internal/domain/trade/v1/mock"
	"github.com/pac-cee/bot-logic-trade/internal/usecase/store"
	"github.com/pac-cee/bot-logic-trade/pkg/errors"
	"github.com/pac-cee/bot-logic-trade/pkg/logger"
)

type testFixture struct {
	ctrl          *gomock.Controller
	gateway       *store.MemoryGateway
	mockPublisher *trademock.MockPublisher
	engine        *Engine
}

func setupTestFixture(t *testing.T) *testFixture {
	ctrl := gomock.NewController(t)

	log, err := logger.NewLogger()
	require.NoError(t, err)

	gateway := store.NewMemoryGateway()
	mockPublisher := trademock.NewMockPublisher(ctrl)

	return &testFixture{
		ctrl:          ctrl,
		gateway:       gateway,
		mockPublisher: mockPublisher,
		engine:        NewEngine(gateway, mockPublisher, log),
	}
}

// seedOrder persists and indexes one resting order.
func (f *testFixture) seedOrder(t *testing.T, id int64, owner string, side orderv1.Side, price, quantity float64) *orderv1.Order {
	order := orderv1.NewOrder(id, owner, side, price, quantity)
	require.NoError(t, f.gateway.PutOrder(context.Background(), order))
	require.NoError(t, f.gateway.IndexInsert(context.Background(), order))
	return order
}

func (f *testFixture) order(t *testing.T, id int64) *orderv1.Order {
	order, err := f.gateway.GetOrder(context.Background(), id)
	require.NoError(t, err)
	return order
}

func (f *testFixture) sideIDs(t *testing.T, side orderv1.Side) []int64 {
	ids, err := f.gateway.IndexRange(context.Background(), side, 0, -1)
	require.NoError(t, err)
	return ids
}

func TestEngine_Match_EmptyBookIsNoop(t *testing.T) {
	f := setupTestFixture(t)

	err := f.engine.Match(context.Background())

	assert.NoError(t, err)
}

func TestEngine_Match_NoCrossLeavesBookUntouched(t *testing.T) {
	f := setupTestFixture(t)
	f.seedOrder(t, 1, "alice", orderv1.SideBuy, 99, 10)
	f.seedOrder(t, 2, "bob", orderv1.SideSell, 101, 10)

	err := f.engine.Match(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []int64{1}, f.sideIDs(t, orderv1.SideBuy))
	assert.Equal(t, []int64{2}, f.sideIDs(t, orderv1.SideSell))
	assert.Equal(t, 10.0, f.order(t, 1).Remaining)
	assert.Equal(t, 10.0, f.order(t, 2).Remaining)
}

func TestEngine_Match_FullCrossFillsBoth(t *testing.T) {
	f := setupTestFixture(t)
	f.seedOrder(t, 1, "alice", orderv1.SideBuy, 100, 10)
	f.seedOrder(t, 2, "bob", orderv1.SideSell, 100, 10)

	f.mockPublisher.EXPECT().
		PublishTradeEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *tradev1.TradeEvent) error {
			assert.Equal(t, int64(1), event.BuyOrderID)
			assert.Equal(t, int64(2), event.SellOrderID)
			assert.Equal(t, 10.0, event.Quantity)
			assert.Equal(t, 100.0, event.Price)
			return nil
		})

	err := f.engine.Match(context.Background())

	require.NoError(t, err)
	assert.Empty(t, f.sideIDs(t, orderv1.SideBuy))
	assert.Empty(t, f.sideIDs(t, orderv1.SideSell))

	buy := f.order(t, 1)
	sell := f.order(t, 2)
	assert.Equal(t, 0.0, buy.Remaining)
	assert.Equal(t, orderv1.StatusFilled, buy.Status)
	assert.Equal(t, 0.0, sell.Remaining)
	assert.Equal(t, orderv1.StatusFilled, sell.Status)
}

func TestEngine_Match_ExecutesAtAskPrice(t *testing.T) {
	f := setupTestFixture(t)
	f.seedOrder(t, 1, "alice", orderv1.SideBuy, 105, 5)
	f.seedOrder(t, 2, "bob", orderv1.SideSell, 100, 5)

	var published []*tradev1.TradeEvent
	f.mockPublisher.EXPECT().
		PublishTradeEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *tradev1.TradeEvent) error {
			published = append(published, event)
			return nil
		})

	require.NoError(t, f.engine.Match(context.Background()))

	require.Len(t, published, 1)
	// The resting ask's limit price governs, not the bid's or an average.
	assert.Equal(t, 100.0, published[0].Price)
}

func TestEngine_Match_PartialFillKeepsLargerOrderOpen(t *testing.T) {
	f := setupTestFixture(t)
	f.seedOrder(t, 1, "alice", orderv1.SideBuy, 100, 10)
	f.seedOrder(t, 2, "bob", orderv1.SideSell, 100, 4)

	f.mockPublisher.EXPECT().PublishTradeEvent(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, f.engine.Match(context.Background()))

	buy := f.order(t, 1)
	sell := f.order(t, 2)

	assert.Equal(t, 6.0, buy.Remaining)
	assert.Equal(t, orderv1.StatusOpen, buy.Status)
	assert.Equal(t, []int64{1}, f.sideIDs(t, orderv1.SideBuy))

	assert.Equal(t, 0.0, sell.Remaining)
	assert.Equal(t, orderv1.StatusFilled, sell.Status)
	assert.Empty(t, f.sideIDs(t, orderv1.SideSell))
}

func TestEngine_Match_SweepsMultipleRestingOrders(t *testing.T) {
	f := setupTestFixture(t)
	// One large bid against three asks, two of them at the same price where
	// the earlier id must fill first.
	f.seedOrder(t, 1, "alice", orderv1.SideBuy, 102, 10)
	f.seedOrder(t, 2, "bob", orderv1.SideSell, 100, 4)
	f.seedOrder(t, 3, "carol", orderv1.SideSell, 100, 4)
	f.seedOrder(t, 4, "dave", orderv1.SideSell, 102, 4)

	var published []*tradev1.TradeEvent
	f.mockPublisher.EXPECT().
		PublishTradeEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *tradev1.TradeEvent) error {
			published = append(published, event)
			return nil
		}).
		Times(3)

	require.NoError(t, f.engine.Match(context.Background()))

	require.Len(t, published, 3)
	assert.Equal(t, int64(2), published[0].SellOrderID)
	assert.Equal(t, 100.0, published[0].Price)
	assert.Equal(t, int64(3), published[1].SellOrderID)
	assert.Equal(t, 100.0, published[1].Price)
	assert.Equal(t, int64(4), published[2].SellOrderID)
	assert.Equal(t, 102.0, published[2].Price)
	assert.Equal(t, 2.0, published[2].Quantity)

	assert.Empty(t, f.sideIDs(t, orderv1.SideBuy))
	assert.Equal(t, []int64{4}, f.sideIDs(t, orderv1.SideSell))
	assert.Equal(t, 2.0, f.order(t, 4).Remaining)
}

func TestEngine_Match_PublisherFailureDoesNotRollBack(t *testing.T) {
	f := setupTestFixture(t)
	f.seedOrder(t, 1, "alice", orderv1.SideBuy, 100, 5)
	f.seedOrder(t, 2, "bob", orderv1.SideSell, 100, 5)

	f.mockPublisher.EXPECT().
		PublishTradeEvent(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("broker unreachable"))

	err := f.engine.Match(context.Background())

	require.NoError(t, err)
	assert.Equal(t, orderv1.StatusFilled, f.order(t, 1).Status)
	assert.Equal(t, orderv1.StatusFilled, f.order(t, 2).Status)
}

func TestEngine_Match_AbortsWhenBestRecordMissing(t *testing.T) {
	ctrl := gomock.NewController(t)

	log, err := logger.NewLogger()
	require.NoError(t, err)

	mockGateway := gatewaymock.NewMockGateway(ctrl)
	mockPublisher := trademock.NewMockPublisher(ctrl)
	engine := NewEngine(mockGateway, mockPublisher, log)

	mockGateway.EXPECT().AcquireMatchLock(gomock.Any()).Return(nil)
	mockGateway.EXPECT().ReleaseMatchLock(gomock.Any()).Return(nil)
	mockGateway.EXPECT().
		IndexRange(gomock.Any(), orderv1.SideBuy, int64(0), int64(0)).
		Return([]int64{7}, nil)
	mockGateway.EXPECT().
		GetOrder(gomock.Any(), int64(7)).
		Return(nil, fmt.Errorf("order 7: %w", gatewayv1.ErrOrderNotFound))

	err = engine.Match(context.Background())

	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.OrderNotFoundError)))
}

func TestEngine_Match_ApplyMatchFailureAbortsPass(t *testing.T) {
	ctrl := gomock.NewController(t)

	log, err := logger.NewLogger()
	require.NoError(t, err)

	mockGateway := gatewaymock.NewMockGateway(ctrl)
	mockPublisher := trademock.NewMockPublisher(ctrl)
	engine := NewEngine(mockGateway, mockPublisher, log)

	buy := orderv1.NewOrder(1, "alice", orderv1.SideBuy, 100, 10)
	sell := orderv1.NewOrder(2, "bob", orderv1.SideSell, 100, 10)

	mockGateway.EXPECT().AcquireMatchLock(gomock.Any()).Return(nil)
	mockGateway.EXPECT().ReleaseMatchLock(gomock.Any()).Return(nil)
	mockGateway.EXPECT().
		IndexRange(gomock.Any(), orderv1.SideBuy, int64(0), int64(0)).
		Return([]int64{1}, nil)
	mockGateway.EXPECT().
		IndexRange(gomock.Any(), orderv1.SideSell, int64(0), int64(0)).
		Return([]int64{2}, nil)
	mockGateway.EXPECT().GetOrder(gomock.Any(), int64(1)).Return(buy, nil)
	mockGateway.EXPECT().GetOrder(gomock.Any(), int64(2)).Return(sell, nil)
	mockGateway.EXPECT().
		ApplyMatch(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.NewErrorDetails("match write failed", string(errors.PersistenceError), "apply_match"))

	// No publisher expectation: a failed write must never produce an event.
	err = engine.Match(context.Background())

	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.PersistenceError)))
}

func TestEngine_Match_ReportsHeldLock(t *testing.T) {
	f := setupTestFixture(t)
	require.NoError(t, f.gateway.AcquireMatchLock(context.Background()))

	err := f.engine.Match(context.Background())

	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.MatchLockError)))
}
