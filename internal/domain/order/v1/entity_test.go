package orderv1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pac-cee/bot-logic-trade/pkg/errors"
)

func TestNewOrder(t *testing.T) {
	order := NewOrder(1, "alice", SideBuy, 100, 10)

	assert.Equal(t, int64(1), order.ID)
	assert.Equal(t, "alice", order.Owner)
	assert.Equal(t, SideBuy, order.Side)
	assert.Equal(t, 10.0, order.Quantity)
	assert.Equal(t, 10.0, order.Remaining)
	assert.Equal(t, StatusOpen, order.Status)
	assert.True(t, order.IsOpen())
	assert.False(t, order.IsFilled())
}

func TestOrder_ApplyFill_Partial(t *testing.T) {
	order := NewOrder(1, "alice", SideBuy, 100, 10)

	filled := order.ApplyFill(4)

	assert.False(t, filled)
	assert.Equal(t, 6.0, order.Remaining)
	assert.Equal(t, StatusOpen, order.Status)
}

func TestOrder_ApplyFill_Full(t *testing.T) {
	order := NewOrder(1, "alice", SideSell, 100, 10)

	filled := order.ApplyFill(10)

	assert.True(t, filled)
	assert.Equal(t, 0.0, order.Remaining)
	assert.Equal(t, StatusFilled, order.Status)
	assert.False(t, order.IsOpen())
}

func TestSide_Opposite(t *testing.T) {
	assert.Equal(t, SideSell, SideBuy.Opposite())
	assert.Equal(t, SideBuy, SideSell.Opposite())
}

func TestSubmitRequest_Validate(t *testing.T) {
	testCases := []struct {
		name          string
		req           SubmitRequest
		expectedField string
	}{
		{
			name:          "unknown side",
			req:           SubmitRequest{Owner: "alice", Side: "short", Price: 100, Quantity: 10},
			expectedField: "side",
		},
		{
			name:          "zero price",
			req:           SubmitRequest{Owner: "alice", Side: SideBuy, Price: 0, Quantity: 10},
			expectedField: "price",
		},
		{
			name:          "negative price",
			req:           SubmitRequest{Owner: "alice", Side: SideBuy, Price: -5, Quantity: 10},
			expectedField: "price",
		},
		{
			name:          "zero quantity",
			req:           SubmitRequest{Owner: "alice", Side: SideSell, Price: 100, Quantity: 0},
			expectedField: "quantity",
		},
		{
			name:          "negative quantity",
			req:           SubmitRequest{Owner: "alice", Side: SideSell, Price: 100, Quantity: -1},
			expectedField: "quantity",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()

			require.Error(t, err)
			assert.True(t, errors.ErrorCodeEquals(err, string(errors.ValidationError)))

			details, ok := err.(*errors.ErrorDetails)
			require.True(t, ok)
			assert.Equal(t, tc.expectedField, details.Field)
		})
	}
}

func TestSubmitRequest_Validate_Accepts(t *testing.T) {
	req := SubmitRequest{Owner: "bob", Side: SideSell, Price: 42.5, Quantity: 3}

	assert.NoError(t, req.Validate())
}
