package store

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	orderv1 "github.com/pac-cee/bot-logic-trade/internal/domain/order/v1"
	"github.com/pac-cee/bot-logic-trade/pkg/logger"
	redis_mock "github.com/pac-cee/bot-logic-trade/pkg/redis/mock"
)

func TestIndexMember_PadsForLexicographicTieBreak(t *testing.T) {
	// At equal score Redis orders members lexicographically; padding makes
	// that order match ascending numeric id.
	members := []string{
		indexMember(100),
		indexMember(9),
		indexMember(10),
		indexMember(1),
	}
	sort.Strings(members)

	assert.Equal(t, []string{
		fmt.Sprintf("%020d", 1),
		fmt.Sprintf("%020d", 9),
		fmt.Sprintf("%020d", 10),
		fmt.Sprintf("%020d", 100),
	}, members)
}

func TestIndexScore_BuySideNegated(t *testing.T) {
	// Ascending score order must surface the best price first on both sides.
	assert.Equal(t, -100.0, indexScore(orderv1.SideBuy, 100))
	assert.Equal(t, 100.0, indexScore(orderv1.SideSell, 100))

	// Higher bid sorts ahead of lower bid.
	assert.Less(t, indexScore(orderv1.SideBuy, 105), indexScore(orderv1.SideBuy, 100))
	// Lower ask sorts ahead of higher ask.
	assert.Less(t, indexScore(orderv1.SideSell, 95), indexScore(orderv1.SideSell, 100))
}

func setupRedisGateway(t *testing.T) (*RedisGateway, *redis_mock.MockClient) {
	ctrl := gomock.NewController(t)

	log, err := logger.NewLogger()
	require.NoError(t, err)

	client := redis_mock.NewMockClient(ctrl)
	return NewRedisGateway(client, "engine:", log), client
}

func TestRedisGateway_MatchLock_ReleasesOwnTokenOnly(t *testing.T) {
	gateway, client := setupRedisGateway(t)
	ctx := context.Background()

	var token string
	client.EXPECT().
		SetNX(gomock.Any(), "engine:orders:match_lock", gomock.Any(), lockTTL).
		DoAndReturn(func(_ context.Context, _ string, value any, _ time.Duration) (bool, error) {
			token = value.(string)
			assert.NotEmpty(t, token)
			return true, nil
		})

	require.NoError(t, gateway.AcquireMatchLock(ctx))

	// Release must go through the compare-and-delete script with the token
	// the acquire stored, never an unconditional DEL.
	client.EXPECT().
		Eval(gomock.Any(), releaseLockScript, []string{"engine:orders:match_lock"}, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ []string, args ...any) (any, error) {
			require.Len(t, args, 1)
			assert.Equal(t, token, args[0])
			return int64(1), nil
		})

	require.NoError(t, gateway.ReleaseMatchLock(ctx))
}

func TestRedisGateway_MatchLock_DistinctTokenPerPass(t *testing.T) {
	gateway, client := setupRedisGateway(t)
	ctx := context.Background()

	var tokens []string
	client.EXPECT().
		SetNX(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any, _ time.Duration) (bool, error) {
			tokens = append(tokens, value.(string))
			return true, nil
		}).
		Times(2)
	client.EXPECT().
		Eval(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(int64(1), nil).
		Times(2)

	for i := 0; i < 2; i++ {
		require.NoError(t, gateway.AcquireMatchLock(ctx))
		require.NoError(t, gateway.ReleaseMatchLock(ctx))
	}

	require.Len(t, tokens, 2)
	assert.NotEqual(t, tokens[0], tokens[1])
}

func TestRedisGateway_ReleaseMatchLock_ExpiredLockLeftAlone(t *testing.T) {
	gateway, client := setupRedisGateway(t)
	ctx := context.Background()

	client.EXPECT().
		SetNX(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(true, nil)
	// Zero deletions means the TTL expired and another pass may hold the key
	// under its own token; release reports success without touching it.
	client.EXPECT().
		Eval(gomock.Any(), releaseLockScript, gomock.Any(), gomock.Any()).
		Return(int64(0), nil)

	require.NoError(t, gateway.AcquireMatchLock(ctx))
	require.NoError(t, gateway.ReleaseMatchLock(ctx))
}

func TestRedisGateway_ReleaseMatchLock_NoopWithoutAcquire(t *testing.T) {
	gateway, _ := setupRedisGateway(t)

	// No Eval and no Del expected: nothing was acquired by this gateway.
	require.NoError(t, gateway.ReleaseMatchLock(context.Background()))
}
