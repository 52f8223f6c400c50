package storage

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord(roundID int64) *DrawRecord {
	return &DrawRecord{
		RoundID:      roundID,
		CompletedAt:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(roundID) * time.Hour),
		Participants: 2,
		TotalWeight:  decimal.NewFromInt(100),
		PrizeAwarded: decimal.NewFromInt(10),
		CarryOver:    decimal.Zero,
		Strategy:     "weighted_single_winner",
		Winners: []WinnerRecord{
			{Account: "alice", Amount: decimal.NewFromInt(10), Tier: "grand"},
		},
	}
}

func TestMemoryStoreSaveAndGetDraw(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.SaveDraw(ctx, testRecord(1)))

	record, err := store.GetDraw(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), record.RoundID)
	require.Len(t, record.Winners, 1)
	assert.Equal(t, "alice", record.Winners[0].Account)

	_, err = store.GetDraw(ctx, 2)
	assert.ErrorIs(t, err, ErrDrawNotFound)
}

func TestMemoryStoreListDrawsNewestFirst(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for i := int64(1); i <= 3; i++ {
		require.NoError(t, store.SaveDraw(ctx, testRecord(i)))
	}

	records, err := store.ListDraws(ctx, 2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, int64(3), records[0].RoundID)
	assert.Equal(t, int64(2), records[1].RoundID)

	records, err = store.ListDraws(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestMemoryStoreStatusCache(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.GetStatus(ctx)
	assert.ErrorIs(t, err, ErrStatusNotFound)

	status := &RoundStatus{
		RoundID:   4,
		Phase:     "ROUND_ACTIVE",
		PrizePool: decimal.NewFromInt(7),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, store.SaveStatus(ctx, status, time.Minute))

	got, err := store.GetStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.RoundID)
	assert.Equal(t, "ROUND_ACTIVE", got.Phase)
}
