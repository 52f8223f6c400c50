package bonus

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndGet(t *testing.T) {
	r := NewRegistry()

	assert.True(t, r.Get("alice").IsZero())

	require.NoError(t, r.Set("alice", decimal.NewFromInt(10), "promo"))
	assert.True(t, r.Get("alice").Equal(decimal.NewFromInt(10)))

	entry, ok := r.Entry("alice")
	require.True(t, ok)
	assert.Equal(t, "promo", entry.Reason)

	assert.ErrorIs(t, r.Set("alice", decimal.NewFromInt(-1), "bad"), ErrNegativeWeight)
}

func TestAddAccumulates(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Add("alice", decimal.NewFromInt(5), "first"))
	require.NoError(t, r.Add("alice", decimal.NewFromInt(3), "second"))
	assert.True(t, r.Get("alice").Equal(decimal.NewFromInt(8)))

	// 叠加结果不得为负
	assert.ErrorIs(t, r.Add("alice", decimal.NewFromInt(-10), "claw back"), ErrNegativeWeight)
	assert.True(t, r.Get("alice").Equal(decimal.NewFromInt(8)))

	require.NoError(t, r.Add("alice", decimal.NewFromInt(-8), "reset"))
	assert.True(t, r.Get("alice").IsZero())
}

func TestRemove(t *testing.T) {
	r := NewRegistry()

	assert.ErrorIs(t, r.Remove("alice"), ErrNoBonus)

	require.NoError(t, r.Set("alice", decimal.NewFromInt(1), ""))
	require.NoError(t, r.Remove("alice"))
	assert.True(t, r.Get("alice").IsZero())
}
