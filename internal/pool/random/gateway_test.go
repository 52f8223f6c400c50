package random

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeaconIsDeterministic(t *testing.T) {
	b1 := NewChainedBeacon([]byte("seed"))
	b2 := NewChainedBeacon([]byte("seed"))

	v1, err := b1.Value(3)
	require.NoError(t, err)
	v2, err := b2.Value(3)
	require.NoError(t, err)

	assert.Equal(t, v1, v2)
	assert.Len(t, []byte(v1), 32)

	// 不同索引的值互不相同
	v0, err := b1.Value(0)
	require.NoError(t, err)
	assert.NotEqual(t, v0, v1)

	// 不同种子产生不同的链
	other, err := NewChainedBeacon([]byte("other")).Value(3)
	require.NoError(t, err)
	assert.NotEqual(t, v1, other)
}

func TestGatewayFinalityDelay(t *testing.T) {
	now := time.Unix(1000, 0)
	g := NewGateway(NewChainedBeacon([]byte("seed")), 10*time.Second)

	h := g.Request(now)
	assert.False(t, g.IsAvailable(h, now))
	assert.False(t, g.IsAvailable(h, now.Add(9*time.Second)))

	_, err := g.Consume(h, now.Add(9*time.Second))
	assert.ErrorIs(t, err, ErrNotAvailable)

	assert.True(t, g.IsAvailable(h, now.Add(10*time.Second)))
	val, err := g.Consume(h, now.Add(10*time.Second))
	require.NoError(t, err)
	assert.NotEmpty(t, val)
}

func TestGatewaySingleUse(t *testing.T) {
	now := time.Unix(1000, 0)
	g := NewGateway(NewChainedBeacon([]byte("seed")), 0)

	h := g.Request(now)
	_, err := g.Consume(h, now)
	require.NoError(t, err)

	_, err = g.Consume(h, now)
	assert.ErrorIs(t, err, ErrAlreadyConsumed)
	assert.False(t, g.IsAvailable(h, now))
}

func TestGatewayUnknownHandle(t *testing.T) {
	g := NewGateway(NewChainedBeacon([]byte("seed")), 0)
	_, err := g.Consume(Handle("nope"), time.Unix(1000, 0))
	assert.ErrorIs(t, err, ErrUnknownHandle)
}

func TestGatewayRequestsGetDistinctValues(t *testing.T) {
	now := time.Unix(1000, 0)
	g := NewGateway(NewChainedBeacon([]byte("seed")), 0)

	h1 := g.Request(now)
	h2 := g.Request(now)
	require.NotEqual(t, h1, h2)

	v1, err := g.Consume(h1, now)
	require.NoError(t, err)
	v2, err := g.Consume(h2, now)
	require.NoError(t, err)
	assert.NotEqual(t, v1, v2)
}
