package round

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poolhouse/go-prize-pool/internal/pool/draw"
)

func newTestMachine() (*Machine, time.Time) {
	start := time.Unix(1000, 0)
	return NewMachine(start, 60*time.Second), start
}

// assertExactlyOnePhase 校验四个阶段在任意观察点恰好一个为真
func assertExactlyOnePhase(t *testing.T, r *Round, now time.Time) {
	t.Helper()
	phases := []Phase{PhaseActive, PhaseAwaitingDraw, PhaseDrawProcessing, PhaseIntermission}
	current := r.Phase(now)

	matches := 0
	for _, p := range phases {
		if p == current {
			matches++
		}
	}
	assert.Equal(t, 1, matches)
}

func TestPhaseDerivation(t *testing.T) {
	m, start := newTestMachine()
	r := m.Current()

	assert.Equal(t, int64(1), r.ID)
	assert.Equal(t, PhaseActive, r.Phase(start.Add(30*time.Second)))
	assert.Equal(t, PhaseAwaitingDraw, r.Phase(start.Add(60*time.Second)))
	assertExactlyOnePhase(t, r, start)
	assertExactlyOnePhase(t, r, start.Add(2*time.Minute))
}

func TestBeginDrawBeforeEnd(t *testing.T) {
	m, start := newTestMachine()

	err := m.BeginDraw(start.Add(59*time.Second), "h1")
	assert.ErrorIs(t, err, ErrRoundNotEnded)
	assert.Equal(t, PhaseActive, m.Current().Phase(start.Add(59*time.Second)))
}

func TestBeginDrawLifecycle(t *testing.T) {
	m, start := newTestMachine()
	now := start.Add(61 * time.Second)

	require.NoError(t, m.BeginDraw(now, "h1"))
	r := m.Current()

	assert.Equal(t, PhaseDrawProcessing, r.Phase(now))
	assert.True(t, r.ActualEndTime.Equal(now))
	assert.Equal(t, "h1", r.RandomnessHandle)
	require.NotNil(t, r.Cursor)
	assert.Equal(t, 0, r.Cursor.Position)
	assertExactlyOnePhase(t, r, now)

	// 重复开奖被拒绝
	err := m.BeginDraw(now.Add(time.Second), "h2")
	assert.ErrorIs(t, err, ErrDrawAlreadyInProgress)
	assert.Equal(t, "h1", r.RandomnessHandle)
}

func TestFinalizeRequiresCompleteBatch(t *testing.T) {
	m, start := newTestMachine()
	now := start.Add(61 * time.Second)
	require.NoError(t, m.BeginDraw(now, "h1"))

	_, err := m.FinalizeDraw()
	assert.ErrorIs(t, err, ErrBatchNotComplete)
	assert.Equal(t, PhaseDrawProcessing, m.Current().Phase(now))

	_, err = draw.Process(m.Current().Cursor, []string{"a"}, func(string) decimal.Decimal {
		return decimal.NewFromInt(1)
	}, 1)
	require.NoError(t, err)

	snapshot, err := m.FinalizeDraw()
	require.NoError(t, err)
	assert.Equal(t, 1, snapshot.Len())
	assert.Equal(t, PhaseIntermission, m.Current().Phase(now))
	assert.Nil(t, m.Current().Cursor)
	assert.Empty(t, m.Current().RandomnessHandle)
}

func TestFinalizeWithoutBatch(t *testing.T) {
	m, _ := newTestMachine()
	_, err := m.FinalizeDraw()
	assert.ErrorIs(t, err, ErrNoActiveBatch)
}

func TestNextRound(t *testing.T) {
	m, start := newTestMachine()
	now := start.Add(61 * time.Second)

	// 活跃轮次不能滚动
	_, err := m.NextRound(now)
	assert.ErrorIs(t, err, ErrRoundStillActive)

	require.NoError(t, m.BeginDraw(now, "h1"))
	_, err = m.NextRound(now)
	assert.ErrorIs(t, err, ErrDrawAlreadyInProgress)

	_, err = draw.Process(m.Current().Cursor, nil, nil, 0)
	require.NoError(t, err)
	_, err = m.FinalizeDraw()
	require.NoError(t, err)

	next, err := m.NextRound(now.Add(5 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, int64(2), next.ID)
	assert.True(t, next.StartTime.Equal(now.Add(5*time.Second)))
	assert.True(t, next.ActualEndTime.IsZero())
	assert.Equal(t, PhaseActive, next.Phase(now.Add(6*time.Second)))
}

func TestSetDurationAffectsNextRoundOnly(t *testing.T) {
	m, start := newTestMachine()
	now := start.Add(61 * time.Second)

	m.SetDuration(120 * time.Second)
	assert.Equal(t, 60*time.Second, m.Current().Duration)

	require.NoError(t, m.BeginDraw(now, "h1"))
	_, err := draw.Process(m.Current().Cursor, nil, nil, 0)
	require.NoError(t, err)
	_, err = m.FinalizeDraw()
	require.NoError(t, err)

	next, err := m.NextRound(now)
	require.NoError(t, err)
	assert.Equal(t, 120*time.Second, next.Duration)
}
