package selection

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poolhouse/go-prize-pool/internal/pool/draw"
	"github.com/poolhouse/go-prize-pool/internal/pool/random"
)

func snapshotOf(entries ...struct {
	account string
	weight  int64
}) *draw.Snapshot {
	s := draw.NewSnapshot()
	for _, e := range entries {
		s.Add(e.account, decimal.NewFromInt(e.weight))
	}
	return s
}

func entry(account string, weight int64) struct {
	account string
	weight  int64
} {
	return struct {
		account string
		weight  int64
	}{account, weight}
}

func testValue(tag byte) random.Value {
	v := make([]byte, 32)
	for i := range v {
		v[i] = tag
	}
	return v
}

func TestSingleWinnerSelectsEligibleParticipant(t *testing.T) {
	snap := snapshotOf(entry("a", 0), entry("b", 30), entry("c", 70))
	prize := decimal.NewFromInt(10)

	for tag := byte(0); tag < 20; tag++ {
		res, err := NewWeightedSingleWinner().Select(snap, testValue(tag), prize)
		require.NoError(t, err)
		require.True(t, res.HasWinner())
		require.Len(t, res.Awards, 1)

		// 零权重参与者绝不中奖
		assert.NotEqual(t, "a", res.Awards[0].Account)
		assert.True(t, res.Awards[0].Amount.Equal(prize))
		assert.True(t, res.CarryOver.IsZero())
	}
}

func TestSingleWinnerIsDeterministic(t *testing.T) {
	snap := snapshotOf(entry("a", 10), entry("b", 20), entry("c", 30))

	res1, err := NewWeightedSingleWinner().Select(snap, testValue(7), decimal.NewFromInt(5))
	require.NoError(t, err)
	res2, err := NewWeightedSingleWinner().Select(snap, testValue(7), decimal.NewFromInt(5))
	require.NoError(t, err)

	assert.Equal(t, res1.Awards[0].Account, res2.Awards[0].Account)
}

func TestSingleWinnerZeroTotalWeight(t *testing.T) {
	prize := decimal.NewFromInt(10)

	res, err := NewWeightedSingleWinner().Select(draw.NewSnapshot(), testValue(1), prize)
	require.NoError(t, err)
	assert.False(t, res.HasWinner())
	assert.True(t, res.CarryOver.Equal(prize))
	assert.NotEmpty(t, res.Notes)

	res, err = NewWeightedSingleWinner().Select(snapshotOf(entry("a", 0)), testValue(1), prize)
	require.NoError(t, err)
	assert.False(t, res.HasWinner())
	assert.True(t, res.CarryOver.Equal(prize))
}

func TestMultiWinnerSplitValidation(t *testing.T) {
	_, err := NewMultiWinnerSplit(nil)
	assert.ErrorIs(t, err, ErrNoSplits)

	_, err = NewMultiWinnerSplit([]decimal.Decimal{decimal.NewFromInt(1), decimal.Zero})
	assert.ErrorIs(t, err, ErrInvalidSplit)

	_, err = NewMultiWinnerSplit([]decimal.Decimal{
		decimal.RequireFromString("0.5"),
		decimal.RequireFromString("0.4"),
	})
	assert.ErrorIs(t, err, ErrSplitsDontSumOne)

	_, err = NewMultiWinnerSplit([]decimal.Decimal{
		decimal.RequireFromString("0.5"),
		decimal.RequireFromString("0.3"),
		decimal.RequireFromString("0.2"),
	})
	assert.NoError(t, err)
}

func TestMultiWinnerSplitWithoutReplacement(t *testing.T) {
	strategy, err := NewMultiWinnerSplit([]decimal.Decimal{
		decimal.RequireFromString("0.6"),
		decimal.RequireFromString("0.4"),
	})
	require.NoError(t, err)

	snap := snapshotOf(entry("a", 10), entry("b", 20), entry("c", 30))
	prize := decimal.NewFromInt(100)

	res, err := strategy.Select(snap, testValue(3), prize)
	require.NoError(t, err)
	require.Len(t, res.Awards, 2)

	// 同一参与者不能中两次
	assert.NotEqual(t, res.Awards[0].Account, res.Awards[1].Account)
	assert.True(t, res.Awards[0].Amount.Equal(decimal.NewFromInt(60)))
	assert.True(t, res.Awards[1].Amount.Equal(decimal.NewFromInt(40)))
	assert.True(t, res.CarryOver.IsZero())
}

func TestMultiWinnerSplitFewerEligibleRedistributes(t *testing.T) {
	strategy, err := NewMultiWinnerSplit([]decimal.Decimal{
		decimal.RequireFromString("0.5"),
		decimal.RequireFromString("0.3"),
		decimal.RequireFromString("0.2"),
	})
	require.NoError(t, err)

	// 只有一名合格参与者：独得全部奖金，并上报份额重分配
	snap := snapshotOf(entry("a", 10))
	prize := decimal.NewFromInt(100)

	res, err := strategy.Select(snap, testValue(5), prize)
	require.NoError(t, err)
	require.Len(t, res.Awards, 1)
	assert.Equal(t, "a", res.Awards[0].Account)
	assert.True(t, res.Awards[0].Amount.Equal(prize))
	assert.True(t, res.CarryOver.IsZero())
	assert.NotEmpty(t, res.Notes)
}

func TestMultiWinnerSplitTwoEligibleOfThree(t *testing.T) {
	strategy, err := NewMultiWinnerSplit([]decimal.Decimal{
		decimal.RequireFromString("0.5"),
		decimal.RequireFromString("0.3"),
		decimal.RequireFromString("0.2"),
	})
	require.NoError(t, err)

	snap := snapshotOf(entry("a", 10), entry("b", 10))
	prize := decimal.NewFromInt(80)

	res, err := strategy.Select(snap, testValue(9), prize)
	require.NoError(t, err)
	require.Len(t, res.Awards, 2)

	// 0.5/0.3 归一化后为 5/8 与 3/8，总额保持不变
	total := decimal.Zero
	for _, a := range res.Awards {
		total = total.Add(a.Amount)
	}
	assert.True(t, total.Equal(prize))
	assert.True(t, res.Awards[0].Amount.Equal(decimal.NewFromInt(50)))
	assert.True(t, res.Awards[1].Amount.Equal(decimal.NewFromInt(30)))
}

func TestFixedPrizeTiersValidation(t *testing.T) {
	_, err := NewFixedPrizeTiers(nil)
	assert.ErrorIs(t, err, ErrNoTiers)

	_, err = NewFixedPrizeTiers([]Tier{{Name: "", Amount: decimal.NewFromInt(1), WinnerCount: 1}})
	assert.ErrorIs(t, err, ErrInvalidTierName)

	_, err = NewFixedPrizeTiers([]Tier{{Name: "gold", Amount: decimal.Zero, WinnerCount: 1}})
	assert.ErrorIs(t, err, ErrInvalidTierAmount)

	_, err = NewFixedPrizeTiers([]Tier{{Name: "gold", Amount: decimal.NewFromInt(1), WinnerCount: 0}})
	assert.ErrorIs(t, err, ErrInvalidWinnerCount)
}

func TestFixedPrizeTiersNoDoubleWin(t *testing.T) {
	strategy, err := NewFixedPrizeTiers([]Tier{
		{Name: "gold", Amount: decimal.NewFromInt(50), WinnerCount: 1},
		{Name: "silver", Amount: decimal.NewFromInt(20), WinnerCount: 2},
	})
	require.NoError(t, err)

	snap := snapshotOf(entry("a", 10), entry("b", 20), entry("c", 30), entry("d", 40))
	res, err := strategy.Select(snap, testValue(11), decimal.NewFromInt(100))
	require.NoError(t, err)
	require.Len(t, res.Awards, 3)

	seen := make(map[string]bool)
	for _, a := range res.Awards {
		assert.False(t, seen[a.Account], "account %s won twice", a.Account)
		seen[a.Account] = true
	}
	assert.True(t, res.CarryOver.Equal(decimal.NewFromInt(10)))
}

func TestFixedPrizeTiersInsufficientFunding(t *testing.T) {
	strategy, err := NewFixedPrizeTiers([]Tier{
		{Name: "gold", Amount: decimal.NewFromInt(50), WinnerCount: 2},
	})
	require.NoError(t, err)

	snap := snapshotOf(entry("a", 10), entry("b", 20))
	res, err := strategy.Select(snap, testValue(12), decimal.NewFromInt(60))
	require.NoError(t, err)

	// 资金只够一注：显式上报，余额滚存
	require.Len(t, res.Awards, 1)
	assert.True(t, res.CarryOver.Equal(decimal.NewFromInt(10)))
	assert.NotEmpty(t, res.Notes)
}

func TestFixedPrizeTiersInsufficientParticipants(t *testing.T) {
	strategy, err := NewFixedPrizeTiers([]Tier{
		{Name: "gold", Amount: decimal.NewFromInt(10), WinnerCount: 3},
	})
	require.NoError(t, err)

	snap := snapshotOf(entry("a", 5))
	res, err := strategy.Select(snap, testValue(13), decimal.NewFromInt(100))
	require.NoError(t, err)

	require.Len(t, res.Awards, 1)
	assert.True(t, res.CarryOver.Equal(decimal.NewFromInt(90)))
	assert.NotEmpty(t, res.Notes)
}
