package twab

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tolerance = decimal.RequireFromString("0.000001")

func assertDecimalEqual(t *testing.T, expected, actual decimal.Decimal) {
	t.Helper()
	diff := expected.Sub(actual).Abs()
	assert.True(t, diff.LessThanOrEqual(tolerance), "expected %s, got %s", expected, actual)
}

func staticBalances(balances map[string]string) BalanceFunc {
	return func(account string) decimal.Decimal {
		if v, ok := balances[account]; ok {
			return decimal.RequireFromString(v)
		}
		return decimal.Zero
	}
}

func TestWeightHalfRound(t *testing.T) {
	start := time.Unix(1000, 0)
	a := NewAccumulator(start, 60*time.Second, staticBalances(nil))

	// 轮次开始时存入 100，30 秒后权重应为 50
	a.Record("alice", decimal.Zero, decimal.NewFromInt(100), start)
	w := a.WeightAsOf("alice", start.Add(30*time.Second))
	assertDecimalEqual(t, decimal.NewFromInt(50), w)

	// 第二笔存款在权重累计前一刻查询，不应改变结果
	a.Record("alice", decimal.NewFromInt(100), decimal.NewFromInt(200), start.Add(30*time.Second))
	w = a.WeightAsOf("alice", start.Add(30*time.Second))
	assertDecimalEqual(t, decimal.NewFromInt(50), w)
}

func TestFullRoundHolderConvergesToBalance(t *testing.T) {
	start := time.Unix(1000, 0)
	a := NewAccumulator(start, 60*time.Second, staticBalances(nil))

	a.Record("alice", decimal.Zero, decimal.NewFromInt(100), start)
	w := a.WeightAsOf("alice", start.Add(60*time.Second))
	assertDecimalEqual(t, decimal.NewFromInt(100), w)
}

func TestLazyFallbackFullRoundHolding(t *testing.T) {
	start := time.Unix(1000, 0)
	a := NewAccumulator(start, 60*time.Second, staticBalances(map[string]string{"bob": "40"}))

	// bob 整轮未交易：按整轮持有当前余额计权
	w := a.WeightAsOf("bob", start.Add(30*time.Second))
	assertDecimalEqual(t, decimal.NewFromInt(20), w)

	w = a.WeightAsOf("bob", start.Add(60*time.Second))
	assertDecimalEqual(t, decimal.NewFromInt(40), w)
}

func TestLazyFallbackAppliedAtRecordTime(t *testing.T) {
	start := time.Unix(1000, 0)
	a := NewAccumulator(start, 60*time.Second, staticBalances(nil))

	// bob 在轮次开始前就持有 40，本轮第一笔交易在 t=30s：
	// 事件携带的 prev 余额补齐了前半轮的权重
	a.Record("bob", decimal.NewFromInt(40), decimal.NewFromInt(100), start.Add(30*time.Second))
	w := a.WeightAsOf("bob", start.Add(60*time.Second))
	// 40×0.5 + 100×0.5
	assertDecimalEqual(t, decimal.NewFromInt(70), w)
}

func TestWithdrawalRetainsAccruedWeight(t *testing.T) {
	start := time.Unix(1000, 0)
	a := NewAccumulator(start, 60*time.Second, staticBalances(nil))

	a.Record("alice", decimal.Zero, decimal.NewFromInt(100), start)
	a.Record("alice", decimal.NewFromInt(100), decimal.Zero, start.Add(30*time.Second))

	// 全额取出后历史权重保留，但不再增长
	w := a.WeightAsOf("alice", start.Add(60*time.Second))
	assertDecimalEqual(t, decimal.NewFromInt(50), w)
}

func TestCapFreezesWeight(t *testing.T) {
	start := time.Unix(1000, 0)
	a := NewAccumulator(start, 60*time.Second, staticBalances(nil))

	a.Record("alice", decimal.Zero, decimal.NewFromInt(100), start)
	capAt := start.Add(60 * time.Second)
	a.SetCap(capAt)

	w1 := a.WeightAsOf("alice", capAt)
	w2 := a.WeightAsOf("alice", capAt.Add(10*time.Minute))
	require.True(t, w1.Equal(w2), "weight must not change after cap: %s vs %s", w1, w2)
}

func TestPostCapDepositContributesNothing(t *testing.T) {
	start := time.Unix(1000, 0)
	a := NewAccumulator(start, 60*time.Second, staticBalances(nil))

	capAt := start.Add(61 * time.Second)
	a.SetCap(capAt)

	// 开奖开始后的新账户存款：本轮权重为零
	a.Record("mallory", decimal.Zero, decimal.NewFromInt(1000), capAt.Add(time.Second))
	w := a.WeightAsOf("mallory", capAt.Add(time.Hour))
	assert.True(t, w.IsZero(), "expected zero weight, got %s", w)
}

func TestPostCapTopUpDoesNotInflateWeight(t *testing.T) {
	start := time.Unix(1000, 0)
	a := NewAccumulator(start, 60*time.Second, staticBalances(nil))

	a.Record("alice", decimal.Zero, decimal.NewFromInt(100), start)
	capAt := start.Add(60 * time.Second)
	a.SetCap(capAt)

	before := a.WeightAsOf("alice", capAt)
	a.Record("alice", decimal.NewFromInt(100), decimal.NewFromInt(100000), capAt.Add(time.Second))
	after := a.WeightAsOf("alice", capAt.Add(time.Minute))

	require.True(t, before.Equal(after))
}

func TestSetCapIsSetOnce(t *testing.T) {
	start := time.Unix(1000, 0)
	a := NewAccumulator(start, 60*time.Second, staticBalances(nil))

	capAt := start.Add(60 * time.Second)
	a.SetCap(capAt)
	a.SetCap(capAt.Add(time.Hour))

	assert.True(t, a.Cap().Equal(capAt))
}

func TestStartRoundResetsCheckpoints(t *testing.T) {
	start := time.Unix(1000, 0)
	balances := map[string]string{"alice": "100"}
	a := NewAccumulator(start, 60*time.Second, staticBalances(balances))

	a.Record("alice", decimal.Zero, decimal.NewFromInt(100), start)
	a.SetCap(start.Add(60 * time.Second))

	next := start.Add(90 * time.Second)
	a.StartRound(next, 60*time.Second)

	// 新一轮按账本余额整轮持有
	w := a.WeightAsOf("alice", next.Add(60*time.Second))
	assertDecimalEqual(t, decimal.NewFromInt(100), w)
	assert.True(t, a.Cap().IsZero())
}

func TestWeightConservationAcrossEventHistory(t *testing.T) {
	start := time.Unix(1000, 0)
	duration := 100 * time.Second
	a := NewAccumulator(start, duration, staticBalances(nil))

	// 分段事件流：0-20s 余额 50，20-70s 余额 120，70s 后余额 80
	a.Record("alice", decimal.Zero, decimal.NewFromInt(50), start)
	a.Record("alice", decimal.NewFromInt(50), decimal.NewFromInt(120), start.Add(20*time.Second))
	a.Record("alice", decimal.NewFromInt(120), decimal.NewFromInt(80), start.Add(70*time.Second))

	w := a.WeightAsOf("alice", start.Add(100*time.Second))
	// 50×0.2 + 120×0.5 + 80×0.3 = 10 + 60 + 24
	assertDecimalEqual(t, decimal.NewFromInt(94), w)
}
