package twab

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceFunc 查询账户当前余额（用于惰性初始化检查点）
type BalanceFunc func(account string) decimal.Decimal

// Checkpoint 单个账户在当前轮次内的累计检查点
type Checkpoint struct {
	// At 最近一次检查点时间
	At time.Time
	// Balance 最近一次检查点之后持有的余额
	Balance decimal.Decimal
	// Accrued 截至 At 已累计的归一化权重
	Accrued decimal.Decimal
}

// Accumulator 时间加权余额（TWAB）累加器。
//
// 权重按 balance × elapsed / roundDuration 归一化累计，保证数值量级与
// 轮次长度和锁仓总量无关。一旦设置了截止时间（轮次进入开奖处理),
// 之后的余额变更对本轮权重完全无效。
type Accumulator struct {
	start     time.Time
	duration  time.Duration
	cap       time.Time // 零值表示未设置
	balanceOf BalanceFunc

	checkpoints map[string]*Checkpoint
}

// NewAccumulator 创建累加器。balanceOf 用于为从未在本轮交易过的账户
// 合成“整轮持有”检查点。
func NewAccumulator(start time.Time, duration time.Duration, balanceOf BalanceFunc) *Accumulator {
	return &Accumulator{
		start:       start,
		duration:    duration,
		balanceOf:   balanceOf,
		checkpoints: make(map[string]*Checkpoint),
	}
}

// StartRound 轮次滚动：重置所有检查点并打开新的权重窗口
func (a *Accumulator) StartRound(start time.Time, duration time.Duration) {
	a.start = start
	a.duration = duration
	a.cap = time.Time{}
	a.checkpoints = make(map[string]*Checkpoint)
}

// SetCap 冻结本轮权重累计（开奖开始时由轮次状态机调用，只设置一次）
func (a *Accumulator) SetCap(at time.Time) {
	if a.cap.IsZero() {
		a.cap = at
	}
}

// Cap 返回当前截止时间，零值表示未设置
func (a *Accumulator) Cap() time.Time {
	return a.cap
}

// Record 记录一次余额变更。prev 是变更前的余额，用于在账户本轮首次
// 交易时合成轮次起点的检查点。
//
// 截止时间之后的事件不影响本轮权重：余额本身由外部账本持有，下一轮
// 的惰性初始化会直接读取账本。
func (a *Accumulator) Record(account string, prev, next decimal.Decimal, at time.Time) {
	cp, ok := a.checkpoints[account]
	if !ok {
		cp = &Checkpoint{At: a.start, Balance: prev}
		a.checkpoints[account] = cp
	}

	if !a.cap.IsZero() && at.After(a.cap) {
		// 防操纵规则：开奖处理开始后任何变更对本轮权重贡献为零
		return
	}

	cp.Accrued = cp.Accrued.Add(cp.Balance.Mul(a.fraction(cp.At, at)))
	cp.Balance = next
	cp.At = at
}

// WeightAsOf 查询账户截至 at 的本轮权重（受截止时间约束）。
// 账户若整轮未交易，按“从轮次开始持有当前余额”惰性初始化并写回。
func (a *Accumulator) WeightAsOf(account string, at time.Time) decimal.Decimal {
	effective := at
	if !a.cap.IsZero() && effective.After(a.cap) {
		effective = a.cap
	}
	if effective.Before(a.start) {
		effective = a.start
	}

	cp, ok := a.checkpoints[account]
	if !ok {
		cp = &Checkpoint{At: a.start, Balance: a.balanceOf(account)}
		a.checkpoints[account] = cp
	}

	if !effective.After(cp.At) {
		return cp.Accrued
	}

	return cp.Accrued.Add(cp.Balance.Mul(a.fraction(cp.At, effective)))
}

// fraction 返回 (to-from)/duration，时间倒退按零处理
func (a *Accumulator) fraction(from, to time.Time) decimal.Decimal {
	elapsed := to.Sub(from)
	if elapsed <= 0 || a.duration <= 0 {
		return decimal.Zero
	}

	return decimal.NewFromInt(int64(elapsed)).Div(decimal.NewFromInt(int64(a.duration)))
}
