package selection

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/poolhouse/go-prize-pool/internal/pool/draw"
	"github.com/poolhouse/go-prize-pool/internal/pool/random"
)

// 配置错误：在构造时拒绝，开奖期间不可能出现
var (
	ErrNoSplits         = errors.New("at least one split fraction is required")
	ErrInvalidSplit     = errors.New("split fractions must be positive")
	ErrSplitsDontSumOne = errors.New("split fractions must sum to 1.0")
)

// MultiWinnerSplit 按配置的份额抽取多个赢家（不放回）。
//
// 合格参与者少于配置的赢家数时，选出全部合格者并把剩余份额按比例
// 重新分配给他们，奖金总额保持不变。
type MultiWinnerSplit struct {
	splits []decimal.Decimal
}

// NewMultiWinnerSplit 创建多赢家策略。份额在此处校验：非空、均为正、
// 总和为 1。
func NewMultiWinnerSplit(splits []decimal.Decimal) (*MultiWinnerSplit, error) {
	if len(splits) == 0 {
		return nil, ErrNoSplits
	}

	sum := decimal.Zero
	for _, s := range splits {
		if s.Sign() <= 0 {
			return nil, ErrInvalidSplit
		}
		sum = sum.Add(s)
	}
	if !sum.Equal(decimal.NewFromInt(1)) {
		return nil, ErrSplitsDontSumOne
	}

	out := make([]decimal.Decimal, len(splits))
	copy(out, splits)
	return &MultiWinnerSplit{splits: out}, nil
}

func (s *MultiWinnerSplit) Name() string {
	return "multi_winner_split"
}

func (s *MultiWinnerSplit) Select(snapshot *draw.Snapshot, rnd random.Value, prize decimal.Decimal) (*Result, error) {
	if snapshot.Total().Sign() <= 0 {
		return noWinner(prize, "zero total weight, prize carried over"), nil
	}

	pool := newDrawPool(snapshot)
	sub := rnd

	var winners []string
	var fractions []decimal.Decimal
	for i := range s.splits {
		if pool.exhausted() {
			break
		}

		r := modTotal(sub, pool.total)
		account, ok := pool.pick(r)
		if !ok {
			break
		}

		winners = append(winners, account)
		fractions = append(fractions, s.splits[i])
		sub = rehash(sub, i)
	}

	if len(winners) == 0 {
		return noWinner(prize, "no eligible participants, prize carried over"), nil
	}

	result := &Result{CarryOver: decimal.Zero}
	if len(winners) < len(s.splits) {
		result.Notes = append(result.Notes, fmt.Sprintf(
			"selected %d of %d configured winners, remaining splits redistributed proportionally",
			len(winners), len(s.splits)))
	}

	// 按选中赢家的份额归一化分配；最后一名拿余额避免除法残差
	fracSum := decimal.Zero
	for _, f := range fractions {
		fracSum = fracSum.Add(f)
	}

	awarded := decimal.Zero
	for i, account := range winners {
		amount := prize.Mul(fractions[i]).Div(fracSum)
		if i == len(winners)-1 {
			amount = prize.Sub(awarded)
		}
		result.Awards = append(result.Awards, Award{
			Account: account,
			Amount:  amount,
			Tier:    fmt.Sprintf("split_%d", i+1),
		})
		awarded = awarded.Add(amount)
	}

	return result, nil
}
