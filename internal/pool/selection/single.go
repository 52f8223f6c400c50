package selection

import (
	"github.com/shopspring/decimal"

	"github.com/poolhouse/go-prize-pool/internal/pool/draw"
	"github.com/poolhouse/go-prize-pool/internal/pool/random"
)

// WeightedSingleWinner 按权重抽取单个赢家，独得全部奖金
type WeightedSingleWinner struct{}

// NewWeightedSingleWinner 创建单赢家策略
func NewWeightedSingleWinner() *WeightedSingleWinner {
	return &WeightedSingleWinner{}
}

func (s *WeightedSingleWinner) Name() string {
	return "weighted_single_winner"
}

func (s *WeightedSingleWinner) Select(snapshot *draw.Snapshot, rnd random.Value, prize decimal.Decimal) (*Result, error) {
	if snapshot.Total().Sign() <= 0 {
		return noWinner(prize, "zero total weight, prize carried over"), nil
	}

	pool := newDrawPool(snapshot)
	r := modTotal(rnd, pool.total)
	account, ok := pool.pick(r)
	if !ok {
		return noWinner(prize, "no eligible participants, prize carried over"), nil
	}

	return &Result{
		Awards:    []Award{{Account: account, Amount: prize, Tier: "grand"}},
		CarryOver: decimal.Zero,
	}, nil
}
