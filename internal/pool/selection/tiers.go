package selection

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/poolhouse/go-prize-pool/internal/pool/draw"
	"github.com/poolhouse/go-prize-pool/internal/pool/random"
)

// 配置错误：在构造时拒绝
var (
	ErrNoTiers            = errors.New("at least one tier is required")
	ErrInvalidTierName    = errors.New("tier name must not be empty")
	ErrInvalidTierAmount  = errors.New("tier amount must be positive")
	ErrInvalidWinnerCount = errors.New("tier winner count must be positive")
)

// Tier 固定奖级：每级固定单注金额与中奖人数
type Tier struct {
	Name        string
	Amount      decimal.Decimal
	WinnerCount int
}

// FixedPrizeTiers 按奖级顺序逐级抽取赢家，整次开奖不放回
// （同一参与者不会赢得两个奖级）。资金或合格参与者不足时显式上报，
// 绝不静默截断。
type FixedPrizeTiers struct {
	tiers []Tier
}

// NewFixedPrizeTiers 创建固定奖级策略并校验配置
func NewFixedPrizeTiers(tiers []Tier) (*FixedPrizeTiers, error) {
	if len(tiers) == 0 {
		return nil, ErrNoTiers
	}

	for _, tier := range tiers {
		if tier.Name == "" {
			return nil, ErrInvalidTierName
		}
		if tier.Amount.Sign() <= 0 {
			return nil, ErrInvalidTierAmount
		}
		if tier.WinnerCount <= 0 {
			return nil, ErrInvalidWinnerCount
		}
	}

	out := make([]Tier, len(tiers))
	copy(out, tiers)
	return &FixedPrizeTiers{tiers: out}, nil
}

func (s *FixedPrizeTiers) Name() string {
	return "fixed_prize_tiers"
}

func (s *FixedPrizeTiers) Select(snapshot *draw.Snapshot, rnd random.Value, prize decimal.Decimal) (*Result, error) {
	if snapshot.Total().Sign() <= 0 {
		return noWinner(prize, "zero total weight, prize carried over"), nil
	}

	pool := newDrawPool(snapshot)
	funds := prize
	sub := rnd
	drawIndex := 0

	result := &Result{}
	for _, tier := range s.tiers {
		awardedInTier := 0
		for w := 0; w < tier.WinnerCount; w++ {
			if funds.LessThan(tier.Amount) {
				result.Notes = append(result.Notes, fmt.Sprintf(
					"tier %s: insufficient prize funding, awarded %d of %d",
					tier.Name, awardedInTier, tier.WinnerCount))
				break
			}
			if pool.exhausted() {
				result.Notes = append(result.Notes, fmt.Sprintf(
					"tier %s: insufficient eligible participants, awarded %d of %d",
					tier.Name, awardedInTier, tier.WinnerCount))
				break
			}

			r := modTotal(sub, pool.total)
			account, ok := pool.pick(r)
			if !ok {
				result.Notes = append(result.Notes, fmt.Sprintf(
					"tier %s: insufficient eligible participants, awarded %d of %d",
					tier.Name, awardedInTier, tier.WinnerCount))
				break
			}

			result.Awards = append(result.Awards, Award{
				Account: account,
				Amount:  tier.Amount,
				Tier:    tier.Name,
			})
			funds = funds.Sub(tier.Amount)
			awardedInTier++

			sub = rehash(sub, drawIndex)
			drawIndex++
		}
	}

	result.CarryOver = funds
	if len(result.Awards) == 0 {
		result.Notes = append(result.Notes, "no awards made, prize carried over")
	}

	return result, nil
}
