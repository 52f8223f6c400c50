package selection

import (
	"crypto/sha256"
	"encoding/binary"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/poolhouse/go-prize-pool/internal/pool/draw"
	"github.com/poolhouse/go-prize-pool/internal/pool/random"
)

// drawScale 权重转整数取模时保留的小数位数
const drawScale = 12

// Award 一笔中奖
type Award struct {
	Account string
	Amount  decimal.Decimal
	Tier    string
}

// Result 一次选择的结果。Awards 为空表示无人中奖，CarryOver 为未发出的
// 奖金（由调用方滚存到下一轮）。Notes 显式报告资金或参与者不足等情况。
type Result struct {
	Awards    []Award
	CarryOver decimal.Decimal
	Notes     []string
}

// HasWinner 是否至少产生了一名赢家
func (r *Result) HasWinner() bool {
	return len(r.Awards) > 0
}

// Strategy 中奖选择策略。消费权重快照与随机值，产出若干
// (参与者, 金额, 等级)。对空快照或零权重快照绝不 panic，
// 而是返回显式的无赢家结果。
type Strategy interface {
	Name() string
	Select(snapshot *draw.Snapshot, rnd random.Value, prize decimal.Decimal) (*Result, error)
}

// drawPool 不放回抽取的工作集，保持快照的确定性迭代顺序
type drawPool struct {
	order   []string
	weights map[string]decimal.Decimal
	total   decimal.Decimal
}

func newDrawPool(s *draw.Snapshot) *drawPool {
	p := &drawPool{
		order:   s.Accounts(),
		weights: make(map[string]decimal.Decimal, s.Len()),
		total:   s.Total(),
	}
	for _, account := range p.order {
		w, _ := s.Weight(account)
		p.weights[account] = w
	}
	return p
}

// pick 按累计和走查：第一个累计权重超过 r 的参与者中选并被移出工作集
func (p *drawPool) pick(r decimal.Decimal) (string, bool) {
	cum := decimal.Zero
	for _, account := range p.order {
		w := p.weights[account]
		if w.Sign() <= 0 {
			continue
		}
		cum = cum.Add(w)
		if cum.GreaterThan(r) {
			p.remove(account, w)
			return account, true
		}
	}

	// 取模截断可能使 r 落在最后一个条目的尾部区间
	for i := len(p.order) - 1; i >= 0; i-- {
		account := p.order[i]
		if w := p.weights[account]; w.Sign() > 0 {
			p.remove(account, w)
			return account, true
		}
	}
	return "", false
}

func (p *drawPool) remove(account string, w decimal.Decimal) {
	p.weights[account] = decimal.Zero
	p.total = p.total.Sub(w)
}

func (p *drawPool) exhausted() bool {
	return p.total.Sign() <= 0
}

// modTotal 把随机值映射到 [0, total) 区间
func modTotal(rnd random.Value, total decimal.Decimal) decimal.Decimal {
	scaled := total.Shift(drawScale).Truncate(0).BigInt()
	if scaled.Sign() <= 0 {
		return decimal.Zero
	}

	r := new(big.Int).SetBytes(rnd)
	r.Mod(r, scaled)
	return decimal.NewFromBigInt(r, -drawScale)
}

// rehash 从同一随机值派生第 i 个确定性子随机值（不放回多次抽取用）
func rehash(v random.Value, i int) random.Value {
	iBuf := make([]byte, 8)
	binary.LittleEndian.PutUint64(iBuf, uint64(i))

	h := sha256.New()
	h.Write(v)
	h.Write(iBuf)
	return h.Sum(nil)
}

func noWinner(prize decimal.Decimal, note string) *Result {
	return &Result{
		CarryOver: prize,
		Notes:     []string{note},
	}
}
