package draw

import (
	"github.com/shopspring/decimal"
)

// Snapshot 开奖权重快照。条目按加入顺序（即注册顺序）迭代，
// 中奖判定依赖这一确定性顺序。
type Snapshot struct {
	order   []string
	weights map[string]decimal.Decimal
	total   decimal.Decimal
}

// NewSnapshot 创建空快照
func NewSnapshot() *Snapshot {
	return &Snapshot{
		weights: make(map[string]decimal.Decimal),
	}
}

// Add 追加一个参与者的权重。单轮批处理内条目只增不减。
func (s *Snapshot) Add(account string, weight decimal.Decimal) {
	if _, ok := s.weights[account]; !ok {
		s.order = append(s.order, account)
	}
	s.weights[account] = weight
	s.total = s.total.Add(weight)
}

// Weight 查询参与者权重
func (s *Snapshot) Weight(account string) (decimal.Decimal, bool) {
	w, ok := s.weights[account]
	return w, ok
}

// Accounts 按加入顺序返回参与者列表（副本）
func (s *Snapshot) Accounts() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Total 返回权重总和
func (s *Snapshot) Total() decimal.Decimal {
	return s.total
}

// Len 返回条目数量
func (s *Snapshot) Len() int {
	return len(s.order)
}
