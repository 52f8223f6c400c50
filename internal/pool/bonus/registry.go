package bonus

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// 奖励权重错误
var (
	ErrNegativeWeight = errors.New("bonus weight must not be negative")
	ErrNoBonus        = errors.New("account has no bonus weight")
)

// Entry 单个账户的奖励权重及审计说明
type Entry struct {
	Weight decimal.Decimal
	Reason string
}

// Registry 管理员分配的附加权重。与余额无关，跨轮次持久。
type Registry struct {
	entries map[string]Entry
}

// NewRegistry 创建奖励权重注册表
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]Entry),
	}
}

// Set 覆盖设置账户的奖励权重
func (r *Registry) Set(account string, weight decimal.Decimal, reason string) error {
	if weight.Sign() < 0 {
		return ErrNegativeWeight
	}

	r.entries[account] = Entry{Weight: weight, Reason: reason}
	return nil
}

// Add 叠加奖励权重，结果不得为负
func (r *Registry) Add(account string, delta decimal.Decimal, reason string) error {
	next := r.Get(account).Add(delta)
	if next.Sign() < 0 {
		return ErrNegativeWeight
	}

	r.entries[account] = Entry{Weight: next, Reason: reason}
	return nil
}

// Remove 删除账户的奖励权重
func (r *Registry) Remove(account string) error {
	if _, ok := r.entries[account]; !ok {
		return ErrNoBonus
	}

	delete(r.entries, account)
	return nil
}

// Get 查询账户奖励权重，未设置返回零
func (r *Registry) Get(account string) decimal.Decimal {
	if e, ok := r.entries[account]; ok {
		return e.Weight
	}
	return decimal.Zero
}

// Entry 查询账户奖励权重条目
func (r *Registry) Entry(account string) (Entry, bool) {
	e, ok := r.entries[account]
	return e, ok
}
