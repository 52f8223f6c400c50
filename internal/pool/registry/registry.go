package registry

import (
	"github.com/pkg/errors"
)

// ErrNotRegistered 账户未注册
var ErrNotRegistered = errors.New("account is not registered")

// Registry 参与者注册表。成员保持稳定的注册顺序，批处理游标依赖
// 这一顺序在多次调用之间保持索引有效。
type Registry struct {
	members []string
	index   map[string]int
}

// NewRegistry 创建参与者注册表
func NewRegistry() *Registry {
	return &Registry{
		index: make(map[string]int),
	}
}

// Register 注册参与者，返回是否为新成员
func (r *Registry) Register(account string) bool {
	if _, ok := r.index[account]; ok {
		return false
	}

	r.index[account] = len(r.members)
	r.members = append(r.members, account)
	return true
}

// IsRegistered 查询账户是否已注册
func (r *Registry) IsRegistered(account string) bool {
	_, ok := r.index[account]
	return ok
}

// Members 返回按注册顺序排列的成员列表（副本）
func (r *Registry) Members() []string {
	out := make([]string, len(r.members))
	copy(out, r.members)
	return out
}

// Len 返回成员数量
func (r *Registry) Len() int {
	return len(r.members)
}

// Remove 删除成员并压缩顺序。开奖处理期间不允许调用（由上层保证），
// 否则游标索引会错位。
func (r *Registry) Remove(account string) error {
	pos, ok := r.index[account]
	if !ok {
		return ErrNotRegistered
	}

	r.members = append(r.members[:pos], r.members[pos+1:]...)
	delete(r.index, account)
	for i := pos; i < len(r.members); i++ {
		r.index[r.members[i]] = i
	}

	return nil
}
