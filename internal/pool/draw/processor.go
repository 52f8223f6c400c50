package draw

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ErrNegativeLimit 批处理大小不能为负
var ErrNegativeLimit = errors.New("batch limit must not be negative")

// Cursor 可恢复的批处理游标。position 指向有序注册表，跨调用持久，
// 一轮内每个参与者恰好被处理一次。
type Cursor struct {
	Position int
	Complete bool
	Snapshot *Snapshot
}

// NewCursor 创建新的批处理游标
func NewCursor() *Cursor {
	return &Cursor{
		Snapshot: NewSnapshot(),
	}
}

// WeightFunc 计算单个参与者在本轮的开奖权重
type WeightFunc func(account string) decimal.Decimal

// Process 从游标位置起最多处理 limit 个成员，返回剩余数量。
//
// limit=0 是合法的空操作；limit 超过剩余数量时只处理剩余部分，
// 不报错。position 到达注册表末尾时置 Complete（空注册表首次调用
// 即完成）。
func Process(c *Cursor, members []string, weigh WeightFunc, limit int) (int, error) {
	if limit < 0 {
		return len(members) - c.Position, ErrNegativeLimit
	}

	if c.Complete {
		return 0, nil
	}

	end := c.Position + limit
	if end > len(members) {
		end = len(members)
	}

	for ; c.Position < end; c.Position++ {
		account := members[c.Position]
		c.Snapshot.Add(account, weigh(account))
	}

	if c.Position >= len(members) {
		c.Complete = true
	}

	return len(members) - c.Position, nil
}
