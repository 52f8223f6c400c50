package storage

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// WinnerRecord 单个赢家的落库记录
type WinnerRecord struct {
	Account string          `json:"account"`
	Amount  decimal.Decimal `json:"amount"`
	Tier    string          `json:"tier"`
}

// DrawRecord 一次完成的开奖
type DrawRecord struct {
	RoundID      int64           `json:"round_id"`
	CompletedAt  time.Time       `json:"completed_at"`
	Participants int             `json:"participants"`
	TotalWeight  decimal.Decimal `json:"total_weight"`
	PrizeAwarded decimal.Decimal `json:"prize_awarded"`
	CarryOver    decimal.Decimal `json:"carry_over"`
	Strategy     string          `json:"strategy"`
	Notes        []string        `json:"notes,omitempty"`
	Winners      []WinnerRecord  `json:"winners"`
}

// HistoryStore 开奖历史存储接口。内存状态是权威，存储是审计镜像。
type HistoryStore interface {
	SaveDraw(ctx context.Context, record *DrawRecord) error
	GetDraw(ctx context.Context, roundID int64) (*DrawRecord, error)
	ListDraws(ctx context.Context, limit int) ([]*DrawRecord, error)
}

// RoundStatus 轮次状态镜像（供状态缓存使用）
type RoundStatus struct {
	RoundID       int64           `json:"round_id"`
	Phase         string          `json:"phase"`
	StartTime     time.Time       `json:"start_time"`
	EndTime       time.Time       `json:"end_time"`
	ActualEndTime *time.Time      `json:"actual_end_time,omitempty"`
	BatchPosition int             `json:"batch_position"`
	BatchComplete bool            `json:"batch_complete"`
	PrizePool     decimal.Decimal `json:"prize_pool"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// StatusCache 轮次状态缓存接口
type StatusCache interface {
	SaveStatus(ctx context.Context, status *RoundStatus, ttl time.Duration) error
	GetStatus(ctx context.Context) (*RoundStatus, error)
}
