package round

import (
	"time"

	"github.com/poolhouse/go-prize-pool/internal/pool/draw"
)

// Phase 轮次阶段。四个阶段互斥，任意时刻恰好一个为真。
// AWAITING_DRAW 是派生状态：轮次已到期但尚未开始开奖。
type Phase string

const (
	PhaseActive         Phase = "ROUND_ACTIVE"
	PhaseAwaitingDraw   Phase = "AWAITING_DRAW"
	PhaseDrawProcessing Phase = "DRAW_PROCESSING"
	PhaseIntermission   Phase = "INTERMISSION"
)

// status 持久化的轮次状态（AWAITING_DRAW 不落存储）
type status int

const (
	statusActive status = iota
	statusDrawProcessing
	statusIntermission
)

// Round 一个开奖周期
type Round struct {
	ID        int64
	StartTime time.Time
	Duration  time.Duration

	// ActualEndTime 开奖开始的时刻，只设置一次；零值表示尚未开奖。
	// 设置后本轮权重累计被冻结。
	ActualEndTime time.Time

	// Cursor 批处理游标，仅在 DRAW_PROCESSING 阶段非空
	Cursor *draw.Cursor

	// RandomnessHandle 随机数网关句柄，仅在 DRAW_PROCESSING 阶段非空
	RandomnessHandle string

	state status
}

// EndTime 计划结束时间
func (r *Round) EndTime() time.Time {
	return r.StartTime.Add(r.Duration)
}

// Phase 返回 now 时刻的阶段
func (r *Round) Phase(now time.Time) Phase {
	switch r.state {
	case statusDrawProcessing:
		return PhaseDrawProcessing
	case statusIntermission:
		return PhaseIntermission
	default:
		if !now.Before(r.EndTime()) {
			return PhaseAwaitingDraw
		}
		return PhaseActive
	}
}
