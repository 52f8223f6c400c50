package round

import (
	"time"

	"github.com/pkg/errors"

	"github.com/poolhouse/go-prize-pool/internal/pool/draw"
)

// 轮次状态机前置条件错误。调用被整体拒绝，状态不变。
var (
	ErrRoundNotEnded         = errors.New("round has not ended yet")
	ErrDrawAlreadyInProgress = errors.New("draw already in progress")
	ErrBatchNotComplete      = errors.New("batch processing is not complete")
	ErrRandomnessNotReady    = errors.New("randomness is not ready")
	ErrNoActiveBatch         = errors.New("no active batch")
	ErrRoundStillActive      = errors.New("current round is still active")
)

// Machine 轮次状态机。持有唯一的当前轮次，所有转换都是全有或全无。
type Machine struct {
	current  *Round
	duration time.Duration
}

// NewMachine 创建状态机并开启第 1 轮
func NewMachine(start time.Time, duration time.Duration) *Machine {
	return &Machine{
		current: &Round{
			ID:        1,
			StartTime: start,
			Duration:  duration,
			state:     statusActive,
		},
		duration: duration,
	}
}

// Current 返回当前轮次
func (m *Machine) Current() *Round {
	return m.current
}

// SetDuration 调整后续轮次的时长（当前轮次不受影响）
func (m *Machine) SetDuration(d time.Duration) {
	m.duration = d
}

// CanBeginDraw 检查开奖前置条件，不改变状态
func (m *Machine) CanBeginDraw(now time.Time) error {
	switch m.current.Phase(now) {
	case PhaseActive:
		return ErrRoundNotEnded
	case PhaseDrawProcessing, PhaseIntermission:
		return ErrDrawAlreadyInProgress
	}
	return nil
}

// BeginDraw 进入 DRAW_PROCESSING：设置 actualEndTime，重置批处理游标，
// 记录随机数句柄。
func (m *Machine) BeginDraw(now time.Time, randomnessHandle string) error {
	if err := m.CanBeginDraw(now); err != nil {
		return err
	}

	m.current.ActualEndTime = now
	m.current.Cursor = draw.NewCursor()
	m.current.RandomnessHandle = randomnessHandle
	m.current.state = statusDrawProcessing
	return nil
}

// EnsureProcessing 校验当前处于 DRAW_PROCESSING 且存在批处理游标
func (m *Machine) EnsureProcessing() error {
	if m.current.state != statusDrawProcessing || m.current.Cursor == nil {
		return ErrNoActiveBatch
	}
	return nil
}

// EnsureCompletable 校验批处理已完成（随机数就绪由调用方校验）
func (m *Machine) EnsureCompletable() error {
	if err := m.EnsureProcessing(); err != nil {
		return err
	}
	if !m.current.Cursor.Complete {
		return ErrBatchNotComplete
	}
	return nil
}

// FinalizeDraw 进入 INTERMISSION：返回最终快照并清理游标与句柄。
// 必须在 EnsureCompletable 通过且随机数已消费之后调用。
func (m *Machine) FinalizeDraw() (*draw.Snapshot, error) {
	if err := m.EnsureCompletable(); err != nil {
		return nil, err
	}

	snapshot := m.current.Cursor.Snapshot
	m.current.Cursor = nil
	m.current.RandomnessHandle = ""
	m.current.state = statusIntermission
	return snapshot, nil
}

// NextRound 从 INTERMISSION 开启下一轮：id+1，全新起始时间
func (m *Machine) NextRound(now time.Time) (*Round, error) {
	switch m.current.state {
	case statusActive:
		return nil, ErrRoundStillActive
	case statusDrawProcessing:
		return nil, ErrDrawAlreadyInProgress
	}

	m.current = &Round{
		ID:        m.current.ID + 1,
		StartTime: now,
		Duration:  m.duration,
		state:     statusActive,
	}
	return m.current, nil
}
