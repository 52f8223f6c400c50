package emergency

import "time"

// Op 受紧急模式门控的操作类别
type Op string

const (
	OpDeposit  Op = "deposit"
	OpWithdraw Op = "withdraw"
	OpDraw     Op = "draw"
	OpAdmin    Op = "admin"
)

// Gate 操作门控接口。状态变更操作执行前检查，false 表示操作被阻断。
type Gate interface {
	IsAllowed(op Op) bool
}

// State 紧急模式状态
type State string

const (
	StateNormal    State = "NORMAL"
	StateEmergency State = "EMERGENCY"
)

// Info 紧急模式信息快照
type Info struct {
	State     State
	Reason    string
	EnabledAt time.Time
}

// Mode 紧急模式开关。紧急状态下只允许取款和管理员操作：
// 用户永远可以退出，但资金不再流入、开奖不再推进。
type Mode struct {
	state     State
	reason    string
	enabledAt time.Time
}

// NewMode 创建处于正常状态的紧急模式开关
func NewMode() *Mode {
	return &Mode{state: StateNormal}
}

// Enable 启用紧急模式
func (m *Mode) Enable(reason string, at time.Time) {
	m.state = StateEmergency
	m.reason = reason
	m.enabledAt = at
}

// Disable 恢复正常状态
func (m *Mode) Disable() {
	m.state = StateNormal
	m.reason = ""
	m.enabledAt = time.Time{}
}

// IsNormal 是否处于正常状态
func (m *Mode) IsNormal() bool {
	return m.state == StateNormal
}

// Info 返回当前状态快照
func (m *Mode) Info() Info {
	return Info{State: m.state, Reason: m.reason, EnabledAt: m.enabledAt}
}

// IsAllowed 实现 Gate
func (m *Mode) IsAllowed(op Op) bool {
	if m.state == StateNormal {
		return true
	}

	switch op {
	case OpWithdraw, OpAdmin:
		return true
	default:
		return false
	}
}
