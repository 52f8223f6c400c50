package emergency

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalModeAllowsEverything(t *testing.T) {
	m := NewMode()

	assert.True(t, m.IsNormal())
	for _, op := range []Op{OpDeposit, OpWithdraw, OpDraw, OpAdmin} {
		assert.True(t, m.IsAllowed(op), "op %s", op)
	}
}

func TestEmergencyModeAllowsOnlyExitAndAdmin(t *testing.T) {
	m := NewMode()
	at := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	m.Enable("oracle incident", at)
	assert.False(t, m.IsNormal())

	assert.False(t, m.IsAllowed(OpDeposit))
	assert.False(t, m.IsAllowed(OpDraw))
	assert.True(t, m.IsAllowed(OpWithdraw))
	assert.True(t, m.IsAllowed(OpAdmin))

	info := m.Info()
	assert.Equal(t, StateEmergency, info.State)
	assert.Equal(t, "oracle incident", info.Reason)
	assert.Equal(t, at, info.EnabledAt)
}

func TestDisableRestoresNormal(t *testing.T) {
	m := NewMode()
	m.Enable("incident", time.Now())
	m.Disable()

	assert.True(t, m.IsNormal())
	assert.True(t, m.IsAllowed(OpDeposit))
	assert.Empty(t, m.Info().Reason)
}
