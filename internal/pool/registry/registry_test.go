package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterKeepsStableOrder(t *testing.T) {
	r := NewRegistry()

	assert.True(t, r.Register("c"))
	assert.True(t, r.Register("a"))
	assert.True(t, r.Register("b"))

	// 重复注册不是新成员，也不改变顺序
	assert.False(t, r.Register("a"))

	assert.Equal(t, []string{"c", "a", "b"}, r.Members())
	assert.Equal(t, 3, r.Len())
	assert.True(t, r.IsRegistered("a"))
	assert.False(t, r.IsRegistered("x"))
}

func TestMembersReturnsCopy(t *testing.T) {
	r := NewRegistry()
	r.Register("a")

	members := r.Members()
	members[0] = "mutated"

	assert.Equal(t, []string{"a"}, r.Members())
}

func TestRemoveCompactsOrder(t *testing.T) {
	r := NewRegistry()
	r.Register("a")
	r.Register("b")
	r.Register("c")

	require.NoError(t, r.Remove("b"))
	assert.Equal(t, []string{"a", "c"}, r.Members())
	assert.False(t, r.IsRegistered("b"))

	// 压缩后可以重新注册，排在末尾
	assert.True(t, r.Register("b"))
	assert.Equal(t, []string{"a", "c", "b"}, r.Members())

	assert.ErrorIs(t, r.Remove("x"), ErrNotRegistered)
}
