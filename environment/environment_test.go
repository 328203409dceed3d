package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefineAndGet(t *testing.T) {
	env := New(nil)
	env.Define("x", 1.0)
	v, err := env.Get("x")
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestGetUndefinedErrors(t *testing.T) {
	env := New(nil)
	_, err := env.Get("missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Undefined variable 'missing'")
}

func TestGetWalksEnclosingChain(t *testing.T) {
	global := New(nil)
	global.Define("x", "global")
	local := New(global)
	v, err := local.Get("x")
	require.NoError(t, err)
	assert.Equal(t, "global", v)
}

func TestAssignUpdatesOriginalScopeNotCaller(t *testing.T) {
	global := New(nil)
	global.Define("x", 1.0)
	local := New(global)

	require.NoError(t, local.Assign("x", 2.0))

	v, _ := global.Get("x")
	assert.Equal(t, 2.0, v)
	assert.Len(t, local.values, 0)
}

func TestAssignUndefinedIsAnError(t *testing.T) {
	env := New(nil)
	err := env.Assign("ghost", 1.0)
	require.Error(t, err)
}

func TestGetAtAndAssignAtUseResolvedDistance(t *testing.T) {
	global := New(nil)
	global.Define("x", "outer")
	block := New(global)
	block.Define("x", "inner")

	v, err := block.GetAt(0, "x")
	require.NoError(t, err)
	assert.Equal(t, "inner", v)

	v, err = block.GetAt(1, "x")
	require.NoError(t, err)
	assert.Equal(t, "outer", v)

	block.AssignAt(1, "x", "outer-changed")
	v, _ = global.Get("x")
	assert.Equal(t, "outer-changed", v)
}
