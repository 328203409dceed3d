package native_test

import (
	"testing"

	"github.com/akashmaji946/golox/environment"
	"github.com/akashmaji946/golox/native"
	"github.com/akashmaji946/golox/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterBindsClockWithZeroArity(t *testing.T) {
	env := environment.New(nil)
	native.Register(env)

	v, err := env.Get("clock")
	require.NoError(t, err)

	fn, ok := v.(*object.Native)
	require.True(t, ok)
	assert.Equal(t, 0, fn.Arity())

	result, err := fn.Fn(nil)
	require.NoError(t, err)
	_, isFloat := result.(float64)
	assert.True(t, isFloat)
}

func TestDebugTableIsNotRegisteredByDefault(t *testing.T) {
	env := environment.New(nil)
	native.Register(env)

	_, err := env.Get("type")
	assert.Error(t, err, "type() must stay out of the default globals")
}

func TestDebugTableTypeReportsRuntimeTags(t *testing.T) {
	table := native.DebugTable()
	typeFn, ok := table["type"]
	require.True(t, ok)

	result, err := typeFn.Fn([]object.Value{float64(1)})
	require.NoError(t, err)
	assert.Equal(t, "number", result)

	result, err = typeFn.Fn([]object.Value{nil})
	require.NoError(t, err)
	assert.Equal(t, "nil", result)
}
