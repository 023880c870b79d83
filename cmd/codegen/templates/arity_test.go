package templates

import (
	"go/format"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelpers(t *testing.T) {
	assert.Equal(t, "T0, T1, T2", prefixedStrings("T", 3))
	assert.Equal(t, "arg0 T0, arg1 T1", argParams(2))
	assert.Equal(t, "a.Arg0", argFields(1))
	assert.Equal(t, "Arg0: arg0, Arg1: arg1", argInit(2))
	assert.Empty(t, prefixedStrings("T", 0))
}

func TestArityGenFormats(t *testing.T) {
	src := ArityGen("arity", 3)
	formatted, err := format.Source([]byte(src))
	require.NoError(t, err)

	out := string(formatted)
	assert.Contains(t, out, "package arity")
	assert.Contains(t, out, "type Signal1[T0, R any] struct")
	assert.Contains(t, out, "type Signal3[T0, T1, T2, R any] struct")
	assert.Contains(t, out, "func (s *Signal2[T0, T1, R]) Emit(arg0 T0, arg1 T1) (signals.Optional[R], error)")
	assert.Contains(t, out, "return fn(a.Arg0, a.Arg1, a.Arg2)")
	assert.NotContains(t, out, "Signal4")
}
