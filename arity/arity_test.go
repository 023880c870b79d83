package arity_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/delaneyj/slotparty/arity"
	"github.com/delaneyj/slotparty/signals"
	"github.com/delaneyj/slotparty/tracked"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignal0(t *testing.T) {
	sig := arity.NewSignal0[int]()
	out, err := sig.Emit()
	require.NoError(t, err)
	assert.False(t, out.Valid())

	sig.Connect(func() (int, error) { return 1, nil })
	sig.Connect(func() (int, error) { return 2, nil })
	out, err = sig.Emit()
	require.NoError(t, err)
	assert.Equal(t, 2, out.OrElse(0))
}

func TestSignal2(t *testing.T) {
	sig := arity.NewSignal2[string, int, string](signals.WithName("format"))
	assert.Equal(t, "format", sig.Signal().Name())

	sig.Connect(func(s string, n int) (string, error) {
		return fmt.Sprintf("%s=%d", s, n), nil
	})
	out, err := sig.Emit("x", 4)
	require.NoError(t, err)
	assert.Equal(t, "x=4", out.OrElse(""))
}

func TestSignal3Tracking(t *testing.T) {
	sig := arity.NewSignal3[int, int, int, int]()
	owner := tracked.New("owner")
	conn := sig.Connect(func(a, b, c int) (int, error) { return a + b + c, nil }, owner)

	out, err := sig.Emit(1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 6, out.OrElse(0))

	owner.Release()
	out, err = sig.Emit(1, 2, 3)
	require.NoError(t, err)
	assert.False(t, out.Valid())
	assert.False(t, conn.Connected())
}

func TestSignal1Error(t *testing.T) {
	boom := errors.New("boom")
	sig := arity.NewSignal1[int, struct{}]()
	sig.Connect(func(int) (struct{}, error) { return struct{}{}, boom })

	_, err := sig.Emit(1)
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, err, signals.ErrSlotFailed)
}

func TestSignalGroupsThroughUnderlying(t *testing.T) {
	sig := arity.NewSignal1[int, int]()
	sig.Signal().ConnectGroup(2, signals.Func(func(a arity.Args1[int]) int { return a.Arg0 * 2 }))
	sig.Signal().ConnectGroup(1, signals.Func(func(a arity.Args1[int]) int { return a.Arg0 }))

	out, err := sig.Emit(5)
	require.NoError(t, err)
	assert.Equal(t, 10, out.OrElse(0))
}
