// Package arity wraps signals.Signal with positional arguments, so callers
// write Emit(a, b) instead of packing a struct by hand.
package arity

//go:generate go run ../cmd/codegen --count 3 --out signals.go

import (
	"github.com/delaneyj/slotparty/signals"
	"github.com/delaneyj/slotparty/tracked"
)

// Signal0 is a signal without arguments.
type Signal0[R any] struct {
	sig *signals.Default[struct{}, R]
}

func NewSignal0[R any](opts ...signals.Option) *Signal0[R] {
	return &Signal0[R]{sig: signals.New[struct{}, R](opts...)}
}

func (s *Signal0[R]) Signal() *signals.Default[struct{}, R] {
	return s.sig
}

func (s *Signal0[R]) Connect(fn func() (R, error), track ...tracked.Trackable) signals.Connection {
	return s.sig.Connect(signals.NewSlot[struct{}, R](func(struct{}) (R, error) {
		return fn()
	}).Track(track...))
}

func (s *Signal0[R]) Emit() (signals.Optional[R], error) {
	return s.sig.Emit(struct{}{})
}
