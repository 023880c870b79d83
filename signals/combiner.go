package signals

import (
	"iter"
	"slices"
)

// Combiner folds the results of one emission. results invokes slots lazily
// as it is ranged over, so a combiner that stops early leaves the remaining
// slots uncalled. It can only be ranged over once.
type Combiner[R, T any] func(results iter.Seq[R]) T

// Optional is a value that may be absent.
type Optional[T any] struct {
	value T
	ok    bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

func (o Optional[T]) Valid() bool {
	return o.ok
}

func (o Optional[T]) OrElse(def T) T {
	if !o.ok {
		return def
	}
	return o.value
}

// OptionalLastValue returns the result of the last invoked slot, if any.
func OptionalLastValue[R any](results iter.Seq[R]) Optional[R] {
	var last Optional[R]
	for r := range results {
		last = Some(r)
	}
	return last
}

// LastValue returns the result of the last invoked slot. Emitting with no
// active slot is a programming error and panics with ErrNoSlots.
func LastValue[R any](results iter.Seq[R]) R {
	last, ok := OptionalLastValue(results).Get()
	if !ok {
		panic(ErrNoSlots)
	}
	return last
}

// Collect returns every result in call order.
func Collect[R any](results iter.Seq[R]) []R {
	return slices.Collect(results)
}

// Discard invokes every slot and drops the results.
func Discard[R any](results iter.Seq[R]) struct{} {
	for range results {
	}
	return struct{}{}
}

// FirstWhere stops at the first result matching pred.
func FirstWhere[R any](pred func(R) bool) Combiner[R, Optional[R]] {
	return func(results iter.Seq[R]) Optional[R] {
		for r := range results {
			if pred(r) {
				return Some(r)
			}
		}
		return Optional[R]{}
	}
}
