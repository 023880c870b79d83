package signals

import "errors"

var (
	// ErrSlotFailed wraps the error a slot returned during emission.
	ErrSlotFailed = errors.New("signals: slot failed")
	// ErrExpiredSlot is returned when invoking a slot whose tracked objects
	// are gone.
	ErrExpiredSlot = errors.New("signals: slot expired")
	// ErrNoSlots is the panic value of LastValue when nothing was invoked.
	ErrNoSlots = errors.New("signals: no slots to combine")
)

// slotFailure unwinds a combiner when a slot fails. owner is the emission
// that raised it.
type slotFailure struct {
	owner any
	err   error
}
