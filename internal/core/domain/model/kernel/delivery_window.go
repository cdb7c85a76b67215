package kernel

import (
	"errors"
	"fmt"
	"time"

	"deliveryorders/internal/pkg/guard"
)

// DeliveryWindowDuration is the length of every delivery window.
const DeliveryWindowDuration = 30 * time.Minute

// ErrDeliveryWindowIsNotConstructed is returned when a DeliveryWindow was not
// created through NewDeliveryWindow.
var ErrDeliveryWindowIsNotConstructed = errors.New("DeliveryWindow must be created via NewDeliveryWindow constructor")

// DeliveryWindow is the half-open interval [start, start+30m) that selects
// orders for a run.
//
// The upper bound is exclusive: an order scheduled exactly 30 minutes after
// the first delivery belongs to the next window, not this one.
//
// Example:
//
//	start, _ := kernel.ParseTimestamp("2024-10-25 14:30:00")
//	w := kernel.NewDeliveryWindow(start)
//	w.Contains(start)                           // true
//	w.Contains(start.Add(29 * time.Minute))     // true
//	w.Contains(start.Add(30 * time.Minute))     // false
type DeliveryWindow struct { //nolint:recvcheck //using for validation
	start time.Time
	end   time.Time

	guard guard.ConstructorGuard
}

// NewDeliveryWindow returns the window that opens at start.
func NewDeliveryWindow(start time.Time) DeliveryWindow {
	return DeliveryWindow{
		start: start,
		end:   start.Add(DeliveryWindowDuration),
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the window was created through the constructor.
func (w DeliveryWindow) Validate() error {
	return w.guard.Validate(ErrDeliveryWindowIsNotConstructed)
}

// Start returns the inclusive lower bound.
func (w DeliveryWindow) Start() time.Time {
	return w.start
}

// End returns the exclusive upper bound.
func (w DeliveryWindow) End() time.Time {
	return w.end
}

// Contains reports whether start <= t < end. A zero window contains nothing.
func (w DeliveryWindow) Contains(t time.Time) bool {
	if w.Validate() != nil {
		return false
	}
	return !t.Before(w.start) && t.Before(w.end)
}

// String renders the window as "[start, end)".
func (w DeliveryWindow) String() string {
	return fmt.Sprintf("[%s, %s)", FormatTimestamp(w.start), FormatTimestamp(w.end))
}
