// Package clock provides the time source used by the rules engine.
// Games run on a Manual clock advanced once per simulation tick so that a
// seed plus an input script always replays to the same state.
package clock

import "time"

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// Real implements Clock using the system clock.
type Real struct{}

// NewReal creates a Real clock.
func NewReal() *Real {
	return &Real{}
}

// Now returns the current wall-clock time.
func (c *Real) Now() time.Time {
	return time.Now()
}

// Epoch is the starting instant of every Manual clock created with NewManual.
var Epoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Manual is a Clock that only moves when told to.
type Manual struct {
	current time.Time
}

var (
	_ Clock = (*Real)(nil)
	_ Clock = (*Manual)(nil)
)

// NewManual creates a Manual clock set to Epoch.
func NewManual() *Manual {
	return &Manual{current: Epoch}
}

// NewManualAt creates a Manual clock set to t.
func NewManualAt(t time.Time) *Manual {
	return &Manual{current: t}
}

// Now returns the clock's current time.
func (c *Manual) Now() time.Time {
	return c.current
}

// Advance moves the clock forward by d.
func (c *Manual) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}

// Set moves the clock to t. Moving backwards is allowed.
func (c *Manual) Set(t time.Time) {
	c.current = t
}

// Elapsed returns the time since Epoch.
func (c *Manual) Elapsed() time.Duration {
	return c.current.Sub(Epoch)
}
