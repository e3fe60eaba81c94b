package mission

import "time"

// Clock converts wall-clock time into mission ticks, counted from a fixed
// epoch established at boot. Packet headers carry tick counts rather than
// absolute times so that the telemetry stream is independent of the OBC's
// notion of calendar time.
type Clock struct {
	epoch time.Time
}

// NewClock starts a mission clock with its epoch at the current time.
func NewClock() *Clock {
	return &Clock{epoch: time.Now()}
}

// NewClockAt starts a mission clock with the given epoch. Used in tests to
// pin tick arithmetic to known instants.
func NewClockAt(epoch time.Time) *Clock {
	return &Clock{epoch: epoch}
}

// Ticks returns the number of whole milliseconds elapsed since the epoch.
// Wraps at 32 bits after roughly 49 days, which is well-defined for packet
// timestamps.
func (c *Clock) Ticks() uint32 {
	return c.TicksAt(time.Now())
}

// TicksAt returns the tick count for an arbitrary instant.
func (c *Clock) TicksAt(t time.Time) uint32 {
	return uint32(t.Sub(c.epoch).Milliseconds())
}

// Uptime returns the elapsed time since the epoch.
func (c *Clock) Uptime() time.Duration {
	return time.Since(c.epoch)
}

// UptimeSeconds returns the whole seconds elapsed since the epoch.
func (c *Clock) UptimeSeconds() uint32 {
	return uint32(c.Uptime() / time.Second)
}
