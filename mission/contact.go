package mission

import "time"

// Gate reports whether a ground-contact window is open at the given instant.
// The transmitter treats it as an opaque boolean signal, so a real
// ephemeris-based pass predictor can be swapped in without touching the
// transmitter's state machine.
type Gate func(t time.Time) bool

// IntervalGate returns a gate that opens whenever the whole number of
// elapsed seconds since the clock epoch is a multiple of interval. This is a
// deliberate stand-in for contact prediction: it has no orbital meaning
// beyond producing periodic windows.
func IntervalGate(clock *Clock, interval time.Duration) Gate {
	intervalSecs := int64(interval / time.Second)
	if intervalSecs < 1 {
		intervalSecs = 1
	}
	return func(t time.Time) bool {
		elapsedSecs := int64(t.Sub(clock.epoch) / time.Second)
		if elapsedSecs < 0 {
			return false
		}
		return elapsedSecs%intervalSecs == 0
	}
}

// ContactPeriod represents an absolute ground-station pass, e.g.
// "2026/03/02 10:14:00 to 2026/03/02 10:22:30".
type ContactPeriod struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls within the period. The start is
// inclusive and the end is exclusive.
func (p ContactPeriod) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.End)
}

// ScheduleGate returns a gate that opens during any of the given contact
// periods, for use when a computed pass schedule is available.
func ScheduleGate(periods []ContactPeriod) Gate {
	return func(t time.Time) bool {
		for _, period := range periods {
			if period.Contains(t) {
				return true
			}
		}
		return false
	}
}
