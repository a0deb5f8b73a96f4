package egmpb

import "time"

// Clock arithmetic. The controller keeps time as two unsigned 32-bit fields
// and wraps them on overflow; the arithmetic here wraps the same way so that
// echoed timestamps stay bit-compatible with the controller.

const microsPerSecond = 1_000_000

// NewClock creates a clock value from seconds and microseconds.
// Microseconds outside [0, 1e6) are normalized into the seconds field.
func NewClock(sec, usec uint32) EgmClock {
	return EgmClock{
		Sec:  sec + usec/microsPerSecond,
		Usec: usec % microsPerSecond,
	}
}

// ClockAt creates the clock value d after the epoch.
// The sub-microsecond part of d is truncated.
func ClockAt(d time.Duration) EgmClock {
	us := d.Microseconds()
	return EgmClock{
		Sec:  uint32(us / microsPerSecond),
		Usec: uint32(us % microsPerSecond),
	}
}

// Add returns the clock advanced by d. The microsecond field of the result is
// always in [0, 1e6); the carry goes into the seconds field, which wraps on
// unsigned 32-bit overflow like the controller's own clock.
func (c EgmClock) Add(d time.Duration) EgmClock {
	us := c.Usec + uint32((d%time.Second)/time.Microsecond)
	return EgmClock{
		Sec:  c.Sec + uint32(d/time.Second) + us/microsPerSecond,
		Usec: us % microsPerSecond,
	}
}

// ElapsedSinceEpoch returns the time since the controller epoch.
// The result has microsecond resolution.
func (c EgmClock) ElapsedSinceEpoch() time.Duration {
	return time.Duration(c.Sec)*time.Second + time.Duration(c.Usec)*time.Microsecond
}

// TimestampMS returns the clock as milliseconds since the controller epoch,
// truncated to microsecond fractions and wrapped per unsigned 32-bit
// arithmetic. This is the format used by the Tm header field.
func (c EgmClock) TimestampMS() uint32 {
	return c.Sec*1000 + c.Usec/1000
}
