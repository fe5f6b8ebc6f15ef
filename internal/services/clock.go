package services

import "time"

// Clock returns the current instant. Tests pin it to make day boundaries deterministic.
type Clock func() time.Time

func (c Clock) orNow() Clock {
	if c == nil {
		return func() time.Time { return time.Now().UTC() }
	}
	return func() time.Time { return c().UTC() }
}

// FixedClock always returns t.
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}
