package shared

import "time"

// Clock supplies the wall-clock time stamped on new transactions.
type Clock func() time.Time

// SystemClock reads local time so statements show the user's own timezone.
func SystemClock() time.Time {
	return time.Now()
}

// FixedClock always returns t. Handy for deterministic statements.
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}
