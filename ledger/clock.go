package ledger

import "time"

// Clock supplies the current time. The engine derives "today" from it, so
// tests can pin the calendar day instead of racing the wall clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the wall-clock implementation used in production.
func SystemClock() Clock { return systemClock{} }
