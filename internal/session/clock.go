package session

import "time"

// Clock supplies the current time. time.Now carries a monotonic reading, so
// durations between two Now calls are immune to wall clock changes.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock returns the process clock.
func SystemClock() Clock {
	return systemClock{}
}
