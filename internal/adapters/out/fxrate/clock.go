package fxrate

import "time"

// Clock abstracts time for deterministic cache-expiry tests.
type Clock interface {
	Now() time.Time
}

// systemClock is the production Clock backed by time.Now.
type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}
