package domain

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// clock is a package-level time source so tests can freeze time via SetClock.
// It backs the "now" defaults of recent-data queries.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source. Pass nil to reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}

// Now returns the current time in KST.
func Now() time.Time {
	return clock.Now().In(KST)
}

// CurrentHour returns the current KST time truncated to the hour, the latest
// slot for which hourly observations can exist.
func CurrentHour() time.Time {
	return Now().Truncate(time.Hour)
}
