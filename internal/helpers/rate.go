package helpers

import (
	"time"

	"golang.org/x/time/rate"
)

// OnceAMinute returns a rate.Sometimes that runs its function at most once
// a minute. Used to keep repeated failure logs from flooding the output.
func OnceAMinute() rate.Sometimes {
	return rate.Sometimes{
		Interval: time.Minute,
	}
}
