package auction

import "time"

// Clock abstracts the time source for bidding-window checks so tests
// can drive the auction lifecycle deterministically.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
