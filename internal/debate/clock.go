package debate

import "time"

// newStepClock returns a timestamp source for transcript entries.
// Separated for tests, which substitute a fixed clock.
func newStepClock() func() time.Time {
	return time.Now
}
