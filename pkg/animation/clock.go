package animation

import "time"

// Clock provides time for animations. The default implementation uses
// system time. Tests inject a fake clock through [NewScheduler] to control
// animation timing deterministically.
type Clock interface {
	Now() time.Time
}

// realClock uses system time.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// SystemClock is the wall-clock time source.
var SystemClock Clock = realClock{}
