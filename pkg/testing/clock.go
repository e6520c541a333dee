package testing

import (
	"sync"
	"time"

	"github.com/go-drift/dxmotion/pkg/animation"
)

// Epoch is the instant every FakeClock starts at, so frame timestamps are
// the same on every run.
var Epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// FakeClock is the frame clock behind a [Tester]. It only moves when told
// to and never runs backwards.
type FakeClock struct {
	mu     sync.Mutex
	now    time.Time
	frames int
}

var _ animation.Clock = (*FakeClock)(nil)

// NewFakeClock returns a clock at Epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: Epoch}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d. Negative durations are ignored.
func (c *FakeClock) Advance(d time.Duration) {
	if d <= 0 {
		return
	}
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// Frame advances by one [FrameDuration] and returns the new frame time.
func (c *FakeClock) Frame() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(FrameDuration)
	c.frames++
	return c.now
}

// Frames counts the calls to Frame.
func (c *FakeClock) Frames() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frames
}

// Elapsed is the time since Epoch.
func (c *FakeClock) Elapsed() time.Duration {
	return c.Now().Sub(Epoch)
}
