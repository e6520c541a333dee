package animation

import "time"

// Ticker calls a callback on each frame while active.
//
// Ticker is the low-level timing primitive used by the polling helpers
// (smooth scroll, gamepad sampling, text scramble). Animations use
// [Animate] instead.
//
// The callback receives the elapsed time since Start was called.
type Ticker struct {
	scheduler *Scheduler
	callback  func(elapsed time.Duration)
	isActive  bool
	start     time.Time
	frame     FrameID
}

// NewTicker creates a new ticker driven by s.
func NewTicker(s *Scheduler, callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{
		scheduler: s,
		callback:  callback,
	}
}

// Start activates the ticker.
func (t *Ticker) Start() {
	if t.isActive || t.scheduler == nil {
		return
	}
	t.isActive = true
	t.start = t.scheduler.Now()
	t.frame = t.scheduler.RequestFrame(t.tick)
}

func (t *Ticker) tick(now time.Time) {
	if !t.isActive {
		return
	}
	// Request first so a callback calling Stop cancels the next frame.
	t.frame = t.scheduler.RequestFrame(t.tick)
	if t.callback != nil {
		t.callback(now.Sub(t.start))
	}
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	t.scheduler.CancelFrame(t.frame)
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return t.scheduler.Now().Sub(t.start)
}
