package gestures

import (
	"sync"
	"time"
)

// DefaultLongPressThreshold is how long a touch must be held.
const DefaultLongPressThreshold = 500 * time.Millisecond

// LongPress fires when a single touch is held without moving.
type LongPress struct {
	// Threshold defaults to DefaultLongPressThreshold.
	Threshold time.Duration
	// Timers schedules the press timer, usually the animation scheduler.
	Timers      Timers
	OnLongPress func(TouchEvent)

	mu   sync.Mutex
	stop func() bool
}

// Start arms the timer. A touch start with more than one finger is ignored
// and cancels any pending press.
func (g *LongPress) Start(ev TouchEvent) {
	g.Cancel()
	if len(ev.Touches) > 1 || g.Timers == nil {
		return
	}
	threshold := g.Threshold
	if threshold <= 0 {
		threshold = DefaultLongPressThreshold
	}
	var stop func() bool
	stop = g.Timers.AfterFunc(threshold, func() {
		g.mu.Lock()
		if g.stop == nil {
			g.mu.Unlock()
			return
		}
		g.stop = nil
		g.mu.Unlock()
		if g.OnLongPress != nil {
			g.OnLongPress(ev)
		}
	})
	g.mu.Lock()
	g.stop = stop
	g.mu.Unlock()
}

// Cancel disarms a pending press.
func (g *LongPress) Cancel() {
	g.mu.Lock()
	stop := g.stop
	g.stop = nil
	g.mu.Unlock()
	if stop != nil {
		stop()
	}
}

// Pending reports whether a press timer is armed.
func (g *LongPress) Pending() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stop != nil
}

// Attach wires the recognizer to target's touch events.
func (g *LongPress) Attach(scope *Scope, target EventTarget) {
	scope.Bind(target, EventTouchStart, func(ev Event) {
		if te, ok := ev.(TouchEvent); ok {
			g.Start(te)
		}
	})
	cancel := func(Event) { g.Cancel() }
	scope.Bind(target, EventTouchEnd, cancel)
	scope.Bind(target, EventTouchMove, cancel)
	scope.Bind(target, EventTouchCancel, cancel)
	scope.Defer(g.Cancel)
}
