package gestures

import (
	"sync"

	"github.com/go-drift/dxmotion/pkg/graphics"
)

// PinchInfo is reported on every two-finger move.
type PinchInfo struct {
	// Scale is the current finger distance over the distance at start.
	Scale  float64
	Center Point
}

// Pinch tracks the distance between two fingers.
type Pinch struct {
	OnPinch func(PinchInfo)

	mu       sync.Mutex
	baseline float64
}

// Start records the baseline distance when exactly two fingers are down.
func (g *Pinch) Start(ev TouchEvent) {
	if len(ev.Touches) != 2 {
		return
	}
	p1, p2 := touchPoints(ev.Touches)
	g.mu.Lock()
	g.baseline = Distance(p1, p2)
	g.mu.Unlock()
}

// Move reports the scale relative to the baseline. Moves without exactly
// two fingers, or before a non-zero baseline exists, are ignored.
func (g *Pinch) Move(ev TouchEvent) (PinchInfo, bool) {
	if len(ev.Touches) != 2 {
		return PinchInfo{}, false
	}
	g.mu.Lock()
	baseline := g.baseline
	g.mu.Unlock()
	if baseline == 0 {
		return PinchInfo{}, false
	}
	p1, p2 := touchPoints(ev.Touches)
	info := PinchInfo{Scale: Distance(p1, p2) / baseline, Center: graphics.Midpoint(p1, p2)}
	if g.OnPinch != nil {
		g.OnPinch(info)
	}
	return info, true
}

// End clears the baseline once fewer than two fingers remain.
func (g *Pinch) End(ev TouchEvent) {
	if len(ev.Touches) >= 2 {
		return
	}
	g.mu.Lock()
	g.baseline = 0
	g.mu.Unlock()
}

// Active reports whether a pinch is in progress.
func (g *Pinch) Active() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.baseline != 0
}

// Attach wires the recognizer to target's touch events.
func (g *Pinch) Attach(scope *Scope, target EventTarget) {
	attachTwoFinger(scope, target, g.Start, func(ev TouchEvent) { g.Move(ev) }, g.End)
}

// RotateInfo is reported on every two-finger move.
type RotateInfo struct {
	// Rotation is the change in the angle between the fingers, in degrees.
	Rotation float64
	Center   Point
}

// Rotate tracks the angle between two fingers.
type Rotate struct {
	OnRotate func(RotateInfo)

	mu       sync.Mutex
	baseline float64
	active   bool
}

// Start records the baseline angle when exactly two fingers are down.
func (g *Rotate) Start(ev TouchEvent) {
	if len(ev.Touches) != 2 {
		return
	}
	p1, p2 := touchPoints(ev.Touches)
	g.mu.Lock()
	g.baseline, g.active = Angle(p1, p2), true
	g.mu.Unlock()
}

// Move reports the rotation relative to the baseline.
func (g *Rotate) Move(ev TouchEvent) (RotateInfo, bool) {
	if len(ev.Touches) != 2 {
		return RotateInfo{}, false
	}
	g.mu.Lock()
	baseline, active := g.baseline, g.active
	g.mu.Unlock()
	if !active {
		return RotateInfo{}, false
	}
	p1, p2 := touchPoints(ev.Touches)
	info := RotateInfo{Rotation: Angle(p1, p2) - baseline, Center: graphics.Midpoint(p1, p2)}
	if g.OnRotate != nil {
		g.OnRotate(info)
	}
	return info, true
}

// End clears the baseline once fewer than two fingers remain.
func (g *Rotate) End(ev TouchEvent) {
	if len(ev.Touches) >= 2 {
		return
	}
	g.mu.Lock()
	g.active = false
	g.mu.Unlock()
}

// Attach wires the recognizer to target's touch events.
func (g *Rotate) Attach(scope *Scope, target EventTarget) {
	attachTwoFinger(scope, target, g.Start, func(ev TouchEvent) { g.Move(ev) }, g.End)
}

func attachTwoFinger(scope *Scope, target EventTarget, start, move, end func(TouchEvent)) {
	on := func(fn func(TouchEvent)) func(Event) {
		return func(ev Event) {
			if te, ok := ev.(TouchEvent); ok {
				fn(te)
			}
		}
	}
	scope.Bind(target, EventTouchStart, on(start))
	scope.Bind(target, EventTouchMove, on(move))
	scope.Bind(target, EventTouchEnd, on(end))
	scope.Bind(target, EventTouchCancel, on(end))
}
