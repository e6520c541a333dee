package gestures

import (
	"fmt"
	"math"
	"sync"
	"time"
)

// Direction is the dominant axis and sign of a swipe or flick.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionNone:
		return "none"
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Classify returns the direction of the larger displacement component.
// Ties go to the vertical axis.
func Classify(delta Point) Direction {
	if math.Abs(delta.X) > math.Abs(delta.Y) {
		if delta.X > 0 {
			return DirectionRight
		}
		return DirectionLeft
	}
	if delta.Y > 0 {
		return DirectionDown
	}
	if delta.Y < 0 {
		return DirectionUp
	}
	return DirectionNone
}

// Swipe defaults.
const (
	DefaultSwipeThreshold = 40.0
	DefaultSwipeTimeout   = 300 * time.Millisecond
)

// touchStart is the first point and time of a single-touch gesture.
type touchStart struct {
	mu    sync.Mutex
	point Point
	time  time.Time
	ok    bool
}

func (s *touchStart) record(ev TouchEvent) {
	if len(ev.Touches) == 0 {
		return
	}
	s.mu.Lock()
	s.point, s.time, s.ok = ev.Touches[0].Position, ev.Time, true
	s.mu.Unlock()
}

func (s *touchStart) take() (Point, time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, t, ok := s.point, s.time, s.ok
	s.ok = false
	return p, t, ok
}

func endPoint(ev TouchEvent) (Point, bool) {
	switch {
	case len(ev.ChangedTouches) > 0:
		return ev.ChangedTouches[0].Position, true
	case len(ev.Touches) > 0:
		return ev.Touches[0].Position, true
	}
	return Point{}, false
}

// Swipe classifies a quick single-finger stroke by distance.
type Swipe struct {
	// Threshold is the minimum displacement along the dominant axis in
	// pixels. Defaults to DefaultSwipeThreshold.
	Threshold float64
	// Timeout is the longest stroke that still counts. Defaults to
	// DefaultSwipeTimeout.
	Timeout time.Duration
	OnSwipe func(Direction)

	start touchStart
}

// Start records the stroke origin.
func (g *Swipe) Start(ev TouchEvent) {
	g.start.record(ev)
}

// End classifies the stroke. It reports DirectionNone and false when the
// stroke was too slow, too short or never started.
func (g *Swipe) End(ev TouchEvent) (Direction, bool) {
	origin, at, ok := g.start.take()
	if !ok {
		return DirectionNone, false
	}
	end, ok := endPoint(ev)
	if !ok {
		return DirectionNone, false
	}
	timeout := g.Timeout
	if timeout <= 0 {
		timeout = DefaultSwipeTimeout
	}
	if ev.Time.Sub(at) > timeout {
		return DirectionNone, false
	}
	threshold := g.Threshold
	if threshold <= 0 {
		threshold = DefaultSwipeThreshold
	}
	delta := end.Sub(origin)
	if math.Max(math.Abs(delta.X), math.Abs(delta.Y)) <= threshold {
		return DirectionNone, false
	}
	dir := Classify(delta)
	if g.OnSwipe != nil {
		g.OnSwipe(dir)
	}
	return dir, true
}

// Attach wires the recognizer to target's touch events.
func (g *Swipe) Attach(scope *Scope, target EventTarget) {
	scope.Bind(target, EventTouchStart, func(ev Event) {
		if te, ok := ev.(TouchEvent); ok {
			g.Start(te)
		}
	})
	scope.Bind(target, EventTouchEnd, func(ev Event) {
		if te, ok := ev.(TouchEvent); ok {
			g.End(te)
		}
	})
}

// DefaultFlickVelocity is the minimum flick speed in pixels per millisecond.
const DefaultFlickVelocity = 0.7

// Flick classifies a stroke by speed rather than distance. There is no
// timeout.
type Flick struct {
	// VelocityThreshold in px/ms. Defaults to DefaultFlickVelocity.
	VelocityThreshold float64
	OnFlick           func(dir Direction, velocity float64)

	start touchStart
}

// Start records the stroke origin.
func (g *Flick) Start(ev TouchEvent) {
	g.start.record(ev)
}

// End classifies the stroke and returns its speed in px/ms. A stroke with
// zero elapsed time is ignored.
func (g *Flick) End(ev TouchEvent) (Direction, float64, bool) {
	origin, at, ok := g.start.take()
	if !ok {
		return DirectionNone, 0, false
	}
	end, ok := endPoint(ev)
	if !ok {
		return DirectionNone, 0, false
	}
	elapsed := float64(ev.Time.Sub(at)) / float64(time.Millisecond)
	if elapsed <= 0 {
		return DirectionNone, 0, false
	}
	threshold := g.VelocityThreshold
	if threshold <= 0 {
		threshold = DefaultFlickVelocity
	}
	velocity := Distance(origin, end) / elapsed
	if velocity <= threshold {
		return DirectionNone, velocity, false
	}
	dir := Classify(end.Sub(origin))
	if g.OnFlick != nil {
		g.OnFlick(dir, velocity)
	}
	return dir, velocity, true
}

// Attach wires the recognizer to target's touch events.
func (g *Flick) Attach(scope *Scope, target EventTarget) {
	scope.Bind(target, EventTouchStart, func(ev Event) {
		if te, ok := ev.(TouchEvent); ok {
			g.Start(te)
		}
	})
	scope.Bind(target, EventTouchEnd, func(ev Event) {
		if te, ok := ev.(TouchEvent); ok {
			g.End(te)
		}
	})
}
