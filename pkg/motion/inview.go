package motion

import (
	"sync"

	"github.com/go-drift/dxmotion/pkg/gestures"
	"github.com/go-drift/dxmotion/pkg/graphics"
)

// InView tracks whether an element intersects its viewport.
type InView struct {
	// Once stops tracking after the first time the element enters.
	Once bool
	// Margin grows the viewport on every side before testing.
	Margin   float64
	OnChange func(bool)

	mu      sync.Mutex
	inView  bool
	settled bool
}

// Check recomputes visibility from the element and viewport rectangles and
// returns the current state.
func (v *InView) Check(el, viewport graphics.Rect) bool {
	v.mu.Lock()
	if v.settled {
		v.mu.Unlock()
		return true
	}
	root := graphics.Rect{
		Left:   viewport.Left - v.Margin,
		Top:    viewport.Top - v.Margin,
		Width:  viewport.Width + 2*v.Margin,
		Height: viewport.Height + 2*v.Margin,
	}
	next := el.Intersects(root)
	changed := next != v.inView
	v.inView = next
	if next && v.Once {
		v.settled = true
	}
	v.mu.Unlock()

	if changed && v.OnChange != nil {
		v.OnChange(next)
	}
	return next
}

// InView reports the last computed state.
func (v *InView) InView() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.inView
}

// Observe rechecks el against viewport now and on every scroll event from
// source until scope closes.
func (v *InView) Observe(scope *gestures.Scope, source gestures.EventTarget, el, viewport Bounded) {
	if el == nil || viewport == nil {
		return
	}
	check := func() { v.Check(el.Bounds(), viewport.Bounds()) }
	scope.Bind(source, gestures.EventScroll, func(gestures.Event) { check() })
	check()
}
