package layout

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/go-drift/dxmotion/pkg/animation"
	"github.com/go-drift/dxmotion/pkg/motion"
)

// Mode selects which parts of a layout change animate.
type Mode int

const (
	ModeNone Mode = iota
	ModeAll
	ModePosition
	ModeSize
)

func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeAll:
		return "all"
	case ModePosition:
		return "position"
	case ModeSize:
		return "size"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Duration is the length of a layout animation.
const Duration = 300 * time.Millisecond

// TransformOrigin is applied while a layout transform is active.
const TransformOrigin = "top left"

// Delta is the inverse transform that makes an element at its new
// rectangle appear at its old one.
type Delta struct {
	X, Y           float64
	ScaleX, ScaleY float64
}

// Identity is the delta of an element that did not move.
var Identity = Delta{ScaleX: 1, ScaleY: 1}

// FLIP computes the delta from the old rectangle to the new one. A new
// rectangle with no width or height keeps a scale of 1 on that axis.
func FLIP(from, to Rect) Delta {
	d := Delta{X: from.Left - to.Left, Y: from.Top - to.Top, ScaleX: 1, ScaleY: 1}
	if to.Width != 0 {
		d.ScaleX = from.Width / to.Width
	}
	if to.Height != 0 {
		d.ScaleY = from.Height / to.Height
	}
	return d
}

// Restrict drops the parts of d that mode does not animate.
func (d Delta) Restrict(mode Mode) Delta {
	switch mode {
	case ModePosition:
		d.ScaleX, d.ScaleY = 1, 1
	case ModeSize:
		d.X, d.Y = 0, 0
	case ModeNone:
		return Identity
	}
	return d
}

// IsIdentity reports whether d leaves the element in place.
func (d Delta) IsIdentity() bool {
	return d == Identity
}

// Apply returns where r appears on screen with d applied, using a top
// left transform origin.
func (d Delta) Apply(r Rect) Rect {
	return Rect{Left: r.Left + d.X, Top: r.Top + d.Y, Width: r.Width * d.ScaleX, Height: r.Height * d.ScaleY}
}

// Mix interpolates from d to to.
func (d Delta) Mix(to Delta, p float64) Delta {
	return Delta{
		X:      animation.Mix(d.X, to.X, p),
		Y:      animation.Mix(d.Y, to.Y, p),
		ScaleX: animation.Mix(d.ScaleX, to.ScaleX, p),
		ScaleY: animation.Mix(d.ScaleY, to.ScaleY, p),
	}
}

// String renders d as a CSS transform.
func (d Delta) String() string {
	return "translate(" + num(d.X) + "px, " + num(d.Y) + "px) scale(" + num(d.ScaleX) + ", " + num(d.ScaleY) + ")"
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Animator plays FLIP animations for one element.
type Animator struct {
	Scheduler *animation.Scheduler
	// Group may be nil. When set and LayoutID is not empty, the group's
	// rectangle takes precedence over the element's own previous one.
	Group    *Group
	LayoutID string
	Mode     Mode
	// Transform receives the animated transform. It is set to "" once the
	// element is back at identity.
	Transform *motion.Value[string]

	mu       sync.Mutex
	prev     *Rect
	current  Delta
	controls *animation.Controls
}

// Measure records the element's new rectangle and, if it moved, starts
// animating from where the element currently appears. A layout animation
// still running is stopped first and its transform becomes the starting
// point. It returns nil when nothing moved.
func (a *Animator) Measure(next Rect) (*animation.Controls, error) {
	if a.Mode == ModeNone {
		return nil, nil
	}
	a.mu.Lock()
	start := a.prev
	shared, ok := a.Group.Rect(a.LayoutID)
	switch {
	case ok && (start == nil || shared != *start):
		start = &shared
	case start != nil && a.controls != nil:
		visual := a.current.Apply(*start)
		start = &visual
	}
	a.prev = &next
	inflight := a.controls
	a.controls = nil
	a.current = Identity
	a.mu.Unlock()
	a.Group.SetRect(a.LayoutID, next)

	if inflight != nil {
		inflight.Stop()
	}
	var delta Delta
	if start != nil {
		delta = FLIP(*start, next).Restrict(a.Mode)
	}
	if start == nil || delta.IsIdentity() {
		if inflight != nil {
			a.Transform.Set("")
		}
		return nil, nil
	}

	a.setDelta(delta)
	c, err := animation.Animate(a.Scheduler, animation.Options{
		From:       0.0,
		To:         1.0,
		Transition: animation.Transition{Duration: Duration, Ease: animation.Ease},
		OnUpdate: func(v any) {
			if p, ok := v.(float64); ok {
				a.setDelta(delta.Mix(Identity, p))
			}
		},
		OnComplete: func() { a.setDelta(Identity) },
	})
	if err != nil {
		a.setDelta(Identity)
		return c, err
	}
	a.mu.Lock()
	a.controls = c
	a.mu.Unlock()
	return c, nil
}

// setDelta records d and publishes it. Identity clears the transform.
func (a *Animator) setDelta(d Delta) {
	a.mu.Lock()
	a.current = d
	a.mu.Unlock()
	if d.IsIdentity() {
		a.Transform.Set("")
		return
	}
	a.Transform.Set(d.String())
}

// Cancel stops a running layout animation and clears the transform.
func (a *Animator) Cancel() {
	a.mu.Lock()
	c := a.controls
	a.controls = nil
	a.mu.Unlock()
	if c != nil {
		c.Stop()
		a.setDelta(Identity)
	}
}
