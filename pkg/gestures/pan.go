package gestures

import (
	"math"
	"sync"
	"time"
)

// Axis restricts which directions a pan may move.
type Axis int

const (
	AxisBoth Axis = iota
	AxisX
	AxisY
	// AxisNone disables panning.
	AxisNone
)

func (a Axis) String() string {
	switch a {
	case AxisBoth:
		return "both"
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return "none"
	}
}

// Constraints bound a pan offset. Nil sides are unbounded.
type Constraints struct {
	Left, Top, Right, Bottom *float64
}

// Limit returns a pointer to v for building Constraints literals.
func Limit(v float64) *float64 {
	return &v
}

// Apply clamps p into the constraint box.
func (c *Constraints) Apply(p Point) Point {
	if c == nil {
		return p
	}
	if c.Left != nil {
		p.X = math.Max(p.X, *c.Left)
	}
	if c.Right != nil {
		p.X = math.Min(p.X, *c.Right)
	}
	if c.Top != nil {
		p.Y = math.Max(p.Y, *c.Top)
	}
	if c.Bottom != nil {
		p.Y = math.Min(p.Y, *c.Bottom)
	}
	return p
}

// PanInfo describes a pan sample.
type PanInfo struct {
	// Point is the pointer position.
	Point Point
	// Delta is the movement since the previous sample.
	Delta Point
	// Offset is the dragged position: the origin passed to Down plus the
	// total movement, after axis locking and constraints.
	Offset Point
	// Velocity in pixels per second, from the previous sample.
	Velocity Point
}

// Pan tracks a single pointer dragging an element.
type Pan struct {
	Axis        Axis
	Constraints *Constraints
	OnStart     func(PointerEvent, PanInfo)
	OnMove      func(PointerEvent, PanInfo)
	OnEnd       func(PointerEvent, PanInfo)

	mu       sync.Mutex
	active   bool
	pointer  int64
	start    Point
	origin   Point
	last     Point
	lastTime time.Time
	info     PanInfo
}

func (g *Pan) lock(p Point) Point {
	switch g.Axis {
	case AxisX:
		p.Y = 0
	case AxisY:
		p.X = 0
	}
	return p
}

// Down starts a pan. origin is the element's current offset, typically the
// x and y motion values. Returns false when the pan is disabled or another
// pointer is already panning.
func (g *Pan) Down(ev PointerEvent, origin Point) (PanInfo, bool) {
	g.mu.Lock()
	if g.Axis == AxisNone || g.active {
		g.mu.Unlock()
		return PanInfo{}, false
	}
	g.active = true
	g.pointer = ev.PointerID
	g.start, g.last, g.lastTime = ev.Position, ev.Position, ev.Time
	g.origin = origin
	g.info = PanInfo{Point: ev.Position, Offset: origin}
	info := g.info
	g.mu.Unlock()

	if g.OnStart != nil {
		g.OnStart(ev, info)
	}
	return info, true
}

// Move updates the pan with a new pointer position.
func (g *Pan) Move(ev PointerEvent) (PanInfo, bool) {
	g.mu.Lock()
	if !g.active || ev.PointerID != g.pointer {
		g.mu.Unlock()
		return PanInfo{}, false
	}
	delta := g.lock(ev.Position.Sub(g.last))
	info := PanInfo{
		Point:    ev.Position,
		Delta:    delta,
		Offset:   g.Constraints.Apply(g.origin.Add(g.lock(ev.Position.Sub(g.start)))),
		Velocity: g.info.Velocity,
	}
	if dt := ev.Time.Sub(g.lastTime).Seconds(); dt > 0 {
		info.Velocity = delta.Scale(1 / dt)
	}
	g.last, g.lastTime = ev.Position, ev.Time
	g.info = info
	g.mu.Unlock()

	if g.OnMove != nil {
		g.OnMove(ev, info)
	}
	return info, true
}

// Up ends the pan. The reported info carries the last computed velocity.
func (g *Pan) Up(ev PointerEvent) (PanInfo, bool) {
	g.mu.Lock()
	if !g.active || ev.PointerID != g.pointer {
		g.mu.Unlock()
		return PanInfo{}, false
	}
	g.active = false
	info := g.info
	info.Point = ev.Position
	info.Delta = Point{}
	g.mu.Unlock()

	if g.OnEnd != nil {
		g.OnEnd(ev, info)
	}
	return info, true
}

// Active reports whether a pointer is panning.
func (g *Pan) Active() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.active
}

// Attach wires the recognizer to target. Moves and releases are read from
// moveTarget, which defaults to target; pass the window to keep tracking a
// pointer that leaves the element. origin supplies the offset at the start
// of each pan.
func (g *Pan) Attach(scope *Scope, target, moveTarget EventTarget, origin func() Point) {
	if moveTarget == nil {
		moveTarget = target
	}
	scope.Bind(target, EventPointerDown, func(ev Event) {
		pe, ok := ev.(PointerEvent)
		if !ok {
			return
		}
		var o Point
		if origin != nil {
			o = origin()
		}
		g.Down(pe, o)
	})
	scope.Bind(moveTarget, EventPointerMove, func(ev Event) {
		if pe, ok := ev.(PointerEvent); ok {
			g.Move(pe)
		}
	})
	up := func(ev Event) {
		if pe, ok := ev.(PointerEvent); ok {
			g.Up(pe)
		}
	}
	scope.Bind(moveTarget, EventPointerUp, up)
	scope.Bind(moveTarget, EventPointerCancel, up)
}
