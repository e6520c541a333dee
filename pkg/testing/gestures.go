package testing

import (
	"time"

	"github.com/go-drift/dxmotion/pkg/gestures"
	"github.com/go-drift/dxmotion/pkg/graphics"
)

// Dispatcher is an event target tests can fire events at. FakeTarget and
// FakeElement implement it.
type Dispatcher interface {
	Dispatch(gestures.Event)
}

// nextPointerID is incremented for each new pointer to avoid collisions.
var nextPointerID int64

func allocPointerID() int64 {
	nextPointerID++
	return nextPointerID
}

// Touch fires a touch event with the given touches at the current fake
// time. The same touches are reported as changed.
func (t *Tester) Touch(target Dispatcher, name string, touches ...gestures.Touch) {
	ev := gestures.TouchEvent{Type: name, ChangedTouches: touches, Time: t.Now()}
	if name != gestures.EventTouchEnd && name != gestures.EventTouchCancel {
		ev.Touches = touches
	}
	target.Dispatch(ev)
}

// SwipeTouch fires a one-finger touch from start to end that takes d.
func (t *Tester) SwipeTouch(target Dispatcher, start, end graphics.Point, d time.Duration) {
	id := allocPointerID()
	t.Touch(target, gestures.EventTouchStart, gestures.Touch{ID: id, Position: start})
	t.clock.Advance(d)
	t.Touch(target, gestures.EventTouchEnd, gestures.Touch{ID: id, Position: end})
}

// PinchTouch fires a two-finger gesture centred on center whose finger
// spread goes from fromDist to toDist in steps moves.
func (t *Tester) PinchTouch(target Dispatcher, center graphics.Point, fromDist, toDist float64, steps int) {
	a, b := allocPointerID(), allocPointerID()
	fingers := func(dist float64) []gestures.Touch {
		return []gestures.Touch{
			{ID: a, Position: graphics.Point{X: center.X - dist/2, Y: center.Y}},
			{ID: b, Position: graphics.Point{X: center.X + dist/2, Y: center.Y}},
		}
	}
	t.Touch(target, gestures.EventTouchStart, fingers(fromDist)...)
	steps = max(steps, 1)
	for i := 1; i <= steps; i++ {
		t.clock.Advance(FrameDuration)
		dist := fromDist + (toDist-fromDist)*float64(i)/float64(steps)
		t.Touch(target, gestures.EventTouchMove, fingers(dist)...)
	}
	t.Touch(target, gestures.EventTouchEnd, fingers(toDist)...)
}

// Pointer fires one pointer event at the current fake time.
func (t *Tester) Pointer(target Dispatcher, id int64, phase gestures.PointerPhase, pos graphics.Point) {
	target.Dispatch(gestures.PointerEvent{PointerID: id, Position: pos, Phase: phase, Time: t.Now()})
}

// Tap fires pointer down on el and pointer up on window at pos.
func (t *Tester) Tap(el, window Dispatcher, pos graphics.Point) {
	id := allocPointerID()
	t.Pointer(el, id, gestures.PointerPhaseDown, pos)
	t.Pointer(window, id, gestures.PointerPhaseUp, pos)
}

// Hover fires pointer enter or leave on el.
func (t *Tester) Hover(el Dispatcher, inside bool) {
	phase := gestures.PointerPhaseLeave
	if inside {
		phase = gestures.PointerPhaseEnter
	}
	t.Pointer(el, 0, phase, graphics.Point{})
}

// Drag presses on el at start, moves by delta on window in steps frames
// and releases. Time advances one frame per step so pan velocity is
// FrameDuration based.
func (t *Tester) Drag(el, window Dispatcher, start, delta graphics.Point, steps int) {
	id := allocPointerID()
	t.Pointer(el, id, gestures.PointerPhaseDown, start)
	steps = max(steps, 1)
	for i := 1; i <= steps; i++ {
		t.PumpFor(FrameDuration)
		pos := start.Add(delta.Scale(float64(i) / float64(steps)))
		t.Pointer(window, id, gestures.PointerPhaseMove, pos)
	}
	t.Pointer(window, id, gestures.PointerPhaseUp, start.Add(delta))
}
