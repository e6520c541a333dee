package gestures_test

import (
	"testing"
	"time"

	"github.com/go-drift/dxmotion/pkg/gestures"
	"github.com/go-drift/dxmotion/pkg/graphics"
	motiontest "github.com/go-drift/dxmotion/pkg/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pt(x, y float64) graphics.Point {
	return graphics.Point{X: x, Y: y}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		delta graphics.Point
		want  gestures.Direction
	}{
		{pt(100, 5), gestures.DirectionRight},
		{pt(-100, 5), gestures.DirectionLeft},
		{pt(5, 100), gestures.DirectionDown},
		{pt(5, -100), gestures.DirectionUp},
		{pt(50, 50), gestures.DirectionDown},
		{pt(0, 0), gestures.DirectionNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, gestures.Classify(tt.delta), "Classify(%v)", tt.delta)
	}
	assert.Equal(t, "right", gestures.DirectionRight.String())
}

func TestSwipeRecognizesQuickStroke(t *testing.T) {
	tester := motiontest.NewTesterWithT(t)
	el := motiontest.NewFakeElement("div")
	scope := gestures.NewScope()
	defer scope.Close()

	var got []gestures.Direction
	swipe := &gestures.Swipe{OnSwipe: func(d gestures.Direction) { got = append(got, d) }}
	swipe.Attach(scope, el)

	tester.SwipeTouch(el, pt(0, 0), pt(100, 5), 150*time.Millisecond)
	assert.Equal(t, []gestures.Direction{gestures.DirectionRight}, got)
}

func TestSwipeRejects(t *testing.T) {
	tests := []struct {
		name string
		end  graphics.Point
		d    time.Duration
	}{
		{"too slow", pt(100, 0), 400 * time.Millisecond},
		{"too short", pt(40, 0), 100 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tester := motiontest.NewTesterWithT(t)
			el := motiontest.NewFakeElement("div")
			scope := gestures.NewScope()
			defer scope.Close()
			fired := false
			(&gestures.Swipe{OnSwipe: func(gestures.Direction) { fired = true }}).Attach(scope, el)

			tester.SwipeTouch(el, pt(0, 0), tt.end, tt.d)
			assert.False(t, fired)
		})
	}
}

func TestSwipeEndWithoutStart(t *testing.T) {
	var s gestures.Swipe
	dir, ok := s.End(gestures.TouchEvent{Type: gestures.EventTouchEnd})
	assert.False(t, ok)
	assert.Equal(t, gestures.DirectionNone, dir)
}

func TestFlick(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	touch := func(p graphics.Point) []gestures.Touch {
		return []gestures.Touch{{ID: 1, Position: p}}
	}
	var f gestures.Flick
	f.Start(gestures.TouchEvent{Type: gestures.EventTouchStart, Touches: touch(pt(0, 0)), Time: start})
	dir, v, ok := f.End(gestures.TouchEvent{Type: gestures.EventTouchEnd, ChangedTouches: touch(pt(0, -200)), Time: start.Add(100 * time.Millisecond)})
	require.True(t, ok)
	assert.Equal(t, gestures.DirectionUp, dir)
	assert.InDelta(t, 2.0, v, 1e-9)

	f.Start(gestures.TouchEvent{Type: gestures.EventTouchStart, Touches: touch(pt(0, 0)), Time: start})
	_, _, ok = f.End(gestures.TouchEvent{Type: gestures.EventTouchEnd, ChangedTouches: touch(pt(50, 0)), Time: start.Add(time.Second)})
	assert.False(t, ok)

	f.Start(gestures.TouchEvent{Type: gestures.EventTouchStart, Touches: touch(pt(0, 0)), Time: start})
	_, _, ok = f.End(gestures.TouchEvent{Type: gestures.EventTouchEnd, ChangedTouches: touch(pt(50, 0)), Time: start})
	assert.False(t, ok, "zero elapsed time is ignored")
}

func TestPinchScale(t *testing.T) {
	tester := motiontest.NewTesterWithT(t)
	el := motiontest.NewFakeElement("div")
	scope := gestures.NewScope()
	defer scope.Close()

	var last gestures.PinchInfo
	pinch := &gestures.Pinch{OnPinch: func(info gestures.PinchInfo) { last = info }}
	pinch.Attach(scope, el)

	tester.PinchTouch(el, pt(200, 200), 100, 150, 5)
	assert.InDelta(t, 1.5, last.Scale, 1e-9)
	assert.Equal(t, pt(200, 200), last.Center)
	assert.False(t, pinch.Active())
}

func TestPinchIgnoresSingleFinger(t *testing.T) {
	var p gestures.Pinch
	p.Start(gestures.TouchEvent{Touches: []gestures.Touch{{ID: 1}}})
	_, ok := p.Move(gestures.TouchEvent{Touches: []gestures.Touch{{ID: 1}, {ID: 2, Position: pt(10, 0)}}})
	assert.False(t, ok)
}

func TestRotate(t *testing.T) {
	var r gestures.Rotate
	r.Start(gestures.TouchEvent{Touches: []gestures.Touch{{ID: 1, Position: pt(0, 0)}, {ID: 2, Position: pt(100, 0)}}})
	info, ok := r.Move(gestures.TouchEvent{Touches: []gestures.Touch{{ID: 1, Position: pt(0, 0)}, {ID: 2, Position: pt(0, 100)}}})
	require.True(t, ok)
	assert.InDelta(t, 90, info.Rotation, 1e-9)
	assert.Equal(t, pt(0, 50), info.Center)

	r.End(gestures.TouchEvent{Touches: []gestures.Touch{{ID: 1}}})
	_, ok = r.Move(gestures.TouchEvent{Touches: []gestures.Touch{{ID: 1}, {ID: 2}}})
	assert.False(t, ok)
}

func TestLongPress(t *testing.T) {
	tester := motiontest.NewTesterWithT(t)
	el := motiontest.NewFakeElement("div")
	scope := gestures.NewScope()
	fired := 0
	lp := &gestures.LongPress{Timers: tester.Scheduler(), OnLongPress: func(gestures.TouchEvent) { fired++ }}
	lp.Attach(scope, el)

	tester.Touch(el, gestures.EventTouchStart, gestures.Touch{ID: 1})
	assert.True(t, lp.Pending())
	tester.PumpFor(400 * time.Millisecond)
	assert.Equal(t, 0, fired)
	tester.PumpFor(100 * time.Millisecond)
	assert.Equal(t, 1, fired)
	assert.False(t, lp.Pending())

	tester.Touch(el, gestures.EventTouchStart, gestures.Touch{ID: 2})
	tester.Touch(el, gestures.EventTouchMove, gestures.Touch{ID: 2, Position: pt(5, 5)})
	tester.PumpFor(time.Second)
	assert.Equal(t, 1, fired)

	tester.Touch(el, gestures.EventTouchStart, gestures.Touch{ID: 3}, gestures.Touch{ID: 4})
	assert.False(t, lp.Pending(), "multi-touch is not a long press")

	tester.Touch(el, gestures.EventTouchStart, gestures.Touch{ID: 5})
	scope.Close()
	assert.False(t, lp.Pending())
	assert.Equal(t, 0, el.TotalListeners())
}

func TestPanAxisAndConstraints(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	pan := &gestures.Pan{
		Axis:        gestures.AxisX,
		Constraints: &gestures.Constraints{Right: gestures.Limit(50)},
	}
	_, ok := pan.Down(gestures.PointerEvent{PointerID: 1, Position: pt(10, 10), Time: start}, pt(0, 0))
	require.True(t, ok)
	assert.True(t, pan.Active())

	_, ok = pan.Down(gestures.PointerEvent{PointerID: 2, Time: start}, pt(0, 0))
	assert.False(t, ok, "second pointer is ignored")

	info, ok := pan.Move(gestures.PointerEvent{PointerID: 1, Position: pt(40, 30), Time: start.Add(100 * time.Millisecond)})
	require.True(t, ok)
	assert.Equal(t, pt(30, 0), info.Delta)
	assert.Equal(t, pt(30, 0), info.Offset)
	assert.InDelta(t, 300, info.Velocity.X, 1e-9)

	info, _ = pan.Move(gestures.PointerEvent{PointerID: 1, Position: pt(110, 30), Time: start.Add(200 * time.Millisecond)})
	assert.Equal(t, pt(50, 0), info.Offset)

	end, ok := pan.Up(gestures.PointerEvent{PointerID: 1, Position: pt(110, 30)})
	require.True(t, ok)
	assert.InDelta(t, 700, end.Velocity.X, 1e-9)
	assert.False(t, pan.Active())
}

func TestPanAxisNoneDisabled(t *testing.T) {
	pan := &gestures.Pan{Axis: gestures.AxisNone}
	_, ok := pan.Down(gestures.PointerEvent{PointerID: 1}, pt(0, 0))
	assert.False(t, ok)
}

func TestShakeDetectorDebounces(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	shakes := 0
	d := gestures.NewShakeDetector(func() { shakes++ })
	strong := &gestures.Vector3{X: 10, Y: 10, Z: 10}
	weak := &gestures.Vector3{X: 1, Y: 1, Z: 9.8}

	assert.False(t, d.Handle(gestures.MotionEvent{AccelerationIncludingGravity: weak, Time: start}))
	assert.True(t, d.Handle(gestures.MotionEvent{AccelerationIncludingGravity: strong, Time: start}))
	assert.False(t, d.Handle(gestures.MotionEvent{AccelerationIncludingGravity: strong, Time: start.Add(500 * time.Millisecond)}))
	assert.True(t, d.Handle(gestures.MotionEvent{AccelerationIncludingGravity: strong, Time: start.Add(1500 * time.Millisecond)}))
	assert.False(t, d.Handle(gestures.MotionEvent{Time: start.Add(5 * time.Second)}))
	assert.False(t, d.Handle(gestures.MotionEvent{AccelerationIncludingGravity: &gestures.Vector3{X: 30, Y: 0, Z: 30}, Time: start.Add(5 * time.Second)}))
	assert.Equal(t, 2, shakes)
}

func TestTiltScroll(t *testing.T) {
	page := motiontest.NewFakeScroller(100, 100, 100, 10000)
	tilt := &gestures.TiltScroll{Page: page}
	beta := 60.0
	dy, ok := tilt.Handle(gestures.OrientationEvent{Beta: &beta})
	require.True(t, ok)
	assert.Equal(t, 75.0, dy)
	assert.Equal(t, 75.0, page.Metrics().Y)

	_, ok = tilt.Handle(gestures.OrientationEvent{})
	assert.False(t, ok)
}

func TestGamepadPoller(t *testing.T) {
	tester := motiontest.NewTesterWithT(t)
	src := &motiontest.FakeGamepadSource{}
	window := &motiontest.FakeTarget{}
	samples := 0
	poller := &gestures.GamepadPoller{Source: src, Scheduler: tester.Scheduler(), OnUpdate: func([]gestures.Gamepad) { samples++ }}
	scope := gestures.NewScope()
	poller.Attach(scope, window)

	src.Set(gestures.Gamepad{Index: 0, ID: "pad", Connected: true, Axes: []float64{0.5}})
	tester.PumpFrames(3, motiontest.FrameDuration)
	assert.Equal(t, 3, samples)
	require.Len(t, poller.Latest(), 1)
	assert.Equal(t, "pad", poller.Latest()[0].ID)

	window.Dispatch(gestures.GamepadEvent{Connected: false})
	assert.Equal(t, 4, samples)

	scope.Close()
	tester.PumpFrames(3, motiontest.FrameDuration)
	assert.Equal(t, 4, samples)
}

func TestBindingRecoversPanics(t *testing.T) {
	tester := motiontest.NewTesterWithT(t)
	el := motiontest.NewFakeElement("div")
	b := gestures.Bind(el, gestures.EventFocus, func(gestures.Event) { panic("handler") })
	el.Dispatch(gestures.FocusEvent{Focused: true})
	assert.Len(t, tester.Errors().Panics(), 1)

	b.Release()
	b.Release()
	assert.Equal(t, 0, el.TotalListeners())

	nilBinding := gestures.Bind(nil, gestures.EventFocus, func(gestures.Event) {})
	nilBinding.Release()
	assert.Equal(t, gestures.EventFocus, nilBinding.Name())
}

func TestScopeRebindAndDefer(t *testing.T) {
	el := motiontest.NewFakeElement("div")
	scope := gestures.NewScope()
	var calls []string
	scope.Rebind("focus", el, gestures.EventFocus, func(gestures.Event) { calls = append(calls, "old") })
	scope.Rebind("focus", el, gestures.EventFocus, func(gestures.Event) { calls = append(calls, "new") })
	scope.Defer(func() { calls = append(calls, "first") })
	scope.Defer(func() { calls = append(calls, "second") })

	el.Dispatch(gestures.FocusEvent{Focused: true})
	assert.Equal(t, 1, el.ListenerCount(gestures.EventFocus))

	scope.Close()
	scope.Close()
	assert.Equal(t, []string{"new", "second", "first"}, calls)
	assert.Equal(t, 0, el.TotalListeners())
}
