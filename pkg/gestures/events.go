package gestures

import (
	"time"

	"github.com/go-drift/dxmotion/pkg/graphics"
)

// Point is a position in logical pixels.
type Point = graphics.Point

// Distance returns the Euclidean distance between two points.
func Distance(p1, p2 Point) float64 {
	return graphics.Distance(p1, p2)
}

// Angle returns the angle of the segment from p1 to p2 in degrees.
func Angle(p1, p2 Point) float64 {
	return graphics.Angle(p1, p2)
}

// Event names dispatched by hosts.
const (
	EventTouchStart        = "touchstart"
	EventTouchMove         = "touchmove"
	EventTouchEnd          = "touchend"
	EventTouchCancel       = "touchcancel"
	EventPointerDown       = "pointerdown"
	EventPointerMove       = "pointermove"
	EventPointerUp         = "pointerup"
	EventPointerCancel     = "pointercancel"
	EventPointerEnter      = "pointerenter"
	EventPointerLeave      = "pointerleave"
	EventFocus             = "focus"
	EventBlur              = "blur"
	EventScroll            = "scroll"
	EventDeviceMotion      = "devicemotion"
	EventDeviceOrientation = "deviceorientation"
	EventGamepadConnected  = "gamepadconnected"
	EventGamepadRemoved    = "gamepaddisconnected"
)

// Event is a host input event.
type Event interface {
	// Name returns the event name, such as "touchstart".
	Name() string
}

// EventTarget is anything that can deliver events: an element, the window,
// the document.
type EventTarget interface {
	// Listen registers fn for events named name and returns a function that
	// removes it.
	Listen(name string, fn func(Event)) (remove func())
}

// Touch is one finger on a touch surface.
type Touch struct {
	ID       int64
	Position Point
}

// TouchEvent reports a change in the set of active touches.
type TouchEvent struct {
	Type string
	// Touches holds every touch currently on the surface.
	Touches []Touch
	// ChangedTouches holds the touches that changed in this event. On
	// touchend these are the lifted fingers.
	ChangedTouches []Touch
	Time           time.Time
}

func (e TouchEvent) Name() string { return e.Type }

// PointerPhase is the phase of a pointer event.
type PointerPhase int

const (
	PointerPhaseDown PointerPhase = iota
	PointerPhaseMove
	PointerPhaseUp
	PointerPhaseCancel
	PointerPhaseEnter
	PointerPhaseLeave
)

// PointerEvent reports a mouse, pen or touch pointer.
type PointerEvent struct {
	PointerID int64
	Position  Point
	Phase     PointerPhase
	Time      time.Time
}

func (e PointerEvent) Name() string {
	switch e.Phase {
	case PointerPhaseDown:
		return EventPointerDown
	case PointerPhaseMove:
		return EventPointerMove
	case PointerPhaseUp:
		return EventPointerUp
	case PointerPhaseCancel:
		return EventPointerCancel
	case PointerPhaseEnter:
		return EventPointerEnter
	default:
		return EventPointerLeave
	}
}

// FocusEvent reports focus gained or lost.
type FocusEvent struct {
	Focused bool
}

func (e FocusEvent) Name() string {
	if e.Focused {
		return EventFocus
	}
	return EventBlur
}

// ScrollEvent reports that a scroll container moved.
type ScrollEvent struct{}

func (ScrollEvent) Name() string { return EventScroll }

// Vector3 is a three-axis sensor reading.
type Vector3 struct {
	X, Y, Z float64
}

// MotionEvent carries accelerometer data.
type MotionEvent struct {
	// AccelerationIncludingGravity is nil when the device has no sensor.
	AccelerationIncludingGravity *Vector3
	Time                         time.Time
}

func (MotionEvent) Name() string { return EventDeviceMotion }

// OrientationEvent carries device orientation in degrees. Nil angles are
// unavailable.
type OrientationEvent struct {
	Alpha, Beta, Gamma *float64
}

func (OrientationEvent) Name() string { return EventDeviceOrientation }

// GamepadEvent reports a controller being connected or removed.
type GamepadEvent struct {
	Connected bool
	Gamepad   Gamepad
}

func (e GamepadEvent) Name() string {
	if e.Connected {
		return EventGamepadConnected
	}
	return EventGamepadRemoved
}

func touchPoints(touches []Touch) (Point, Point) {
	return touches[0].Position, touches[1].Position
}
