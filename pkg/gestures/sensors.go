package gestures

import (
	"math"
	"time"

	"golang.org/x/time/rate"
)

// Shake defaults.
const (
	DefaultShakeThreshold = 15.0
	DefaultShakeTimeout   = 1000 * time.Millisecond
)

// ShakeDetector fires when the acceleration magnitude exceeds a threshold,
// at most once per timeout.
type ShakeDetector struct {
	// Threshold defaults to DefaultShakeThreshold (m/s²).
	Threshold float64
	// Timeout defaults to DefaultShakeTimeout.
	Timeout time.Duration
	OnShake func()

	limiter *rate.Limiter
}

// NewShakeDetector creates a detector with default settings.
func NewShakeDetector(onShake func()) *ShakeDetector {
	return &ShakeDetector{OnShake: onShake}
}

func (d *ShakeDetector) init() {
	if d.limiter != nil {
		return
	}
	timeout := d.Timeout
	if timeout <= 0 {
		timeout = DefaultShakeTimeout
	}
	d.limiter = rate.NewLimiter(rate.Every(timeout), 1)
}

// Handle inspects one motion sample and reports whether it counted as a
// shake. Samples without sensor data, or with a zero component, are ignored.
func (d *ShakeDetector) Handle(ev MotionEvent) bool {
	a := ev.AccelerationIncludingGravity
	if a == nil || a.X == 0 || a.Y == 0 || a.Z == 0 {
		return false
	}
	threshold := d.Threshold
	if threshold <= 0 {
		threshold = DefaultShakeThreshold
	}
	force := math.Sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z)
	if force <= threshold {
		return false
	}
	d.init()
	now := ev.Time
	if now.IsZero() {
		now = time.Now()
	}
	if !d.limiter.AllowN(now, 1) {
		return false
	}
	if d.OnShake != nil {
		d.OnShake()
	}
	return true
}

// Attach listens for device motion on window.
func (d *ShakeDetector) Attach(scope *Scope, window EventTarget) {
	scope.Bind(window, EventDeviceMotion, func(ev Event) {
		if me, ok := ev.(MotionEvent); ok {
			d.Handle(me)
		}
	})
}

// ScrollBy scrolls the page by a relative amount.
type ScrollBy interface {
	ScrollBy(dx, dy float64)
}

// DefaultTiltMultiplier converts degrees of tilt to pixels per event.
const DefaultTiltMultiplier = 5.0

// tiltRest is the front-to-back tilt at which no scrolling happens.
const tiltRest = 45.0

// TiltScroll scrolls the page as the device tilts forward or back.
type TiltScroll struct {
	Page ScrollBy
	// Multiplier defaults to DefaultTiltMultiplier.
	Multiplier float64
}

// Handle scrolls by (beta-45)*multiplier and returns the amount. Events
// without a beta angle are ignored.
func (t *TiltScroll) Handle(ev OrientationEvent) (float64, bool) {
	if ev.Beta == nil || t.Page == nil {
		return 0, false
	}
	m := t.Multiplier
	if m == 0 {
		m = DefaultTiltMultiplier
	}
	dy := (*ev.Beta - tiltRest) * m
	t.Page.ScrollBy(0, dy)
	return dy, true
}

// Attach listens for orientation changes on window.
func (t *TiltScroll) Attach(scope *Scope, window EventTarget) {
	scope.Bind(window, EventDeviceOrientation, func(ev Event) {
		if oe, ok := ev.(OrientationEvent); ok {
			t.Handle(oe)
		}
	})
}
