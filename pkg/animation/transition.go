package animation

import (
	"math"
	"time"

	"github.com/go-drift/dxmotion/pkg/errors"
)

// TransitionType selects how [Animate] moves a value.
type TransitionType string

const (
	// TypeTween interpolates over a fixed duration with an easing curve.
	TypeTween TransitionType = "tween"
	// TypeSpring settles on the target with a damped harmonic oscillator.
	TypeSpring TransitionType = "spring"
	// TypeInertia decays an initial velocity toward a projected rest point.
	TypeInertia TransitionType = "inertia"
	// TypePhysics integrates acceleration and friction until the value stops.
	TypePhysics TransitionType = "physics"
)

// Default transition parameters.
const (
	DefaultDuration     = 300 * time.Millisecond
	DefaultStiffness    = 100.0
	DefaultDamping      = 10.0
	DefaultMass         = 1.0
	DefaultPower        = 0.8
	DefaultTimeConstant = 325 * time.Millisecond
	DefaultFriction     = 0.1
)

// DelayFunc computes a start delay from a sibling's index and the number of
// siblings animating together. See [Stagger].
type DelayFunc func(index, total int) time.Duration

// Transition describes how a value moves from one state to another.
//
// Zero fields take their defaults in [Transition.Resolve]. Parameters that
// do not apply to Type are ignored.
type Transition struct {
	Type TransitionType

	// Tween.
	Duration time.Duration
	// Ease takes precedence over EaseName, which takes precedence over Bezier.
	Ease     Easing
	EaseName string
	Bezier   *Bezier

	// Spring.
	Stiffness float64
	Damping   float64
	Mass      float64

	// Delay is used when DelayFunc is nil.
	Delay     time.Duration
	DelayFunc DelayFunc

	// Inertia.
	Power        float64
	TimeConstant time.Duration
	ModifyTarget func(float64) float64

	// Physics.
	Acceleration float64
	Friction     float64

	OnComplete func()
}

// Resolve fills in defaults and resolves the easing curve. Only the easing
// name is validated.
func (t Transition) Resolve() (Transition, error) {
	switch t.Type {
	case TypeTween, TypeSpring, TypeInertia, TypePhysics:
	default:
		t.Type = TypeTween
	}
	if t.Duration <= 0 {
		t.Duration = DefaultDuration
	}
	if t.Ease == nil {
		switch {
		case t.EaseName != "":
			ease, err := EasingByName(t.EaseName)
			if err != nil {
				return t, err
			}
			t.Ease = ease
		case t.Bezier != nil:
			t.Ease = t.Bezier.Ease
		default:
			t.Ease = EaseInOut
		}
	}
	t.Stiffness = positiveOr(t.Stiffness, DefaultStiffness)
	t.Damping = positiveOr(t.Damping, DefaultDamping)
	t.Mass = positiveOr(t.Mass, DefaultMass)
	t.Power = positiveOr(t.Power, DefaultPower)
	if t.TimeConstant <= 0 {
		t.TimeConstant = DefaultTimeConstant
	}
	t.Friction = positiveOr(t.Friction, DefaultFriction)
	if math.IsNaN(t.Acceleration) || math.IsInf(t.Acceleration, 0) {
		t.Acceleration = 0
	}
	if t.Delay < 0 {
		t.Delay = 0
	}
	return t, nil
}

// DelayFor returns the start delay for sibling index out of total.
func (t Transition) DelayFor(index, total int) time.Duration {
	if t.DelayFunc != nil {
		if d := t.DelayFunc(index, total); d > 0 {
			return d
		}
		return 0
	}
	return t.Delay
}

// Merge returns t with every non-zero field of over applied on top.
func (t Transition) Merge(over Transition) Transition {
	if over.Type != "" {
		t.Type = over.Type
	}
	if over.Duration != 0 {
		t.Duration = over.Duration
	}
	if over.Ease != nil || over.EaseName != "" || over.Bezier != nil {
		t.Ease, t.EaseName, t.Bezier = over.Ease, over.EaseName, over.Bezier
	}
	if over.Stiffness != 0 {
		t.Stiffness = over.Stiffness
	}
	if over.Damping != 0 {
		t.Damping = over.Damping
	}
	if over.Mass != 0 {
		t.Mass = over.Mass
	}
	if over.Delay != 0 {
		t.Delay = over.Delay
	}
	if over.DelayFunc != nil {
		t.DelayFunc = over.DelayFunc
	}
	if over.Power != 0 {
		t.Power = over.Power
	}
	if over.TimeConstant != 0 {
		t.TimeConstant = over.TimeConstant
	}
	if over.ModifyTarget != nil {
		t.ModifyTarget = over.ModifyTarget
	}
	if over.Acceleration != 0 {
		t.Acceleration = over.Acceleration
	}
	if over.Friction != 0 {
		t.Friction = over.Friction
	}
	if over.OnComplete != nil {
		t.OnComplete = over.OnComplete
	}
	return t
}

func positiveOr(v, def float64) float64 {
	if v > 0 && !math.IsInf(v, 0) {
		return v
	}
	return def
}

// errNotNumeric is reported when a velocity-driven transition receives a
// non-numeric start value.
func errNotNumeric(op string, v any) error {
	return errors.New(op, errors.KindInterpolation, &errors.ParseError{Input: toString(v), Want: "number"})
}
