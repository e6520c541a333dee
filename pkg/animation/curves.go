package animation

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-drift/dxmotion/pkg/errors"
)

// Easing transforms linear animation progress into eased progress.
//
// Each curve takes a value p in [0, 1]. Every named curve maps 0 to 0 and 1
// to 1; back, anticipate and bounce curves may leave [0, 1] in between.
//
// Standard curves: [LinearCurve], [EaseIn], [EaseOut], [EaseInOut].
// Use [CubicBezier] to create custom curves matching CSS cubic-bezier().
// Use [EasingByName] to resolve a curve from configuration.
type Easing func(p float64) float64

// LinearCurve returns linear progress (no easing).
func LinearCurve(p float64) float64 {
	return p
}

// Ease is the CSS ease curve.
var Ease = CubicBezier(0.25, 0.1, 0.25, 1.0)

// EaseIn starts slowly and accelerates. Equivalent to CSS ease-in.
var EaseIn = CubicBezier(0.42, 0, 1, 1)

// EaseOut starts quickly and decelerates. Equivalent to CSS ease-out.
var EaseOut = CubicBezier(0, 0, 0.58, 1)

// EaseInOut starts and ends slowly. Equivalent to CSS ease-in-out.
var EaseInOut = CubicBezier(0.42, 0, 0.58, 1)

// CircIn follows a quarter circle, slow start.
func CircIn(p float64) float64 {
	return 1 - math.Sqrt(1-p*p)
}

// CircOut follows a quarter circle, slow end.
func CircOut(p float64) float64 {
	return math.Sqrt(1 - (p-1)*(p-1))
}

// CircInOut joins CircIn and CircOut at the midpoint.
func CircInOut(p float64) float64 {
	if p < 0.5 {
		return (1 - math.Sqrt(1-math.Pow(2*p, 2))) / 2
	}
	return (math.Sqrt(1-math.Pow(-2*p+2, 2)) + 1) / 2
}

// BackIn pulls back below zero before accelerating.
func BackIn(p float64) float64 {
	return 2.70158*p*p*p - 1.70158*p*p
}

// BackOut overshoots past one before settling.
func BackOut(p float64) float64 {
	q := p - 1
	return 1 + 2.70158*q*q*q + 1.70158*q*q
}

// BackInOut pulls back at the start and overshoots at the end.
func BackInOut(p float64) float64 {
	const c = 2.59491
	if p < 0.5 {
		return (math.Pow(2*p, 2) * (c*2*p - (c - 1))) / 2
	}
	return (math.Pow(2*p-2, 2)*(c*(p*2-2)+(c-1)) + 2) / 2
}

// Anticipate dips backwards in the first half then overshoots.
func Anticipate(p float64) float64 {
	p *= 2
	if p < 1 {
		return 0.5 * (p*p*p - p*p)
	}
	p -= 2
	return 0.5 * (p*p*p + 2)
}

// BounceOut bounces against the end value with decaying height.
func BounceOut(p float64) float64 {
	const (
		n1 = 7.5625
		d1 = 2.75
	)
	switch {
	case p < 1/d1:
		return n1 * p * p
	case p < 2/d1:
		p -= 1.5 / d1
		return n1*p*p + 0.75
	case p < 2.5/d1:
		p -= 2.25 / d1
		return n1*p*p + 0.9375
	default:
		p -= 2.625 / d1
		return n1*p*p + 0.984375
	}
}

// BounceIn bounces against the start value.
func BounceIn(p float64) float64 {
	return 1 - BounceOut(1-p)
}

// BounceInOut bounces at both ends.
func BounceInOut(p float64) float64 {
	if p < 0.5 {
		return (1 - BounceOut(1-2*p)) / 2
	}
	return (1 + BounceOut(2*p-1)) / 2
}

// StepDirection selects where a [Steps] curve jumps.
type StepDirection int

const (
	// StepEnd holds each step until its end; the last step lands on 1.
	StepEnd StepDirection = iota
	// StepStart jumps at the start of each step.
	StepStart
)

// Steps returns a staircase curve with n steps.
//
// With StepEnd the output takes the values 0, 1/(n-1), ..., 1 and the final
// step is clamped so that p == 1 maps to exactly 1.
func Steps(n int, direction StepDirection) Easing {
	if n < 1 {
		n = 1
	}
	return func(p float64) float64 {
		if p <= 0 {
			return 0
		}
		if p >= 1 {
			return 1
		}
		step := math.Floor(p * float64(n))
		if direction == StepStart {
			return step / float64(n)
		}
		if n == 1 {
			return 0
		}
		return math.Min(step, float64(n-1)) / float64(n-1)
	}
}

// Wiggle returns a gaussian-damped cosine oscillation with the given number
// of wiggles. Integer wiggle counts land on exactly 1 at p == 1.
func Wiggle(wiggles int) Easing {
	w := float64(wiggles)
	return func(p float64) float64 {
		return -math.Cos(p*math.Pi*(w-0.5))*math.Exp(-p*p*5) + 1
	}
}

// Bezier is a CSS cubic-bezier timing curve with control points (X1,Y1)
// and (X2,Y2). The curve starts at (0,0) and ends at (1,1).
type Bezier struct {
	X1, Y1, X2, Y2 float64
}

const (
	bezierIterations = 8
	bezierBisections = 40
	bezierEpsilon    = 1e-7
)

// SampleCurveX returns the x coordinate at parameter t.
func (b Bezier) SampleCurveX(t float64) float64 {
	return sampleCurve(b.X1, b.X2, t)
}

// SampleCurveY returns the y coordinate at parameter t.
func (b Bezier) SampleCurveY(t float64) float64 {
	return sampleCurve(b.Y1, b.Y2, t)
}

// SolveCurveX inverts SampleCurveX: it finds the parameter t whose x
// coordinate is x. Newton-Raphson runs first; bisection guarantees a stable
// answer when the derivative vanishes.
func (b Bezier) SolveCurveX(x float64) float64 {
	u := x
	for range bezierIterations {
		dx := b.SampleCurveX(u) - x
		if math.Abs(dx) < bezierEpsilon {
			return u
		}
		d := sampleCurveDerivative(b.X1, b.X2, u)
		if math.Abs(d) < bezierEpsilon {
			break
		}
		u -= dx / d
	}

	lo, hi := 0.0, 1.0
	u = clampUnit(u)
	for range bezierBisections {
		dx := b.SampleCurveX(u) - x
		if math.Abs(dx) < bezierEpsilon {
			break
		}
		if dx > 0 {
			hi = u
		} else {
			lo = u
		}
		u = (lo + hi) * 0.5
	}
	return u
}

// Ease maps progress x to the curve's y value.
func (b Bezier) Ease(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	return b.SampleCurveY(b.SolveCurveX(x))
}

// CubicBezier returns a cubic-bezier easing function matching CSS cubic-bezier().
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	return Bezier{X1: x1, Y1: y1, X2: x2, Y2: y2}.Ease
}

func sampleCurve(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func sampleCurveDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}

var namedEasings = map[string]Easing{
	"linear":      LinearCurve,
	"ease":        Ease,
	"easeIn":      EaseIn,
	"easeOut":     EaseOut,
	"easeInOut":   EaseInOut,
	"circIn":      CircIn,
	"circOut":     CircOut,
	"circInOut":   CircInOut,
	"backIn":      BackIn,
	"backOut":     BackOut,
	"backInOut":   BackInOut,
	"anticipate":  Anticipate,
	"bounce":      BounceOut,
	"bounceIn":    BounceIn,
	"bounceOut":   BounceOut,
	"bounceInOut": BounceInOut,
	"wiggle":      Wiggle(10),
}

// EasingByName resolves a named curve. Unknown names return an error
// wrapping [errors.ErrUnknownEasing] so configuration mistakes surface when
// a transition is built rather than mid-animation.
func EasingByName(name string) (Easing, error) {
	if e, ok := namedEasings[name]; ok {
		return e, nil
	}
	return nil, errors.New("animation.EasingByName", errors.KindConfig,
		fmt.Errorf("%w: %q", errors.ErrUnknownEasing, name))
}

// EasingNames lists the names accepted by [EasingByName], sorted.
func EasingNames() []string {
	names := make([]string, 0, len(namedEasings))
	for name := range namedEasings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
