package animation

import (
	"strconv"
	"strings"

	"github.com/go-drift/dxmotion/pkg/graphics"
)

// Kind tags the shape of an animatable value.
type Kind int

const (
	// KindInvalid is a value that cannot be interpolated (nil, bool, struct).
	KindInvalid Kind = iota
	// KindNumber is a plain number.
	KindNumber
	// KindColor is a single color literal or name.
	KindColor
	// KindComplex is a string with embedded numbers and/or colors.
	KindComplex
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindColor:
		return "color"
	case KindComplex:
		return "complex"
	default:
		return "invalid"
	}
}

// Value is an animatable value whose shape was decided once, at parse time.
type Value struct {
	Kind    Kind
	Number  float64
	Color   graphics.Color
	Complex Complex
	// Raw is the value as supplied by the caller.
	Raw any
}

// ParseValue classifies v. Go numeric types become KindNumber; a string
// that is a single color becomes KindColor; a string that parses as one
// plain number becomes KindNumber; any other string becomes KindComplex.
// NaN and infinities are KindInvalid, as is everything else.
func ParseValue(v any) Value {
	switch n := v.(type) {
	case float64:
		return numberValue(n, v)
	case float32:
		return numberValue(float64(n), v)
	case int:
		return numberValue(float64(n), v)
	case int32:
		return numberValue(float64(n), v)
	case int64:
		return numberValue(float64(n), v)
	case graphics.Color:
		return Value{Kind: KindColor, Color: n, Raw: v}
	case string:
		s := strings.TrimSpace(n)
		if graphics.IsColor(s) {
			if c, err := graphics.ParseColor(s); err == nil {
				return Value{Kind: KindColor, Color: c, Raw: v}
			}
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return numberValue(f, v)
		}
		return Value{Kind: KindComplex, Complex: ParseComplex(n), Raw: v}
	}
	return Value{Kind: KindInvalid, Raw: v}
}

func numberValue(f float64, raw any) Value {
	if !finite(f) {
		return Value{Kind: KindInvalid, Raw: raw}
	}
	return Value{Kind: KindNumber, Number: f, Raw: raw}
}

// nonFinite reports whether v is NaN or an infinity, given as a number or
// as a numeric string.
func nonFinite(v any) bool {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case string:
		p, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return false
		}
		f = p
	default:
		return false
	}
	return !finite(f)
}

// Float returns v as a float64 when v is a finite number.
func Float(v any) (float64, bool) {
	pv := ParseValue(v)
	if pv.Kind != KindNumber {
		return 0, false
	}
	return pv.Number, true
}

// Interpolator maps progress to an intermediate value between two parsed
// values. The interpolation strategy is chosen once, in [NewInterpolator].
type Interpolator struct {
	from, to Value
	mode     Kind
	ok       bool
}

// NewInterpolator builds an interpolator from from to to.
//
// Matching kinds interpolate naturally. A number paired with a complex
// string that has exactly one numeric token (0 and "100px") is promoted
// into the string's template. Every other combination is incompatible:
// the interpolator then yields to at every progress and OK reports false.
func NewInterpolator(from, to any) Interpolator {
	f, t := ParseValue(from), ParseValue(to)
	in := Interpolator{from: f, to: t}
	switch {
	case f.Kind == KindNumber && t.Kind == KindNumber:
		in.mode, in.ok = KindNumber, true
	case f.Kind == KindColor && t.Kind == KindColor:
		in.mode, in.ok = KindColor, true
	case f.Kind == KindComplex && t.Kind == KindComplex:
		in.mode, in.ok = KindComplex, true
	case f.Kind == KindNumber && t.Kind == KindComplex && t.Complex.Numbers() == 1 && t.Complex.Colors() == 0:
		in.from = Value{Kind: KindComplex, Complex: promote(t.Complex, f.Number), Raw: from}
		in.mode, in.ok = KindComplex, true
	case f.Kind == KindComplex && t.Kind == KindNumber && f.Complex.Numbers() == 1 && f.Complex.Colors() == 0:
		in.to = Value{Kind: KindComplex, Complex: promote(f.Complex, t.Number), Raw: to}
		in.mode, in.ok = KindComplex, true
	default:
		in.mode = KindInvalid
	}
	return in
}

func promote(template Complex, n float64) Complex {
	out := Complex{literals: template.literals, slots: make([]slot, len(template.slots))}
	copy(out.slots, template.slots)
	for i := range out.slots {
		if out.slots[i].kind == slotNumber {
			out.slots[i].number = n
		}
	}
	return out
}

// OK reports whether the two ends could be interpolated.
func (in Interpolator) OK() bool {
	return in.ok
}

// Kind returns the interpolation mode.
func (in Interpolator) Kind() Kind {
	return in.mode
}

// At returns the value at progress p. Numbers are returned as float64,
// colors and complex values as strings.
func (in Interpolator) At(p float64) any {
	switch in.mode {
	case KindNumber:
		return Mix(in.from.Number, in.to.Number, p)
	case KindColor:
		return LerpColor(in.from.Color, in.to.Color, p).String()
	case KindComplex:
		return MixComplex(in.from.Complex, in.to.Complex, p).String()
	default:
		return in.to.Raw
	}
}

// Delta returns to-from for numeric interpolators and 0 otherwise.
func (in Interpolator) Delta() float64 {
	if in.mode != KindNumber {
		return 0
	}
	return in.to.Number - in.from.Number
}
