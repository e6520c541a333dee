package animation

import "math"

// Mix linearly interpolates from from to to by p.
//
// For p in [0, 1] the result always lies between from and to inclusive,
// and the endpoints are returned exactly. Outside [0, 1] Mix extrapolates,
// which is what overshooting easing curves rely on. Finite inputs never
// produce an infinite result.
func Mix(from, to, p float64) float64 {
	switch p {
	case 0:
		return from
	case 1:
		return to
	}
	v := -p*from + p*to + from
	if !finite(v) && finite(from) && finite(to) && finite(p) {
		// Overflow near the float64 limits: mix at half scale and saturate.
		h := -p*(from/2) + p*(to/2) + from/2
		if math.IsNaN(h) {
			return to
		}
		v = Clamp(-math.MaxFloat64, math.MaxFloat64, h*2)
	}
	if p > 0 && p < 1 {
		lo, hi := math.Min(from, to), math.Max(from, to)
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}
	}
	return v
}

// Clamp restricts v to [min, max].
func Clamp(min, max, v float64) float64 {
	return math.Min(math.Max(v, min), max)
}

// Progress is the inverse of Mix: it returns where value sits between from
// and to. A zero-length range reports 1.
func Progress(from, to, value float64) float64 {
	if to-from == 0 {
		return 1
	}
	return (value - from) / (to - from)
}
