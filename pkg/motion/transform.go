package motion

import "github.com/go-drift/dxmotion/pkg/animation"

// Transform derives a value from src through fn. The derived value updates
// whenever src changes; disposing it stops the updates.
func Transform[T, U any](src *Value[T], fn func(T) U) *Value[U] {
	out := NewValue(src.store, fn(src.Get()))
	unsub := src.store.Subscribe(src.id, func(x any) {
		if t, ok := x.(T); ok {
			out.Set(fn(t))
		}
	})
	out.addCleanup(unsub)
	return out
}

// TransformRange maps src linearly from the input range onto the output
// range. Values outside the input range extrapolate.
func TransformRange(src *Value[float64], in, out [2]float64) *Value[float64] {
	return Transform(src, func(v float64) float64 {
		return animation.Mix(out[0], out[1], animation.Progress(in[0], in[1], v))
	})
}
