package motion

import (
	"github.com/go-drift/dxmotion/pkg/animation"
	"github.com/go-drift/dxmotion/pkg/graphics"
)

// Path is a host vector path that can be sampled by arc length.
type Path interface {
	TotalLength() float64
	PointAtLength(length float64) graphics.Point
}

// Polyline is a Path made of straight segments.
type Polyline []graphics.Point

// TotalLength returns the sum of the segment lengths.
func (p Polyline) TotalLength() float64 {
	var total float64
	for i := 1; i < len(p); i++ {
		total += graphics.Distance(p[i-1], p[i])
	}
	return total
}

// PointAtLength returns the point length along the line, clamped to its
// ends.
func (p Polyline) PointAtLength(length float64) graphics.Point {
	if len(p) == 0 {
		return graphics.Point{}
	}
	if length <= 0 {
		return p[0]
	}
	for i := 1; i < len(p); i++ {
		seg := graphics.Distance(p[i-1], p[i])
		if length <= seg && seg > 0 {
			return animation.LerpPoint(p[i-1], p[i], length/seg)
		}
		length -= seg
	}
	return p[len(p)-1]
}

// PathValues are the coordinates published by [FollowPath].
type PathValues struct {
	X, Y  *Value[float64]
	unsub func()
}

// Stop detaches from the progress value.
func (v *PathValues) Stop() {
	if v.unsub != nil {
		v.unsub()
	}
}

// FollowPath publishes the point at progress*length along path now and
// every time progress changes. A nil path leaves both coordinates at 0.
func FollowPath(store *Store, path Path, progress *Value[float64]) *PathValues {
	v := &PathValues{X: NewValue(store, 0.0), Y: NewValue(store, 0.0)}
	if path == nil || progress == nil {
		return v
	}
	length := path.TotalLength()
	place := func(p float64) {
		pt := path.PointAtLength(p * length)
		v.X.Set(pt.X)
		v.Y.Set(pt.Y)
	}
	place(progress.Get())
	v.unsub = progress.OnChange(place)
	return v
}
