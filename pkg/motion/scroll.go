package motion

import (
	"math"
	"sync"
	"time"

	"github.com/go-drift/dxmotion/pkg/animation"
	"github.com/go-drift/dxmotion/pkg/gestures"
	"github.com/go-drift/dxmotion/pkg/graphics"
)

// ScrollMetrics describes a scroll container.
type ScrollMetrics struct {
	X, Y                      float64
	ScrollWidth, ScrollHeight float64
	ClientWidth, ClientHeight float64
}

// Scroller is a scrollable host container, or the window. It dispatches
// "scroll" events.
type Scroller interface {
	gestures.EventTarget
	Metrics() ScrollMetrics
	ScrollTo(x, y float64)
}

// ScrollValues are the motion values published by [TrackScroll].
type ScrollValues struct {
	X, Y                 *Value[float64]
	XProgress, YProgress *Value[float64]
	XVelocity, YVelocity *Value[float64]
}

// Dispose releases every listener registered through the values.
func (v *ScrollValues) Dispose() {
	for _, mv := range []*Value[float64]{v.X, v.Y, v.XProgress, v.YProgress, v.XVelocity, v.YVelocity} {
		mv.Dispose()
	}
}

// TrackScroll publishes the scroll position, progress and velocity of
// scroller. Values are refreshed immediately and on every scroll event
// until scope closes. Progress is 0 when the content does not overflow.
func TrackScroll(store *Store, scope *gestures.Scope, scroller Scroller) *ScrollValues {
	v := &ScrollValues{
		X:         NewValue(store, 0.0),
		Y:         NewValue(store, 0.0),
		XProgress: NewValue(store, 0.0),
		YProgress: NewValue(store, 0.0),
		XVelocity: NewValue(store, 0.0),
		YVelocity: NewValue(store, 0.0),
	}
	if scroller == nil {
		return v
	}
	update := func() {
		m := scroller.Metrics()
		v.X.Set(m.X)
		v.Y.Set(m.Y)
		v.XVelocity.Set(v.X.Velocity())
		v.YVelocity.Set(v.Y.Velocity())
		v.XProgress.Set(scrollProgress(m.X, m.ScrollWidth-m.ClientWidth))
		v.YProgress.Set(scrollProgress(m.Y, m.ScrollHeight-m.ClientHeight))
	}
	scope.Bind(scroller, gestures.EventScroll, func(gestures.Event) { update() })
	update()
	return v
}

func scrollProgress(pos, extent float64) float64 {
	if extent <= 0 {
		return 0
	}
	p := pos / extent
	if math.IsNaN(p) {
		return 0
	}
	return p
}

// ScrollTo animates scroller's vertical position to y.
func ScrollTo(s *animation.Scheduler, scroller Scroller, y float64, t animation.Transition) (*animation.Controls, error) {
	if scroller == nil {
		c, _ := animation.Animate(nil, animation.Options{})
		return c, errNoScroller
	}
	m := scroller.Metrics()
	return animation.Animate(s, animation.Options{
		From:       m.Y,
		To:         y,
		Transition: t,
		OnUpdate: func(v any) {
			if f, ok := v.(float64); ok {
				scroller.ScrollTo(m.X, f)
			}
		},
	})
}

// Bounded is anything with a viewport-relative bounding box.
type Bounded interface {
	Bounds() graphics.Rect
}

// ScrollToElement scrolls so that el's top edge reaches the top of the
// viewport.
func ScrollToElement(s *animation.Scheduler, scroller Scroller, el Bounded, t animation.Transition) (*animation.Controls, error) {
	if scroller == nil || el == nil {
		c, _ := animation.Animate(nil, animation.Options{})
		return c, errNoScroller
	}
	return ScrollTo(s, scroller, scroller.Metrics().Y+el.Bounds().Top, t)
}

// DefaultSmoothStiffness is the default stiffness of [SmoothScroll].
const DefaultSmoothStiffness = 100.0

// Smoothed is a value that follows a target with per-frame easing.
type Smoothed struct {
	Value  *Value[float64]
	ticker *animation.Ticker
	once   sync.Once
}

// Stop ends the per-frame updates.
func (s *Smoothed) Stop() {
	s.once.Do(s.ticker.Stop)
}

// SmoothScroll publishes a smoothed copy of scroller's vertical position.
// Every frame the value moves 10/stiffness of the remaining distance.
func SmoothScroll(store *Store, s *animation.Scheduler, scroller Scroller, stiffness float64) *Smoothed {
	if stiffness <= 0 || math.IsNaN(stiffness) {
		stiffness = DefaultSmoothStiffness
	}
	factor := animation.Clamp(0, 1, 1/(stiffness/10))
	var start float64
	if scroller != nil {
		start = scroller.Metrics().Y
	}
	out := &Smoothed{Value: NewValue(store, start)}
	out.ticker = animation.NewTicker(s, func(time.Duration) {
		if scroller == nil {
			return
		}
		out.Value.Set(animation.Mix(out.Value.Get(), scroller.Metrics().Y, factor))
	})
	out.ticker.Start()
	return out
}
