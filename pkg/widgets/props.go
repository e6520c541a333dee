package widgets

import (
	"github.com/go-drift/dxmotion/pkg/animation"
	"github.com/go-drift/dxmotion/pkg/gestures"
	"github.com/go-drift/dxmotion/pkg/layout"
)

// DragAxis selects which directions an element can be dragged.
type DragAxis int

const (
	DragNone DragAxis = iota
	DragBoth
	DragX
	DragY
)

func (d DragAxis) axis() gestures.Axis {
	switch d {
	case DragBoth:
		return gestures.AxisBoth
	case DragX:
		return gestures.AxisX
	case DragY:
		return gestures.AxisY
	default:
		return gestures.AxisNone
	}
}

// LayoutMode selects which layout changes animate.
type LayoutMode = layout.Mode

const (
	LayoutNone     = layout.ModeNone
	LayoutAll      = layout.ModeAll
	LayoutPosition = layout.ModePosition
	LayoutSize     = layout.ModeSize
)

// Viewport configures whileInView.
type Viewport struct {
	// Once keeps the in-view state after the element first enters.
	Once bool
	// Margin grows the viewport on every side.
	Margin float64
}

// DragHandler receives pan updates during a drag.
type DragHandler func(gestures.PointerEvent, gestures.PanInfo)

// Props configure a motion component.
type Props struct {
	Initial Values
	Animate Values
	Exit    Values
	// Transition applies to every property unless a [Target] overrides it.
	Transition animation.Transition

	WhileHover  Values
	WhileTap    Values
	WhileFocus  Values
	WhileInView Values
	Viewport    Viewport

	Drag            DragAxis
	DragConstraints *gestures.Constraints
	// DragMomentum continues the drag with inertia after release.
	DragMomentum   bool
	DragTransition animation.Transition
	OnDragStart    DragHandler
	OnDrag         DragHandler
	OnDragEnd      DragHandler

	Layout   LayoutMode
	LayoutID string

	// Style holds static and animated style values. Animated keys seed
	// their motion values from here.
	Style map[string]any
	// Attrs pass through to the element unchanged.
	Attrs map[string]string

	OnAnimationComplete func()
}

// allValues returns every value set that can contribute animated keys.
func (p Props) allValues() []Values {
	return []Values{Values(p.Style), p.Initial, p.Animate, p.WhileHover, p.WhileTap, p.Exit, p.WhileInView, p.WhileFocus}
}

// ReducedMotionPolicy decides whether animations honour the user's reduced
// motion preference.
type ReducedMotionPolicy string

const (
	// ReducedMotionUser follows the media query. This is the default.
	ReducedMotionUser ReducedMotionPolicy = "user"
	// ReducedMotionAlways jumps every animation to its end.
	ReducedMotionAlways ReducedMotionPolicy = "always"
	// ReducedMotionNever always animates.
	ReducedMotionNever ReducedMotionPolicy = "never"
)

// Config holds defaults shared by every component created by a factory.
// Per-instance props win over Defaults field by field.
type Config struct {
	Defaults      Props
	ReducedMotion ReducedMotionPolicy
}

// Merge returns p with unset fields taken from the config defaults.
func (c Config) Merge(p Props) Props {
	d := c.Defaults
	out := p
	out.Transition = d.Transition.Merge(p.Transition)
	out.DragTransition = d.DragTransition.Merge(p.DragTransition)
	if out.Initial == nil {
		out.Initial = d.Initial
	}
	if out.Animate == nil {
		out.Animate = d.Animate
	}
	if out.Exit == nil {
		out.Exit = d.Exit
	}
	if out.WhileHover == nil {
		out.WhileHover = d.WhileHover
	}
	if out.WhileTap == nil {
		out.WhileTap = d.WhileTap
	}
	if out.WhileFocus == nil {
		out.WhileFocus = d.WhileFocus
	}
	if out.WhileInView == nil {
		out.WhileInView = d.WhileInView
	}
	if out.Viewport == (Viewport{}) {
		out.Viewport = d.Viewport
	}
	if out.Drag == DragNone {
		out.Drag = d.Drag
	}
	if out.DragConstraints == nil {
		out.DragConstraints = d.DragConstraints
	}
	if !out.DragMomentum {
		out.DragMomentum = d.DragMomentum
	}
	if out.OnDragStart == nil {
		out.OnDragStart = d.OnDragStart
	}
	if out.OnDrag == nil {
		out.OnDrag = d.OnDrag
	}
	if out.OnDragEnd == nil {
		out.OnDragEnd = d.OnDragEnd
	}
	if out.Layout == LayoutNone {
		out.Layout = d.Layout
	}
	if out.Style == nil {
		out.Style = d.Style
	}
	if out.Attrs == nil {
		out.Attrs = d.Attrs
	}
	if out.OnAnimationComplete == nil {
		out.OnAnimationComplete = d.OnAnimationComplete
	}
	return out
}
