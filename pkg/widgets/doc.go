// Package widgets provides motion components: host elements driven by
// declarative animation props.
//
// # Component Construction
//
// A [Factory] knows which tags are HTML and which are SVG. New wraps a host
// element in a [Component] configured by [Props]:
//
//	f := widgets.NewFactory(widgets.Config{})
//	box, err := f.New(el, widgets.Props{
//	    Initial:    widgets.Values{"opacity": 0, "y": 20},
//	    Animate:    widgets.Values{"opacity": 1, "y": 0},
//	    WhileHover: widgets.Values{"scale": 1.05},
//	    Transition: animation.Transition{Duration: 400 * time.Millisecond},
//	}, env)
//	box.Mount()
//
// Config.Defaults supplies props every component starts from; per-instance
// props win field by field.
//
// # Values
//
// Every numeric, color or number-bearing string key becomes a motion value
// in the environment's store. The shorthand keys x, y, z, scale, rotate and
// skew (with their axis variants) are combined into one transform property.
// Other keys are written as CSS properties, or as attributes for SVG
// geometry such as cx and strokeWidth.
//
// A value may be a keyframe slice, in which case its last element is the
// target, or a [Target] carrying its own transition.
//
// # State Layers
//
// Active states layer over the animate props in a fixed order: in view,
// hover, focus, tap. When a state ends its keys animate back to the next
// active layer, or to the base value from Style or Initial.
//
// # Drag and Layout
//
// Drag binds a pan recognizer that writes x and y, honouring axis and
// constraint props and optionally gliding on release. Layout plays a FLIP
// animation whenever MeasureLayout sees the element move; components that
// share a LayoutID through a [layout.Group] animate between each other's
// rectangles. [ReorderGroup] combines both for drag-to-reorder lists.
//
// # Exit Animations
//
// A component bound to a [presence.AnimatePresence] with Bind plays its
// Exit props when its key disappears, and the presence group removes it
// once they finish.
//
// # Reduced Motion
//
// With reduced motion in effect every animation jumps to its target and
// completion callbacks fire immediately.
package widgets
