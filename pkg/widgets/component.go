package widgets

import (
	"strings"
	"sync"

	"github.com/go-drift/dxmotion/pkg/animation"
	"github.com/go-drift/dxmotion/pkg/errors"
	"github.com/go-drift/dxmotion/pkg/gestures"
	"github.com/go-drift/dxmotion/pkg/layout"
	"github.com/go-drift/dxmotion/pkg/motion"
	"github.com/go-drift/dxmotion/pkg/presence"
)

// Animation slots name the layer that started a run in error reports.
const (
	slotAnimate = "animate"
	slotHover   = "hover"
	slotTap     = "tap"
	slotFocus   = "focus"
	slotInView  = "inView"
	slotExit    = "exit"
)

// Component drives one host element from motion props.
//
// The host calls Mount once the element exists, Update whenever props
// change, MeasureLayout after layout may have moved the element, Exit when
// the element is removed from a presence group, and Unmount when it is
// gone. Animation callbacks run on the scheduler's Step goroutine.
type Component struct {
	el     Element
	kind   ElementKind
	config Config
	env    Env
	render *renderer

	mu        sync.Mutex
	props     Props
	values    map[string]*motion.Value[any]
	running   map[string]*animation.Controls
	scope     *gestures.Scope
	dragScope *gestures.Scope
	layoutFx  *layout.Animator
	mounted   bool
	exiting   bool
	hovered   bool
	tapped    bool
	focused   bool
	inView    bool
}

func newComponent(el Element, kind ElementKind, config Config, props Props, env Env) *Component {
	return &Component{
		el:      el,
		kind:    kind,
		config:  config,
		env:     env,
		render:  newRenderer(el, kind),
		props:   config.Merge(props),
		values:  make(map[string]*motion.Value[any]),
		running: make(map[string]*animation.Controls),
	}
}

// Element returns the host element.
func (c *Component) Element() Element {
	return c.el
}

// Kind returns whether the element is HTML or SVG.
func (c *Component) Kind() ElementKind {
	return c.kind
}

// Value returns the motion value for an animated key.
func (c *Component) Value(key string) (*motion.Value[any], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.values[key]
	return v, ok
}

// Keys returns the animated keys in sorted order.
func (c *Component) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	keys := make(Values, len(c.values))
	for k := range c.values {
		keys[k] = nil
	}
	return keys.Keys()
}

// Transform returns the transform currently written to the element.
func (c *Component) Transform() string {
	return c.render.Transform()
}

// Mount creates motion values, attaches gestures and runs the animate
// props.
func (c *Component) Mount() {
	c.mu.Lock()
	if c.mounted {
		c.mu.Unlock()
		return
	}
	c.mounted = true
	c.scope = gestures.NewScope()
	props := c.props
	c.mu.Unlock()

	c.syncValues(props)
	c.writeStatic(props)
	c.attachStates(props)
	c.attachDrag(props)
	c.attachLayout(props)
	c.MeasureLayout()

	if props.Animate != nil {
		c.run(slotAnimate, props.Animate.Keys(), props.OnAnimationComplete)
	}
}

// Update applies new props. Animate targets that changed start animating;
// new animated keys get motion values.
func (c *Component) Update(props Props) {
	c.mu.Lock()
	old := c.props
	c.props = c.config.Merge(props)
	next := c.props
	mounted := c.mounted
	c.mu.Unlock()
	if !mounted {
		return
	}

	c.syncValues(next)
	c.writeStatic(next)
	if old.Drag != next.Drag || old.DragConstraints != next.DragConstraints {
		c.attachDrag(next)
	}
	if !sameTargets(old.Animate, next.Animate) && next.Animate != nil {
		c.run(slotAnimate, next.Animate.Keys(), next.OnAnimationComplete)
	}
	c.MeasureLayout()
}

// Exit runs the exit props and calls done when they finish. Without exit
// props done runs immediately.
func (c *Component) Exit(done func()) {
	c.mu.Lock()
	if c.exiting {
		c.mu.Unlock()
		return
	}
	c.exiting = true
	exit := c.props.Exit
	c.mu.Unlock()

	if done == nil {
		done = func() {}
	}
	if len(exit) == 0 {
		done()
		return
	}
	c.runValues(slotExit, exit, exit.Keys(), done)
}

var _ presence.Member = (*Component)(nil)

// SetPresent connects the component to a presence group. Losing presence
// starts the exit animation; regaining it replays the animate props.
func (c *Component) SetPresent(present bool, onExitComplete func()) {
	if !present {
		c.Exit(onExitComplete)
		return
	}
	c.mu.Lock()
	wasExiting := c.exiting
	c.exiting = false
	animate := c.props.Animate
	c.mu.Unlock()
	if wasExiting && animate != nil {
		c.run(slotAnimate, animate.Keys(), nil)
	}
}

// Unmount stops every animation and releases listeners. Motion values keep
// their last state in the store.
func (c *Component) Unmount() {
	c.mu.Lock()
	if !c.mounted {
		c.mu.Unlock()
		return
	}
	c.mounted = false
	scope, dragScope := c.scope, c.dragScope
	c.scope, c.dragScope = nil, nil
	running := c.running
	c.running = make(map[string]*animation.Controls)
	values := c.values
	fx := c.layoutFx
	c.mu.Unlock()

	if dragScope != nil {
		dragScope.Close()
	}
	scope.Close()
	for _, ctrl := range running {
		ctrl.Stop()
	}
	if fx != nil {
		fx.Cancel()
		fx.Transform.Dispose()
	}
	for _, v := range values {
		v.Dispose()
	}
}

// MeasureLayout records the element's rectangle and plays a layout
// animation if it moved. With a pipeline the measurement is deferred to the
// next flush.
func (c *Component) MeasureLayout() {
	c.mu.Lock()
	fx := c.layoutFx
	c.mu.Unlock()
	if fx == nil {
		return
	}
	if c.env.Pipeline != nil {
		c.env.Pipeline.Schedule(fx, c.el)
		return
	}
	if _, err := fx.Measure(c.el.Bounds()); err != nil {
		errors.ReportError("widgets.MeasureLayout", errors.KindHost, err)
	}
}

// IsReducedMotion reports whether animations currently jump to their end.
func (c *Component) IsReducedMotion() bool {
	switch c.config.ReducedMotion {
	case ReducedMotionAlways:
		return true
	case ReducedMotionNever:
		return false
	}
	return c.env.Reduced.Enabled()
}

// syncValues creates motion values for animated keys that do not have one.
func (c *Component) syncValues(props Props) {
	for _, vals := range props.allValues() {
		for key, raw := range vals {
			if IsAnimatable(key, raw) {
				c.ensureValue(key, props)
			}
		}
	}
	if props.Drag != DragNone {
		c.ensureValue("x", props)
		c.ensureValue("y", props)
	}
}

func (c *Component) ensureValue(key string, props Props) *motion.Value[any] {
	c.mu.Lock()
	if v, ok := c.values[key]; ok {
		c.mu.Unlock()
		return v
	}
	v := motion.NewValue[any](c.env.Store, baseValue(key, props))
	c.values[key] = v
	c.mu.Unlock()

	v.OnChange(func(x any) { c.render.set(key, x) })
	c.render.set(key, v.GetAny())
	return v
}

// baseValue is the value a key starts from: its style, then its initial
// prop, then 1 for scales and 0 for everything else.
func baseValue(key string, props Props) any {
	if raw, ok := props.Style[key]; ok {
		if to, _, ok := resolveTarget(raw); ok {
			return to
		}
	}
	if to, _, ok := props.Initial.Resolve(key); ok {
		return to
	}
	if strings.HasPrefix(key, "scale") {
		return 1.0
	}
	return 0.0
}

func (c *Component) writeStatic(props Props) {
	c.mu.Lock()
	animated := make(map[string]bool, len(c.values))
	for k := range c.values {
		animated[k] = true
	}
	c.mu.Unlock()

	for key, v := range props.Style {
		if !animated[key] {
			c.el.SetStyle(CSSName(key), FormatStyle(key, v))
		}
	}
	for key, v := range props.Attrs {
		c.el.SetAttr(key, v)
	}
	switch {
	case props.Drag != DragNone:
		c.el.SetStyle("cursor", "grab")
	default:
		c.el.SetStyle("cursor", "auto")
	}
}

// desired layers every active state over the base value of key. Later
// layers win: animate, in view, hover, focus, tap.
func (c *Component) desired(key string) any {
	c.mu.Lock()
	props := c.props
	layers := []Values{props.Animate}
	if c.inView {
		layers = append(layers, props.WhileInView)
	}
	if c.hovered {
		layers = append(layers, props.WhileHover)
	}
	if c.focused {
		layers = append(layers, props.WhileFocus)
	}
	if c.tapped {
		layers = append(layers, props.WhileTap)
	}
	c.mu.Unlock()

	var out any = baseValue(key, props)
	for _, l := range layers {
		if raw, ok := l[key]; ok {
			out = raw
		}
	}
	return out
}

// run animates keys toward their layered targets.
func (c *Component) run(slot string, keys []string, onDone func()) {
	vals := make(Values, len(keys))
	for _, k := range keys {
		vals[k] = c.desired(k)
	}
	c.runValues(slot, vals, keys, onDone)
}

// runValues starts one animation per key and calls onDone once all of
// them have finished. An animation already running on a key is stopped
// first. With reduced motion every value jumps to its target.
func (c *Component) runValues(slot string, vals Values, keys []string, onDone func()) {
	// Keys missing from vals keep animating under the previous run, which
	// completes once they settle.
	group := animation.NewGroup(onDone)
	c.mu.Lock()
	props := c.props
	c.mu.Unlock()

	reduced := c.IsReducedMotion()
	var animated []string
	for _, key := range keys {
		if _, ok := c.Value(key); ok {
			animated = append(animated, key)
		}
	}

	for i, key := range animated {
		mv, _ := c.Value(key)
		to, tr, ok := vals.Resolve(key)
		if !ok {
			continue
		}
		if reduced {
			c.stopKey(key)
			mv.SetAny(to)
			continue
		}
		transition := props.Transition
		if tr != nil {
			transition = transition.Merge(*tr)
		}
		c.stopKey(key)
		ctrl, err := animation.Animate(c.env.Scheduler, animation.Options{
			From:       mv.GetAny(),
			To:         to,
			Transition: transition,
			Index:      i,
			Total:      len(animated),
			OnUpdate:   mv.SetAny,
		})
		if err != nil {
			errors.ReportKey("widgets."+slot, errors.KindConfig, key, err)
			mv.SetAny(to)
			continue
		}
		c.mu.Lock()
		c.running[key] = ctrl
		c.mu.Unlock()
		group.Track(ctrl)
	}
	group.Seal()
}

func (c *Component) stopKey(key string) {
	c.mu.Lock()
	ctrl := c.running[key]
	delete(c.running, key)
	c.mu.Unlock()
	if ctrl != nil {
		ctrl.Stop()
	}
}

// attachStates binds hover, tap, focus and in-view listeners.
func (c *Component) attachStates(props Props) {
	scope := c.scope
	toggle := func(flag *bool, on bool, slot string, pick func(Props) Values) {
		c.mu.Lock()
		if *flag == on {
			c.mu.Unlock()
			return
		}
		*flag = on
		vals := pick(c.props)
		c.mu.Unlock()
		if vals != nil {
			c.run(slot, vals.Keys(), nil)
		}
	}
	hover := func(p Props) Values { return p.WhileHover }
	tap := func(p Props) Values { return p.WhileTap }
	focus := func(p Props) Values { return p.WhileFocus }
	inView := func(p Props) Values { return p.WhileInView }

	scope.Bind(c.el, gestures.EventPointerEnter, func(gestures.Event) { toggle(&c.hovered, true, slotHover, hover) })
	scope.Bind(c.el, gestures.EventPointerLeave, func(gestures.Event) { toggle(&c.hovered, false, slotHover, hover) })
	scope.Bind(c.el, gestures.EventPointerDown, func(gestures.Event) { toggle(&c.tapped, true, slotTap, tap) })
	release := func(gestures.Event) { toggle(&c.tapped, false, slotTap, tap) }
	scope.Bind(c.env.Window, gestures.EventPointerUp, release)
	scope.Bind(c.env.Window, gestures.EventPointerCancel, release)
	scope.Bind(c.el, gestures.EventFocus, func(gestures.Event) { toggle(&c.focused, true, slotFocus, focus) })
	scope.Bind(c.el, gestures.EventBlur, func(gestures.Event) { toggle(&c.focused, false, slotFocus, focus) })

	if props.WhileInView != nil && c.env.Viewport != nil {
		tracker := &motion.InView{
			Once:   props.Viewport.Once,
			Margin: props.Viewport.Margin,
			OnChange: func(in bool) {
				toggle(&c.inView, in, slotInView, inView)
			},
		}
		tracker.Observe(scope, c.env.Window, c.el, c.env.Viewport)
	}
}

func (c *Component) attachLayout(props Props) {
	if props.Layout == LayoutNone {
		return
	}
	transform := motion.NewValue(c.env.Store, "")
	transform.OnChange(c.render.setLayout)
	fx := &layout.Animator{
		Scheduler: c.env.Scheduler,
		Group:     c.env.LayoutGroup,
		LayoutID:  props.LayoutID,
		Mode:      props.Layout,
		Transform: transform,
	}
	c.mu.Lock()
	c.layoutFx = fx
	c.mu.Unlock()
}

// attachDrag (re)binds the pan recognizer. Moves and releases are read
// from the window so the drag survives the pointer leaving the element.
func (c *Component) attachDrag(props Props) {
	c.mu.Lock()
	old := c.dragScope
	c.dragScope = nil
	mounted := c.mounted
	c.mu.Unlock()
	if old != nil {
		old.Close()
	}
	if !mounted || props.Drag == DragNone {
		return
	}

	scope := gestures.NewScope()
	pan := &gestures.Pan{
		Axis:        props.Drag.axis(),
		Constraints: props.DragConstraints,
	}
	pan.OnStart = func(ev gestures.PointerEvent, info gestures.PanInfo) {
		c.stopKey("x")
		c.stopKey("y")
		c.el.CapturePointer(ev.PointerID)
		c.el.SetStyle("cursor", "grabbing")
		if h := c.dragProps().OnDragStart; h != nil {
			h(ev, info)
		}
	}
	pan.OnMove = func(ev gestures.PointerEvent, info gestures.PanInfo) {
		c.setAxis("x", info.Offset.X, pan.Axis != gestures.AxisY)
		c.setAxis("y", info.Offset.Y, pan.Axis != gestures.AxisX)
		if h := c.dragProps().OnDrag; h != nil {
			h(ev, info)
		}
	}
	pan.OnEnd = func(ev gestures.PointerEvent, info gestures.PanInfo) {
		c.el.SetStyle("cursor", "grab")
		p := c.dragProps()
		if p.DragMomentum && !c.IsReducedMotion() {
			if pan.Axis != gestures.AxisY {
				c.momentum("x", info.Velocity.X, p)
			}
			if pan.Axis != gestures.AxisX {
				c.momentum("y", info.Velocity.Y, p)
			}
		}
		if p.OnDragEnd != nil {
			p.OnDragEnd(ev, info)
		}
	}
	pan.Attach(scope, c.el, c.env.Window, func() gestures.Point {
		return gestures.Point{X: c.number("x"), Y: c.number("y")}
	})

	c.mu.Lock()
	c.dragScope = scope
	c.mu.Unlock()
}

func (c *Component) dragProps() Props {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.props
}

func (c *Component) number(key string) float64 {
	v, ok := c.Value(key)
	if !ok {
		return 0
	}
	f, _ := animation.Float(v.GetAny())
	return f
}

func (c *Component) setAxis(key string, f float64, enabled bool) {
	if !enabled {
		return
	}
	if v, ok := c.Value(key); ok {
		v.SetAny(f)
	}
}

// momentum glides key with inertia from the release velocity, landing
// inside the drag constraints.
func (c *Component) momentum(key string, velocity float64, p Props) {
	mv, ok := c.Value(key)
	if !ok || velocity == 0 {
		return
	}
	lo, hi := bounds(p.DragConstraints, key)
	t := p.DragTransition
	t.Type = animation.TypeInertia
	modify := t.ModifyTarget
	t.ModifyTarget = func(target float64) float64 {
		if modify != nil {
			target = modify(target)
		}
		if lo != nil && target < *lo {
			target = *lo
		}
		if hi != nil && target > *hi {
			target = *hi
		}
		return target
	}
	ctrl, err := animation.Animate(c.env.Scheduler, animation.Options{
		From:       c.number(key),
		Velocity:   velocity,
		Transition: t,
		OnUpdate:   mv.SetAny,
	})
	if err != nil {
		errors.ReportKey("widgets.momentum", errors.KindConfig, key, err)
		return
	}
	c.mu.Lock()
	c.running[key] = ctrl
	c.mu.Unlock()
}

func bounds(cs *gestures.Constraints, key string) (lo, hi *float64) {
	if cs == nil {
		return nil, nil
	}
	if key == "x" {
		return cs.Left, cs.Right
	}
	return cs.Top, cs.Bottom
}
