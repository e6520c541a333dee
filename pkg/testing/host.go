package testing

import (
	"sort"
	"sync"

	"github.com/go-drift/dxmotion/pkg/gestures"
	"github.com/go-drift/dxmotion/pkg/graphics"
	"github.com/go-drift/dxmotion/pkg/motion"
)

// FakeTarget is an in-memory event target.
type FakeTarget struct {
	mu        sync.Mutex
	nextID    int
	listeners map[string]map[int]func(gestures.Event)
}

// Listen registers fn for events named name.
func (t *FakeTarget) Listen(name string, fn func(gestures.Event)) (remove func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.listeners == nil {
		t.listeners = make(map[string]map[int]func(gestures.Event))
	}
	if t.listeners[name] == nil {
		t.listeners[name] = make(map[int]func(gestures.Event))
	}
	id := t.nextID
	t.nextID++
	t.listeners[name][id] = fn
	return func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		delete(t.listeners[name], id)
	}
}

// Dispatch delivers ev to every listener for ev.Name(), in registration
// order.
func (t *FakeTarget) Dispatch(ev gestures.Event) {
	t.mu.Lock()
	byID := t.listeners[ev.Name()]
	ids := make([]int, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]func(gestures.Event), len(ids))
	for i, id := range ids {
		fns[i] = byID[id]
	}
	t.mu.Unlock()
	for _, fn := range fns {
		fn(ev)
	}
}

// ListenerCount returns the number of listeners for name.
func (t *FakeTarget) ListenerCount(name string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.listeners[name])
}

// TotalListeners returns the number of listeners across all names.
func (t *FakeTarget) TotalListeners() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	for _, byID := range t.listeners {
		n += len(byID)
	}
	return n
}

// FakeElement records the styles and attributes written by a motion
// component.
type FakeElement struct {
	FakeTarget

	tag      string
	mu       sync.Mutex
	style    map[string]string
	attrs    map[string]string
	bounds   graphics.Rect
	captured []int64
}

// NewFakeElement creates an element with the given tag.
func NewFakeElement(tag string) *FakeElement {
	return &FakeElement{
		tag:   tag,
		style: make(map[string]string),
		attrs: make(map[string]string),
	}
}

func (e *FakeElement) Tag() string {
	return e.tag
}

func (e *FakeElement) SetStyle(key, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if value == "" {
		delete(e.style, key)
		return
	}
	e.style[key] = value
}

func (e *FakeElement) SetAttr(key, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if value == "" {
		delete(e.attrs, key)
		return
	}
	e.attrs[key] = value
}

// Style returns an inline style property.
func (e *FakeElement) Style(key string) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.style[key]
}

// Attr returns an attribute.
func (e *FakeElement) Attr(key string) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.attrs[key]
}

// Written returns a copy of every style and attribute currently set,
// attributes prefixed with "@".
func (e *FakeElement) Written() map[string]string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make(map[string]string, len(e.style)+len(e.attrs))
	for k, v := range e.style {
		out[k] = v
	}
	for k, v := range e.attrs {
		out["@"+k] = v
	}
	return out
}

func (e *FakeElement) Bounds() graphics.Rect {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.bounds
}

// SetBounds moves the element, as a host layout pass would.
func (e *FakeElement) SetBounds(r graphics.Rect) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.bounds = r
}

func (e *FakeElement) CapturePointer(pointerID int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.captured = append(e.captured, pointerID)
}

// Captured returns the pointer ids captured so far.
func (e *FakeElement) Captured() []int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]int64(nil), e.captured...)
}

// FakeScroller is a scroll container with settable metrics. ScrollTo and
// ScrollBy update the position and dispatch a scroll event.
type FakeScroller struct {
	FakeTarget

	mu      sync.Mutex
	metrics motion.ScrollMetrics
}

// NewFakeScroller creates a scroller over content of the given size.
func NewFakeScroller(clientWidth, clientHeight, contentWidth, contentHeight float64) *FakeScroller {
	return &FakeScroller{metrics: motion.ScrollMetrics{
		ClientWidth:  clientWidth,
		ClientHeight: clientHeight,
		ScrollWidth:  contentWidth,
		ScrollHeight: contentHeight,
	}}
}

func (s *FakeScroller) Metrics() motion.ScrollMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.metrics
}

func (s *FakeScroller) ScrollTo(x, y float64) {
	s.mu.Lock()
	s.metrics.X, s.metrics.Y = x, y
	s.mu.Unlock()
	s.Dispatch(gestures.ScrollEvent{})
}

func (s *FakeScroller) ScrollBy(dx, dy float64) {
	s.mu.Lock()
	s.metrics.X += dx
	s.metrics.Y += dy
	s.mu.Unlock()
	s.Dispatch(gestures.ScrollEvent{})
}

// Bounds returns the client rectangle at the origin.
func (s *FakeScroller) Bounds() graphics.Rect {
	m := s.Metrics()
	return graphics.Rect{Width: m.ClientWidth, Height: m.ClientHeight}
}

// FakeMediaQuery is a media query whose result tests flip with Set.
type FakeMediaQuery struct {
	mu        sync.Mutex
	matches   bool
	nextID    int
	listeners map[int]func(bool)
}

// NewFakeMediaQuery creates a query with the given initial result.
func NewFakeMediaQuery(matches bool) *FakeMediaQuery {
	return &FakeMediaQuery{matches: matches, listeners: make(map[int]func(bool))}
}

func (q *FakeMediaQuery) Matches() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.matches
}

func (q *FakeMediaQuery) OnChange(fn func(bool)) (remove func()) {
	q.mu.Lock()
	defer q.mu.Unlock()
	id := q.nextID
	q.nextID++
	q.listeners[id] = fn
	return func() {
		q.mu.Lock()
		defer q.mu.Unlock()
		delete(q.listeners, id)
	}
}

// Set changes the result and notifies listeners if it changed.
func (q *FakeMediaQuery) Set(matches bool) {
	q.mu.Lock()
	if q.matches == matches {
		q.mu.Unlock()
		return
	}
	q.matches = matches
	fns := make([]func(bool), 0, len(q.listeners))
	for _, fn := range q.listeners {
		fns = append(fns, fn)
	}
	q.mu.Unlock()
	for _, fn := range fns {
		fn(matches)
	}
}

// Listeners returns the number of registered change listeners.
func (q *FakeMediaQuery) Listeners() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.listeners)
}

// MatchMedia returns a motion.MatchMedia resolving every query to q.
func (q *FakeMediaQuery) MatchMedia() motion.MatchMedia {
	return func(string) motion.MediaQuery { return q }
}

// FakeGamepadSource returns whatever controllers tests set on it.
type FakeGamepadSource struct {
	mu   sync.Mutex
	pads []gestures.Gamepad
}

func (s *FakeGamepadSource) Gamepads() []gestures.Gamepad {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]gestures.Gamepad(nil), s.pads...)
}

// Set replaces the controllers.
func (s *FakeGamepadSource) Set(pads ...gestures.Gamepad) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pads = pads
}
