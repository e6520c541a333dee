package widgets

import (
	"fmt"
	"sync"

	"github.com/go-drift/dxmotion/pkg/animation"
	"github.com/go-drift/dxmotion/pkg/errors"
	"github.com/go-drift/dxmotion/pkg/gestures"
	"github.com/go-drift/dxmotion/pkg/layout"
	"github.com/go-drift/dxmotion/pkg/motion"
)

// Env is the runtime a component runs in.
type Env struct {
	Scheduler *animation.Scheduler
	Store     *motion.Store
	// Reduced tracks the user's reduced motion preference. May be nil.
	Reduced *motion.ReducedMotion
	// LayoutGroup shares rectangles between components with a LayoutID.
	LayoutGroup *layout.Group
	// Pipeline batches layout measurement. When nil, components measure
	// immediately.
	Pipeline *layout.Pipeline
	// Window receives pointer moves during a drag and scroll events for
	// whileInView. Defaults to the element itself.
	Window gestures.EventTarget
	// Viewport bounds whileInView checks.
	Viewport motion.Bounded
}

var htmlTags = []string{
	"a", "article", "aside", "button", "div", "footer", "form", "h1", "h2",
	"h3", "h4", "h5", "h6", "header", "img", "input", "label", "li", "main",
	"nav", "ol", "p", "section", "span", "ul",
}

var svgTags = []string{
	"svg", "path", "circle", "rect", "line", "polyline", "polygon", "ellipse",
	"g", "text", "tspan", "textPath", "defs", "marker", "symbol", "clipPath",
	"mask", "foreignObject",
}

// Factory creates motion components for registered tags.
type Factory struct {
	Config Config

	mu   sync.RWMutex
	tags map[string]ElementKind
}

// NewFactory returns a factory with the common HTML and SVG tags
// registered.
func NewFactory(config Config) *Factory {
	f := &Factory{Config: config, tags: make(map[string]ElementKind)}
	for _, t := range htmlTags {
		f.tags[t] = KindHTML
	}
	for _, t := range svgTags {
		f.tags[t] = KindSVG
	}
	return f
}

// Register adds or replaces a tag.
func (f *Factory) Register(tag string, kind ElementKind) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tags[tag] = kind
}

// Kind returns the element kind registered for tag.
func (f *Factory) Kind(tag string) (ElementKind, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	k, ok := f.tags[tag]
	return k, ok
}

// New creates a component for el. The component is not mounted.
func (f *Factory) New(el Element, props Props, env Env) (*Component, error) {
	const op = "widgets.Factory.New"
	if el == nil {
		return nil, errors.New(op, errors.KindHost, errors.ErrNoTarget)
	}
	kind, ok := f.Kind(el.Tag())
	if !ok {
		return nil, errors.New(op, errors.KindConfig, fmt.Errorf("%w: %q", errors.ErrUnknownTag, el.Tag()))
	}
	if env.Scheduler == nil {
		env.Scheduler = animation.NewScheduler(nil)
	}
	if env.Store == nil {
		env.Store = motion.NewStore(env.Scheduler.Clock())
	}
	if env.Window == nil {
		env.Window = el
	}
	return newComponent(el, kind, f.Config, props, env), nil
}
