package layout

import (
	"sync"

	"github.com/google/uuid"

	"github.com/go-drift/dxmotion/pkg/graphics"
)

// Rect is a bounding box in viewport coordinates.
type Rect = graphics.Rect

// Group is a shared rectangle cache keyed by layout id.
type Group struct {
	id    string
	mu    sync.Mutex
	rects map[string]Rect
}

// NewGroup creates an empty group with a unique id.
func NewGroup() *Group {
	return &Group{
		id:    "layout-group-" + uuid.NewString(),
		rects: make(map[string]Rect),
	}
}

// ID returns the group id.
func (g *Group) ID() string {
	return g.id
}

// Rect returns the last rectangle recorded for layoutID.
func (g *Group) Rect(layoutID string) (Rect, bool) {
	if g == nil || layoutID == "" {
		return Rect{}, false
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	r, ok := g.rects[layoutID]
	return r, ok
}

// SetRect records the rectangle for layoutID.
func (g *Group) SetRect(layoutID string, r Rect) {
	if g == nil || layoutID == "" {
		return
	}
	g.mu.Lock()
	g.rects[layoutID] = r
	g.mu.Unlock()
}

// Forget removes layoutID from the cache.
func (g *Group) Forget(layoutID string) {
	if g == nil {
		return
	}
	g.mu.Lock()
	delete(g.rects, layoutID)
	g.mu.Unlock()
}

// Len returns the number of cached rectangles.
func (g *Group) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.rects)
}
