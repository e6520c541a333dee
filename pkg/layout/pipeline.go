package layout

import (
	"sync"

	"github.com/go-drift/dxmotion/pkg/errors"
)

// Measurer reports an element's current rectangle.
type Measurer interface {
	Bounds() Rect
}

type scheduled struct {
	animator *Animator
	el       Measurer
}

// Pipeline batches layout measurement for a frame.
//
// Animators whose element may have moved are scheduled during the frame.
// Flush then reads every element's rectangle before any transform is
// applied, in scheduling order, so measurements are never polluted by a
// sibling's in-progress FLIP.
type Pipeline struct {
	mu       sync.Mutex
	dirty    []scheduled
	dirtySet map[*Animator]bool
}

// Schedule marks a as needing measurement of el on the next Flush.
// Scheduling the same animator twice in a frame is a no-op.
func (p *Pipeline) Schedule(a *Animator, el Measurer) {
	if a == nil || el == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.dirtySet == nil {
		p.dirtySet = make(map[*Animator]bool)
	}
	if p.dirtySet[a] {
		return
	}
	p.dirtySet[a] = true
	p.dirty = append(p.dirty, scheduled{animator: a, el: el})
}

// NeedsFlush reports whether any animator is scheduled.
func (p *Pipeline) NeedsFlush() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.dirty) > 0
}

// Flush measures every scheduled element, then starts their animations.
// Errors are reported through the error handler and do not stop the batch.
func (p *Pipeline) Flush() {
	p.mu.Lock()
	dirty := p.dirty
	p.dirty = nil
	p.dirtySet = nil
	p.mu.Unlock()

	rects := make([]Rect, len(dirty))
	for i, s := range dirty {
		rects[i] = s.el.Bounds()
	}
	for i, s := range dirty {
		if _, err := s.animator.Measure(rects[i]); err != nil {
			errors.ReportError("layout.Flush", errors.KindHost, err)
		}
	}
}
