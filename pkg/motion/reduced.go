package motion

import "sync"

// ReducedMotionQuery is the media query for the user's reduced motion
// preference.
const ReducedMotionQuery = "(prefers-reduced-motion: reduce)"

// MediaQuery is a live host media query.
type MediaQuery interface {
	Matches() bool
	// OnChange registers fn for changes and returns a function removing it.
	OnChange(fn func(matches bool)) (remove func())
}

// MatchMedia resolves a media query string. Hosts without media queries
// pass nil.
type MatchMedia func(query string) MediaQuery

// ReducedMotion tracks the reduced motion preference.
type ReducedMotion struct {
	mu      sync.Mutex
	enabled bool
	remove  func()
}

// NewReducedMotion starts tracking through match. With a nil match, or a
// host returning no query, reduced motion is off.
func NewReducedMotion(match MatchMedia) *ReducedMotion {
	r := &ReducedMotion{}
	if match == nil {
		return r
	}
	q := match(ReducedMotionQuery)
	if q == nil {
		return r
	}
	r.enabled = q.Matches()
	r.remove = q.OnChange(func(matches bool) {
		r.mu.Lock()
		r.enabled = matches
		r.mu.Unlock()
	})
	return r
}

// Enabled reports whether animations should jump to their end state.
func (r *ReducedMotion) Enabled() bool {
	if r == nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.enabled
}

// Close stops tracking.
func (r *ReducedMotion) Close() {
	if r == nil {
		return
	}
	r.mu.Lock()
	remove := r.remove
	r.remove = nil
	r.mu.Unlock()
	if remove != nil {
		remove()
	}
}
