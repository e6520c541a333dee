package animation

import "sync"

// Group waits for a set of animations to finish.
//
// Members are counted as they are added; onDone fires exactly once, after
// the group is sealed and every member has reached a terminal state. An
// empty sealed group fires immediately.
type Group struct {
	mu      sync.Mutex
	pending int
	sealed  bool
	fired   bool
	members []*Controls
	onDone  func()
	done    chan struct{}
}

// NewGroup creates a group that calls onDone when every member finishes.
func NewGroup(onDone func()) *Group {
	return &Group{onDone: onDone, done: make(chan struct{})}
}

// Add registers one pending unit of work that is not an animation.
// The returned function marks it finished; extra calls are ignored.
func (g *Group) Add() (finished func()) {
	g.mu.Lock()
	g.pending++
	g.mu.Unlock()
	var once sync.Once
	return func() {
		once.Do(g.release)
	}
}

// Track adds c to the group. A nil or already finished animation counts
// as done.
func (g *Group) Track(c *Controls) {
	if c == nil {
		return
	}
	finished := g.Add()
	g.mu.Lock()
	g.members = append(g.members, c)
	g.mu.Unlock()
	if c.Status().Terminal() {
		finished()
		return
	}
	c.AddStatusListener(func(s Status) {
		if s.Terminal() {
			finished()
		}
	})
	// The animation may have finished between the two checks above.
	if c.Status().Terminal() {
		finished()
	}
}

// Seal marks the group complete: no more members will be added.
func (g *Group) Seal() {
	g.mu.Lock()
	g.sealed = true
	g.mu.Unlock()
	g.maybeFire()
}

// Cancel stops every member. onDone still fires once all of them have
// stopped and the group is sealed.
func (g *Group) Cancel() {
	g.mu.Lock()
	members := append([]*Controls(nil), g.members...)
	g.mu.Unlock()
	for _, c := range members {
		c.Stop()
	}
}

// Done is closed when onDone has fired.
func (g *Group) Done() <-chan struct{} {
	return g.done
}

// Pending returns the number of unfinished members.
func (g *Group) Pending() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pending
}

func (g *Group) release() {
	g.mu.Lock()
	g.pending--
	g.mu.Unlock()
	g.maybeFire()
}

func (g *Group) maybeFire() {
	g.mu.Lock()
	if g.fired || !g.sealed || g.pending > 0 {
		g.mu.Unlock()
		return
	}
	g.fired = true
	close(g.done)
	g.mu.Unlock()
	if g.onDone != nil {
		g.onDone()
	}
}
