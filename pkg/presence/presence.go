// Package presence keeps removed children rendered until their exit
// animation finishes.
package presence

import (
	"fmt"
	"sync"
)

// Mode controls how entering and exiting children overlap.
type Mode int

const (
	// ModeSync lets children enter while others are still exiting.
	ModeSync Mode = iota
	// ModeWait holds entering children back until every exit completes.
	ModeWait
	// ModePopLayout runs enter and exit together and flags exiting
	// children as popped so the host can take them out of the flow.
	ModePopLayout
)

func (m Mode) String() string {
	switch m {
	case ModeSync:
		return "sync"
	case ModeWait:
		return "wait"
	case ModePopLayout:
		return "popLayout"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts "sync", "wait" or "popLayout". Unknown strings map to
// ModeSync.
func ParseMode(s string) Mode {
	switch s {
	case "wait":
		return ModeWait
	case "popLayout":
		return ModePopLayout
	default:
		return ModeSync
	}
}

// Child is a keyed child element.
type Child struct {
	Key   string
	Value any
}

// Entry is one child as it should be rendered.
type Entry struct {
	Key   string
	Child Child
	// IsPresent is false while the child runs its exit animation.
	IsPresent bool
	// Popped is set on exiting children in ModePopLayout.
	Popped bool
	// SafeToRemove is set while the child is exiting. Hosts that animate
	// exits themselves call it once the animation ends.
	SafeToRemove func()
}

// Member is a rendered child that plays its own exit animation.
// *widgets.Component satisfies it.
type Member interface {
	// SetPresent(false, done) starts the exit and calls done when it ends.
	// SetPresent(true, nil) cancels an exit and re-enters.
	SetPresent(present bool, onExitComplete func())
}

// AnimatePresence tracks which children are rendered.
//
// Children removed by Update stay rendered with IsPresent false until
// ExitComplete is called with their key. A child that returns while it is
// exiting becomes present again. Members registered with Bind are told
// when to exit and report back through ExitComplete on their own.
type AnimatePresence struct {
	Mode Mode
	// OnExitComplete fires whenever the last exiting child is removed.
	OnExitComplete func()

	mu       sync.Mutex
	rendered []Entry
	exiting  map[string]bool
	// pending holds children withheld in ModeWait.
	pending []Child
	members map[string]Member
	// exits counts exit starts per key so a callback from an interrupted
	// exit cannot remove the child during a later one.
	exits map[string]int
}

// New creates a presence tracker.
func New(mode Mode) *AnimatePresence {
	return &AnimatePresence{
		Mode:    mode,
		exiting: make(map[string]bool),
		members: make(map[string]Member),
		exits:   make(map[string]int),
	}
}

// Bind attaches m to the child with key. A child that is already exiting
// starts its exit immediately. The binding is dropped when the child is
// removed.
func (p *AnimatePresence) Bind(key string, m Member) {
	p.mu.Lock()
	if p.members == nil {
		p.members = make(map[string]Member)
	}
	p.members[key] = m
	exiting := p.exiting[key]
	gen := p.exits[key]
	p.mu.Unlock()
	if exiting {
		m.SetPresent(false, p.safeToRemove(key, gen))
	}
}

// Unbind detaches the member bound to key.
func (p *AnimatePresence) Unbind(key string) {
	p.mu.Lock()
	delete(p.members, key)
	p.mu.Unlock()
}

func (p *AnimatePresence) safeToRemove(key string, gen int) func() {
	return func() {
		p.mu.Lock()
		current := p.exits[key] == gen
		p.mu.Unlock()
		if current {
			p.ExitComplete(key)
		}
	}
}

// Update reconciles the rendered list with the new set of children.
func (p *AnimatePresence) Update(children []Child) {
	p.mu.Lock()
	if p.exiting == nil {
		p.exiting = make(map[string]bool)
	}
	if p.exits == nil {
		p.exits = make(map[string]int)
	}
	next := make(map[string]Child, len(children))
	for _, c := range children {
		next[c.Key] = c
	}

	// Present children that disappeared start exiting; exiting children
	// that came back become present again.
	var leaving, returns []Member
	var leavingKeys []string
	var gens []int
	known := make(map[string]bool, len(p.rendered))
	for i := range p.rendered {
		e := &p.rendered[i]
		known[e.Key] = true
		if c, ok := next[e.Key]; ok {
			e.Child = c
			if p.exiting[e.Key] {
				delete(p.exiting, e.Key)
				e.IsPresent, e.Popped, e.SafeToRemove = true, false, nil
				if m := p.members[e.Key]; m != nil {
					returns = append(returns, m)
				}
			}
			continue
		}
		if !p.exiting[e.Key] {
			p.exiting[e.Key] = true
			p.exits[e.Key]++
			e.IsPresent = false
			e.Popped = p.Mode == ModePopLayout
			e.SafeToRemove = p.safeToRemove(e.Key, p.exits[e.Key])
			if m := p.members[e.Key]; m != nil {
				leaving = append(leaving, m)
				leavingKeys = append(leavingKeys, e.Key)
				gens = append(gens, p.exits[e.Key])
			}
		}
	}

	var entering []Child
	for _, c := range children {
		if !known[c.Key] {
			entering = append(entering, c)
		}
	}
	if p.Mode == ModeWait && len(p.exiting) > 0 {
		p.pending = entering
	} else {
		p.pending = nil
		for _, c := range entering {
			p.rendered = append(p.rendered, Entry{Key: c.Key, Child: c, IsPresent: true})
		}
	}
	p.mu.Unlock()

	// Members may finish synchronously and re-enter ExitComplete.
	for _, m := range returns {
		m.SetPresent(true, nil)
	}
	for i, m := range leaving {
		m.SetPresent(false, p.safeToRemove(leavingKeys[i], gens[i]))
	}
}

// ExitComplete removes the exiting child with key. Keys that are not
// exiting are ignored.
func (p *AnimatePresence) ExitComplete(key string) {
	p.mu.Lock()
	if !p.exiting[key] {
		p.mu.Unlock()
		return
	}
	delete(p.exiting, key)
	delete(p.members, key)
	out := p.rendered[:0]
	for _, e := range p.rendered {
		if e.Key != key {
			out = append(out, e)
		}
	}
	p.rendered = out
	drained := len(p.exiting) == 0
	if drained && len(p.pending) > 0 {
		for _, c := range p.pending {
			p.rendered = append(p.rendered, Entry{Key: c.Key, Child: c, IsPresent: true})
		}
		p.pending = nil
	}
	cb := p.OnExitComplete
	p.mu.Unlock()

	if drained && cb != nil {
		cb()
	}
}

// Rendered returns the children to render, in order.
func (p *AnimatePresence) Rendered() []Entry {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Entry(nil), p.rendered...)
}

// IsExiting reports whether key is running its exit animation.
func (p *AnimatePresence) IsExiting(key string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.exiting[key]
}
