package gestures

import (
	"sync"
	"time"

	"github.com/go-drift/dxmotion/pkg/errors"
)

// Timers schedules delayed callbacks. *animation.Scheduler implements it.
type Timers interface {
	AfterFunc(d time.Duration, fn func()) (stop func() bool)
}

// Binding is one listener attached to a target.
type Binding struct {
	once   sync.Once
	remove func()
	name   string
}

// Bind attaches handler to target for events named name.
//
// A nil target or handler yields an inert binding. Panics raised by handler
// are reported through the error handler instead of reaching the host.
func Bind(target EventTarget, name string, handler func(Event)) *Binding {
	b := &Binding{name: name}
	if target == nil || handler == nil {
		return b
	}
	op := "gestures." + name
	b.remove = target.Listen(name, func(ev Event) {
		defer errors.Recover(op)
		handler(ev)
	})
	return b
}

// Name returns the event name the binding listens for.
func (b *Binding) Name() string {
	return b.name
}

// Release removes the listener. Extra calls are ignored.
func (b *Binding) Release() {
	if b == nil {
		return
	}
	b.once.Do(func() {
		if b.remove != nil {
			b.remove()
		}
	})
}

// Scope owns a set of bindings and cleanup functions and releases all of
// them on Close.
type Scope struct {
	mu       sync.Mutex
	closed   bool
	bindings []*Binding
	keyed    map[string]*Binding
	cleanups []func()
}

// NewScope creates an empty scope.
func NewScope() *Scope {
	return &Scope{keyed: make(map[string]*Binding)}
}

// Bind attaches handler to target for the lifetime of the scope.
func (s *Scope) Bind(target EventTarget, name string, handler func(Event)) *Binding {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return &Binding{name: name}
	}
	s.mu.Unlock()

	b := Bind(target, name, handler)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		b.Release()
		return b
	}
	s.bindings = append(s.bindings, b)
	return b
}

// Rebind replaces the binding registered under key. The previous listener
// is released before the new one is attached.
func (s *Scope) Rebind(key string, target EventTarget, name string, handler func(Event)) *Binding {
	s.mu.Lock()
	prev := s.keyed[key]
	delete(s.keyed, key)
	closed := s.closed
	s.mu.Unlock()
	prev.Release()
	if closed {
		return &Binding{name: name}
	}

	b := Bind(target, name, handler)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		b.Release()
		return b
	}
	s.keyed[key] = b
	return b
}

// Defer registers fn to run when the scope closes. If the scope is already
// closed fn runs immediately.
func (s *Scope) Defer(fn func()) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		fn()
		return
	}
	s.cleanups = append(s.cleanups, fn)
	s.mu.Unlock()
}

// Len returns the number of live bindings.
func (s *Scope) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bindings) + len(s.keyed)
}

// Close releases every binding and runs cleanups in reverse order.
func (s *Scope) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	bindings := s.bindings
	keyed := s.keyed
	cleanups := s.cleanups
	s.bindings, s.keyed, s.cleanups = nil, make(map[string]*Binding), nil
	s.mu.Unlock()

	for _, b := range bindings {
		b.Release()
	}
	for _, b := range keyed {
		b.Release()
	}
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
}
