package motion

import (
	"reflect"
	"sync"
	"time"

	"github.com/go-drift/dxmotion/pkg/animation"
)

// minVelocityWindow bounds the divisor when two writes land on the same
// instant.
const minVelocityWindow = time.Millisecond

// Entry is the stored state of one motion value.
type Entry struct {
	Value any
	// Velocity is in units per second. It is 0 on the first write and
	// whenever either the previous or the new value is not a number.
	Velocity   float64
	LastUpdate time.Time
}

// Store is a keyed set of motion values.
//
// Writers race with last-writer-wins semantics: two animations driving the
// same key are not detected. Listeners run on the writer's goroutine after
// the store lock is released.
type Store struct {
	mu        sync.Mutex
	clock     animation.Clock
	entries   map[string]Entry
	listeners map[string]map[int]func(any)
	nextID    int
}

// NewStore creates a store that timestamps writes with clock. A nil clock
// uses the system clock.
func NewStore(clock animation.Clock) *Store {
	if clock == nil {
		clock = animation.SystemClock
	}
	return &Store{
		clock:     clock,
		entries:   make(map[string]Entry),
		listeners: make(map[string]map[int]func(any)),
	}
}

// Set writes v under key and notifies listeners when the value changed.
func (s *Store) Set(key string, v any) {
	now := s.clock.Now()

	s.mu.Lock()
	prev, existed := s.entries[key]
	elapsed := max(now.Sub(prev.LastUpdate), minVelocityWindow)
	var velocity float64
	if a, ok := number(prev.Value); ok && existed {
		if b, ok := number(v); ok {
			velocity = (b - a) / elapsed.Seconds()
		}
	}
	s.entries[key] = Entry{Value: v, Velocity: velocity, LastUpdate: now}
	changed := !existed || !same(prev.Value, v)
	var fns []func(any)
	if changed {
		for _, fn := range s.listeners[key] {
			fns = append(fns, fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(v)
	}
}

// Get returns the entry for key.
func (s *Store) Get(key string) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	return e, ok
}

// Subscribe registers fn to run whenever key's value changes.
// Returns an unsubscribe function.
func (s *Store) Subscribe(key string, fn func(any)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	if s.listeners[key] == nil {
		s.listeners[key] = make(map[int]func(any))
	}
	s.listeners[key][id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners[key], id)
		if len(s.listeners[key]) == 0 {
			delete(s.listeners, key)
		}
	}
}

// Len returns the number of keys ever written.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Listeners returns the number of listeners registered for key.
func (s *Store) Listeners(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.listeners[key])
}

// Clock returns the store's time source.
func (s *Store) Clock() animation.Clock {
	return s.clock
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	}
	return 0, false
}

// same reports identity equality without panicking on uncomparable values.
// Uncomparable values always count as changed.
func same(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
