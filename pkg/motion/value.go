package motion

import (
	"sync"

	"github.com/google/uuid"
)

// Value is a typed handle onto one key of a [Store].
type Value[T any] struct {
	store   *Store
	id      string
	initial T

	mu       sync.Mutex
	cleanups []func()
}

// NewValue registers a fresh key holding initial.
func NewValue[T any](store *Store, initial T) *Value[T] {
	v := &Value[T]{store: store, id: "motion-" + uuid.NewString(), initial: initial}
	store.Set(v.id, initial)
	return v
}

// ID returns the store key.
func (v *Value[T]) ID() string {
	return v.id
}

// Store returns the store the value lives in.
func (v *Value[T]) Store() *Store {
	return v.store
}

// Get returns the live value. If the stored value is not a T, the initial
// value is returned.
func (v *Value[T]) Get() T {
	e, ok := v.store.Get(v.id)
	if !ok {
		return v.initial
	}
	if t, ok := e.Value.(T); ok {
		return t
	}
	return v.initial
}

// GetAny returns the live value without a type assertion.
func (v *Value[T]) GetAny() any {
	e, ok := v.store.Get(v.id)
	if !ok {
		return v.initial
	}
	return e.Value
}

// Set writes a new value.
func (v *Value[T]) Set(next T) {
	v.store.Set(v.id, next)
}

// SetAny writes a value of any type. Listeners registered through OnChange
// only see values that are a T.
func (v *Value[T]) SetAny(next any) {
	v.store.Set(v.id, next)
}

// Velocity returns the live velocity in units per second.
func (v *Value[T]) Velocity() float64 {
	e, _ := v.store.Get(v.id)
	return e.Velocity
}

// OnChange registers fn for value changes. The listener is also removed by
// Dispose.
func (v *Value[T]) OnChange(fn func(T)) func() {
	unsub := v.store.Subscribe(v.id, func(x any) {
		if t, ok := x.(T); ok {
			fn(t)
		}
	})
	var once sync.Once
	remove := func() { once.Do(unsub) }
	v.addCleanup(remove)
	return remove
}

func (v *Value[T]) addCleanup(fn func()) {
	v.mu.Lock()
	v.cleanups = append(v.cleanups, fn)
	v.mu.Unlock()
}

// Dispose removes every listener registered through this handle and any
// subscription a derived value holds on its source. The store entry itself
// is kept.
func (v *Value[T]) Dispose() {
	v.mu.Lock()
	cleanups := v.cleanups
	v.cleanups = nil
	v.mu.Unlock()
	for _, fn := range cleanups {
		fn()
	}
}
