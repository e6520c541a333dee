package widgets

import (
	"fmt"
	"sync"

	"github.com/go-drift/dxmotion/pkg/layout"
	"github.com/go-drift/dxmotion/pkg/motion"
)

// Move returns a copy of values with the element at from moved to index
// to. Out of range indexes return an unchanged copy.
func Move[T any](values []T, from, to int) []T {
	out := append([]T(nil), values...)
	if from < 0 || from >= len(out) || to < 0 || to >= len(out) || from == to {
		return out
	}
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]T{moved}, out[to:]...)...)
	return out
}

// ReorderGroup tracks a list of draggable items and their vertical drag
// offsets. Items share a layout group so a reorder animates each item into
// its new slot.
type ReorderGroup[T comparable] struct {
	// OnReorder receives the new order.
	OnReorder func([]T)

	mu        sync.Mutex
	values    []T
	positions map[T]*motion.Value[float64]
	layout    *layout.Group
}

// NewReorderGroup creates a group over values.
func NewReorderGroup[T comparable](values []T, onReorder func([]T)) *ReorderGroup[T] {
	return &ReorderGroup[T]{
		OnReorder: onReorder,
		values:    append([]T(nil), values...),
		positions: make(map[T]*motion.Value[float64]),
		layout:    layout.NewGroup(),
	}
}

// LayoutGroup returns the group items should pass as Env.LayoutGroup.
func (g *ReorderGroup[T]) LayoutGroup() *layout.Group {
	return g.layout
}

// Values returns the current order.
func (g *ReorderGroup[T]) Values() []T {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]T(nil), g.values...)
}

// SetValues replaces the order without notifying OnReorder.
func (g *ReorderGroup[T]) SetValues(values []T) {
	g.mu.Lock()
	g.values = append([]T(nil), values...)
	g.mu.Unlock()
}

// Register records an item's y offset.
func (g *ReorderGroup[T]) Register(value T, y *motion.Value[float64]) {
	g.mu.Lock()
	g.positions[value] = y
	g.mu.Unlock()
}

// Unregister forgets an item.
func (g *ReorderGroup[T]) Unregister(value T) {
	g.mu.Lock()
	delete(g.positions, value)
	g.mu.Unlock()
}

// Position returns the registered y offset of value.
func (g *ReorderGroup[T]) Position(value T) (*motion.Value[float64], bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	y, ok := g.positions[value]
	return y, ok
}

// Len returns the number of registered items.
func (g *ReorderGroup[T]) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.positions)
}

// Reorder moves the item at from to index to and reports the new order.
func (g *ReorderGroup[T]) Reorder(from, to int) []T {
	g.mu.Lock()
	g.values = Move(g.values, from, to)
	out := append([]T(nil), g.values...)
	cb := g.OnReorder
	g.mu.Unlock()
	if cb != nil {
		cb(out)
	}
	return out
}

// Settle moves value to the slot its drag offset points at, given a
// uniform item height. It returns the new index.
func (g *ReorderGroup[T]) Settle(value T, itemHeight float64) int {
	g.mu.Lock()
	from := -1
	for i, v := range g.values {
		if v == value {
			from = i
			break
		}
	}
	y := g.positions[value]
	n := len(g.values)
	g.mu.Unlock()
	if from < 0 || y == nil || itemHeight <= 0 {
		return from
	}
	to := from + int(roundHalfAway(y.Get()/itemHeight))
	to = max(0, min(n-1, to))
	if to != from {
		g.Reorder(from, to)
	}
	return to
}

// ItemProps returns props for a reorderable item: vertical drag, and a
// layout id derived from the value so the item animates to its new slot.
func (g *ReorderGroup[T]) ItemProps(value T, base Props) Props {
	base.Drag = DragY
	if base.Layout == LayoutNone {
		base.Layout = LayoutPosition
	}
	if base.LayoutID == "" {
		base.LayoutID = fmt.Sprint(value)
	}
	return base
}

func roundHalfAway(f float64) float64 {
	if f < 0 {
		return -float64(int(-f + 0.5))
	}
	return float64(int(f + 0.5))
}
