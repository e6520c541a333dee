package widgets

import (
	"reflect"
	"sort"
	"strings"

	"github.com/go-drift/dxmotion/pkg/animation"
	"github.com/go-drift/dxmotion/pkg/graphics"
)

// Values maps property names to animation targets.
//
// A value may be a scalar (number, color or string with embedded numbers),
// a keyframe slice whose last element is the target, or a [Target] carrying
// its own transition.
type Values map[string]any

// Target is a value with a per-property transition.
type Target struct {
	To         any
	Transition animation.Transition
}

// Keys returns the property names in sorted order.
func (v Values) Keys() []string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Resolve returns the final target for key and its per-property
// transition, if any.
func (v Values) Resolve(key string) (any, *animation.Transition, bool) {
	raw, ok := v[key]
	if !ok {
		return nil, nil, false
	}
	return resolveTarget(raw)
}

func resolveTarget(raw any) (any, *animation.Transition, bool) {
	switch t := raw.(type) {
	case Target:
		to, _, ok := resolveTarget(t.To)
		tr := t.Transition
		return to, &tr, ok
	case *Target:
		if t == nil {
			return nil, nil, false
		}
		return resolveTarget(*t)
	case []any:
		if len(t) == 0 {
			return nil, nil, false
		}
		return t[len(t)-1], nil, true
	case nil:
		return nil, nil, false
	}
	rv := reflect.ValueOf(raw)
	if rv.Kind() == reflect.Slice {
		if rv.Len() == 0 {
			return nil, nil, false
		}
		return rv.Index(rv.Len() - 1).Interface(), nil, true
	}
	return raw, nil, true
}

// sameTargets reports whether a and b resolve to the same targets.
// Transitions are not compared.
func sameTargets(a, b Values) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		ta, _, oka := a.Resolve(k)
		tb, _, okb := b.Resolve(k)
		if oka != okb || !reflect.DeepEqual(ta, tb) {
			return false
		}
	}
	return true
}

// IsAnimatable reports whether key with value v becomes a motion value.
// CSS custom properties always animate; other keys animate when the value
// is a number or a string containing a number or color.
func IsAnimatable(key string, v any) bool {
	if strings.HasPrefix(key, "--") {
		return true
	}
	target, _, ok := resolveTarget(v)
	if !ok {
		return false
	}
	switch t := target.(type) {
	case string:
		return graphics.NumberPattern.MatchString(t) || graphics.ColorPattern.MatchString(t) || graphics.IsColor(t)
	case graphics.Color:
		return true
	}
	_, isNum := animation.Float(target)
	return isNum
}
