package widgets

import (
	"math"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/go-drift/dxmotion/pkg/graphics"
	"github.com/go-drift/dxmotion/pkg/layout"
)

type transformPart struct {
	key, fn, unit string
}

// transformParts lists the shorthand transform keys in the order they are
// combined into the transform property.
var transformParts = []transformPart{
	{"x", "translateX", "px"},
	{"y", "translateY", "px"},
	{"z", "translateZ", "px"},
	{"scale", "scale", ""},
	{"scaleX", "scaleX", ""},
	{"scaleY", "scaleY", ""},
	{"rotate", "rotate", "deg"},
	{"rotateX", "rotateX", "deg"},
	{"rotateY", "rotateY", "deg"},
	{"rotateZ", "rotateZ", "deg"},
	{"skew", "skew", "deg"},
	{"skewX", "skewX", "deg"},
	{"skewY", "skewY", "deg"},
}

var transformKeys = func() map[string]bool {
	m := make(map[string]bool, len(transformParts))
	for _, p := range transformParts {
		m[p.key] = true
	}
	return m
}()

// IsTransformKey reports whether key is folded into the transform property.
func IsTransformKey(key string) bool {
	return transformKeys[key]
}

// unitless style properties take bare numbers.
var unitless = map[string]bool{
	"opacity":       true,
	"zIndex":        true,
	"fontWeight":    true,
	"lineHeight":    true,
	"flex":          true,
	"flexGrow":      true,
	"flexShrink":    true,
	"order":         true,
	"zoom":          true,
	"fillOpacity":   true,
	"strokeOpacity": true,
	"pathLength":    true,
	"columnCount":   true,
}

// svgAttrs are rendered as attributes on SVG elements.
var svgAttrs = map[string]string{
	"cx":               "cx",
	"cy":               "cy",
	"r":                "r",
	"rx":               "rx",
	"ry":               "ry",
	"x1":               "x1",
	"y1":               "y1",
	"x2":               "x2",
	"y2":               "y2",
	"d":                "d",
	"points":           "points",
	"pathLength":       "pathLength",
	"strokeWidth":      "stroke-width",
	"strokeDashoffset": "stroke-dashoffset",
	"strokeDasharray":  "stroke-dasharray",
}

// CSSName converts a camelCase style key to its CSS property name.
// Custom properties are returned unchanged.
func CSSName(key string) string {
	if strings.HasPrefix(key, "--") {
		return key
	}
	var b strings.Builder
	for i, r := range key {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatStyle renders a style value. Numbers gain a px unit unless the
// property is unitless or custom. NaN and infinities render as "", which
// clears the property.
func FormatStyle(key string, v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case graphics.Color:
		return t.Rounded().String()
	}
	if f, ok := toFloat(v); ok {
		s := strconv.FormatFloat(f, 'f', -1, 64)
		if strings.HasPrefix(key, "--") || unitless[key] {
			return s
		}
		return s + "px"
	}
	return ""
}

func formatTransformPart(p transformPart, v any) string {
	if f, ok := toFloat(v); ok {
		return p.fn + "(" + strconv.FormatFloat(f, 'f', -1, 64) + p.unit + ")"
	}
	if s, ok := v.(string); ok && s != "" {
		return p.fn + "(" + s + ")"
	}
	return ""
}

// toFloat converts Go numbers. NaN and infinities are not numbers here, so
// they never reach a style or attribute.
func toFloat(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case int32:
		f = float64(n)
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// renderer writes motion values onto an element.
type renderer struct {
	mu     sync.Mutex
	el     Element
	kind   ElementKind
	values map[string]any
	// layout is the FLIP transform, applied before the motion transform.
	layout string
}

func newRenderer(el Element, kind ElementKind) *renderer {
	return &renderer{el: el, kind: kind, values: make(map[string]any)}
}

// set records v for key and writes the affected property.
func (r *renderer) set(key string, v any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = v
	if IsTransformKey(key) {
		r.writeTransform()
		return
	}
	if r.kind == KindSVG {
		if attr, ok := svgAttrs[key]; ok {
			r.el.SetAttr(attr, attrValue(v))
			return
		}
	}
	r.el.SetStyle(CSSName(key), FormatStyle(key, v))
}

func (r *renderer) setLayout(transform string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.layout = transform
	if transform == "" {
		r.el.SetStyle("transform-origin", "")
	} else {
		r.el.SetStyle("transform-origin", layout.TransformOrigin)
	}
	r.writeTransform()
}

// Transform returns the combined transform property.
func (r *renderer) Transform() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.transform()
}

func (r *renderer) transform() string {
	parts := make([]string, 0, len(transformParts)+1)
	if r.layout != "" {
		parts = append(parts, r.layout)
	}
	for _, p := range transformParts {
		v, ok := r.values[p.key]
		if !ok || isIdentity(p, v) {
			continue
		}
		if s := formatTransformPart(p, v); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

func (r *renderer) writeTransform() {
	t := r.transform()
	if t == "" {
		t = "none"
	}
	r.el.SetStyle("transform", t)
}

func isIdentity(p transformPart, v any) bool {
	f, ok := toFloat(v)
	if !ok {
		return false
	}
	if strings.HasPrefix(p.key, "scale") {
		return f == 1
	}
	return f == 0
}

func attrValue(v any) string {
	if f, ok := toFloat(v); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return FormatStyle("", v)
}
