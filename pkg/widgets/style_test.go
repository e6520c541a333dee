package widgets

import (
	"math"
	"testing"

	"github.com/go-drift/dxmotion/pkg/gestures"
	"github.com/go-drift/dxmotion/pkg/graphics"
)

func TestCSSName(t *testing.T) {
	tests := map[string]string{
		"opacity":         "opacity",
		"backgroundColor": "background-color",
		"borderTopWidth":  "border-top-width",
		"--accentColor":   "--accentColor",
	}
	for in, want := range tests {
		if got := CSSName(in); got != want {
			t.Errorf("CSSName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatStyle(t *testing.T) {
	tests := []struct {
		key  string
		v    any
		want string
	}{
		{"width", 12.5, "12.5px"},
		{"opacity", 0.5, "0.5"},
		{"zIndex", 3, "3"},
		{"--progress", 0.25, "0.25"},
		{"color", "red", "red"},
		{"color", graphics.Color{R: 255, A: 0.12345}, "rgba(255, 0, 0, 0.123)"},
		{"width", nil, ""},
		{"width", struct{}{}, ""},
		{"width", math.Inf(1), ""},
		{"opacity", math.NaN(), ""},
		{"--progress", float32(math.Inf(-1)), ""},
	}
	for _, tt := range tests {
		if got := FormatStyle(tt.key, tt.v); got != tt.want {
			t.Errorf("FormatStyle(%q, %v) = %q, want %q", tt.key, tt.v, got, tt.want)
		}
	}
}

func TestTransformOrder(t *testing.T) {
	r := newRenderer(nopElement{}, KindHTML)
	r.set("rotate", 45.0)
	r.set("scale", 1.0)
	r.set("y", "50%")
	r.set("x", 10.0)
	if got, want := r.Transform(), "translateX(10px) translateY(50%) rotate(45deg)"; got != want {
		t.Errorf("Transform = %q, want %q", got, want)
	}
	r.set("z", math.Inf(1))
	r.set("skew", math.NaN())
	r.setLayout("translate(1px, 2px) scale(1, 1)")
	if got, want := r.Transform(), "translate(1px, 2px) scale(1, 1) translateX(10px) translateY(50%) rotate(45deg)"; got != want {
		t.Errorf("Transform = %q, want %q", got, want)
	}
}

func TestIsAnimatable(t *testing.T) {
	tests := []struct {
		key  string
		v    any
		want bool
	}{
		{"opacity", 1, true},
		{"color", "#fff", true},
		{"width", "calc(100% - 10px)", true},
		{"display", "block", false},
		{"--flag", "on", true},
		{"x", []any{0.0, 50.0}, true},
		{"x", []float64{}, false},
		{"x", Target{To: 5.0}, true},
		{"x", math.NaN(), false},
		{"opacity", math.Inf(1), false},
		{"x", []any{0.0, math.Inf(-1)}, false},
		{"x", "Inf", false},
	}
	for _, tt := range tests {
		if got := IsAnimatable(tt.key, tt.v); got != tt.want {
			t.Errorf("IsAnimatable(%q, %v) = %v, want %v", tt.key, tt.v, got, tt.want)
		}
	}
}

type nopElement struct{}

func (nopElement) Listen(string, func(gestures.Event)) func() { return func() {} }
func (nopElement) Tag() string                               { return "div" }
func (nopElement) SetStyle(string, string)                   {}
func (nopElement) SetAttr(string, string)                    {}
func (nopElement) Bounds() graphics.Rect                     { return graphics.Rect{} }
func (nopElement) CapturePointer(int64)                      {}
