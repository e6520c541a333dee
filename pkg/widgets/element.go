package widgets

import (
	"github.com/go-drift/dxmotion/pkg/gestures"
	"github.com/go-drift/dxmotion/pkg/graphics"
)

// Element is the host node a motion component drives.
type Element interface {
	gestures.EventTarget
	// Tag returns the element name, such as "div" or "circle".
	Tag() string
	// SetStyle sets an inline style property. Keys are CSS property names
	// ("background-color", "--accent"). An empty value removes it.
	SetStyle(key, value string)
	// SetAttr sets an attribute. An empty value removes it.
	SetAttr(key, value string)
	// Bounds returns the element's rectangle in viewport coordinates.
	Bounds() graphics.Rect
	// CapturePointer routes the pointer's later events to this element.
	CapturePointer(pointerID int64)
}

// ElementKind distinguishes HTML from SVG elements.
type ElementKind int

const (
	KindHTML ElementKind = iota
	KindSVG
)

func (k ElementKind) String() string {
	if k == KindSVG {
		return "svg"
	}
	return "html"
}
