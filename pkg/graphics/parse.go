package graphics

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/go-drift/dxmotion/pkg/errors"
)

// ColorPattern matches hex, rgb(a) and hsl(a) color literals embedded in a
// longer string. Named colors are only recognized by [ParseColor] on a whole
// string, never inside complex values.
var ColorPattern = regexp.MustCompile(`(?i)#(?:[0-9a-f]{6}|[0-9a-f]{3})\b|rgba?\(\s*-?[\d.]+%?\s*,\s*-?[\d.]+%?\s*,\s*-?[\d.]+%?\s*(?:,\s*-?[\d.]+%?\s*)?\)|hsla?\(\s*-?[\d.]+(?:deg)?\s*,\s*-?[\d.]+%?\s*,\s*-?[\d.]+%?\s*(?:,\s*-?[\d.]+%?\s*)?\)`)

// NumberPattern matches signed decimal numbers.
var NumberPattern = regexp.MustCompile(`-?\d*\.?\d+`)

var wholeColor = regexp.MustCompile(`^(?:` + ColorPattern.String() + `)$`)

// IsColor reports whether s is a single color literal or a CSS color name.
func IsColor(s string) bool {
	s = strings.TrimSpace(s)
	if wholeColor.MatchString(s) {
		return true
	}
	_, ok := namedColor(s)
	return ok
}

// ParseColor parses #rgb, #rrggbb, rgb(), rgba(), hsl(), hsla() and CSS
// color names into a Color.
func ParseColor(s string) (Color, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(in, "#"):
		c, err := colorful.Hex(in)
		if err != nil {
			return Color{}, &errors.ParseError{Input: s, Want: "color"}
		}
		return Color{R: c.R * maxByte, G: c.G * maxByte, B: c.B * maxByte, A: 1}.Rounded(), nil
	case strings.HasPrefix(in, "rgb"):
		args, ok := functionArgs(in)
		if !ok || (len(args) != 3 && len(args) != 4) {
			return Color{}, &errors.ParseError{Input: s, Want: "color"}
		}
		c := Color{A: 1}
		for i, ch := range []*float64{&c.R, &c.G, &c.B} {
			v, pct, ok := parseComponent(args[i])
			if !ok {
				return Color{}, &errors.ParseError{Input: s, Want: "color"}
			}
			if pct {
				v = v / 100 * maxByte
			}
			*ch = v
		}
		if len(args) == 4 {
			a, ok := parseAlpha(args[3])
			if !ok {
				return Color{}, &errors.ParseError{Input: s, Want: "color"}
			}
			c.A = a
		}
		return c, nil
	case strings.HasPrefix(in, "hsl"):
		args, ok := functionArgs(in)
		if !ok || (len(args) != 3 && len(args) != 4) {
			return Color{}, &errors.ParseError{Input: s, Want: "color"}
		}
		h, _, okH := parseComponent(strings.TrimSuffix(args[0], "deg"))
		sat, _, okS := parseComponent(args[1])
		l, _, okL := parseComponent(args[2])
		if !okH || !okS || !okL {
			return Color{}, &errors.ParseError{Input: s, Want: "color"}
		}
		hc := colorful.Hsl(h, sat/100, l/100).Clamped()
		c := Color{R: hc.R * maxByte, G: hc.G * maxByte, B: hc.B * maxByte, A: 1}.Rounded()
		if len(args) == 4 {
			a, ok := parseAlpha(args[3])
			if !ok {
				return Color{}, &errors.ParseError{Input: s, Want: "color"}
			}
			c.A = a
		}
		return c, nil
	}
	if c, ok := namedColor(in); ok {
		return c, nil
	}
	return Color{}, &errors.ParseError{Input: s, Want: "color"}
}

func namedColor(name string) (Color, bool) {
	name = strings.ToLower(name)
	if name == "transparent" {
		return ColorTransparent, true
	}
	c, ok := colornames.Map[name]
	if !ok {
		return Color{}, false
	}
	return Color{R: float64(c.R), G: float64(c.G), B: float64(c.B), A: float64(c.A) / maxByte}, true
}

func functionArgs(s string) ([]string, bool) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return nil, false
	}
	parts := strings.Split(s[open+1:len(s)-1], ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, true
}

func parseComponent(s string) (v float64, percent bool, ok bool) {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "%") {
		percent = true
		s = strings.TrimSuffix(s, "%")
	}
	v, err := strconv.ParseFloat(s, 64)
	return v, percent, err == nil
}

func parseAlpha(s string) (float64, bool) {
	v, pct, ok := parseComponent(s)
	if !ok {
		return 0, false
	}
	if pct {
		v /= 100
	}
	return clamp01(v), true
}
