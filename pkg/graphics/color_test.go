package graphics

import (
	"testing"

	"github.com/go-drift/dxmotion/pkg/errors"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"#ff0000", "rgba(255, 0, 0, 1)"},
		{"#F00", "rgba(255, 0, 0, 1)"},
		{"rgb(0, 128, 255)", "rgba(0, 128, 255, 1)"},
		{"rgba(10,20,30,0.5)", "rgba(10, 20, 30, 0.5)"},
		{"hsl(120, 100%, 50%)", "rgba(0, 255, 0, 1)"},
		{"hsla(0, 100%, 50%, 0.25)", "rgba(255, 0, 0, 0.25)"},
		{"purple", "rgba(128, 0, 128, 1)"},
		{"transparent", "rgba(0, 0, 0, 0)"},
	}
	for _, tt := range tests {
		c, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q) error: %v", tt.in, err)
			continue
		}
		if got := c.String(); got != tt.want {
			t.Errorf("ParseColor(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, in := range []string{"", "#12", "#zzzzzz", "rgb(1,2)", "hsl(a,b,c)", "notacolor"} {
		_, err := ParseColor(in)
		if err == nil {
			t.Errorf("ParseColor(%q) expected error", in)
			continue
		}
		if !errors.Is(err, errors.ErrInvalidValue) {
			t.Errorf("ParseColor(%q) error %v should be ErrInvalidValue", in, err)
		}
	}
}

func TestIsColor(t *testing.T) {
	for _, in := range []string{"#abc", "rgb(1, 2, 3)", "hsl(10, 20%, 30%)", "red"} {
		if !IsColor(in) {
			t.Errorf("IsColor(%q) = false, want true", in)
		}
	}
	for _, in := range []string{"10px", "#abc 10px", "translateX(4px)"} {
		if IsColor(in) {
			t.Errorf("IsColor(%q) = true, want false", in)
		}
	}
}

func TestColorRoundedClampsChannels(t *testing.T) {
	c := Color{R: 300.4, G: -5, B: 127.5, A: 1.5}.Rounded()
	if c.R != 255 || c.G != 0 || c.B != 128 || c.A != 1 {
		t.Errorf("Rounded() = %+v", c)
	}
}

func TestColorPatternFindsEmbeddedColors(t *testing.T) {
	s := "linear-gradient(90deg, #fff 0%, rgba(0, 0, 0, 0.5) 100%)"
	got := ColorPattern.FindAllString(s, -1)
	if len(got) != 2 || got[0] != "#fff" || got[1] != "rgba(0, 0, 0, 0.5)" {
		t.Errorf("FindAllString = %q", got)
	}
}

func TestGeometry(t *testing.T) {
	if d := Distance(Point{0, 0}, Point{3, 4}); d != 5 {
		t.Errorf("Distance = %v, want 5", d)
	}
	if a := Angle(Point{0, 0}, Point{0, 10}); a != 90 {
		t.Errorf("Angle = %v, want 90", a)
	}
	if m := Midpoint(Point{0, 0}, Point{10, 20}); m != (Point{5, 10}) {
		t.Errorf("Midpoint = %v", m)
	}
	r := Rect{Left: 0, Top: 0, Width: 10, Height: 10}
	if !r.Intersects(Rect{Left: 5, Top: 5, Width: 10, Height: 10}) {
		t.Error("expected intersect")
	}
	if r.Intersects(Rect{Left: 10, Top: 0, Width: 5, Height: 5}) {
		t.Error("touching edges should not intersect")
	}
}
