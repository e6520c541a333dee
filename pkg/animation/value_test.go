package animation

import (
	"math"
	"testing"

	"github.com/go-drift/dxmotion/pkg/graphics"
	"github.com/stretchr/testify/assert"
)

func TestParseValueKinds(t *testing.T) {
	tests := []struct {
		in   any
		want Kind
	}{
		{1.5, KindNumber},
		{42, KindNumber},
		{"42", KindNumber},
		{" -0.5 ", KindNumber},
		{"#ff0000", KindColor},
		{"red", KindColor},
		{graphics.RGB(1, 2, 3), KindColor},
		{"10px", KindComplex},
		{"0px 2px 4px rgba(0, 0, 0, 0.5)", KindComplex},
		{nil, KindInvalid},
		{true, KindInvalid},
		{math.NaN(), KindInvalid},
		{math.Inf(1), KindInvalid},
		{float32(math.Inf(-1)), KindInvalid},
		{"Inf", KindInvalid},
		{"NaN", KindInvalid},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseValue(tt.in).Kind, "ParseValue(%#v)", tt.in)
	}
}

func TestParseComplexSkipsDigitsInColors(t *testing.T) {
	c := ParseComplex("0px 2px 4px rgba(0, 0, 0, 0.5)")
	assert.Equal(t, 3, c.Numbers())
	assert.Equal(t, 1, c.Colors())
	assert.Equal(t, "0px 2px 4px rgba(0, 0, 0, 0.5)", c.String())
}

func TestInterpolatorNumbers(t *testing.T) {
	in := NewInterpolator(0, 100.0)
	assert.True(t, in.OK())
	assert.Equal(t, KindNumber, in.Kind())
	assert.Equal(t, 25.0, in.At(0.25))
	assert.Equal(t, 100.0, in.Delta())
}

func TestInterpolatorColors(t *testing.T) {
	in := NewInterpolator("#000000", "#ffffff")
	assert.True(t, in.OK())
	assert.Equal(t, "rgba(128, 128, 128, 1)", in.At(0.5))
	assert.Equal(t, "rgba(255, 255, 255, 1)", in.At(1))
}

func TestInterpolatorComplex(t *testing.T) {
	in := NewInterpolator("translateX(0px) rotate(0deg)", "translateX(100px) rotate(90deg)")
	assert.True(t, in.OK())
	assert.Equal(t, "translateX(50px) rotate(45deg)", in.At(0.5))
}

func TestInterpolatorPromotesNumber(t *testing.T) {
	in := NewInterpolator(0, "100px")
	assert.True(t, in.OK())
	assert.Equal(t, "50px", in.At(0.5))

	back := NewInterpolator("100px", 0)
	assert.True(t, back.OK())
	assert.Equal(t, "0px", back.At(1))
}

func TestInterpolatorIncompatibleSnapsToTarget(t *testing.T) {
	in := NewInterpolator(true, "auto")
	assert.False(t, in.OK())
	assert.Equal(t, "auto", in.At(0))
	assert.Equal(t, "auto", in.At(0.5))
}

func TestMixComplexMismatchedTokens(t *testing.T) {
	from := ParseComplex("10px")
	to := ParseComplex("20px 30px")
	assert.Equal(t, "15px 30px", MixComplex(from, to, 0.5).String())

	colors := MixComplex(ParseComplex("#000000"), ParseComplex("#ffffff #ff0000"), 0.5)
	assert.Equal(t, "rgba(128, 128, 128, 1) rgba(255, 0, 0, 1)", colors.String())
}

func TestFloat(t *testing.T) {
	f, ok := Float("12.5")
	assert.True(t, ok)
	assert.Equal(t, 12.5, f)

	_, ok = Float("12px")
	assert.False(t, ok)
}

func FuzzParseComplex(f *testing.F) {
	f.Add("0px 2px 4px rgba(0, 0, 0, 0.5)")
	f.Add("linear-gradient(#fff, hsl(120, 50%, 50%))")
	f.Add("-.5e")
	f.Fuzz(func(t *testing.T, s string) {
		c := ParseComplex(s)
		_ = MixComplex(c, ParseComplex(s+" 1"), 0.5).String()
		_ = NewInterpolator(s, 1).At(0.5)
	})
}
