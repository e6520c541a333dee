package animation

import (
	"strconv"
	"strings"

	"github.com/go-drift/dxmotion/pkg/graphics"
)

type slotKind int

const (
	slotNumber slotKind = iota
	slotColor
)

type slot struct {
	kind   slotKind
	number float64
	color  graphics.Color
}

// Complex is a string with embedded numbers and colors, such as
// "0px 2px 4px rgba(0, 0, 0, 0.5)" or a multi-stop gradient. It is kept as
// the literal text between tokens plus the parsed tokens themselves.
type Complex struct {
	// literals has len(slots)+1 entries; slot i sits between
	// literals[i] and literals[i+1].
	literals []string
	slots    []slot
}

// ParseComplex tokenizes s. Colors are found first and numbers are then
// searched only in the text between colors, so digits inside a color never
// count as numeric tokens.
func ParseComplex(s string) Complex {
	var c Complex
	var lit strings.Builder
	pos := 0
	for _, loc := range graphics.ColorPattern.FindAllStringIndex(s, -1) {
		c.scanNumbers(s[pos:loc[0]], &lit)
		col, err := graphics.ParseColor(s[loc[0]:loc[1]])
		if err != nil {
			lit.WriteString(s[loc[0]:loc[1]])
		} else {
			c.literals = append(c.literals, lit.String())
			lit.Reset()
			c.slots = append(c.slots, slot{kind: slotColor, color: col})
		}
		pos = loc[1]
	}
	c.scanNumbers(s[pos:], &lit)
	c.literals = append(c.literals, lit.String())
	return c
}

func (c *Complex) scanNumbers(s string, lit *strings.Builder) {
	pos := 0
	for _, loc := range graphics.NumberPattern.FindAllStringIndex(s, -1) {
		v, err := strconv.ParseFloat(s[loc[0]:loc[1]], 64)
		if err != nil {
			continue
		}
		lit.WriteString(s[pos:loc[0]])
		c.literals = append(c.literals, lit.String())
		lit.Reset()
		c.slots = append(c.slots, slot{kind: slotNumber, number: v})
		pos = loc[1]
	}
	lit.WriteString(s[pos:])
}

// Numbers returns how many numeric tokens the string holds.
func (c Complex) Numbers() int {
	return c.count(slotNumber)
}

// Colors returns how many color tokens the string holds.
func (c Complex) Colors() int {
	return c.count(slotColor)
}

func (c Complex) count(kind slotKind) int {
	n := 0
	for _, s := range c.slots {
		if s.kind == kind {
			n++
		}
	}
	return n
}

func (c Complex) tokens(kind slotKind) []slot {
	var out []slot
	for _, s := range c.slots {
		if s.kind == kind {
			out = append(out, s)
		}
	}
	return out
}

// String renders the value back to text. Colors are always emitted as rgba().
func (c Complex) String() string {
	var b strings.Builder
	for i, s := range c.slots {
		b.WriteString(c.literals[i])
		switch s.kind {
		case slotNumber:
			b.WriteString(formatNumber(s.number))
		case slotColor:
			b.WriteString(s.color.String())
		}
	}
	if len(c.literals) > 0 {
		b.WriteString(c.literals[len(c.literals)-1])
	}
	return b.String()
}

// MixComplex interpolates two complex values and renders the result using
// to's template.
//
// Numbers are paired with numbers and colors with colors by their index
// among tokens of the same kind, independently of each other. When one side
// has more tokens of a kind than the other, the unmatched tokens of to are
// emitted unchanged: the value snaps to its target for those positions.
func MixComplex(from, to Complex, p float64) Complex {
	fromNums := from.tokens(slotNumber)
	fromCols := from.tokens(slotColor)
	out := Complex{literals: to.literals, slots: make([]slot, len(to.slots))}
	ni, ci := 0, 0
	for i, s := range to.slots {
		switch s.kind {
		case slotNumber:
			if ni < len(fromNums) {
				s.number = Mix(fromNums[ni].number, s.number, p)
			}
			ni++
		case slotColor:
			if ci < len(fromCols) {
				s.color = LerpColor(fromCols[ci].color, s.color, p)
			}
			ci++
		}
		out.slots[i] = s
	}
	return out
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
