package widgets

import "strings"

// SplitMode selects how SplitText breaks its input.
type SplitMode int

const (
	SplitChar SplitMode = iota
	SplitWord
	SplitLine
)

func (m SplitMode) String() string {
	switch m {
	case SplitWord:
		return "word"
	case SplitLine:
		return "line"
	default:
		return "char"
	}
}

// TextSpan is one piece of split text. Hosts render each span as an inline
// block so it can be transformed on its own.
type TextSpan struct {
	Index int
	Text  string
	Style map[string]any
}

// SplitText breaks text into spans for per-piece animation. Characters are
// runes; words keep a trailing space so the spans lay out as the original
// text did.
func SplitText(text string, mode SplitMode) []TextSpan {
	var parts []string
	switch mode {
	case SplitLine:
		parts = strings.Split(text, "\n")
	case SplitWord:
		parts = strings.Split(text, " ")
	default:
		for _, r := range text {
			parts = append(parts, string(r))
		}
	}
	spans := make([]TextSpan, len(parts))
	for i, p := range parts {
		if mode == SplitWord {
			p += " "
		}
		spans[i] = TextSpan{
			Index: i,
			Text:  p,
			Style: map[string]any{"display": "inline-block"},
		}
	}
	return spans
}
