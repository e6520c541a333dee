package widgets

import (
	"reflect"
	"testing"
)

func spanTexts(spans []TextSpan) []string {
	out := make([]string, len(spans))
	for i, s := range spans {
		out[i] = s.Text
	}
	return out
}

func TestSplitText(t *testing.T) {
	tests := []struct {
		mode SplitMode
		in   string
		want []string
	}{
		{SplitChar, "héllo", []string{"h", "é", "l", "l", "o"}},
		{SplitWord, "hello big world", []string{"hello ", "big ", "world "}},
		{SplitLine, "one\ntwo", []string{"one", "two"}},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			spans := SplitText(tt.in, tt.mode)
			if got := spanTexts(spans); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("SplitText(%q) = %q, want %q", tt.in, got, tt.want)
			}
			for i, s := range spans {
				if s.Index != i {
					t.Errorf("span %d has index %d", i, s.Index)
				}
				if s.Style["display"] != "inline-block" {
					t.Errorf("span %d style = %v", i, s.Style)
				}
			}
		})
	}
}

func TestMove(t *testing.T) {
	in := []string{"a", "b", "c", "d"}
	tests := []struct {
		from, to int
		want     []string
	}{
		{0, 2, []string{"b", "c", "a", "d"}},
		{3, 0, []string{"d", "a", "b", "c"}},
		{1, 1, []string{"a", "b", "c", "d"}},
		{-1, 2, []string{"a", "b", "c", "d"}},
		{0, 9, []string{"a", "b", "c", "d"}},
	}
	for _, tt := range tests {
		if got := Move(in, tt.from, tt.to); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Move(%d, %d) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
	if !reflect.DeepEqual(in, []string{"a", "b", "c", "d"}) {
		t.Errorf("input was modified: %v", in)
	}
}
