package escapes

import (
	"testing"

	"github.com/skeinchat/skein/pkg/styledtext"
)

func TestApplyString(t *testing.T) {
	table := Default()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean text passes through", "hello world", "hello world"},
		{"nul becomes visible", "a\x00b", "a\\0b"},
		{"soh becomes visible", "a\x01b", "a\\1b"},
		{"escape becomes visible", "\x1b[31mred", "\\e[31mred"},
		{"bell becomes visible", "ding\x07", "ding\\a"},
		{"carriage return is dropped", "line\rfeed", "linefeed"},
		{"multiple occurrences", "\x00\x00", "\\0\\0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := table.ApplyString(tt.input)
			if got.Source() != tt.want {
				t.Errorf("ApplyString(%q) = %q, want %q", tt.input, got.Source(), tt.want)
			}
		})
	}
}

func TestApplyKeepsInputIntact(t *testing.T) {
	table := Default()
	original := styledtext.New("a\x00b")
	table.Apply(original)
	if original.Source() != "a\x00b" {
		t.Errorf("Apply mutated its input: %q", original.Source())
	}
}

func TestApplyOrder(t *testing.T) {
	// Later rules see the output of earlier rules.
	table := New()
	table.Add("a", "b")
	table.Add("b", "c")
	if got := table.ApplyString("a").Source(); got != "c" {
		t.Errorf("chained rules produced %q, want %q", got, "c")
	}
}

func TestAddEmptyFromIgnored(t *testing.T) {
	table := New()
	table.Add("", "x")
	if table.Len() != 0 {
		t.Errorf("empty rule was stored, table has %d rules", table.Len())
	}
}

func TestApplyPreservesStylingOutsideMatches(t *testing.T) {
	table := New()
	table.Add("\x00", "!") // same length, spans survive

	text := styledtext.New("")
	text.AppendStyled("hi", testStyle(1))
	text.AppendSource("\x00")

	got := table.Apply(text)
	if got.Source() != "hi!" {
		t.Fatalf("source = %q, want %q", got.Source(), "hi!")
	}
	if len(got.Spans()) != 1 || got.Spans()[0].Range != (styledtext.Range{Start: 0, End: 2}) {
		t.Errorf("spans = %v, want one span over [0, 2)", got.Spans())
	}
}

// testStyle is a minimal attribute so this package's tests do not depend on
// the terminal renderer.
type testStyle int

func (s testStyle) Combine(other styledtext.Attr) styledtext.Attr { return other }
