package styledtext

import "strings"

// InsertMode selects how Insert repairs spans around the insertion point.
type InsertMode int

const (
	// BreakApart splits any span the insertion point falls inside, so the
	// inserted text never inherits the surrounding style.
	BreakApart InsertMode = iota
	// Extend would grow an enclosing span to cover the inserted text.
	// It is unimplemented: inserting inside a span in this mode panics.
	Extend
)

func (m InsertMode) String() string {
	switch m {
	case BreakApart:
		return "BreakApart"
	case Extend:
		return "Extend"
	default:
		return "InsertMode(unknown)"
	}
}

// Text is a text buffer plus styled spans over it. Spans are kept in
// insertion order, not sorted by range, and may overlap in the stored
// representation; overlap is resolved by AddSpanIntersect and by Flatten,
// not eagerly on every mutation.
//
// A Text belongs to one caller at a time. It is mutated in place while a
// display line is assembled and then read out via Flatten.
type Text struct {
	source string
	spans  []Span
}

// New creates a Text with no spans.
func New(source string) *Text {
	return &Text{source: source}
}

// WithSpans creates a Text with a pre-built span list. It panics with a
// *BoundsError if any span exceeds the buffer; that is a caller bug, not a
// runtime condition.
func WithSpans(source string, spans []Span) *Text {
	for _, span := range spans {
		if span.Range.End > len(source) {
			panic(&BoundsError{Span: span, Length: len(source)})
		}
	}
	return &Text{source: source, spans: spans}
}

// SingleSpan creates a Text with one span styling all of source.
func SingleSpan(source string, attr Attr) *Text {
	return WithSpans(source, []Span{SpanOver(source, attr)})
}

// Source returns the raw text buffer.
func (t *Text) Source() string {
	return t.source
}

// Spans returns the stored span list. The slice is owned by the Text.
func (t *Text) Spans() []Span {
	return t.spans
}

// Len returns the buffer length in bytes.
func (t *Text) Len() int {
	return len(t.source)
}

// IsEmpty reports whether the buffer is empty.
func (t *Text) IsEmpty() bool {
	return len(t.source) == 0
}

// SpansAt returns every span containing the byte at idx.
func (t *Text) SpansAt(idx int) []Span {
	var result []Span
	for _, span := range t.spans {
		if span.Contains(idx) {
			result = append(result, span)
		}
	}
	return result
}

// IntersectingSpans returns every span overlapping r.
func (t *Text) IntersectingSpans(r Range) []Span {
	var result []Span
	for _, span := range t.spans {
		if _, ok := span.Intersection(r); ok {
			result = append(result, span)
		}
	}
	return result
}

// Insert inserts text into the buffer at byte offset idx and repairs the
// spans. The repair is a single scan keyed off the first span found to
// contain idx: that span is split (BreakApart), and every span after it in
// list order is shifted forward by len(text). If no span contains idx, no
// span moves at all. This assumes at most one span contains the insertion
// point, which holds for the append-then-pad way lines are built here.
func (t *Text) Insert(idx int, text string, mode InsertMode) {
	t.source = t.source[:idx] + text + t.source[idx:]

	found := false
	spans := t.spans
	t.spans = make([]Span, 0, len(spans)+2)
	for _, span := range spans {
		switch {
		case found:
			if mode != BreakApart {
				panic(&UnsupportedModeError{Mode: mode})
			}
			t.spans = append(t.spans, span.Offset(len(text)))
		case span.Contains(idx):
			found = true
			if mode != BreakApart {
				panic(&UnsupportedModeError{Mode: mode})
			}
			left, hasLeft, right, hasRight := span.SplitAt(idx)
			if hasLeft {
				t.spans = append(t.spans, left)
			}
			if hasRight {
				t.spans = append(t.spans, right.Offset(len(text)))
			}
		default:
			t.spans = append(t.spans, span)
		}
	}
}

// AddSpanIntersect adds a span, merging its attribute with every existing
// span it overlaps. Each overlapped span is split around the intersection;
// the intersection itself gets the combined attribute, and the remainders
// keep their original attribute in place. Whatever part of the new span was
// not consumed by intersections is appended at the end with the new span's
// own attribute.
//
// Consumed coverage is tracked as one growing range from the new span's
// start, so a new span bridging two existing spans with a gap between them
// will count the gap as consumed too. Known limitation; callers here only
// ever layer spans that overlap a single run.
func (t *Text) AddSpanIntersect(newSpan Span) {
	if newSpan.IsEmpty() {
		return
	}

	spans := t.spans
	result := make([]Span, 0, len(spans)+1)
	used := Range{Start: newSpan.Range.Start, End: newSpan.Range.Start}

	for _, span := range spans {
		intersection, ok := span.Intersection(newSpan.Range)
		if !ok {
			result = append(result, span)
			continue
		}
		if intersection.End > used.End {
			used.End = intersection.End
		}

		origLeft, hasLeft, origRight, hasRight := Remove(span.Range, intersection)
		if hasLeft {
			result = append(result, Span{Attr: span.Attr, Range: origLeft})
		}
		result = append(result, Span{
			Attr:  span.Attr.Combine(newSpan.Attr),
			Range: intersection,
		})
		if hasRight {
			result = append(result, Span{Attr: span.Attr, Range: origRight})
		}
	}

	newLeft, hasLeft, newRight, hasRight := Remove(newSpan.Range, used)
	if hasLeft {
		result = append(result, Span{Attr: newSpan.Attr, Range: newLeft})
	}
	if hasRight {
		result = append(result, Span{Attr: newSpan.Attr, Range: newRight})
	}

	t.spans = result
}

// Append concatenates other onto t, shifting other's spans forward by t's
// length before the append.
func (t *Text) Append(other *Text) {
	offset := len(t.source)
	t.source += other.source
	for _, span := range other.spans {
		t.spans = append(t.spans, span.Offset(offset))
	}
}

// AppendStyled appends text covered by one new span with the given
// attribute. Nothing can overlap brand-new tail text, so no merging is
// needed.
func (t *Text) AppendStyled(text string, attr Attr) {
	start := len(t.source)
	t.source += text
	t.spans = append(t.spans, Span{
		Attr:  attr,
		Range: Range{Start: start, End: start + len(text)},
	})
}

// AppendSource appends plain text with no span.
func (t *Text) AppendSource(text string) {
	t.source += text
}

// SimpleReplace replaces every non-overlapping literal occurrence of from
// with to, scanning left to right. The result is plain text: all spans are
// dropped. An empty from matches nothing and returns an unstyled copy.
func (t *Text) SimpleReplace(from, to string) *Text {
	result := New("")
	if from == "" {
		result.source = t.source
		return result
	}

	last := 0
	for {
		i := strings.Index(t.source[last:], from)
		if i < 0 {
			break
		}
		start := last + i
		result.AppendSource(t.source[last:start])
		result.AppendSource(to)
		last = start + len(from)
	}
	result.AppendSource(t.source[last:])
	return result
}

// ReplaceStyled replaces like SimpleReplace but tries to keep styles.
// When from and to have the same length every byte position survives
// unchanged, so the spans carry over as-is. When the lengths differ, span
// positions after the first match are no longer meaningful; rather than
// guess, only spans ending before the first match are kept. Recomputing the
// shifted and split ranges for every match is the eventual fix.
func (t *Text) ReplaceStyled(from, to string) *Text {
	result := t.SimpleReplace(from, to)

	if from == "" || len(from) == len(to) {
		result.spans = append([]Span(nil), t.spans...)
		return result
	}

	first := strings.Index(t.source, from)
	if first < 0 {
		result.spans = append([]Span(nil), t.spans...)
		return result
	}
	for _, span := range t.spans {
		if span.Range.End <= first {
			result.spans = append(result.spans, span)
		}
	}
	return result
}
