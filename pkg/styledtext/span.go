package styledtext

// Attr is an opaque style attribute attached to a span. The engine never
// inspects an attribute's meaning; it only merges two overlapping attributes
// via Combine. Concrete attributes live with the renderer (pkg/ansi).
type Attr interface {
	// Combine merges the receiver with another attribute, producing the
	// attribute of a region covered by both.
	Combine(other Attr) Attr
}

// Span annotates a byte range of a buffer with a style attribute.
type Span struct {
	Attr  Attr
	Range Range
}

// NewSpan creates a span covering r with the given attribute.
func NewSpan(attr Attr, r Range) Span {
	return Span{Attr: attr, Range: r}
}

// SpanOver creates a span covering all of source.
func SpanOver(source string, attr Attr) Span {
	return Span{Attr: attr, Range: Range{Start: 0, End: len(source)}}
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int {
	return s.Range.Len()
}

// IsEmpty reports whether the span covers no bytes. Empty spans are treated
// as absent and are never stored.
func (s Span) IsEmpty() bool {
	return s.Range.IsEmpty()
}

// Contains reports whether idx falls inside the span's range.
func (s Span) Contains(idx int) bool {
	return s.Range.Start <= idx && idx < s.Range.End
}

// Offset returns the span shifted forward by delta bytes. Used after text is
// inserted earlier in the buffer.
func (s Span) Offset(delta int) Span {
	s.Range = s.Range.Shift(delta)
	return s
}

// Resolve returns the text the span covers in source.
func (s Span) Resolve(source string) string {
	return source[s.Range.Start:s.Range.End]
}

// Intersection returns the overlap between the span's range and r.
func (s Span) Intersection(r Range) (Range, bool) {
	return Intersect(s.Range, r)
}

// SplitAt splits the span at idx into a left half [Start, idx) and a right
// half [idx, End), both keeping the original attribute. An empty half is
// omitted. If idx is not contained in the span, neither half is returned.
func (s Span) SplitAt(idx int) (left Span, hasLeft bool, right Span, hasRight bool) {
	if !s.Contains(idx) {
		return Span{}, false, Span{}, false
	}
	l := Range{Start: s.Range.Start, End: idx}
	if !l.IsEmpty() {
		left = Span{Attr: s.Attr, Range: l}
		hasLeft = true
	}
	r := Range{Start: idx, End: s.Range.End}
	if !r.IsEmpty() {
		right = Span{Attr: s.Attr, Range: r}
		hasRight = true
	}
	return left, hasLeft, right, hasRight
}
