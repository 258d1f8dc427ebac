package styledtext

// Flatten projects the span list into a fully covering, non-overlapping
// sequence for display: every gap between stored spans (and before the first
// or after the last) is filled with a synthesized span carrying the plain
// attribute. The renderer draws only what a span covers, so every byte of
// the buffer must be covered by exactly one emitted span.
//
// Flatten assumes the stored spans were produced through AddSpanIntersect
// and AppendStyled and are therefore already ordered and non-overlapping.
func (t *Text) Flatten(plain Attr) []Span {
	spans := make([]Span, 0, len(t.spans)*2+1)

	last := 0
	for _, span := range t.spans {
		if span.Range.Start > last {
			spans = append(spans, Span{
				Attr:  plain,
				Range: Range{Start: last, End: span.Range.Start},
			})
		}
		last = span.Range.End
		spans = append(spans, span)
	}

	if last < len(t.source) {
		spans = append(spans, Span{
			Attr:  plain,
			Range: Range{Start: last, End: len(t.source)},
		})
	}

	return spans
}
