package styledtext

import "fmt"

// BoundsError reports a span that exceeds its buffer at construction time.
// It signals a programming error in the caller, so WithSpans panics with it
// rather than returning it.
type BoundsError struct {
	Span   Span
	Length int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("styledtext: span [%d, %d) exceeds buffer length %d",
		e.Span.Range.Start, e.Span.Range.End, e.Length)
}

// UnsupportedModeError reports an insertion mode that cannot handle the
// insertion point. Extend has no defined merge semantics when the insertion
// point falls inside an existing span, so Insert panics with this error
// instead of guessing.
type UnsupportedModeError struct {
	Mode InsertMode
}

func (e *UnsupportedModeError) Error() string {
	return fmt.Sprintf("styledtext: insert mode %s is unsupported at an insertion point inside a span", e.Mode)
}
