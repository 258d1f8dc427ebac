// Package styledtext provides a text buffer annotated with styled spans.
// It is the builder used to assemble chat lines before they are handed to
// the terminal renderer: plain text plus possibly-overlapping style
// annotations, kept consistent while the text is edited.
package styledtext

// Range is a half-open byte range [Start, End) into a text buffer.
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the range.
func (r Range) Len() int {
	if r.IsEmpty() {
		return 0
	}
	return r.End - r.Start
}

// IsEmpty reports whether the range covers no bytes.
func (r Range) IsEmpty() bool {
	return r.Start >= r.End
}

// Shift returns the range moved forward by delta bytes.
func (r Range) Shift(delta int) Range {
	return Range{Start: r.Start + delta, End: r.End + delta}
}

// Intersect returns the overlap of r1 and r2. Ranges that merely touch at a
// boundary do not intersect, and empty ranges never intersect anything.
func Intersect(r1, r2 Range) (Range, bool) {
	if r1.IsEmpty() || r2.IsEmpty() || r1.Start >= r2.End || r2.Start >= r1.End {
		return Range{}, false
	}
	return Range{Start: max(r1.Start, r2.Start), End: min(r1.End, r2.End)}, true
}

// Remove cuts re out of r1, returning the left and right remainders.
// Removing an empty range from a non-empty r1 leaves r1 intact; removing
// anything from an empty r1, or removing r1 from itself, leaves nothing.
// A re that misses r1 entirely also leaves r1 intact.
func Remove(r1, re Range) (left Range, hasLeft bool, right Range, hasRight bool) {
	if re.IsEmpty() && !r1.IsEmpty() {
		return r1, true, Range{}, false
	}
	if re.IsEmpty() || r1.IsEmpty() || r1 == re {
		return Range{}, false, Range{}, false
	}

	// Clamp re to r1 so only the overlapping part is reasoned about.
	re, ok := Intersect(r1, re)
	if !ok {
		return r1, true, Range{}, false
	}

	if re.Start > r1.Start {
		left = Range{Start: r1.Start, End: re.Start}
		hasLeft = true
	}
	if re.End < r1.End {
		right = Range{Start: re.End, End: r1.End}
		hasRight = true
	}
	return left, hasLeft, right, hasRight
}
