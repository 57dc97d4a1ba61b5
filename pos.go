package almora

import "fmt"

//  ---- Location ----

// Location is an absolute position within an input.  Line and column
// are 1-based, so the very beginning of an input is (1, 1).  Index is
// the 0-based offset of the element itself; it is the canonical value
// used for comparisons and for all buffer bookkeeping, while line and
// column are derived presentation fields.
type Location struct {
	Line   int
	Column int
	Index  int
}

// Beginning returns the location of the start of an input.
func Beginning() Location {
	return Location{Line: 1, Column: 1, Index: 0}
}

// Add moves the location forward by n elements within the same line.
func (l Location) Add(n int) Location {
	return Location{Line: l.Line, Column: l.Column + n, Index: l.Index + n}
}

// AddLine moves the location to the beginning of the next line.
func (l Location) AddLine() Location {
	return Location{Line: l.Line + 1, Column: 1, Index: l.Index + 1}
}

// AddDelta moves the location by a precomputed (lines, columns, index)
// delta.  When the delta crosses at least one line, the column
// restarts at 1 before deltaColumns is applied.
func (l Location) AddDelta(deltaLines, deltaColumns, deltaIndex int) Location {
	column := l.Column
	if deltaLines > 0 {
		column = 1
	}
	return Location{
		Line:   l.Line + deltaLines,
		Column: column + deltaColumns,
		Index:  l.Index + deltaIndex,
	}
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

//  ---- Span ----

// Span is the range of elements between two locations.  Start is
// inclusive and End is exclusive: the span of "hello" at the start of
// an input runs from (1,1,0) to (1,6,5), which is where the next
// element would be read.  Zero-length spans (Start == End) are valid
// and denote an empty match.
type Span struct {
	Start Location
	End   Location
}

func NewSpan(start, end Location) Span {
	return Span{Start: start, End: end}
}

func (s Span) String() string {
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}
