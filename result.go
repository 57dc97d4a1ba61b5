package almora

// ParseInfo describes a successful match: the span it covers and the
// number of elements it matched.  Length is usually End.Index -
// Start.Index, but matchers over variable-width constructs may report
// the count of matched elements instead, so the two are kept separate.
//
// The full outcome of a test is the pair (*ParseInfo, error): a
// non-nil info is a match, (nil, nil) is a normal non-match, and a
// non-nil error is a reader error that aborts the enclosing test as a
// whole.  Matchers never wrap or retry reader errors.
type ParseInfo struct {
	span   Span
	length int
}

func NewParseInfo(span Span, length int) *ParseInfo {
	return &ParseInfo{span: span, length: length}
}

func (i *ParseInfo) Span() Span { return i.span }
func (i *ParseInfo) Len() int   { return i.length }

func (i *ParseInfo) String() string { return i.span.String() }

// matchedBetween builds the outcome of a match covering [start, end),
// deriving the length from the index distance.
func matchedBetween(start, end Location) *ParseInfo {
	return NewParseInfo(NewSpan(start, end), end.Index-start.Index)
}

// emptyAt builds the outcome of a zero-length match at loc.
func emptyAt(loc Location) *ParseInfo {
	return NewParseInfo(NewSpan(loc, loc), 0)
}
