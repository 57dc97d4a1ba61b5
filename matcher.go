package almora

import (
	"fmt"
	"strings"
)

// Matcher is the contract every grammar fragment implements: test the
// input at a location through a reader, and report a match, a normal
// non-match, or a reader error.
//
// Matchers are immutable and stateless: they query the reader through
// its absolute-position capability and never move its cursor.  The
// single exception is TokenMatcher, which consumes the input after a
// match to mark a token boundary.
//
// The matcher set is closed; String gives each kind its canonical
// rendering so whole grammars can be compared as text.
type Matcher interface {
	Test(loc Location, r Reader) (*ParseInfo, error)

	// String returns the canonical rendering of the fragment
	String() string
}

// Matcher: Literal

// LiteralMatcher matches an exact string, like a keyword.
//
// The newline count and the trailing segment length of the literal
// are measured once at construction, so every successful match
// updates the location in O(1) instead of rescanning the text.
type LiteralMatcher struct {
	value string

	deltaLines   int
	deltaColumns int
	length       int
}

func NewLiteralMatcher(value string) *LiteralMatcher {
	var deltaLines, deltaColumns, length int
	for _, c := range value {
		length++
		if c == '\n' {
			deltaLines++
			deltaColumns = 0
		} else {
			deltaColumns++
		}
	}
	return &LiteralMatcher{
		value:        value,
		deltaLines:   deltaLines,
		deltaColumns: deltaColumns,
		length:       length,
	}
}

func (m *LiteralMatcher) Test(loc Location, r Reader) (*ParseInfo, error) {
	ok, err := r.MatchString(loc.Index, m.value)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	end := loc.AddDelta(m.deltaLines, m.deltaColumns, m.length)
	return NewParseInfo(NewSpan(loc, end), m.length), nil
}

func (m *LiteralMatcher) String() string {
	var s strings.Builder
	s.WriteString(`"`)
	for _, c := range m.value {
		switch c {
		case '\n':
			s.WriteString(`\n`)
		case '\r':
			s.WriteString(`\r`)
		case '\t':
			s.WriteString(`\t`)
		case 0:
			s.WriteString(`\0`)
		case '"':
			s.WriteString(`\"`)
		case '\\':
			s.WriteString(`\\`)
		default:
			s.WriteRune(c)
		}
	}
	s.WriteString(`"`)
	return s.String()
}

// Matcher: Range

// RangeMatcher matches consecutive characters within [start, end],
// inclusive on both sides, with (min, max) repetition bounds.  A max
// of 0 means unbounded.
//
// Newlines are not supported inside ranges: a range never crosses a
// line, and the location update assumes it.  Terminators containing
// newlines belong in a choice of literals instead.
type RangeMatcher struct {
	start rune
	end   rune
	min   int
	max   int
}

// NewRangeMatcher matches exactly one character in [start, end].
func NewRangeMatcher(start, end rune) *RangeMatcher {
	return &RangeMatcher{start: start, end: end, min: 1, max: 1}
}

// RangeAtLeast matches min or more characters in [start, end], with
// no upper bound.
func RangeAtLeast(start, end rune, min int) *RangeMatcher {
	return &RangeMatcher{start: start, end: end, min: min, max: 0}
}

// RangeBetween matches between min and max characters in [start, end].
func RangeBetween(start, end rune, min, max int) *RangeMatcher {
	return &RangeMatcher{start: start, end: end, min: min, max: max}
}

func (m *RangeMatcher) Test(loc Location, r Reader) (*ParseInfo, error) {
	n, err := r.MatchRange(loc.Index, m.start, m.end, m.max)
	if err != nil {
		return nil, err
	}
	if n < m.min {
		return nil, nil
	}
	return matchedBetween(loc, loc.Add(n)), nil
}

func (m *RangeMatcher) String() string {
	return fmt.Sprintf("[%c-%c]", m.start, m.end)
}

// Matcher: Sequence

// SequenceMatcher matches every child in order, each one starting
// from the end of the previous child's match.  The first child that
// fails aborts the whole sequence; nothing is partially committed.
type SequenceMatcher struct {
	children []Matcher
}

func NewSequenceMatcher(children []Matcher) *SequenceMatcher {
	return &SequenceMatcher{children: children}
}

func (m *SequenceMatcher) Test(loc Location, r Reader) (*ParseInfo, error) {
	end := loc
	for _, child := range m.children {
		res, err := child.Test(end, r)
		if err != nil {
			return nil, err
		}
		if res == nil {
			return nil, nil
		}
		end = res.Span().End
	}
	// Full match, or an empty one when there are no children
	return matchedBetween(loc, end), nil
}

func (m *SequenceMatcher) String() string {
	return matchersText(m.children, " ")
}

// Matcher: Choice

// ChoiceMatcher matches the first child able to match, in declaration
// order.  This is ordered choice: once an earlier alternative
// matches, later ones are never tried, even when one of them would
// match more of the input.
type ChoiceMatcher struct {
	children []Matcher
}

func NewChoiceMatcher(children []Matcher) *ChoiceMatcher {
	return &ChoiceMatcher{children: children}
}

func (m *ChoiceMatcher) Test(loc Location, r Reader) (*ParseInfo, error) {
	for _, child := range m.children {
		res, err := child.Test(loc, r)
		if err != nil {
			return nil, err
		}
		if res != nil {
			return matchedBetween(loc, res.Span().End), nil
		}
	}
	return nil, nil
}

func (m *ChoiceMatcher) String() string {
	return matchersText(m.children, " | ")
}

// Matcher: Optional

// OptionalMatcher forwards its child's match and turns a non-match
// into an empty match at the input location.  It never produces a
// non-match; reader errors still pass through.
type OptionalMatcher struct {
	value Matcher
}

func NewOptionalMatcher(value Matcher) *OptionalMatcher {
	return &OptionalMatcher{value: value}
}

func (m *OptionalMatcher) Test(loc Location, r Reader) (*ParseInfo, error) {
	res, err := m.value.Test(loc, r)
	if err != nil {
		return nil, err
	}
	if res != nil {
		return res, nil
	}
	return emptyAt(loc), nil
}

func (m *OptionalMatcher) String() string {
	return fmt.Sprintf("%s?", m.value)
}

// Matcher: Repetition

// RepetitionMatcher matches its child min or more consecutive times
// from a moving cursor, stopping at the first non-match.  A min of 0
// behaves like `*` and a min of 1 like `+`.
type RepetitionMatcher struct {
	value Matcher
	min   int
}

func NewRepetitionMatcher(value Matcher, min int) *RepetitionMatcher {
	return &RepetitionMatcher{value: value, min: min}
}

func (m *RepetitionMatcher) Test(loc Location, r Reader) (*ParseInfo, error) {
	count := 0
	end := loc
	for {
		res, err := m.value.Test(end, r)
		if err != nil {
			return nil, err
		}
		if res == nil {
			break
		}
		count++
		next := res.Span().End
		if next.Index == end.Index {
			// zero-length match: the cursor cannot advance
			break
		}
		end = next
	}
	if count < m.min {
		return nil, nil
	}
	return matchedBetween(loc, end), nil
}

func (m *RepetitionMatcher) String() string {
	switch m.min {
	case 0:
		return fmt.Sprintf("%s*", m.value)
	case 1:
		return fmt.Sprintf("%s+", m.value)
	default:
		return fmt.Sprintf("%s{%d,...}", m.value, m.min)
	}
}

// Matcher: Not

// NotMatcher is negative lookahead: it matches an empty span exactly
// when its child does not match at the input location.  It consumes
// nothing and never moves the location.
type NotMatcher struct {
	value Matcher
}

func NewNotMatcher(value Matcher) *NotMatcher {
	return &NotMatcher{value: value}
}

func (m *NotMatcher) Test(loc Location, r Reader) (*ParseInfo, error) {
	res, err := m.value.Test(loc, r)
	if err != nil {
		return nil, err
	}
	if res != nil {
		return nil, nil
	}
	return emptyAt(loc), nil
}

func (m *NotMatcher) String() string {
	return fmt.Sprintf("(!%s)", m.value)
}

// Matcher: Until

// UntilMatcher consumes raw input characters up to the point where
// its terminator matches or the input ends, requiring at least min of
// them.  Unlike a repetition it advances over characters, not over a
// sub-rule, incrementing the line on every newline it walks past.
type UntilMatcher struct {
	until Matcher
	min   int
}

func NewUntilMatcher(until Matcher, min int) *UntilMatcher {
	return &UntilMatcher{until: until, min: min}
}

func (m *UntilMatcher) Test(loc Location, r Reader) (*ParseInfo, error) {
	count := 0
	end := loc
	for {
		res, err := m.until.Test(end, r)
		if err != nil {
			return nil, err
		}
		if res != nil {
			break
		}

		eof, err := r.IsEndOfInput(end.Index)
		if err != nil {
			return nil, err
		}
		if eof {
			break
		}

		newline, err := r.MatchString(end.Index, "\n")
		if err != nil {
			return nil, err
		}

		count++
		if newline {
			end = end.AddLine()
		} else {
			end = end.Add(1)
		}
	}
	if count < m.min {
		return nil, nil
	}
	return matchedBetween(loc, end), nil
}

func (m *UntilMatcher) String() string {
	switch m.min {
	case 0:
		return fmt.Sprintf("(!%s)*", m.until)
	case 1:
		return fmt.Sprintf("(!%s)+", m.until)
	default:
		return fmt.Sprintf("(!%s){%d,...}", m.until, m.min)
	}
}

// Matcher: Token

// TokenMatcher delegates to its child and, on a match, advances the
// reader's cursor through the matched characters to mark a token
// boundary.  It is the only matcher with an observable effect on the
// reader.  On a non-match it reports an empty span instead of a
// non-match, leaving the cursor where it was.
type TokenMatcher struct {
	value Matcher
}

func NewTokenMatcher(value Matcher) *TokenMatcher {
	return &TokenMatcher{value: value}
}

func (m *TokenMatcher) Test(loc Location, r Reader) (*ParseInfo, error) {
	res, err := m.value.Test(loc, r)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return emptyAt(loc), nil
	}
	if n := res.Span().End.Index - loc.Index; n > 0 {
		r.ConsumeNth(n - 1)
	}
	return res, nil
}

func (m *TokenMatcher) String() string {
	return m.value.String()
}

// Helpers

func matchersText(children []Matcher, sep string) string {
	var (
		s  strings.Builder
		ln = len(children) - 1
	)

	s.WriteString("(")

	for i, child := range children {
		s.WriteString(child.String())

		if i < ln {
			s.WriteString(sep)
		}
	}

	s.WriteString(")")

	return s.String()
}
