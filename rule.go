package almora

// Rule wraps a Matcher into a shareable handle with helpers for
// declaring grammars.  Rules are immutable once built: the same rule
// value (a whitespace rule, say) can back any number of parent
// combinators and lives as long as the longest-living grammar that
// reaches it.
type Rule struct {
	matcher Matcher
}

func NewRule(m Matcher) *Rule {
	return &Rule{matcher: m}
}

// Test forwards to the underlying matcher, so a rule can be used
// anywhere a matcher can.
func (r *Rule) Test(loc Location, reader Reader) (*ParseInfo, error) {
	return r.matcher.Test(loc, reader)
}

func (r *Rule) String() string {
	return r.matcher.String()
}

// Word matches the given string exactly.
func Word(word string) *Rule {
	return NewRule(NewLiteralMatcher(word))
}

// CharRange matches a single character within [start, end].
func CharRange(start, end rune) *Rule {
	return NewRule(NewRangeMatcher(start, end))
}

// CharRangeAtLeast matches min or more characters within [start, end].
func CharRangeAtLeast(start, end rune, min int) *Rule {
	return NewRule(RangeAtLeast(start, end, min))
}

// CharRangeBetween matches between min and max characters within
// [start, end].
func CharRangeBetween(start, end rune, min, max int) *Rule {
	return NewRule(RangeBetween(start, end, min, max))
}

// Seq matches each rule in order, each one starting from the end of
// the previous match.
func Seq(rules ...*Rule) *Rule {
	return NewRule(NewSequenceMatcher(matchersOf(rules)))
}

// Choice matches the first rule able to match, in declaration order.
func Choice(rules ...*Rule) *Rule {
	return NewRule(NewChoiceMatcher(matchersOf(rules)))
}

// Until matches raw input characters up to the point where until
// matches or the input ends, requiring at least min of them.
func Until(until *Rule, min int) *Rule {
	return NewRule(NewUntilMatcher(until.matcher, min))
}

// Token delegates to r and, on a match, consumes the reader's cursor
// through the end of the match.
func Token(r *Rule) *Rule {
	return NewRule(NewTokenMatcher(r.matcher))
}

// AtLeast repeats the rule n or more consecutive times.
func (r *Rule) AtLeast(n int) *Rule {
	return NewRule(NewRepetitionMatcher(r.matcher, n))
}

// Optional makes the rule match an empty span where it would not
// otherwise match.
func (r *Rule) Optional() *Rule {
	return NewRule(NewOptionalMatcher(r.matcher))
}

// Not matches an empty span only where the rule does not match.
func (r *Rule) Not() *Rule {
	return NewRule(NewNotMatcher(r.matcher))
}

func matchersOf(rules []*Rule) []Matcher {
	matchers := make([]Matcher, len(rules))
	for i, r := range rules {
		matchers[i] = r.matcher
	}
	return matchers
}
