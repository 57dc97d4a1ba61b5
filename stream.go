package almora

// Stream produces the characters of an input one at a time, with
// arbitrary-but-bounded lookahead ahead of a forward-only cursor.
type Stream interface {
	// Peek returns the character under the cursor without moving it.
	Peek() (rune, bool)

	// PeekNth returns the character n positions after the cursor.
	// With "hello" ahead of the cursor, PeekNth(4) returns 'o'.
	PeekNth(n int) (rune, bool)

	// Consume advances the cursor by one character and returns it.
	Consume() (rune, bool)

	// ConsumeNth advances the cursor past the nth character ahead
	// and returns that character, discarding everything skipped.
	// With "hello world" ahead, ConsumeNth(4) returns 'o' and
	// leaves the cursor at " world".  Consuming past the end of
	// the input reports nothing and leaves the cursor untouched.
	ConsumeNth(n int) (rune, bool)

	// IsEOF reports whether the input can produce another
	// character.
	IsEOF() bool
}

// Reader is the capability matchers test against: absolute-position
// queries layered on top of a Stream.  Positions are 0-based indexes
// from the start of the input.  The reader enforces a forward-only
// access window: positions behind the cursor fail with
// NoLookBehindError, and positions the reader cannot retain fail with
// LookAheadOverflowError.
//
// These queries are what keep matchers stateless.  A matcher asks
// "does X hold at position P" without ever moving the cursor; only
// the token matcher advances it, through ConsumeNth.
type Reader interface {
	Stream

	// MatchString reports whether s occurs verbatim starting at
	// absolute position pos.
	MatchString(pos int, s string) (bool, error)

	// MatchRange counts contiguous characters from pos that fall
	// within [start, end] inclusive, stopping at the first
	// character outside the range or once max characters matched.
	// A max of 0 means unbounded.
	MatchRange(pos int, start, end rune, max int) (int, error)

	// IsEndOfInput reports whether pos sits past the last
	// character of the input.
	IsEndOfInput(pos int) (bool, error)
}
