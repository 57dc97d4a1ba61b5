package almora

// StringReader streams characters out of a fully materialized string.
// Since everything is already in memory there is no eviction and no
// lookahead limit; the forward-only window still applies to
// characters that were consumed.
//
// Handy for short inputs and test fixtures.  Inputs too large to hold
// in memory should go through a BufferedReader instead.
type StringReader struct {
	input  []rune
	cursor int
}

func NewStringReader(s string) *StringReader {
	return &StringReader{input: []rune(s)}
}

func (r *StringReader) Peek() (rune, bool) {
	return r.PeekNth(0)
}

func (r *StringReader) PeekNth(n int) (rune, bool) {
	if r.cursor+n >= len(r.input) {
		return 0, false
	}
	return r.input[r.cursor+n], true
}

func (r *StringReader) Consume() (rune, bool) {
	return r.ConsumeNth(0)
}

func (r *StringReader) ConsumeNth(n int) (rune, bool) {
	c, ok := r.PeekNth(n)
	if !ok {
		return 0, false
	}
	r.cursor += n + 1
	return c, true
}

func (r *StringReader) IsEOF() bool {
	return r.cursor >= len(r.input)
}

func (r *StringReader) MatchString(pos int, s string) (bool, error) {
	rel, err := r.relative(pos)
	if err != nil {
		return false, err
	}
	for _, want := range s {
		got, ok := r.PeekNth(rel)
		if !ok || got != want {
			return false, nil
		}
		rel++
	}
	return true, nil
}

func (r *StringReader) MatchRange(pos int, start, end rune, max int) (int, error) {
	rel, err := r.relative(pos)
	if err != nil {
		return 0, err
	}
	matched := 0
	for {
		c, ok := r.PeekNth(rel)
		if !ok || c < start || c > end {
			break
		}
		if max != 0 && matched >= max {
			break
		}
		matched++
		rel++
	}
	return matched, nil
}

func (r *StringReader) IsEndOfInput(pos int) (bool, error) {
	rel, err := r.relative(pos)
	if err != nil {
		return false, err
	}
	_, ok := r.PeekNth(rel)
	return !ok, nil
}

// relative translates an absolute position into a lookahead distance
// from the cursor, rejecting positions already consumed.
func (r *StringReader) relative(pos int) (int, error) {
	if pos < r.cursor {
		return 0, &NoLookBehindError{Index: pos}
	}
	return pos - r.cursor, nil
}
