package almora

import (
	"io"
	"unicode/utf8"
)

// BufferedReader streams characters out of an external byte source
// without ever holding the whole input in memory.  A fixed-capacity
// ring buffer retains the window between the consume cursor and the
// furthest character loaded from the source; queries outside that
// window fail with NoLookBehindError or LookAheadOverflowError
// instead of growing memory.
//
// Capacity is counted in decoded characters.  The byte-level
// accumulation used while decoding is a separate 4-byte scratch and
// never affects the logical capacity.
//
// A BufferedReader is exclusively owned by one in-progress parse and
// must not be shared across goroutines.
type BufferedReader struct {
	src io.Reader
	buf *RingBuffer[rune]

	// bulk-read size per refill, in characters
	chunkSize int

	// characters consumed off the buffer head
	nbReadFromBuffer int
	// characters decoded off the source tail
	nbReadFromSource int
}

// NewBufferedReader wraps src with a retained window of capacity
// characters, refilling with bulk reads of half the capacity.
func NewBufferedReader(src io.Reader, capacity int) *BufferedReader {
	return NewBufferedReaderSize(src, capacity, capacity/2)
}

// NewBufferedReaderSize is NewBufferedReader with an explicit
// bulk-read size.
func NewBufferedReaderSize(src io.Reader, capacity, chunkSize int) *BufferedReader {
	if chunkSize < 1 {
		chunkSize = 1
	}
	return &BufferedReader{
		src:       src,
		buf:       NewRingBuffer[rune](capacity),
		chunkSize: chunkSize,
	}
}

// loadRunes pulls up to n more characters from the source.  Bytes are
// read in bulk rather than one character at a time, then decoded
// through an accumulating 1-4 byte window: an incomplete sequence
// waits for the next byte, an invalid one is dropped.  Returns the
// number of characters actually loaded; a short count means the
// source is exhausted or the buffer has no room.
func (r *BufferedReader) loadRunes(n int) int {
	if r.buf.Len()+n > r.buf.Cap() {
		return 0
	}

	var (
		window [utf8.UTFMax]byte
		wlen   int
		toLoad = n
	)

	for toLoad > 0 {
		chunk := make([]byte, toLoad)
		k, err := r.src.Read(chunk)

		for i := 0; i < k; i++ {
			window[wlen] = chunk[i]
			wlen++
			if !utf8.FullRune(window[:wlen]) {
				if wlen == utf8.UTFMax {
					// not decodable, abandon the window
					wlen = 0
				}
				continue
			}
			c, size := utf8.DecodeRune(window[:wlen])
			if c == utf8.RuneError && size == 1 {
				wlen = 0
				continue
			}
			r.buf.Push(c)
			wlen = 0
			toLoad--
			r.nbReadFromSource++
		}

		if k == 0 || err != nil {
			break
		}
	}

	return n - toLoad
}

// loadUntil ensures the character at the absolute position index is
// present in the buffer, pulling further batches from the source when
// it is not.  Reports false when the source is exhausted, or the
// buffer has no room, before reaching index.
func (r *BufferedReader) loadUntil(index int) bool {
	if index < r.nbReadFromSource {
		return true
	}

	needed := index - r.nbReadFromSource + 1
	room := r.buf.Cap() - r.buf.Len()
	if needed > room {
		return false
	}

	// Refill in bulk to keep source round-trips down.
	n := needed
	if n < r.chunkSize {
		n = r.chunkSize
	}
	if n > room {
		n = room
	}
	r.loadRunes(n)

	return index < r.nbReadFromSource
}

func (r *BufferedReader) Peek() (rune, bool) {
	return r.PeekNth(0)
}

func (r *BufferedReader) PeekNth(n int) (rune, bool) {
	r.loadUntil(r.nbReadFromBuffer + n)
	return r.buf.PeekNth(n)
}

func (r *BufferedReader) Consume() (rune, bool) {
	return r.ConsumeNth(0)
}

func (r *BufferedReader) ConsumeNth(n int) (rune, bool) {
	if _, ok := r.PeekNth(n); !ok {
		return 0, false
	}
	for i := 0; i < n; i++ {
		r.buf.Pop()
	}
	c, _ := r.buf.Pop()
	r.nbReadFromBuffer += n + 1
	return c, true
}

func (r *BufferedReader) IsEOF() bool {
	return !r.loadUntil(r.nbReadFromBuffer)
}

func (r *BufferedReader) MatchString(pos int, s string) (bool, error) {
	rel, err := r.relative(pos)
	if err != nil {
		return false, err
	}

	// If the end of the string falls outside the retained window,
	// no amount of refilling can make the comparison possible.
	length := utf8.RuneCountInString(s)
	if rel+length >= r.buf.Cap() {
		return false, &LookAheadOverflowError{Index: pos + length}
	}

	i := rel
	for _, want := range s {
		got, ok := r.PeekNth(i)
		if !ok || got != want {
			return false, nil
		}
		i++
	}
	return true, nil
}

func (r *BufferedReader) MatchRange(pos int, start, end rune, max int) (int, error) {
	rel, err := r.relative(pos)
	if err != nil {
		return 0, err
	}

	matched := 0
	i := rel
	for {
		if max != 0 && matched >= max {
			break
		}
		// An in-range run reaching the edge of the window cannot
		// be counted further; stopping before the edge is a
		// normal result.
		if i >= r.buf.Cap() {
			return 0, &LookAheadOverflowError{Index: pos + (i - rel)}
		}
		c, ok := r.PeekNth(i)
		if !ok || c < start || c > end {
			break
		}
		matched++
		i++
	}
	return matched, nil
}

func (r *BufferedReader) IsEndOfInput(pos int) (bool, error) {
	rel, err := r.relative(pos)
	if err != nil {
		return false, err
	}
	if rel >= r.buf.Cap() {
		return false, &LookAheadOverflowError{Index: pos}
	}
	_, ok := r.PeekNth(rel)
	return !ok, nil
}

// relative translates an absolute position into a lookahead distance
// from the cursor, rejecting positions already consumed and evicted.
func (r *BufferedReader) relative(pos int) (int, error) {
	if pos < r.nbReadFromBuffer {
		return 0, &NoLookBehindError{Index: pos}
	}
	return pos - r.nbReadFromBuffer, nil
}
