package almora

// RingBuffer is a fixed-capacity FIFO store with wraparound indexing.
// Push fails when the buffer is full, leaving the contents untouched;
// Pop and Peek on an empty buffer report nothing.  Capacity is
// counted in elements, never in raw bytes.
type RingBuffer[T any] struct {
	items []T

	// read and write are the cursors of the next Pop and the next
	// Push; size is the number of live elements between them.
	read  int
	write int
	size  int
}

func NewRingBuffer[T any](capacity int) *RingBuffer[T] {
	return &RingBuffer[T]{items: make([]T, capacity)}
}

func (b *RingBuffer[T]) Cap() int { return len(b.items) }
func (b *RingBuffer[T]) Len() int { return b.size }

func (b *RingBuffer[T]) Empty() bool { return b.size == 0 }

// Push appends v at the write cursor, reporting false when the buffer
// is full.
func (b *RingBuffer[T]) Push(v T) bool {
	if b.size == len(b.items) {
		return false
	}
	b.items[b.write] = v
	b.write = (b.write + 1) % len(b.items)
	b.size++
	return true
}

// Pop removes and returns the element at the read cursor.
func (b *RingBuffer[T]) Pop() (T, bool) {
	var zero T
	if b.size == 0 {
		return zero, false
	}
	v := b.items[b.read]
	b.read = (b.read + 1) % len(b.items)
	b.size--
	return v, true
}

// Peek returns the element at the read cursor without removing it.
func (b *RingBuffer[T]) Peek() (T, bool) {
	return b.PeekNth(0)
}

// PeekNth returns the element n positions after the read cursor
// without removing anything.
func (b *RingBuffer[T]) PeekNth(n int) (T, bool) {
	var zero T
	if n < 0 || n >= b.size {
		return zero, false
	}
	return b.items[(b.read+n)%len(b.items)], true
}
