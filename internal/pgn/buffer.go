package pgn

import "io"

// initialBufferCapacity mirrors the 16 KiB starting window the original
// reader grows from before any compaction is needed.
const initialBufferCapacity = 1 << 14

// buffer is a growable byte window over an io.Reader with a read cursor.
// It owns the only copy of unconsumed input bytes; slices returned by
// available are valid only until the next call that may grow or compact the buffer.
type buffer struct {
	data []byte
	pos  int
	eof  bool
}

func newBuffer() *buffer {
	return &buffer{data: make([]byte, 0, initialBufferCapacity)}
}

// available returns the slice of buffered bytes not yet consumed.
func (b *buffer) available() []byte {
	return b.data[b.pos:]
}

// ensure refills from r until available() has at least n bytes or the
// source is exhausted. The returned slice may be shorter than n at EOF.
func (b *buffer) ensure(n int, r io.Reader) ([]byte, error) {
	for len(b.data)-b.pos < n && !b.eof {
		if b.pos > 0 && cap(b.data)-len(b.data) < n {
			b.discard()
		}
		if len(b.data) == cap(b.data) {
			grown := make([]byte, len(b.data), 2*cap(b.data)+n)
			copy(grown, b.data)
			b.data = grown
		}
		free := b.data[len(b.data):cap(b.data)]
		read, err := r.Read(free)
		b.data = b.data[:len(b.data)+read]
		if err != nil {
			if err == io.EOF {
				b.eof = true
				break
			}
			return b.available(), err
		}
		if read == 0 {
			// A well-behaved Reader would not do this repeatedly, but
			// guard against a spinning zero-byte-read source.
			b.eof = true
			break
		}
	}
	return b.available(), nil
}

// discard rebases the cursor to zero, dropping the already-consumed prefix.
func (b *buffer) discard() {
	if b.pos == 0 {
		return
	}
	n := copy(b.data, b.data[b.pos:])
	b.data = b.data[:n]
	b.pos = 0
}

// consume advances the cursor by k bytes. k must not exceed len(available()).
func (b *buffer) consume(k int) {
	b.pos += k
}

// bump consumes exactly one byte.
func (b *buffer) bump() {
	b.consume(1)
}

// peek returns the first unconsumed byte, or false if none is buffered.
// It does not refill from the source; callers must ensure() first.
func (b *buffer) peek() (byte, bool) {
	if b.pos >= len(b.data) {
		return 0, false
	}
	return b.data[b.pos], true
}

// peekAt returns the byte n positions past the cursor, or false if it is
// not currently buffered.
func (b *buffer) peekAt(n int) (byte, bool) {
	idx := b.pos + n
	if idx >= len(b.data) {
		return 0, false
	}
	return b.data[idx], true
}
