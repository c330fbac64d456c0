package pgn

import (
	"bytes"
	"strings"
	"testing"
)

func TestBufferEnsureGrowsAndRefills(t *testing.T) {
	src := strings.NewReader(strings.Repeat("x", 40000))
	b := newBuffer()

	data, err := b.ensure(30000, src)
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if len(data) < 30000 {
		t.Fatalf("ensure returned %d bytes, want at least 30000", len(data))
	}
}

func TestBufferEnsureAtEOF(t *testing.T) {
	src := strings.NewReader("abc")
	b := newBuffer()

	data, err := b.ensure(10, src)
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if string(data) != "abc" {
		t.Errorf("ensure at EOF = %q, want %q", data, "abc")
	}
}

func TestBufferDiscardRebasesUnconsumedSuffix(t *testing.T) {
	src := strings.NewReader("0123456789")
	b := newBuffer()

	if _, err := b.ensure(10, src); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	b.consume(4)
	b.discard()

	if got := b.available(); !bytes.Equal(got, []byte("456789")) {
		t.Errorf("available() after discard = %q, want %q", got, "456789")
	}
	if b.pos != 0 {
		t.Errorf("pos after discard = %d, want 0", b.pos)
	}
}

func TestBufferPeekAndPeekAt(t *testing.T) {
	src := strings.NewReader("hello")
	b := newBuffer()
	if _, err := b.ensure(5, src); err != nil {
		t.Fatalf("ensure: %v", err)
	}

	if c, ok := b.peek(); !ok || c != 'h' {
		t.Errorf("peek() = %c, %v, want 'h', true", c, ok)
	}
	if c, ok := b.peekAt(4); !ok || c != 'o' {
		t.Errorf("peekAt(4) = %c, %v, want 'o', true", c, ok)
	}
	if _, ok := b.peekAt(5); ok {
		t.Error("peekAt(5) should be out of range")
	}
}

func TestBufferBumpAdvancesCursor(t *testing.T) {
	src := strings.NewReader("abcdef")
	b := newBuffer()
	if _, err := b.ensure(6, src); err != nil {
		t.Fatalf("ensure: %v", err)
	}

	b.bump()
	b.bump()
	if got := b.available(); string(got) != "cdef" {
		t.Errorf("available() after 2 bumps = %q, want %q", got, "cdef")
	}
}
