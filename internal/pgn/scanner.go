package pgn

import "bytes"

// Token separators that end a movetext token, per spec.md §4.2.
var tokenTerminators = [256]bool{
	' ': true, '\t': true, '\r': true, '\n': true,
	'{': true, '}': true, '(': true, ')': true,
	'!': true, '?': true, '$': true, ';': true, '.': true,
}

// skipUntil advances the cursor up to (not past) the next occurrence of
// needle, refilling from the source as needed. It leaves the cursor at EOF
// if needle never appears.
func (r *Reader) skipUntil(needle byte) error {
	searched := 0
	for {
		data, err := r.buf.ensure(searched+1, r.src)
		if err != nil {
			return err
		}
		if len(data) <= searched {
			r.buf.consume(len(data))
			return nil
		}
		if idx := bytes.IndexByte(data[searched:], needle); idx >= 0 {
			r.buf.consume(searched + idx)
			return nil
		}
		searched = len(data)
	}
}

// skipLine consumes through and including the next '\n'.
func (r *Reader) skipLine() error {
	if err := r.skipUntil('\n'); err != nil {
		return err
	}
	if _, ok := r.buf.peek(); ok {
		r.buf.bump()
	}
	return nil
}

// skipWhitespace consumes runs of space/tab/CR/LF, and treats a '%'
// encountered between tokens as an escape-to-end-of-line comment.
func (r *Reader) skipWhitespace() error {
	for {
		data, err := r.buf.ensure(1, r.src)
		if err != nil {
			return err
		}
		if len(data) == 0 {
			return nil
		}
		switch data[0] {
		case ' ', '\t', '\r', '\n':
			r.buf.bump()
		case '%':
			r.buf.bump()
			if err := r.skipLine(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

// skipKet consumes the closing ']' of a tag line plus any trailing
// whitespace through the newline; a '%...\n' line comment inside this
// region is honored.
func (r *Reader) skipKet() error {
	for {
		data, err := r.buf.ensure(1, r.src)
		if err != nil {
			return err
		}
		if len(data) == 0 {
			return nil
		}
		switch data[0] {
		case ' ', '\t', '\r', ']':
			r.buf.bump()
		case '%':
			r.buf.bump()
			return r.skipLine()
		case '\n':
			r.buf.bump()
			return nil
		default:
			return nil
		}
	}
}

// findTokenEnd returns the offset, relative to the buffer's available data,
// of the first token-terminator byte at or after start, or the length of
// the available data if none is found. The caller is responsible for
// having ensured enough bytes are buffered to contain the whole token.
func (r *Reader) findTokenEnd(start int) int {
	data := r.buf.available()
	for i := start; i < len(data); i++ {
		if tokenTerminators[data[i]] {
			return i
		}
	}
	return len(data)
}
