package pgn

import (
	"bytes"

	pgnerrors "github.com/lgbarn/pgn-stream-go/internal/errors"
)

// readTags parses the tag-pair section until the first byte that does not
// start a '[' line (or is consumed as a '%' escape line), per spec.md §4.3.
//
//	'[' KEY ( ' '? ) '"' VALUE '"' ']' LINE-END
func (r *Reader) readTags(v Visitor) error {
	for {
		data, err := r.buf.ensure(r.MaxTagLineLength, r.src)
		if err != nil {
			return err
		}
		if len(data) == 0 {
			return nil
		}

		switch data[0] {
		case '[':
			r.buf.bump()
			if err := r.readTagLine(v); err != nil {
				return err
			}
		case '%':
			if err := r.skipLine(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

// readTagLine parses one tag line, having already consumed the leading '['.
func (r *Reader) readTagLine(v Visitor) error {
	data := r.buf.available()

	idx := bytes.IndexAny(data, "\"\n]")
	if idx < 0 {
		r.buf.discard()
		_ = r.skipLine()
		return pgnerrors.Wrap(pgnerrors.ErrUnterminatedTag, "tag key")
	}
	if data[idx] != '"' {
		// '\n' or ']' found before a quote: malformed line, recover.
		r.buf.consume(idx + 1)
		return r.skipKet()
	}

	leftQuote := idx
	space := leftQuote
	if leftQuote > 0 && data[leftQuote-1] == ' ' {
		space = leftQuote - 1
	}
	key := data[:space]

	valueStart := leftQuote + 1
	rightQuote := valueStart
	for {
		rest := data[rightQuote:]
		delta := bytes.IndexAny(rest, "\\\"\n")
		if delta < 0 {
			r.buf.discard()
			_ = r.skipLine()
			return pgnerrors.Wrap(pgnerrors.ErrUnterminatedTag, "tag value")
		}
		switch rest[delta] {
		case '"':
			rightQuote += delta
			if err := v.Tag(key, RawTag(data[valueStart:rightQuote])); err != nil {
				return &VisitorError{Err: err}
			}
			r.buf.consume(rightQuote + 1)
			return r.skipKet()
		case '\n':
			rightQuote += delta
			if err := v.Tag(key, RawTag(data[valueStart:rightQuote])); err != nil {
				return &VisitorError{Err: err}
			}
			r.buf.consume(rightQuote)
			_ = r.skipKet()
			return pgnerrors.Wrap(pgnerrors.ErrUnterminatedTag, "tag value")
		default: // '\\'
			rightQuote += delta + 2
			if rightQuote > len(data) {
				rightQuote = len(data)
			}
		}
	}
}
