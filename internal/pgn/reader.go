package pgn

import (
	"bytes"
	"io"

	"github.com/lgbarn/pgn-stream-go/internal/config"
)

// Default limits matching the limits the streaming parser was validated
// against: a tag line longer than this, or a comment longer than this,
// before its closing delimiter is treated as unterminated input rather
// than grown without bound.
const (
	DefaultMaxTagLineLength = 1024
	DefaultMaxCommentLength = 4096
)

// Reader parses PGN games one at a time from an io.Reader, dispatching
// structured callbacks to a Visitor. It never buffers more than one game's
// worth of lookahead, so arbitrarily large PGN collections can be streamed
// without loading the whole file.
//
// A Reader is not safe for concurrent use.
type Reader struct {
	src io.Reader
	buf *buffer

	// MaxTagLineLength bounds how far readTags will look for a tag line's
	// closing '"'/']' before reporting ErrUnterminatedTag.
	MaxTagLineLength int

	// MaxCommentLength bounds how far readMovetext will look for a
	// comment's closing '}' before reporting ErrUnterminatedComment.
	MaxCommentLength int
}

// NewReader returns a Reader with default tag-line and comment length
// limits, reading from src.
func NewReader(src io.Reader) *Reader {
	return &Reader{
		src:              src,
		buf:              newBuffer(),
		MaxTagLineLength: DefaultMaxTagLineLength,
		MaxCommentLength: DefaultMaxCommentLength,
	}
}

// NewReaderWithConfig returns a Reader whose limits come from cfg, reading
// from src. A nil cfg is equivalent to NewReader.
func NewReaderWithConfig(src io.Reader, cfg *config.Config) *Reader {
	if cfg == nil {
		return NewReader(src)
	}
	return &Reader{
		src:              src,
		buf:              newBuffer(),
		MaxTagLineLength: cfg.MaxTagLineLength,
		MaxCommentLength: cfg.MaxCommentLength,
	}
}

// VisitorError wraps an error returned by a Visitor callback, distinguishing
// it from an I/O or recoverable-parse error. Unwrap it with errors.As to
// recover the original visitor error.
type VisitorError struct {
	Err error
}

func (e *VisitorError) Error() string { return e.Err.Error() }
func (e *VisitorError) Unwrap() error { return e.Err }

var bom = []byte{0xef, 0xbb, 0xbf}

// skipBOM consumes a leading UTF-8 byte-order mark, if present.
func (r *Reader) skipBOM() error {
	data, err := r.buf.ensure(3, r.src)
	if err != nil {
		return err
	}
	if bytes.HasPrefix(data, bom) {
		r.buf.consume(3)
	}
	return nil
}

// ReadGame reads a single game, dispatching to v, and reports whether a
// game was found at all. A return of (false, nil) means the underlying
// source held nothing but whitespace: there is no more input.
//
// An error returned from a Visitor callback is wrapped in *VisitorError;
// any other error is an I/O error (including ErrUnterminatedTag and
// ErrUnterminatedComment, both of which the reader recovers from at the
// byte level, leaving the stream positioned to parse the next game). Check
// for a visitor error with errors.As(err, &vErr).
func (r *Reader) ReadGame(v Visitor) (bool, error) {
	if err := r.skipBOM(); err != nil {
		return false, err
	}
	if err := r.skipWhitespace(); err != nil {
		return false, err
	}

	data, err := r.buf.ensure(1, r.src)
	if err != nil {
		return false, err
	}
	if len(data) == 0 {
		return false, nil
	}

	if err := v.BeginTags(); err != nil {
		return true, &VisitorError{Err: err}
	}
	if err := r.readTags(v); err != nil {
		return true, err
	}

	skip, err := v.BeginMovetext()
	if err != nil {
		return true, &VisitorError{Err: err}
	}

	if !skip {
		if err := r.readMovetext(v); err != nil {
			return true, err
		}
	} else {
		if err := r.skipMovetext(); err != nil {
			return true, err
		}
	}

	if err := r.skipWhitespace(); err != nil {
		return true, err
	}

	v.EndGame()
	return true, nil
}

// SkipGame skips a single game without dispatching any movetext or tag
// callbacks, and reports whether a game was found.
func (r *Reader) SkipGame() (bool, error) {
	return r.ReadGame(skipVisitor{})
}

// ReadAll reads every game in the stream, dispatching each to v, stopping
// at the first error or at end of input.
func (r *Reader) ReadAll(v Visitor) error {
	for {
		more, err := r.ReadGame(v)
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

// HasMore reports whether the reader has another game to parse, without
// parsing it. It consumes leading whitespace and any BOM as a side effect.
func (r *Reader) HasMore() (bool, error) {
	if err := r.skipBOM(); err != nil {
		return false, err
	}
	if err := r.skipWhitespace(); err != nil {
		return false, err
	}
	data, err := r.buf.ensure(1, r.src)
	if err != nil {
		return false, err
	}
	return len(data) > 0, nil
}

// Rest returns an io.Reader over the bytes the Reader has not yet
// consumed: its own internal lookahead buffer, followed by whatever
// remains of the original source.
func (r *Reader) Rest() io.Reader {
	leftover := append([]byte(nil), r.buf.available()...)
	return io.MultiReader(bytes.NewReader(leftover), r.src)
}

// Games reads every game in the stream, calling yield after each one.
// yield receives the 1-based game number and any error from ReadGame; it
// returns false to stop iteration early. Games returns once yield has seen
// an error, yield returns false, or the input is exhausted. The visitor v
// is shared across every game, exactly as with ReadAll.
func Games(r *Reader, v Visitor, yield func(gameNum int, err error) bool) {
	n := 0
	for {
		more, err := r.ReadGame(v)
		if err != nil {
			yield(n+1, err)
			return
		}
		if !more {
			return
		}
		n++
		if !yield(n, nil) {
			return
		}
	}
}
