// Package errors provides sentinel errors and error types used across the
// module: sentinel errors created with errors.New, structured error types
// that preserve context while supporting errors.Is()/errors.As(), and
// Wrap/Wrapf helpers for adding context without discarding the underlying
// error.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the recoverable conditions the streaming parser can
// raise. Use errors.Is() to check for one of these specifically.
var (
	// ErrUnterminatedTag indicates a tag line exceeded MaxTagLineLength, or
	// its value never found its closing quote before the next newline.
	ErrUnterminatedTag = errors.New("unterminated tag")

	// ErrUnterminatedComment indicates a "{...}" comment exceeded
	// MaxCommentLength before its closing '}'.
	ErrUnterminatedComment = errors.New("unterminated comment")

	// ErrParseFailure indicates a general PGN parsing error that the
	// reader could not recover from.
	ErrParseFailure = errors.New("parse failure")

	// ErrInvalidConfig indicates invalid configuration values were
	// supplied to NewReader/NewConfig.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// GameError wraps an error with enough context to locate which game (and
// roughly where in it) the error came from. Since this parser never builds
// a move tree, it carries the byte offset where the reader was positioned
// when the error surfaced, rather than a ply number or move text.
type GameError struct {
	Err        error  // the underlying error
	GameNum    int    // 1-based game number in the stream
	ByteOffset int64  // byte offset into the stream, if known (-1 if not)
	File       string // source file name, if known
}

// Error returns a formatted error message including all available context.
func (e *GameError) Error() string {
	var ctx string
	if e.File != "" {
		ctx = e.File + ": "
	}
	ctx += fmt.Sprintf("game %d", e.GameNum)
	if e.ByteOffset >= 0 {
		ctx += fmt.Sprintf(" (offset %d)", e.ByteOffset)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", ctx, e.Err)
	}
	return ctx
}

// Unwrap returns the underlying error, enabling errors.Is()/errors.As() to
// work through the GameError wrapper.
func (e *GameError) Unwrap() error {
	return e.Err
}

// ParseError represents a parsing error with file/line/column context,
// used for CLI diagnostics.
type ParseError struct {
	Err    error
	File   string
	Line   int
	Column int
}

func (e *ParseError) Error() string {
	loc := e.File
	if e.Line > 0 {
		loc = fmt.Sprintf("%s:%d", loc, e.Line)
		if e.Column > 0 {
			loc = fmt.Sprintf("%s:%d", loc, e.Column)
		}
	}
	if loc != "" {
		return fmt.Sprintf("%s: %v", loc, e.Err)
	}
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error for
// inspection with errors.Is()/errors.As(). Returns nil if err is nil.
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is()/errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
