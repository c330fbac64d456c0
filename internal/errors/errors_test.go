package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Are verifies that sentinel errors are properly defined
// and can be checked with errors.Is().
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrUnterminatedTag", ErrUnterminatedTag, ErrUnterminatedTag},
		{"ErrUnterminatedComment", ErrUnterminatedComment, ErrUnterminatedComment},
		{"ErrParseFailure", ErrParseFailure, ErrParseFailure},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected.
func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("failed to read tag: %w", ErrUnterminatedTag)

	if !errors.Is(wrapped, ErrUnterminatedTag) {
		t.Errorf("errors.Is(wrapped, ErrUnterminatedTag) = false, want true")
	}
}

// TestGameError_Error verifies the error message format.
func TestGameError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *GameError
		contains []string
	}{
		{
			name: "full context",
			err: &GameError{
				Err:        ErrUnterminatedComment,
				GameNum:    5,
				ByteOffset: 1024,
				File:       "games.pgn",
			},
			contains: []string{"game 5", "1024", "games.pgn", "unterminated comment"},
		},
		{
			name: "minimal context",
			err: &GameError{
				Err:        ErrParseFailure,
				GameNum:    1,
				ByteOffset: -1,
			},
			contains: []string{"game 1", "parse failure"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("GameError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestGameError_Unwrap verifies that GameError properly implements Unwrap.
func TestGameError_Unwrap(t *testing.T) {
	gameErr := &GameError{
		Err:        ErrUnterminatedTag,
		GameNum:    1,
		ByteOffset: -1,
		File:       "test.pgn",
	}

	unwrapped := errors.Unwrap(gameErr)
	if !errors.Is(unwrapped, ErrUnterminatedTag) {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, ErrUnterminatedTag)
	}

	if !errors.Is(gameErr, ErrUnterminatedTag) {
		t.Error("errors.Is(gameErr, ErrUnterminatedTag) = false, want true")
	}
}

// TestGameError_As verifies that errors.As works with GameError.
func TestGameError_As(t *testing.T) {
	gameErr := &GameError{
		Err:        ErrUnterminatedComment,
		GameNum:    3,
		ByteOffset: 4096,
	}

	wrapped := fmt.Errorf("processing failed: %w", gameErr)

	var extractedErr *GameError
	if !errors.As(wrapped, &extractedErr) {
		t.Fatal("errors.As() could not extract GameError")
	}

	if extractedErr.GameNum != 3 {
		t.Errorf("extractedErr.GameNum = %d, want 3", extractedErr.GameNum)
	}
	if extractedErr.ByteOffset != 4096 {
		t.Errorf("extractedErr.ByteOffset = %d, want 4096", extractedErr.ByteOffset)
	}
}

// TestParseError_Error verifies ParseError formatting.
func TestParseError_Error(t *testing.T) {
	err := &ParseError{
		Err:    ErrParseFailure,
		File:   "tournament.pgn",
		Line:   100,
		Column: 15,
	}

	msg := err.Error()

	if !containsIgnoreCase(msg, "tournament.pgn") {
		t.Errorf("ParseError.Error() should contain filename, got %q", msg)
	}
	if !containsIgnoreCase(msg, "100") {
		t.Errorf("ParseError.Error() should contain line number, got %q", msg)
	}
}

// TestParseError_Unwrap verifies ParseError implements Unwrap.
func TestParseError_Unwrap(t *testing.T) {
	parseErr := &ParseError{
		Err:  ErrParseFailure,
		File: "query.pgn",
		Line: 1,
	}

	if !errors.Is(parseErr, ErrParseFailure) {
		t.Error("errors.Is(parseErr, ErrParseFailure) = false, want true")
	}
}

// TestWrap verifies the Wrap helper function.
func TestWrap(t *testing.T) {
	original := ErrUnterminatedTag
	wrapped := Wrap(original, "parsing tag pair")

	if !errors.Is(wrapped, ErrUnterminatedTag) {
		t.Error("Wrap should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "parsing tag pair") {
		t.Errorf("Wrap should include context, got %q", msg)
	}
}

// TestWrap_Nil verifies Wrap returns nil for a nil error.
func TestWrap_Nil(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil, ...) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function.
func TestWrapf(t *testing.T) {
	original := ErrUnterminatedComment
	wrapped := Wrapf(original, "comment in game %d", 3)

	if !errors.Is(wrapped, ErrUnterminatedComment) {
		t.Error("Wrapf should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "game 3") {
		t.Errorf("Wrapf should include formatted context, got %q", msg)
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
