// Package config provides configuration and global state for the
// streaming PGN reader and its command-line tools.
package config

import (
	"io"
	"os"
)

// Config holds the settings a pgn.Reader and the cmd/pgnstream tools need.
// A streaming reader has no filter/duplicate/ECO/annotation concerns,
// since it never holds a parsed game tree to filter or annotate.
type Config struct {
	// MaxTagLineLength bounds a single tag line before it is reported as
	// unterminated. See pgn.Reader.MaxTagLineLength.
	MaxTagLineLength int

	// MaxCommentLength bounds a single `{...}` comment before it is
	// reported as unterminated. See pgn.Reader.MaxCommentLength.
	MaxCommentLength int

	// Verbosity controls how much the CLI reports while processing. 0
	// silences recoverable-parse diagnostics entirely (an unterminated tag
	// or comment skipped to recover the stream); any value >= 1 logs each
	// one, formatted as a GameError, to LogFile.
	Verbosity int

	// LogFile receives diagnostic output (defaults to os.Stderr).
	LogFile io.Writer

	// OutputFile receives rewritten/formatted game output (defaults to
	// os.Stdout).
	OutputFile io.Writer
}

// GlobalConfig is the global configuration instance, set by Init.
var GlobalConfig *Config

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		MaxTagLineLength: 1024,
		MaxCommentLength: 4096,
		Verbosity:        1,
		LogFile:          os.Stderr,
		OutputFile:       os.Stdout,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Init initializes the global configuration.
func Init() {
	GlobalConfig = NewConfig()
}

func init() {
	Init()
}
