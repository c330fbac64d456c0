package main

import (
	"github.com/lgbarn/pgn-stream-go/internal/pgn"
)

// countVisitor accumulates per-file statistics: games seen, total plies, and
// total tag pairs. It stays in the mainline only, per branching.rs's
// `begin_variation` returning Skip(true).
type countVisitor struct {
	pgn.BaseVisitor

	games int
	plies int
	tags  int
}

func (c *countVisitor) BeginTags() error {
	c.games++
	return nil
}

func (c *countVisitor) Tag(key []byte, value pgn.RawTag) error {
	c.tags++
	return nil
}

func (c *countVisitor) San(san pgn.SanPlus) error {
	c.plies++
	return nil
}

func (c *countVisitor) BeginVariation() (pgn.Skip, error) {
	return pgn.Skip(true), nil
}

// validateVisitor walks a file to completion and reports whether every game
// reached EndGame without a recoverable parse error (unterminated tag or
// comment). It cannot report on individual malformed SAN/NAG tokens: the
// reader silently drops those rather than erroring, so "valid" here means
// "well formed enough for the reader to recover cleanly," not "every move is
// legal" — this parser never tracks a board to check legality against.
type validateVisitor struct {
	pgn.BaseVisitor

	games int
}

func (v *validateVisitor) BeginTags() error {
	v.games++
	return nil
}

func (v *validateVisitor) BeginVariation() (pgn.Skip, error) {
	return pgn.Skip(true), nil
}
