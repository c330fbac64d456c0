package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/lgbarn/pgn-stream-go/internal/pgn"
)

// lineWriter wraps movetext at maxLineLength columns, the token/line-wrap
// discipline the teacher's output package uses, but speaking directly in
// terms of the pgn package's visitor-callback types (RawTag, SanPlus, Nag,
// RawComment, Outcome) instead of pre-stringified tokens: formatting a tag
// line, a move-number prefix, or a check suffix happens once here rather
// than in the caller before it ever reaches a writer.
type lineWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

func newLineWriter(w io.Writer, maxLineLength int) *lineWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &lineWriter{w: w, maxLineLength: maxLineLength}
}

// token writes s, inserting a separating space first (wrapping to a new
// line instead if that space would overflow maxLineLength).
func (lw *lineWriter) token(s string) {
	if lw.needsSpace && len(s) > 0 {
		if lw.lineLength+1+len(s) > lw.maxLineLength {
			fmt.Fprintln(lw.w)
			lw.lineLength = 0
			lw.needsSpace = false
		} else {
			fmt.Fprint(lw.w, " ")
			lw.lineLength++
		}
	}
	fmt.Fprint(lw.w, s)
	lw.lineLength += len(s)
	lw.needsSpace = true
}

// tokenNoSpace writes s directly abutting whatever came before it, for
// punctuation that never gets a leading space of its own (a NAG, a tag
// line's pieces).
func (lw *lineWriter) tokenNoSpace(s string) {
	fmt.Fprint(lw.w, s)
	lw.lineLength += len(s)
	lw.needsSpace = true
}

func (lw *lineWriter) newLine() {
	fmt.Fprintln(lw.w)
	lw.lineLength = 0
	lw.needsSpace = false
}

// writeTag writes one "[Key "Value"]" line from the borrowed key/value a
// Visitor.Tag callback receives.
func (lw *lineWriter) writeTag(key []byte, value pgn.RawTag) {
	lw.tokenNoSpace("[")
	lw.tokenNoSpace(string(key))
	lw.tokenNoSpace(" \"")
	lw.tokenNoSpace(string(value))
	lw.tokenNoSpace("\"]")
	lw.newLine()
}

// writeMoveNumber writes a move's "N." prefix, or "N..." when black's move
// resumes after a comment.
func (lw *lineWriter) writeMoveNumber(ply int, blackContinuation bool) {
	if blackContinuation {
		lw.token(strconv.Itoa(ply) + "...")
	} else {
		lw.token(strconv.Itoa(ply) + ".")
	}
}

func (lw *lineWriter) writeSAN(san pgn.SanPlus) {
	lw.token(san.String())
}

func (lw *lineWriter) writeNAG(nag pgn.Nag) {
	lw.tokenNoSpace(nag.String())
}

func (lw *lineWriter) writeComment(comment pgn.RawComment) {
	lw.token("{" + string(comment) + "}")
}

func (lw *lineWriter) writeOutcome(outcome *pgn.Outcome) {
	if outcome == nil {
		lw.token("*")
	} else {
		lw.token(outcome.String())
	}
}

// RewriteVisitor re-serializes a single game's tags and movetext through a
// lineWriter, canonicalizing whitespace and move-number placement. It
// refuses to descend into variations: this is a flat-mainline rewriter, so
// BeginVariation always requests a skip.
type RewriteVisitor struct {
	pgn.BaseVisitor

	w *lineWriter

	white        bool
	ply          int
	afterComment bool
}

// NewRewriteVisitor creates a visitor that writes canonicalized PGN to w,
// wrapping movetext at maxLineLength columns.
func NewRewriteVisitor(w io.Writer, maxLineLength int) *RewriteVisitor {
	return &RewriteVisitor{w: newLineWriter(w, maxLineLength)}
}

func (r *RewriteVisitor) BeginTags() error {
	r.white = true
	r.ply = 1
	r.afterComment = false
	return nil
}

func (r *RewriteVisitor) Tag(key []byte, value pgn.RawTag) error {
	r.w.writeTag(key, value)
	return nil
}

func (r *RewriteVisitor) BeginMovetext() (pgn.Skip, error) {
	r.w.newLine()
	return pgn.Skip(false), nil
}

func (r *RewriteVisitor) San(san pgn.SanPlus) error {
	if r.white {
		r.w.writeMoveNumber(r.ply, false)
	} else if r.afterComment {
		r.w.writeMoveNumber(r.ply, true)
	}
	r.afterComment = false
	r.w.writeSAN(san)

	r.white = !r.white
	if r.white {
		r.ply++
	}
	return nil
}

func (r *RewriteVisitor) Nag(nag pgn.Nag) error {
	r.w.writeNAG(nag)
	return nil
}

func (r *RewriteVisitor) Comment(comment pgn.RawComment) error {
	r.w.writeComment(comment)
	r.afterComment = true
	return nil
}

func (r *RewriteVisitor) BeginVariation() (pgn.Skip, error) {
	return pgn.Skip(true), nil
}

func (r *RewriteVisitor) Outcome(outcome *pgn.Outcome) error {
	r.w.writeOutcome(outcome)
	return nil
}

func (r *RewriteVisitor) EndGame() {
	r.w.newLine()
	r.w.newLine()
}
