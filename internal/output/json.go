package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/pgn-stream-go/internal/pgn"
)

// JSONMove is one ply, in movetext order. Variations nest as a tree since a
// visitor's BeginVariation/EndVariation calls are themselves nested.
type JSONMove struct {
	MoveNumber int          `json:"moveNumber,omitempty"`
	Color      string       `json:"color"` // "white" or "black"
	SAN        string       `json:"san"`
	NAGs       []string     `json:"nags,omitempty"`
	Comments   []string     `json:"comments,omitempty"`
	Variations [][]JSONMove `json:"variations,omitempty"`
}

// JSONGame is one streamed game: tags plus a flat mainline of moves (no
// board state, since the parser never tracks a position).
type JSONGame struct {
	Tags     map[string]string `json:"tags"`
	Moves    []JSONMove        `json:"moves,omitempty"`
	Result   string            `json:"result,omitempty"`
	PlyCount int               `json:"plyCount,omitempty"`
}

// jsonFrame tracks the move list currently being appended to: the game's
// mainline, or an open variation's move list, pushed/popped as
// BeginVariation/EndVariation fire.
type jsonFrame struct {
	moves *[]JSONMove
	white bool
	ply   int
}

// JSONVisitor accumulates one game at a time into a JSONGame and streams it
// to an encoder as soon as EndGame fires, so the caller never holds more
// than one game's worth of moves in memory.
type JSONVisitor struct {
	pgn.BaseVisitor

	enc   *json.Encoder
	game  *JSONGame
	stack []*jsonFrame

	// Err holds the first encoding error encountered; EndGame cannot return
	// one, since Visitor.EndGame is infallible, so callers check this after
	// streaming is done.
	Err error
}

// NewJSONVisitor creates a visitor that writes one indented JSON object per
// game to w.
func NewJSONVisitor(w io.Writer) *JSONVisitor {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return &JSONVisitor{enc: enc}
}

func (j *JSONVisitor) BeginTags() error {
	j.game = &JSONGame{Tags: make(map[string]string)}
	frame := &jsonFrame{moves: &j.game.Moves, white: true, ply: 1}
	j.stack = []*jsonFrame{frame}
	return nil
}

func (j *JSONVisitor) Tag(key []byte, value pgn.RawTag) error {
	j.game.Tags[string(key)] = string(value)
	return nil
}

func (j *JSONVisitor) San(san pgn.SanPlus) error {
	f := j.top()
	m := JSONMove{SAN: san.String()}
	if f.white {
		m.MoveNumber = f.ply
		m.Color = "white"
	} else {
		m.Color = "black"
	}
	*f.moves = append(*f.moves, m)

	f.white = !f.white
	if f.white {
		f.ply++
	}
	j.game.PlyCount++
	return nil
}

func (j *JSONVisitor) Nag(nag pgn.Nag) error {
	f := j.top()
	if n := len(*f.moves); n > 0 {
		m := &(*f.moves)[n-1]
		m.NAGs = append(m.NAGs, nag.String())
	}
	return nil
}

func (j *JSONVisitor) Comment(comment pgn.RawComment) error {
	f := j.top()
	if n := len(*f.moves); n > 0 {
		m := &(*f.moves)[n-1]
		m.Comments = append(m.Comments, string(comment))
	}
	return nil
}

func (j *JSONVisitor) BeginVariation() (pgn.Skip, error) {
	parent := j.top()
	var varMoves []JSONMove
	if n := len(*parent.moves); n > 0 {
		m := &(*parent.moves)[n-1]
		m.Variations = append(m.Variations, varMoves)
	}
	child := &jsonFrame{moves: &varMoves, white: parent.white, ply: parent.ply}
	j.stack = append(j.stack, child)
	return pgn.Skip(false), nil
}

func (j *JSONVisitor) EndVariation() error {
	if len(j.stack) <= 1 {
		return nil
	}
	child := j.stack[len(j.stack)-1]
	j.stack = j.stack[:len(j.stack)-1]
	parent := j.top()
	if n := len(*parent.moves); n > 0 {
		m := &(*parent.moves)[n-1]
		if k := len(m.Variations); k > 0 {
			m.Variations[k-1] = *child.moves
		}
	}
	return nil
}

func (j *JSONVisitor) Outcome(outcome *pgn.Outcome) error {
	if outcome == nil {
		j.game.Result = "*"
	} else {
		j.game.Result = outcome.String()
	}
	return nil
}

func (j *JSONVisitor) EndGame() {
	if j.game == nil {
		return
	}
	if err := j.enc.Encode(j.game); err != nil && j.Err == nil {
		j.Err = err
	}
	j.game = nil
	j.stack = nil
}

func (j *JSONVisitor) top() *jsonFrame {
	return j.stack[len(j.stack)-1]
}
