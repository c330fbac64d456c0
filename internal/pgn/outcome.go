package pgn

// Outcome is the result of a finished or abandoned game: 1-0, 0-1, or
// 1/2-1/2. The `*` ("unknown") token is represented as a nil *Outcome
// passed to Visitor.Outcome, matching spec.md §3 ("Unknown").
type Outcome int

const (
	// WhiteWins corresponds to the "1-0" token.
	WhiteWins Outcome = iota
	// BlackWins corresponds to the "0-1" token.
	BlackWins
	// Draw corresponds to the "1/2-1/2" token.
	Draw
)

func (o Outcome) String() string {
	switch o {
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	default:
		return "*"
	}
}
