package pgn

// recordingVisitor collects every callback it receives, for assertions in
// table-driven tests. It embeds BaseVisitor so new Visitor methods default
// to no-ops instead of breaking every test that constructs one.
type recordingVisitor struct {
	BaseVisitor

	beginTagsCount int
	tags           [][2]string
	beginMovetext  int
	skipMovetext   bool
	sans           []SanPlus
	nags           []Nag
	comments       []string
	beginVariation int
	skipVariation  bool
	endVariation   int
	outcomes       []*Outcome
	endGameCount   int
}

func (v *recordingVisitor) BeginTags() error {
	v.beginTagsCount++
	return nil
}

func (v *recordingVisitor) Tag(key []byte, value RawTag) error {
	v.tags = append(v.tags, [2]string{string(key), string(value)})
	return nil
}

func (v *recordingVisitor) BeginMovetext() (Skip, error) {
	v.beginMovetext++
	return Skip(v.skipMovetext), nil
}

func (v *recordingVisitor) San(san SanPlus) error {
	v.sans = append(v.sans, san)
	return nil
}

func (v *recordingVisitor) Nag(nag Nag) error {
	v.nags = append(v.nags, nag)
	return nil
}

func (v *recordingVisitor) Comment(comment RawComment) error {
	v.comments = append(v.comments, string(comment))
	return nil
}

func (v *recordingVisitor) BeginVariation() (Skip, error) {
	v.beginVariation++
	return Skip(v.skipVariation), nil
}

func (v *recordingVisitor) EndVariation() error {
	v.endVariation++
	return nil
}

func (v *recordingVisitor) Outcome(outcome *Outcome) error {
	v.outcomes = append(v.outcomes, outcome)
	return nil
}

func (v *recordingVisitor) EndGame() {
	v.endGameCount++
}
