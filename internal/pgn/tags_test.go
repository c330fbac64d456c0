package pgn

import (
	"errors"
	"strings"
	"testing"

	pgnerrors "github.com/lgbarn/pgn-stream-go/internal/errors"
)

func TestReadTagsParsesMultipleTags(t *testing.T) {
	r := NewReader(strings.NewReader(`[Event "Test Open"]
[Site "?"]
[Round "1"]

1. e4 e5 1-0
`))
	v := &recordingVisitor{}
	if err := r.readTags(v); err != nil {
		t.Fatalf("readTags: %v", err)
	}

	want := [][2]string{{"Event", "Test Open"}, {"Site", "?"}, {"Round", "1"}}
	if len(v.tags) != len(want) {
		t.Fatalf("got %d tags, want %d", len(v.tags), len(want))
	}
	for i, w := range want {
		if v.tags[i] != w {
			t.Errorf("tag[%d] = %v, want %v", i, v.tags[i], w)
		}
	}
}

func TestReadTagsHandlesEscapedQuote(t *testing.T) {
	r := NewReader(strings.NewReader(`[Event "Foo \"Bar\" Baz"]
`))
	v := &recordingVisitor{}
	if err := r.readTags(v); err != nil {
		t.Fatalf("readTags: %v", err)
	}
	if len(v.tags) != 1 {
		t.Fatalf("got %d tags, want 1", len(v.tags))
	}
	if got, want := v.tags[0][1], `Foo \"Bar\" Baz`; got != want {
		t.Errorf("tag value = %q, want %q", got, want)
	}
}

func TestReadTagsUnterminatedValueRecoversAndReportsError(t *testing.T) {
	r := NewReader(strings.NewReader("[Event \"Unterminated\n[Site \"?\"]\n"))
	v := &recordingVisitor{}

	err := r.readTags(v)
	if !errors.Is(err, pgnerrors.ErrUnterminatedTag) {
		t.Fatalf("readTags error = %v, want wrapping ErrUnterminatedTag", err)
	}
	if len(v.tags) != 1 || v.tags[0][0] != "Event" {
		t.Errorf("tags = %v, want the partial Event tag to still be emitted", v.tags)
	}
}

func TestReadTagsMalformedLineRecovers(t *testing.T) {
	r := NewReader(strings.NewReader("[NoQuotesHere]\n[Site \"?\"]\n\n1-0\n"))
	v := &recordingVisitor{}
	if err := r.readTags(v); err != nil {
		t.Fatalf("readTags: %v", err)
	}
	if len(v.tags) != 1 || v.tags[0][0] != "Site" {
		t.Errorf("tags = %v, want a single Site tag", v.tags)
	}
}
