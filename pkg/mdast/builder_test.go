package mdast_test

import (
	"testing"

	"github.com/yaklabco/mdcheck/pkg/mdast"
)

func TestBuilder_HeadingAndParagraph(t *testing.T) {
	t.Parallel()

	snap := mdast.NewBuilder("doc.md", "## Title ##\n\nfirst\nsecond\n").
		Heading(2, 0).
		Paragraph(2, 4).
		Build()

	kinds := make([]mdast.TokenKind, 0, len(snap.Tokens))
	for _, tok := range snap.Tokens {
		kinds = append(kinds, tok.Kind)
	}
	want := []mdast.TokenKind{
		mdast.TokHeadingOpen, mdast.TokInline, mdast.TokHeadingClose,
		mdast.TokParagraphOpen, mdast.TokInline, mdast.TokParagraphClose,
	}
	if len(kinds) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(kinds), len(want))
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, kinds[i], want[i])
		}
	}

	heading := snap.Tokens[0]
	if heading.Level != 2 || heading.SourceLine != "## Title ##" {
		t.Errorf("heading: level=%d source=%q", heading.Level, heading.SourceLine)
	}
	if snap.Tokens[1].Content != "Title" {
		t.Errorf("heading inline = %q, want %q", snap.Tokens[1].Content, "Title")
	}
	if snap.Tokens[4].Content != "first\nsecond" {
		t.Errorf("paragraph inline = %q", snap.Tokens[4].Content)
	}
	if snap.Tokens[5].HasLines() {
		t.Error("paragraph_close should have no range")
	}
}

func TestBuilder_AddOptions(t *testing.T) {
	t.Parallel()

	snap := mdast.NewBuilder("", "```go\nx\n```\n").
		Add(mdast.TokFence, 0, 3, mdast.WithMarkup("```"), mdast.WithInfo("go"), mdast.WithContent("x\n")).
		Build()

	fence := snap.Tokens[0]
	if fence.Markup != "```" || fence.Info != "go" || fence.Content != "x\n" {
		t.Errorf("unexpected fence token: %+v", fence)
	}
	if fence.SourceLine != "```go" {
		t.Errorf("SourceLine = %q", fence.SourceLine)
	}
}
