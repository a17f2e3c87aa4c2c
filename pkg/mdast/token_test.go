package mdast_test

import (
	"testing"

	"github.com/yaklabco/mdcheck/pkg/mdast"
)

func TestTokenKind_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind mdast.TokenKind
		want string
	}{
		{mdast.TokHeadingOpen, "heading_open"},
		{mdast.TokInline, "inline"},
		{mdast.TokOrderedListClose, "ordered_list_close"},
		{mdast.TokFence, "fence"},
		{mdast.TokOther, "other"},
		{mdast.TokenKind(200), "unknown"},
	}
	for _, tc := range tests {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("%d.String() = %q, want %q", tc.kind, got, tc.want)
		}
	}
}

func TestTokenKind_Predicates(t *testing.T) {
	t.Parallel()

	if !mdast.TokBulletListOpen.IsListOpen() || !mdast.TokOrderedListOpen.IsListOpen() {
		t.Error("list open kinds should report IsListOpen")
	}
	if mdast.TokListItemOpen.IsListOpen() {
		t.Error("list item open is not a list open")
	}
	if !mdast.TokOrderedListClose.IsListClose() {
		t.Error("ordered list close should report IsListClose")
	}
	if !mdast.TokFence.IsLeafBlock() || mdast.TokBlockquoteOpen.IsLeafBlock() {
		t.Error("IsLeafBlock misclassifies containers")
	}
}

func TestToken_Lines(t *testing.T) {
	t.Parallel()

	open := mdast.Token{Kind: mdast.TokParagraphOpen, Lines: mdast.LineRange{Start: 4, End: 7}}
	if !open.HasLines() || open.LineNumber() != 5 {
		t.Errorf("open token: HasLines=%v LineNumber=%d", open.HasLines(), open.LineNumber())
	}
	if open.Lines.Len() != 3 || !open.Lines.Contains(6) || open.Lines.Contains(7) {
		t.Error("LineRange is not half-open")
	}

	closing := mdast.Token{Kind: mdast.TokParagraphClose}
	if closing.HasLines() || closing.LineNumber() != 0 {
		t.Error("closing token should carry no range")
	}
}
