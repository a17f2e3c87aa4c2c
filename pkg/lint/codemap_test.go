package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdcheck/pkg/lint"
	"github.com/yaklabco/mdcheck/pkg/mdast"
)

func TestClassifyLines_FenceAsymmetry(t *testing.T) {
	lines := []string{"text", "```go", "code", "```", "after"}

	got := lint.ClassifyLines(lines, nil)

	want := lint.CodeMap{
		{InCode: false, IsFence: false},
		{InCode: true, IsFence: true},
		{InCode: true, IsFence: false},
		{InCode: false, IsFence: true},
		{InCode: false, IsFence: false},
	}
	assert.Equal(t, want, got)
}

func TestClassifyLines_IndentedCode(t *testing.T) {
	snap := mdast.NewBuilder("t.md", "para\n\n    code\n    more\n\nend\n").
		Paragraph(0, 1).
		Add(mdast.TokCodeBlock, 2, 4).
		Paragraph(5, 6).
		Build()

	got := lint.ClassifyLines(snap.Lines, snap.Tokens)

	for idx, want := range []bool{false, false, true, true, false, false} {
		assert.Equal(t, want, got.InCode(idx), "line %d", idx)
	}
	assert.False(t, got.IsFence(2))
}

func TestClassifyLines_TildeFence(t *testing.T) {
	lines := []string{"~~~", "x", "~~~", "`` not a fence"}

	got := lint.ClassifyLines(lines, nil)

	assert.True(t, got.IsFence(0))
	assert.True(t, got.InCode(1))
	assert.True(t, got.IsFence(2))
	assert.False(t, got.InCode(2))
	assert.False(t, got.IsFence(3))
}

func TestClassifyLines_IndentedDelimiterIsNotAFence(t *testing.T) {
	snap := mdast.NewBuilder("t.md", "Text\n\n    ```\n    code\n\nPara\n\n\nEnd\n").
		Add(mdast.TokCodeBlock, 2, 4).
		Build()
	lines := snap.Lines

	got := lint.ClassifyLines(lines, snap.Tokens)

	assert.False(t, got.IsFence(2))
	assert.True(t, got.InCode(2))
	assert.True(t, got.InCode(3))
	for idx := 4; idx < len(lines); idx++ {
		assert.False(t, got.InCode(idx), "line %d", idx)
	}
}

func TestClassifyLines_UnclosedFenceRunsToEnd(t *testing.T) {
	got := lint.ClassifyLines([]string{"```", "a", "b"}, nil)

	assert.True(t, got.InCode(0))
	assert.True(t, got.InCode(1))
	assert.True(t, got.InCode(2))
}

func TestClassifyLines_Idempotent(t *testing.T) {
	snap := mdast.NewBuilder("t.md", "```\nx\n```\n\n    y\n").
		Add(mdast.TokFence, 0, 3).
		Add(mdast.TokCodeBlock, 4, 5).
		Build()

	first := lint.ClassifyLines(snap.Lines, snap.Tokens)
	second := lint.ClassifyLines(snap.Lines, snap.Tokens)

	assert.Equal(t, first, second)
}

func TestCodeMap_OutOfRange(t *testing.T) {
	var m lint.CodeMap
	assert.False(t, m.InCode(-1))
	assert.False(t, m.InCode(3))
	assert.False(t, m.IsFence(0))
}
