package lint

import (
	"strings"

	"github.com/yaklabco/mdcheck/pkg/mdast"
)

// LineClass is the code classification of a single line.
type LineClass struct {
	// InCode is true for lines inside an indented code block or a fenced
	// region, including the opening fence and excluding the closing one.
	InCode bool

	// IsFence is true when the line itself is a fence delimiter.
	IsFence bool
}

// CodeMap classifies every line of a document, indexed from 0.
type CodeMap []LineClass

// InCode reports whether the 0-indexed line is code. Out of range is false.
func (m CodeMap) InCode(idx int) bool {
	return idx >= 0 && idx < len(m) && m[idx].InCode
}

// IsFence reports whether the 0-indexed line is a fence delimiter.
func (m CodeMap) IsFence(idx int) bool {
	return idx >= 0 && idx < len(m) && m[idx].IsFence
}

// fenceState is the accumulator of the classification fold: true while
// inside a fenced region.
type fenceState bool

// step folds one line into the state. The returned state is the one the
// line is classified with, so an opening fence is inside and a closing
// fence is outside.
func (s fenceState) step(line string) (fenceState, bool) {
	if !isFenceDelimiter(line) {
		return s, false
	}
	return !s, true
}

// isFenceDelimiter reports whether line starts with three backticks or
// three tildes. Indented delimiters do not count, so a fence quoted inside
// an indented code block leaves the toggle alone.
func isFenceDelimiter(line string) bool {
	return strings.HasPrefix(line, "```") || strings.HasPrefix(line, "~~~")
}

// ClassifyLines builds the CodeMap for lines. Indented code comes from
// code_block token ranges; fenced regions come from a single left-to-right
// toggle over the raw lines.
func ClassifyLines(lines []string, tokens []mdast.Token) CodeMap {
	indented := make(map[int]bool)
	for _, tok := range tokens {
		if tok.Kind != mdast.TokCodeBlock {
			continue
		}
		for idx := tok.Lines.Start; idx < tok.Lines.End; idx++ {
			indented[idx] = true
		}
	}

	classes := make(CodeMap, len(lines))
	var state fenceState
	for idx, line := range lines {
		var fence bool
		state, fence = state.step(line)
		classes[idx] = LineClass{
			InCode:  bool(state) || indented[idx],
			IsFence: fence,
		}
	}

	return classes
}
