package rules

import (
	"strings"

	"github.com/yaklabco/mdcheck/pkg/lint"
	"github.com/yaklabco/mdcheck/pkg/mdast"
)

// BlockquoteSpaceAfterSymbolRule checks for extra spaces after the
// blockquote symbol.
type BlockquoteSpaceAfterSymbolRule struct {
	lint.BaseRule
}

// NewBlockquoteSpaceAfterSymbolRule creates a new blockquote spacing rule.
func NewBlockquoteSpaceAfterSymbolRule() *BlockquoteSpaceAfterSymbolRule {
	return &BlockquoteSpaceAfterSymbolRule{
		BaseRule: lint.NewBaseRule(
			"MD027",
			"blockquote-space-after-symbol",
			"Multiple spaces after blockquote symbol",
			"blockquote", "whitespace",
		),
	}
}

// Check flags quote lines where more than one blank follows a '>' marker.
// Only outermost quotes are scanned; nested markers are consumed in turn.
// Lines owned by a list item inside the quote carry structural indentation
// and are skipped, except the first line of an item at the quote's top
// level.
func (r *BlockquoteSpaceAfterSymbolRule) Check(ctx *lint.RuleContext) []int {
	lines := ctx.Lines()
	codeMap := ctx.CodeMap()

	var (
		quotes     []mdast.LineRange
		structural = make(map[int]bool)
		depth      int
		itemDepth  int
	)
	for _, tok := range ctx.Tokens() {
		switch tok.Kind {
		case mdast.TokBlockquoteOpen:
			depth++
			if depth == 1 {
				quotes = append(quotes, tok.Lines)
			}
		case mdast.TokBlockquoteClose:
			depth--
		case mdast.TokListItemOpen:
			if depth == 0 {
				continue
			}
			itemDepth++
			first := tok.Lines.Start + 1
			if itemDepth > 1 {
				first = tok.Lines.Start
			}
			for idx := first; idx < tok.Lines.End; idx++ {
				structural[idx] = true
			}
		case mdast.TokListItemClose:
			if itemDepth > 0 {
				itemDepth--
			}
		default:
		}
	}

	var indexes []int
	for _, quote := range quotes {
		for idx := quote.Start; idx < quote.End && idx < len(lines); idx++ {
			if structural[idx] || codeMap.InCode(idx) || !strings.Contains(lines[idx], ">") {
				continue
			}
			if extraQuoteSpace(lines[idx]) {
				indexes = append(indexes, idx)
			}
		}
	}

	return lint.LineNumbers(indexes)
}

// extraQuoteSpace consumes every '>' marker with its single optional space
// and reports whether whitespace still precedes the content.
func extraQuoteSpace(line string) bool {
	rest := strings.TrimLeft(line, " \t")
	for strings.HasPrefix(rest, ">") {
		rest = strings.TrimPrefix(rest[1:], " ")
	}
	return lint.IsIndented(rest) && !lint.IsBlank(rest)
}

// BlockquoteBlankLineInsideRule checks for blank lines splitting a blockquote.
type BlockquoteBlankLineInsideRule struct {
	lint.BaseRule
}

// NewBlockquoteBlankLineInsideRule creates a new blank line in blockquote rule.
func NewBlockquoteBlankLineInsideRule() *BlockquoteBlankLineInsideRule {
	return &BlockquoteBlankLineInsideRule{
		BaseRule: lint.NewBaseRule(
			"MD028",
			"blockquote-blank-line-inside",
			"Blank line inside blockquote",
			"blockquote", "whitespace",
		),
	}
}

// Check flags the blank line separating a blockquote from the one that
// immediately follows it.
func (r *BlockquoteBlankLineInsideRule) Check(ctx *lint.RuleContext) []int {
	tokens := ctx.Tokens()
	lines := ctx.Lines()

	var (
		result []int
		open   []mdast.Token
	)
	for idx, tok := range tokens {
		switch tok.Kind {
		case mdast.TokBlockquoteOpen:
			open = append(open, tok)
		case mdast.TokBlockquoteClose:
			if len(open) == 0 {
				continue
			}
			closed := open[len(open)-1]
			open = open[:len(open)-1]

			if idx+1 >= len(tokens) || tokens[idx+1].Kind != mdast.TokBlockquoteOpen {
				continue
			}
			next := tokens[idx+1]
			if next.Lines.Start > closed.Lines.End && allBlank(lines, closed.Lines.End, next.Lines.Start) {
				result = append(result, next.Lines.Start)
			}
		default:
		}
	}

	return result
}

// allBlank reports whether lines[from:to] are all blank.
func allBlank(lines []string, from, to int) bool {
	for idx := from; idx < to && idx < len(lines); idx++ {
		if !lint.IsBlank(lines[idx]) {
			return false
		}
	}
	return true
}
