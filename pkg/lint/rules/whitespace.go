package rules

import (
	"strings"

	"github.com/yaklabco/mdcheck/pkg/lint"
)

// TrailingWhitespaceRule checks for trailing spaces and tabs.
type TrailingWhitespaceRule struct {
	lint.BaseRule
}

// NewTrailingWhitespaceRule creates a new trailing whitespace rule.
func NewTrailingWhitespaceRule() *TrailingWhitespaceRule {
	return &TrailingWhitespaceRule{
		BaseRule: lint.NewBaseRule(
			"MD009",
			"trailing-whitespace",
			"Trailing spaces",
			"whitespace",
		),
	}
}

// Check flags every line that ends in whitespace.
func (r *TrailingWhitespaceRule) Check(ctx *lint.RuleContext) []int {
	var lines []int
	for idx, line := range ctx.Lines() {
		if lint.HasTrailingWhitespace(line) {
			lines = append(lines, idx+1)
		}
	}
	return lines
}

// HardTabsRule checks for hard tab characters.
type HardTabsRule struct {
	lint.BaseRule
}

// NewHardTabsRule creates a new hard tabs rule.
func NewHardTabsRule() *HardTabsRule {
	return &HardTabsRule{
		BaseRule: lint.NewBaseRule(
			"MD010",
			"hard-tabs",
			"Hard tabs",
			"whitespace",
		),
	}
}

// Check flags every line containing a tab, code included.
func (r *HardTabsRule) Check(ctx *lint.RuleContext) []int {
	var lines []int
	for idx, line := range ctx.Lines() {
		if strings.ContainsRune(line, '\t') {
			lines = append(lines, idx+1)
		}
	}
	return lines
}

// MultipleBlankLinesRule checks for consecutive blank lines.
type MultipleBlankLinesRule struct {
	lint.BaseRule
}

// NewMultipleBlankLinesRule creates a new multiple blank lines rule.
func NewMultipleBlankLinesRule() *MultipleBlankLinesRule {
	return &MultipleBlankLinesRule{
		BaseRule: lint.NewBaseRule(
			"MD012",
			"multiple-blank-lines",
			"Multiple consecutive blank lines",
			"whitespace", "blank_lines",
		),
	}
}

// Check flags the second line of every adjacent pair of blank lines outside
// code. A run of n blank lines flags n-1 lines.
func (r *MultipleBlankLinesRule) Check(ctx *lint.RuleContext) []int {
	codeMap := ctx.CodeMap()

	var (
		lines     []int
		prevBlank bool
	)
	for idx, line := range ctx.Lines() {
		blank := lint.IsBlank(line) && !codeMap.InCode(idx)
		if blank && prevBlank {
			lines = append(lines, idx+1)
		}
		prevBlank = blank
	}
	return lines
}
