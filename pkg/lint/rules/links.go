package rules

import (
	"regexp"
	"strings"

	"github.com/yaklabco/mdcheck/pkg/lint"
	"github.com/yaklabco/mdcheck/pkg/mdast"
)

// reversedLinkPattern matches "(text)[target]".
var reversedLinkPattern = regexp.MustCompile(`\(([^)]+)\)\[([^\]]+)\]`)

// ReversedLinkSyntaxRule checks for links written as (text)[url].
type ReversedLinkSyntaxRule struct {
	lint.BaseRule
}

// NewReversedLinkSyntaxRule creates a new reversed link rule.
func NewReversedLinkSyntaxRule() *ReversedLinkSyntaxRule {
	return &ReversedLinkSyntaxRule{
		BaseRule: lint.NewBaseRule(
			"MD011",
			"reversed-link-syntax",
			"Reversed link syntax",
			"links",
		),
	}
}

// Check flags inline text containing the reversed pattern. Code spans are
// not text and never match; footnote references such as (see)[^1] are
// skipped.
func (r *ReversedLinkSyntaxRule) Check(ctx *lint.RuleContext) []int {
	var indexes []int
	for _, tok := range ctx.Tokens() {
		if tok.Kind != mdast.TokInline || !tok.HasLines() {
			continue
		}
		for _, offset := range reversedLinkOffsets(tok.Children) {
			indexes = append(indexes, tok.Lines.Start+offset)
		}
	}
	return lint.LineNumbers(indexes)
}

// reversedLinkOffsets returns the line offsets, relative to the start of
// the inline token, of text children that contain a reversed link.
func reversedLinkOffsets(children []mdast.Child) []int {
	var (
		offsets []int
		line    int
	)
	for _, child := range children {
		switch child.Kind {
		case mdast.ChildSoftBreak, mdast.ChildHardBreak:
			line++
		case mdast.ChildText:
			for _, match := range reversedLinkPattern.FindAllStringSubmatch(child.Content, -1) {
				if strings.HasPrefix(match[2], "^") {
					continue
				}
				offsets = append(offsets, line)
			}
		default:
		}
	}
	return offsets
}
