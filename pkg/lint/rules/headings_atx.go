package rules

import (
	"regexp"
	"strings"

	"github.com/yaklabco/mdcheck/pkg/lint"
)

var (
	// atxNoSpacePattern matches a hash run followed directly by text.
	atxNoSpacePattern = regexp.MustCompile(`^#+[^#\s]`)

	// atxMultiSpacePattern matches a hash run followed by two or more blanks.
	atxMultiSpacePattern = regexp.MustCompile(`^#+[ \t]{2,}`)

	// closedMultiSpacePattern matches two or more blanks before a closing hash run.
	closedMultiSpacePattern = regexp.MustCompile(`[^\s#][ \t]{2,}#+$`)
)

// HeadingNoSpaceATXRule checks for a missing space after the hashes of an
// atx heading.
type HeadingNoSpaceATXRule struct {
	lint.BaseRule
}

// NewHeadingNoSpaceATXRule creates a new missing space rule.
func NewHeadingNoSpaceATXRule() *HeadingNoSpaceATXRule {
	return &HeadingNoSpaceATXRule{
		BaseRule: lint.NewBaseRule(
			"MD018",
			"heading-no-space-atx",
			"No space after hash on atx style heading",
			"headings", "atx",
		),
	}
}

// Check scans raw lines, since "#Heading" parses as a paragraph. Lines that
// end in a hash belong to the closed-atx check.
func (r *HeadingNoSpaceATXRule) Check(ctx *lint.RuleContext) []int {
	codeMap := ctx.CodeMap()

	var indexes []int
	for idx, line := range ctx.Lines() {
		if codeMap.InCode(idx) || codeMap.IsFence(idx) {
			continue
		}
		if !atxNoSpacePattern.MatchString(line) {
			continue
		}
		if strings.HasSuffix(strings.TrimRight(line, " \t"), "#") {
			continue
		}
		indexes = append(indexes, idx)
	}

	return lint.LineNumbers(indexes)
}

// HeadingMultiSpaceATXRule checks for extra spaces after the hashes of an
// atx heading.
type HeadingMultiSpaceATXRule struct {
	lint.BaseRule
}

// NewHeadingMultiSpaceATXRule creates a new multiple space rule.
func NewHeadingMultiSpaceATXRule() *HeadingMultiSpaceATXRule {
	return &HeadingMultiSpaceATXRule{
		BaseRule: lint.NewBaseRule(
			"MD019",
			"heading-multi-space-atx",
			"Multiple spaces after hash on atx style heading",
			"headings", "atx",
		),
	}
}

// Check flags atx headings with two or more blanks after the opening hashes.
func (r *HeadingMultiSpaceATXRule) Check(ctx *lint.RuleContext) []int {
	var lines []int
	for _, heading := range ctx.Headings() {
		if headingStyle(heading.Token) != styleATX {
			continue
		}
		if atxMultiSpacePattern.MatchString(strings.TrimLeft(heading.Token.SourceLine, " \t")) {
			lines = append(lines, heading.Line())
		}
	}
	return lines
}

// HeadingSpaceClosedATXRule checks for a missing space inside the hash
// runs of a closed atx heading.
type HeadingSpaceClosedATXRule struct {
	lint.BaseRule
}

// NewHeadingSpaceClosedATXRule creates a new closed atx missing space rule.
func NewHeadingSpaceClosedATXRule() *HeadingSpaceClosedATXRule {
	return &HeadingSpaceClosedATXRule{
		BaseRule: lint.NewBaseRule(
			"MD020",
			"heading-space-closed-atx",
			"No space inside hashes on closed atx style heading",
			"headings", "atx_closed",
		),
	}
}

// Check scans raw lines for closed-atx candidates: a line starting and
// ending in hashes with text between them.
func (r *HeadingSpaceClosedATXRule) Check(ctx *lint.RuleContext) []int {
	codeMap := ctx.CodeMap()

	var indexes []int
	for idx, line := range ctx.Lines() {
		if codeMap.InCode(idx) || codeMap.IsFence(idx) {
			continue
		}
		if missingClosedSpace(line) {
			indexes = append(indexes, idx)
		}
	}

	return lint.LineNumbers(indexes)
}

func missingClosedSpace(line string) bool {
	trimmed := strings.TrimRight(line, " \t")
	if !strings.HasPrefix(trimmed, "#") || !strings.HasSuffix(trimmed, "#") {
		return false
	}

	inner := strings.Trim(trimmed, "#")
	if strings.TrimSpace(inner) == "" {
		return false
	}

	return !lint.IsIndented(inner) || !lint.HasTrailingWhitespace(inner)
}

// HeadingMultiSpaceClosedATXRule checks for extra spaces inside the hash
// runs of a closed atx heading.
type HeadingMultiSpaceClosedATXRule struct {
	lint.BaseRule
}

// NewHeadingMultiSpaceClosedATXRule creates a new closed atx multiple space rule.
func NewHeadingMultiSpaceClosedATXRule() *HeadingMultiSpaceClosedATXRule {
	return &HeadingMultiSpaceClosedATXRule{
		BaseRule: lint.NewBaseRule(
			"MD021",
			"heading-multi-space-closed-atx",
			"Multiple spaces inside hashes on closed atx style heading",
			"headings", "atx_closed",
		),
	}
}

// Check flags closed atx headings with two or more blanks inside either
// hash run.
func (r *HeadingMultiSpaceClosedATXRule) Check(ctx *lint.RuleContext) []int {
	var lines []int
	for _, heading := range ctx.Headings() {
		if headingStyle(heading.Token) != styleATXClosed {
			continue
		}
		source := strings.TrimSpace(heading.Token.SourceLine)
		if atxMultiSpacePattern.MatchString(source) || closedMultiSpacePattern.MatchString(source) {
			lines = append(lines, heading.Line())
		}
	}
	return lines
}
