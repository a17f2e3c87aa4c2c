package rules

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/mdcheck/pkg/lint"
	"github.com/yaklabco/mdcheck/pkg/mdast"
)

// Heading styles.
const (
	styleConsistent = "consistent"
	styleATX        = "atx"
	styleATXClosed  = "atx_closed"
	styleSetext     = "setext"
)

// headingStyle classifies a heading_open token. Setext headings span their
// underline; single-line headings are closed when the line ends in a hash.
func headingStyle(tok mdast.Token) string {
	if tok.Lines.Len() > 1 || tok.Markup == "=" || tok.Markup == "-" {
		return styleSetext
	}
	if strings.HasSuffix(strings.TrimRight(tok.SourceLine, " \t"), "#") {
		return styleATXClosed
	}
	return styleATX
}

// HeadingLevelSkipRule checks that heading levels increment by one.
type HeadingLevelSkipRule struct {
	lint.BaseRule
}

// NewHeadingLevelSkipRule creates a new heading level skip rule.
func NewHeadingLevelSkipRule() *HeadingLevelSkipRule {
	return &HeadingLevelSkipRule{
		BaseRule: lint.NewBaseRule(
			"MD001",
			"heading-level-skip",
			"Heading levels should only increment by one level at a time",
			"headings",
		),
	}
}

// Check flags headings more than one level deeper than the heading before them.
func (r *HeadingLevelSkipRule) Check(ctx *lint.RuleContext) []int {
	var (
		lines     []int
		prevLevel int
	)

	for _, heading := range ctx.Headings() {
		level := heading.Level()
		if prevLevel > 0 && level > prevLevel+1 {
			lines = append(lines, heading.Line())
		}
		prevLevel = level
	}

	return lines
}

// Suggest names the level the heading should have used.
func (r *HeadingLevelSkipRule) Suggest(ctx *lint.RuleContext, line int) string {
	var prevLevel int
	for _, heading := range ctx.Headings() {
		if heading.Line() == line && prevLevel > 0 {
			return fmt.Sprintf("use H%d instead of H%d", prevLevel+1, heading.Level())
		}
		prevLevel = heading.Level()
	}
	return ""
}

// FirstHeadingH1Rule checks that the first heading is a top-level heading.
type FirstHeadingH1Rule struct {
	lint.BaseRule
}

// NewFirstHeadingH1Rule creates a new first heading rule.
func NewFirstHeadingH1Rule() *FirstHeadingH1Rule {
	return &FirstHeadingH1Rule{
		BaseRule: lint.NewBaseRule(
			"MD002",
			"first-heading-h1",
			"First heading should be a top level heading",
			"headings",
		),
	}
}

// Check flags the first heading when it is not level 1.
func (r *FirstHeadingH1Rule) Check(ctx *lint.RuleContext) []int {
	headings := ctx.Headings()
	if len(headings) == 0 || headings[0].Level() == 1 {
		return nil
	}
	return []int{headings[0].Line()}
}

// HeadingStyleOptions configures MD003.
type HeadingStyleOptions struct {
	// Style is consistent, atx, atx_closed or setext.
	Style string `mapstructure:"style"`
}

// Validate rejects unknown styles.
func (o *HeadingStyleOptions) Validate() error {
	switch o.Style {
	case styleConsistent, styleATX, styleATXClosed, styleSetext:
		return nil
	default:
		return fmt.Errorf("style %q: want one of consistent, atx, atx_closed, setext", o.Style)
	}
}

// HeadingStyleRule checks that headings use one style.
type HeadingStyleRule struct {
	lint.BaseRule
}

// NewHeadingStyleRule creates a new heading style rule.
func NewHeadingStyleRule() *HeadingStyleRule {
	return &HeadingStyleRule{
		BaseRule: lint.NewBaseRule(
			"MD003",
			"heading-style",
			"Heading style should be consistent",
			"headings",
		),
	}
}

// DefaultOptions returns the default MD003 options.
func (r *HeadingStyleRule) DefaultOptions() any {
	return &HeadingStyleOptions{Style: styleConsistent}
}

// Check flags headings whose style differs from the configured style, or
// from the first heading's style when the style is consistent.
func (r *HeadingStyleRule) Check(ctx *lint.RuleContext) []int {
	opts, _ := r.DefaultOptions().(*HeadingStyleOptions)
	ctx.LoadOptions(opts)

	want := opts.Style
	var lines []int
	for _, heading := range ctx.Headings() {
		style := headingStyle(heading.Token)
		if want == styleConsistent {
			want = style
		}
		if style != want {
			lines = append(lines, heading.Line())
		}
	}

	return lines
}

// HeadingBlankLinesRule checks that headings are surrounded by blank lines.
type HeadingBlankLinesRule struct {
	lint.BaseRule
}

// NewHeadingBlankLinesRule creates a new heading blank lines rule.
func NewHeadingBlankLinesRule() *HeadingBlankLinesRule {
	return &HeadingBlankLinesRule{
		BaseRule: lint.NewBaseRule(
			"MD022",
			"heading-blank-lines",
			"Headings should be surrounded by blank lines",
			"headings", "blank_lines",
		),
	}
}

// Check flags headings that start on the line right after the previous
// block ends, and headings followed by a block on the very next line.
func (r *HeadingBlankLinesRule) Check(ctx *lint.RuleContext) []int {
	var (
		indexes []int
		lastEnd = -1
		heading *mdast.Token
	)

	for _, tok := range ctx.Tokens() {
		if !isBlockBoundary(tok) {
			continue
		}

		if heading != nil && tok.Lines.Start == heading.Lines.End {
			indexes = append(indexes, heading.Lines.Start)
		}
		heading = nil

		if tok.Kind == mdast.TokHeadingOpen {
			if tok.Lines.Start == lastEnd {
				indexes = append(indexes, tok.Lines.Start)
			}
			heading = &tok
		}

		lastEnd = tok.Lines.End
	}

	return lint.LineNumbers(indexes)
}

// isBlockBoundary reports whether tok is a ranged leaf block, including
// opaque blocks such as tables.
func isBlockBoundary(tok mdast.Token) bool {
	if !tok.HasLines() {
		return false
	}
	return tok.Kind.IsLeafBlock() || tok.Kind == mdast.TokOther
}

// HeadingIndentedRule checks that headings start at the beginning of the line.
type HeadingIndentedRule struct {
	lint.BaseRule
}

// NewHeadingIndentedRule creates a new heading indentation rule.
func NewHeadingIndentedRule() *HeadingIndentedRule {
	return &HeadingIndentedRule{
		BaseRule: lint.NewBaseRule(
			"MD023",
			"heading-indented",
			"Headings must start at the beginning of the line",
			"headings", "indentation",
		),
	}
}

// Check flags headings whose first line starts with whitespace.
func (r *HeadingIndentedRule) Check(ctx *lint.RuleContext) []int {
	var lines []int
	for _, heading := range ctx.Headings() {
		if lint.IsIndented(heading.Token.SourceLine) {
			lines = append(lines, heading.Line())
		}
	}
	return lines
}

// HeadingDuplicateContentRule checks for headings with identical text.
type HeadingDuplicateContentRule struct {
	lint.BaseRule
}

// NewHeadingDuplicateContentRule creates a new duplicate heading rule.
func NewHeadingDuplicateContentRule() *HeadingDuplicateContentRule {
	return &HeadingDuplicateContentRule{
		BaseRule: lint.NewBaseRule(
			"MD024",
			"heading-duplicate-content",
			"Multiple headings with the same content",
			"headings",
		),
	}
}

// Check flags every heading whose text exactly matches an earlier heading.
func (r *HeadingDuplicateContentRule) Check(ctx *lint.RuleContext) []int {
	var lines []int
	seen := make(map[string]struct{})

	for _, heading := range ctx.Headings() {
		if _, dup := seen[heading.Text]; dup {
			lines = append(lines, heading.Line())
			continue
		}
		seen[heading.Text] = struct{}{}
	}

	return lines
}

// HeadingSingleH1Rule checks that a document has one top-level heading.
type HeadingSingleH1Rule struct {
	lint.BaseRule
}

// NewHeadingSingleH1Rule creates a new single H1 rule.
func NewHeadingSingleH1Rule() *HeadingSingleH1Rule {
	return &HeadingSingleH1Rule{
		BaseRule: lint.NewBaseRule(
			"MD025",
			"heading-single-h1",
			"Multiple top level headings in the same document",
			"headings",
		),
	}
}

// Check flags level 1 headings after the first heading. A heading on the
// first line of the file never flags.
func (r *HeadingSingleH1Rule) Check(ctx *lint.RuleContext) []int {
	var lines []int
	for idx, heading := range ctx.Headings() {
		if idx == 0 {
			continue
		}
		if heading.Level() == 1 && heading.Token.Lines.Start != 0 {
			lines = append(lines, heading.Line())
		}
	}
	return lines
}

// HeadingTrailingPunctuationOptions configures MD026.
type HeadingTrailingPunctuationOptions struct {
	// Punctuation lists the characters a heading may not end with.
	Punctuation string `mapstructure:"punctuation"`
}

// HeadingTrailingPunctuationRule checks for punctuation at the end of headings.
type HeadingTrailingPunctuationRule struct {
	lint.BaseRule
}

// NewHeadingTrailingPunctuationRule creates a new trailing punctuation rule.
func NewHeadingTrailingPunctuationRule() *HeadingTrailingPunctuationRule {
	return &HeadingTrailingPunctuationRule{
		BaseRule: lint.NewBaseRule(
			"MD026",
			"heading-trailing-punctuation",
			"Trailing punctuation in heading",
			"headings",
		),
	}
}

// DefaultOptions returns the default MD026 options.
func (r *HeadingTrailingPunctuationRule) DefaultOptions() any {
	return &HeadingTrailingPunctuationOptions{Punctuation: ".,;:!?"}
}

// Check flags headings whose text ends in a configured punctuation character.
func (r *HeadingTrailingPunctuationRule) Check(ctx *lint.RuleContext) []int {
	opts, _ := r.DefaultOptions().(*HeadingTrailingPunctuationOptions)
	ctx.LoadOptions(opts)

	if opts.Punctuation == "" {
		return nil
	}

	var lines []int
	for _, heading := range ctx.Headings() {
		text := strings.TrimSpace(heading.Text)
		if text == "" {
			continue
		}
		last, _ := utf8.DecodeLastRuneInString(text)
		if strings.ContainsRune(opts.Punctuation, last) {
			lines = append(lines, heading.Line())
		}
	}
	return lines
}
