package rules

import (
	"fmt"
	"unicode"

	"github.com/yaklabco/mdcheck/pkg/lint"
)

// LineLengthOptions configures MD013.
type LineLengthOptions struct {
	// LineLength is the column after which a line may not break.
	LineLength int `mapstructure:"line_length"`

	// CodeBlocks includes lines inside code blocks.
	CodeBlocks bool `mapstructure:"code_blocks"`

	// Headings includes heading lines.
	Headings bool `mapstructure:"headings"`
}

// Validate rejects non-positive limits.
func (o *LineLengthOptions) Validate() error {
	if o.LineLength < 1 {
		return fmt.Errorf("line_length %d: must be at least 1", o.LineLength)
	}
	return nil
}

// LineLengthRule checks for lines longer than a configured limit.
type LineLengthRule struct {
	lint.BaseRule
}

// NewLineLengthRule creates a new line length rule.
func NewLineLengthRule() *LineLengthRule {
	return &LineLengthRule{
		BaseRule: lint.NewBaseRule(
			"MD013",
			"line-length",
			"Line length",
			"line_length",
		),
	}
}

// DefaultOptions returns the default MD013 options.
func (r *LineLengthRule) DefaultOptions() any {
	return &LineLengthOptions{LineLength: 80, CodeBlocks: true, Headings: true}
}

// Check flags lines that could have been broken before the limit: a line
// flags when whitespace occurs at or beyond the limit column. A long
// unbroken run such as a URL is left alone.
func (r *LineLengthRule) Check(ctx *lint.RuleContext) []int {
	opts, _ := r.DefaultOptions().(*LineLengthOptions)
	ctx.LoadOptions(opts)

	codeMap := ctx.CodeMap()
	headingLines := make(map[int]bool)
	if !opts.Headings {
		for _, heading := range ctx.Headings() {
			for idx := heading.Token.Lines.Start; idx < heading.Token.Lines.End; idx++ {
				headingLines[idx] = true
			}
		}
	}

	var lines []int
	for idx, line := range ctx.Lines() {
		if !opts.CodeBlocks && (codeMap.InCode(idx) || codeMap.IsFence(idx)) {
			continue
		}
		if headingLines[idx] {
			continue
		}
		if breaksAfter(line, opts.LineLength) {
			lines = append(lines, idx+1)
		}
	}
	return lines
}

// breaksAfter reports whether line has whitespace at rune index limit or later.
func breaksAfter(line string, limit int) bool {
	var col int
	for _, r := range line {
		if col >= limit && unicode.IsSpace(r) {
			return true
		}
		col++
	}
	return false
}

// Suggest reports the measured length of the line.
func (r *LineLengthRule) Suggest(ctx *lint.RuleContext, line int) string {
	opts, _ := r.DefaultOptions().(*LineLengthOptions)
	ctx.LoadOptions(opts)

	lines := ctx.Lines()
	if line < 1 || line > len(lines) {
		return ""
	}
	return fmt.Sprintf("line is %d characters, limit is %d", len([]rune(lines[line-1])), opts.LineLength)
}
