package rules

import (
	"fmt"
	"strings"

	"github.com/yaklabco/mdcheck/pkg/langdetect"
	"github.com/yaklabco/mdcheck/pkg/lint"
	"github.com/yaklabco/mdcheck/pkg/mdast"
)

// CodeFenceBlankLinesRule checks for blank lines around fenced code.
type CodeFenceBlankLinesRule struct {
	lint.BaseRule
}

// NewCodeFenceBlankLinesRule creates a new fence blank lines rule.
func NewCodeFenceBlankLinesRule() *CodeFenceBlankLinesRule {
	return &CodeFenceBlankLinesRule{
		BaseRule: lint.NewBaseRule(
			"MD031",
			"code-fence-blank-lines",
			"Fenced code blocks should be surrounded by blank lines",
			"code", "blank_lines",
		),
	}
}

// Check flags an opening fence preceded by a non-empty line and a closing
// fence followed by one. Document edges count as empty; whitespace-only
// lines do not.
func (r *CodeFenceBlankLinesRule) Check(ctx *lint.RuleContext) []int {
	lines := ctx.Lines()
	codeMap := ctx.CodeMap()

	var result []int
	for idx := range lines {
		if !codeMap.IsFence(idx) {
			continue
		}

		neighbour := idx + 1
		if codeMap.InCode(idx) {
			neighbour = idx - 1
		}
		if neighbour < 0 || neighbour >= len(lines) {
			continue
		}
		if lines[neighbour] != "" {
			result = append(result, idx+1)
		}
	}
	return result
}

// CodeDollarWithoutOutputRule checks for shell sessions that show no output.
type CodeDollarWithoutOutputRule struct {
	lint.BaseRule
}

// NewCodeDollarWithoutOutputRule creates a new dollar sign rule.
func NewCodeDollarWithoutOutputRule() *CodeDollarWithoutOutputRule {
	return &CodeDollarWithoutOutputRule{
		BaseRule: lint.NewBaseRule(
			"MD014",
			"code-dollar-without-output",
			"Dollar signs used before commands without showing output",
			"code",
		),
	}
}

// Check flags code blocks whose every non-empty line starts with "$ ".
func (r *CodeDollarWithoutOutputRule) Check(ctx *lint.RuleContext) []int {
	var result []int
	for _, tok := range ctx.Tokens() {
		if tok.Kind != mdast.TokCodeBlock && tok.Kind != mdast.TokFence {
			continue
		}
		if allDollarPrompts(tok.Content) {
			result = append(result, tok.LineNumber())
		}
	}
	return result
}

func allDollarPrompts(content string) bool {
	var seen int
	for line := range strings.SplitSeq(content, "\n") {
		if lint.IsBlank(line) {
			continue
		}
		if !strings.HasPrefix(strings.TrimLeft(line, " \t"), "$ ") {
			return false
		}
		seen++
	}
	return seen > 0
}

// CodeFenceLanguageOptions configures MD040.
type CodeFenceLanguageOptions struct {
	// Detect enables language suggestions guessed from the block body.
	Detect bool `mapstructure:"detect"`
}

// CodeFenceLanguageRule checks that fenced code declares a language.
type CodeFenceLanguageRule struct {
	lint.BaseRule
}

// NewCodeFenceLanguageRule creates a new fence language rule.
func NewCodeFenceLanguageRule() *CodeFenceLanguageRule {
	return &CodeFenceLanguageRule{
		BaseRule: lint.NewBaseRule(
			"MD040",
			"code-fence-language",
			"Fenced code blocks should have a language specified",
			"code", "language",
		),
	}
}

// DefaultOptions returns the default MD040 options.
func (r *CodeFenceLanguageRule) DefaultOptions() any {
	return &CodeFenceLanguageOptions{Detect: true}
}

// Check flags fences with an empty info string.
func (r *CodeFenceLanguageRule) Check(ctx *lint.RuleContext) []int {
	var result []int
	for _, tok := range ctx.Tokens() {
		if tok.Kind == mdast.TokFence && strings.TrimSpace(tok.Info) == "" {
			result = append(result, tok.LineNumber())
		}
	}
	return result
}

// Suggest names the language detected from the body of the fence on line.
func (r *CodeFenceLanguageRule) Suggest(ctx *lint.RuleContext, line int) string {
	opts, _ := r.DefaultOptions().(*CodeFenceLanguageOptions)
	ctx.LoadOptions(opts)
	if !opts.Detect {
		return ""
	}

	for _, tok := range ctx.Tokens() {
		if tok.Kind != mdast.TokFence || tok.LineNumber() != line {
			continue
		}
		lang := langdetect.Detect([]byte(tok.Content))
		if lang == "" || lang == langdetect.Unknown {
			return ""
		}
		return fmt.Sprintf("add a language, e.g. %s%s", tok.Markup, lang)
	}
	return ""
}
