package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeadingLevelSkipRule(t *testing.T) {
	runCases(t, NewHeadingLevelSkipRule(), []ruleCase{
		{name: "valid increments", input: "# H1\n\n## H2\n\n### H3\n"},
		{name: "skip from H2 to H4", input: "# H1\n\n## H2\n\n#### H4\n", want: []int{5}},
		{name: "multiple skips", input: "# A\n\n### B\n\n##### C\n", want: []int{3, 5}},
		{name: "decreasing levels allowed", input: "# H1\n\n## H2\n\n# H1 again\n"},
		{name: "first heading can be any level", input: "### H3\n\n#### H4\n"},
		{name: "no headings", input: "just text\n"},
		{name: "empty document", input: ""},
	})
}

func TestHeadingLevelSkipRule_Suggest(t *testing.T) {
	rule := NewHeadingLevelSkipRule()
	ctx := newContext(t, "# H1\n\n### H3\n", nil)

	assert.Equal(t, "use H2 instead of H3", rule.Suggest(ctx, 3))
	assert.Empty(t, rule.Suggest(ctx, 1))
}

func TestFirstHeadingH1Rule(t *testing.T) {
	runCases(t, NewFirstHeadingH1Rule(), []ruleCase{
		{name: "starts with h1", input: "# A\n\n### B\n"},
		{name: "starts with h2", input: "## A\n\n# B\n", want: []int{1}},
		{name: "first heading after text", input: "intro\n\n## Sub\n", want: []int{3}},
		{name: "only the first heading is checked", input: "# A\n\n## B\n\n#### C\n"},
		{name: "no headings", input: "text\n"},
	})
}

func TestHeadingStyleRule(t *testing.T) {
	runCases(t, NewHeadingStyleRule(), []ruleCase{
		{name: "consistent atx", input: "# A\n\n## B\n"},
		{name: "atx then closed", input: "# A\n\n## B ##\n", want: []int{3}},
		{name: "setext fixes the style", input: "A\n===\n\n# B\n", want: []int{4}},
		{name: "setext levels one and two", input: "A\n===\n\nB\n---\n"},
		{
			name:  "unknown style falls back to consistent",
			input: "# A\n\n## B\n",
			opts:  map[string]any{"style": "bogus"},
		},
		{
			name:  "explicit atx",
			input: "A\n===\n\n# B\n",
			opts:  map[string]any{"style": "atx"},
			want:  []int{1},
		},
		{
			name:  "explicit setext",
			input: "# A\n\nB\n---\n",
			opts:  map[string]any{"style": "setext"},
			want:  []int{1},
		},
		{
			name:  "explicit atx_closed",
			input: "# A #\n\n## B\n",
			opts:  map[string]any{"style": "atx_closed"},
			want:  []int{3},
		},
		{name: "no headings fix no style", input: "text\n"},
	})
}

func TestHeadingStyleOptions_Validate(t *testing.T) {
	assert.NoError(t, (&HeadingStyleOptions{Style: "setext"}).Validate())
	assert.Error(t, (&HeadingStyleOptions{Style: "underline"}).Validate())
}

func TestHeadingBlankLinesRule(t *testing.T) {
	runCases(t, NewHeadingBlankLinesRule(), []ruleCase{
		{name: "surrounded", input: "# A\n\n## B\n\ntext\n"},
		{name: "text right after", input: "# A\ntext\n", want: []int{1}},
		{name: "text right before", input: "text\n# A\n", want: []int{2}},
		{name: "both sides reported once", input: "text\n# A\nmore\n", want: []int{2}},
		{name: "adjacent headings", input: "# A\n## B\n", want: []int{1, 2}},
		{name: "fence right after", input: "# A\n```\ncode\n```\n", want: []int{1}},
		{name: "heading at document edges", input: "# A\n"},
	})
}

func TestHeadingIndentedRule(t *testing.T) {
	runCases(t, NewHeadingIndentedRule(), []ruleCase{
		{name: "flush left", input: "# A\n\n## B\n"},
		{name: "one space", input: " # A\n", want: []int{1}},
		{name: "second heading indented", input: "# A\n\n   ## B\n", want: []int{3}},
	})
}

func TestHeadingDuplicateContentRule(t *testing.T) {
	runCases(t, NewHeadingDuplicateContentRule(), []ruleCase{
		{name: "unique", input: "# A\n\n## B\n"},
		{name: "same text different level", input: "# A\n\n## A\n", want: []int{3}},
		{name: "case sensitive", input: "# A\n\n## a\n"},
		{name: "every repeat flags", input: "# A\n\n## B\n\n### A\n\n## A\n", want: []int{5, 7}},
		{name: "code span text counts", input: "# `x`\n\n# x\n", want: []int{3}},
		{name: "no headings", input: "text\n\ntext\n"},
	})
}

func TestHeadingSingleH1Rule(t *testing.T) {
	runCases(t, NewHeadingSingleH1Rule(), []ruleCase{
		{name: "single h1", input: "# A\n\n## B\n"},
		{name: "second h1", input: "# A\n\n# B\n", want: []int{3}},
		{name: "first heading is skipped", input: "## A\n\n# B\n\n# C\n", want: []int{3, 5}},
		{name: "text before", input: "text\n\n# A\n\n# B\n", want: []int{5}},
	})
}

func TestHeadingTrailingPunctuationRule(t *testing.T) {
	runCases(t, NewHeadingTrailingPunctuationRule(), []ruleCase{
		{name: "clean", input: "# Heading\n"},
		{name: "period", input: "# Heading.\n", want: []int{1}},
		{name: "question mark", input: "# Why?\n", want: []int{1}},
		{name: "setext", input: "Heading:\n---\n", want: []int{1}},
		{
			name:  "custom set",
			input: "# Why?\n\n## Done.\n",
			opts:  map[string]any{"punctuation": "."},
			want:  []int{3},
		},
		{
			name:  "empty set disables",
			input: "# Done.\n",
			opts:  map[string]any{"punctuation": ""},
		},
		{name: "empty heading", input: "#\n"},
	})
}

func TestHeadingNoSpaceATXRule(t *testing.T) {
	runCases(t, NewHeadingNoSpaceATXRule(), []ruleCase{
		{name: "with space", input: "# Heading\n"},
		{name: "missing space", input: "#Heading\n", want: []int{1}},
		{name: "deeper heading", input: "text\n\n###Heading\n", want: []int{3}},
		{name: "closed style left to closed rule", input: "#Heading#\n"},
		{name: "inside fence", input: "```\n#comment\n```\n"},
		{name: "hash run only", input: "###\n"},
	})
}

func TestHeadingMultiSpaceATXRule(t *testing.T) {
	runCases(t, NewHeadingMultiSpaceATXRule(), []ruleCase{
		{name: "single space", input: "# Heading\n"},
		{name: "two spaces", input: "#  Heading\n", want: []int{1}},
		{name: "closed headings skipped", input: "##   Heading ##\n"},
		{name: "setext skipped", input: "Heading\n===\n"},
	})
}

func TestHeadingSpaceClosedATXRule(t *testing.T) {
	runCases(t, NewHeadingSpaceClosedATXRule(), []ruleCase{
		{name: "spaced", input: "# Heading #\n"},
		{name: "missing both", input: "#Heading#\n", want: []int{1}},
		{name: "missing closing space", input: "# Heading#\n", want: []int{1}},
		{name: "missing opening space", input: "#Heading #\n", want: []int{1}},
		{name: "open atx", input: "# Heading\n"},
		{name: "hash run only", input: "#####\n"},
	})
}

func TestHeadingMultiSpaceClosedATXRule(t *testing.T) {
	runCases(t, NewHeadingMultiSpaceClosedATXRule(), []ruleCase{
		{name: "spaced", input: "# Heading #\n"},
		{name: "after opening", input: "#  Heading #\n", want: []int{1}},
		{name: "before closing", input: "# Heading  #\n", want: []int{1}},
		{name: "open atx skipped", input: "#  Heading\n"},
	})
}
