package rules

import "testing"

func TestTrailingWhitespaceRule(t *testing.T) {
	runCases(t, NewTrailingWhitespaceRule(), []ruleCase{
		{name: "clean", input: "text\n"},
		{name: "two trailing spaces", input: "text  \n", want: []int{1}},
		{name: "trailing tab", input: "ok\ntext\t\n", want: []int{2}},
		{name: "inside code", input: "```\ncode \n```\n", want: []int{2}},
		{name: "whitespace only line", input: "a\n \nb\n", want: []int{2}},
	})
}

func TestHardTabsRule(t *testing.T) {
	runCases(t, NewHardTabsRule(), []ruleCase{
		{name: "spaces", input: "  text\n"},
		{name: "tab inside", input: "a\tb\n", want: []int{1}},
		{name: "tab in code", input: "text\n\n```\n\tcode\n```\n", want: []int{4}},
	})
}

func TestMultipleBlankLinesRule(t *testing.T) {
	runCases(t, NewMultipleBlankLinesRule(), []ruleCase{
		{name: "single blank", input: "a\n\nb\n"},
		{name: "two blanks", input: "a\n\n\nb\n", want: []int{3}},
		{name: "three blanks flag the second and third", input: "a\n\n\n\nb\n", want: []int{3, 4}},
		{name: "whitespace only counts as blank", input: "a\n \n\t\nb\n", want: []int{3}},
		{name: "inside fenced code", input: "```\n\n\n```\n"},
		{
			name:  "fence quoted in indented code",
			input: "Text\n\n    ```\n    code\n\nPara\n\n\nEnd\n",
			want:  []int{8},
		},
		{name: "empty document", input: ""},
	})
}
