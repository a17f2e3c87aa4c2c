package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdcheck/pkg/lint"
	"github.com/yaklabco/mdcheck/pkg/mdast"
	"github.com/yaklabco/mdcheck/pkg/parser/goldmark"
)

// checker is the part of lint.Rule the tests drive.
type checker interface {
	Check(ctx *lint.RuleContext) []int
}

// ruleCase is one input for a table-driven rule test.
type ruleCase struct {
	name  string
	input string
	opts  map[string]any
	want  []int
}

func parse(t testing.TB, input string) *mdast.FileSnapshot {
	t.Helper()

	parser := goldmark.New(goldmark.FlavorCommonMark)
	snapshot, err := parser.Parse(context.Background(), "test.md", []byte(input))
	require.NoError(t, err)
	return snapshot
}

func newContext(t testing.TB, input string, opts map[string]any) *lint.RuleContext {
	t.Helper()
	return lint.NewRuleContext(context.Background(), parse(t, input), opts)
}

func runCases(t *testing.T, rule checker, tests []ruleCase) {
	t.Helper()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rule.Check(newContext(t, tt.input, tt.opts))
			if len(tt.want) == 0 {
				require.Empty(t, got)
				return
			}
			require.Equal(t, tt.want, got)
		})
	}
}
