package analysis

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdcheck/pkg/config"
	"github.com/yaklabco/mdcheck/pkg/lint"
	"github.com/yaklabco/mdcheck/pkg/mdast"
	"github.com/yaklabco/mdcheck/pkg/runner"
)

func outcome(path string, results ...lint.RuleResult) runner.FileOutcome {
	return runner.FileOutcome{
		Path: path,
		Result: &lint.PipelineResult{
			FileResult: &lint.FileResult{Results: results},
			Path:       path,
		},
	}
}

func sampleResult() *runner.Result {
	return &runner.Result{
		Files: []runner.FileOutcome{
			outcome("/work/a.md",
				lint.RuleResult{
					RuleID: "MD001", RuleName: "heading-level-skip", Description: "Heading levels increment by one",
					Lines:       []int{7},
					Suggestions: map[int]string{7: "use H2 instead of H3"},
				},
				lint.RuleResult{
					RuleID: "MD009", RuleName: "trailing-whitespace", Description: "Trailing whitespace",
					Lines: []int{2, 7},
				},
			),
			outcome("/work/b.md"),
			outcome("/work/docs/c.md",
				lint.RuleResult{
					RuleID: "MD009", RuleName: "trailing-whitespace", Description: "Trailing whitespace",
					Lines: []int{1},
				},
			),
			{Path: "/work/d.md", Error: errors.New("file too large")},
		},
	}
}

func TestAnalyze_EmptyResult(t *testing.T) {
	t.Parallel()

	for _, result := range []*runner.Result{nil, {}} {
		report := Analyze(result, DefaultOptions())
		require.NotNil(t, report)
		assert.Equal(t, ReportVersion, report.Version)
		assert.False(t, report.Totals.HasIssues())
		assert.NotNil(t, report.Violations)
		assert.Empty(t, report.ByFile)
		assert.Empty(t, report.ByRule)
	}
}

func TestAnalyze_Totals(t *testing.T) {
	t.Parallel()

	report := Analyze(sampleResult(), DefaultOptions())

	assert.Equal(t, Totals{Files: 4, FilesWithIssues: 2, FilesErrored: 1, Issues: 4}, report.Totals)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, FileError{File: "/work/d.md", Message: "file too large"}, report.Errors[0])
}

func TestAnalyze_ViolationsOrderedByLineThenRule(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.WorkingDir = "/work"
	opts.RuleFormat = config.RuleFormatCombined
	report := Analyze(sampleResult(), opts)

	require.Len(t, report.Violations, 4)
	got := make([][3]any, 0, len(report.Violations))
	for _, v := range report.Violations {
		got = append(got, [3]any{v.File, v.Line, v.RuleID})
	}
	assert.Equal(t, [][3]any{
		{"a.md", 2, "MD009"},
		{"a.md", 7, "MD001"},
		{"a.md", 7, "MD009"},
		{"docs/c.md", 1, "MD009"},
	}, got)

	assert.Equal(t, "MD001/heading-level-skip", report.Violations[1].Rule)
	assert.Equal(t, "use H2 instead of H3", report.Violations[1].Suggestion)
	assert.Empty(t, report.Violations[0].Suggestion)
}

func TestAnalyze_ByRule(t *testing.T) {
	t.Parallel()

	report := Analyze(sampleResult(), Options{SortBy: SortByCount, WorkingDir: "/work"})

	require.Len(t, report.ByRule, 2)
	assert.Equal(t, "MD009", report.ByRule[0].RuleID)
	assert.Equal(t, 3, report.ByRule[0].Issues)
	assert.Equal(t, []string{"a.md", "docs/c.md"}, report.ByRule[0].Files)
	assert.Equal(t, "trailing-whitespace", report.ByRule[0].Rule)
	assert.Equal(t, "MD001", report.ByRule[1].RuleID)

	alpha := Analyze(sampleResult(), Options{SortBy: SortByAlpha})
	assert.Equal(t, "MD001", alpha.ByRule[0].RuleID)
}

func TestAnalyze_ByFile(t *testing.T) {
	t.Parallel()

	report := Analyze(sampleResult(), Options{SortBy: SortByCount, WorkingDir: "/work"})

	require.Len(t, report.ByFile, 2, "clean and errored files are omitted")
	assert.Equal(t, FileAnalysis{Path: "a.md", Issues: 3, Rules: []string{"MD001", "MD009"}}, report.ByFile[0])
	assert.Equal(t, FileAnalysis{Path: "docs/c.md", Issues: 1, Rules: []string{"MD009"}}, report.ByFile[1])
}

func TestSortField_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, SortByCount.IsValid())
	assert.True(t, SortByAlpha.IsValid())
	assert.False(t, SortField("severity").IsValid())
}

func TestAnalyze_SourceLines(t *testing.T) {
	t.Parallel()

	result := &runner.Result{Files: []runner.FileOutcome{outcome("a.md",
		lint.RuleResult{RuleID: "MD009", RuleName: "trailing-whitespace", Lines: []int{2}},
	)}}
	result.Files[0].Result.Snapshot = mdast.NewFileSnapshot("a.md", []byte("# Title\ntext  \n"))

	report := Analyze(result, DefaultOptions())
	require.Len(t, report.Violations, 1)
	assert.Equal(t, "text  ", report.Violations[0].Source)
}
