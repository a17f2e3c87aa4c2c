package reporter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/mdcheck/pkg/analysis"
)

// JSONOutput is the top-level JSON document.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult holds one file's violations, or the error that stopped
// it from being linted. Clean files are omitted.
type JSONFileResult struct {
	Path       string          `json:"path"`
	Violations []JSONViolation `json:"violations"`
	Error      string          `json:"error,omitempty"`
}

// JSONViolation is one flagged line.
type JSONViolation struct {
	Line        int    `json:"line"`
	RuleID      string `json:"ruleId"`
	RuleName    string `json:"ruleName"`
	Rule        string `json:"rule"`
	Description string `json:"description"`
	Suggestion  string `json:"suggestion,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked    int            `json:"filesChecked"`
	FilesWithIssues int            `json:"filesWithIssues"`
	FilesErrored    int            `json:"filesErrored"`
	TotalIssues     int            `json:"totalIssues"`
	ByRule          map[string]int `json:"byRule"`
}

// JSONRenderer writes the report as indented JSON.
type JSONRenderer struct {
	opts Options
}

// NewJSONRenderer creates a new JSON renderer.
func NewJSONRenderer(opts Options) *JSONRenderer {
	return &JSONRenderer{opts: opts}
}

// Render implements Renderer.
func (r *JSONRenderer) Render(_ context.Context, report *analysis.Report) error {
	encoder := json.NewEncoder(r.opts.Writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(buildJSONOutput(report)); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func buildJSONOutput(report *analysis.Report) JSONOutput {
	out := JSONOutput{
		Version: report.Version,
		Files:   []JSONFileResult{},
		Summary: JSONSummary{
			FilesChecked:    report.Totals.Files,
			FilesWithIssues: report.Totals.FilesWithIssues,
			FilesErrored:    report.Totals.FilesErrored,
			TotalIssues:     report.Totals.Issues,
			ByRule:          make(map[string]int, len(report.ByRule)),
		},
	}

	for _, ra := range report.ByRule {
		out.Summary.ByRule[ra.RuleID] = ra.Issues
	}

	index := make(map[string]int)
	file := func(path string) *JSONFileResult {
		i, ok := index[path]
		if !ok {
			i = len(out.Files)
			index[path] = i
			out.Files = append(out.Files, JSONFileResult{Path: path, Violations: []JSONViolation{}})
		}
		return &out.Files[i]
	}

	for _, v := range report.Violations {
		f := file(v.File)
		f.Violations = append(f.Violations, JSONViolation{
			Line:        v.Line,
			RuleID:      v.RuleID,
			RuleName:    v.RuleName,
			Rule:        v.Rule,
			Description: v.Description,
			Suggestion:  v.Suggestion,
		})
	}
	for _, e := range report.Errors {
		file(e.File).Error = e.Message
	}

	return out
}
