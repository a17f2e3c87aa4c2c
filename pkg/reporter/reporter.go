// Package reporter formats lint results as text, JSON or summary tables.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/mdcheck/pkg/analysis"
	"github.com/yaklabco/mdcheck/pkg/config"
	"github.com/yaklabco/mdcheck/pkg/runner"
)

var (
	_ Reporter = (*reporterFacade)(nil)
	_ Renderer = (*TextRenderer)(nil)
	_ Renderer = (*JSONRenderer)(nil)
	_ Renderer = (*SummaryRenderer)(nil)
)

// Reporter formats and writes lint results.
type Reporter interface {
	// Report writes formatted output for the given result.
	// It returns the number of violations reported and any write error.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// Renderer writes one output format. It sees the analyzed report, never
// the raw runner result.
type Renderer interface {
	Render(ctx context.Context, report *analysis.Report) error
}

// reporterFacade analyzes a result once and hands the report to a Renderer.
type reporterFacade struct {
	renderer     Renderer
	analysisOpts analysis.Options
}

// Report implements Reporter.
func (f *reporterFacade) Report(ctx context.Context, result *runner.Result) (int, error) {
	report := analysis.Analyze(result, f.analysisOpts)
	if err := f.renderer.Render(ctx, report); err != nil {
		return 0, fmt.Errorf("render: %w", err)
	}
	return report.Totals.Issues, nil
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	defaults := DefaultOptions()
	if opts.Writer == nil {
		opts.Writer = defaults.Writer
	}
	if opts.Format == "" {
		opts.Format = defaults.Format
	}
	if opts.RuleFormat == "" {
		opts.RuleFormat = defaults.RuleFormat
	}
	if opts.SortBy == "" {
		opts.SortBy = defaults.SortBy
	}

	var renderer Renderer
	switch opts.Format {
	case config.FormatText:
		renderer = NewTextRenderer(opts)
	case config.FormatJSON:
		renderer = NewJSONRenderer(opts)
	case config.FormatSummary:
		renderer = NewSummaryRenderer(opts)
	default:
		return nil, fmt.Errorf("unsupported format %q; valid formats: text, json, summary", opts.Format)
	}

	return &reporterFacade{
		renderer: renderer,
		analysisOpts: analysis.Options{
			SortBy:     opts.SortBy,
			RuleFormat: opts.RuleFormat,
			WorkingDir: opts.WorkingDir,
		},
	}, nil
}
