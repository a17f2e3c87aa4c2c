package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/mdcheck/internal/ui/pretty"
	"github.com/yaklabco/mdcheck/pkg/analysis"
)

// TextRenderer writes violations grouped by file as styled terminal output.
type TextRenderer struct {
	opts   Options
	styles *pretty.Styles
}

// NewTextRenderer creates a new text renderer.
func NewTextRenderer(opts Options) *TextRenderer {
	return &TextRenderer{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
	}
}

// Render implements Renderer.
func (r *TextRenderer) Render(_ context.Context, report *analysis.Report) (err error) {
	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	for _, fileErr := range report.Errors {
		fmt.Fprint(bw, r.styles.FormatFileError(fileErr))
	}

	counts := make(map[string]int, len(report.ByFile))
	for _, fa := range report.ByFile {
		counts[fa.Path] = fa.Issues
	}

	current := ""
	for i, v := range report.Violations {
		if v.File != current {
			if i > 0 {
				fmt.Fprintln(bw)
			}
			current = v.File
			fmt.Fprintln(bw, r.styles.FormatFileHeader(v.File, counts[v.File]))
		}
		fmt.Fprint(bw, r.styles.FormatViolation(v, r.opts.ShowContext, v.Source))
	}

	if r.opts.ShowSummary {
		if len(report.Violations) > 0 {
			fmt.Fprintln(bw)
		}
		fmt.Fprint(bw, r.styles.FormatSummaryOneLine(report.Totals))
	}

	return nil
}
