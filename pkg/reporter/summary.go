package reporter

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yaklabco/mdcheck/internal/ui/pretty"
	"github.com/yaklabco/mdcheck/pkg/analysis"
)

// Summary table layout. Both tables share one width.
const (
	tableWidth        = 78
	ruleColWidth      = 40
	fileColWidth      = 60
	numColWidth       = 7
	filesColWidth     = 7
	maxRuleNameLength = 38
	maxFilePathLength = 58
)

// padRight pads s to width. Call before applying styles.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// padLeft pads s to width. Call before applying styles.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// SummaryRenderer writes per-rule and per-file count tables.
type SummaryRenderer struct {
	styles *pretty.Styles
	out    io.Writer
}

// NewSummaryRenderer creates a new summary renderer.
func NewSummaryRenderer(opts Options) *SummaryRenderer {
	return &SummaryRenderer{
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
		out:    opts.Writer,
	}
}

// Render implements Renderer.
func (r *SummaryRenderer) Render(_ context.Context, report *analysis.Report) error {
	var b strings.Builder

	for _, fileErr := range report.Errors {
		b.WriteString(r.styles.FormatFileError(fileErr))
	}

	if report.Totals.HasIssues() {
		r.renderRuleTable(&b, report.ByRule)
		b.WriteString("\n")
		r.renderFileTable(&b, report.ByFile)
		b.WriteString("\n")
	}
	b.WriteString(r.styles.FormatSummary(report.Totals))

	if _, err := io.WriteString(r.out, b.String()); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}

func (r *SummaryRenderer) separator(b *strings.Builder) {
	b.WriteString(r.styles.TableSeparator.Render(strings.Repeat("─", tableWidth)) + "\n")
}

func (r *SummaryRenderer) renderRuleTable(b *strings.Builder, rules []analysis.RuleAnalysis) {
	b.WriteString(r.styles.Bold.Render("Rules") + "\n")
	r.separator(b)
	fmt.Fprintf(b, "%s %s %s\n",
		r.styles.TableHeader.Render(padRight("Rule", ruleColWidth)),
		r.styles.TableHeader.Render(padLeft("Count", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Files", filesColWidth)),
	)
	r.separator(b)

	for _, rule := range rules {
		name := rule.Rule
		if name == "" {
			name = rule.RuleID
		}
		if len(name) > maxRuleNameLength {
			name = name[:maxRuleNameLength] + "…"
		}
		fmt.Fprintf(b, "%s %s %s\n",
			r.styles.RuleID.Render(padRight(name, ruleColWidth)),
			padLeft(strconv.Itoa(rule.Issues), numColWidth),
			padLeft(strconv.Itoa(len(rule.Files)), filesColWidth),
		)
	}
}

func (r *SummaryRenderer) renderFileTable(b *strings.Builder, files []analysis.FileAnalysis) {
	b.WriteString(r.styles.Bold.Render("Files") + "\n")
	r.separator(b)
	fmt.Fprintf(b, "%s %s\n",
		r.styles.TableHeader.Render(padRight("File", fileColWidth)),
		r.styles.TableHeader.Render(padLeft("Count", numColWidth)),
	)
	r.separator(b)

	for _, file := range files {
		path := file.Path
		if len(path) > maxFilePathLength {
			path = "…" + path[len(path)-(maxFilePathLength-1):]
		}
		fmt.Fprintf(b, "%s %s\n",
			r.styles.FilePath.Render(padRight(path, fileColWidth)),
			padLeft(strconv.Itoa(file.Issues), numColWidth),
		)
	}
}
