package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/mdcheck/pkg/analysis"
)

const summaryDividerWidth = 40

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return "1 " + singular
	}
	return strconv.Itoa(n) + " " + pluralForm
}

// FormatSummaryOneLine formats totals as a single line.
// Example: "12 issues in 3 files (5 files checked)".
func (s *Styles) FormatSummaryOneLine(totals analysis.Totals) string {
	checked := s.Dim.Render(fmt.Sprintf(" (%s checked)", plural(totals.Files, "file", "files")))

	var line string
	if totals.Issues == 0 {
		line = s.Success.Render("No issues found") + checked
	} else {
		line = s.Failure.Render(plural(totals.Issues, "issue", "issues")) +
			" in " + plural(totals.FilesWithIssues, "file", "files") + checked
	}

	if totals.FilesErrored > 0 {
		line += ", " + s.Error.Render(plural(totals.FilesErrored, "file", "files")+" failed")
	}
	return line + "\n"
}

// FormatSummary formats totals as a summary block.
func (s *Styles) FormatSummary(totals analysis.Totals) string {
	var builder strings.Builder

	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(s.TableSeparator.Render(strings.Repeat("-", summaryDividerWidth)))
	builder.WriteString("\n")

	row := func(label string, value string) {
		fmt.Fprintf(&builder, "  %-19s%s\n", label+":", value)
	}

	row("Files checked", s.SummaryValue.Render(strconv.Itoa(totals.Files)))
	if totals.FilesWithIssues > 0 {
		row("Files with issues", s.Failure.Render(strconv.Itoa(totals.FilesWithIssues)))
	}
	if totals.FilesErrored > 0 {
		row("Files failed", s.Error.Render(strconv.Itoa(totals.FilesErrored)))
	}
	row("Total issues", s.SummaryValue.Render(strconv.Itoa(totals.Issues)))

	builder.WriteString("\n")
	if totals.HasIssues() {
		builder.WriteString(s.Failure.Render("Lint failed"))
	} else {
		builder.WriteString(s.Success.Render("Lint passed"))
	}
	builder.WriteString("\n")

	return builder.String()
}
