package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/mdcheck/pkg/analysis"
)

// contextIndent aligns source context and suggestions under a violation.
const contextIndent = "    "

// FormatViolation formats one violation as
// "  path:line  description  (rule)", followed by the source line when
// showContext is set and the suggestion when there is one.
func (s *Styles) FormatViolation(v analysis.Violation, showContext bool, sourceLine string) string {
	var builder strings.Builder

	location := s.FilePath.Render(v.File) + s.Location.Render(fmt.Sprintf(":%d", v.Line))

	fmt.Fprintf(&builder, "  %s  %s  %s\n",
		location,
		s.Message.Render(v.Description),
		s.RuleID.Render("("+v.Rule+")"),
	)

	if showContext && sourceLine != "" {
		builder.WriteString(contextIndent + s.SourceLine.Render(sourceLine) + "\n")
	}

	if v.Suggestion != "" {
		builder.WriteString(contextIndent + s.Dim.Render("Suggestion:") + " " +
			s.Suggestion.Render(v.Suggestion) + "\n")
	}

	return builder.String()
}

// FormatFileError formats a file that could not be linted.
func (s *Styles) FormatFileError(e analysis.FileError) string {
	return fmt.Sprintf("%s: %s\n", s.FilePath.Render(e.File), s.Error.Render("error: "+e.Message))
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, issueCount int) string {
	header := s.FilePath.Render(path)
	switch {
	case issueCount == 1:
		header += s.Dim.Render(" (1 issue)")
	case issueCount > 1:
		header += s.Dim.Render(fmt.Sprintf(" (%d issues)", issueCount))
	}
	return header
}
