package pretty

import (
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Rule catalog table layout.
const (
	defaultTermWidth    = 100
	minDescriptionWidth = 20
	descriptionColumn   = 4
	enabledMark         = "yes"
	disabledMark        = "no"
)

// RuleRow is one line of the rule catalog table.
type RuleRow struct {
	ID          string
	Name        string
	Description string
	Aliases     []string
	Enabled     bool
}

// RenderRulesTable writes the rule catalog to w. termWidth bounds the row
// length; the description column wraps to fit. A non-positive width uses
// a default.
func RenderRulesTable(w io.Writer, rows []RuleRow, termWidth int, colorEnabled bool) {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	if colorEnabled {
		t.Style().Color.Header = text.Colors{text.Bold}
		t.Style().Color.Border = text.Colors{text.FgHiBlack}
		t.Style().Color.Separator = text.Colors{text.FgHiBlack}
	}

	t.AppendHeader(table.Row{"Code", "Name", "Enabled", "Description", "Aliases"})
	for _, row := range rows {
		enabled := enabledMark
		if !row.Enabled {
			enabled = disabledMark
		}
		t.AppendRow(table.Row{row.ID, row.Name, enabled, row.Description, strings.Join(row.Aliases, "\n")})
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: descriptionColumn, WidthMax: descriptionWidth(rows, termWidth)},
	})

	t.Render()
}

// descriptionWidth leaves room for the other columns and the borders.
func descriptionWidth(rows []RuleRow, termWidth int) int {
	code, name, alias := len("Code"), len("Name"), len("Aliases")
	for _, row := range rows {
		code = max(code, len(row.ID))
		name = max(name, len(row.Name))
		for _, a := range row.Aliases {
			alias = max(alias, len(a))
		}
	}
	// Five columns with one space of padding each side and six borders.
	const chrome = 5*2 + 6
	return max(termWidth-code-name-len("Enabled")-alias-chrome, minDescriptionWidth)
}
