package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/mdcheck/internal/ui/pretty"
	"github.com/yaklabco/mdcheck/pkg/lint"
)

const formatJSON = "json"

// defaultTermWidth is used when the output is not a terminal.
const defaultTermWidth = 100

type rulesFlags struct {
	format string
}

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Aliases     []string       `json:"aliases,omitempty"`
	Tags        []string       `json:"tags,omitempty"`
	Enabled     bool           `json:"enabled"`
	Options     map[string]any `json:"options,omitempty"`
}

func newRulesCommand() *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available lint rules",
		Long: `List every rule with its code, name, default enablement, description
and the markdownlint aliases it also answers to.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry := lint.DefaultRegistry
			out := cmd.OutOrStdout()

			switch flags.format {
			case formatJSON:
				return outputRulesJSON(out, registry)
			case "text":
				colorMode, _ := cmd.Flags().GetString("color")
				pretty.RenderRulesTable(out, ruleRows(registry), terminalWidth(out),
					pretty.IsColorEnabled(colorMode, out))
				return nil
			default:
				return fmt.Errorf("%w: --format %q: must be text or json", ErrUsage, flags.format)
			}
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")

	return cmd
}

func ruleRows(registry *lint.Registry) []pretty.RuleRow {
	rules := registry.Rules()
	rows := make([]pretty.RuleRow, 0, len(rules))
	for _, rule := range rules {
		rows = append(rows, pretty.RuleRow{
			ID:          rule.ID(),
			Name:        rule.Name(),
			Description: rule.Description(),
			Aliases:     registry.Aliases(rule.ID()),
			Enabled:     rule.DefaultEnabled(),
		})
	}
	return rows
}

// outputRulesJSON writes the catalog as a JSON array.
func outputRulesJSON(w io.Writer, registry *lint.Registry) error {
	rules := registry.Rules()
	infos := make([]ruleInfo, 0, len(rules))
	for _, rule := range rules {
		info := ruleInfo{
			ID:          rule.ID(),
			Name:        rule.Name(),
			Description: rule.Description(),
			Aliases:     registry.Aliases(rule.ID()),
			Tags:        rule.Tags(),
			Enabled:     rule.DefaultEnabled(),
		}
		opts, err := defaultOptionsMap(rule)
		if err != nil {
			return err
		}
		info.Options = opts
		infos = append(infos, info)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}

// defaultOptionsMap returns the rule's default options in config form, or
// nil for rules without options.
func defaultOptionsMap(rule lint.Rule) (map[string]any, error) {
	configurable, ok := rule.(lint.Configurable)
	if !ok {
		return nil, nil
	}
	opts, err := lint.OptionsMap(configurable.DefaultOptions())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", rule.ID(), err)
	}
	return opts, nil
}

// terminalWidth returns the width of w when it is a terminal.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultTermWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultTermWidth
	}
	return width
}

// usageArgs marks positional argument errors as usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", ErrUsage, err)
		}
		return nil
	}
}
