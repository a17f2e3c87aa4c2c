package config

import (
	"bytes"
	"cmp"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// commentWrapWidth is the maximum width for wrapped comments in templates.
const commentWrapWidth = 70

// RuleInfo contains rule metadata for template generation.
// It is filled by the caller so this package does not import lint.
type RuleInfo struct {
	ID          string
	Name        string
	Description string
	Enabled     bool
	Tags        []string
	Options     map[string]any
}

// DefaultTemplateHeader returns the header written above generated configs.
func DefaultTemplateHeader() string {
	return `# mdcheck configuration
# Rule keys may be codes (MD009), names (trailing-whitespace) or aliases.`
}

// GenerateTemplate renders a commented configuration document listing
// every rule with its default enablement and options.
func GenerateTemplate(rules []RuleInfo) ([]byte, error) {
	sorted := slices.Clone(rules)
	slices.SortFunc(sorted, func(a, b RuleInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})

	rulesNode := &yaml.Node{Kind: yaml.MappingNode}
	for _, rule := range sorted {
		key := &yaml.Node{
			Kind:        yaml.ScalarNode,
			Value:       rule.ID,
			HeadComment: ruleComment(rule),
		}

		value := &yaml.Node{Kind: yaml.MappingNode}
		value.Content = append(value.Content,
			scalar("enabled"), scalar(fmt.Sprintf("%t", rule.Enabled)))
		if len(rule.Options) > 0 {
			var opts yaml.Node
			if err := opts.Encode(rule.Options); err != nil {
				return nil, fmt.Errorf("encode options for %s: %w", rule.ID, err)
			}
			value.Content = append(value.Content, scalar("options"), &opts)
		}

		rulesNode.Content = append(rulesNode.Content, key, value)
	}

	root := &yaml.Node{Kind: yaml.MappingNode}
	root.Content = append(root.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: "flavor", HeadComment: "Markdown flavor: commonmark or gfm"},
		scalar(string(FlavorCommonMark)),
		&yaml.Node{Kind: yaml.ScalarNode, Value: "ignore", HeadComment: "Glob patterns for files to skip"},
		&yaml.Node{Kind: yaml.SequenceNode, Content: []*yaml.Node{scalar("node_modules/**"), scalar("vendor/**")}},
		scalar("rules"),
		rulesNode,
	)

	var buf bytes.Buffer
	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString("\n\n")

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(yamlIndent)
	if err := encoder.Encode(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}); err != nil {
		return nil, fmt.Errorf("encode template: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: value}
}

func ruleComment(rule RuleInfo) string {
	lines := []string{rule.Name + ": " + wrapComment(rule.Description, commentWrapWidth)}
	if len(rule.Tags) > 0 {
		lines = append(lines, "Tags: "+strings.Join(rule.Tags, ", "))
	}
	return strings.Join(lines, "\n")
}

// wrapComment wraps text to fit within maxWidth characters.
func wrapComment(text string, maxWidth int) string {
	if len(text) <= maxWidth {
		return text
	}

	var lines []string
	current := ""
	for _, word := range strings.Fields(text) {
		switch {
		case current == "":
			current = word
		case len(current)+1+len(word) <= maxWidth:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}

	return strings.Join(lines, "\n")
}
