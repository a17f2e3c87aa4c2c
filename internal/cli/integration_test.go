package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdcheck/internal/cli"
)

// trailingSpaces triggers MD009 on line 1 and nothing else.
const trailingSpaces = "# Hello World   \n\nSome text.\n"

const clean = "# Title\n\nSome text.\n"

// writeMarkdown creates name with content in a fresh directory along with
// an empty config file, and returns both paths.
func writeMarkdown(t *testing.T, name, content string) (string, string) {
	t.Helper()

	dir := t.TempDir()
	mdFile := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(mdFile, []byte(content), 0o644))

	cfgFile := filepath.Join(dir, "mdcheck.yml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("flavor: commonmark\n"), 0o644))
	return mdFile, cfgFile
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(testInfo())
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), err
}

func TestIntegration_CleanFile(t *testing.T) {
	t.Parallel()

	mdFile, cfgFile := writeMarkdown(t, "clean.md", clean)

	out, err := execute(t, "lint", "--config", cfgFile, "--color", "never", mdFile)
	require.NoError(t, err)
	assert.Contains(t, out, "No issues found (1 file checked)")
}

func TestIntegration_RuleFormatFlag(t *testing.T) {
	t.Parallel()

	mdFile, cfgFile := writeMarkdown(t, "test.md", trailingSpaces)

	tests := []struct {
		ruleFormat string
		want       string
		notWant    string
	}{
		{ruleFormat: "name", want: "(trailing-whitespace)", notWant: "MD009"},
		{ruleFormat: "id", want: "(MD009)", notWant: "trailing-whitespace"},
		{ruleFormat: "combined", want: "(MD009/trailing-whitespace)"},
	}

	for _, tt := range tests {
		t.Run(tt.ruleFormat, func(t *testing.T) {
			t.Parallel()

			out, err := execute(t, "lint",
				"--config", cfgFile,
				"--rule-format", tt.ruleFormat,
				"--color", "never",
				mdFile,
			)
			require.ErrorIs(t, err, cli.ErrLintIssuesFound)
			assert.Equal(t, cli.ExitLintIssues, cli.ExitCode(err))
			assert.Contains(t, out, ":1")
			assert.Contains(t, out, tt.want)
			if tt.notWant != "" {
				assert.NotContains(t, out, tt.notWant)
			}
		})
	}
}

func TestIntegration_DisableFlagResolvesAliases(t *testing.T) {
	t.Parallel()

	mdFile, cfgFile := writeMarkdown(t, "test.md", trailingSpaces)

	for _, key := range []string{"MD009", "trailing-whitespace", "no-trailing-spaces"} {
		t.Run(key, func(t *testing.T) {
			t.Parallel()

			_, err := execute(t, "lint", "--config", cfgFile, "--disable", key, mdFile)
			require.NoError(t, err)
		})
	}
}

func TestIntegration_ConfigWithRuleNames(t *testing.T) {
	t.Parallel()

	mdFile, _ := writeMarkdown(t, "test.md", trailingSpaces)
	cfgFile := filepath.Join(filepath.Dir(mdFile), "custom.yml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("rules:\n  no-trailing-spaces:\n    enabled: false\n"), 0o644))

	_, err := execute(t, "lint", "--config", cfgFile, mdFile)
	require.NoError(t, err)
}

func TestIntegration_InvalidConfig(t *testing.T) {
	t.Parallel()

	mdFile, _ := writeMarkdown(t, "test.md", clean)
	dir := filepath.Dir(mdFile)

	tests := []struct {
		name    string
		content string
	}{
		{"unknown rule", "rules:\n  MD999:\n    enabled: false\n"},
		{"unknown option", "rules:\n  MD013:\n    options:\n      width: 100\n"},
		{"malformed yaml", "rules: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfgFile := filepath.Join(dir, tt.name+".yml")
			require.NoError(t, os.WriteFile(cfgFile, []byte(tt.content), 0o644))

			_, err := execute(t, "lint", "--config", cfgFile, mdFile)
			require.Error(t, err)
			assert.Equal(t, cli.ExitConfigError, cli.ExitCode(err), err.Error())
		})
	}
}

func TestIntegration_UnknownRuleFlag(t *testing.T) {
	t.Parallel()

	mdFile, cfgFile := writeMarkdown(t, "test.md", clean)

	_, err := execute(t, "lint", "--config", cfgFile, "--enable", "MD999", mdFile)
	require.Error(t, err)
	assert.Equal(t, cli.ExitConfigError, cli.ExitCode(err))
}

func TestIntegration_JSONOutput(t *testing.T) {
	t.Parallel()

	mdFile, cfgFile := writeMarkdown(t, "test.md", trailingSpaces)

	out, err := execute(t, "lint", "--config", cfgFile, "--format", "json", "--rule-format", "id", mdFile)
	require.ErrorIs(t, err, cli.ErrLintIssuesFound)

	var doc struct {
		Files []struct {
			Violations []struct {
				Line   int    `json:"line"`
				RuleID string `json:"ruleId"`
			} `json:"violations"`
		} `json:"files"`
		Summary struct {
			FilesChecked int `json:"filesChecked"`
			TotalIssues  int `json:"totalIssues"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	require.Len(t, doc.Files, 1)
	require.Len(t, doc.Files[0].Violations, 1)
	assert.Equal(t, 1, doc.Files[0].Violations[0].Line)
	assert.Equal(t, "MD009", doc.Files[0].Violations[0].RuleID)
	assert.Equal(t, 1, doc.Summary.FilesChecked)
	assert.Equal(t, 1, doc.Summary.TotalIssues)
}

func TestIntegration_DirectoryWithIgnore(t *testing.T) {
	t.Parallel()

	mdFile, cfgFile := writeMarkdown(t, "bad.md", trailingSpaces)
	dir := filepath.Dir(mdFile)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "good.md"), []byte(clean), 0o644))

	_, err := execute(t, "lint", "--config", cfgFile, dir)
	require.ErrorIs(t, err, cli.ErrLintIssuesFound)

	out, err := execute(t, "lint", "--config", cfgFile, "--ignore", "bad.md", "--color", "never", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "1 file checked")
}

func TestIntegration_MissingFile(t *testing.T) {
	t.Parallel()

	_, cfgFile := writeMarkdown(t, "test.md", clean)
	missing := filepath.Join(filepath.Dir(cfgFile), "missing.md")

	_, err := execute(t, "lint", "--config", cfgFile, missing)
	require.Error(t, err)
	assert.NotEqual(t, cli.ExitSuccess, cli.ExitCode(err))
}

func TestIntegration_RulesCommand(t *testing.T) {
	t.Parallel()

	t.Run("table", func(t *testing.T) {
		t.Parallel()

		out, err := execute(t, "rules", "--color", "never")
		require.NoError(t, err)
		assert.Contains(t, out, "MD001")
		assert.Contains(t, out, "MD040")
		assert.Contains(t, out, "heading-increment")
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		out, err := execute(t, "rules", "--format", "json")
		require.NoError(t, err)

		var rules []struct {
			ID      string         `json:"id"`
			Name    string         `json:"name"`
			Aliases []string       `json:"aliases"`
			Enabled bool           `json:"enabled"`
			Options map[string]any `json:"options"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &rules))
		require.NotEmpty(t, rules)

		byID := make(map[string]int, len(rules))
		for i, rule := range rules {
			byID[rule.ID] = i
		}
		require.Contains(t, byID, "MD013")
		lineLength := rules[byID["MD013"]]
		assert.Equal(t, "line-length", lineLength.Name)
		assert.EqualValues(t, 80, lineLength.Options["line_length"])

		require.Contains(t, byID, "MD009")
		assert.Contains(t, rules[byID["MD009"]].Aliases, "no-trailing-spaces")
	})
}

func TestIntegration_InitCommand(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	output := filepath.Join(dir, ".mdcheck.yml")

	_, err := execute(t, "init", "--output", output)
	require.NoError(t, err)

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(content), "MD013:")
	assert.Contains(t, string(content), "line_length: 80")

	_, err = execute(t, "init", "--output", output)
	require.Error(t, err)
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCode(err))

	_, err = execute(t, "init", "--output", output, "--force")
	require.NoError(t, err)

	// The generated file is a valid configuration.
	mdFile := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(mdFile, []byte(clean), 0o644))
	_, err = execute(t, "lint", "--config", output, mdFile)
	require.NoError(t, err)
}
