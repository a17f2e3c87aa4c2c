package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdcheck/pkg/config"
)

func TestConfigClone(t *testing.T) {
	t.Run("nil config returns nil", func(t *testing.T) {
		var c *config.Config
		assert.Nil(t, c.Clone())
	})

	t.Run("deep copies Rules map", func(t *testing.T) {
		enabled := true
		original := &config.Config{
			Rules: map[string]config.RuleConfig{
				"MD004": {
					Enabled: &enabled,
					Options: map[string]any{"style": "dash"},
				},
			},
		}

		clone := original.Clone()
		require.Contains(t, clone.Rules, "MD004")
		assert.True(t, *clone.Rules["MD004"].Enabled)

		*clone.Rules["MD004"].Enabled = false
		clone.Rules["MD004"].Options["style"] = "plus"
		assert.True(t, *original.Rules["MD004"].Enabled)
		assert.Equal(t, "dash", original.Rules["MD004"].Options["style"])
	})

	t.Run("preserves CLI fields", func(t *testing.T) {
		original := &config.Config{
			Flavor:       config.FlavorGFM,
			Ignore:       []string{"vendor/**"},
			Format:       config.FormatJSON,
			RuleFormat:   config.RuleFormatCombined,
			Jobs:         4,
			EnableRules:  []string{"MD001"},
			DisableRules: []string{"MD013"},
		}

		clone := original.Clone()
		assert.Equal(t, original, clone)

		clone.Ignore[0] = "changed"
		assert.Equal(t, "vendor/**", original.Ignore[0])
	})
}

func TestFromYAML(t *testing.T) {
	t.Run("parses rules and options", func(t *testing.T) {
		cfg, err := config.FromYAML([]byte(`
flavor: gfm
ignore:
  - "drafts/**"
rules:
  MD013:
    options:
      line_length: 120
  MD009:
    enabled: false
`))
		require.NoError(t, err)
		assert.Equal(t, config.FlavorGFM, cfg.Flavor)
		assert.Equal(t, []string{"drafts/**"}, cfg.Ignore)
		assert.Equal(t, 120, cfg.RuleOptions("MD013")["line_length"])
		require.NotNil(t, cfg.Rules["MD009"].Enabled)
		assert.False(t, *cfg.Rules["MD009"].Enabled)
	})

	t.Run("empty document", func(t *testing.T) {
		cfg, err := config.FromYAML(nil)
		require.NoError(t, err)
		assert.NotNil(t, cfg.Rules)
	})

	t.Run("unknown key is rejected", func(t *testing.T) {
		_, err := config.FromYAML([]byte("flavour: gfm\n"))
		require.Error(t, err)
	})
}

func TestToYAML_OmitsCLIFields(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Jobs = 8
	cfg.EnableRules = []string{"MD001"}

	data, err := cfg.ToYAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "flavor: commonmark")
	assert.NotContains(t, string(data), "jobs")
	assert.NotContains(t, string(data), "MD001")
}

func TestGenerateTemplate(t *testing.T) {
	data, err := config.GenerateTemplate([]config.RuleInfo{
		{
			ID: "MD013", Name: "line-length", Enabled: true,
			Description: "Line length", Tags: []string{"line_length"},
			Options: map[string]any{"line_length": 80},
		},
		{ID: "MD001", Name: "heading-level-skip", Enabled: true, Description: "Heading levels"},
	})
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "# mdcheck configuration")
	assert.Contains(t, out, "# line-length: Line length")
	assert.Contains(t, out, "line_length: 80")
	assert.Less(t, strings.Index(out, "MD001:"), strings.Index(out, "MD013:"))

	cfg, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Len(t, cfg.Rules, 2)
}
