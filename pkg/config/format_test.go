package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdcheck/pkg/config"
)

func TestRuleFormat_Label(t *testing.T) {
	tests := []struct {
		format config.RuleFormat
		name   string
		want   string
	}{
		{config.RuleFormatName, "trailing-whitespace", "trailing-whitespace"},
		{config.RuleFormatID, "trailing-whitespace", "MD009"},
		{config.RuleFormatCombined, "trailing-whitespace", "MD009/trailing-whitespace"},
		{config.RuleFormatCombined, "", "MD009"},
		{config.RuleFormatName, "", "MD009"},
		{"", "trailing-whitespace", "trailing-whitespace"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format)+"/"+tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.format.Label("MD009", tt.name))
		})
	}
}

func TestFormatValidity(t *testing.T) {
	assert.True(t, config.FormatJSON.IsValid())
	assert.False(t, config.OutputFormat("sarif").IsValid())
	assert.True(t, config.RuleFormatCombined.IsValid())
	assert.False(t, config.RuleFormat("short").IsValid())
	assert.True(t, config.FlavorGFM.IsValid())
	assert.False(t, config.Flavor("mdx").IsValid())
}

func TestNewConfig_Defaults(t *testing.T) {
	cfg := config.NewConfig()
	assert.Equal(t, config.RuleFormatName, cfg.RuleFormat)
	assert.Equal(t, config.FormatText, cfg.Format)
	assert.Equal(t, config.FlavorCommonMark, cfg.Flavor)
	assert.NotNil(t, cfg.Rules)
}
