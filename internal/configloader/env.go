package configloader

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/yaklabco/mdcheck/pkg/config"
)

// envVarPrefix is the prefix for all mdcheck environment variables.
const envVarPrefix = "MDCHECK_"

// envSetting applies one environment variable to a configuration.
type envSetting struct {
	suffix      string
	description string
	apply       func(cfg *config.Config, value string) error
}

// envSettings lists the supported variables in documentation order.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envSettings = []envSetting{
	{"FLAVOR", "Markdown flavor: commonmark or gfm", func(cfg *config.Config, v string) error {
		cfg.Flavor = config.Flavor(v)
		return nil
	}},
	{"FORMAT", "Output format: text, json or summary", func(cfg *config.Config, v string) error {
		cfg.Format = config.OutputFormat(v)
		return nil
	}},
	{"RULE_FORMAT", "Rule identifiers in output: name, id or combined", func(cfg *config.Config, v string) error {
		cfg.RuleFormat = config.RuleFormat(v)
		return nil
	}},
	{"JOBS", "Number of parallel workers (0 = auto)", func(cfg *config.Config, v string) error {
		jobs, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("expected an integer: %w", err)
		}
		cfg.Jobs = jobs
		return nil
	}},
	{"IGNORE", "Comma-separated ignore globs", func(cfg *config.Config, v string) error {
		cfg.Ignore = splitList(v)
		return nil
	}},
	{"ENABLE", "Comma-separated rules to enable", func(cfg *config.Config, v string) error {
		cfg.EnableRules = splitList(v)
		return nil
	}},
	{"DISABLE", "Comma-separated rules to disable", func(cfg *config.Config, v string) error {
		cfg.DisableRules = splitList(v)
		return nil
	}},
}

// LoadFromEnv applies MDCHECK_* overrides to cfg. Unset and empty
// variables are ignored.
func LoadFromEnv(cfg *config.Config) error {
	return loadFromLookup(cfg, os.LookupEnv)
}

func loadFromLookup(cfg *config.Config, lookup func(string) (string, bool)) error {
	if cfg == nil {
		return nil
	}

	for _, setting := range envSettings {
		name := envVarPrefix + setting.suffix
		value, ok := lookup(name)
		if !ok || value == "" {
			continue
		}
		if err := setting.apply(cfg, value); err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, name, value, err)
		}
	}

	return nil
}

// splitList parses a comma-separated list, dropping empty elements.
func splitList(value string) []string {
	var result []string
	for part := range strings.SplitSeq(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// EnvVars returns the supported environment variables and their
// descriptions, sorted by name.
func EnvVars() [][2]string {
	result := make([][2]string, 0, len(envSettings))
	for _, setting := range envSettings {
		result = append(result, [2]string{envVarPrefix + setting.suffix, setting.description})
	}
	slices.SortFunc(result, func(a, b [2]string) int {
		return strings.Compare(a[0], b[0])
	})
	return result
}
