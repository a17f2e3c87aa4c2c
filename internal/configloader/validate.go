package configloader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gobwas/glob"

	"github.com/yaklabco/mdcheck/pkg/config"
	"github.com/yaklabco/mdcheck/pkg/lint"
)

// Sentinel errors for the configuration problems callers branch on.
var (
	// ErrInvalidConfig marks a malformed top-level setting.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownRule marks a rule key that resolves to no registered rule.
	ErrUnknownRule = errors.New("unknown rule")

	// ErrInvalidOption marks a rule option that is unknown or badly typed.
	ErrInvalidOption = errors.New("invalid rule option")
)

// ValidationError describes one configuration problem.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "rules.MD007.options").
	Field string

	// Message describes the problem.
	Message string

	// FilePath is the config file the value came from, when known.
	FilePath string

	// Err is the sentinel category.
	Err error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, 3)
	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, ": ")
}

// Unwrap returns the sentinel category.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	Errors []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// Err joins all findings into one error, or returns nil.
func (r *ValidationResult) Err() error {
	if r.Valid() {
		return nil
	}
	errs := make([]error, len(r.Errors))
	for i := range r.Errors {
		errs[i] = &r.Errors[i]
	}
	return errors.Join(errs...)
}

func (r *ValidationResult) add(field string, sentinel error, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
		Err:     sentinel,
	})
}

// Validate checks cfg against registry. Rule keys are expected to be
// normalized already; option maps are decoded into each rule's option
// struct so unknown keys and badly typed values surface before linting.
func Validate(cfg *config.Config, registry *lint.Registry) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.Flavor != "" && !cfg.Flavor.IsValid() {
		result.add("flavor", ErrInvalidConfig, "invalid flavor %q; must be one of: commonmark, gfm", cfg.Flavor)
	}
	if cfg.Format != "" && !cfg.Format.IsValid() {
		result.add("format", ErrInvalidConfig, "invalid format %q; must be one of: text, json, summary", cfg.Format)
	}
	if cfg.RuleFormat != "" && !cfg.RuleFormat.IsValid() {
		result.add("rule_format", ErrInvalidConfig,
			"invalid rule format %q; must be one of: name, id, combined", cfg.RuleFormat)
	}
	if cfg.Jobs < 0 {
		result.add("jobs", ErrInvalidConfig, "jobs must be >= 0 (0 means auto)")
	}

	for i, pattern := range cfg.Ignore {
		if _, err := glob.Compile(pattern, '/'); err != nil {
			result.add(fmt.Sprintf("ignore[%d]", i), ErrInvalidConfig, "invalid glob pattern %q: %v", pattern, err)
		}
	}

	validateRules(cfg, registry, result)
	validateRuleSelectors("enable", cfg.EnableRules, registry, result)
	validateRuleSelectors("disable", cfg.DisableRules, registry, result)

	return result
}

// validateRules checks that every configured rule exists and that its
// options decode.
func validateRules(cfg *config.Config, registry *lint.Registry, result *ValidationResult) {
	for _, key := range sortedKeys(cfg.Rules) {
		ruleCfg := cfg.Rules[key]
		field := "rules." + key

		rule, ok := registry.Get(key)
		if !ok {
			result.add(field, ErrUnknownRule, "unknown rule %q", key)
			continue
		}
		if len(ruleCfg.Options) == 0 {
			continue
		}

		configurable, ok := rule.(lint.Configurable)
		if !ok {
			result.add(field+".options", ErrInvalidOption, "%s takes no options", rule.ID())
			continue
		}
		if err := lint.DecodeOptions(ruleCfg.Options, configurable.DefaultOptions()); err != nil {
			result.add(field+".options", ErrInvalidOption, "%v", err)
		}
	}
}

func validateRuleSelectors(field string, keys []string, registry *lint.Registry, result *ValidationResult) {
	for _, key := range keys {
		if _, ok := registry.Get(key); !ok {
			result.add(field, ErrUnknownRule, "unknown rule %q", key)
		}
	}
}
