package lint

import (
	"slices"

	"github.com/yaklabco/mdcheck/pkg/config"
)

// ResolvedRule pairs a Rule with its resolved configuration.
type ResolvedRule struct {
	// Rule is the underlying rule implementation.
	Rule Rule

	// Enabled indicates whether the rule should be run.
	Enabled bool

	// Options is the rule's raw option map (may be nil).
	Options map[string]any
}

// ResolveRules determines which rules to run based on registry and config.
// Returns only enabled rules, sorted by code.
func ResolveRules(registry *Registry, cfg *config.Config) []ResolvedRule {
	var resolved []ResolvedRule

	for _, rule := range registry.Rules() {
		rr := resolveRule(registry, rule, cfg)
		if rr.Enabled {
			resolved = append(resolved, rr)
		}
	}

	return resolved
}

// resolveRule applies, in increasing precedence, the rule default, the
// config file entry and the CLI enable/disable lists.
func resolveRule(registry *Registry, rule Rule, cfg *config.Config) ResolvedRule {
	rr := ResolvedRule{
		Rule:    rule,
		Enabled: rule.DefaultEnabled(),
	}

	if cfg == nil {
		return rr
	}

	if ruleCfg, ok := cfg.Rules[rule.ID()]; ok {
		rr.Options = ruleCfg.Options
		if ruleCfg.Enabled != nil {
			rr.Enabled = *ruleCfg.Enabled
		}
	}

	matches := func(key string) bool {
		id, _, ok := registry.Resolve(key)
		return ok && id == rule.ID()
	}
	if slices.ContainsFunc(cfg.EnableRules, matches) {
		rr.Enabled = true
	}
	if slices.ContainsFunc(cfg.DisableRules, matches) {
		rr.Enabled = false
	}

	return rr
}
