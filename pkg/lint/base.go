package lint

// BaseRule provides the metadata half of the Rule interface.
// Embed this in rule implementations and add a Check method.
//
// Fields are unexported to avoid stutter and name collisions with interface methods.
type BaseRule struct {
	id   string   // Stable code (e.g., "MD001")
	name string   // Kebab-case name
	desc string   // One-line description
	tags []string // Categorization tags
}

// NewBaseRule creates a BaseRule with the given properties.
func NewBaseRule(id, name, desc string, tags ...string) BaseRule {
	return BaseRule{
		id:   id,
		name: name,
		desc: desc,
		tags: tags,
	}
}

// ID returns the stable code for this rule.
func (r *BaseRule) ID() string {
	return r.id
}

// Name returns the kebab-case name of the rule.
func (r *BaseRule) Name() string {
	return r.name
}

// Description returns the one-line description of the rule.
func (r *BaseRule) Description() string {
	return r.desc
}

// DefaultEnabled returns whether the rule is enabled by default.
// Override this method to change the default.
func (r *BaseRule) DefaultEnabled() bool {
	return true
}

// Tags returns categorization tags for this rule.
func (r *BaseRule) Tags() []string {
	return r.tags
}
