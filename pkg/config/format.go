package config

// Label renders a rule for output: its code, its name, or "code/name".
// A rule without a name is always shown by code, and an unset format
// shows the name.
func (f RuleFormat) Label(code, name string) string {
	switch {
	case name == "", f == RuleFormatID:
		return code
	case f == RuleFormatCombined:
		return code + "/" + name
	default:
		return name
	}
}
