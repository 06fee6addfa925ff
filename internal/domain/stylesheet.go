package domain

import "strings"

// StyleRule is one parsed stylesheet rule. MediaQuery is empty for rules
// that apply unconditionally; for rules inside an @media block it carries
// the query text (e.g. "(min-width: 768px)").
type StyleRule struct {
	Selector     string
	Declarations map[string]string
	MediaQuery   string
	Line         int
}

// Declaration returns the value of a property and whether it is declared.
func (r StyleRule) Declaration(property string) (string, bool) {
	if r.Declarations == nil {
		return "", false
	}
	v, ok := r.Declarations[property]
	return v, ok
}

// Selectors splits a comma-separated selector list into its parts.
func (r StyleRule) Selectors() []string {
	parts := strings.Split(r.Selector, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// StyleRuleSet is an ordered sequence of style rules. Later rules with equal
// specificity override earlier ones; the audit only relies on the ordering,
// not on specificity resolution.
type StyleRuleSet []StyleRule
