package rules

import (
	"sort"
	"strings"

	"github.com/pagekraft/pagekraft/internal/domain"
)

// checkDuplicateBlocks flags groups of rules whose declaration blocks are
// identical: repeated blocks of two or more declarations should be factored
// into a shared class. Vacuous when no style rules are supplied (the empty
// rule set is already reported by the style-dependent checks).
func checkDuplicateBlocks(p *page) []domain.Finding {
	if len(p.styles) == 0 {
		return nil
	}

	type group struct {
		selectors []string
		first     int
	}
	groups := make(map[string]*group)
	var order []string
	for i, r := range p.styles {
		if len(r.Declarations) < 2 {
			continue
		}
		key := declarationKey(r)
		g, ok := groups[key]
		if !ok {
			g = &group{first: i}
			groups[key] = g
			order = append(order, key)
		}
		g.selectors = append(g.selectors, r.Selector)
	}

	var findings []domain.Finding
	for _, key := range order {
		g := groups[key]
		if len(g.selectors) < 2 {
			continue
		}
		findings = append(findings, finding(domain.CategoryReuse, domain.SeverityLow,
			"selectors %s share an identical declaration block; extract a shared class",
			strings.Join(g.selectors, ", ")))
	}
	if len(findings) == 0 {
		return pass(domain.CategoryReuse, "no duplicated declaration blocks across selectors")
	}
	return findings
}

// declarationKey canonicalizes a declaration block for comparison.
func declarationKey(r domain.StyleRule) string {
	props := make([]string, 0, len(r.Declarations))
	for prop, val := range r.Declarations {
		props = append(props, prop+":"+strings.TrimSpace(val))
	}
	sort.Strings(props)
	return r.MediaQuery + "{" + strings.Join(props, ";") + "}"
}
