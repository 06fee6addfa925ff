package rules

import (
	"strings"

	"github.com/pagekraft/pagekraft/internal/domain"
)

// checkTransitions requires at least one transition or animation property
// anywhere in the stylesheet.
func checkTransitions(p *page) []domain.Finding {
	if len(p.styles) == 0 {
		return noStyleEvidence(domain.CategoryInteractions, "hover/interaction transitions")
	}

	for _, r := range p.styles {
		for prop := range r.Declarations {
			if strings.HasPrefix(prop, "transition") || strings.HasPrefix(prop, "animation") {
				return pass(domain.CategoryInteractions, "stylesheet declares transitions or animations")
			}
		}
	}
	return []domain.Finding{finding(domain.CategoryInteractions, domain.SeverityMedium,
		"no transition or animation properties declared; state changes snap abruptly")}
}
