package rules

import "github.com/pagekraft/pagekraft/internal/domain"

// checkNoInlineStyles requires all styling to live in external stylesheets:
// no element may carry a style attribute.
func checkNoInlineStyles(p *page) []domain.Finding {
	var findings []domain.Finding
	for _, n := range p.nodes {
		if n.HasAttr("style") {
			findings = append(findings, nodeFinding(domain.CategoryDeliverables, domain.SeverityHigh, n,
				"element carries an inline style attribute; move the declarations to a stylesheet"))
		}
	}
	if len(findings) == 0 {
		return pass(domain.CategoryDeliverables, "all styling is externalized; no inline style attributes")
	}
	return findings
}
