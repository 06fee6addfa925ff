package rules

import (
	"strings"

	"github.com/pagekraft/pagekraft/internal/domain"
)

// checkMediaQueries requires at least one style rule conditioned on a
// viewport-width predicate.
func checkMediaQueries(p *page) []domain.Finding {
	if len(p.styles) == 0 {
		return noStyleEvidence(domain.CategoryLayout, "responsive media queries")
	}

	for _, r := range p.styles {
		if strings.Contains(r.MediaQuery, "width") {
			return pass(domain.CategoryLayout, "stylesheet contains viewport-width media queries")
		}
	}
	return []domain.Finding{finding(domain.CategoryLayout, domain.SeverityCritical,
		"no viewport-width media queries found; layout cannot adapt to screen size")}
}

// checkViewportMeta requires a <meta name="viewport"> on the document.
func checkViewportMeta(p *page) []domain.Finding {
	if viewportMeta(p) != nil {
		return pass(domain.CategoryLayout, "viewport meta tag is present")
	}
	return []domain.Finding{finding(domain.CategoryLayout, domain.SeverityHigh,
		"document has no viewport meta tag; mobile browsers will render the desktop layout")}
}

// viewportMeta returns the viewport meta node, or nil.
func viewportMeta(p *page) *domain.DocumentNode {
	for _, n := range p.byTag("meta") {
		if v, _ := n.Attr("name"); strings.EqualFold(v, "viewport") {
			return n
		}
	}
	return nil
}
