package rules

import "github.com/pagekraft/pagekraft/internal/domain"

// checkHeaderWrapsNav requires the navigation element to sit inside a
// <header> (or role="banner") landmark.
func checkHeaderWrapsNav(p *page) []domain.Finding {
	var navs []*domain.DocumentNode
	for _, n := range p.nodes {
		if n.Tag == "nav" || roleIs(n, "navigation") {
			navs = append(navs, n)
		}
	}
	if len(navs) == 0 {
		return []domain.Finding{finding(domain.CategorySemantics, domain.SeverityInfo,
			"no navigation element found on the page")}
	}

	isHeader := func(n *domain.DocumentNode) bool {
		return n.Tag == "header" || roleIs(n, "banner")
	}

	var findings []domain.Finding
	for _, nav := range navs {
		if !p.hasAncestor(nav, isHeader) {
			findings = append(findings, nodeFinding(domain.CategorySemantics, domain.SeverityCritical, nav,
				"navigation is not wrapped in a <header> landmark"))
		}
	}
	if len(findings) == 0 {
		return pass(domain.CategorySemantics, "navigation is wrapped in a <header> landmark")
	}
	return findings
}

// checkHeadingHierarchy enforces a single <h1> before any <h2> and no
// skipped heading levels.
func checkHeadingHierarchy(p *page) []domain.Finding {
	headings := p.byTag("h1", "h2", "h3", "h4", "h5", "h6")
	if len(headings) == 0 {
		return []domain.Finding{finding(domain.CategorySemantics, domain.SeverityMedium,
			"page has no headings; content needs an <h1> outline")}
	}

	var findings []domain.Finding
	h1Count := 0
	beforeH1Reported := false
	prevLevel := 0
	for _, h := range headings {
		level := int(h.Tag[1] - '0')
		if level == 1 {
			h1Count++
			if h1Count > 1 {
				findings = append(findings, nodeFinding(domain.CategorySemantics, domain.SeverityMedium, h,
					"more than one <h1> on the page"))
			}
		} else if h1Count == 0 && !beforeH1Reported {
			findings = append(findings, nodeFinding(domain.CategorySemantics, domain.SeverityMedium, h,
				"<%s> appears before the first <h1>", h.Tag))
			beforeH1Reported = true
		}
		if prevLevel > 0 && level > prevLevel+1 {
			findings = append(findings, nodeFinding(domain.CategorySemantics, domain.SeverityMedium, h,
				"heading level skips from h%d to h%d", prevLevel, level))
		}
		prevLevel = level
	}
	if h1Count == 0 {
		findings = append(findings, finding(domain.CategorySemantics, domain.SeverityMedium,
			"page has no <h1> heading"))
	}

	if len(findings) == 0 {
		return pass(domain.CategorySemantics, "heading hierarchy is well-formed (single <h1>, no skipped levels)")
	}
	return findings
}

// checkLandmarkCoverage checks for main and footer landmarks.
func checkLandmarkCoverage(p *page) []domain.Finding {
	var findings []domain.Finding
	landmarks := []struct {
		tag  string
		role string
	}{
		{"main", "main"},
		{"footer", "contentinfo"},
	}
	for _, lm := range landmarks {
		found := false
		for _, n := range p.nodes {
			if n.Tag == lm.tag || roleIs(n, lm.role) {
				found = true
				break
			}
		}
		if !found {
			findings = append(findings, finding(domain.CategorySemantics, domain.SeverityMedium,
				"page has no <%s> landmark", lm.tag))
		}
	}
	if len(findings) == 0 {
		return pass(domain.CategorySemantics, "main and footer landmarks are present")
	}
	return findings
}
