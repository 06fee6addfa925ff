package rules

import (
	"strconv"
	"strings"

	"github.com/pagekraft/pagekraft/internal/domain"
)

// checkFocusStates requires at least one style rule targeting a focus
// pseudo-state.
func checkFocusStates(p *page) []domain.Finding {
	if len(p.styles) == 0 {
		return noStyleEvidence(domain.CategoryAccessibility, "keyboard focus styling")
	}

	for _, r := range p.styles {
		if strings.Contains(r.Selector, ":focus") {
			return pass(domain.CategoryAccessibility, "focus pseudo-state styling is present")
		}
	}
	return []domain.Finding{finding(domain.CategoryAccessibility, domain.SeverityCritical,
		"no style rule targets :focus; keyboard users get no visible focus indicator")}
}

// labelable lists the form controls that need an associated label. Controls
// that render their own text (submit/button/reset) and hidden inputs are
// exempt.
func labelableControls(p *page) []*domain.DocumentNode {
	var out []*domain.DocumentNode
	for _, n := range p.byTag("input", "select", "textarea") {
		if n.Tag == "input" {
			switch t, _ := n.Attr("type"); strings.ToLower(t) {
			case "hidden", "submit", "button", "reset", "image":
				continue
			}
		}
		out = append(out, n)
	}
	return out
}

// checkFormLabels requires every form input to have an associated <label>,
// matched by for/id linkage or by wrapping. An aria-label on the input does
// not satisfy this rule; the accessible-name check is separate.
func checkFormLabels(p *page) []domain.Finding {
	controls := labelableControls(p)
	if len(controls) == 0 {
		return nil
	}

	labeledIDs := make(map[string]bool)
	for _, l := range p.byTag("label") {
		if forID, ok := l.Attr("for"); ok && forID != "" {
			labeledIDs[forID] = true
		}
	}
	wrappedInLabel := func(n *domain.DocumentNode) bool {
		return p.hasAncestor(n, func(a *domain.DocumentNode) bool { return a.Tag == "label" })
	}

	var findings []domain.Finding
	for _, c := range controls {
		id, _ := c.Attr("id")
		if (id != "" && labeledIDs[id]) || wrappedInLabel(c) {
			continue
		}
		findings = append(findings, nodeFinding(domain.CategoryAccessibility, domain.SeverityCritical, c,
			"form control has no associated <label>"))
	}
	if len(findings) == 0 {
		return pass(domain.CategoryAccessibility, "all %d form controls have associated labels", len(controls))
	}
	return findings
}

// checkIconOnlyControls requires an accessible name on interactive controls
// whose only content is an image or icon.
func checkIconOnlyControls(p *page) []domain.Finding {
	controls := p.byTag("a", "button")
	if len(controls) == 0 {
		return nil
	}

	var iconOnly int
	var findings []domain.Finding
	for _, c := range controls {
		if !isIconOnly(c) {
			continue
		}
		iconOnly++
		if hasAccessibleName(c) {
			continue
		}
		findings = append(findings, nodeFinding(domain.CategoryAccessibility, domain.SeverityHigh, c,
			"icon-only control has no accessible name (aria-label, aria-labelledby or title)"))
	}
	switch {
	case iconOnly == 0:
		return nil
	case len(findings) == 0:
		return pass(domain.CategoryAccessibility, "all icon-only controls carry an accessible name")
	}
	return findings
}

// isIconOnly reports whether a control renders no text of its own but does
// contain an image or icon element.
func isIconOnly(n *domain.DocumentNode) bool {
	if strings.TrimSpace(n.TextContent()) != "" {
		return false
	}
	var hasIcon func(node *domain.DocumentNode) bool
	hasIcon = func(node *domain.DocumentNode) bool {
		for _, c := range node.Children {
			switch c.Tag {
			case "img", "svg", "i":
				return true
			}
			if hasIcon(c) {
				return true
			}
		}
		return false
	}
	return hasIcon(n)
}

func hasAccessibleName(n *domain.DocumentNode) bool {
	for _, attr := range []string{"aria-label", "aria-labelledby", "title"} {
		if v, ok := n.Attr(attr); ok && strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}

// checkLanguageDeclared requires a lang attribute on the root <html> element.
func checkLanguageDeclared(p *page) []domain.Finding {
	root := p.root
	if root.Tag != "html" {
		if htmls := p.byTag("html"); len(htmls) > 0 {
			root = htmls[0]
		}
	}
	if v, ok := root.Attr("lang"); ok && strings.TrimSpace(v) != "" {
		return pass(domain.CategoryAccessibility, "document declares lang=%q", v)
	}
	return []domain.Finding{nodeFinding(domain.CategoryAccessibility, domain.SeverityCritical, root,
		"root element declares no lang attribute; screen readers must guess the language")}
}

// checkZoomEnabled flags viewport meta tags that disable pinch zoom.
// Vacuous when the page has no viewport meta at all; its absence is a
// layout finding, not a zoom finding.
func checkZoomEnabled(p *page) []domain.Finding {
	meta := viewportMeta(p)
	if meta == nil {
		return nil
	}
	content, _ := meta.Attr("content")
	if viewportDisablesZoom(content) {
		return []domain.Finding{nodeFinding(domain.CategoryAccessibility, domain.SeverityHigh, meta,
			"viewport meta tag disables zoom; low-vision users cannot magnify the page")}
	}
	return pass(domain.CategoryAccessibility, "viewport meta tag leaves zoom enabled")
}

// viewportDisablesZoom parses the comma-separated viewport directives.
// Zoom counts as disabled when scaling is turned off or the maximum scale
// does not exceed 1, whatever spelling the value uses (1, 1.0, ...).
func viewportDisablesZoom(content string) bool {
	for _, part := range strings.Split(content, ",") {
		key, val, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		val = strings.ToLower(strings.TrimSpace(val))
		switch key {
		case "user-scalable":
			if val == "no" || val == "0" {
				return true
			}
		case "maximum-scale":
			if scale, err := strconv.ParseFloat(val, 64); err == nil && scale <= 1 {
				return true
			}
		}
	}
	return false
}
