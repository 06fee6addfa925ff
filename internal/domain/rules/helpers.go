package rules

import (
	"fmt"
	"strings"

	"github.com/pagekraft/pagekraft/internal/domain"
)

func finding(cat domain.Category, sev domain.Severity, format string, args ...any) domain.Finding {
	return domain.Finding{
		Category: cat,
		Severity: sev,
		Message:  fmt.Sprintf(format, args...),
	}
}

// nodeFinding attaches the offending element's reference and line number.
func nodeFinding(cat domain.Category, sev domain.Severity, n *domain.DocumentNode, format string, args ...any) domain.Finding {
	f := finding(cat, sev, format, args...)
	f.Element = n.Ref()
	f.Line = n.Line
	return f
}

func pass(cat domain.Category, format string, args ...any) []domain.Finding {
	return []domain.Finding{finding(cat, domain.SeverityPass, format, args...)}
}

// noStyleEvidence is the shared failure for style-dependent rules when the
// rule set is empty: absence of evidence is treated as failure, not a skip.
func noStyleEvidence(cat domain.Category, what string) []domain.Finding {
	return []domain.Finding{finding(cat, domain.SeverityCritical,
		"no style rules supplied; %s cannot be verified", what)}
}

// roleIs reports whether the node carries the given ARIA role.
func roleIs(n *domain.DocumentNode, role string) bool {
	v, _ := n.Attr("role")
	return strings.EqualFold(strings.TrimSpace(v), role)
}

// isDecorative reports whether an image is explicitly marked decorative,
// which overrides the alt-text requirement.
func isDecorative(n *domain.DocumentNode) bool {
	if roleIs(n, "presentation") || roleIs(n, "none") {
		return true
	}
	if v, _ := n.Attr("aria-hidden"); strings.EqualFold(v, "true") {
		return true
	}
	return n.HasAttr("data-decorative")
}

// assetRef is one reference from the document to an external asset file.
type assetRef struct {
	node *domain.DocumentNode
	path string
}

// assetRefs collects local asset references (images, scripts, stylesheets,
// media sources) in document order.
func assetRefs(p *page) []assetRef {
	var refs []assetRef
	add := func(n *domain.DocumentNode, attr string) {
		if v, ok := n.Attr(attr); ok && v != "" && domain.IsLocalRef(v) {
			refs = append(refs, assetRef{node: n, path: v})
		}
	}
	for _, n := range p.nodes {
		switch n.Tag {
		case "img", "script", "source", "audio", "video":
			add(n, "src")
		case "link":
			rel, _ := n.Attr("rel")
			switch strings.ToLower(rel) {
			case "stylesheet", "icon", "preload":
				add(n, "href")
			}
		}
	}
	return refs
}
