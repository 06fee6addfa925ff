package rules

import (
	"strings"

	"github.com/pagekraft/pagekraft/internal/domain"
)

// page is the pre-indexed, read-only view of one document that rule
// functions evaluate against. Building it up front keeps every rule a pure
// function with no traversal of its own.
type page struct {
	root   *domain.DocumentNode
	styles domain.StyleRuleSet
	nodes  []*domain.DocumentNode
	parent map[*domain.DocumentNode]*domain.DocumentNode
}

// rule is one entry of the ordered rule registry. New rules are added by
// appending a descriptor; existing rules never need to change.
type rule struct {
	category    domain.Category
	name        string
	description string
	eval        func(p *page) []domain.Finding
}

// registry lists every audit rule in execution order. The order is
// canonical category order, so reports are reproducible for identical input.
var registry = []rule{
	{domain.CategorySemantics, "header_wraps_nav", "navigation must sit inside a header landmark", checkHeaderWrapsNav},
	{domain.CategorySemantics, "heading_hierarchy", "exactly one h1 before any h2, no skipped levels", checkHeadingHierarchy},
	{domain.CategorySemantics, "landmark_coverage", "main and footer landmarks present", checkLandmarkCoverage},
	{domain.CategoryTextMedia, "alt_text", "every image has alt text or is marked decorative", checkAltText},
	{domain.CategoryTextMedia, "emphasis_usage", "body text uses semantic emphasis elements", checkEmphasisUsage},
	{domain.CategoryStyling, "global_box_sizing", "a universal selector sets box-sizing: border-box", checkGlobalBoxSizing},
	{domain.CategoryStyling, "font_fallback", "font stacks end in a generic family", checkFontFallback},
	{domain.CategoryLayout, "media_queries", "at least one viewport-width media query exists", checkMediaQueries},
	{domain.CategoryLayout, "viewport_meta", "the document declares a viewport meta tag", checkViewportMeta},
	{domain.CategoryReuse, "duplicate_blocks", "identical declaration blocks should share a class", checkDuplicateBlocks},
	{domain.CategoryAccessibility, "focus_states", "interactive elements have a focus style", checkFocusStates},
	{domain.CategoryAccessibility, "form_labels", "every form input has an associated label", checkFormLabels},
	{domain.CategoryAccessibility, "icon_only_controls", "icon-only controls carry an accessible name", checkIconOnlyControls},
	{domain.CategoryAccessibility, "language_declared", "the root element declares a language", checkLanguageDeclared},
	{domain.CategoryAccessibility, "zoom_enabled", "the viewport meta tag must not disable zoom", checkZoomEnabled},
	{domain.CategoryInteractions, "transitions", "at least one transition or animation is declared", checkTransitions},
	{domain.CategoryForms, "input_typing", "inputs with a semantic purpose use the matching type", checkInputTyping},
	{domain.CategoryAssets, "path_whitespace", "asset paths contain no whitespace", checkPathWhitespace},
	{domain.CategoryAssets, "asset_naming", "asset filenames avoid camelCase", checkAssetNaming},
	{domain.CategoryDeliverables, "no_inline_styles", "no element carries an inline style attribute", checkNoInlineStyles},
	{domain.CategoryFileStructure, "asset_directories", "referenced assets are grouped under type directories", checkAssetDirectories},
}

// RuleInfo describes one registry entry for external consumers (CLI, MCP).
type RuleInfo struct {
	Category    domain.Category `json:"category"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
}

// Catalog returns the rule registry in execution order.
func Catalog() []RuleInfo {
	infos := make([]RuleInfo, 0, len(registry))
	for _, r := range registry {
		infos = append(infos, RuleInfo{Category: r.category, Name: r.name, Description: r.description})
	}
	return infos
}

// Evaluate runs the full rule catalog over a parsed document and its style
// rules and returns a scored report. It is pure and deterministic: identical
// input produces an identical report. Rule misses become failing findings;
// only a missing/malformed root (InvalidDocumentError) or a tree deeper
// than DefaultMaxDepth (StructuralError) fail the run.
func Evaluate(doc *domain.DocumentNode, styles domain.StyleRuleSet) (*domain.AuditReport, error) {
	return EvaluateWithLimit(doc, styles, domain.DefaultMaxDepth)
}

// EvaluateWithLimit is Evaluate with an explicit traversal depth bound.
func EvaluateWithLimit(doc *domain.DocumentNode, styles domain.StyleRuleSet, maxDepth int) (*domain.AuditReport, error) {
	if doc == nil {
		return nil, &domain.InvalidDocumentError{Reason: "document has no root node"}
	}
	if strings.TrimSpace(doc.Tag) == "" {
		return nil, &domain.InvalidDocumentError{Reason: "root node has an empty tag"}
	}

	p, err := indexPage(doc, styles, maxDepth)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[domain.Category][]domain.Finding)
	for _, r := range registry {
		byCategory[r.category] = append(byCategory[r.category], r.eval(p)...)
	}

	categories := make([]domain.CategoryResult, 0, len(domain.Categories))
	for _, cat := range domain.Categories {
		findings := byCategory[cat]
		categories = append(categories, domain.CategoryResult{
			Category: cat,
			Score:    domain.ScoreFindings(findings),
			Findings: findings,
		})
	}

	return &domain.AuditReport{
		Overall:    domain.ComputeOverallScore(categories),
		Categories: categories,
	}, nil
}

// indexPage flattens the tree into document order and records parent links.
// Depth is checked on the way down so cyclic or pathological trees fail
// with a StructuralError instead of recursing forever.
func indexPage(doc *domain.DocumentNode, styles domain.StyleRuleSet, maxDepth int) (*page, error) {
	p := &page{
		root:   doc,
		styles: styles,
		parent: make(map[*domain.DocumentNode]*domain.DocumentNode),
	}

	var walk func(n *domain.DocumentNode, depth int) error
	walk = func(n *domain.DocumentNode, depth int) error {
		if depth > maxDepth {
			return &domain.StructuralError{Depth: depth, MaxDepth: maxDepth}
		}
		p.nodes = append(p.nodes, n)
		for _, c := range n.Children {
			p.parent[c] = n
			if err := walk(c, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(doc, 1); err != nil {
		return nil, err
	}
	return p, nil
}

// byTag returns all nodes with one of the given tags, in document order.
func (p *page) byTag(tags ...string) []*domain.DocumentNode {
	var out []*domain.DocumentNode
	for _, n := range p.nodes {
		for _, t := range tags {
			if n.Tag == t {
				out = append(out, n)
				break
			}
		}
	}
	return out
}

// hasAncestor reports whether any ancestor of n matches pred.
func (p *page) hasAncestor(n *domain.DocumentNode, pred func(*domain.DocumentNode) bool) bool {
	for cur := p.parent[n]; cur != nil; cur = p.parent[cur] {
		if pred(cur) {
			return true
		}
	}
	return false
}
