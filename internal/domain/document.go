package domain

import "strings"

// DocumentNode is one parsed markup element. The tree is a read-only input
// owned by the caller; the audit never mutates it.
type DocumentNode struct {
	Tag      string
	Attrs    map[string]string
	Children []*DocumentNode
	Text     string
	Line     int
}

// Attr returns the value of the named attribute and whether it is present.
func (n *DocumentNode) Attr(name string) (string, bool) {
	if n.Attrs == nil {
		return "", false
	}
	v, ok := n.Attrs[name]
	return v, ok
}

// HasAttr reports whether the named attribute is present, regardless of value.
func (n *DocumentNode) HasAttr(name string) bool {
	_, ok := n.Attr(name)
	return ok
}

// IsVoid reports whether the node is a void/leaf element: no children and
// no text content (e.g. an image).
func (n *DocumentNode) IsVoid() bool {
	return len(n.Children) == 0 && strings.TrimSpace(n.Text) == ""
}

// TextContent returns the node's own text plus that of all descendants,
// whitespace-normalized.
func (n *DocumentNode) TextContent() string {
	var parts []string
	var collect func(node *DocumentNode)
	collect = func(node *DocumentNode) {
		if t := strings.TrimSpace(node.Text); t != "" {
			parts = append(parts, t)
		}
		for _, c := range node.Children {
			collect(c)
		}
	}
	collect(n)
	return strings.Join(parts, " ")
}

// Ref returns a short human-readable reference for findings, e.g.
// `img[src="hero.jpg"]`.
func (n *DocumentNode) Ref() string {
	for _, attr := range []string{"id", "src", "href", "name", "class"} {
		if v, ok := n.Attr(attr); ok && v != "" {
			return n.Tag + `[` + attr + `="` + v + `"]`
		}
	}
	return n.Tag
}

// StylesheetRefs returns the href values of local stylesheet links in
// document order. Remote and data URLs are skipped; the audit only loads
// styles that ship with the page.
func StylesheetRefs(doc *DocumentNode) []string {
	var refs []string
	var walk func(n *DocumentNode)
	walk = func(n *DocumentNode) {
		if n.Tag == "link" {
			rel, _ := n.Attr("rel")
			href, _ := n.Attr("href")
			if strings.EqualFold(rel, "stylesheet") && href != "" && IsLocalRef(href) {
				refs = append(refs, href)
			}
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	if doc != nil {
		walk(doc)
	}
	return refs
}

// IsLocalRef reports whether ref points at a file shipped with the page
// rather than a remote or data URL.
func IsLocalRef(ref string) bool {
	lower := strings.ToLower(ref)
	return !strings.HasPrefix(lower, "http://") &&
		!strings.HasPrefix(lower, "https://") &&
		!strings.HasPrefix(lower, "//") &&
		!strings.HasPrefix(lower, "data:")
}
