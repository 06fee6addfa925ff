package htmlparse

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/pagekraft/pagekraft/internal/domain"
)

// Loader implements domain.PageLoader using golang.org/x/net/html. The
// resulting tree is rooted at the <html> element.
type Loader struct{}

func New() *Loader { return &Loader{} }

func (l *Loader) Load(path string) (*domain.DocumentNode, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening page: %w", err)
	}
	defer f.Close()

	doc, err := l.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

// Parse reads markup from r and converts it into a DocumentNode tree.
func (l *Loader) Parse(r io.Reader) (*domain.DocumentNode, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	root := findElement(doc, "html")
	if root == nil {
		return nil, &domain.InvalidDocumentError{Reason: "markup has no <html> element"}
	}
	return convert(root), nil
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// convert maps an element node and its subtree. Text children collapse into
// the parent's Text field; comments and doctypes are dropped.
func convert(n *html.Node) *domain.DocumentNode {
	node := &domain.DocumentNode{Tag: n.Data}
	if len(n.Attr) > 0 {
		node.Attrs = make(map[string]string, len(n.Attr))
		for _, a := range n.Attr {
			node.Attrs[a.Key] = a.Val
		}
	}

	var texts []string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			node.Children = append(node.Children, convert(c))
		case html.TextNode:
			if t := strings.TrimSpace(c.Data); t != "" {
				texts = append(texts, t)
			}
		}
	}
	node.Text = strings.Join(texts, " ")
	return node
}
