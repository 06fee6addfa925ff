package cssparse

import (
	"fmt"
	"os"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"

	"github.com/pagekraft/pagekraft/internal/domain"
)

// Loader implements domain.StyleLoader on top of the douceur CSS parser.
// @media blocks are flattened: their inner rules join the set tagged with
// the query text, preserving source order.
type Loader struct{}

func New() *Loader { return &Loader{} }

func (l *Loader) Load(paths []string) (domain.StyleRuleSet, error) {
	var set domain.StyleRuleSet
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("reading stylesheet: %w", err)
		}
		rules, err := l.ParseSheet(string(data))
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", p, err)
		}
		set = append(set, rules...)
	}
	return set, nil
}

// ParseSheet parses a single stylesheet's text into style rules.
func (l *Loader) ParseSheet(text string) (domain.StyleRuleSet, error) {
	sheet, err := parser.Parse(text)
	if err != nil {
		return nil, err
	}
	var set domain.StyleRuleSet
	for _, r := range sheet.Rules {
		set = appendRule(set, r, "")
	}
	return set, nil
}

func appendRule(set domain.StyleRuleSet, r *css.Rule, media string) domain.StyleRuleSet {
	switch r.Kind {
	case css.QualifiedRule:
		decls := make(map[string]string, len(r.Declarations))
		for _, d := range r.Declarations {
			decls[strings.ToLower(strings.TrimSpace(d.Property))] = strings.TrimSpace(d.Value)
		}
		set = append(set, domain.StyleRule{
			Selector:     strings.Join(r.Selectors, ", "),
			Declarations: decls,
			MediaQuery:   media,
		})
	case css.AtRule:
		if r.Name == "@media" {
			query := strings.TrimSpace(strings.TrimPrefix(r.Prelude, "@media"))
			for _, sub := range r.Rules {
				set = appendRule(set, sub, query)
			}
		}
	}
	return set
}
