package rules

import (
	"strings"

	"github.com/pagekraft/pagekraft/internal/domain"
)

// genericFamilies are the CSS generic font families a stack may end in.
var genericFamilies = []string{
	"serif", "sans-serif", "monospace", "cursive", "fantasy", "system-ui",
}

// checkGlobalBoxSizing requires a universal selector rule that sets
// box-sizing: border-box.
func checkGlobalBoxSizing(p *page) []domain.Finding {
	if len(p.styles) == 0 {
		return noStyleEvidence(domain.CategoryStyling, "global box-sizing")
	}

	for _, r := range p.styles {
		if !hasUniversalSelector(r) {
			continue
		}
		if v, ok := r.Declaration("box-sizing"); ok && strings.Contains(v, "border-box") {
			return pass(domain.CategoryStyling, "universal selector sets box-sizing: border-box")
		}
	}
	return []domain.Finding{finding(domain.CategoryStyling, domain.SeverityMedium,
		"no universal selector rule sets box-sizing: border-box")}
}

func hasUniversalSelector(r domain.StyleRule) bool {
	for _, sel := range r.Selectors() {
		// "*" alone or with pseudo-elements, e.g. "*::before".
		if sel == "*" || strings.HasPrefix(sel, "*:") {
			return true
		}
	}
	return false
}

// checkFontFallback flags font-family stacks that do not end in a generic
// family. Vacuous when no font-family is declared anywhere.
func checkFontFallback(p *page) []domain.Finding {
	var findings []domain.Finding
	declared := 0
	for _, r := range p.styles {
		v, ok := r.Declaration("font-family")
		if !ok {
			continue
		}
		declared++
		if !hasGenericFamily(v) {
			f := finding(domain.CategoryStyling, domain.SeverityLow,
				"font stack %q has no generic fallback family", strings.TrimSpace(v))
			f.Element = r.Selector
			f.Line = r.Line
			findings = append(findings, f)
		}
	}
	if declared == 0 {
		return nil
	}
	if len(findings) == 0 {
		return pass(domain.CategoryStyling, "all font stacks declare a generic fallback family")
	}
	return findings
}

func hasGenericFamily(stack string) bool {
	parts := strings.Split(stack, ",")
	last := strings.ToLower(strings.Trim(strings.TrimSpace(parts[len(parts)-1]), `"'`))
	for _, g := range genericFamilies {
		if last == g {
			return true
		}
	}
	return false
}
