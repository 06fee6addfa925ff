package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pagekraft/pagekraft/internal/domain"
)

func TestGlobalBoxSizing(t *testing.T) {
	f := categoryFindings(t, basePage(), nil, domain.CategoryStyling)
	assert.True(t, hasFinding(f, domain.SeverityCritical, "no style rules supplied"))

	styles := domain.StyleRuleSet{
		{Selector: "body", Declarations: map[string]string{"margin": "0"}},
	}
	f = categoryFindings(t, basePage(), styles, domain.CategoryStyling)
	assert.True(t, hasFinding(f, domain.SeverityMedium, "box-sizing: border-box"))

	f = categoryFindings(t, basePage(), baseStyles(), domain.CategoryStyling)
	assert.True(t, hasFinding(f, domain.SeverityPass, "border-box"))
}

func TestGlobalBoxSizing_PseudoElementUniversal(t *testing.T) {
	styles := domain.StyleRuleSet{
		{Selector: "*, *::before, *::after", Declarations: map[string]string{"box-sizing": "border-box"}},
	}
	f := categoryFindings(t, basePage(), styles, domain.CategoryStyling)
	assert.True(t, hasFinding(f, domain.SeverityPass, "border-box"))
}

func TestFontFallback(t *testing.T) {
	styles := append(baseStyles(), domain.StyleRule{
		Selector:     "body",
		Declarations: map[string]string{"font-family": `"Inter"`},
	})
	f := categoryFindings(t, basePage(), styles, domain.CategoryStyling)
	assert.True(t, hasFinding(f, domain.SeverityLow, "no generic fallback"))

	styles = append(baseStyles(), domain.StyleRule{
		Selector:     "body",
		Declarations: map[string]string{"font-family": `"Inter", sans-serif`},
	})
	f = categoryFindings(t, basePage(), styles, domain.CategoryStyling)
	assert.False(t, hasFinding(f, domain.SeverityLow, "fallback"))
	assert.True(t, hasFinding(f, domain.SeverityPass, "generic fallback"))

	// No font-family declared anywhere: the rule stays silent.
	f = categoryFindings(t, basePage(), baseStyles(), domain.CategoryStyling)
	assert.False(t, hasFinding(f, domain.SeverityLow, "fallback"))
	assert.False(t, hasFinding(f, domain.SeverityPass, "fallback"))
}
