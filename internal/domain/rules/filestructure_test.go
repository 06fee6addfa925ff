package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pagekraft/pagekraft/internal/domain"
)

func TestAssetDirectories(t *testing.T) {
	doc := basePage(el("img", attrs{"src": "hero.jpg", "alt": "Hero"}))
	f := categoryFindings(t, doc, baseStyles(), domain.CategoryFileStructure)
	assert.True(t, hasFinding(f, domain.SeverityLow, "not grouped under a type directory"))

	doc = basePage(el("img", attrs{"src": "images/hero.jpg", "alt": "Hero"}))
	f = categoryFindings(t, doc, baseStyles(), domain.CategoryFileStructure)
	assert.True(t, hasFinding(f, domain.SeverityPass, "grouped under type directories"))
}

func TestAssetDirectories_AcceptsAlternateNames(t *testing.T) {
	for _, src := range []string{"./img/hero.jpg", "assets/hero.jpg", "icons/menu.svg"} {
		doc := basePage(el("img", attrs{"src": src, "alt": "Hero"}))
		f := categoryFindings(t, doc, baseStyles(), domain.CategoryFileStructure)
		assert.False(t, hasFinding(f, domain.SeverityLow, "not grouped"), "src %s", src)
	}
}

func TestAssetDirectories_UnknownExtensionIgnored(t *testing.T) {
	doc := basePage(el("link", attrs{"rel": "preload", "href": "brief.pdf"}))
	f := categoryFindings(t, doc, baseStyles(), domain.CategoryFileStructure)
	assert.Empty(t, f)
}
