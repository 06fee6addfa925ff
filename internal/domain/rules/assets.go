package rules

import (
	"path"
	"strings"
	"unicode"

	"github.com/fatih/camelcase"
	"github.com/pagekraft/pagekraft/internal/domain"
)

// checkPathWhitespace flags asset references whose path contains whitespace.
func checkPathWhitespace(p *page) []domain.Finding {
	refs := assetRefs(p)
	if len(refs) == 0 {
		return nil
	}

	var findings []domain.Finding
	for _, ref := range refs {
		if strings.ContainsFunc(ref.path, unicode.IsSpace) {
			findings = append(findings, nodeFinding(domain.CategoryAssets, domain.SeverityLow, ref.node,
				"asset path %q contains whitespace", ref.path))
		}
	}
	if len(findings) == 0 {
		return pass(domain.CategoryAssets, "no asset paths contain whitespace")
	}
	return findings
}

// checkAssetNaming flags camelCase asset filenames; web asset names are
// conventionally kebab-case or snake_case.
func checkAssetNaming(p *page) []domain.Finding {
	refs := assetRefs(p)
	if len(refs) == 0 {
		return nil
	}

	var findings []domain.Finding
	for _, ref := range refs {
		base := path.Base(ref.path)
		name := strings.TrimSuffix(base, path.Ext(base))
		if name == "" || !strings.ContainsFunc(name, unicode.IsUpper) {
			continue
		}
		if len(camelcase.Split(name)) > 1 {
			findings = append(findings, nodeFinding(domain.CategoryAssets, domain.SeverityLow, ref.node,
				"asset filename %q uses camelCase; prefer kebab-case", base))
		}
	}
	if len(findings) == 0 {
		return pass(domain.CategoryAssets, "asset filenames follow lowercase naming")
	}
	return findings
}
