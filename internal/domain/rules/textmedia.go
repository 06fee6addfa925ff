package rules

import (
	"strings"

	"github.com/pagekraft/pagekraft/internal/domain"
)

// checkAltText requires a non-empty alt attribute on every image unless the
// image is explicitly marked decorative. A page with zero images yields no
// findings at all: a vacuous pass is not worth reporting.
func checkAltText(p *page) []domain.Finding {
	images := p.byTag("img")
	if len(images) == 0 {
		return nil
	}

	var findings []domain.Finding
	for _, img := range images {
		if isDecorative(img) {
			continue
		}
		alt, ok := img.Attr("alt")
		switch {
		case !ok:
			findings = append(findings, nodeFinding(domain.CategoryTextMedia, domain.SeverityCritical, img,
				"image has no alt attribute"))
		case strings.TrimSpace(alt) == "":
			findings = append(findings, nodeFinding(domain.CategoryTextMedia, domain.SeverityCritical, img,
				"image has an empty alt attribute and is not marked decorative"))
		}
	}
	if len(findings) == 0 {
		return pass(domain.CategoryTextMedia, "all %d images have alternative text or are marked decorative", len(images))
	}
	return findings
}

// checkEmphasisUsage looks for at least one semantic emphasis element in
// body text.
func checkEmphasisUsage(p *page) []domain.Finding {
	if len(p.byTag("strong", "em")) > 0 {
		return pass(domain.CategoryTextMedia, "body text uses semantic emphasis (<strong>/<em>)")
	}
	return []domain.Finding{finding(domain.CategoryTextMedia, domain.SeverityMedium,
		"no <strong> or <em> elements found; key phrases carry no semantic emphasis")}
}
