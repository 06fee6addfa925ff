package rules

import (
	"strings"

	"github.com/pagekraft/pagekraft/internal/domain"
)

// inputPurposes maps identifier keywords to the input type that should be
// used for that purpose.
var inputPurposes = []struct {
	keyword  string
	wantType string
}{
	{"search", "search"},
	{"email", "email"},
	{"phone", "tel"},
	{"tel", "tel"},
	{"website", "url"},
	{"url", "url"},
	{"password", "password"},
}

// checkInputTyping flags text inputs whose name/id/placeholder reveals a
// semantic purpose that has a dedicated input type.
func checkInputTyping(p *page) []domain.Finding {
	inputs := p.byTag("input")
	if len(inputs) == 0 {
		return nil
	}

	var findings []domain.Finding
	checked := 0
	for _, in := range inputs {
		t, _ := in.Attr("type")
		t = strings.ToLower(t)
		if t != "" && t != "text" {
			checked++
			continue
		}
		checked++
		if purpose, want := detectPurpose(in); want != "" {
			findings = append(findings, nodeFinding(domain.CategoryForms, domain.SeverityHigh, in,
				"input looks like a %s field; use type=%q instead of a plain text input", purpose, want))
		}
	}
	if checked == 0 {
		return nil
	}
	if len(findings) == 0 {
		return pass(domain.CategoryForms, "all inputs use semantically matching types")
	}
	return findings
}

func detectPurpose(in *domain.DocumentNode) (purpose, wantType string) {
	var hints []string
	for _, attr := range []string{"name", "id", "placeholder"} {
		if v, ok := in.Attr(attr); ok {
			hints = append(hints, strings.ToLower(v))
		}
	}
	hint := strings.Join(hints, " ")
	for _, pp := range inputPurposes {
		if strings.Contains(hint, pp.keyword) {
			return pp.keyword, pp.wantType
		}
	}
	return "", ""
}
