package textreport_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagekraft/pagekraft/internal/adapters/outbound/textreport"
	"github.com/pagekraft/pagekraft/internal/domain"
	"github.com/pagekraft/pagekraft/internal/domain/rules"
)

func sampleReport() *domain.AuditReport {
	return &domain.AuditReport{
		Overall:    7.5,
		CommitHash: "abc1234def",
		Categories: []domain.CategoryResult{
			{
				Category: domain.CategorySemantics,
				Score:    6.0,
				Findings: []domain.Finding{
					{Category: domain.CategorySemantics, Severity: domain.SeverityCritical,
						Message: "navigation is not wrapped in a <header> landmark", Line: 12},
				},
			},
			{
				Category: domain.CategoryAccessibility,
				Score:    10.0,
				Findings: []domain.Finding{
					{Category: domain.CategoryAccessibility, Severity: domain.SeverityPass,
						Message: "focus pseudo-state styling is present"},
				},
			},
		},
	}
}

func TestRender(t *testing.T) {
	text := textreport.Render(sampleReport())

	assert.True(t, strings.HasPrefix(text, "pagekraft audit report\n"))
	assert.Contains(t, text, "commit abc1234def\n")
	assert.Contains(t, text, "overall 7.5/10 B\n")
	assert.Contains(t, text, "== semantics 6.0/10\n")
	assert.Contains(t, text, "  ✗ [critical] navigation is not wrapped in a <header> landmark (line 12)\n")
	assert.Contains(t, text, "  ✓ [pass] focus pseudo-state styling is present\n")
}

func TestRenderParse_RoundTrip(t *testing.T) {
	original := sampleReport()
	parsed, err := textreport.Parse(textreport.Render(original))
	require.NoError(t, err)

	assert.Equal(t, original.Overall, parsed.Overall)
	assert.Equal(t, original.CommitHash, parsed.CommitHash)
	assert.Equal(t, original.Categories, parsed.Categories)
}

func TestRenderParse_RoundTripFullEvaluation(t *testing.T) {
	doc := &domain.DocumentNode{
		Tag:   "html",
		Attrs: map[string]string{"lang": "en"},
		Children: []*domain.DocumentNode{
			{Tag: "body", Children: []*domain.DocumentNode{
				{Tag: "nav", Children: []*domain.DocumentNode{{Tag: "a", Text: "Home"}}},
				{Tag: "img", Attrs: map[string]string{"src": "hero.jpg"}},
				{Tag: "input", Attrs: map[string]string{"type": "text", "name": "email"}},
			}},
		},
	}
	report, err := rules.Evaluate(doc, nil)
	require.NoError(t, err)

	parsed, err := textreport.Parse(textreport.Render(report))
	require.NoError(t, err)
	assert.Equal(t, report.Overall, parsed.Overall)

	// Element references do not travel through the text format. Vacuous
	// categories keep a nil finding list on both sides.
	want := make([]domain.CategoryResult, len(report.Categories))
	copy(want, report.Categories)
	for i := range want {
		if want[i].Findings == nil {
			continue
		}
		findings := make([]domain.Finding, len(want[i].Findings))
		copy(findings, want[i].Findings)
		for j := range findings {
			findings[j].Element = ""
		}
		want[i].Findings = findings
	}
	assert.Equal(t, want, parsed.Categories)
}

func TestParse_Errors(t *testing.T) {
	_, err := textreport.Parse("not a report\n")
	assert.ErrorContains(t, err, "missing header")

	_, err = textreport.Parse("pagekraft audit report\n== seo 5.0/10\n")
	assert.ErrorContains(t, err, `unknown category "seo"`)

	_, err = textreport.Parse("pagekraft audit report\n  ✗ [critical] stray finding\n")
	assert.ErrorContains(t, err, "outside any category")

	_, err = textreport.Parse("pagekraft audit report\ngarbage line\n")
	assert.ErrorContains(t, err, "unrecognized report line")
}
