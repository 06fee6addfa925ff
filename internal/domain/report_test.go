package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pagekraft/pagekraft/internal/domain"
)

func TestSeverityPenalty(t *testing.T) {
	assert.Equal(t, 4.0, domain.SeverityCritical.Penalty())
	assert.Equal(t, 2.0, domain.SeverityHigh.Penalty())
	assert.Equal(t, 1.0, domain.SeverityMedium.Penalty())
	assert.Equal(t, 0.5, domain.SeverityLow.Penalty())
	assert.Equal(t, 0.0, domain.SeverityPass.Penalty())
	assert.Equal(t, 0.0, domain.SeverityInfo.Penalty())
}

func TestSeverityFailing(t *testing.T) {
	assert.True(t, domain.SeverityCritical.Failing())
	assert.True(t, domain.SeverityLow.Failing())
	assert.False(t, domain.SeverityPass.Failing())
	assert.False(t, domain.SeverityInfo.Failing())
}

func TestScoreFindings(t *testing.T) {
	f := func(sev domain.Severity) domain.Finding {
		return domain.Finding{Category: domain.CategorySemantics, Severity: sev, Message: "x"}
	}

	assert.Equal(t, 10.0, domain.ScoreFindings(nil))
	assert.Equal(t, 10.0, domain.ScoreFindings([]domain.Finding{f(domain.SeverityPass)}))
	assert.Equal(t, 6.0, domain.ScoreFindings([]domain.Finding{f(domain.SeverityCritical)}))
	assert.Equal(t, 2.5, domain.ScoreFindings([]domain.Finding{
		f(domain.SeverityCritical), f(domain.SeverityHigh), f(domain.SeverityMedium), f(domain.SeverityLow),
	}))
}

func TestScoreFindings_FlooredAtZero(t *testing.T) {
	var findings []domain.Finding
	for range 5 {
		findings = append(findings, domain.Finding{Severity: domain.SeverityCritical, Message: "x"})
	}
	assert.Equal(t, 0.0, domain.ScoreFindings(findings))
}

func TestScoreFindings_MonotonicPenalty(t *testing.T) {
	findings := []domain.Finding{{Severity: domain.SeverityMedium, Message: "x"}}
	before := domain.ScoreFindings(findings)
	findings = append(findings, domain.Finding{Severity: domain.SeverityCritical, Message: "y"})
	after := domain.ScoreFindings(findings)
	assert.LessOrEqual(t, after, before, "adding a critical violation must never raise the score")
}

func TestComputeOverallScore(t *testing.T) {
	cats := []domain.CategoryResult{
		{Category: domain.CategorySemantics, Score: 10},
		{Category: domain.CategoryForms, Score: 5},
	}
	assert.Equal(t, 7.5, domain.ComputeOverallScore(cats))

	assert.Equal(t, 0.0, domain.ComputeOverallScore(nil))

	// Rounded to one decimal place.
	cats = []domain.CategoryResult{
		{Score: 10}, {Score: 10}, {Score: 0},
	}
	assert.Equal(t, 6.7, domain.ComputeOverallScore(cats))
}

func TestGradeFor(t *testing.T) {
	assert.Equal(t, "A+", domain.GradeFor(9.5))
	assert.Equal(t, "A", domain.GradeFor(8.0))
	assert.Equal(t, "B", domain.GradeFor(7.2))
	assert.Equal(t, "C", domain.GradeFor(6.0))
	assert.Equal(t, "D", domain.GradeFor(5.5))
	assert.Equal(t, "F", domain.GradeFor(2.0))
}

func TestValidCategory(t *testing.T) {
	assert.True(t, domain.ValidCategory("accessibility"))
	assert.True(t, domain.ValidCategory("file_structure"))
	assert.False(t, domain.ValidCategory("seo"))
}

func TestCategoriesOrder(t *testing.T) {
	assert.Equal(t, domain.CategorySemantics, domain.Categories[0])
	assert.Equal(t, domain.CategoryFileStructure, domain.Categories[len(domain.Categories)-1])
	assert.Len(t, domain.Categories, 11)
}

func TestFailingCount(t *testing.T) {
	report := &domain.AuditReport{
		Categories: []domain.CategoryResult{
			{Findings: []domain.Finding{
				{Severity: domain.SeverityCritical},
				{Severity: domain.SeverityPass},
			}},
			{Findings: []domain.Finding{
				{Severity: domain.SeverityCritical},
				{Severity: domain.SeverityLow},
			}},
		},
	}
	counts := report.FailingCount()
	assert.Equal(t, 2, counts[domain.SeverityCritical])
	assert.Equal(t, 1, counts[domain.SeverityLow])
	assert.Zero(t, counts[domain.SeverityPass])
}
