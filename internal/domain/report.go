package domain

import (
	"math"
	"time"
)

// Severity is the ordinal urgency of a finding.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
	SeverityPass     Severity = "pass"
	SeverityInfo     Severity = "info"
)

// ValidSeverities enumerates all recognized severities, most urgent first.
var ValidSeverities = []Severity{
	SeverityCritical, SeverityHigh, SeverityMedium,
	SeverityLow, SeverityPass, SeverityInfo,
}

// Penalty returns the score deduction for one finding of this severity.
// Pass and info findings never cost points.
func (s Severity) Penalty() float64 {
	switch s {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 2
	case SeverityMedium:
		return 1
	case SeverityLow:
		return 0.5
	default:
		return 0
	}
}

// Failing reports whether this severity counts as a violation.
func (s Severity) Failing() bool {
	return s.Penalty() > 0
}

// Category is a named grouping of related audit rules.
type Category string

const (
	CategorySemantics     Category = "semantics"
	CategoryTextMedia     Category = "text_media"
	CategoryStyling       Category = "styling"
	CategoryLayout        Category = "layout_responsiveness"
	CategoryReuse         Category = "reusable_patterns"
	CategoryAccessibility Category = "accessibility"
	CategoryInteractions  Category = "interactions"
	CategoryForms         Category = "forms"
	CategoryAssets        Category = "assets"
	CategoryDeliverables  Category = "deliverables"
	CategoryFileStructure Category = "file_structure"
)

// Categories enumerates all audit categories in canonical report order.
// Rules execute and reports render in exactly this order.
var Categories = []Category{
	CategorySemantics,
	CategoryTextMedia,
	CategoryStyling,
	CategoryLayout,
	CategoryReuse,
	CategoryAccessibility,
	CategoryInteractions,
	CategoryForms,
	CategoryAssets,
	CategoryDeliverables,
	CategoryFileStructure,
}

// ValidCategory reports whether name is a known category.
func ValidCategory(name string) bool {
	for _, c := range Categories {
		if string(c) == name {
			return true
		}
	}
	return false
}

// Finding is one rule-evaluation result. Findings are never mutated after
// creation, only collected into a report.
type Finding struct {
	Category Category `json:"category"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Element  string   `json:"element,omitempty"`
	Line     int      `json:"line,omitempty"`
}

// CategoryResult groups the findings of one category with its score.
type CategoryResult struct {
	Category Category  `json:"category"`
	Score    float64   `json:"score"`
	Findings []Finding `json:"findings,omitempty"`
}

// AuditReport is the complete, ordered output of one audit run. A fresh
// report is constructed per run; callers own it exclusively.
type AuditReport struct {
	Overall    float64          `json:"overall"`
	Categories []CategoryResult `json:"categories"`
	Timestamp  time.Time        `json:"timestamp"`
	CommitHash string           `json:"commit_hash,omitempty"`
}

// Grade maps the overall 0-10 score onto a letter grade.
func (r *AuditReport) Grade() string { return GradeFor(r.Overall) }

func GradeFor(score float64) string {
	switch {
	case score >= 9:
		return "A+"
	case score >= 8:
		return "A"
	case score >= 7:
		return "B"
	case score >= 6:
		return "C"
	case score >= 5:
		return "D"
	default:
		return "F"
	}
}

func BadgeColor(score float64) string {
	switch {
	case score >= 9:
		return "brightgreen"
	case score >= 8:
		return "green"
	case score >= 7:
		return "yellow"
	case score >= 6:
		return "orange"
	case score >= 5:
		return "red"
	default:
		return "critical"
	}
}

// ScoreFindings computes a category score: 10 minus the summed severity
// penalties, floored at 0.
func ScoreFindings(findings []Finding) float64 {
	score := 10.0
	for _, f := range findings {
		score -= f.Severity.Penalty()
	}
	return max(0, score)
}

// ComputeOverallScore is the unweighted mean of category scores, rounded to
// one decimal place.
func ComputeOverallScore(categories []CategoryResult) float64 {
	if len(categories) == 0 {
		return 0
	}
	var total float64
	for _, c := range categories {
		total += c.Score
	}
	return math.Round(total/float64(len(categories))*10) / 10
}

// FailingCount returns the number of findings that cost points, per severity.
func (r *AuditReport) FailingCount() map[Severity]int {
	counts := make(map[Severity]int)
	for _, cat := range r.Categories {
		for _, f := range cat.Findings {
			if f.Severity.Failing() {
				counts[f.Severity]++
			}
		}
	}
	return counts
}

// AuditEntry is one line of persisted audit history for a site.
type AuditEntry struct {
	Timestamp  string  `json:"timestamp"`
	CommitHash string  `json:"commit_hash,omitempty"`
	Overall    float64 `json:"overall"`
	Grade      string  `json:"grade"`
}
