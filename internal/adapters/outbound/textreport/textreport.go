// Package textreport implements the plain-text audit report format. The
// format is line-oriented and lossless for category, severity, message and
// line data, so external reporters can parse a rendered report back into an
// equivalent AuditReport.
package textreport

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pagekraft/pagekraft/internal/domain"
)

const header = "pagekraft audit report"

// Render serializes a report into the text format. Output is byte-identical
// for identical reports.
func Render(report *domain.AuditReport) string {
	var b strings.Builder
	b.WriteString(header + "\n")
	if report.CommitHash != "" {
		fmt.Fprintf(&b, "commit %s\n", report.CommitHash)
	}
	fmt.Fprintf(&b, "overall %s/10 %s\n", formatScore(report.Overall), report.Grade())

	for _, cat := range report.Categories {
		fmt.Fprintf(&b, "\n== %s %s/10\n", cat.Category, formatScore(cat.Score))
		for _, f := range cat.Findings {
			mark := "✗"
			if !f.Severity.Failing() {
				mark = "✓"
			}
			fmt.Fprintf(&b, "  %s [%s] %s", mark, f.Severity, f.Message)
			if f.Line > 0 {
				fmt.Fprintf(&b, " (line %d)", f.Line)
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

var (
	categoryRe = regexp.MustCompile(`^== (\S+) ([0-9.]+)/10$`)
	findingRe  = regexp.MustCompile(`^  [✓✗] \[([a-z]+)\] (.+?)( \(line ([0-9]+)\))?$`)
	overallRe  = regexp.MustCompile(`^overall ([0-9.]+)/10 \S+$`)
)

// Parse reconstructs a report from rendered text. Category order, severity,
// messages, line numbers and scores round-trip; timestamps do not travel
// through the text format.
func Parse(text string) (*domain.AuditReport, error) {
	lines := strings.Split(text, "\n")
	if len(lines) == 0 || lines[0] != header {
		return nil, fmt.Errorf("not a pagekraft report: missing header line")
	}

	report := &domain.AuditReport{}
	var current *domain.CategoryResult

	for _, line := range lines[1:] {
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "commit "):
			report.CommitHash = strings.TrimPrefix(line, "commit ")
		case overallRe.MatchString(line):
			m := overallRe.FindStringSubmatch(line)
			overall, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				return nil, fmt.Errorf("parsing overall score: %w", err)
			}
			report.Overall = overall
		case categoryRe.MatchString(line):
			m := categoryRe.FindStringSubmatch(line)
			if !domain.ValidCategory(m[1]) {
				return nil, fmt.Errorf("unknown category %q", m[1])
			}
			score, err := strconv.ParseFloat(m[2], 64)
			if err != nil {
				return nil, fmt.Errorf("parsing score for %s: %w", m[1], err)
			}
			report.Categories = append(report.Categories, domain.CategoryResult{
				Category: domain.Category(m[1]),
				Score:    score,
			})
			current = &report.Categories[len(report.Categories)-1]
		case findingRe.MatchString(line):
			if current == nil {
				return nil, fmt.Errorf("finding line outside any category: %q", line)
			}
			m := findingRe.FindStringSubmatch(line)
			f := domain.Finding{
				Category: current.Category,
				Severity: domain.Severity(m[1]),
				Message:  m[2],
			}
			if m[4] != "" {
				f.Line, _ = strconv.Atoi(m[4])
			}
			current.Findings = append(current.Findings, f)
		default:
			return nil, fmt.Errorf("unrecognized report line: %q", line)
		}
	}
	return report, nil
}

func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', 1, 64)
}
