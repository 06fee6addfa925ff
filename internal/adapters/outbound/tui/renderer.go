package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pagekraft/pagekraft/internal/domain"
)

// ── warm terminal palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	gradeColors = map[string]lipgloss.Color{
		"A+": success,
		"A":  success,
		"B":  lipgloss.Color("#A3E635"), // lime
		"C":  warning,
		"D":  lipgloss.Color("#FB923C"), // orange
		"F":  danger,
	}

	dimStyle         = lipgloss.NewStyle().Foreground(dim)
	faintStyle       = lipgloss.NewStyle().Foreground(faint)
	passStyle        = lipgloss.NewStyle().Foreground(success)
	failStyle        = lipgloss.NewStyle().Foreground(danger)
	warnStyle        = lipgloss.NewStyle().Foreground(warning)
	criticalTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	highTagStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FB923C")).Bold(true)
	mediumTagStyle   = lipgloss.NewStyle().Foreground(warning).Bold(true)
	lowTagStyle      = lipgloss.NewStyle().Foreground(info)
	fileStyle        = lipgloss.NewStyle().Foreground(dim)
	titleStyle       = lipgloss.NewStyle().Bold(true).Foreground(fg)
	catNameStyle     = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine    = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderReport formats a full audit report for terminal output.
func RenderReport(report *domain.AuditReport) string {
	var b strings.Builder

	// ── Header ──
	grade := report.Grade()
	title := headerStyle.Render("pagekraft")
	subtitle := dimStyle.Render("Page Audit")
	scoreLine := fmt.Sprintf("%.1f / 10", report.Overall)
	scoreStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(gradeColor(grade)).
		Render(scoreLine)
	gradeStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(gradeColor(grade)).
		Render(grade)

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + scoreStyled + "  " + gradeStyled))
	b.WriteString("\n\n")

	// ── Categories ──
	for i, cat := range report.Categories {
		renderCategory(&b, cat)
		if i < len(report.Categories)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	// ── Violation summary ──
	counts := report.FailingCount()
	total := 0
	for _, c := range counts {
		total += c
	}
	if total > 0 {
		b.WriteString("  ")
		b.WriteString(titleStyle.Render("Violations"))
		b.WriteString("  ")
		for _, sev := range []domain.Severity{domain.SeverityCritical, domain.SeverityHigh, domain.SeverityMedium, domain.SeverityLow} {
			if counts[sev] > 0 {
				b.WriteString(severityTag(sev))
				b.WriteString(dimStyle.Render(fmt.Sprintf(" %d  ", counts[sev])))
			}
		}
		b.WriteString("\n")
	} else {
		b.WriteString("  " + passStyle.Render("No violations found.") + "\n")
	}

	b.WriteString("\n")
	return b.String()
}

func renderCategory(b *strings.Builder, cat domain.CategoryResult) {
	color := scoreColor(cat.Score)
	scoreText := lipgloss.NewStyle().Bold(true).Foreground(color).Render(fmt.Sprintf("%.1f", cat.Score))
	bar := coloredBar(cat.Score, 20)

	name := catNameStyle.Render(padRight(string(cat.Category), 22))
	fmt.Fprintf(b, "  %s %s  %s\n", name, bar, scoreText)

	for _, f := range cat.Findings {
		renderFinding(b, f)
	}
}

func renderFinding(b *strings.Builder, f domain.Finding) {
	if !f.Severity.Failing() {
		fmt.Fprintf(b, "    %s %s\n", passStyle.Render("✓"), faintStyle.Render(f.Message))
		return
	}

	tag := severityTag(f.Severity)
	location := ""
	if f.Element != "" {
		location = f.Element
	}
	if f.Line > 0 {
		location += fmt.Sprintf(":%d", f.Line)
	}

	if location != "" {
		fmt.Fprintf(b, "    %s %s\n", tag, fileStyle.Render(location))
		fmt.Fprintf(b, "         %s\n", dimStyle.Render(f.Message))
	} else {
		fmt.Fprintf(b, "    %s %s\n", tag, dimStyle.Render(f.Message))
	}
}

func severityTag(sev domain.Severity) string {
	switch sev {
	case domain.SeverityCritical:
		return criticalTagStyle.Render("crit ")
	case domain.SeverityHigh:
		return highTagStyle.Render("high ")
	case domain.SeverityMedium:
		return mediumTagStyle.Render("med  ")
	case domain.SeverityLow:
		return lowTagStyle.Render("low  ")
	default:
		return lowTagStyle.Render("info ")
	}
}

func coloredBar(score float64, width int) string {
	filled := max(0, min(int(score/10*float64(width)), width))
	empty := width - filled

	color := scoreColor(score)
	filledStr := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

func scoreColor(score float64) lipgloss.Color {
	switch {
	case score >= 8:
		return success
	case score >= 6:
		return lipgloss.Color("#A3E635") // lime
	case score >= 4:
		return warning
	default:
		return danger
	}
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// RenderHistory formats audit history for terminal output.
func RenderHistory(entries []domain.AuditEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No audit history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Audit History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for i, e := range entries {
		hash := e.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}

		scoreStyled := lipgloss.NewStyle().
			Foreground(scoreColor(e.Overall)).
			Render(fmt.Sprintf("%.1f/10", e.Overall))

		date := e.Timestamp
		if len(date) > 10 {
			date = date[:10]
		}

		line := fmt.Sprintf("  %s  %s  %s  %s",
			dimStyle.Render(date),
			faintStyle.Render(hash),
			scoreStyled,
			e.Grade,
		)

		if i > 0 {
			diff := e.Overall - entries[i-1].Overall
			if diff > 0 {
				line += "  " + passStyle.Render(fmt.Sprintf("↑%.1f", diff))
			} else if diff < 0 {
				line += "  " + failStyle.Render(fmt.Sprintf("↓%.1f", -diff))
			}
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func gradeColor(grade string) lipgloss.Color {
	if c, ok := gradeColors[grade]; ok {
		return c
	}
	return fg
}
