package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/contractgate/contractgate/internal/domain"
)

// ── Claude-inspired warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(fg)
	dimStyle   = lipgloss.NewStyle().Foreground(dim)
	faintStyle = lipgloss.NewStyle().Foreground(faint)
	passStyle  = lipgloss.NewStyle().Bold(true).Foreground(success)
	failStyle  = lipgloss.NewStyle().Bold(true).Foreground(danger)
	warnStyle  = lipgloss.NewStyle().Foreground(warning)

	severityStyles = map[domain.Severity]lipgloss.Style{
		domain.SeverityNone:  lipgloss.NewStyle().Foreground(dim),
		domain.SeverityPatch: lipgloss.NewStyle().Foreground(success),
		domain.SeverityMinor: lipgloss.NewStyle().Foreground(warning),
		domain.SeverityMajor: lipgloss.NewStyle().Foreground(danger),
	}
)

// RenderGateReport renders a gate report: one line per evaluated schema
// file plus one overall summary line.
func RenderGateReport(report *domain.GateReport) string {
	var b strings.Builder

	status := passStyle.Render("PASS")
	if report.Verdict.Status == domain.StatusFail {
		status = failStyle.Render("FAIL")
	}
	title := titleStyle.Render("contractgate") + "  " + status
	versions := dimStyle.Render(fmt.Sprintf("%s → %s  (base %s)", report.OldVersion, report.NewVersion, report.Base))
	b.WriteString(boxStyle.Render(title + "\n" + versions))
	b.WriteString("\n")

	if len(report.Files) == 0 {
		b.WriteString("\n  " + dimStyle.Render("no changed schema files") + "\n")
	} else {
		b.WriteString("\n")
		for _, rec := range report.Files {
			line := fmt.Sprintf("  %s %s  %s",
				severityBullet(rec.Severity),
				rec.Path,
				severityStyles[rec.Severity].Render(rec.Severity.String()),
			)
			if rec.Detail != "" {
				line += "  " + faintStyle.Render(rec.Detail)
			}
			b.WriteString(line + "\n")
		}
	}

	b.WriteString("\n")
	summary := fmt.Sprintf("  required %s, version bump %s: %s",
		report.Required, report.Verdict.Actual, report.Verdict.Message)
	if report.Verdict.Status == domain.StatusFail {
		b.WriteString(failStyle.Render(summary) + "\n")
	} else {
		b.WriteString(passStyle.Render(summary) + "\n")
	}

	if report.Verdict.Warning != "" {
		b.WriteString(warnStyle.Render("  warning: "+report.Verdict.Warning) + "\n")
	}

	return b.String()
}

func severityBullet(s domain.Severity) string {
	return severityStyles[s].Render("●")
}
