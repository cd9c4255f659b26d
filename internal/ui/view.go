package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"devcheck/internal/doctor"
)

// Vitesse Dark Soft accents, same palette as the text renderer.
var (
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4d9375"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4d9375"))
	groupStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#6394bf"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#e6cc77"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#cb7676"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#bfbaaa"))
)

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("devcheck · environment diagnostics"))
	b.WriteString("\n\n")

	if m.checking {
		b.WriteString(fmt.Sprintf("%s probing tools...\n", m.sp.View()))
		return b.String()
	}
	if m.err != nil {
		b.WriteString(failStyle.Render(fmt.Sprintf("catalog error: %v", m.err)))
		b.WriteString("\n\n")
		b.WriteString(mutedStyle.Render("r run again · q quit"))
		b.WriteString("\n")
		return b.String()
	}

	groups := []struct {
		title    string
		category doctor.Category
	}{
		{"Required", doctor.CategoryRequired},
		{"Optional", doctor.CategoryOptional},
		{"Project-specific", doctor.CategoryProject},
	}
	for _, g := range groups {
		var rows []string
		for _, t := range m.rep.Tools {
			if t.Category == g.category {
				rows = append(rows, resultRow(t))
			}
		}
		if len(rows) == 0 {
			continue
		}
		b.WriteString(groupStyle.Render(g.title))
		b.WriteString("\n")
		b.WriteString(strings.Join(rows, "\n"))
		b.WriteString("\n\n")
	}

	if m.rep.Summary.AllRequiredPresent {
		b.WriteString(accentStyle.Render("✅ all required tools are installed"))
	} else {
		b.WriteString(failStyle.Render(fmt.Sprintf("❌ %d of %d required tools missing",
			m.rep.Summary.RequiredCount-m.rep.Summary.RequiredPresent, m.rep.Summary.RequiredCount)))
	}
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("updated %s · r run again · q quit",
		m.updatedAt.Format("15:04:05"))))
	b.WriteString("\n")
	return b.String()
}

func resultRow(t doctor.ToolResult) string {
	glyph := accentStyle.Render("✓")
	switch {
	case t.Working && t.Status == doctor.StatusWarning:
		glyph = warnStyle.Render("⚠")
	case !t.Working && t.Category == doctor.CategoryRequired:
		glyph = failStyle.Render("✗")
	case !t.Working:
		glyph = warnStyle.Render("⚠")
	}
	detail := t.Version
	if detail == "" {
		detail = t.Path
	}
	if detail != "" {
		detail = mutedStyle.Render("  " + detail)
	}
	fix := ""
	if !t.Working {
		if action := firstFix(t); action != "" {
			fix = mutedStyle.Render("  → " + action)
		}
	}
	return fmt.Sprintf("  %s %s%s%s", glyph, t.Name, detail, fix)
}

// firstFix picks the most direct remediation string for a failing result.
func firstFix(t doctor.ToolResult) string {
	if t.Installation != nil {
		if t.Installation.Command != "" {
			return t.Installation.Command
		}
		if t.Installation.URL != "" {
			return t.Installation.URL
		}
	}
	for _, issue := range t.Issues {
		if issue.Fix != "" {
			return issue.Fix
		}
	}
	return ""
}
