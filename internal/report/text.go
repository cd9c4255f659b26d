package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"devcheck/internal/doctor"
)

// Palette borrowed from Vitesse Dark Soft; styling is applied here, at the
// final sink, so the layout below stays testable without terminal capture.
var (
	headStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#6394bf"))
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#4d9375"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#e6cc77"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#cb7676"))
)

const rule = "==========================================="

// Text renders the human-readable report.
func Text(rep doctor.Report) string {
	return strings.Join(Lines(rep), "\n") + "\n"
}

// Lines renders the report as a sequence of formatted lines: tools grouped
// by category, a system block, and a pass/fail banner with quick fixes.
func Lines(rep doctor.Report) []string {
	lines := []string{
		"🔍 Development Tools Check",
		rule,
		"",
	}

	groups := []struct {
		title    string
		category doctor.Category
	}{
		{"Required Tools:", doctor.CategoryRequired},
		{"Optional Tools:", doctor.CategoryOptional},
		{"Project-Specific Checks:", doctor.CategoryProject},
	}
	for _, g := range groups {
		var tools []doctor.ToolResult
		for _, t := range rep.Tools {
			if t.Category == g.category {
				tools = append(tools, t)
			}
		}
		if len(tools) == 0 {
			continue
		}
		lines = append(lines, headStyle.Render(g.title))
		lines = append(lines, strings.Repeat("-", len(g.title)))
		for _, t := range tools {
			lines = append(lines, toolLines(t)...)
		}
	}

	lines = append(lines,
		headStyle.Render("System Info:"),
		"------------",
		fmt.Sprintf("OS: %s %s", rep.System.OS, rep.System.OSVersion),
		fmt.Sprintf("Architecture: %s", rep.System.Architecture),
		"",
		rule,
		"",
	)

	if rep.Summary.AllRequiredPresent {
		lines = append(lines,
			okStyle.Render("✅ All required tools are installed!"),
			"",
			"You can now build the project with:",
			"  just build",
		)
	} else {
		lines = append(lines,
			failStyle.Render("❌ Some required tools are missing."),
			"",
			"Please install the missing required tools before proceeding.",
		)
		var critical []doctor.Recommendation
		for _, rec := range rep.Recommendations {
			if rec.Priority == doctor.PriorityCritical {
				critical = append(critical, rec)
			}
		}
		if len(critical) > 0 {
			lines = append(lines, "", "Quick fixes:")
			for _, rec := range critical {
				lines = append(lines, fmt.Sprintf("  • %s", rec.Message))
				if rec.Action != "" {
					lines = append(lines, fmt.Sprintf("    %s", rec.Action))
				}
			}
		}
	}
	lines = append(lines, "")
	return lines
}

// toolLines renders one result: status line, version/path, issues with fix
// suggestions, and the install hint when the tool is down.
func toolLines(t doctor.ToolResult) []string {
	var lines []string

	glyph := okStyle.Render("✓")
	switch {
	case t.Status == doctor.StatusFound:
		// keep the check mark
	case t.Status == doctor.StatusNotFound && t.Category == doctor.CategoryRequired:
		glyph = failStyle.Render("✗")
	default:
		glyph = warnStyle.Render("⚠")
	}

	label := "Found"
	if !t.Working {
		label = "Not found"
		if t.Category != doctor.CategoryRequired {
			label += " (optional)"
		}
	}
	lines = append(lines, fmt.Sprintf("Checking %s... %s %s", t.Name, glyph, label))

	if t.Version != "" {
		lines = append(lines, fmt.Sprintf("  └─ Version: %s", t.Version))
	}
	if t.Path != "" {
		lines = append(lines, fmt.Sprintf("  └─ Path: %s", t.Path))
	}
	for _, issue := range t.Issues {
		lines = append(lines, fmt.Sprintf("  └─ %s", issue.Message))
		if issue.Fix != "" {
			lines = append(lines, fmt.Sprintf("      Fix: %s", issue.Fix))
		}
	}
	if !t.Working && t.Installation != nil {
		if t.Installation.Command != "" {
			lines = append(lines, fmt.Sprintf("  └─ Install: %s", t.Installation.Command))
		} else if t.Installation.URL != "" {
			lines = append(lines, fmt.Sprintf("  └─ Install: %s", t.Installation.URL))
		}
	}
	lines = append(lines, "")
	return lines
}
