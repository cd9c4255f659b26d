package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"devcheck/internal/doctor"
)

// Markdown renders the report as a markdown document suitable for issues
// and CI job summaries.
func Markdown(rep doctor.Report) string {
	var b strings.Builder
	b.WriteString("# Development Tools Check\n\n")
	b.WriteString(fmt.Sprintf("Generated %s on %s %s (%s).\n\n",
		rep.Timestamp.Format("2006-01-02 15:04:05"),
		rep.System.OS, rep.System.OSVersion, rep.System.Architecture))

	if rep.Summary.AllRequiredPresent {
		b.WriteString("**All required tools are installed.**\n\n")
	} else {
		b.WriteString(fmt.Sprintf("**Missing required tools: %d of %d present.**\n\n",
			rep.Summary.RequiredPresent, rep.Summary.RequiredCount))
	}

	b.WriteString("| Tool | Category | Status | Version | Path |\n")
	b.WriteString("|------|----------|--------|---------|------|\n")
	for _, t := range rep.Tools {
		mark := "❌"
		if t.Working {
			mark = "✅"
		} else if t.Status == doctor.StatusWarning {
			mark = "⚠️"
		}
		b.WriteString(fmt.Sprintf("| %s | %s | %s %s | %s | %s |\n",
			t.Name, t.Category, mark, t.Status, orDash(t.Version), orDash(t.Path)))
	}
	b.WriteString("\n")

	if len(rep.Recommendations) > 0 {
		b.WriteString("## Recommendations\n\n")
		for _, rec := range rep.Recommendations {
			b.WriteString(fmt.Sprintf("- **%s**: %s", rec.Priority, rec.Message))
			if rec.Action != "" {
				b.WriteString(fmt.Sprintf(" (`%s`)", rec.Action))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderMarkdown renders md for terminal display through glamour, falling
// back to the raw text when rendering fails.
func RenderMarkdown(md string) string {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "—"
	}
	return s
}
