package handlers

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/osreclaim/osreclaim/internal/reclaim"
)

var (
	renderColorGreen = lipgloss.Color("#22c55e")
	renderColorRed   = lipgloss.Color("#ef4444")
	renderColorBlue  = lipgloss.Color("#3b82f6")
	renderColorDim   = lipgloss.Color("#6b7280")
	renderColorWhite = lipgloss.Color("#f9fafb")
)

var (
	renderTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(renderColorWhite)

	renderSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(renderColorBlue)

	renderDimStyle = lipgloss.NewStyle().
			Foreground(renderColorDim)

	renderGreenStyle = lipgloss.NewStyle().
				Foreground(renderColorGreen)

	renderRedStyle = lipgloss.NewStyle().
			Foreground(renderColorRed)
)

// renderPlan produces the human-readable reclamation plan, grouped by kind
// in deletion order.
func renderPlan(plan *reclaim.Plan) string {
	var b strings.Builder

	b.WriteString("\n")
	title := "  Reclamation plan"
	if plan.Signature != "" {
		title = fmt.Sprintf("  Reclamation plan: %s", plan.Signature)
	}
	b.WriteString(renderTitleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(renderDimStyle.Render("  " + strings.Repeat("═", 40)))
	b.WriteString("\n")

	for _, kind := range reclaim.Kinds {
		resources := plan.Resources(kind)
		if len(resources) == 0 {
			continue
		}
		b.WriteString("\n")
		b.WriteString(renderSectionStyle.Render(fmt.Sprintf("  %ss (%d)", kind, len(resources))))
		b.WriteString("\n")
		for _, r := range resources {
			fmt.Fprintf(&b, "    %-48s %s\n", r.Name, renderDimStyle.Render(r.ID))
		}
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "  %d resources selected for deletion\n", plan.Total())
	return b.String()
}

// renderResult produces the human-readable outcome report of one pass.
func renderResult(result *reclaim.Result) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(renderTitleStyle.Render("  Reclamation result"))
	b.WriteString("\n")
	b.WriteString(renderDimStyle.Render("  " + strings.Repeat("═", 40)))
	b.WriteString("\n\n")

	for _, o := range result.Outcomes {
		var status string
		switch o.Status {
		case reclaim.StatusDeleted:
			status = renderGreenStyle.Render("deleted")
		case reclaim.StatusFailed:
			status = renderRedStyle.Render("failed ")
		default:
			status = renderDimStyle.Render("skipped")
		}
		fmt.Fprintf(&b, "  %s  %-14s %s\n", status, o.Kind, o.Name)
		if o.Status != reclaim.StatusDeleted && o.Reason != "" {
			b.WriteString(renderDimStyle.Render("             " + o.Reason))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "  %d deleted, %d failed, %d skipped\n",
		result.Deleted(), result.Failed(), result.Skipped())
	return b.String()
}
