package main

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rpggio/wirecrm/internal/domain/account"
	"github.com/rpggio/wirecrm/internal/domain/pipeline"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#89B4FA"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
	hotStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8"))

	severityStyles = map[pipeline.Severity]lipgloss.Style{
		pipeline.SeverityGood: lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")),
		pipeline.SeverityWarn: lipgloss.NewStyle().Foreground(lipgloss.Color("#FAB387")),
		pipeline.SeverityBad:  lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")),
	}
)

type column struct {
	title string
	width int
}

var planColumns = []column{
	{"Opportunity", 26}, {"Account", 18}, {"Stage", 10}, {"Value", 11},
	{"Risk", 5}, {"Closing", 8}, {"Last Touch", 15}, {"Stale", 6}, {"AR", 5},
}

// cell pads s to width, truncating with an ellipsis when it doesn't fit.
func cell(s string, width int, style lipgloss.Style) string {
	if lipgloss.Width(s) > width {
		runes := []rune(s)
		for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
			runes = runes[:len(runes)-1]
		}
		s = string(runes) + "…"
	}
	return style.Width(width).Render(s)
}

func header(cols []column) string {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = cell(c.title, c.width, mutedStyle)
	}
	return strings.Join(parts, " ") + "\n"
}

func planRow(row pipeline.Row) string {
	risk := lipgloss.NewStyle()
	if row.RiskLabel == "Hot" {
		risk = hotStyle
	}
	lastTouch := row.LastTouchDate
	if row.LastTouchType != "" {
		lastTouch += " · " + row.LastTouchType
	}
	values := []string{
		row.Name, row.AccountName, row.Stage, row.Value, row.RiskLabel,
		row.Closing, lastTouch, row.StaleLabel, strings.TrimPrefix(row.AR, "AR: "),
	}
	styles := []lipgloss.Style{
		lipgloss.NewStyle(), lipgloss.NewStyle(), lipgloss.NewStyle(), lipgloss.NewStyle(),
		risk, lipgloss.NewStyle(), lipgloss.NewStyle(), severityStyles[row.StaleSeverity], lipgloss.NewStyle(),
	}
	parts := make([]string, len(planColumns))
	for i, c := range planColumns {
		parts[i] = cell(values[i], c.width, styles[i])
	}
	return strings.Join(parts, " ") + "\n"
}

// renderPlan prints plan as a terminal table, with a heading per stage group.
func renderPlan(plan pipeline.Plan, format pipeline.Formatter) string {
	var b strings.Builder
	b.WriteString(mutedStyle.Render("Tab: "+plan.State.Tab.Label()+" · "+plan.State.GroupToggleLabel()) + "\n")
	if plan.Total == 0 {
		b.WriteString("No deals match.\n")
		return b.String()
	}
	b.WriteString(header(planColumns))
	if !plan.Grouped {
		for _, r := range plan.Records {
			b.WriteString(planRow(pipeline.NewRow(r, format)))
		}
		return b.String()
	}
	for _, g := range plan.Groups {
		b.WriteString("\n" + headingStyle.Render(pipeline.GroupHeading(g)) + " " + mutedStyle.Render(pipeline.GroupCaption(g)) + "\n")
		for _, r := range g.Records {
			b.WriteString(planRow(pipeline.NewRow(r, format)))
		}
	}
	return b.String()
}

var accountColumns = []column{{"ID", 10}, {"Account", 20}, {"Industry", 14}, {"Owner", 10}, {"Score", 6}, {"Deals", 6}}

func renderAccounts(summaries []account.Summary) string {
	var b strings.Builder
	b.WriteString(header(accountColumns))
	plain := lipgloss.NewStyle()
	for _, s := range summaries {
		values := []string{s.ID, s.Name, s.Industry, s.Agent, strconv.Itoa(s.Score), strconv.Itoa(s.OpportunityCount)}
		parts := make([]string, len(accountColumns))
		for i, c := range accountColumns {
			parts[i] = cell(values[i], c.width, plain)
		}
		b.WriteString(strings.Join(parts, " ") + "\n")
	}
	return b.String()
}
