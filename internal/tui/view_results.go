package tui

import (
	"fmt"
	"strings"

	"github.com/debaite/podium/internal/api"
	"github.com/debaite/podium/internal/results"
	"github.com/debaite/podium/internal/tui/styles"
	"github.com/debaite/podium/internal/util"
)

func (m Model) viewResults() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Past debates"))
	b.WriteString("\n")

	if len(m.browser.Summaries) == 0 {
		b.WriteString(styles.Muted.Render("no results yet"))
		b.WriteString("\n")
	}

	for i, s := range m.browser.Summaries {
		line := fmt.Sprintf("%s  %s", s.Topic, styles.Muted.Render(s.Date))
		if s.Winner != "" {
			line += "  " + styles.Secondary.Render("winner: "+s.Winner)
		}
		if i == m.resultsCursor {
			b.WriteString(styles.Selected.Render("› " + line))
		} else {
			b.WriteString(styles.Unselected.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if m.loadingDetail {
		b.WriteString("\n")
		b.WriteString(styles.Muted.Render("loading detail..."))
		b.WriteString("\n")
	} else if m.browser.Detail != nil {
		b.WriteString("\n")
		b.WriteString(m.viewResultDetail(m.browser.Detail))
	}

	return b.String()
}

func (m Model) viewResultDetail(detail *api.ResultDetail) string {
	var b strings.Builder
	b.WriteString(styles.SectionHeader.Render(detail.Metadata.Topic))
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render(fmt.Sprintf("%s · %d participants · $%.4f",
		detail.Metadata.Date, len(detail.Participants), detail.Metadata.TotalEstimatedCostUSD)))
	b.WriteString("\n")

	if outcome := detail.Evaluation.GlobalOutcome; outcome != nil && outcome.WinnerName != "" {
		b.WriteString(styles.Secondary.Render("Winner: " + outcome.WinnerName))
		if outcome.WinnerPosition != "" {
			b.WriteString(styles.Muted.Render(" (" + outcome.WinnerPosition + ")"))
		}
		b.WriteString("\n")
	}

	for _, p := range detail.Participants {
		line := fmt.Sprintf("  %s (%s, %s)", p.Name, p.Role, p.Brain)
		if p.IsVetoed {
			line += " " + styles.Error.Render("[vetoed]")
		}
		if p.Strikes > 0 {
			line += styles.Warning.Render(fmt.Sprintf(" %d strikes", p.Strikes))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(renderChart("Average scores", results.AverageScores(detail), "%.1f"))
	b.WriteString(renderChart("Votes", results.VoteDistribution(detail), "%.0f"))

	for _, change := range detail.PositionChanges {
		b.WriteString(styles.Muted.Render(fmt.Sprintf("  %s switched %s → %s in round %d",
			change.Name, change.FromPosition, change.ToPosition, change.RoundWhenChanged)))
		b.WriteString("\n")
	}

	return b.String()
}

// renderChart draws a labelled horizontal bar per pair.
func renderChart(title string, pairs []results.Pair, valueFormat string) string {
	if len(pairs) == 0 {
		return ""
	}
	max := results.MaxValue(pairs)

	var b strings.Builder
	b.WriteString(styles.SectionHeader.Render(title))
	b.WriteString("\n")
	for _, p := range pairs {
		ratio := 0.0
		if max > 0 {
			ratio = p.Value / max
		}
		b.WriteString(fmt.Sprintf("  %-12s %s %s\n",
			util.TruncateString(p.Name, 12),
			styles.Primary.Render(util.Bar(ratio, 20)),
			styles.Muted.Render(fmt.Sprintf(valueFormat, p.Value))))
	}
	return b.String()
}
