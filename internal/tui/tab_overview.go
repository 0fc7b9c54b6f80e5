package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/alphawin/internal/cli"
	"github.com/theirongolddev/alphawin/internal/ledger"
	"github.com/theirongolddev/alphawin/internal/tui/components"
	"github.com/theirongolddev/alphawin/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	anchor := today()
	params := a.calc.Params()
	window := a.calc.WindowSum(anchor)
	var b strings.Builder

	// Row 1: Metric cards
	verdict := "below target"
	if window >= params.Threshold {
		verdict = "eligible"
	}
	claimsDetail := "window under target"
	if max := a.calc.MaxClaimable(anchor); max > 0 {
		claimsDetail = fmt.Sprintf("up to %d claim(s)", max)
	}

	cards := []struct{ Label, Value, Detail string }{
		{"Window (15d)", cli.FormatScore(window), verdict},
		{"Target", cli.FormatScore(params.Threshold), fmt.Sprintf("%d/day default", params.DefaultScore)},
		{"Today", cli.FormatSigned(a.calc.AccountedScore(anchor)), anchor},
		{"Claims", cli.FormatScore(a.calc.Ledger().EffectiveClaim(anchor)), claimsDetail},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Progress toward target
	innerW := components.CardInnerWidth(cw)
	barW := innerW - 30
	if barW < 10 {
		barW = 10
	}
	b.WriteString(components.ContentCard("Eligibility",
		components.TargetBar("Window", window, params.Threshold, 8, barW),
		cw))
	b.WriteString("\n")

	// Row 3: Window sums over the coming days
	forward := a.calc.ForwardTable(anchor, params.WindowDays)
	vals := make([]int, len(forward))
	labels := make([]string, len(forward))
	for i, r := range forward {
		vals[i] = r.WindowSum
		day, err := ledger.ParseDate(r.Date)
		if err == nil && (i == 0 || day.Day() == 1 || i%5 == 0) {
			labels[i] = strconv.Itoa(day.Day())
		}
	}
	b.WriteString(components.ContentCard(
		fmt.Sprintf("Window, next %d days", len(forward)),
		components.WindowChart(vals, labels, params.Threshold, innerW, 9),
		cw))
	b.WriteString("\n")

	// Row 4: Advice
	advice := a.calc.Advise(anchor)
	if len(advice) > 0 {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
		var body strings.Builder
		for i, line := range advice {
			if i > 0 {
				body.WriteString("\n")
			}
			body.WriteString(warnStyle.Render(line))
		}
		b.WriteString(components.ContentCard("Advice", body.String(), cw))
	}

	return b.String()
}
