package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/alphawin/internal/cli"
	"github.com/theirongolddev/alphawin/internal/ledger"
	"github.com/theirongolddev/alphawin/internal/model"
	"github.com/theirongolddev/alphawin/internal/tui/components"
	"github.com/theirongolddev/alphawin/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// predictState tracks the Predict tab's scan horizon and hit-list scroll.
type predictState struct {
	horizon int
	scroll  int
}

func newPredictState(horizon int) predictState {
	return predictState{horizon: horizon}
}

func (a App) updatePredictKeys(key string) (App, bool) {
	switch key {
	case "+", "=":
		a.predict.horizon += 10
		return a, true
	case "-":
		if a.predict.horizon > 10 {
			a.predict.horizon -= 10
		}
		return a, true
	case "j", "down":
		a.predict.scroll++
		return a, true
	case "k", "up":
		if a.predict.scroll > 0 {
			a.predict.scroll--
		}
		return a, true
	case "g":
		a.predict.scroll = 0
		return a, true
	}
	return a, false
}

func (a App) renderPredictTab(cw, contentH int) string {
	t := theme.Active
	params := a.calc.Params()
	res := a.calc.FindCrossings(today(), params.Threshold, a.predict.horizon)

	title := fmt.Sprintf("Predict — target %d over %d days  [+/-] adjust horizon",
		params.Threshold, a.predict.horizon)

	headStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	goodStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface).Bold(true)
	badStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)
	warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)

	var b strings.Builder

	switch res.Kind {
	case model.OutcomeInvalidThreshold:
		b.WriteString(badStyle.Render("Target must be positive."))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("Fix it on the Settings tab."))

	case model.OutcomeAlreadySatisfied:
		b.WriteString(goodStyle.Render(
			fmt.Sprintf("Already satisfied — current window is %d.", res.CurrentWindow)))
		b.WriteString("\n\n")
		for _, line := range a.calc.Advise(today()) {
			b.WriteString(warnStyle.Render(line))
			b.WriteString("\n")
		}

	case model.OutcomeUnreachable:
		b.WriteString(badStyle.Render(
			fmt.Sprintf("Target unreachable within %d days.", a.predict.horizon)))
		b.WriteString("\n\n")
		for _, line := range res.Advice {
			b.WriteString(warnStyle.Render(line))
			b.WriteString("\n")
		}

	case model.OutcomeFound:
		b.WriteString(rowStyle.Render(fmt.Sprintf(
			"Current window %d. %d day(s) reach the target:", res.CurrentWindow, len(res.Hits))))
		b.WriteString("\n\n")
		b.WriteString(headStyle.Render(fmt.Sprintf(" %-12s %-4s %-10s %8s %6s",
			"Date", "Day", "When", "Window", "Over")))
		b.WriteString("\n")

		// Page the hit list with j/k; keep a few lines for the header.
		visible := contentH - 8
		if visible < 3 {
			visible = 3
		}
		scroll := a.predict.scroll
		if scroll > len(res.Hits)-visible {
			scroll = len(res.Hits) - visible
		}
		if scroll < 0 {
			scroll = 0
		}
		end := scroll + visible
		if end > len(res.Hits) {
			end = len(res.Hits)
		}

		for _, h := range res.Hits[scroll:end] {
			b.WriteString(rowStyle.Render(fmt.Sprintf(" %-12s %-4s %-10s ",
				h.Date,
				cli.FormatDayOfWeek(ledger.Weekday(h.Date)),
				cli.FormatRelativeDay(h.DayOffset))))
			b.WriteString(goodStyle.Render(fmt.Sprintf("%8d", h.Score)))
			b.WriteString(rowStyle.Render(fmt.Sprintf(" %6s", cli.FormatSigned(h.Score-params.Threshold))))
			b.WriteString("\n")
		}
		if len(res.Hits) > visible {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  … %d-%d of %d  [j/k] scroll",
				scroll+1, end, len(res.Hits))))
		}
	}

	return components.ContentCard(title, b.String(), cw)
}
