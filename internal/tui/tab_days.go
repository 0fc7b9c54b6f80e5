package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/alphawin/internal/cli"
	"github.com/theirongolddev/alphawin/internal/ledger"
	"github.com/theirongolddev/alphawin/internal/model"
	"github.com/theirongolddev/alphawin/internal/tui/components"
	"github.com/theirongolddev/alphawin/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// dayState tracks cursor and edit state shared by the History and
// Forward tabs.
type dayState struct {
	cursor      int
	editing     bool
	field       string // ledger field being edited
	input       textinput.Model
	forwardDays int
}

func newDayState() dayState {
	return dayState{forwardDays: 15}
}

func newDayInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 8
	ti.Width = 10
	return ti
}

// dayRows returns the table rows for the active day tab.
func (a App) dayRows() []model.DayRow {
	if a.activeTab == tabForward {
		return a.calc.ForwardTable(today(), a.days.forwardDays)
	}
	return a.calc.HistoryTable(today())
}

func (a *App) clampDayCursor() {
	n := len(a.dayRows())
	if a.days.cursor >= n {
		a.days.cursor = n - 1
	}
	if a.days.cursor < 0 {
		a.days.cursor = 0
	}
}

// updateDayKeys handles History/Forward key presses outside edit mode.
// Returns handled=false for keys the caller should treat as navigation.
func (a App) updateDayKeys(key string) (tea.Model, tea.Cmd, bool) {
	rows := a.dayRows()

	switch key {
	case "j", "down":
		if a.days.cursor < len(rows)-1 {
			a.days.cursor++
		}
		return a, nil, true
	case "k", "up":
		if a.days.cursor > 0 {
			a.days.cursor--
		}
		return a, nil, true
	case "g":
		a.days.cursor = 0
		return a, nil, true
	case "G":
		a.days.cursor = len(rows) - 1
		if a.days.cursor < 0 {
			a.days.cursor = 0
		}
		return a, nil, true
	case "enter":
		return a.startDayEdit(ledger.FieldRaw)
	case "c":
		return a.startDayEdit(ledger.FieldClaim)
	case "backspace":
		if a.days.cursor < len(rows) {
			a.calc.Ledger().Clear(rows[a.days.cursor].Date)
			a.dirty = true
		}
		return a, nil, true
	case "+", "=":
		if a.activeTab == tabForward {
			a.days.forwardDays += 5
			return a, nil, true
		}
	case "-":
		if a.activeTab == tabForward && a.days.forwardDays > 5 {
			a.days.forwardDays -= 5
			return a, nil, true
		}
	}
	return a, nil, false
}

func (a App) startDayEdit(field string) (tea.Model, tea.Cmd, bool) {
	rows := a.dayRows()
	if a.days.cursor >= len(rows) {
		return a, nil, true
	}
	current := rows[a.days.cursor].RawScore
	placeholder := "raw score"
	if field == ledger.FieldClaim {
		current = rows[a.days.cursor].ClaimCount
		placeholder = "claim count"
	}

	ti := newDayInput(placeholder)
	ti.SetValue(cli.FormatScore(current))
	ti.Focus()

	a.days.editing = true
	a.days.field = field
	a.days.input = ti
	return a, ti.Cursor.BlinkCmd(), true
}

// updateDayInput handles keys while editing a day value. Enter commits
// through the same coercion as every other edit path; Esc cancels.
func (a App) updateDayInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		rows := a.dayRows()
		if a.days.cursor < len(rows) {
			a.calc.SetDay(rows[a.days.cursor].Date, a.days.field, a.days.input.Value())
			a.dirty = true
		}
		a.days.editing = false
		return a, nil
	case "esc":
		a.days.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.days.input, cmd = a.days.input.Update(msg)
	return a, cmd
}

func (a App) renderHistoryTab(cw int) string {
	anchor := today()
	title := fmt.Sprintf("History — 15 days behind %s (window %d)",
		anchor, a.calc.WindowSum(anchor))
	return a.renderDayTable(title, cw)
}

func (a App) renderForwardTab(cw int) string {
	title := fmt.Sprintf("Forward — next %d days  [+/-] adjust", a.days.forwardDays)
	return a.renderDayTable(title, cw)
}

func (a App) renderDayTable(title string, cw int) string {
	t := theme.Active
	rows := a.dayRows()
	innerW := components.CardInnerWidth(cw)

	headStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	markStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)
	goodStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	badStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)

	var b strings.Builder
	b.WriteString(headStyle.Render(fmt.Sprintf(" %-12s %-4s %6s %7s %10s %8s",
		"Date", "Day", "Raw", "Claims", "Accounted", "Window")))
	b.WriteString("\n")

	for i, r := range rows {
		marker := " "
		if r.Explicit {
			marker = "*"
		}
		line := fmt.Sprintf("%s%-12s %-4s %6d %7d %10s %8d",
			marker, r.Date,
			cli.FormatDayOfWeek(ledger.Weekday(r.Date)),
			r.RawScore, r.ClaimCount,
			cli.FormatSigned(r.AccountedScore), r.WindowSum)

		switch {
		case i == a.days.cursor && a.days.editing:
			b.WriteString(markStyle.Render("▸"))
			b.WriteString(selStyle.Render(line[1:]))
			b.WriteString(selStyle.Render(fmt.Sprintf("  %s: ", a.days.field)))
			b.WriteString(a.days.input.View())
		case i == a.days.cursor:
			b.WriteString(markStyle.Render("▸"))
			b.WriteString(selStyle.Render(line[1:]))
			pad := innerW - 1 - lipgloss.Width(line[1:])
			if pad > 0 {
				b.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", pad)))
			}
		case r.AccountedScore < 0:
			b.WriteString(badStyle.Render(line))
		case r.Explicit:
			b.WriteString(goodStyle.Render(line))
		default:
			b.WriteString(rowStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("[Enter] edit raw  [c] edit claims  [Backspace] clear  * explicit entry"))

	return components.ContentCard(title, b.String(), cw)
}
