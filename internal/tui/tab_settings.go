package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/alphawin/internal/config"
	"github.com/theirongolddev/alphawin/internal/ledger"
	"github.com/theirongolddev/alphawin/internal/rolling"
	"github.com/theirongolddev/alphawin/internal/tui/components"
	"github.com/theirongolddev/alphawin/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	settingsFieldScore = iota
	settingsFieldTarget
	settingsFieldHorizon
	settingsFieldDeduction
	settingsFieldTheme
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" message briefly
	saveErr error // non-nil if last save failed
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 40
	return ti
}

func (a App) updateSettingsKeys(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "j", "down":
		if a.settings.cursor < settingsFieldCount-1 {
			a.settings.cursor++
		}
		return a, nil, true
	case "k", "up":
		if a.settings.cursor > 0 {
			a.settings.cursor--
		}
		return a, nil, true
	case "enter":
		m, cmd := a.settingsStartEdit()
		return m, cmd, true
	}
	return a, nil, false
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	params := a.calc.Params()
	a.settings.editing = true
	a.settings.saved = false

	ti := newSettingsInput()
	switch a.settings.cursor {
	case settingsFieldScore:
		ti.Placeholder = strconv.Itoa(rolling.DefaultDailyScore)
		ti.SetValue(strconv.Itoa(params.DefaultScore))
	case settingsFieldTarget:
		ti.Placeholder = strconv.Itoa(rolling.DefaultThreshold)
		ti.SetValue(strconv.Itoa(params.Threshold))
	case settingsFieldHorizon:
		ti.Placeholder = strconv.Itoa(rolling.DefaultHorizonDays)
		ti.SetValue(strconv.Itoa(params.HorizonDays))
	case settingsFieldDeduction:
		ti.Placeholder = strconv.Itoa(rolling.DefaultClaimDeduction)
		ti.SetValue(strconv.Itoa(params.ClaimDeduction))
	case settingsFieldTheme:
		ti.Placeholder = "flexoki-dark, catppuccin-mocha, tokyo-night, terminal"
		ti.SetValue(a.cfg.Appearance.Theme)
	}

	ti.Focus()
	a.settings.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.settingsSave()
		a.settings.editing = false
		a.settings.saved = a.settings.saveErr == nil
		return a, nil
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

func (a *App) settingsSave() {
	val := strings.TrimSpace(a.settings.input.Value())
	params := a.calc.Params()

	switch a.settings.cursor {
	case settingsFieldScore:
		if n := ledger.ParseAmount(val); n > 0 {
			params.DefaultScore = n
			a.settings.saveErr = a.store.UpdateSettings(a.profile, n, params.Threshold)
		}
	case settingsFieldTarget:
		if n := ledger.ParseAmount(val); n > 0 {
			params.Threshold = n
			a.settings.saveErr = a.store.UpdateSettings(a.profile, params.DefaultScore, n)
		}
	case settingsFieldHorizon:
		if n := ledger.ParseAmount(val); n > 0 {
			params.HorizonDays = n
			a.cfg.Scoring.HorizonDays = n
			a.settings.saveErr = config.Save(a.cfg)
			a.predict.horizon = n
		}
	case settingsFieldDeduction:
		if n := ledger.ParseAmount(val); n > 0 {
			params.ClaimDeduction = n
			a.cfg.Scoring.ClaimDeduction = n
			a.settings.saveErr = config.Save(a.cfg)
		}
	case settingsFieldTheme:
		for _, th := range theme.All {
			if th.Name == val {
				a.cfg.Appearance.Theme = val
				theme.SetActive(val)
				a.settings.saveErr = config.Save(a.cfg)
				break
			}
		}
	}

	// Rebuild the calculator so new rules apply to every view at once.
	a.calc = rolling.New(a.calc.Ledger(), params)
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	params := a.calc.Params()

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	greenStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	type field struct {
		label string
		value string
	}

	fields := []field{
		{"Daily Score", strconv.Itoa(params.DefaultScore)},
		{"Target", strconv.Itoa(params.Threshold)},
		{"Horizon Days", strconv.Itoa(params.HorizonDays)},
		{"Claim Deduction", strconv.Itoa(params.ClaimDeduction)},
		{"Theme", a.cfg.Appearance.Theme},
	}

	var formBody strings.Builder
	for i, f := range fields {
		if a.settings.editing && i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-18s ", f.label)))
			formBody.WriteString(a.settings.input.View())
			formBody.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-18s ", f.label+":"))
			value := selectedStyle.Render(f.value)
			formBody.WriteString(marker)
			formBody.WriteString(label)
			formBody.WriteString(value)
			usedWidth := lipgloss.Width(marker) + lipgloss.Width(label) + lipgloss.Width(value)
			innerW := components.CardInnerWidth(cw)
			if pad := innerW - usedWidth; pad > 0 {
				formBody.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", pad)))
			}
		} else {
			formBody.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-18s ", f.label+":")))
			formBody.WriteString(valueStyle.Render(f.value))
		}
		formBody.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(fmt.Sprintf("Save failed: %s", a.settings.saveErr)))
	} else if a.settings.saved {
		formBody.WriteString("\n")
		formBody.WriteString(greenStyle.Render("Saved!"))
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit  [Esc] cancel"))

	// General info card
	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Profile:      ") + valueStyle.Render(a.profile) + "\n")
	infoBody.WriteString(labelStyle.Render("Entries:      ") + valueStyle.Render(strconv.Itoa(a.calc.Ledger().Len())) + "\n")
	infoBody.WriteString(labelStyle.Render("Database:     ") + valueStyle.Render(a.cfg.DBPath()) + "\n")
	infoBody.WriteString(labelStyle.Render("Config file:  ") + valueStyle.Render(config.Path()))

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("General", infoBody.String(), cw))

	return b.String()
}
