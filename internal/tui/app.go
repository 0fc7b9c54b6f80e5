// Package tui provides the interactive Bubble Tea dashboard for alphawin.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/alphawin/internal/config"
	"github.com/theirongolddev/alphawin/internal/ledger"
	"github.com/theirongolddev/alphawin/internal/model"
	"github.com/theirongolddev/alphawin/internal/rolling"
	"github.com/theirongolddev/alphawin/internal/store"
	"github.com/theirongolddev/alphawin/internal/tui/components"
	"github.com/theirongolddev/alphawin/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Tab indices, matching components.Tabs order.
const (
	tabOverview = iota
	tabHistory
	tabForward
	tabPredict
	tabProfiles
	tabSettings
)

const (
	minTerminalWidth = 70
	maxContentWidth  = 140
	minContentHeight = 5

	autosaveInterval = 30 * time.Second
)

// App is the root Bubble Tea model.
type App struct {
	cfg     config.Config
	store   *store.Store
	profile string
	calc    *rolling.Calculator

	// Profiles tab data, reloaded on profile changes
	profiles []model.Profile

	// Unsaved ledger edits; flushed by the autosave tick and on quit
	dirty   bool
	savedAt time.Time
	saveErr error

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Per-tab state
	days      dayState
	predict   predictState
	profState profilesState
	settings  settingsState
}

// NewApp creates the TUI model over an already-open store and calculator.
func NewApp(cfg config.Config, st *store.Store, profile string, calc *rolling.Calculator) App {
	a := App{
		cfg:     cfg,
		store:   st,
		profile: profile,
		calc:    calc,
		days:    newDayState(),
		predict: newPredictState(calc.Params().HorizonDays),
	}
	a.reloadProfiles()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		autosaveTick(),
	)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.profState.form != nil {
			a.profState.form = a.profState.form.WithWidth(msg.Width)
		}
		return a, nil

	case autosaveMsg:
		a.flushLedger()
		return a, autosaveTick()

	case tea.MouseMsg:
		if a.showHelp || a.profState.form != nil {
			return a, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			a.moveCursor(-1)
			return a, nil
		case tea.MouseButtonWheelDown:
			a.moveCursor(1)
			return a, nil
		case tea.MouseButtonLeft:
			if msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 {
					a.activeTab = tab
				}
			}
			return a, nil
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			a.flushLedger()
			return a, tea.Quit
		}

		// Profile forms intercept all keys
		if a.profState.form != nil {
			return a.updateProfileForm(msg)
		}

		// Day-table edit mode
		if a.onDayTab() && a.days.editing {
			return a.updateDayInput(msg)
		}

		// Settings edit mode
		if a.activeTab == tabSettings && a.settings.editing {
			return a.updateSettingsInput(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		if key == "q" {
			a.flushLedger()
			return a, tea.Quit
		}

		// Tab-local keys first, then navigation
		switch a.activeTab {
		case tabHistory, tabForward:
			if m, cmd, handled := a.updateDayKeys(key); handled {
				return m, cmd
			}
		case tabPredict:
			if m, handled := a.updatePredictKeys(key); handled {
				return m, nil
			}
		case tabProfiles:
			if m, cmd, handled := a.updateProfileKeys(key); handled {
				return m, cmd
			}
		case tabSettings:
			if m, cmd, handled := a.updateSettingsKeys(key); handled {
				return m, cmd
			}
		}

		switch key {
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		case "right", "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		default:
			if len(key) == 1 {
				if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
					a.activeTab = idx
				}
			}
		}
		return a, nil
	}

	// Forward unhandled messages to an active profile form (cursor blinks)
	if a.profState.form != nil {
		return a.updateProfileForm(msg)
	}

	return a, nil
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.profState.form != nil {
		return a.viewProfileForm()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)

	statusBar := components.RenderStatusBar(w, a.profile, a.dirty, a.savedAt)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabOverview:
		content = a.renderOverviewTab(cw)
	case tabHistory:
		content = a.renderHistoryTab(cw)
	case tabForward:
		content = a.renderForwardTab(cw)
	case tabPredict:
		content = a.renderPredictTab(cw, contentH)
	case tabProfiles:
		content = a.renderProfilesTab(cw)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  alphawin needs at least %d columns.\n",
		a.width, minTerminalWidth)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	for _, bind := range []struct{ key, desc string }{
		{"o h f p u x", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Navigate rows"},
	} {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-12s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Editing"))
	b.WriteString("\n")
	for _, bind := range []struct{ key, desc string }{
		{"Enter", "Edit raw score (History/Forward)"},
		{"c", "Edit claim count"},
		{"backspace", "Clear the selected day"},
		{"Esc", "Cancel edit / close form"},
		{"+ -", "Grow / shrink horizon (Predict)"},
		{"n r d", "New / rename / delete profile"},
		{"?", "Toggle help"},
		{"q", "Save and quit"},
	} {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-12s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Persistence ────────────────────────────────────────────────

// flushLedger writes pending ledger edits for the active profile.
func (a *App) flushLedger() {
	if !a.dirty {
		return
	}
	a.saveErr = a.store.SaveLedger(a.profile, a.calc.Ledger())
	if a.saveErr == nil {
		a.dirty = false
		a.savedAt = time.Now()
	}
}

// switchProfile flushes the current ledger and rebuilds the calculator
// for the named profile. The choice is persisted as the active profile.
func (a *App) switchProfile(name string) error {
	a.flushLedger()

	p, err := a.store.GetProfile(name)
	if err != nil {
		return err
	}
	led, err := a.store.LoadLedger(p.Name)
	if err != nil {
		return err
	}

	params := a.cfg.Params()
	if p.DailyScore > 0 {
		params.DefaultScore = p.DailyScore
	}
	if p.Threshold > 0 {
		params.Threshold = p.Threshold
	}

	a.profile = p.Name
	a.calc = rolling.New(led, params)
	a.dirty = false
	a.days = newDayState()
	a.predict = newPredictState(params.HorizonDays)

	a.cfg.General.Profile = p.Name
	_ = config.Save(a.cfg)
	return nil
}

func (a *App) reloadProfiles() {
	profiles, err := a.store.ListProfiles()
	if err == nil {
		a.profiles = profiles
	}
	if a.profState.cursor >= len(a.profiles) {
		a.profState.cursor = len(a.profiles) - 1
	}
	if a.profState.cursor < 0 {
		a.profState.cursor = 0
	}
}

// ─── Helpers ────────────────────────────────────────────────────

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) onDayTab() bool {
	return a.activeTab == tabHistory || a.activeTab == tabForward
}

// moveCursor moves the row cursor of whichever tab has one.
func (a *App) moveCursor(delta int) {
	switch a.activeTab {
	case tabHistory, tabForward:
		a.days.cursor += delta
		a.clampDayCursor()
	case tabPredict:
		a.predict.scroll += delta
		if a.predict.scroll < 0 {
			a.predict.scroll = 0
		}
	case tabProfiles:
		a.profState.cursor += delta
		if a.profState.cursor >= len(a.profiles) {
			a.profState.cursor = len(a.profiles) - 1
		}
		if a.profState.cursor < 0 {
			a.profState.cursor = 0
		}
	case tabSettings:
		a.settings.cursor += delta
		if a.settings.cursor >= settingsFieldCount {
			a.settings.cursor = settingsFieldCount - 1
		}
		if a.settings.cursor < 0 {
			a.settings.cursor = 0
		}
	}
}

type autosaveMsg struct{}

func autosaveTick() tea.Cmd {
	return tea.Tick(autosaveInterval, func(time.Time) tea.Msg {
		return autosaveMsg{}
	})
}

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 1 // leading space in the tab bar
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW
		if i < len(components.Tabs)-1 {
			pos++ // separator column
		}
	}
	return -1
}

func today() string {
	return ledger.Today()
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color
// so gaps between cards and empty lines keep the theme background.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
