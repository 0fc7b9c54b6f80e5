package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/alphawin/internal/cli"
	"github.com/theirongolddev/alphawin/internal/ledger"
	"github.com/theirongolddev/alphawin/internal/model"
	"github.com/theirongolddev/alphawin/internal/tui/components"
	"github.com/theirongolddev/alphawin/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	profFormNone = iota
	profFormNew
	profFormRename
	profFormDelete
)

// profilesState tracks the Profiles tab: row cursor plus any open
// create/rename/delete form.
type profilesState struct {
	cursor int
	form   *huh.Form
	mode   int
	target string // profile the rename/delete form acts on
	err    error

	// Form values; huh binds to these pointers.
	name    string
	score   string
	goal    string
	confirm bool
}

func (a App) selectedProfile() (model.Profile, bool) {
	if a.profState.cursor < 0 || a.profState.cursor >= len(a.profiles) {
		return model.Profile{}, false
	}
	return a.profiles[a.profState.cursor], true
}

func (a App) updateProfileKeys(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "j", "down":
		if a.profState.cursor < len(a.profiles)-1 {
			a.profState.cursor++
		}
		return a, nil, true
	case "k", "up":
		if a.profState.cursor > 0 {
			a.profState.cursor--
		}
		return a, nil, true
	case "enter":
		if p, ok := a.selectedProfile(); ok {
			a.profState.err = a.switchProfile(p.Name)
		}
		return a, nil, true
	case "n":
		a.profState.mode = profFormNew
		a.profState.name = ""
		a.profState.score = ""
		a.profState.goal = ""
		a.profState.form = a.newProfileForm()
		return a, a.profState.form.Init(), true
	case "r":
		p, ok := a.selectedProfile()
		if !ok || p.Name == model.DefaultProfileName {
			a.profState.err = errors.New("the default profile cannot be renamed")
			return a, nil, true
		}
		a.profState.mode = profFormRename
		a.profState.target = p.Name
		a.profState.name = p.Name
		a.profState.form = a.renameProfileForm()
		return a, a.profState.form.Init(), true
	case "d":
		p, ok := a.selectedProfile()
		if !ok || p.Name == model.DefaultProfileName {
			a.profState.err = errors.New("the default profile cannot be deleted")
			return a, nil, true
		}
		a.profState.mode = profFormDelete
		a.profState.target = p.Name
		a.profState.confirm = false
		a.profState.form = a.deleteProfileForm(p)
		return a, a.profState.form.Init(), true
	}
	return a, nil, false
}

func (a *App) newProfileForm() *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Profile name").
			Value(&a.profState.name).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("name must not be empty")
				}
				return nil
			}),
		huh.NewInput().
			Title("Daily score").
			Description("Points earned on an unrecorded day (blank for default)").
			Value(&a.profState.score),
		huh.NewInput().
			Title("Target").
			Description("Window sum needed to claim (blank for default)").
			Value(&a.profState.goal),
	))
}

func (a *App) renameProfileForm() *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title(fmt.Sprintf("Rename %q to", a.profState.target)).
			Value(&a.profState.name).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("name must not be empty")
				}
				return nil
			}),
	))
}

func (a *App) deleteProfileForm(p model.Profile) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf("Delete %q?", p.Name)).
			Description(fmt.Sprintf("Removes the profile and its %d entries.", p.EntryCount)).
			Affirmative("Delete").
			Negative("Keep").
			Value(&a.profState.confirm),
	))
}

func (a App) updateProfileForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.profState.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.profState.form = f
	}

	if a.profState.form.State == huh.StateCompleted {
		a.applyProfileForm()
		a.profState.form = nil
		a.profState.mode = profFormNone
		a.reloadProfiles()
		return a, nil
	}

	if a.profState.form.State == huh.StateAborted {
		a.profState.form = nil
		a.profState.mode = profFormNone
		return a, nil
	}

	return a, cmd
}

func (a *App) applyProfileForm() {
	switch a.profState.mode {
	case profFormNew:
		name := strings.TrimSpace(a.profState.name)
		a.profState.err = a.store.CreateProfile(name,
			ledger.ParseAmount(a.profState.score),
			ledger.ParseAmount(a.profState.goal))
		if a.profState.err == nil {
			a.profState.err = a.switchProfile(name)
		}
	case profFormRename:
		newName := strings.TrimSpace(a.profState.name)
		a.profState.err = a.store.RenameProfile(a.profState.target, newName)
		if a.profState.err == nil && a.profile == a.profState.target {
			a.profState.err = a.switchProfile(newName)
		}
	case profFormDelete:
		if !a.profState.confirm {
			return
		}
		a.profState.err = a.store.DeleteProfile(a.profState.target)
		if a.profState.err == nil && a.profile == a.profState.target {
			a.profState.err = a.switchProfile(model.DefaultProfileName)
		}
	}
}

func (a App) viewProfileForm() string {
	t := theme.Active
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		a.profState.form.View(),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) renderProfilesTab(cw int) string {
	t := theme.Active

	headStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	markStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)
	activeStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)

	var b strings.Builder
	b.WriteString(headStyle.Render(fmt.Sprintf(" %-20s %6s %7s %8s  %-10s",
		"Name", "Daily", "Target", "Entries", "Updated")))
	b.WriteString("\n")

	for i, p := range a.profiles {
		name := p.Name
		if p.Name == a.profile {
			name += " ●"
		}
		line := fmt.Sprintf("%-20s %6d %7d %8s  %-10s",
			name, p.DailyScore, p.Threshold,
			cli.FormatCount(p.EntryCount),
			p.UpdatedAt.Local().Format("2006-01-02"))

		switch {
		case i == a.profState.cursor:
			b.WriteString(markStyle.Render("▸"))
			b.WriteString(selStyle.Render(line))
		case p.Name == a.profile:
			b.WriteString(activeStyle.Render(" " + line))
		default:
			b.WriteString(rowStyle.Render(" " + line))
		}
		b.WriteString("\n")
	}

	if a.profState.err != nil {
		b.WriteString("\n")
		b.WriteString(warnStyle.Render(a.profState.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("[Enter] switch  [n] new  [r] rename  [d] delete"))

	return components.ContentCard("Profiles", b.String(), cw)
}
