package components

import (
	"fmt"
	"time"

	"github.com/theirongolddev/alphawin/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: keybinding hints on the
// left, profile and save state on the right.
func RenderStatusBar(width int, profile string, dirty bool, savedAt time.Time) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [?]help  [q]uit"

	saveState := ""
	switch {
	case dirty:
		saveState = "unsaved edits"
	case !savedAt.IsZero():
		saveState = fmt.Sprintf("saved %s", savedAt.Format("15:04:05"))
	}
	right := profile
	if saveState != "" {
		right = fmt.Sprintf("%s │ %s", saveState, profile)
	}
	right += " "

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
