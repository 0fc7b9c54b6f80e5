package tui

import (
	"testing"

	"github.com/theirongolddev/alphawin/internal/tui/components"
)

func TestTabAtXMatchesTabWidths(t *testing.T) {
	for active := 0; active < len(components.Tabs); active++ {
		a := App{activeTab: active}
		pos := 1 // leading space before the first tab

		for i := range components.Tabs {
			w := tabWidthForTest(i, active)
			x := pos + w/2 // midpoint inside this tab
			if got := a.tabAtX(x); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, x, got, i)
			}
			pos += w
			if i < len(components.Tabs)-1 {
				pos++ // separator
			}
		}
	}
}

func TestTabAtXOutsideBarIsMiss(t *testing.T) {
	a := App{}
	if got := a.tabAtX(0); got != -1 {
		t.Fatalf("x=0 -> tab=%d, want -1", got)
	}
	if got := a.tabAtX(10_000); got != -1 {
		t.Fatalf("far right -> tab=%d, want -1", got)
	}
}

func tabWidthForTest(tabIdx, activeIdx int) int {
	names := []string{"Overview", "History", "Forward", "Predict", "Profiles", "Settings"}

	w := len(names[tabIdx])
	if tabIdx != activeIdx {
		w += 2 // bracket pair around the shortcut letter
		if tabIdx >= 4 {
			w++ // Profiles and Settings append their shortcut
		}
	}
	return w
}
