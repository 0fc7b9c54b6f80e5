package components

import (
	"strings"
	"testing"

	"github.com/theirongolddev/alphawin/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	for _, tc := range []struct{ total, n int }{
		{120, 4}, {121, 4}, {80, 3}, {7, 2},
	} {
		widths := LayoutRow(tc.total, tc.n)
		if len(widths) != tc.n {
			t.Fatalf("LayoutRow(%d, %d) returned %d widths", tc.total, tc.n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tc.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d", tc.total, tc.n, sum)
		}
	}
}

func TestCardRowHeightMatchesTallest(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	shortLines := len(strings.Split(shortCard, "\n"))
	tallLines := len(strings.Split(tallCard, "\n"))
	if shortLines >= tallLines {
		t.Fatal("test setup error: short card should be shorter than tall card")
	}

	joined := CardRow([]string{tallCard, shortCard})
	lines := strings.Split(joined, "\n")
	if len(lines) != tallLines {
		t.Errorf("joined height should match tallest card: got %d, want %d", len(lines), tallLines)
	}
}

func TestSparklineOneCellPerValue(t *testing.T) {
	theme.SetActive("flexoki-dark")

	values := []float64{0, 10, 25, 50, 100}
	got := Sparkline(values, theme.Active.Accent)
	if w := lipgloss.Width(got); w != len(values) {
		t.Errorf("sparkline width = %d, want %d", w, len(values))
	}
}

func TestWindowChartMarksThreshold(t *testing.T) {
	theme.SetActive("flexoki-dark")

	values := []int{150, 180, 210, 240, 255}
	labels := []string{"1", "", "3", "", "5"}
	got := WindowChart(values, labels, 200, 40, 8)

	if got == "" {
		t.Fatal("empty chart")
	}
	if !strings.Contains(got, "200") {
		t.Error("chart should label the threshold level")
	}
	if !strings.Contains(got, "└") {
		t.Error("chart should draw the x axis")
	}
}
