package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/theirongolddev/alphawin/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak <= 0 {
		peak = 1
	}

	style := lipgloss.NewStyle().Foreground(color).Background(t.Surface)

	var buf strings.Builder
	buf.Grow(len(values) * 4)
	for _, v := range values {
		if v < 0 {
			v = 0
		}
		idx := int(v / peak * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		buf.WriteRune(blocks[idx])
	}

	return style.Render(buf.String())
}

// WindowChart renders a bar chart of window sums with a threshold line.
// Bars at or above threshold render green; a dotted rule marks the
// threshold level. labels are x-axis labels, one per value.
func WindowChart(values []int, labels []string, threshold, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	if height < 3 {
		height = 3
	}

	maxVal := threshold
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal <= 0 {
		maxVal = 1
	}
	// Headroom above the tallest bar so the threshold rule never sits on
	// the chart's top edge.
	ceiling := float64(maxVal) * 1.1

	yLabelW := len(fmt.Sprintf("%d", maxVal)) + 1
	if yLabelW < 4 {
		yLabelW = 4
	}

	chartW := width - yLabelW - 1
	if chartW < 5 {
		chartW = 5
	}

	n := len(values)
	gap := 1
	barW := (chartW - (n - 1)) / n
	if barW < 1 {
		barW = 1
		gap = 0
	}
	if barW > 4 {
		barW = 4
	}
	axisLen := n*barW + (n-1)*gap
	if axisLen < 1 {
		axisLen = 1
	}

	threshRow := 0
	if threshold > 0 && float64(threshold) < ceiling {
		threshRow = int(math.Round(float64(threshold) / ceiling * float64(height)))
	}

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	ruleStyle := lipgloss.NewStyle().Foreground(t.Yellow).Background(t.Surface)
	goodStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	barStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	fillStyle := lipgloss.NewStyle().Background(t.Surface)

	blocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	var b strings.Builder
	for row := height; row >= 1; row-- {
		rowTop := ceiling * float64(row) / float64(height)
		rowBottom := ceiling * float64(row-1) / float64(height)

		label := ""
		if row == threshRow {
			label = fmt.Sprintf("%d", threshold)
			b.WriteString(ruleStyle.Render(fmt.Sprintf("%*s", yLabelW, label)))
		} else {
			b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, label)))
		}
		b.WriteString(axisStyle.Render("│"))

		for i, v := range values {
			if i > 0 && gap > 0 {
				if row == threshRow {
					b.WriteString(ruleStyle.Render("┄"))
				} else {
					b.WriteString(fillStyle.Render(" "))
				}
			}
			style := barStyle
			if v >= threshold && threshold > 0 {
				style = goodStyle
			}
			fv := float64(v)
			switch {
			case fv >= rowTop:
				b.WriteString(style.Render(strings.Repeat("█", barW)))
			case fv > rowBottom:
				frac := (fv - rowBottom) / (rowTop - rowBottom)
				idx := int(frac * 8)
				if idx < 1 {
					idx = 1
				}
				if idx > 8 {
					idx = 8
				}
				b.WriteString(style.Render(strings.Repeat(string(blocks[idx]), barW)))
			case row == threshRow:
				b.WriteString(ruleStyle.Render(strings.Repeat("┄", barW)))
			default:
				b.WriteString(fillStyle.Render(strings.Repeat(" ", barW)))
			}
		}
		b.WriteString("\n")
	}

	// X-axis line and labels
	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axisStyle.Render("└"))
	b.WriteString(axisStyle.Render(strings.Repeat("─", axisLen)))

	if len(labels) == n {
		buf := make([]byte, axisLen)
		for i := range buf {
			buf[i] = ' '
		}
		lastEnd := -1
		for i := 0; i < n; i++ {
			lbl := labels[i]
			if lbl == "" {
				continue
			}
			pos := i * (barW + gap)
			end := pos + len(lbl)
			if pos <= lastEnd || end > axisLen {
				continue
			}
			copy(buf[pos:end], lbl)
			lastEnd = end + 1
		}
		b.WriteString("\n")
		b.WriteString(fillStyle.Render(strings.Repeat(" ", yLabelW+1)))
		b.WriteString(axisStyle.Render(strings.TrimRight(string(buf), " ")))
	}

	return b.String()
}
