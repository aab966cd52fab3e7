package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"vcnnet/internal/content"
)

var barLevels = []string{" ", "▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"}

// RenderTrendChart draws the collaboration velocity series as vertical
// bars, height rows tall, with the day labels underneath.
func RenderTrendChart(s Styles, points []content.TrendPoint, height, width int) string {
	if len(points) == 0 {
		return s.Muted.Render("No velocity data.")
	}
	if height < 2 {
		height = 2
	}

	max := 0
	for _, p := range points {
		if p.Count > max {
			max = p.Count
		}
	}
	if max == 0 {
		max = 1
	}

	colWidth := width / len(points)
	if colWidth < 4 {
		colWidth = 4
	}
	if colWidth > 10 {
		colWidth = 10
	}
	barWidth := colWidth - 2

	// Each row is worth 8 sub-levels.
	units := make([]int, len(points))
	for i, p := range points {
		units[i] = p.Count * height * 8 / max
	}

	bar := s.ProgressBar
	var rows []string
	for row := height - 1; row >= 0; row-- {
		var line strings.Builder
		for _, u := range units {
			fill := u - row*8
			switch {
			case fill >= 8:
				fill = 8
			case fill < 0:
				fill = 0
			}
			cell := strings.Repeat(barLevels[fill], barWidth)
			line.WriteString(" " + bar.Render(cell) + " ")
		}
		rows = append(rows, line.String())
	}

	var labels, values strings.Builder
	cell := lipgloss.NewStyle().Width(colWidth).Align(lipgloss.Center)
	for _, p := range points {
		labels.WriteString(cell.Render(p.Day))
		values.WriteString(cell.Render(fmt.Sprintf("%d", p.Count)))
	}
	rows = append(rows, s.Bold.Render(values.String()), s.Muted.Render(labels.String()))
	return strings.Join(rows, "\n")
}

// RenderProgress draws a fixed-width progress bar for a 0-100 value.
func RenderProgress(s Styles, percent, width int) string {
	if width < 3 {
		width = 3
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * width / 100
	return s.ProgressBar.Render(strings.Repeat("█", filled)) +
		s.Divider.Render(strings.Repeat("░", width-filled)) +
		s.Muted.Render(fmt.Sprintf(" %3d%%", percent))
}
