package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"vcnnet/internal/content"
	"vcnnet/internal/viewstate"
)

// StatCard is one of the dashboard KPI tiles.
type StatCard struct {
	Label    string
	Value    string
	SubValue string
	Icon     IconKind
	Trend    string
	Kind     ThemeKind
	Target   viewstate.Tab
}

// StatCards builds the dashboard tiles from the static metrics snapshot.
// Card order matches viewstate.DashboardTargets.
func StatCards(m content.KPIMetrics) []StatCard {
	targets := viewstate.DashboardTargets()
	return []StatCard{
		{
			Label:    "Verified Nodes",
			Value:    formatThousands(m.VerifiedContributors),
			SubValue: "Nodes Live",
			Icon:     IconUsers,
			Trend:    "+342",
			Kind:     ThemeIndigo,
			Target:   targets[0],
		},
		{
			Label:    "Network CSAT",
			Value:    "4.9/5",
			SubValue: "Sentiment",
			Icon:     IconThumbsUp,
			Trend:    "+0.2",
			Kind:     ThemeEmerald,
			Target:   targets[1],
		},
		{
			Label:    "Ledger Volume",
			Value:    formatThousands(m.TotalArtifacts),
			SubValue: "Artifacts",
			Icon:     IconLayers,
			Trend:    "+1.2k",
			Kind:     ThemePurple,
			Target:   targets[2],
		},
		{
			Label:    "Protocol Status",
			Value:    "v2.4",
			SubValue: "Active Standard",
			Icon:     IconActivity,
			Trend:    "99.9%",
			Kind:     ThemeAmber,
			Target:   targets[3],
		},
	}
}

// RenderStatCard draws a single tile. Selected tiles get the primary border.
func RenderStatCard(s Styles, c StatCard, width int, selected bool) string {
	accent := s.Accent(c.Kind)
	top := accent.Render(Glyph(c.Icon)) + " " + s.Muted.Render(strings.ToUpper(c.Label))
	value := s.Bold.Render(c.Value) + " " + s.Muted.Render(c.SubValue)
	trend := accent.Render(Glyph(IconTrendingUp) + " " + c.Trend)

	box := s.Card
	if selected {
		box = s.Selected
	}
	return box.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, top, value, trend))
}

// RenderStatCards lays the tiles out in rows of columns.
func RenderStatCards(s Styles, cards []StatCard, columns, width, selected int) string {
	if columns < 1 {
		columns = 1
	}
	cardWidth := width/columns - 2*PanelBorderWidth - CardGap
	if cardWidth < 18 {
		cardWidth = 18
	}

	var rows []string
	for start := 0; start < len(cards); start += columns {
		end := start + columns
		if end > len(cards) {
			end = len(cards)
		}
		var row []string
		for i := start; i < end; i++ {
			row = append(row, RenderStatCard(s, cards[i], cardWidth, i == selected))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// formatThousands renders n with comma separators.
func formatThousands(n int) string {
	neg := n < 0
	if neg {
		n = -n
	}
	digits := strconv.Itoa(n)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
