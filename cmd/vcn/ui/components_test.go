package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vcnnet/internal/content"
	"vcnnet/internal/viewstate"
)

func TestStatCardsFollowDashboardTargets(t *testing.T) {
	cards := StatCards(content.KPIMetrics{VerifiedContributors: 12482, TotalArtifacts: 45201})
	targets := viewstate.DashboardTargets()
	require.Len(t, cards, len(targets))

	for i, c := range cards {
		assert.Equal(t, targets[i], c.Target, c.Label)
	}
	assert.Equal(t, "12,482", cards[0].Value)
	assert.Equal(t, "45,201", cards[2].Value)
	assert.Equal(t, ThemeAmber, cards[3].Kind)
}

func TestFormatThousands(t *testing.T) {
	tests := map[int]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		1234567:  "1,234,567",
		-4500:    "-4,500",
		12482:    "12,482",
		100000:   "100,000",
		99999999: "99,999,999",
	}
	for in, want := range tests {
		assert.Equal(t, want, formatThousands(in), in)
	}
}

func TestLayoutBreakpoints(t *testing.T) {
	compact := NewLayoutConfig(90, 40)
	assert.True(t, compact.IsCompact)
	assert.Zero(t, compact.SidebarWidth())
	assert.Equal(t, 1, compact.CardColumns())

	wide := NewLayoutConfig(180, 50)
	assert.False(t, wide.IsCompact)
	assert.Equal(t, SidebarColumns, wide.SidebarWidth())
	assert.Equal(t, 4, wide.CardColumns())
	assert.Equal(t, ModalMaxWidth, wide.ModalWidth())

	tiny := NewLayoutConfig(20, 5)
	assert.Equal(t, MinContentWidth, tiny.ContentWidth())
	assert.Equal(t, 1, tiny.ContentHeight())
}

func TestSimpleTable(t *testing.T) {
	table := NewSimpleTable("Test Table", []string{"Col1", "Col2"})
	assert.Empty(t, table.View(testStyles()))

	table.AddRow("Row1Col1", "Row1Col2")
	table.Selected = 0
	view := table.View(testStyles())

	assert.Contains(t, view, "Test Table")
	assert.Contains(t, view, "Row1Col1")
}

func TestTrendChart(t *testing.T) {
	s := testStyles()
	assert.Equal(t, "No velocity data.", RenderTrendChart(s, nil, 4, 60))

	points := []content.TrendPoint{{Day: "Mon", Count: 10}, {Day: "Tue", Count: 40}}
	view := RenderTrendChart(s, points, 4, 60)
	assert.Contains(t, view, "Mon")
	assert.Contains(t, view, "40")
	assert.Equal(t, 4+2, len(strings.Split(view, "\n")))
}

func TestRenderProgressClamps(t *testing.T) {
	s := testStyles()
	assert.Contains(t, RenderProgress(s, 150, 10), "100%")
	assert.Contains(t, RenderProgress(s, -5, 10), "0%")
	assert.Equal(t, 10, strings.Count(RenderProgress(s, 100, 10), "█"))
}

func TestMarkdownCache(t *testing.T) {
	md := NewMarkdown(LightTheme(), 2)

	first := md.Render("# Title\n\nbody", 60)
	assert.Contains(t, first, "Title")
	assert.Equal(t, first, md.Render("# Title\n\nbody", 60))
	assert.Equal(t, 1, md.Len())

	md.Render("other", 60)
	md.Render("third", 60)
	assert.Equal(t, 2, md.Len())
}

func TestIcons(t *testing.T) {
	k, ok := IconByName("Sparkles")
	require.True(t, ok)
	assert.Equal(t, IconSparkles, k)
	assert.NotEmpty(t, Glyph(k))

	_, ok = IconByName("Nope")
	assert.False(t, ok)

	for _, tab := range viewstate.Tabs() {
		assert.NotEmpty(t, Glyph(TabIcon(tab)), tab)
	}
}

func TestThemeForSetting(t *testing.T) {
	assert.False(t, ThemeForSetting("light").IsDark)
	assert.True(t, ThemeForSetting("dark").IsDark)
}
