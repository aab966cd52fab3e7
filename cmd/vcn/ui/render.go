package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"vcnnet/internal/content"
	"vcnnet/internal/viewstate"
)

// TabKeys are the number-row shortcuts, one per tab in sidebar order.
const TabKeys = "1234567890-="

// TabForKey maps a shortcut to its tab.
func TabForKey(key string) (viewstate.Tab, bool) {
	if len(key) != 1 {
		return "", false
	}
	i := strings.Index(TabKeys, key)
	tabs := viewstate.Tabs()
	if i < 0 || i >= len(tabs) {
		return "", false
	}
	return tabs[i], true
}

type sidebarGroup struct {
	title string
	tabs  []viewstate.Tab
}

var sidebarGroups = []sidebarGroup{
	{"ECOSYSTEM", []viewstate.Tab{viewstate.TabDashboard, viewstate.TabMarketplace, viewstate.TabProfiles}},
	{"OPERATIONS", []viewstate.Tab{viewstate.TabLedger, viewstate.TabClients}},
	{"GOVERNANCE", []viewstate.Tab{viewstate.TabRoadmap, viewstate.TabGovernance, viewstate.TabAdvisors}},
	{"INTELLIGENCE", []viewstate.Tab{viewstate.TabAssistant, viewstate.TabStudio, viewstate.TabVoice}},
	{"RESOURCES", []viewstate.Tab{viewstate.TabDocs}},
}

// RenderSidebar draws the grouped navigation with the active tab highlighted.
func RenderSidebar(s Styles, active viewstate.Tab, height int) string {
	lines := []string{Logo(s), s.Muted.Render("Value Creation Network")}
	for _, g := range sidebarGroups {
		lines = append(lines, s.SidebarGroup.Render(g.title))
		for _, t := range g.tabs {
			label := fmt.Sprintf("%s %s %s", string(TabKeys[t.Index()]), Glyph(TabIcon(t)), t.Label())
			if t == active {
				lines = append(lines, s.SidebarActive.Width(SidebarColumns-4).Render(label))
			} else {
				lines = append(lines, s.SidebarItem.Render(label))
			}
		}
	}
	style := s.Sidebar.Width(SidebarColumns - 2)
	if height > 0 {
		style = style.Height(height)
	}
	return style.Render(strings.Join(lines, "\n"))
}

// RenderTabStrip is the compact-mode replacement for the sidebar.
func RenderTabStrip(s Styles, active viewstate.Tab, width int) string {
	var parts []string
	for _, t := range viewstate.Tabs() {
		label := string(TabKeys[t.Index()]) + " " + Glyph(TabIcon(t))
		if t == active {
			parts = append(parts, s.SidebarActive.Render(label+" "+t.Label()))
		} else {
			parts = append(parts, s.SidebarItem.Render(label))
		}
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(strings.Join(parts, ""))
}

// RenderHeader is the top bar: protocol version, operator and sync status.
func RenderHeader(s Styles, width int) string {
	left := s.Badge.Render("VCN_PROTO / v2.4.0")
	right := s.Muted.Render("Network Administrator") + "  " + s.Success.Render("● Global Sync Live")
	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if gap < 1 {
		gap = 1
	}
	return s.Header.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

// RenderTab renders the body of the active tab. Every tab produces
// non-empty output.
func RenderTab(s Styles, store *content.Store, st viewstate.State, width int) string {
	if width < MinContentWidth {
		width = MinContentWidth
	}
	switch st.ActiveTab {
	case viewstate.TabMarketplace:
		return renderMarketplace(s, store, st, width)
	case viewstate.TabProfiles:
		return renderProfiles(s, store, st, width)
	case viewstate.TabLedger:
		return renderLedger(s, store, st, width)
	case viewstate.TabClients:
		return renderClients(s, store, st, width)
	case viewstate.TabRoadmap:
		return renderRoadmap(s, store, st, width)
	case viewstate.TabGovernance:
		return renderGovernance(s, store, st, width)
	case viewstate.TabAdvisors:
		return renderAdvisors(s, store, st, width)
	case viewstate.TabDocs:
		return renderDocs(s, store, st, width)
	case viewstate.TabAssistant:
		return renderAssistant(s, st, width)
	case viewstate.TabStudio:
		return renderStudio(s, st, width)
	case viewstate.TabVoice:
		return renderVoice(s, st, width)
	default:
		return renderDashboard(s, store, st, width)
	}
}

func sectionHeader(s Styles, title, subtitle string) string {
	if subtitle == "" {
		return s.Title.Render(title)
	}
	return lipgloss.JoinVertical(lipgloss.Left, s.Bold.Render(title), s.Subtitle.MarginBottom(1).Render(subtitle))
}

// card wraps body in the card border, highlighted when selected.
func card(s Styles, body string, width int, selected bool) string {
	box := s.Card
	if selected {
		box = s.Selected
	}
	return box.Width(width - 2*PanelBorderWidth).Render(body)
}

func chips(s Styles, labels []string, active string) string {
	var parts []string
	for _, l := range labels {
		if l == active {
			parts = append(parts, s.ChipActive.Render(l))
		} else {
			parts = append(parts, s.Chip.Render(l))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func hint(s Styles, key, action string) string {
	return s.Muted.Render("[" + key + "] " + action)
}

func join(parts ...string) string {
	var out []string
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, "\n\n")
}
