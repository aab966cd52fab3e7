package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vcnnet/internal/content"
	"vcnnet/internal/viewstate"
)

func testStyles() Styles {
	return NewStyles(LightTheme())
}

// plain drops styling so assertions see the text a reader sees.
func plain(s string) string {
	return ansi.Strip(s)
}

func TestEveryTabRendersContent(t *testing.T) {
	s := testStyles()
	store := content.NewStore()

	for _, tab := range viewstate.Tabs() {
		t.Run(string(tab), func(t *testing.T) {
			view := RenderTab(s, store, viewstate.Initial(tab), 100)
			assert.NotEmpty(t, strings.TrimSpace(view))
		})
	}
}

func TestRenderTabNarrowWidth(t *testing.T) {
	s := testStyles()
	store := content.NewStore()
	for _, tab := range viewstate.Tabs() {
		assert.NotEmpty(t, RenderTab(s, store, viewstate.Initial(tab), 10), tab)
	}
}

func TestDashboardShowsMetricsAndInsight(t *testing.T) {
	s := testStyles()
	store := content.NewStore()
	st := viewstate.Initial(viewstate.TabDashboard)

	view := plain(RenderTab(s, store, st, 160))
	assert.Contains(t, view, "VERIFIED NODES")
	assert.Contains(t, view, "Collaboration Velocity")
	assert.Contains(t, view, ProtocolWeighting)
	assert.Contains(t, view, "Run Strategic Audit Analysis")

	st = viewstate.Reduce(st, viewstate.AnalysisStarted{})
	view = plain(RenderTab(s, store, st, 160))
	assert.Contains(t, view, "Processing Architecture Data...")
	assert.NotContains(t, view, "Run Strategic Audit Analysis")
}

func TestLedgerReflectsToggle(t *testing.T) {
	s := testStyles()
	store := content.NewStore()
	st := viewstate.Initial(viewstate.TabLedger)

	before := strings.Count(RenderTab(s, store, st, 140), "Verified Sync")

	var target content.Artifact
	for _, a := range store.Artifacts() {
		if !a.Verified {
			target = a
			break
		}
	}
	require.NotEmpty(t, target.ID, "seed data needs an unverified artifact")
	require.True(t, store.ToggleVerified(target.ID))

	after := strings.Count(RenderTab(s, store, st, 140), "Verified Sync")
	assert.Equal(t, before+1, after)
}

func TestDocsShowOnlyActiveCategory(t *testing.T) {
	s := testStyles()
	store := content.NewStore()
	st := viewstate.Reduce(viewstate.Initial(viewstate.TabDocs), viewstate.SelectDocCategory{ID: content.DocConcepts})

	view := plain(RenderTab(s, store, st, 120))
	for _, d := range store.DocSections() {
		if d.Category == content.DocConcepts {
			assert.Contains(t, view, d.Title)
		} else {
			assert.NotContains(t, view, d.Title)
		}
	}
	assert.Contains(t, view, "Core Concepts")
}

func TestAssistantTranscript(t *testing.T) {
	s := testStyles()
	st := viewstate.Initial(viewstate.TabAssistant)

	view := RenderTab(s, content.NewStore(), st, 100)
	assert.Contains(t, view, ChatPlaceholder[:20])

	st = viewstate.Reduce(st, viewstate.ChatSent{RequestID: "r1", Text: "who leads"})
	view = RenderTab(s, content.NewStore(), st, 100)
	assert.Contains(t, view, "who leads")
	assert.Contains(t, view, "Consulting the network...")

	st = viewstate.Reduce(st, viewstate.ChatFailed{RequestID: "r1", Err: "boom"})
	view = RenderTab(s, content.NewStore(), st, 100)
	assert.Contains(t, view, "could not be reached")
	assert.NotContains(t, view, "Consulting the network...")
}

func TestStudioStates(t *testing.T) {
	s := testStyles()
	store := content.NewStore()
	st := viewstate.Initial(viewstate.TabStudio)

	st = viewstate.Reduce(st, viewstate.GenerationStarted{})
	assert.Contains(t, RenderTab(s, store, st, 100), "Rendering image...")

	st = viewstate.Reduce(st, viewstate.GenerationFailed{Alert: "Generation failed: quota"})
	assert.Contains(t, RenderTab(s, store, st, 100), "Generation failed: quota")

	st = viewstate.Reduce(st, viewstate.GenerationStarted{})
	st = viewstate.Reduce(st, viewstate.GenerationFinished{Media: viewstate.Media{
		Kind: viewstate.MediaImage, Path: "/tmp/a.png", MIMEType: "image/png", Size: 2048, Prompt: "skyline",
	}})
	view := RenderTab(s, store, st, 100)
	assert.Contains(t, view, "IMAGE ready")
	assert.Contains(t, view, "2,048 bytes")
}

func TestVoiceIndicator(t *testing.T) {
	s := testStyles()
	st := viewstate.Initial(viewstate.TabVoice)
	assert.Contains(t, RenderTab(s, content.NewStore(), st, 100), "Idle")

	st = viewstate.Reduce(st, viewstate.VoiceStarted{})
	view := RenderTab(s, content.NewStore(), st, 100)
	assert.Contains(t, view, "Live")
	assert.Contains(t, view, "End live session")
}

func TestRenderModalKinds(t *testing.T) {
	s := testStyles()
	store := content.NewStore()

	modals := []viewstate.Modal{
		viewstate.PortfolioModal(store.Users()[0]),
		viewstate.ClientModal(store.Clients()[0]),
		viewstate.AdvisorModal(store.Advisors()[0]),
		viewstate.PolicyModal(store.Policies()[0]),
		viewstate.OpportunityModal(store.Opportunities()[0]),
		viewstate.MilestoneModal(store.Milestones()[0]),
		viewstate.NoticeModal("Heads up", "Body text"),
	}
	for _, m := range modals {
		t.Run(string(m.Kind), func(t *testing.T) {
			view := RenderModal(s, store, m, 80, "")
			assert.NotContains(t, view, RecordNotFound)
			assert.Contains(t, view, "[esc] close")
		})
	}

	stale := viewstate.Modal{Kind: viewstate.ModalClientDetail, Title: "gone", Subject: "missing"}
	assert.Contains(t, RenderModal(s, store, stale, 80, ""), RecordNotFound)
	assert.Contains(t, RenderModal(s, store, viewstate.NoticeModal("t", "x"), 80, "KEY INPUT"), "KEY INPUT")
}

func TestTabForKey(t *testing.T) {
	tabs := viewstate.Tabs()
	require.Len(t, tabs, len(TabKeys))

	for i, r := range TabKeys {
		tab, ok := TabForKey(string(r))
		require.True(t, ok)
		assert.Equal(t, tabs[i], tab)
	}
	_, ok := TabForKey("x")
	assert.False(t, ok)
	_, ok = TabForKey("12")
	assert.False(t, ok)
}

func TestSidebarHighlightsActive(t *testing.T) {
	s := testStyles()
	view := RenderSidebar(s, viewstate.TabClients, 0)
	for _, tab := range viewstate.Tabs() {
		assert.Contains(t, view, tab.Label())
	}
	assert.Contains(t, RenderTabStrip(s, viewstate.TabClients, 200), viewstate.TabClients.Label())
}

func TestHeaderFitsWidth(t *testing.T) {
	view := RenderHeader(testStyles(), 120)
	assert.Contains(t, view, "VCN_PROTO / v2.4.0")
	assert.Contains(t, view, "Global Sync Live")
	assert.LessOrEqual(t, lipgloss.Width(view), 120)
}
