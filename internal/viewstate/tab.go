// Package viewstate owns what the console is currently showing: the active
// tab, the knowledge hub category, the single modal slot and the transient
// flags of in-flight generative requests. All transitions go through Reduce.
package viewstate

import "vcnnet/internal/content"

// Tab identifies a top-level section of the console.
type Tab string

const (
	TabDashboard   Tab = "dashboard"
	TabMarketplace Tab = "marketplace"
	TabProfiles    Tab = "profiles"
	TabLedger      Tab = "actions"
	TabClients     Tab = "clients"
	TabRoadmap     Tab = "roadmap"
	TabGovernance  Tab = "governance"
	TabAdvisors    Tab = "experts"
	TabDocs        Tab = "docs"
	TabAssistant   Tab = "assistant"
	TabStudio      Tab = "studio"
	TabVoice       Tab = "voice"
)

var tabOrder = []Tab{
	TabDashboard,
	TabMarketplace,
	TabProfiles,
	TabLedger,
	TabClients,
	TabRoadmap,
	TabGovernance,
	TabAdvisors,
	TabAssistant,
	TabStudio,
	TabVoice,
	TabDocs,
}

var tabLabels = map[Tab]string{
	TabDashboard:   "Network Hub",
	TabMarketplace: "Marketplace",
	TabProfiles:    "Profiles",
	TabLedger:      "Trust Ledger",
	TabClients:     "Enterprises",
	TabRoadmap:     "Evolution Roadmap",
	TabGovernance:  "Policy Audit",
	TabAdvisors:    "Advisory Board",
	TabDocs:        "Knowledge Hub",
	TabAssistant:   "Network Assistant",
	TabStudio:      "Media Studio",
	TabVoice:       "Live Voice",
}

// Tabs returns every tab in sidebar order.
func Tabs() []Tab {
	return append([]Tab(nil), tabOrder...)
}

// Valid reports whether t is one of the fixed tabs.
func (t Tab) Valid() bool {
	_, ok := tabLabels[t]
	return ok
}

// Label is the sidebar caption.
func (t Tab) Label() string {
	if l, ok := tabLabels[t]; ok {
		return l
	}
	return string(t)
}

// Index is the sidebar position, or -1.
func (t Tab) Index() int {
	for i, x := range tabOrder {
		if x == t {
			return i
		}
	}
	return -1
}

// ParseTab accepts a tab id or a few friendlier aliases.
func ParseTab(s string) (Tab, bool) {
	switch s {
	case "ledger", "trust":
		return TabLedger, true
	case "advisors", "board":
		return TabAdvisors, true
	case "chat":
		return TabAssistant, true
	case "media":
		return TabStudio, true
	case "live":
		return TabVoice, true
	}
	t := Tab(s)
	return t, t.Valid()
}

// DashboardTargets are the tabs the four dashboard stat cards open, in
// card order: verified nodes, network CSAT, ledger volume, protocol status.
func DashboardTargets() []Tab {
	return []Tab{TabProfiles, TabClients, TabLedger, TabDocs}
}

// DocCategories is the fixed set of knowledge hub categories, in display order.
func DocCategories() []string {
	return []string{content.DocConcepts, content.DocArchitecture, content.DocProtocols, content.DocGlossary}
}

func validDocCategory(id string) bool {
	for _, c := range DocCategories() {
		if c == id {
			return true
		}
	}
	return false
}
