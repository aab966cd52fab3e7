package ui

import "vcnnet/internal/viewstate"

// IconKind names every glyph the console draws.
type IconKind int

const (
	IconDashboard IconKind = iota
	IconUsers
	IconFileCheck
	IconBuilding
	IconCompass
	IconShieldCheck
	IconStar
	IconBookOpen
	IconBook
	IconBriefcase
	IconThumbsUp
	IconLayers
	IconActivity
	IconTrendingUp
	IconZap
	IconSparkles
	IconGlobe
	IconMessage
	IconImage
	IconMic
	IconQuote
	IconChevronRight
	IconClock
)

var iconGlyphs = map[IconKind]string{
	IconDashboard:    "▦",
	IconUsers:        "◉",
	IconFileCheck:    "✓",
	IconBuilding:     "▥",
	IconCompass:      "◈",
	IconShieldCheck:  "⛨",
	IconStar:         "★",
	IconBookOpen:     "▤",
	IconBook:         "▣",
	IconBriefcase:    "◧",
	IconThumbsUp:     "▲",
	IconLayers:       "≡",
	IconActivity:     "∿",
	IconTrendingUp:   "↗",
	IconZap:          "ϟ",
	IconSparkles:     "✦",
	IconGlobe:        "◍",
	IconMessage:      "✉",
	IconImage:        "▨",
	IconMic:          "♪",
	IconQuote:        "❝",
	IconChevronRight: "›",
	IconClock:        "◔",
}

// iconNames maps the names stored in content records (e.g. doc category
// icons) to kinds.
var iconNames = map[string]IconKind{
	"LayoutDashboard": IconDashboard,
	"Users":           IconUsers,
	"FileCheck":       IconFileCheck,
	"Building2":       IconBuilding,
	"Compass":         IconCompass,
	"ShieldCheck":     IconShieldCheck,
	"Star":            IconStar,
	"BookOpen":        IconBookOpen,
	"Book":            IconBook,
	"Briefcase":       IconBriefcase,
	"ThumbsUp":        IconThumbsUp,
	"Layers":          IconLayers,
	"Activity":        IconActivity,
	"TrendingUp":      IconTrendingUp,
	"Zap":             IconZap,
	"Sparkles":        IconSparkles,
	"Globe":           IconGlobe,
}

var tabIcons = map[viewstate.Tab]IconKind{
	viewstate.TabDashboard:   IconDashboard,
	viewstate.TabMarketplace: IconBriefcase,
	viewstate.TabProfiles:    IconUsers,
	viewstate.TabLedger:      IconFileCheck,
	viewstate.TabClients:     IconBuilding,
	viewstate.TabRoadmap:     IconCompass,
	viewstate.TabGovernance:  IconShieldCheck,
	viewstate.TabAdvisors:    IconStar,
	viewstate.TabDocs:        IconBookOpen,
	viewstate.TabAssistant:   IconMessage,
	viewstate.TabStudio:      IconImage,
	viewstate.TabVoice:       IconMic,
}

// Glyph returns the terminal glyph for k.
func Glyph(k IconKind) string {
	if g, ok := iconGlyphs[k]; ok {
		return g
	}
	return "•"
}

// IconByName resolves a stored icon name.
func IconByName(name string) (IconKind, bool) {
	k, ok := iconNames[name]
	return k, ok
}

// TabIcon is the sidebar icon for t.
func TabIcon(t viewstate.Tab) IconKind {
	if k, ok := tabIcons[t]; ok {
		return k
	}
	return IconLayers
}
