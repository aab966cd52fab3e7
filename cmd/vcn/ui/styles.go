// Package ui provides the visual styling and tab renderers for the VCN
// console. Renderers are pure: they take the content store and a view-state
// snapshot and return a string.
package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color palette based on the VCN brand (indigo on near-white).
var (
	// Light Mode Colors (Default)
	LightBackground = lipgloss.Color("#fcfdfe")
	LightForeground = lipgloss.Color("#0f172a") // slate-900
	LightPrimary    = lipgloss.Color("#4f46e5") // indigo-600
	LightAccent     = lipgloss.Color("#10b981") // emerald-500
	LightSecondary  = lipgloss.Color("#f1f5f9") // slate-100
	LightMuted      = lipgloss.Color("#94a3b8") // slate-400
	LightBorder     = lipgloss.Color("#e2e8f0") // slate-200
	LightCard       = lipgloss.Color("#ffffff")

	// Dark Mode Colors
	DarkBackground = lipgloss.Color("#0b1020")
	DarkForeground = lipgloss.Color("#e2e8f0")
	DarkPrimary    = lipgloss.Color("#818cf8") // indigo-400
	DarkAccent     = lipgloss.Color("#34d399") // emerald-400
	DarkSecondary  = lipgloss.Color("#1e293b")
	DarkMuted      = lipgloss.Color("#64748b")
	DarkBorder     = lipgloss.Color("#334155")
	DarkCard       = lipgloss.Color("#111827")

	// Semantic Colors (same in both modes)
	Destructive = lipgloss.Color("#e11d48") // rose-600
	Success     = lipgloss.Color("#10b981")
	Warning     = lipgloss.Color("#f59e0b")
	Info        = lipgloss.Color("#3b82f6")
)

// ThemeKind is the accent family of a card or badge.
type ThemeKind int

const (
	ThemeIndigo ThemeKind = iota
	ThemeEmerald
	ThemePurple
	ThemeAmber
)

var themeColors = map[ThemeKind]lipgloss.Color{
	ThemeIndigo:  lipgloss.Color("#4f46e5"),
	ThemeEmerald: lipgloss.Color("#059669"),
	ThemePurple:  lipgloss.Color("#9333ea"),
	ThemeAmber:   lipgloss.Color("#d97706"),
}

var themeNames = map[ThemeKind]string{
	ThemeIndigo:  "indigo",
	ThemeEmerald: "emerald",
	ThemePurple:  "purple",
	ThemeAmber:   "amber",
}

// ThemeKinds lists every accent family.
func ThemeKinds() []ThemeKind {
	return []ThemeKind{ThemeIndigo, ThemeEmerald, ThemePurple, ThemeAmber}
}

// Color resolves the accent color.
func (k ThemeKind) Color() lipgloss.Color { return themeColors[k] }

func (k ThemeKind) String() string { return themeNames[k] }

// Theme holds the current color scheme
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Card       lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Background: LightBackground,
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Secondary:  LightSecondary,
		Muted:      LightMuted,
		Border:     LightBorder,
		Card:       LightCard,
		IsDark:     false,
	}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Background: DarkBackground,
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Secondary:  DarkSecondary,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		Card:       DarkCard,
		IsDark:     true,
	}
}

// DetectTheme picks light or dark from the terminal background.
// VCN_DARK_MODE=1 forces dark.
func DetectTheme() Theme {
	if os.Getenv("VCN_DARK_MODE") == "1" {
		return DarkTheme()
	}
	if termenv.HasDarkBackground() {
		return DarkTheme()
	}
	return LightTheme()
}

// ThemeForSetting resolves the ui.theme config value (auto, light, dark).
func ThemeForSetting(setting string) Theme {
	switch strings.ToLower(setting) {
	case "dark":
		return DarkTheme()
	case "light":
		return LightTheme()
	default:
		return DetectTheme()
	}
}

// Styles holds all the styled components
type Styles struct {
	Theme    Theme
	Markdown *Markdown

	// Layout
	Header        lipgloss.Style
	Footer        lipgloss.Style
	Content       lipgloss.Style
	Sidebar       lipgloss.Style
	SidebarGroup  lipgloss.Style
	SidebarItem   lipgloss.Style
	SidebarActive lipgloss.Style

	// Text
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style

	// Status
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Components
	Card        lipgloss.Style
	Selected    lipgloss.Style
	Modal       lipgloss.Style
	Insight     lipgloss.Style
	Spinner     lipgloss.Style
	ProgressBar lipgloss.Style
	Divider     lipgloss.Style
	Badge       lipgloss.Style
	Chip        lipgloss.Style
	ChipActive  lipgloss.Style

	// Chat
	UserBubble  lipgloss.Style
	ModelBubble lipgloss.Style
	ErrorBubble lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme:    theme,
		Markdown: NewMarkdown(theme, 128),

		Header: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(theme.Border).
			Padding(0, 2),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 2),

		Content: lipgloss.NewStyle().
			Padding(1, 2),

		Sidebar: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(theme.Border).
			Padding(1, 1),

		SidebarGroup: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Bold(true).
			MarginTop(1),

		SidebarItem: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		SidebarActive: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(lipgloss.Color("#ffffff")).
			Bold(true).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true).
			MarginBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Bold: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Success: lipgloss.NewStyle().
			Foreground(Success).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(Info),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		Selected: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary).
			Padding(0, 1),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(theme.Primary).
			Padding(1, 2),

		Insight: lipgloss.NewStyle().
			Background(lipgloss.Color("#0f172a")).
			Foreground(lipgloss.Color("#f8fafc")).
			Padding(1, 2),

		Spinner: lipgloss.NewStyle().
			Foreground(theme.Primary),

		ProgressBar: lipgloss.NewStyle().
			Foreground(theme.Primary),

		Divider: lipgloss.NewStyle().
			Foreground(theme.Border),

		Badge: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1).
			Bold(true),

		Chip: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Border(lipgloss.NormalBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		ChipActive: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Border(lipgloss.NormalBorder()).
			BorderForeground(theme.Primary).
			Padding(0, 1),

		UserBubble: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			PaddingLeft(2).
			BorderLeft(true).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(theme.Primary),

		ModelBubble: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			PaddingLeft(2).
			BorderLeft(true).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(theme.Accent),

		ErrorBubble: lipgloss.NewStyle().
			Foreground(Destructive).
			PaddingLeft(2).
			BorderLeft(true).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(Destructive),
	}
}

// DefaultStyles returns styles for the detected theme.
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}

// Logo renders the sidebar brand mark.
func Logo(s Styles) string {
	return s.Bold.Foreground(s.Theme.Primary).Render(Glyph(IconGlobe) + " VCN NETWORK")
}

// RenderDivider returns a horizontal divider
func (s Styles) RenderDivider(width int) string {
	if width < 1 {
		width = 1
	}
	return s.Divider.Render(strings.Repeat("─", width))
}

// Accent returns a bold style in the accent family's color.
func (s Styles) Accent(k ThemeKind) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(k.Color()).Bold(true)
}
