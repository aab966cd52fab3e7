package dashboard

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the dashboard key bindings. Single-letter bindings only
// apply while no text input has focus.
type KeyMap struct {
	NextTab key.Binding
	PrevTab key.Binding
	Up      key.Binding
	Down    key.Binding
	PageUp  key.Binding
	PageDn  key.Binding

	Open   key.Binding // enter: open detail, submit input, toggle voice
	Close  key.Binding // esc: close modal or release input focus
	Focus  key.Binding
	Toggle key.Binding // space: ledger verification

	Audit       key.Binding
	Copy        key.Binding
	PrevDocCat  key.Binding
	NextDocCat  key.Binding
	ToolSearch  key.Binding
	ToolMaps    key.Binding
	ToolThink   key.Binding
	StudioMode  key.Binding
	StudioSize  key.Binding
	StudioRatio key.Binding
	StudioSrc   key.Binding

	Help key.Binding
	Quit key.Binding
	Kill key.Binding
}

// DefaultKeyMap is the built-in binding set.
var DefaultKeyMap = KeyMap{
	NextTab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next tab"),
	),
	PrevTab: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("S-tab", "prev tab"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "scroll up"),
	),
	PageDn: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "scroll down"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	Focus: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "type"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "toggle sync"),
	),
	Audit: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "audit"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy insight"),
	),
	PrevDocCat: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "prev category"),
	),
	NextDocCat: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "next category"),
	),
	ToolSearch: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("C-s", "web search"),
	),
	ToolMaps: key.NewBinding(
		key.WithKeys("ctrl+g"),
		key.WithHelp("C-g", "maps"),
	),
	ToolThink: key.NewBinding(
		key.WithKeys("ctrl+t"),
		key.WithHelp("C-t", "deep thinking"),
	),
	StudioMode: key.NewBinding(
		key.WithKeys("ctrl+o"),
		key.WithHelp("C-o", "studio mode"),
	),
	StudioSize: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("C-y", "image size"),
	),
	StudioRatio: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("C-r", "aspect ratio"),
	),
	StudioSrc: key.NewBinding(
		key.WithKeys("ctrl+f"),
		key.WithHelp("C-f", "source image"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	Kill: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("C-c", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Up, k.Down, k.Open, k.Close, k.Audit, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab, k.Up, k.Down, k.PageUp, k.PageDn},
		{k.Open, k.Close, k.Focus, k.Toggle, k.Audit, k.Copy},
		{k.PrevDocCat, k.NextDocCat, k.ToolSearch, k.ToolMaps, k.ToolThink},
		{k.StudioMode, k.StudioSize, k.StudioRatio, k.StudioSrc, k.Help, k.Quit},
	}
}
