// Package ui layout constants for consistent spacing and dimensions
package ui

// Layout constants for the sidebar + content shell
const (
	SidebarColumns = 30

	// Viewport padding and margins
	ViewportHorizontalPadding = 4
	ViewportVerticalPadding   = 6

	// Panel borders and spacing
	PanelBorderWidth = 1
	PanelPaddingH    = 1
	CardGap          = 1

	// Control areas
	HeaderHeight = 2
	FooterHeight = 1
	InputHeight  = 3

	// Responsive breakpoints
	MinimumTerminalWidth  = 80
	MinimumTerminalHeight = 24
	CompactModeWidth      = 110
	FullFeaturesWidth     = 140

	// Content widths
	MinContentWidth = 40
	ModalMaxWidth   = 90
	ChartHeight     = 8
)

// LayoutConfig provides computed layout dimensions based on terminal size
type LayoutConfig struct {
	TerminalWidth  int
	TerminalHeight int
	IsCompact      bool
	IsFullWidth    bool
}

// NewLayoutConfig creates a layout configuration for the given terminal size
func NewLayoutConfig(width, height int) LayoutConfig {
	return LayoutConfig{
		TerminalWidth:  width,
		TerminalHeight: height,
		IsCompact:      width < CompactModeWidth,
		IsFullWidth:    width >= FullFeaturesWidth,
	}
}

// SidebarWidth is zero in compact mode, where the sidebar collapses to a tab strip.
func (l LayoutConfig) SidebarWidth() int {
	if l.IsCompact {
		return 0
	}
	return SidebarColumns
}

// ContentWidth returns the usable width for the active tab.
func (l LayoutConfig) ContentWidth() int {
	w := l.TerminalWidth - l.SidebarWidth() - ViewportHorizontalPadding
	if w < MinContentWidth {
		return MinContentWidth
	}
	return w
}

// ContentHeight returns the usable height for the active tab.
func (l LayoutConfig) ContentHeight() int {
	h := l.TerminalHeight - HeaderHeight - FooterHeight - ViewportVerticalPadding
	if h < 1 {
		return 1
	}
	return h
}

// CardColumns is how many stat cards fit side by side.
func (l LayoutConfig) CardColumns() int {
	switch {
	case l.IsFullWidth:
		return 4
	case l.IsCompact:
		return 1
	default:
		return 2
	}
}

// ModalWidth bounds the overlay to the terminal.
func (l LayoutConfig) ModalWidth() int {
	w := l.TerminalWidth - 2*ViewportHorizontalPadding
	if w > ModalMaxWidth {
		w = ModalMaxWidth
	}
	if w < MinContentWidth {
		w = MinContentWidth
	}
	return w
}

// PanelContentWidth returns the content width inside a bordered panel
func PanelContentWidth(panelWidth int) int {
	return panelWidth - (PanelBorderWidth * 2) - (PanelPaddingH * 2)
}
