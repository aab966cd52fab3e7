// Package dashboard is the interactive VCN console: a bubbletea program that
// projects the content store and view state through the ui renderers and
// runs gateway requests as background commands.
package dashboard

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vcnnet/cmd/vcn/ui"
	"vcnnet/internal/config"
	"vcnnet/internal/content"
	"vcnnet/internal/gateway"
	"vcnnet/internal/viewstate"
)

// clipboardWriteAll is swapped out in tests.
var clipboardWriteAll = clipboard.WriteAll

// Option configures a Model.
type Option func(*Model)

// WithAudio replaces the microphone/speaker factory used by live sessions.
func WithAudio(f AudioFactory) Option { return func(m *Model) { m.rt.audio = f } }

// WithConfigPath enables hot reload of the given config file.
func WithConfigPath(path string) Option { return func(m *Model) { m.configPath = path } }

// WithStyles overrides the theme-derived styles.
func WithStyles(s ui.Styles) Option { return func(m *Model) { m.styles = s } }

// Model is the bubbletea model for the console.
type Model struct {
	cfg   *config.Config
	store *content.Store
	ctrl  *viewstate.Controller
	gw    *gateway.Gateway

	styles ui.Styles
	keys   KeyMap
	help   help.Model

	viewport   viewport.Model
	chatInput  textinput.Model
	studioIn   textinput.Model
	sourceIn   textinput.Model
	keyInput   textinput.Model
	spinner    spinner.Model
	configPath string

	width    int
	height   int
	ready    bool
	notice   string
	quitting bool

	rt *runtime
}

// New builds the console over store. It installs itself as gw's key
// selector so media requests without a key raise the key modal.
func New(cfg *config.Config, store *content.Store, gw *gateway.Gateway, opts ...Option) Model {
	start, ok := viewstate.ParseTab(cfg.UI.StartTab)
	if !ok {
		start = viewstate.TabDashboard
	}

	m := Model{
		cfg:    cfg,
		store:  store,
		ctrl:   viewstate.NewController(store, start),
		gw:     gw,
		styles: ui.NewStyles(ui.ThemeForSetting(cfg.UI.Theme)),
		keys:   DefaultKeyMap,
		help:   help.New(),
		rt:     newRuntime(CommandAudio),
	}

	m.chatInput = newInput("Ask the network...", 2000)
	m.studioIn = newInput("Describe the image or video...", 1000)
	m.sourceIn = newInput("Path to a source image", 512)
	m.keyInput = newInput("Paste a Gemini API key", 256)
	m.keyInput.EchoMode = textinput.EchoPassword
	m.keyInput.EchoCharacter = '•'

	m.spinner = spinner.New()
	m.spinner.Spinner = spinner.Dot

	for _, opt := range opts {
		opt(&m)
	}
	m.spinner.Style = m.styles.Spinner

	if gw != nil {
		gw.SetKeySelector(m.rt)
	}
	m.syncFocus()
	return m
}

func newInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Prompt = "› "
	return in
}

// Controller exposes the view-state controller.
func (m Model) Controller() *viewstate.Controller { return m.ctrl }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, m.rt.waitForEvent(), textinput.Blink}
	if m.configPath != "" {
		cmds = append(cmds, m.watchConfig())
	}
	return tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return m.styles.Muted.Render("Syncing network state...")
	}

	st := m.ctrl.State()
	layout := ui.NewLayoutConfig(m.width, m.height)

	if st.Modal != nil {
		extra := ""
		if st.Modal.Kind == viewstate.ModalKeySelection {
			extra = m.keyInput.View()
		}
		modal := ui.RenderModal(m.styles, m.store, *st.Modal, layout.ModalWidth(), extra)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
	}

	header := ui.RenderHeader(m.styles, m.width)
	body := m.viewport.View()
	if input := m.inputView(st); input != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body, input)
	}

	var main string
	if layout.IsCompact {
		main = lipgloss.JoinVertical(lipgloss.Left, ui.RenderTabStrip(m.styles, st.ActiveTab, m.width), body)
	} else {
		sidebar := ui.RenderSidebar(m.styles, st.ActiveTab, m.height-ui.HeaderHeight-ui.FooterHeight)
		main = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, m.styles.Content.Render(body))
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, main, m.footerView(st))
}

func (m Model) inputView(st viewstate.State) string {
	switch st.ActiveTab {
	case viewstate.TabAssistant:
		return m.chatInput.View()
	case viewstate.TabStudio:
		if st.Studio.Mode != viewstate.StudioImage {
			return m.studioIn.View() + "\n" + m.sourceIn.View()
		}
		return m.studioIn.View()
	}
	return ""
}

func (m Model) footerView(st viewstate.State) string {
	var parts []string
	if busy(st) {
		parts = append(parts, m.spinner.View())
	}
	if m.notice != "" {
		parts = append(parts, m.styles.Info.Render(m.notice))
	}
	if m.help.ShowAll {
		parts = append(parts, "\n"+m.help.View(m.keys))
	} else {
		parts = append(parts, m.help.View(m.keys))
	}
	return m.styles.Footer.Render(strings.Join(parts, "  "))
}

func busy(st viewstate.State) bool {
	return st.Analysis.InFlight || st.Chat.Loading() || st.Studio.Generating || st.Voice.Active
}

// resize recomputes the viewport for the terminal size.
func (m *Model) resize() {
	layout := ui.NewLayoutConfig(m.width, m.height)
	w := layout.ContentWidth()
	h := layout.ContentHeight()
	if st := m.ctrl.State(); st.ActiveTab == viewstate.TabAssistant || st.ActiveTab == viewstate.TabStudio {
		h -= 2
	}
	if h < 3 {
		h = 3
	}
	if !m.ready {
		m.viewport = viewport.New(w, h)
		m.ready = true
	} else {
		m.viewport.Width = w
		m.viewport.Height = h
	}
	m.help.Width = m.width
	for _, in := range []*textinput.Model{&m.chatInput, &m.studioIn, &m.sourceIn, &m.keyInput} {
		in.Width = w - 4
	}
}

// refresh re-renders the active tab into the viewport.
func (m *Model) refresh(follow bool) {
	if m.width == 0 {
		return
	}
	m.resize()
	st := m.ctrl.State()
	m.viewport.SetContent(ui.RenderTab(m.styles, m.store, st, m.viewport.Width))
	if follow {
		m.viewport.GotoBottom()
	}
}

// syncFocus focuses the input belonging to the active tab and blurs the rest.
func (m *Model) syncFocus() {
	st := m.ctrl.State()
	m.chatInput.Blur()
	m.studioIn.Blur()
	m.sourceIn.Blur()
	m.keyInput.Blur()

	switch {
	case st.Modal != nil && st.Modal.Kind == viewstate.ModalKeySelection:
		m.keyInput.Focus()
	case st.Modal != nil:
	case st.ActiveTab == viewstate.TabAssistant:
		m.chatInput.Focus()
	case st.ActiveTab == viewstate.TabStudio:
		m.studioIn.Focus()
	}
}

// typing reports whether a text input owns the keyboard.
func (m Model) typing() bool {
	return m.chatInput.Focused() || m.studioIn.Focused() || m.sourceIn.Focused() || m.keyInput.Focused()
}
