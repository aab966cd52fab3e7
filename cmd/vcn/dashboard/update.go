package dashboard

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"vcnnet/cmd/vcn/ui"
	"vcnnet/internal/logging"
	"vcnnet/internal/viewstate"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	follow := false

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case analysisDoneMsg:
		r := msg.result
		m.ctrl.Dispatch(viewstate.AnalysisFinished{Text: r.Text, Failed: r.Failed(), Err: errString(r.Err)})

	case chatReplyMsg:
		if msg.result.Err != nil {
			m.ctrl.Dispatch(viewstate.ChatFailed{RequestID: msg.requestID, Err: msg.result.Err.Error()})
		} else {
			cites := make([]viewstate.Citation, 0, len(msg.result.Citations))
			for _, c := range msg.result.Citations {
				cites = append(cites, viewstate.Citation{Title: c.Title, URI: c.URI})
			}
			m.ctrl.Dispatch(viewstate.ChatReplied{RequestID: msg.requestID, Text: msg.result.Text, Citations: cites})
		}
		follow = m.ctrl.State().ActiveTab == viewstate.TabAssistant

	case mediaDoneMsg:
		r := msg.result
		if r.Err != nil {
			m.ctrl.Dispatch(viewstate.GenerationFailed{Alert: r.Alert()})
		} else {
			m.ctrl.Dispatch(viewstate.GenerationFinished{Media: viewstate.Media{
				Kind:     viewstate.MediaKind(r.Media.Kind),
				Path:     r.Media.Path,
				MIMEType: r.Media.MIMEType,
				Size:     len(r.Media.Data),
				Prompt:   r.Media.Prompt,
			}})
		}

	case keyRequestMsg:
		m.rt.setPendingKey(msg.reply)
		m.keyInput.Reset()
		m.ctrl.Dispatch(viewstate.KeySelectionRequested{Action: msg.action})
		m.syncFocus()
		cmds = append(cmds, m.rt.waitForEvent())

	case voiceStatusMsg:
		m.ctrl.Dispatch(viewstate.VoiceStatus{Status: string(msg)})
		cmds = append(cmds, m.rt.waitForEvent())

	case voiceStoppedMsg:
		m.ctrl.Dispatch(viewstate.VoiceStopped{Err: errString(msg.err)})

	case configReloadedMsg:
		if msg.err != nil {
			m.notice = "Config reload failed: " + msg.err.Error()
		} else {
			m.cfg = msg.cfg
			m.gw.SetConfig(msg.cfg)
			m.styles = ui.NewStyles(ui.ThemeForSetting(msg.cfg.UI.Theme))
			m.spinner.Style = m.styles.Spinner
			m.notice = "Config reloaded"
		}
		cmds = append(cmds, m.rt.waitForEvent())

	case noticeMsg:
		m.notice = string(msg)
	}

	m.refresh(follow)
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Kill) {
		return m.quit()
	}

	st := m.ctrl.State()
	if st.Modal != nil {
		return m.handleModalKey(msg, st)
	}

	switch {
	case key.Matches(msg, m.keys.NextTab):
		return m.stepTab(1)
	case key.Matches(msg, m.keys.PrevTab):
		return m.stepTab(-1)
	}

	if m.typing() {
		return m.handleInputKey(msg, st)
	}

	var cmd tea.Cmd
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		m.ctrl.MoveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.ctrl.MoveCursor(1)
	case key.Matches(msg, m.keys.PageUp), key.Matches(msg, m.keys.PageDn):
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case key.Matches(msg, m.keys.Open):
		cmd = m.activate(st)

	case key.Matches(msg, m.keys.Focus):
		m.syncFocus()

	case key.Matches(msg, m.keys.Toggle):
		if a, ok := m.ctrl.SelectedArtifact(); ok {
			m.ctrl.ToggleVerified(a.ID)
			logging.UIDebug("toggled verification of %s", a.ID)
		}

	case key.Matches(msg, m.keys.Audit):
		if !st.Analysis.InFlight {
			m.ctrl.Dispatch(viewstate.AnalysisStarted{})
			cmd = m.runAnalysis()
		}

	case key.Matches(msg, m.keys.Copy):
		if text := copyableText(st); text != "" {
			cmd = copyText(text)
		} else {
			m.notice = "Nothing to copy yet"
		}

	case key.Matches(msg, m.keys.PrevDocCat):
		m.ctrl.Dispatch(viewstate.StepDocCategory{Delta: -1})
	case key.Matches(msg, m.keys.NextDocCat):
		m.ctrl.Dispatch(viewstate.StepDocCategory{Delta: 1})

	default:
		if tab, ok := ui.TabForKey(msg.String()); ok {
			m.ctrl.SelectTab(tab)
			m.syncFocus()
			m.viewport.GotoTop()
		}
	}

	m.refresh(false)
	return m, cmd
}

// activate handles enter outside of text inputs.
func (m *Model) activate(st viewstate.State) tea.Cmd {
	switch st.ActiveTab {
	case viewstate.TabVoice:
		if st.Voice.Active {
			if !m.rt.endSession() {
				m.ctrl.Dispatch(viewstate.VoiceStopped{})
			}
			return nil
		}
		m.ctrl.Dispatch(viewstate.VoiceStarted{})
		return m.startVoice()

	case viewstate.TabAssistant, viewstate.TabStudio:
		m.syncFocus()
		return nil
	}

	before := st.ActiveTab
	after := m.ctrl.OpenSelected()
	if after.ActiveTab != before {
		m.syncFocus()
		m.viewport.GotoTop()
	}
	return nil
}

func (m Model) handleModalKey(msg tea.KeyMsg, st viewstate.State) (tea.Model, tea.Cmd) {
	if st.Modal.Kind != viewstate.ModalKeySelection {
		if key.Matches(msg, m.keys.Close) || key.Matches(msg, m.keys.Open) || key.Matches(msg, m.keys.Quit) {
			m.ctrl.CloseModal()
			m.syncFocus()
		}
		m.refresh(false)
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Close):
		m.rt.resolveKey("")
		m.ctrl.Dispatch(viewstate.KeySelectionResolved{})
		m.notice = "Key selection cancelled"
	case key.Matches(msg, m.keys.Open):
		value := strings.TrimSpace(m.keyInput.Value())
		if value == "" {
			return m, nil
		}
		m.rt.resolveKey(value)
		m.keyInput.Reset()
		m.ctrl.Dispatch(viewstate.KeySelectionResolved{})
		m.notice = "API key selected"
	default:
		var cmd tea.Cmd
		m.keyInput, cmd = m.keyInput.Update(msg)
		return m, cmd
	}
	m.syncFocus()
	m.refresh(false)
	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg, st viewstate.State) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	follow := false

	switch {
	case key.Matches(msg, m.keys.Close):
		m.chatInput.Blur()
		m.studioIn.Blur()
		m.sourceIn.Blur()

	case key.Matches(msg, m.keys.PageUp), key.Matches(msg, m.keys.PageDn),
		msg.Type == tea.KeyUp, msg.Type == tea.KeyDown:
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case st.ActiveTab == viewstate.TabAssistant && key.Matches(msg, m.keys.ToolSearch):
		m.ctrl.Dispatch(viewstate.ToggleChatTool{Option: viewstate.OptionWebSearch})
	case st.ActiveTab == viewstate.TabAssistant && key.Matches(msg, m.keys.ToolMaps):
		m.ctrl.Dispatch(viewstate.ToggleChatTool{Option: viewstate.OptionMaps})
	case st.ActiveTab == viewstate.TabAssistant && key.Matches(msg, m.keys.ToolThink):
		m.ctrl.Dispatch(viewstate.ToggleChatTool{Option: viewstate.OptionThinking})

	case st.ActiveTab == viewstate.TabStudio && key.Matches(msg, m.keys.StudioMode):
		m.ctrl.Dispatch(viewstate.ConfigureStudio{Mode: nextMode(st.Studio.Mode)})
	case st.ActiveTab == viewstate.TabStudio && key.Matches(msg, m.keys.StudioSize):
		m.ctrl.Dispatch(viewstate.ConfigureStudio{ImageSize: next(ui.StudioSizes, st.Studio.ImageSize)})
	case st.ActiveTab == viewstate.TabStudio && key.Matches(msg, m.keys.StudioRatio):
		m.ctrl.Dispatch(viewstate.ConfigureStudio{AspectRatio: next(ui.StudioAspects, st.Studio.AspectRatio)})
	case st.ActiveTab == viewstate.TabStudio && key.Matches(msg, m.keys.StudioSrc):
		if st.Studio.Mode != viewstate.StudioImage {
			if m.sourceIn.Focused() {
				m.sourceIn.Blur()
				m.studioIn.Focus()
			} else {
				m.studioIn.Blur()
				m.sourceIn.Focus()
			}
		}

	case key.Matches(msg, m.keys.Open):
		switch {
		case m.chatInput.Focused():
			cmd = m.submitChat(st)
			follow = true
		case m.sourceIn.Focused():
			m.ctrl.Dispatch(viewstate.ConfigureStudio{SourcePath: strings.TrimSpace(m.sourceIn.Value())})
			m.sourceIn.Blur()
			m.studioIn.Focus()
		case m.studioIn.Focused():
			cmd = m.submitStudio(st)
		}

	default:
		switch {
		case m.chatInput.Focused():
			m.chatInput, cmd = m.chatInput.Update(msg)
		case m.studioIn.Focused():
			m.studioIn, cmd = m.studioIn.Update(msg)
		case m.sourceIn.Focused():
			m.sourceIn, cmd = m.sourceIn.Update(msg)
		}
	}

	m.refresh(follow)
	return m, cmd
}

func (m *Model) submitChat(st viewstate.State) tea.Cmd {
	text := strings.TrimSpace(m.chatInput.Value())
	if text == "" {
		return nil
	}
	history := historyFrom(st.Chat.Transcript)
	id := uuid.NewString()

	after := m.ctrl.Dispatch(viewstate.ChatSent{RequestID: id, Text: text})
	m.chatInput.Reset()
	return m.sendChat(id, history, text, after.Chat.Options)
}

func (m *Model) submitStudio(st viewstate.State) tea.Cmd {
	prompt := strings.TrimSpace(m.studioIn.Value())
	if prompt == "" || st.Studio.Generating {
		return nil
	}
	if st.Studio.Mode == viewstate.StudioEdit && st.Studio.SourcePath == "" {
		m.notice = "Set a source image first (ctrl+f)"
		return nil
	}
	after := m.ctrl.Dispatch(viewstate.GenerationStarted{})
	return m.generate(after.Studio, prompt)
}

func (m Model) stepTab(delta int) (tea.Model, tea.Cmd) {
	m.ctrl.Dispatch(viewstate.StepTab{Delta: delta})
	m.syncFocus()
	m.viewport.GotoTop()
	m.refresh(false)
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.rt.shutdown()
	if m.gw != nil {
		if err := m.gw.Close(); err != nil {
			logging.UIWarn("gateway close: %v", err)
		}
	}
	m.quitting = true
	return m, tea.Quit
}

// copyableText is the AI text the copy key targets: the audit on the
// dashboard, the latest settled reply on the assistant.
func copyableText(st viewstate.State) string {
	switch st.ActiveTab {
	case viewstate.TabDashboard:
		return st.Analysis.Text
	case viewstate.TabAssistant:
		for i := len(st.Chat.Transcript) - 1; i >= 0; i-- {
			e := st.Chat.Transcript[i]
			if e.Role == viewstate.RoleModel && !e.Pending && !e.Failed {
				return e.Text
			}
		}
	}
	return ""
}

func nextMode(cur viewstate.StudioMode) viewstate.StudioMode {
	for i, mode := range ui.StudioModes {
		if mode == cur {
			return ui.StudioModes[(i+1)%len(ui.StudioModes)]
		}
	}
	return ui.StudioModes[0]
}

func next(values []string, cur string) string {
	for i, v := range values {
		if v == cur {
			return values[(i+1)%len(values)]
		}
	}
	return values[0]
}
