package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"vcnnet/internal/viewstate"
)

// ChatPlaceholder is shown before the first message.
const ChatPlaceholder = "Ask the network anything about contributors, enterprises or protocol standards."

func renderAssistant(s Styles, st viewstate.State, width int) string {
	opts := st.Chat.Options
	toggles := lipgloss.JoinHorizontal(lipgloss.Top,
		toggle(s, "ctrl+s "+Glyph(IconGlobe)+" Web Search", opts.WebSearch),
		toggle(s, "ctrl+g "+Glyph(IconCompass)+" Maps", opts.Maps),
		toggle(s, "ctrl+t "+Glyph(IconZap)+" Deep Thinking", opts.Thinking),
	)

	parts := []string{
		sectionHeader(s, "Network Assistant", "Grounded answers about the VCN ecosystem"),
		toggles,
	}
	if len(st.Chat.Transcript) == 0 {
		parts = append(parts, s.Muted.Render(ChatPlaceholder))
	}
	for _, e := range st.Chat.Transcript {
		parts = append(parts, renderChatEntry(s, e, width))
	}
	return join(parts...)
}

func toggle(s Styles, label string, on bool) string {
	if on {
		return s.ChipActive.Render(label)
	}
	return s.Chip.Render(label)
}

func renderChatEntry(s Styles, e viewstate.ChatEntry, width int) string {
	inner := width - 4
	switch {
	case e.Role == viewstate.RoleUser:
		return s.UserBubble.Width(inner).Render(s.Bold.Render("You") + "\n" + e.Text)
	case e.Pending:
		return s.ModelBubble.Width(inner).Render(s.Spinner.Render("Consulting the network..."))
	case e.Failed:
		return s.ErrorBubble.Width(inner).Render(e.Text)
	}

	body := s.Markdown.Render(e.Text, inner-2)
	if len(e.Citations) > 0 {
		var refs []string
		for i, c := range e.Citations {
			title := c.Title
			if title == "" {
				title = c.URI
			}
			refs = append(refs, fmt.Sprintf("%d. %s %s", i+1, title, s.Muted.Render("("+c.URI+")")))
		}
		body += "\n" + s.Info.Render("Sources") + "\n" + strings.Join(refs, "\n")
	}
	return s.ModelBubble.Width(inner).Render(body)
}

// Selectable studio parameters, cycled in order by the dashboard keys.
var (
	StudioSizes   = []string{"1K", "2K", "4K"}
	StudioAspects = []string{"1:1", "16:9", "9:16", "4:3", "3:4"}
	StudioModes   = []viewstate.StudioMode{viewstate.StudioImage, viewstate.StudioEdit, viewstate.StudioVideo}
)

func renderStudio(s Styles, st viewstate.State, width int) string {
	studio := st.Studio

	var modes []string
	for _, m := range StudioModes {
		modes = append(modes, string(m))
	}

	form := []string{
		s.Muted.Render("Mode   ") + chips(s, modes, string(studio.Mode)),
	}
	if studio.Mode == viewstate.StudioImage {
		form = append(form, s.Muted.Render("Size   ")+chips(s, StudioSizes, studio.ImageSize))
	}
	if studio.Mode != viewstate.StudioEdit {
		form = append(form, s.Muted.Render("Aspect ")+chips(s, StudioAspects, studio.AspectRatio))
	}
	if studio.Mode != viewstate.StudioImage {
		source := studio.SourcePath
		if source == "" {
			source = "(none)"
		}
		form = append(form, s.Muted.Render("Source ")+s.Body.Render(source))
	}

	parts := []string{
		sectionHeader(s, "Media Studio", "Generate and edit network imagery and video"),
		strings.Join(form, "\n"),
	}

	switch {
	case studio.Generating:
		msg := "Rendering image..."
		if studio.Mode == viewstate.StudioVideo {
			msg = "Rendering video, this can take a few minutes..."
		}
		parts = append(parts, s.Spinner.Render(Glyph(IconImage)+" "+msg))
	case studio.Alert != "":
		parts = append(parts, s.ErrorBubble.Width(width-4).Render(studio.Alert))
	case studio.Media != nil:
		m := studio.Media
		parts = append(parts, card(s, lipgloss.JoinVertical(lipgloss.Left,
			s.Success.Render(Glyph(IconImage)+" "+strings.ToUpper(string(m.Kind))+" ready"),
			s.Body.Render(m.Path),
			s.Muted.Render(fmt.Sprintf("%s, %s bytes", m.MIMEType, formatThousands(m.Size))),
			s.Subtitle.Width(width-6).Render(m.Prompt),
		), width, false))
	}

	parts = append(parts, s.Muted.Render("[ctrl+o] mode  [ctrl+y] size  [ctrl+r] aspect  [ctrl+f] source  [enter] generate"))
	return join(parts...)
}

func renderVoice(s Styles, st viewstate.State, width int) string {
	v := st.Voice

	indicator := s.Muted.Render("○ Idle")
	action := hint(s, "enter", "Start live session")
	if v.Active {
		indicator = s.Success.Render("● Live")
		action = hint(s, "enter", "End live session")
	}

	status := v.Status
	if status == "" {
		status = "Microphone idle. Start a session to talk with the network."
	}

	parts := []string{
		sectionHeader(s, "Live Voice", "Real-time voice conversation with the network intelligence"),
		s.Accent(ThemePurple).Render(Glyph(IconMic)) + "  " + indicator,
		s.Body.Width(width - 4).Render(status),
	}
	if v.Error != "" {
		parts = append(parts, s.Error.Render(v.Error))
	}
	parts = append(parts, action)
	return join(parts...)
}
