package dashboard

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"vcnnet/internal/config"
	"vcnnet/internal/gateway"
	"vcnnet/internal/logging"
	"vcnnet/internal/viewstate"
	"vcnnet/internal/voice"
)

func (m Model) runAnalysis() tea.Cmd {
	gw, store, ctx := m.gw, m.store, m.rt.ctx
	return func() tea.Msg {
		return analysisDoneMsg{result: gw.Analyze(ctx, store.Metrics(), store.Artifacts())}
	}
}

// historyFrom converts the settled part of the transcript into request turns.
// Pending and failed entries are not sent back to the service.
func historyFrom(transcript []viewstate.ChatEntry) []gateway.Turn {
	turns := make([]gateway.Turn, 0, len(transcript))
	for _, e := range transcript {
		if e.Pending || e.Failed {
			continue
		}
		turns = append(turns, gateway.Turn{Role: string(e.Role), Text: e.Text})
	}
	return turns
}

func (m Model) sendChat(requestID string, history []gateway.Turn, text string, opts viewstate.ChatOptions) tea.Cmd {
	gw, ctx := m.gw, m.rt.ctx
	chatOpts := gateway.ChatOptions{WebSearch: opts.WebSearch, Maps: opts.Maps, Thinking: opts.Thinking}
	return func() tea.Msg {
		return chatReplyMsg{requestID: requestID, result: gw.Chat(ctx, history, text, chatOpts)}
	}
}

func (m Model) generate(studio viewstate.StudioState, prompt string) tea.Cmd {
	gw := m.gw
	switch studio.Mode {
	case viewstate.StudioEdit:
		ctx := withAction(m.rt.ctx, "Image editing")
		req := gateway.EditRequest{Prompt: prompt, SourcePath: studio.SourcePath}
		return func() tea.Msg { return mediaDoneMsg{result: gw.EditImage(ctx, req)} }

	case viewstate.StudioVideo:
		ctx := withAction(m.rt.ctx, "Video generation")
		req := gateway.VideoRequest{Prompt: prompt, StartImagePath: studio.SourcePath}
		if studio.AspectRatio == "16:9" || studio.AspectRatio == "9:16" {
			req.AspectRatio = studio.AspectRatio
		}
		return func() tea.Msg { return mediaDoneMsg{result: gw.GenerateVideo(ctx, req)} }

	default:
		ctx := withAction(m.rt.ctx, "Image generation")
		req := gateway.ImageRequest{Prompt: prompt, Size: studio.ImageSize, AspectRatio: studio.AspectRatio}
		return func() tea.Msg { return mediaDoneMsg{result: gw.GenerateImage(ctx, req)} }
	}
}

// startVoice registers the live session and returns the command that
// connects and runs it. The command stays blocked for the whole session;
// status changes arrive as events.
func (m Model) startVoice() tea.Cmd {
	gw, rt, vc := m.gw, m.rt, m.cfg.Voice
	ctx, cancel := context.WithCancel(withAction(rt.ctx, "Live voice session"))
	slot := rt.beginSession(cancel)
	return func() tea.Msg {
		defer func() {
			rt.clearSession(slot)
			cancel()
		}()
		if ctx.Err() != nil {
			return voiceStoppedMsg{}
		}

		conn, err := gw.OpenLive(ctx)
		if err != nil {
			if ctx.Err() != nil {
				err = nil
			}
			return voiceStoppedMsg{err: err}
		}
		src, sink, err := rt.audio(ctx, vc)
		if err != nil {
			_ = conn.Close()
			return voiceStoppedMsg{err: err}
		}

		session := voice.NewSession(conn, src, sink, voice.Options{
			InputSampleRate:  vc.InputSampleRate,
			OutputSampleRate: vc.OutputSampleRate,
			FrameSamples:     vc.FrameSamples,
			OnStatus: func(status string) {
				rt.send(ctx, voiceStatusMsg(status))
			},
		})
		if !rt.attachSession(slot, session) {
			_ = src.Close()
			_ = sink.Close()
			_ = conn.Close()
			return voiceStoppedMsg{}
		}

		err = session.Run(ctx)
		if errors.Is(err, context.Canceled) || errors.Is(err, voice.ErrSessionClosed) {
			err = nil
		}
		if err != nil {
			logging.VoiceError("live session ended: %v", err)
		}
		return voiceStoppedMsg{err: err}
	}
}

// watchConfig reloads the config file in the background for the program's
// lifetime; each reload arrives as a configReloadedMsg event.
func (m Model) watchConfig() tea.Cmd {
	rt, path := m.rt, m.configPath
	return func() tea.Msg {
		err := config.Watch(rt.ctx, path, func(cfg *config.Config, err error) {
			rt.send(rt.ctx, configReloadedMsg{cfg: cfg, err: err})
		})
		if err != nil {
			logging.ConfigWarn("config hot reload disabled: %v", err)
			return noticeMsg("Config hot reload disabled: " + err.Error())
		}
		return nil
	}
}

func copyText(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboardWriteAll(text); err != nil {
			logging.UIWarn("clipboard write failed: %v", err)
			return noticeMsg("Clipboard unavailable: " + err.Error())
		}
		return noticeMsg("Copied to clipboard")
	}
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
