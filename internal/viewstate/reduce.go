package viewstate

import "strings"

// Fallback copy shown when a request produced nothing usable.
const (
	AnalysisOfflineText = "Analysis offline."
	ChatErrorText       = "The network intelligence could not be reached. Please try again."
)

// Reduce returns the state that results from applying e to s.
// It never mutates s; slices reachable from the result are fresh copies
// wherever they changed.
func Reduce(s State, e Event) State {
	switch e := e.(type) {
	case SelectTab:
		if !e.Tab.Valid() {
			return s
		}
		s.ActiveTab = e.Tab
		s.Cursor = 0

	case StepTab:
		tabs := Tabs()
		i := s.ActiveTab.Index()
		if i < 0 {
			i = 0
		}
		s.ActiveTab = tabs[wrap(i+e.Delta, len(tabs))]
		s.Cursor = 0

	case SelectDocCategory:
		if !validDocCategory(e.ID) || e.ID == s.ActiveDocCategory {
			return s
		}
		s.ActiveDocCategory = e.ID
		s.Cursor = 0

	case StepDocCategory:
		cats := DocCategories()
		i := 0
		for j, c := range cats {
			if c == s.ActiveDocCategory {
				i = j
			}
		}
		if next := cats[wrap(i+e.Delta, len(cats))]; next != s.ActiveDocCategory {
			s.ActiveDocCategory = next
			s.Cursor = 0
		}

	case MoveCursor:
		if e.Count <= 0 {
			s.Cursor = 0
			return s
		}
		s.Cursor = clamp(s.Cursor+e.Delta, 0, e.Count-1)

	case OpenModal:
		m := e.Modal
		s.Modal = &m

	case CloseModal:
		if s.Modal != nil && s.Modal.Kind == ModalKeySelection {
			s.PendingKeyAction = ""
		}
		s.Modal = nil

	case ToggleArtifactVerified:
		// Store mutation only; nothing in the view record changes.

	case AnalysisStarted:
		if s.Analysis.InFlight {
			return s
		}
		s.Analysis.InFlight = true
		s.Analysis.Failed = false
		s.Analysis.Error = ""

	case AnalysisFinished:
		s.Analysis.InFlight = false
		s.Analysis.Text = e.Text
		if strings.TrimSpace(e.Text) == "" {
			s.Analysis.Text = AnalysisOfflineText
		}
		s.Analysis.Failed = e.Failed
		s.Analysis.Error = e.Err

	case ChatSent:
		if strings.TrimSpace(e.Text) == "" || e.RequestID == "" {
			return s
		}
		s.Chat.Transcript = appendEntries(s.Chat.Transcript,
			ChatEntry{RequestID: e.RequestID, Role: RoleUser, Text: e.Text},
			ChatEntry{RequestID: e.RequestID, Role: RoleModel, Pending: true},
		)
		s.Chat.InFlight++

	case ChatReplied:
		s.Chat = resolveChat(s.Chat, e.RequestID, func(entry *ChatEntry) {
			entry.Text = e.Text
			entry.Citations = append([]Citation(nil), e.Citations...)
		})

	case ChatFailed:
		s.Chat = resolveChat(s.Chat, e.RequestID, func(entry *ChatEntry) {
			entry.Text = ChatErrorText
			if e.Err != "" {
				entry.Text += " (" + e.Err + ")"
			}
			entry.Failed = true
		})

	case ToggleChatTool:
		switch e.Option {
		case OptionWebSearch:
			s.Chat.Options.WebSearch = !s.Chat.Options.WebSearch
		case OptionMaps:
			s.Chat.Options.Maps = !s.Chat.Options.Maps
		case OptionThinking:
			s.Chat.Options.Thinking = !s.Chat.Options.Thinking
		}

	case ConfigureStudio:
		if e.Mode != "" {
			s.Studio.Mode = e.Mode
		}
		if e.ImageSize != "" {
			s.Studio.ImageSize = e.ImageSize
		}
		if e.AspectRatio != "" {
			s.Studio.AspectRatio = e.AspectRatio
		}
		if e.SourcePath != "" {
			s.Studio.SourcePath = e.SourcePath
		}

	case GenerationStarted:
		if s.Studio.Generating {
			return s
		}
		s.Studio.Generating = true
		s.Studio.Alert = ""
		s.Studio.Media = nil

	case GenerationFinished:
		m := e.Media
		s.Studio.Generating = false
		s.Studio.Media = &m
		s.Studio.Alert = ""

	case GenerationFailed:
		s.Studio.Generating = false
		s.Studio.Alert = e.Alert

	case VoiceStarted:
		s.Voice = VoiceState{Active: true, Status: "Connecting to live session..."}

	case VoiceStatus:
		if !s.Voice.Active {
			return s
		}
		s.Voice.Status = e.Status

	case VoiceStopped:
		s.Voice.Active = false
		s.Voice.Status = "Session closed"
		s.Voice.Error = e.Err

	case KeySelectionRequested:
		s.PendingKeyAction = e.Action
		s.Modal = &Modal{
			Kind:  ModalKeySelection,
			Title: "Select API Key",
			Text:  "Media generation requires a provider-issued API key. Paste one below and press enter.",
		}

	case KeySelectionResolved:
		s.PendingKeyAction = ""
		if s.Modal != nil && s.Modal.Kind == ModalKeySelection {
			s.Modal = nil
		}
	}
	return s
}

func appendEntries(dst []ChatEntry, entries ...ChatEntry) []ChatEntry {
	out := make([]ChatEntry, 0, len(dst)+len(entries))
	out = append(out, dst...)
	return append(out, entries...)
}

// resolveChat fills the pending model entry for requestID. Unknown or
// already resolved ids leave the chat unchanged.
func resolveChat(c ChatState, requestID string, fill func(*ChatEntry)) ChatState {
	for i, entry := range c.Transcript {
		if entry.RequestID != requestID || entry.Role != RoleModel || !entry.Pending {
			continue
		}
		transcript := append([]ChatEntry(nil), c.Transcript...)
		resolved := transcript[i]
		resolved.Pending = false
		fill(&resolved)
		transcript[i] = resolved

		c.Transcript = transcript
		if c.InFlight > 0 {
			c.InFlight--
		}
		return c
	}
	return c
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
