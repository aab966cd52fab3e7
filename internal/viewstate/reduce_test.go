package viewstate

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vcnnet/internal/content"
)

func TestInitialState(t *testing.T) {
	s := Initial(TabLedger)
	assert.Equal(t, TabLedger, s.ActiveTab)
	assert.Equal(t, content.DocConcepts, s.ActiveDocCategory)
	assert.Nil(t, s.Modal)
	assert.False(t, s.Chat.Loading())

	assert.Equal(t, TabDashboard, Initial("bogus").ActiveTab)
}

func TestSelectTabAcceptsEveryTab(t *testing.T) {
	s := Initial(TabDashboard)
	for _, tab := range Tabs() {
		s = Reduce(s, SelectTab{Tab: tab})
		assert.Equal(t, tab, s.ActiveTab)
		assert.NotEmpty(t, tab.Label())
	}
}

func TestSelectTabRejectsUnknown(t *testing.T) {
	s := Initial(TabClients)
	next := Reduce(s, SelectTab{Tab: "nowhere"})
	assert.Equal(t, TabClients, next.ActiveTab)
}

func TestSelectTabResetsCursor(t *testing.T) {
	s := Initial(TabProfiles)
	s = Reduce(s, MoveCursor{Delta: 2, Count: 4})
	require.Equal(t, 2, s.Cursor)

	s = Reduce(s, SelectTab{Tab: TabClients})
	assert.Zero(t, s.Cursor)
}

func TestStepTabWraps(t *testing.T) {
	tabs := Tabs()
	s := Initial(tabs[0])

	s = Reduce(s, StepTab{Delta: -1})
	assert.Equal(t, tabs[len(tabs)-1], s.ActiveTab)

	s = Reduce(s, StepTab{Delta: 1})
	assert.Equal(t, tabs[0], s.ActiveTab)
}

func TestDocCategorySelection(t *testing.T) {
	s := Initial(TabDocs)

	s = Reduce(s, SelectDocCategory{ID: content.DocGlossary})
	assert.Equal(t, content.DocGlossary, s.ActiveDocCategory)

	s = Reduce(s, SelectDocCategory{ID: "unknown"})
	assert.Equal(t, content.DocGlossary, s.ActiveDocCategory)

	s = Reduce(s, StepDocCategory{Delta: 1})
	assert.Equal(t, content.DocConcepts, s.ActiveDocCategory)
}

func TestDocCategoryChangeResetsCursor(t *testing.T) {
	s := Initial(TabDocs)
	s = Reduce(s, MoveCursor{Delta: 1, Count: 2})
	require.Equal(t, 1, s.Cursor)

	// Reselecting the current category keeps the selection.
	s = Reduce(s, SelectDocCategory{ID: content.DocConcepts})
	assert.Equal(t, 1, s.Cursor)

	s = Reduce(s, SelectDocCategory{ID: content.DocGlossary})
	assert.Equal(t, 0, s.Cursor)

	s = Reduce(s, StepDocCategory{Delta: -1})
	s = Reduce(s, MoveCursor{Delta: 1, Count: 2})
	require.Equal(t, 1, s.Cursor)
	s = Reduce(s, StepDocCategory{Delta: 1})
	assert.Equal(t, content.DocGlossary, s.ActiveDocCategory)
	assert.Equal(t, 0, s.Cursor)
}

func TestMoveCursorClamps(t *testing.T) {
	tests := []struct {
		name  string
		start int
		delta int
		count int
		want  int
	}{
		{"down", 0, 1, 3, 1},
		{"past end", 2, 1, 3, 2},
		{"before start", 0, -1, 3, 0},
		{"empty list", 2, 1, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Initial(TabProfiles)
			s.Cursor = tt.start
			assert.Equal(t, tt.want, Reduce(s, MoveCursor{Delta: tt.delta, Count: tt.count}).Cursor)
		})
	}
}

func TestOpeningModalReplacesCurrent(t *testing.T) {
	s := Initial(TabDashboard)
	s = Reduce(s, OpenModal{Modal: NoticeModal("first", "one")})
	s = Reduce(s, OpenModal{Modal: NoticeModal("second", "two")})

	require.NotNil(t, s.Modal)
	assert.Equal(t, "second", s.Modal.Title)

	s = Reduce(s, CloseModal{})
	assert.Nil(t, s.Modal)
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	s := Initial(TabAssistant)
	s = Reduce(s, ChatSent{RequestID: "r1", Text: "hello"})
	before := s
	snapshot := append([]ChatEntry(nil), s.Chat.Transcript...)

	_ = Reduce(s, ChatReplied{RequestID: "r1", Text: "hi"})
	_ = Reduce(s, ChatSent{RequestID: "r2", Text: "again"})

	if diff := cmp.Diff(snapshot, before.Chat.Transcript); diff != "" {
		t.Fatalf("input transcript mutated (-want +got):\n%s", diff)
	}
}

func TestAnalysisLifecycle(t *testing.T) {
	s := Initial(TabDashboard)

	s = Reduce(s, AnalysisStarted{})
	assert.True(t, s.Analysis.InFlight)

	s = Reduce(s, AnalysisFinished{Text: "Capital velocity is healthy."})
	assert.False(t, s.Analysis.InFlight)
	assert.Equal(t, "Capital velocity is healthy.", s.Analysis.Text)
	assert.False(t, s.Analysis.Failed)
}

func TestAnalysisEmptyResultShowsOffline(t *testing.T) {
	s := Reduce(Initial(TabDashboard), AnalysisStarted{})
	s = Reduce(s, AnalysisFinished{Text: "  "})
	assert.Equal(t, AnalysisOfflineText, s.Analysis.Text)
}

func TestSecondAnalysisStartIgnored(t *testing.T) {
	s := Reduce(Initial(TabDashboard), AnalysisStarted{})
	s.Analysis.Text = "previous"
	again := Reduce(s, AnalysisStarted{})
	assert.Equal(t, s, again)
}

func TestChatConcurrentSendsPairByRequest(t *testing.T) {
	s := Initial(TabAssistant)
	s = Reduce(s, ChatSent{RequestID: "a", Text: "A"})
	s = Reduce(s, ChatSent{RequestID: "b", Text: "B"})
	assert.Equal(t, 2, s.Chat.InFlight)

	// Replies arrive out of order.
	s = Reduce(s, ChatReplied{RequestID: "b", Text: "reply-to-B"})
	s = Reduce(s, ChatReplied{RequestID: "a", Text: "reply-to-A"})

	want := []ChatEntry{
		{RequestID: "a", Role: RoleUser, Text: "A"},
		{RequestID: "a", Role: RoleModel, Text: "reply-to-A"},
		{RequestID: "b", Role: RoleUser, Text: "B"},
		{RequestID: "b", Role: RoleModel, Text: "reply-to-B"},
	}
	if diff := cmp.Diff(want, s.Chat.Transcript); diff != "" {
		t.Fatalf("transcript mismatch (-want +got):\n%s", diff)
	}
	assert.False(t, s.Chat.Loading())
}

func TestChatFailureFlagsEntry(t *testing.T) {
	s := Reduce(Initial(TabAssistant), ChatSent{RequestID: "r", Text: "hi"})
	s = Reduce(s, ChatFailed{RequestID: "r", Err: "timeout"})

	require.Len(t, s.Chat.Transcript, 2)
	reply := s.Chat.Transcript[1]
	assert.True(t, reply.Failed)
	assert.False(t, reply.Pending)
	assert.Contains(t, reply.Text, ChatErrorText)
	assert.Contains(t, reply.Text, "timeout")
}

func TestChatIgnoresBlankAndStrayEvents(t *testing.T) {
	s := Initial(TabAssistant)
	assert.Equal(t, s, Reduce(s, ChatSent{RequestID: "x", Text: "   "}))

	s = Reduce(s, ChatSent{RequestID: "r", Text: "hi"})
	s = Reduce(s, ChatReplied{RequestID: "r", Text: "first"})
	after := Reduce(s, ChatReplied{RequestID: "r", Text: "duplicate"})
	assert.Equal(t, "first", after.Chat.Transcript[1].Text)

	stray := Reduce(s, ChatReplied{RequestID: "ghost", Text: "?"})
	assert.Equal(t, s, stray)
}

func TestCitationsAreCopied(t *testing.T) {
	cites := []Citation{{Title: "Source", URI: "https://example.com"}}
	s := Reduce(Initial(TabAssistant), ChatSent{RequestID: "r", Text: "q"})
	s = Reduce(s, ChatReplied{RequestID: "r", Text: "a", Citations: cites})

	cites[0].Title = "changed"
	assert.Equal(t, "Source", s.Chat.Transcript[1].Citations[0].Title)
}

func TestToggleChatTool(t *testing.T) {
	s := Initial(TabAssistant)
	s = Reduce(s, ToggleChatTool{Option: OptionWebSearch})
	s = Reduce(s, ToggleChatTool{Option: OptionThinking})
	assert.Equal(t, ChatOptions{WebSearch: true, Thinking: true}, s.Chat.Options)

	s = Reduce(s, ToggleChatTool{Option: OptionWebSearch})
	assert.False(t, s.Chat.Options.WebSearch)
}

func TestStudioLifecycle(t *testing.T) {
	s := Initial(TabStudio)
	s = Reduce(s, ConfigureStudio{Mode: StudioVideo, AspectRatio: "16:9"})
	assert.Equal(t, StudioVideo, s.Studio.Mode)
	assert.Equal(t, "16:9", s.Studio.AspectRatio)
	assert.Equal(t, "1K", s.Studio.ImageSize)

	s = Reduce(s, GenerationStarted{})
	assert.True(t, s.Studio.Generating)
	assert.Equal(t, s, Reduce(s, GenerationStarted{}))

	s = Reduce(s, GenerationFinished{Media: Media{Kind: MediaVideo, Path: "out.mp4"}})
	assert.False(t, s.Studio.Generating)
	require.NotNil(t, s.Studio.Media)
	assert.Equal(t, "out.mp4", s.Studio.Media.Path)

	s = Reduce(s, GenerationStarted{})
	s = Reduce(s, GenerationFailed{Alert: "quota exceeded"})
	assert.False(t, s.Studio.Generating)
	assert.Nil(t, s.Studio.Media)
	assert.Equal(t, "quota exceeded", s.Studio.Alert)
}

func TestVoiceLifecycle(t *testing.T) {
	s := Initial(TabVoice)
	assert.Equal(t, s, Reduce(s, VoiceStatus{Status: "ignored"}))

	s = Reduce(s, VoiceStarted{})
	assert.True(t, s.Voice.Active)

	s = Reduce(s, VoiceStatus{Status: "Listening"})
	assert.Equal(t, "Listening", s.Voice.Status)

	s = Reduce(s, VoiceStopped{Err: "socket closed"})
	assert.False(t, s.Voice.Active)
	assert.Equal(t, "socket closed", s.Voice.Error)
}

func TestKeySelection(t *testing.T) {
	s := Initial(TabStudio)
	s = Reduce(s, KeySelectionRequested{Action: "video"})
	require.NotNil(t, s.Modal)
	assert.Equal(t, ModalKeySelection, s.Modal.Kind)
	assert.Equal(t, "video", s.PendingKeyAction)

	resolved := Reduce(s, KeySelectionResolved{})
	assert.Nil(t, resolved.Modal)
	assert.Empty(t, resolved.PendingKeyAction)

	cancelled := Reduce(s, CloseModal{})
	assert.Empty(t, cancelled.PendingKeyAction)

	// Resolving does not close an unrelated modal.
	other := Reduce(s, OpenModal{Modal: NoticeModal("n", "t")})
	other = Reduce(other, KeySelectionResolved{})
	assert.NotNil(t, other.Modal)
}

func TestStateSerializationRoundTrip(t *testing.T) {
	s := Initial(TabAssistant)
	s = Reduce(s, ChatSent{RequestID: "r", Text: "hi"})
	s = Reduce(s, OpenModal{Modal: NoticeModal("n", "t")})

	data, err := s.Marshal()
	require.NoError(t, err)

	back, err := Unmarshal(data)
	require.NoError(t, err)
	if diff := cmp.Diff(s, back); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}

	_, err = Unmarshal([]byte("{"))
	assert.Error(t, err)
}

func TestParseTab(t *testing.T) {
	tests := map[string]Tab{
		"dashboard": TabDashboard,
		"actions":   TabLedger,
		"ledger":    TabLedger,
		"experts":   TabAdvisors,
		"chat":      TabAssistant,
		"live":      TabVoice,
	}
	for in, want := range tests {
		got, ok := ParseTab(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	_, ok := ParseTab("settings")
	assert.False(t, ok)
}
