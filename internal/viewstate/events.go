package viewstate

// Event is a user intent or an async completion fed to Reduce.
// The set is closed: only types in this package implement it.
type Event interface {
	isEvent()
}

// Navigation

type SelectTab struct{ Tab Tab }

// StepTab moves Delta tabs along the sidebar, wrapping around.
type StepTab struct{ Delta int }

type SelectDocCategory struct{ ID string }

// StepDocCategory moves Delta categories along the knowledge hub sub-nav, wrapping around.
type StepDocCategory struct{ Delta int }

// MoveCursor moves the list selection by Delta, clamped to [0, Count).
type MoveCursor struct {
	Delta int
	Count int
}

// Modal slot

type OpenModal struct{ Modal Modal }

type CloseModal struct{}

// Ledger. Handled by the Controller, which owns the content store.

type ToggleArtifactVerified struct{ ID string }

// Strategic analysis

type AnalysisStarted struct{}

type AnalysisFinished struct {
	Text   string
	Failed bool
	Err    string
}

// Assistant chat

type ChatSent struct {
	RequestID string
	Text      string
}

type ChatReplied struct {
	RequestID string
	Text      string
	Citations []Citation
}

type ChatFailed struct {
	RequestID string
	Err       string
}

type ToggleChatTool struct{ Option ChatOption }

// Media studio

// ConfigureStudio updates the studio form; empty fields are left unchanged.
type ConfigureStudio struct {
	Mode        StudioMode
	ImageSize   string
	AspectRatio string
	SourcePath  string
}

type GenerationStarted struct{}

type GenerationFinished struct{ Media Media }

type GenerationFailed struct{ Alert string }

// Live voice

type VoiceStarted struct{}

type VoiceStatus struct{ Status string }

type VoiceStopped struct{ Err string }

// API key selection

type KeySelectionRequested struct{ Action string }

type KeySelectionResolved struct{}

func (SelectTab) isEvent()              {}
func (StepTab) isEvent()                {}
func (SelectDocCategory) isEvent()      {}
func (StepDocCategory) isEvent()        {}
func (MoveCursor) isEvent()             {}
func (OpenModal) isEvent()              {}
func (CloseModal) isEvent()             {}
func (ToggleArtifactVerified) isEvent() {}
func (AnalysisStarted) isEvent()        {}
func (AnalysisFinished) isEvent()       {}
func (ChatSent) isEvent()               {}
func (ChatReplied) isEvent()            {}
func (ChatFailed) isEvent()             {}
func (ToggleChatTool) isEvent()         {}
func (ConfigureStudio) isEvent()        {}
func (GenerationStarted) isEvent()      {}
func (GenerationFinished) isEvent()     {}
func (GenerationFailed) isEvent()       {}
func (VoiceStarted) isEvent()           {}
func (VoiceStatus) isEvent()            {}
func (VoiceStopped) isEvent()           {}
func (KeySelectionRequested) isEvent()  {}
func (KeySelectionResolved) isEvent()   {}
