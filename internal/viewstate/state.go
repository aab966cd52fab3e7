package viewstate

import (
	"encoding/json"
	"fmt"

	"vcnnet/internal/content"
)

// ModalKind selects what a modal shows.
type ModalKind string

const (
	ModalUserPortfolio ModalKind = "user_portfolio"
	ModalClientDetail  ModalKind = "client_detail"
	ModalAdvisorNotes  ModalKind = "advisor_notes"
	ModalPolicyAudit   ModalKind = "policy_audit"
	ModalOpportunity   ModalKind = "opportunity"
	ModalMilestone     ModalKind = "milestone"
	ModalNotice        ModalKind = "notice"
	ModalKeySelection  ModalKind = "key_selection"
)

// Modal is the single focused overlay. Subject is the id of the record it
// describes; Text carries free-form content for notices.
type Modal struct {
	Kind    ModalKind `json:"kind"`
	Title   string    `json:"title"`
	Subject string    `json:"subject,omitempty"`
	Text    string    `json:"text,omitempty"`
}

// AnalysisState tracks the strategic audit panel.
type AnalysisState struct {
	Text     string `json:"text,omitempty"`
	InFlight bool   `json:"inFlight"`
	Failed   bool   `json:"failed"`
	Error    string `json:"error,omitempty"`
}

// ChatRole is the author of a transcript entry.
type ChatRole string

const (
	RoleUser  ChatRole = "user"
	RoleModel ChatRole = "model"
)

// Citation is a grounding source attached to a reply.
type Citation struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// ChatEntry is one transcript bubble. A model entry is created pending at
// send time and filled in by the reply carrying the same RequestID.
type ChatEntry struct {
	RequestID string     `json:"requestId"`
	Role      ChatRole   `json:"role"`
	Text      string     `json:"text"`
	Pending   bool       `json:"pending,omitempty"`
	Failed    bool       `json:"failed,omitempty"`
	Citations []Citation `json:"citations,omitempty"`
}

// ChatOption names one of the assistant's tool toggles.
type ChatOption string

const (
	OptionWebSearch ChatOption = "search"
	OptionMaps      ChatOption = "maps"
	OptionThinking  ChatOption = "thinking"
)

// ChatOptions are the assistant's tool toggles.
type ChatOptions struct {
	WebSearch bool `json:"webSearch"`
	Maps      bool `json:"maps"`
	Thinking  bool `json:"thinking"`
}

// ChatState is the assistant transcript and its in-flight count.
type ChatState struct {
	Transcript []ChatEntry `json:"transcript"`
	InFlight   int         `json:"inFlight"`
	Options    ChatOptions `json:"options"`
}

// Loading reports whether any reply is outstanding.
func (c ChatState) Loading() bool { return c.InFlight > 0 }

// StudioMode selects what the media studio produces.
type StudioMode string

const (
	StudioImage StudioMode = "image"
	StudioEdit  StudioMode = "edit"
	StudioVideo StudioMode = "video"
)

// MediaKind distinguishes generated media.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// Media describes a generated asset written to disk.
type Media struct {
	Kind     MediaKind `json:"kind"`
	Path     string    `json:"path"`
	MIMEType string    `json:"mimeType"`
	Size     int       `json:"size"`
	Prompt   string    `json:"prompt"`
}

// StudioState tracks the media studio form and its last result.
type StudioState struct {
	Mode        StudioMode `json:"mode"`
	ImageSize   string     `json:"imageSize"`
	AspectRatio string     `json:"aspectRatio"`
	SourcePath  string     `json:"sourcePath,omitempty"`
	Generating  bool       `json:"generating"`
	Media       *Media     `json:"media,omitempty"`
	Alert       string     `json:"alert,omitempty"`
}

// VoiceState tracks the live voice session.
type VoiceState struct {
	Active bool   `json:"active"`
	Status string `json:"status,omitempty"`
	Error  string `json:"error,omitempty"`
}

// State is the whole view-state record.
type State struct {
	ActiveTab         Tab           `json:"activeTab"`
	ActiveDocCategory string        `json:"activeDocCategory"`
	Cursor            int           `json:"cursor"`
	Modal             *Modal        `json:"modal,omitempty"`
	Analysis          AnalysisState `json:"analysis"`
	Chat              ChatState     `json:"chat"`
	Studio            StudioState   `json:"studio"`
	Voice             VoiceState    `json:"voice"`
	PendingKeyAction  string        `json:"pendingKeyAction,omitempty"`
}

// Initial returns the state at startup.
func Initial(start Tab) State {
	if !start.Valid() {
		start = TabDashboard
	}
	return State{
		ActiveTab:         start,
		ActiveDocCategory: DocCategories()[0],
		Studio: StudioState{
			Mode:        StudioImage,
			ImageSize:   "1K",
			AspectRatio: "1:1",
		},
	}
}

// settled drops everything tied to a running request or session.
func (s State) settled() State {
	s.Modal = nil
	s.PendingKeyAction = ""
	s.Analysis.InFlight = false
	s.Studio.Generating = false
	s.Voice = VoiceState{}

	var kept []ChatEntry
	for _, e := range s.Chat.Transcript {
		if !e.Pending {
			kept = append(kept, e)
		}
	}
	s.Chat.Transcript = kept
	s.Chat.InFlight = 0
	return s
}

// Marshal serializes the state.
func (s State) Marshal() ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal view state: %w", err)
	}
	return data, nil
}

// Unmarshal restores a state produced by Marshal.
func Unmarshal(data []byte) (State, error) {
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return State{}, fmt.Errorf("failed to unmarshal view state: %w", err)
	}
	return s, nil
}

// Modal constructors for the records the console can focus on.

func PortfolioModal(u content.User) Modal {
	return Modal{Kind: ModalUserPortfolio, Title: u.Name + " - Network Reputation Graph", Subject: u.ID}
}

func ClientModal(c content.Client) Modal {
	return Modal{Kind: ModalClientDetail, Title: "Enterprise Node: " + c.Name, Subject: c.ID}
}

func AdvisorModal(a content.AdvisorReview) Modal {
	return Modal{Kind: ModalAdvisorNotes, Title: a.Name + " - Protocol Notes", Subject: a.ID}
}

func PolicyModal(p content.GovernancePolicy) Modal {
	return Modal{Kind: ModalPolicyAudit, Title: "Audit Log: " + p.Title, Subject: p.ID}
}

func OpportunityModal(o content.Opportunity) Modal {
	return Modal{Kind: ModalOpportunity, Title: "Qualification: " + o.Title, Subject: o.ID}
}

func MilestoneModal(m content.NetworkMilestone) Modal {
	return Modal{Kind: ModalMilestone, Title: m.Title, Subject: m.ID}
}

func NoticeModal(title, text string) Modal {
	return Modal{Kind: ModalNotice, Title: title, Text: text}
}
