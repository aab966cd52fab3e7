package gateway

import (
	"context"

	"vcnnet/internal/voice"
)

// Backend is the provider surface the gateway drives. GenAIBackend is the
// production implementation; tests substitute fakes.
type Backend interface {
	GenerateText(ctx context.Context, req TextRequest) (TextResponse, error)
	GenerateImage(ctx context.Context, req ImageSpec) (Blob, error)
	EditImage(ctx context.Context, req EditSpec) (Blob, error)
	StartVideo(ctx context.Context, req VideoSpec) (VideoJob, error)
	PollVideo(ctx context.Context, job VideoJob) (VideoJob, error)
	DownloadVideo(ctx context.Context, job VideoJob) (Blob, error)
	ConnectLive(ctx context.Context, req LiveSpec) (voice.Conn, error)
	Close() error
}

// BackendFactory builds a Backend for an API key.
type BackendFactory func(ctx context.Context, apiKey string) (Backend, error)

// Blob is binary content with its MIME type.
type Blob struct {
	Data     []byte
	MIMEType string
}

// LatLng is a point used for maps grounding.
type LatLng struct {
	Latitude  float64
	Longitude float64
}

// Turn is one prior exchange in a conversation.
type Turn struct {
	Role string // "user" or "model"
	Text string
}

// TextRequest is a single text generation call.
type TextRequest struct {
	Model    string
	System   string
	History  []Turn
	Prompt   string
	Search   bool
	Maps     bool
	Location *LatLng
	// ThinkingBudget > 0 enables extended reasoning with that token budget.
	ThinkingBudget int32
}

// TextResponse is the reply text plus any grounding sources.
type TextResponse struct {
	Text      string
	Citations []Citation
}

// Citation is a grounding source.
type Citation struct {
	Title string
	URI   string
}

type ImageSpec struct {
	Model       string
	Prompt      string
	Size        string
	AspectRatio string
}

type EditSpec struct {
	Model  string
	Prompt string
	Source Blob
}

type VideoSpec struct {
	Model       string
	Prompt      string
	AspectRatio string
	Resolution  string
	StartImage  *Blob
}

// VideoJob is a long-running video generation handle.
type VideoJob struct {
	Name string
	Done bool
	Err  string

	// handle is the backend's own operation value.
	handle any
}

type LiveSpec struct {
	Model             string
	VoiceName         string
	SystemInstruction string
	InputSampleRate   int
}
