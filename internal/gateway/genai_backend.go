package gateway

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"

	"vcnnet/internal/logging"
	"vcnnet/internal/voice"
)

// =============================================================================
// GOOGLE GENAI BACKEND
// =============================================================================

// GenAIBackend talks to the Gemini API through the official SDK.
type GenAIBackend struct {
	client *genai.Client
}

// NewGenAIBackend creates a client for apiKey.
func NewGenAIBackend(ctx context.Context, apiKey string) (Backend, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &GenAIBackend{client: client}, nil
}

// GenerateText runs one generateContent call with optional grounding tools.
func (b *GenAIBackend) GenerateText(ctx context.Context, req TextRequest) (TextResponse, error) {
	contents := textContents(req)

	cfg := &genai.GenerateContentConfig{}
	if req.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if req.Search {
		cfg.Tools = append(cfg.Tools, &genai.Tool{GoogleSearch: &genai.GoogleSearch{}})
	}
	if req.Maps {
		cfg.Tools = append(cfg.Tools, &genai.Tool{GoogleMaps: &genai.GoogleMaps{}})
		if req.Location != nil {
			cfg.ToolConfig = &genai.ToolConfig{
				RetrievalConfig: &genai.RetrievalConfig{
					LatLng: &genai.LatLng{
						Latitude:  genai.Ptr(req.Location.Latitude),
						Longitude: genai.Ptr(req.Location.Longitude),
					},
				},
			}
		}
	}
	if req.ThinkingBudget > 0 {
		cfg.ThinkingConfig = &genai.ThinkingConfig{ThinkingBudget: genai.Ptr(req.ThinkingBudget)}
	}

	resp, err := b.client.Models.GenerateContent(ctx, req.Model, contents, cfg)
	if err != nil {
		return TextResponse{}, fmt.Errorf("generate content (%s): %w", req.Model, err)
	}
	return TextResponse{Text: resp.Text(), Citations: citationsFrom(resp)}, nil
}

// textContents is the conversation history followed by the prompt.
func textContents(req TextRequest) []*genai.Content {
	contents := make([]*genai.Content, 0, len(req.History)+1)
	for _, t := range req.History {
		var role genai.Role = genai.RoleUser
		if t.Role == "model" {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(t.Text, role))
	}
	return append(contents, genai.NewContentFromText(req.Prompt, genai.RoleUser))
}

func citationsFrom(resp *genai.GenerateContentResponse) []Citation {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].GroundingMetadata == nil {
		return nil
	}
	var out []Citation
	seen := make(map[string]bool)
	for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
		if chunk == nil {
			continue
		}
		var c Citation
		switch {
		case chunk.Web != nil:
			c = Citation{Title: chunk.Web.Title, URI: chunk.Web.URI}
		case chunk.Maps != nil:
			c = Citation{Title: chunk.Maps.Title, URI: chunk.Maps.URI}
		default:
			continue
		}
		if c.URI == "" || seen[c.URI] {
			continue
		}
		seen[c.URI] = true
		if c.Title == "" {
			c.Title = c.URI
		}
		out = append(out, c)
	}
	return out
}

// GenerateImage asks an image model for a single picture.
func (b *GenAIBackend) GenerateImage(ctx context.Context, req ImageSpec) (Blob, error) {
	cfg := &genai.GenerateContentConfig{
		ImageConfig: &genai.ImageConfig{
			AspectRatio: req.AspectRatio,
			ImageSize:   req.Size,
		},
	}
	resp, err := b.client.Models.GenerateContent(ctx, req.Model, genai.Text(req.Prompt), cfg)
	if err != nil {
		return Blob{}, fmt.Errorf("generate image (%s): %w", req.Model, err)
	}
	return firstInlineData(resp)
}

// EditImage sends the source image with an instruction.
func (b *GenAIBackend) EditImage(ctx context.Context, req EditSpec) (Blob, error) {
	parts := []*genai.Part{
		genai.NewPartFromBytes(req.Source.Data, req.Source.MIMEType),
		genai.NewPartFromText(req.Prompt),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := b.client.Models.GenerateContent(ctx, req.Model, contents, nil)
	if err != nil {
		return Blob{}, fmt.Errorf("edit image (%s): %w", req.Model, err)
	}
	return firstInlineData(resp)
}

func firstInlineData(resp *genai.GenerateContentResponse) (Blob, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return Blob{}, ErrNoMedia
	}
	for _, p := range resp.Candidates[0].Content.Parts {
		if p != nil && p.InlineData != nil && len(p.InlineData.Data) > 0 {
			return Blob{Data: p.InlineData.Data, MIMEType: p.InlineData.MIMEType}, nil
		}
	}
	return Blob{}, ErrNoMedia
}

// StartVideo submits a video generation job.
func (b *GenAIBackend) StartVideo(ctx context.Context, req VideoSpec) (VideoJob, error) {
	var image *genai.Image
	if req.StartImage != nil {
		image = &genai.Image{ImageBytes: req.StartImage.Data, MIMEType: req.StartImage.MIMEType}
	}
	cfg := &genai.GenerateVideosConfig{
		NumberOfVideos: 1,
		AspectRatio:    req.AspectRatio,
		Resolution:     req.Resolution,
	}
	op, err := b.client.Models.GenerateVideos(ctx, req.Model, req.Prompt, image, cfg)
	if err != nil {
		return VideoJob{}, fmt.Errorf("start video (%s): %w", req.Model, err)
	}
	return videoJobFrom(op), nil
}

// PollVideo refreshes a job's status.
func (b *GenAIBackend) PollVideo(ctx context.Context, job VideoJob) (VideoJob, error) {
	op, ok := job.handle.(*genai.GenerateVideosOperation)
	if !ok || op == nil {
		return job, fmt.Errorf("video job %q has no operation handle", job.Name)
	}
	next, err := b.client.Operations.GetVideosOperation(ctx, op, nil)
	if err != nil {
		return job, fmt.Errorf("poll video %s: %w", job.Name, err)
	}
	return videoJobFrom(next), nil
}

func videoJobFrom(op *genai.GenerateVideosOperation) VideoJob {
	job := VideoJob{Name: op.Name, Done: op.Done, handle: op}
	if op.Error != nil {
		job.Err = fmt.Sprintf("%v", op.Error["message"])
	}
	return job
}

// DownloadVideo fetches the first generated video of a finished job.
func (b *GenAIBackend) DownloadVideo(ctx context.Context, job VideoJob) (Blob, error) {
	op, ok := job.handle.(*genai.GenerateVideosOperation)
	if !ok || op == nil || op.Response == nil || len(op.Response.GeneratedVideos) == 0 {
		return Blob{}, ErrNoMedia
	}
	generated := op.Response.GeneratedVideos[0]
	if generated == nil || generated.Video == nil {
		return Blob{}, ErrNoMedia
	}

	mimeType := generated.Video.MIMEType
	if mimeType == "" {
		mimeType = "video/mp4"
	}
	if len(generated.Video.VideoBytes) > 0 {
		return Blob{Data: generated.Video.VideoBytes, MIMEType: mimeType}, nil
	}

	data, err := b.client.Files.Download(ctx, genai.NewDownloadURIFromGeneratedVideo(generated), nil)
	if err != nil {
		return Blob{}, fmt.Errorf("download video: %w", err)
	}
	return Blob{Data: data, MIMEType: mimeType}, nil
}

// ConnectLive opens a native-audio live session.
func (b *GenAIBackend) ConnectLive(ctx context.Context, req LiveSpec) (voice.Conn, error) {
	cfg := &genai.LiveConnectConfig{
		ResponseModalities: []genai.Modality{genai.ModalityAudio},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: req.VoiceName},
			},
		},
	}
	if req.SystemInstruction != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}

	session, err := b.client.Live.Connect(ctx, req.Model, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect live (%s): %w", req.Model, err)
	}
	rate := req.InputSampleRate
	if rate <= 0 {
		rate = voice.InputSampleRate
	}
	return &liveConn{session: session, mimeType: fmt.Sprintf("audio/pcm;rate=%d", rate)}, nil
}

// Close is a no-op; the SDK client holds no resources between calls.
func (b *GenAIBackend) Close() error {
	return nil
}

// liveConn adapts a genai live session to voice.Conn.
type liveConn struct {
	session  *genai.Session
	mimeType string

	mu     sync.Mutex
	closed bool
}

func (c *liveConn) SendAudio(ctx context.Context, pcm []byte) error {
	if c.isClosed() {
		return voice.ErrSessionClosed
	}
	err := c.session.SendRealtimeInput(genai.LiveRealtimeInput{
		Audio: &genai.Blob{Data: pcm, MIMEType: c.mimeType},
	})
	if err != nil && c.isClosed() {
		return voice.ErrSessionClosed
	}
	return err
}

func (c *liveConn) Receive(ctx context.Context) (voice.Message, error) {
	msg, err := c.session.Receive()
	if err != nil {
		if c.isClosed() || isNormalClosure(err) {
			return voice.Message{}, voice.ErrSessionClosed
		}
		return voice.Message{}, err
	}

	var out voice.Message
	if sc := msg.ServerContent; sc != nil {
		out.Interrupted = sc.Interrupted
		out.TurnComplete = sc.TurnComplete
		if sc.ModelTurn != nil {
			for _, p := range sc.ModelTurn.Parts {
				if p != nil && p.InlineData != nil {
					out.Audio = append(out.Audio, p.InlineData.Data...)
				}
			}
		}
	}
	return out, nil
}

func (c *liveConn) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	logging.VoiceDebug("closing live session")
	return c.session.Close()
}

func (c *liveConn) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func isNormalClosure(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "1000") || strings.Contains(msg, "use of closed network connection")
}
