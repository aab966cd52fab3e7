package gateway

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"vcnnet/internal/logging"
)

// MediaKind distinguishes generated assets.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// Media is a generated asset, already written to the output directory.
type Media struct {
	Kind     MediaKind
	Data     []byte
	MIMEType string
	Path     string
	Prompt   string
}

// MediaResult is the outcome of a studio request.
type MediaResult struct {
	Media Media
	Err   error
}

// Alert is the user-facing message for a failed request.
func (r MediaResult) Alert() string {
	if r.Err == nil {
		return ""
	}
	return "Generation failed: " + r.Err.Error()
}

// ImageRequest generates a picture from text.
type ImageRequest struct {
	Prompt      string
	Size        string // 1K, 2K or 4K; empty uses the configured default
	AspectRatio string
}

// EditRequest changes an existing picture with an instruction.
type EditRequest struct {
	Prompt     string
	SourcePath string
}

// VideoRequest generates a short clip, optionally animating a start image.
type VideoRequest struct {
	Prompt         string
	AspectRatio    string // 16:9 or 9:16
	Resolution     string
	StartImagePath string
}

// GenerateImage produces one image and saves it.
func (g *Gateway) GenerateImage(ctx context.Context, req ImageRequest) MediaResult {
	log := newRequestLogger("image")
	if strings.TrimSpace(req.Prompt) == "" {
		return MediaResult{Err: fmt.Errorf("prompt is required")}
	}
	backend, err := g.mediaClient(ctx)
	if err != nil {
		log.Warn("image generation blocked: %v", err)
		return MediaResult{Err: err}
	}

	studio := g.config().Studio
	spec := ImageSpec{
		Model:       g.config().Gemini.ImageModel,
		Prompt:      req.Prompt,
		Size:        firstNonEmpty(req.Size, studio.ImageSize),
		AspectRatio: firstNonEmpty(req.AspectRatio, studio.AspectRatio),
	}

	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	blob, err := backend.GenerateImage(ctx, spec)
	if err != nil {
		log.Error("image generation failed: %v", err)
		return MediaResult{Err: err}
	}
	return g.finish(log, MediaImage, req.Prompt, blob)
}

// EditImage applies req.Prompt to the image at req.SourcePath and saves the result.
func (g *Gateway) EditImage(ctx context.Context, req EditRequest) MediaResult {
	log := newRequestLogger("edit")
	if strings.TrimSpace(req.Prompt) == "" {
		return MediaResult{Err: fmt.Errorf("prompt is required")}
	}
	source, err := readBlob(req.SourcePath)
	if err != nil {
		return MediaResult{Err: err}
	}
	backend, err := g.mediaClient(ctx)
	if err != nil {
		log.Warn("image edit blocked: %v", err)
		return MediaResult{Err: err}
	}

	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	blob, err := backend.EditImage(ctx, EditSpec{
		Model:  g.config().Gemini.EditModel,
		Prompt: req.Prompt,
		Source: source,
	})
	if err != nil {
		log.Error("image edit failed: %v", err)
		return MediaResult{Err: err}
	}
	return g.finish(log, MediaImage, req.Prompt, blob)
}

// GenerateVideo submits a job, polls it on the configured interval until
// done, then downloads and saves the clip. Only ctx bounds the wait.
func (g *Gateway) GenerateVideo(ctx context.Context, req VideoRequest) MediaResult {
	log := newRequestLogger("video")
	if strings.TrimSpace(req.Prompt) == "" {
		return MediaResult{Err: fmt.Errorf("prompt is required")}
	}

	var start *Blob
	if req.StartImagePath != "" {
		b, err := readBlob(req.StartImagePath)
		if err != nil {
			return MediaResult{Err: err}
		}
		start = &b
	}

	backend, err := g.mediaClient(ctx)
	if err != nil {
		log.Warn("video generation blocked: %v", err)
		return MediaResult{Err: err}
	}

	cfg := g.config()
	job, err := backend.StartVideo(ctx, VideoSpec{
		Model:       cfg.Gemini.VideoModel,
		Prompt:      req.Prompt,
		AspectRatio: firstNonEmpty(req.AspectRatio, cfg.Studio.VideoAspect),
		Resolution:  firstNonEmpty(req.Resolution, cfg.Studio.VideoQuality),
		StartImage:  start,
	})
	if err != nil {
		log.Error("video submission failed: %v", err)
		return MediaResult{Err: err}
	}
	log.Info("video job %s submitted", job.Name)

	interval := cfg.GetPollInterval()
	polls := 0
	for !job.Done {
		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			log.Warn("video job %s abandoned after %d polls: %v", job.Name, polls, ctx.Err())
			return MediaResult{Err: ctx.Err()}
		case <-timer.C:
		}

		job, err = backend.PollVideo(ctx, job)
		if err != nil {
			log.Error("video poll failed: %v", err)
			return MediaResult{Err: err}
		}
		polls++
		log.Debug("video job %s poll %d done=%v", job.Name, polls, job.Done)
	}
	if job.Err != "" {
		log.Error("video job %s failed: %s", job.Name, job.Err)
		return MediaResult{Err: fmt.Errorf("video generation failed: %s", job.Err)}
	}

	blob, err := backend.DownloadVideo(ctx, job)
	if err != nil {
		log.Error("video download failed: %v", err)
		return MediaResult{Err: err}
	}
	return g.finish(log, MediaVideo, req.Prompt, blob)
}

func (g *Gateway) mediaClient(ctx context.Context) (Backend, error) {
	if err := g.ensureKey(ctx); err != nil {
		return nil, err
	}
	return g.client(ctx)
}

func (g *Gateway) finish(log *logging.RequestLogger, kind MediaKind, prompt string, blob Blob) MediaResult {
	if len(blob.Data) == 0 {
		return MediaResult{Err: ErrNoMedia}
	}
	if blob.MIMEType == "" {
		blob.MIMEType = http.DetectContentType(blob.Data)
	}
	path, err := g.save(kind, blob)
	if err != nil {
		log.Error("failed to save %s: %v", kind, err)
		return MediaResult{Err: err}
	}
	log.Info("%s saved to %s (%d bytes)", kind, path, len(blob.Data))
	return MediaResult{Media: Media{
		Kind:     kind,
		Data:     blob.Data,
		MIMEType: blob.MIMEType,
		Path:     path,
		Prompt:   prompt,
	}}
}

// save writes blob under the output directory as <kind>-<time>-<id><ext>.
func (g *Gateway) save(kind MediaKind, blob Blob) (string, error) {
	dir := g.config().Studio.OutputDir
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	name := fmt.Sprintf("%s-%s-%s%s", kind, g.now().Format("20060102-150405"), uuid.NewString()[:8], extensionFor(blob.MIMEType))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, blob.Data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

var preferredExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
	"video/mp4":  ".mp4",
}

func extensionFor(mimeType string) string {
	base, _, _ := mime.ParseMediaType(mimeType)
	if ext, ok := preferredExtensions[base]; ok {
		return ext
	}
	if exts, err := mime.ExtensionsByType(base); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return ".bin"
}

func readBlob(path string) (Blob, error) {
	if path == "" {
		return Blob{}, fmt.Errorf("source image path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Blob{}, fmt.Errorf("failed to read source image: %w", err)
	}
	mimeType := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}
	return Blob{Data: data, MIMEType: mimeType}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
