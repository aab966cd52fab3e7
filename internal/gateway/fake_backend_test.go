package gateway

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"vcnnet/internal/config"
	"vcnnet/internal/voice"
)

var errNetwork = errors.New("dial tcp: network unreachable")

// fakeBackend records requests and replays canned responses.
type fakeBackend struct {
	mu sync.Mutex

	textResp TextResponse
	textErr  error
	textReqs []TextRequest

	image     Blob
	imageErr  error
	imageReqs []ImageSpec
	editReqs  []EditSpec

	pollsUntilDone int
	polls          int
	videoReq       VideoSpec
	video          Blob
	jobErr         string

	liveReq LiveSpec
	closed  bool
}

func (f *fakeBackend) GenerateText(ctx context.Context, req TextRequest) (TextResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.textReqs = append(f.textReqs, req)
	return f.textResp, f.textErr
}

func (f *fakeBackend) GenerateImage(ctx context.Context, req ImageSpec) (Blob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.imageReqs = append(f.imageReqs, req)
	return f.image, f.imageErr
}

func (f *fakeBackend) EditImage(ctx context.Context, req EditSpec) (Blob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.editReqs = append(f.editReqs, req)
	return f.image, f.imageErr
}

func (f *fakeBackend) StartVideo(ctx context.Context, req VideoSpec) (VideoJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.videoReq = req
	return VideoJob{Name: "operations/vid-1", Done: f.pollsUntilDone == 0}, nil
}

func (f *fakeBackend) PollVideo(ctx context.Context, job VideoJob) (VideoJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.polls++
	job.Done = f.polls >= f.pollsUntilDone
	if job.Done {
		job.Err = f.jobErr
	}
	return job, nil
}

func (f *fakeBackend) DownloadVideo(ctx context.Context, job VideoJob) (Blob, error) {
	return f.video, nil
}

func (f *fakeBackend) ConnectLive(ctx context.Context, req LiveSpec) (voice.Conn, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.liveReq = req
	return nopConn{}, nil
}

func (f *fakeBackend) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

type nopConn struct{}

func (nopConn) SendAudio(context.Context, []byte) error { return nil }
func (nopConn) Receive(context.Context) (voice.Message, error) {
	return voice.Message{}, voice.ErrSessionClosed
}
func (nopConn) Close() error { return nil }

// testGateway builds a gateway over fb with a temp output dir and fast polling.
func testGateway(t *testing.T, fb *fakeBackend, apiKey string, opts ...Option) (*Gateway, *config.Config) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Gemini.APIKey = apiKey
	cfg.Studio.OutputDir = t.TempDir()
	cfg.Studio.PollInterval = "1ms"

	factory := func(ctx context.Context, key string) (Backend, error) {
		if key == "" {
			return nil, ErrNoAPIKey
		}
		return fb, nil
	}
	all := append([]Option{
		WithBackendFactory(factory),
		WithClock(func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }),
	}, opts...)
	g := New(cfg, all...)
	require.NotNil(t, g)
	return g, cfg
}
