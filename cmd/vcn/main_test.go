package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"vcnnet/internal/config"
	"vcnnet/internal/gateway"
	"vcnnet/internal/voice"
)

type stubBackend struct {
	reply    string
	requests []gateway.TextRequest
}

func (s *stubBackend) GenerateText(ctx context.Context, req gateway.TextRequest) (gateway.TextResponse, error) {
	s.requests = append(s.requests, req)
	return gateway.TextResponse{
		Text:      s.reply,
		Citations: []gateway.Citation{{Title: "VCN Charter", URI: "https://vcn.example/charter"}},
	}, nil
}

func (s *stubBackend) GenerateImage(ctx context.Context, req gateway.ImageSpec) (gateway.Blob, error) {
	return gateway.Blob{Data: []byte("\x89PNG stub"), MIMEType: "image/png"}, nil
}

func (s *stubBackend) EditImage(ctx context.Context, req gateway.EditSpec) (gateway.Blob, error) {
	return gateway.Blob{Data: []byte("\x89PNG stub"), MIMEType: "image/png"}, nil
}

func (s *stubBackend) StartVideo(ctx context.Context, req gateway.VideoSpec) (gateway.VideoJob, error) {
	return gateway.VideoJob{Name: "operations/stub", Done: true}, nil
}

func (s *stubBackend) PollVideo(ctx context.Context, job gateway.VideoJob) (gateway.VideoJob, error) {
	return job, nil
}

func (s *stubBackend) DownloadVideo(ctx context.Context, job gateway.VideoJob) (gateway.Blob, error) {
	return gateway.Blob{Data: []byte("mp4"), MIMEType: "video/mp4"}, nil
}

func (s *stubBackend) ConnectLive(ctx context.Context, req gateway.LiveSpec) (voice.Conn, error) {
	return nil, gateway.ErrSessionClosed
}

func (s *stubBackend) Close() error { return nil }

// execute runs the root command in a fresh temp workspace and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(t)

	ws := t.TempDir()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(append([]string{"--workspace", ws, "--theme", "light"}, args...))

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func resetFlags(t *testing.T) {
	t.Helper()
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "")

	verbose, workspace, configPath, timeout = false, "", "", 0
	cfg, logger = nil, nil
	ledgerToggle = nil
	chatSearch, chatMaps, chatThink = false, false, false
	configForce = false

	reset := func(f *pflag.Flag) { f.Changed = false }
	rootCmd.PersistentFlags().VisitAll(reset)
	for _, c := range rootCmd.Commands() {
		c.Flags().VisitAll(reset)
		for _, sub := range c.Commands() {
			sub.Flags().VisitAll(reset)
		}
	}
}

func stubGateway(t *testing.T, sb *stubBackend, apiKey string, opts ...gateway.Option) {
	t.Helper()
	orig := newGateway
	newGateway = func() *gateway.Gateway {
		c := *cfg
		c.Gemini.APIKey = apiKey
		all := append([]gateway.Option{
			gateway.WithBackendFactory(func(ctx context.Context, key string) (gateway.Backend, error) {
				return sb, nil
			}),
		}, opts...)
		return gateway.New(&c, all...)
	}
	t.Cleanup(func() { newGateway = orig })
}

func TestJoinArgs(t *testing.T) {
	assert.Equal(t, "one two three", joinArgs([]string{"one", "two", "three"}))
	assert.Equal(t, "", joinArgs(nil))
}

func TestRedact(t *testing.T) {
	assert.Equal(t, "****", redact("short"))
	assert.Equal(t, "AIza****wxyz", redact("AIzaSyD-0123456789wxyz"))
}

func TestLedgerToggle(t *testing.T) {
	out, err := execute(t, "ledger")
	require.NoError(t, err)
	assert.Contains(t, out, "Contribution Ledger")
	assert.Contains(t, out, "3 of 4 artifacts verified")

	out, err = execute(t, "ledger", "--toggle", "a3")
	require.NoError(t, err)
	assert.Contains(t, out, "4 of 4 artifacts verified")
}

func TestLedgerUnknownArtifact(t *testing.T) {
	_, err := execute(t, "ledger", "--toggle", "zz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown artifact "zz"`)
}

func TestDocs(t *testing.T) {
	out, err := execute(t, "docs")
	require.NoError(t, err)
	assert.Contains(t, out, "concepts")
	assert.Contains(t, out, "glossary")

	out, err = execute(t, "docs", "concepts")
	require.NoError(t, err)
	assert.Contains(t, out, "Creation")

	_, err = execute(t, "docs", "recipes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "valid: concepts")
}

func TestConfigInitAndShow(t *testing.T) {
	resetFlags(t)
	ws := t.TempDir()
	run := func(args ...string) (string, error) {
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetErr(&bytes.Buffer{})
		rootCmd.SetArgs(append([]string{"--workspace", ws}, args...))
		err := rootCmd.ExecuteContext(context.Background())
		return out.String(), err
	}

	out, err := run("config", "init")
	require.NoError(t, err)
	path := config.DefaultConfigPath(ws)
	assert.Contains(t, out, path)
	assert.FileExists(t, path)

	configPath = ""
	_, err = run("config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	configPath = ""
	out, err = run("--api-key", "AIzaSyD-0123456789wxyz", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "AIza****wxyz")
	assert.NotContains(t, out, "0123456789")
	assert.Contains(t, out, "voice_name: Zephyr")
}

func TestInvalidConfigIsRejected(t *testing.T) {
	resetFlags(t)
	ws := t.TempDir()
	path := config.DefaultConfigPath(ws)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("studio:\n  image_size: 8K\n"), 0o600))

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"--workspace", ws, "ledger"})
	err := rootCmd.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid image size")
}

func TestChatSingleMessage(t *testing.T) {
	sb := &stubBackend{reply: "Two pilots need attention."}
	stubGateway(t, sb, "key")

	out, err := execute(t, "chat", "--search", "which", "pilots?")
	require.NoError(t, err)
	assert.Contains(t, out, "attention")
	assert.Contains(t, out, "[1] VCN Charter https://vcn.example/charter")

	require.Len(t, sb.requests, 1)
	assert.Equal(t, "which pilots?", sb.requests[0].Prompt)
	assert.True(t, sb.requests[0].Search)
}

func TestChatReadsConversationFromStdin(t *testing.T) {
	sb := &stubBackend{reply: "Noted."}
	stubGateway(t, sb, "key")

	resetFlags(t)
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetIn(strings.NewReader("first\n\nsecond\n"))
	rootCmd.SetArgs([]string{"--workspace", t.TempDir(), "chat"})
	require.NoError(t, rootCmd.ExecuteContext(context.Background()))

	require.Len(t, sb.requests, 2)
	assert.Empty(t, sb.requests[0].History)
	assert.Equal(t, []gateway.Turn{
		{Role: "user", Text: "first"},
		{Role: "model", Text: "Noted."},
	}, sb.requests[1].History)
}

func TestAuditPrintsAnalysis(t *testing.T) {
	sb := &stubBackend{reply: "Throughput is stable."}
	stubGateway(t, sb, "key")

	out, err := execute(t, "audit")
	require.NoError(t, err)
	assert.Contains(t, out, "stable")
}

func TestImageSavesUnderWorkspace(t *testing.T) {
	stubGateway(t, &stubBackend{}, "key")

	out, err := execute(t, "image", "--size", "2K", "a", "lighthouse")
	require.NoError(t, err)
	assert.Contains(t, out, "image saved to")
	assert.Contains(t, out, filepath.Join(workspace, ".vcn", "media"))
}

func TestImageKeySelectionCancelled(t *testing.T) {
	cancelled := gateway.KeySelectorFunc(func(ctx context.Context) (string, error) {
		return "", gateway.ErrKeySelectionCancelled
	})
	stubGateway(t, &stubBackend{}, "", gateway.WithKeySelector(cancelled))

	_, err := execute(t, "image", "a", "lighthouse")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cancelled")
}

func TestPromptKeySelectorReadsPipedInput(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	_, err = w.WriteString("  AIza-piped  \n")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	var prompt bytes.Buffer
	sel := &promptKeySelector{in: r, out: &prompt}
	key, err := sel.SelectKey(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "AIza-piped", key)
	assert.Contains(t, prompt.String(), "No Gemini API key configured")
}

func TestPromptKeySelectorEmptyCancels(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	require.NoError(t, w.Close())

	sel := &promptKeySelector{in: r, out: &bytes.Buffer{}}
	_, err = sel.SelectKey(context.Background())
	assert.ErrorIs(t, err, gateway.ErrKeySelectionCancelled)
}

func TestLoggerIsNopForDashboard(t *testing.T) {
	logger = nil
	resetFlags(t)
	workspace = t.TempDir()
	require.NoError(t, setup(rootCmd))
	require.NotNil(t, logger)
	assert.False(t, logger.Core().Enabled(zap.ErrorLevel))
}
