package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestWatchReloadsOnWrite(t *testing.T) {
	defer goleak.VerifyNone(t)
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, DefaultConfig().Save(path))

	ctx, cancel := context.WithCancel(context.Background())
	changes := make(chan *Config, 4)
	errs := make(chan error, 4)

	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(cfg *Config, err error) {
			if err != nil {
				errs <- err
				return
			}
			changes <- cfg
		})
	}()

	// Give the watcher a moment to register the directory.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  theme: dark\n"), 0644))

	select {
	case cfg := <-changes:
		assert.Equal(t, "dark", cfg.UI.Theme)
	case err := <-errs:
		t.Fatalf("unexpected reload error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}

	require.NoError(t, os.WriteFile(path, []byte("ui:\n  theme: neon\n"), 0644))
	select {
	case err := <-errs:
		assert.Error(t, err)
	case <-changes:
		t.Fatal("invalid config must not be delivered")
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for validation error")
	}

	cancel()
	require.NoError(t, <-done)
}

func TestWatchMissingDirectory(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "missing", "config.yaml"), func(*Config, error) {})
	assert.Error(t, err)
}
