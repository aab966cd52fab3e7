package dashboard

import (
	"context"
	"fmt"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"vcnnet/internal/config"
	"vcnnet/internal/gateway"
	"vcnnet/internal/logging"
	"vcnnet/internal/voice"
)

// AudioFactory opens the local capture and playback devices for a live
// session.
type AudioFactory func(ctx context.Context, cfg config.VoiceConfig) (voice.Source, voice.Sink, error)

// CommandAudio streams raw PCM through the configured capture and playback
// commands (arecord/aplay by default).
func CommandAudio(ctx context.Context, cfg config.VoiceConfig) (voice.Source, voice.Sink, error) {
	src, err := voice.StartCommandSource(ctx, cfg.CaptureCommand)
	if err != nil {
		return nil, nil, fmt.Errorf("microphone unavailable: %w", err)
	}
	sink, err := voice.StartCommandSink(ctx, cfg.PlaybackCommand)
	if err != nil {
		_ = src.Close()
		return nil, nil, fmt.Errorf("speaker unavailable: %w", err)
	}
	return src, sink, nil
}

type actionKey struct{}

// withAction labels ctx with the user action that may need a key.
func withAction(ctx context.Context, action string) context.Context {
	return context.WithValue(ctx, actionKey{}, action)
}

func actionFrom(ctx context.Context) string {
	if a, ok := ctx.Value(actionKey{}).(string); ok && a != "" {
		return a
	}
	return "Generative request"
}

// keyReply answers a key selection prompt.
type keyReply struct {
	key string
	err error
}

// runtime holds the handles shared between the bubbletea model copies and
// the goroutines running its commands.
type runtime struct {
	ctx    context.Context
	cancel context.CancelFunc
	events chan tea.Msg
	audio  AudioFactory

	mu         sync.Mutex
	pendingKey chan keyReply
	live       *liveSlot
}

// liveSlot is the handle for one live session. stop is set before the
// session connects so a stop request can abort it at any point.
type liveSlot struct {
	session *voice.Session
	stop    context.CancelFunc
}

func newRuntime(audio AudioFactory) *runtime {
	ctx, cancel := context.WithCancel(context.Background())
	return &runtime{
		ctx:    ctx,
		cancel: cancel,
		events: make(chan tea.Msg, 16),
		audio:  audio,
	}
}

// send queues msg for the program unless the dashboard is shutting down.
func (r *runtime) send(ctx context.Context, msg tea.Msg) bool {
	select {
	case r.events <- msg:
		return true
	case <-ctx.Done():
		return false
	case <-r.ctx.Done():
		return false
	}
}

// waitForEvent delivers the next background event to Update.
func (r *runtime) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-r.events:
			return msg
		case <-r.ctx.Done():
			return nil
		}
	}
}

// SelectKey implements gateway.KeySelector by raising the key modal and
// waiting for the operator.
func (r *runtime) SelectKey(ctx context.Context) (string, error) {
	reply := make(chan keyReply, 1)
	if !r.send(ctx, keyRequestMsg{action: actionFrom(ctx), reply: reply}) {
		return "", gateway.ErrKeySelectionCancelled
	}
	select {
	case rep := <-reply:
		return rep.key, rep.err
	case <-ctx.Done():
		return "", ctx.Err()
	case <-r.ctx.Done():
		return "", gateway.ErrKeySelectionCancelled
	}
}

func (r *runtime) setPendingKey(reply chan keyReply) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.pendingKey != nil {
		r.pendingKey <- keyReply{err: gateway.ErrKeySelectionCancelled}
	}
	r.pendingKey = reply
}

// resolveKey answers the outstanding prompt. An empty key cancels it.
func (r *runtime) resolveKey(key string) bool {
	r.mu.Lock()
	reply := r.pendingKey
	r.pendingKey = nil
	r.mu.Unlock()
	if reply == nil {
		return false
	}
	key = strings.TrimSpace(key)
	if key == "" {
		reply <- keyReply{err: gateway.ErrKeySelectionCancelled}
	} else {
		reply <- keyReply{key: key}
	}
	return true
}

// beginSession registers a live session that has not connected yet.
func (r *runtime) beginSession(stop context.CancelFunc) *liveSlot {
	slot := &liveSlot{stop: stop}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.live = slot
	return slot
}

// attachSession records the connected session. It reports false when the
// slot was ended or replaced in the meantime.
func (r *runtime) attachSession(slot *liveSlot, s *voice.Session) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.live != slot {
		return false
	}
	slot.session = s
	return true
}

func (r *runtime) clearSession(slot *liveSlot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.live == slot {
		r.live = nil
	}
}

// endSession closes the running live session, or aborts one still
// connecting.
func (r *runtime) endSession() bool {
	r.mu.Lock()
	slot := r.live
	r.live = nil
	var s *voice.Session
	if slot != nil {
		s = slot.session
	}
	r.mu.Unlock()
	if slot == nil {
		return false
	}
	logging.Voice("ending live session on request")
	if s != nil {
		s.Close()
	}
	slot.stop()
	return true
}

// shutdown cancels every background command.
func (r *runtime) shutdown() {
	r.endSession()
	r.resolveKey("")
	r.cancel()
}
