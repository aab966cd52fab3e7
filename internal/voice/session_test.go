package voice

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type fakeConn struct {
	msgs chan Message

	mu     sync.Mutex
	sent   [][]byte
	closed chan struct{}
	once   sync.Once
}

func newFakeConn() *fakeConn {
	return &fakeConn{msgs: make(chan Message, 16), closed: make(chan struct{})}
}

func (c *fakeConn) SendAudio(ctx context.Context, pcm []byte) error {
	select {
	case <-c.closed:
		return ErrSessionClosed
	default:
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = append(c.sent, append([]byte(nil), pcm...))
	return nil
}

func (c *fakeConn) Receive(ctx context.Context) (Message, error) {
	select {
	case <-c.closed:
		return Message{}, ErrSessionClosed
	case <-ctx.Done():
		return Message{}, ctx.Err()
	case m, ok := <-c.msgs:
		if !ok {
			return Message{}, io.EOF
		}
		return m, nil
	}
}

func (c *fakeConn) Close() error {
	c.once.Do(func() { close(c.closed) })
	return nil
}

func (c *fakeConn) sentFrames() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.sent)
}

type recordingSink struct {
	mu     sync.Mutex
	writes [][]float32
	closed bool
}

func (s *recordingSink) Write(samples []float32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes = append(s.writes, samples)
	return nil
}

func (s *recordingSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.writes)
}

type statusLog struct {
	mu      sync.Mutex
	entries []string
}

func (l *statusLog) add(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, s)
}

func (l *statusLog) has(s string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.entries {
		if e == s {
			return true
		}
	}
	return false
}

// blockingSource never yields samples until closed, like an idle microphone.
type blockingSource struct {
	done chan struct{}
	once sync.Once
}

func newBlockingSource() *blockingSource { return &blockingSource{done: make(chan struct{})} }

func (s *blockingSource) Read(p []float32) (int, error) {
	<-s.done
	return 0, io.ErrClosedPipe
}

func (s *blockingSource) Close() error {
	s.once.Do(func() { close(s.done) })
	return nil
}

func runSession(t *testing.T, s *Session) <-chan error {
	t.Helper()
	errc := make(chan error, 1)
	go func() { errc <- s.Run(context.Background()) }()
	return errc
}

func TestSessionSendsCapturedFrames(t *testing.T) {
	defer goleak.VerifyNone(t)

	pcm := EncodePCM16(make([]float32, 10))
	conn := newFakeConn()
	sink := &recordingSink{}
	s := NewSession(conn, NewReaderSource(bytes.NewReader(pcm)), sink, Options{FrameSamples: 4})

	errc := runSession(t, s)
	assert.Eventually(t, func() bool { return conn.sentFrames() == 3 }, time.Second, 5*time.Millisecond)

	s.Close()
	require.NoError(t, <-errc)
	assert.True(t, sink.closed)
}

func TestSessionPlaysReceivedAudioInOrder(t *testing.T) {
	defer goleak.VerifyNone(t)

	conn := newFakeConn()
	sink := &recordingSink{}
	s := NewSession(conn, newBlockingSource(), sink, Options{})

	errc := runSession(t, s)
	for i := 1; i <= 3; i++ {
		samples := make([]float32, 120) // 5ms at 24kHz
		samples[0] = float32(i) / 10
		conn.msgs <- Message{Audio: EncodePCM16(samples)}
	}

	assert.Eventually(t, func() bool { return sink.count() == 3 }, time.Second, 5*time.Millisecond)
	sink.mu.Lock()
	for i, w := range sink.writes {
		assert.InDelta(t, float32(i+1)/10, w[0], 0.001, "buffer %d out of order", i)
	}
	sink.mu.Unlock()

	close(conn.msgs)
	require.NoError(t, <-errc)
}

func TestSessionInterruptDropsQueue(t *testing.T) {
	defer goleak.VerifyNone(t)

	conn := newFakeConn()
	status := &statusLog{}
	s := NewSession(conn, newBlockingSource(), &recordingSink{}, Options{OnStatus: status.add})
	errc := runSession(t, s)

	// Ten seconds of audio stays queued long enough to be interrupted.
	long := EncodePCM16(make([]float32, 10*OutputSampleRate))
	conn.msgs <- Message{Audio: long}
	conn.msgs <- Message{Audio: long}
	assert.Eventually(t, func() bool { return s.Scheduler().Cursor() > 0 }, time.Second, 5*time.Millisecond)

	conn.msgs <- Message{Interrupted: true}
	assert.Eventually(t, func() bool { return status.has("Interrupted") }, time.Second, 5*time.Millisecond)
	assert.Empty(t, s.Scheduler().Active())
	assert.Zero(t, s.Scheduler().Cursor())

	s.Close()
	require.NoError(t, <-errc)
}

type failingConn struct{ *fakeConn }

func (c failingConn) Receive(ctx context.Context) (Message, error) {
	return Message{}, errors.New("socket reset")
}

func TestSessionReportsServiceFailure(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := NewSession(failingConn{newFakeConn()}, newBlockingSource(), &recordingSink{}, Options{})
	err := s.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "socket reset")
}

func TestRunAfterCloseReturnsClosed(t *testing.T) {
	s := NewSession(newFakeConn(), newBlockingSource(), &recordingSink{}, Options{})
	s.Close()
	assert.ErrorIs(t, s.Run(context.Background()), ErrSessionClosed)
}
