package voice

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"vcnnet/internal/logging"
)

// ErrSessionClosed is returned by a Conn once the service or the caller
// has closed the session.
var ErrSessionClosed = errors.New("live session closed")

// Message is one server event from the live service.
type Message struct {
	// Audio is s16le PCM at the output sample rate.
	Audio        []byte
	Interrupted  bool
	TurnComplete bool
}

// Conn is an open bidirectional live session.
type Conn interface {
	SendAudio(ctx context.Context, pcm []byte) error
	Receive(ctx context.Context) (Message, error)
	Close() error
}

// Options configures a Session. Zero values fall back to the live
// service's rates and a 4096-sample capture frame.
type Options struct {
	InputSampleRate  int
	OutputSampleRate int
	FrameSamples     int
	Clock            Clock
	// OnStatus receives human-readable status changes.
	OnStatus func(string)
}

// Session pumps microphone audio to a Conn and plays what comes back.
type Session struct {
	conn  Conn
	src   Source
	sink  Sink
	opts  Options
	sched *Scheduler

	wake chan struct{}

	mu     sync.Mutex
	cancel context.CancelFunc
	closed bool
}

// NewSession wires a connection to local devices. The session owns src,
// sink and conn and closes all three when Run returns.
func NewSession(conn Conn, src Source, sink Sink, opts Options) *Session {
	if opts.InputSampleRate <= 0 {
		opts.InputSampleRate = InputSampleRate
	}
	if opts.OutputSampleRate <= 0 {
		opts.OutputSampleRate = OutputSampleRate
	}
	if opts.FrameSamples <= 0 {
		opts.FrameSamples = 4096
	}
	if opts.Clock == nil {
		opts.Clock = NewClock()
	}
	return &Session{
		conn:  conn,
		src:   src,
		sink:  sink,
		opts:  opts,
		sched: NewScheduler(),
		wake:  make(chan struct{}, 1),
	}
}

// Scheduler exposes the playback timeline.
func (s *Session) Scheduler() *Scheduler { return s.sched }

// Run blocks until the session ends. Closing by the caller, cancellation of
// ctx and a service-side close all return nil.
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		_ = s.src.Close()
		_ = s.sink.Close()
		_ = s.conn.Close()
		return ErrSessionClosed
	}
	s.cancel = cancel
	s.mu.Unlock()

	s.status("Listening")
	logging.Voice("live session started (in %d Hz, out %d Hz, frame %d)",
		s.opts.InputSampleRate, s.opts.OutputSampleRate, s.opts.FrameSamples)

	g, gctx := errgroup.WithContext(ctx)

	// Unblock device reads and service receives once anything ends the session.
	g.Go(func() error {
		<-gctx.Done()
		_ = s.src.Close()
		_ = s.conn.Close()
		return nil
	})
	g.Go(func() error { return s.capture(gctx) })
	g.Go(func() error {
		defer cancel()
		return s.receive(gctx)
	})
	g.Go(func() error { return s.playback(gctx) })

	err := g.Wait()
	s.sched.Interrupt()
	if cerr := s.sink.Close(); cerr != nil {
		logging.VoiceWarn("failed to close playback sink: %v", cerr)
	}
	s.status("Session closed")

	if err != nil {
		logging.VoiceError("live session failed: %v", err)
		return err
	}
	logging.Voice("live session ended")
	return nil
}

// Close ends the session and discards queued playback.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	cancel := s.cancel
	s.mu.Unlock()

	s.sched.Interrupt()
	s.notify()
	if cancel != nil {
		cancel()
	}
}

func (s *Session) capture(ctx context.Context) error {
	frame := make([]float32, s.opts.FrameSamples)
	for {
		n, err := s.src.Read(frame)
		if n > 0 {
			if serr := s.conn.SendAudio(ctx, EncodePCM16(frame[:n])); serr != nil {
				if ctx.Err() != nil || errors.Is(serr, ErrSessionClosed) {
					return nil
				}
				return fmt.Errorf("failed to send audio: %w", serr)
			}
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if errors.Is(err, io.EOF) {
				logging.VoiceDebug("capture source exhausted")
				return nil
			}
			return fmt.Errorf("capture failed: %w", err)
		}
	}
}

func (s *Session) receive(ctx context.Context) error {
	for {
		msg, err := s.conn.Receive(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, ErrSessionClosed) || errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("receive failed: %w", err)
		}

		if msg.Interrupted {
			dropped := s.sched.Interrupt()
			logging.VoiceDebug("interrupted: dropped %d queued buffers", len(dropped))
			s.status("Interrupted")
			s.notify()
		}
		if len(msg.Audio) > 0 {
			b := Buffer{Samples: DecodePCM16(msg.Audio), Rate: s.opts.OutputSampleRate}
			item := s.sched.Schedule(b, s.opts.Clock.Now())
			logging.VoiceDebug("scheduled buffer %d at %v for %v", item.ID, item.Start, item.Duration)
			s.status("Speaking")
			s.notify()
		}
		if msg.TurnComplete {
			s.status("Listening")
		}
	}
}

func (s *Session) playback(ctx context.Context) error {
	for {
		active := s.sched.Active()
		if len(active) == 0 {
			select {
			case <-ctx.Done():
				return nil
			case <-s.wake:
				continue
			}
		}

		next := active[0]
		if wait := next.Start - s.opts.Clock.Now(); wait > 0 {
			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil
			case <-s.wake:
				timer.Stop()
				continue
			case <-timer.C:
			}
		}

		if !s.sched.Finish(next.ID) {
			continue
		}
		if err := s.sink.Write(next.Buffer.Samples); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("playback failed: %w", err)
		}
	}
}

func (s *Session) notify() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *Session) status(text string) {
	if s.opts.OnStatus != nil {
		s.opts.OnStatus(text)
	}
}
