package voice

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"sync"

	"vcnnet/internal/logging"
)

// Source yields captured microphone samples.
type Source interface {
	// Read fills p and returns the number of samples read. It returns
	// io.EOF once the device is exhausted.
	Read(p []float32) (int, error)
	Close() error
}

// Sink plays samples, blocking until the device has accepted them.
type Sink interface {
	Write(samples []float32) error
	Close() error
}

// ReaderSource reads raw s16le PCM from r.
type ReaderSource struct {
	r   io.Reader
	buf []byte
}

func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{r: r}
}

func (s *ReaderSource) Read(p []float32) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if cap(s.buf) < 2*len(p) {
		s.buf = make([]byte, 2*len(p))
	}
	buf := s.buf[:2*len(p)]

	n, err := io.ReadFull(s.r, buf)
	if errors.Is(err, io.ErrUnexpectedEOF) {
		err = nil
	}
	copy(p, DecodePCM16(buf[:n-n%2]))
	return n / 2, err
}

// Close closes the underlying reader when it is closable.
func (s *ReaderSource) Close() error {
	if c, ok := s.r.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// WriterSink writes raw s16le PCM to w.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Write(samples []float32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.w.Write(EncodePCM16(samples)); err != nil {
		return fmt.Errorf("failed to write playback audio: %w", err)
	}
	return nil
}

func (s *WriterSink) Close() error {
	if c, ok := s.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// CommandSource captures audio from an external recorder writing raw
// s16le PCM to stdout, e.g. `arecord -q -f S16_LE -r 16000 -c 1 -t raw`.
type CommandSource struct {
	*ReaderSource
	cmd *exec.Cmd
}

// StartCommandSource starts argv and reads its stdout.
func StartCommandSource(ctx context.Context, argv []string) (*CommandSource, error) {
	if len(argv) == 0 {
		return nil, fmt.Errorf("empty capture command")
	}
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to get capture stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to get capture stderr pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start capture command %s: %w", argv[0], err)
	}
	go logStderr(argv[0], stderr)

	logging.Voice("capture started: %v (pid %d)", argv, cmd.Process.Pid)
	return &CommandSource{ReaderSource: NewReaderSource(stdout), cmd: cmd}, nil
}

func (s *CommandSource) Close() error {
	return stopCommand(s.cmd, nil)
}

// CommandSink plays audio through an external player reading raw s16le PCM
// from stdin, e.g. `aplay -q -f S16_LE -r 24000 -c 1 -t raw`.
type CommandSink struct {
	*WriterSink
	cmd   *exec.Cmd
	stdin io.WriteCloser
}

// StartCommandSink starts argv and writes to its stdin.
func StartCommandSink(ctx context.Context, argv []string) (*CommandSink, error) {
	if len(argv) == 0 {
		return nil, fmt.Errorf("empty playback command")
	}
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to get playback stdin pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to get playback stderr pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start playback command %s: %w", argv[0], err)
	}
	go logStderr(argv[0], stderr)

	logging.Voice("playback started: %v (pid %d)", argv, cmd.Process.Pid)
	return &CommandSink{WriterSink: NewWriterSink(stdin), cmd: cmd, stdin: stdin}, nil
}

func (s *CommandSink) Close() error {
	return stopCommand(s.cmd, s.stdin)
}

func stopCommand(cmd *exec.Cmd, stdin io.Closer) error {
	if stdin != nil {
		_ = stdin.Close()
	}
	if cmd.Process != nil {
		_ = cmd.Process.Kill()
	}
	// A killed process always reports an error from Wait.
	_ = cmd.Wait()
	return nil
}

func logStderr(name string, r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		logging.VoiceDebug("[%s] %s", name, scanner.Text())
	}
}
