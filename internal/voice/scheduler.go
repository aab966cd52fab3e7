package voice

import (
	"sync"
	"time"
)

// Clock reports elapsed time on the playback timeline.
type Clock interface {
	Now() time.Duration
}

type monotonicClock struct{ start time.Time }

// NewClock returns a Clock whose zero is the moment it was created.
func NewClock() Clock { return monotonicClock{start: time.Now()} }

func (c monotonicClock) Now() time.Duration { return time.Since(c.start) }

// Buffer is a decoded chunk of audio at a fixed sample rate.
type Buffer struct {
	Samples []float32
	Rate    int
}

// Duration is the buffer's play time.
func (b Buffer) Duration() time.Duration { return Duration(len(b.Samples), b.Rate) }

// Scheduled is a buffer placed on the playback timeline.
type Scheduled struct {
	ID       uint64
	Start    time.Duration
	Duration time.Duration
	Buffer   Buffer
}

// End is when the buffer finishes playing.
func (s Scheduled) End() time.Duration { return s.Start + s.Duration }

// Scheduler places buffers back to back in arrival order. Each buffer
// starts at the later of the cursor and now, and the cursor then advances
// by the buffer's duration, so queued audio never gaps or overlaps.
type Scheduler struct {
	mu     sync.Mutex
	cursor time.Duration
	nextID uint64
	active []Scheduled
}

// NewScheduler returns an empty scheduler with the cursor at zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Schedule queues b and returns its placement.
func (s *Scheduler) Schedule(b Buffer, now time.Duration) Scheduled {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := s.cursor
	if now > start {
		start = now
	}
	s.nextID++
	item := Scheduled{ID: s.nextID, Start: start, Duration: b.Duration(), Buffer: b}
	s.cursor = item.End()
	s.active = append(s.active, item)
	return item
}

// Active lists queued buffers in start order.
func (s *Scheduler) Active() []Scheduled {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Scheduled(nil), s.active...)
}

// Cursor is where the next buffer would start if it arrived now or earlier.
func (s *Scheduler) Cursor() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

// Finish removes a buffer that has been handed to the sink. It reports
// false when the buffer is no longer queued, e.g. after Interrupt.
func (s *Scheduler) Finish(id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, item := range s.active {
		if item.ID == id {
			s.active = append(s.active[:i:i], s.active[i+1:]...)
			return true
		}
	}
	return false
}

// Interrupt drops every queued buffer and resets the cursor to zero.
// It returns what was dropped.
func (s *Scheduler) Interrupt() []Scheduled {
	s.mu.Lock()
	defer s.mu.Unlock()
	dropped := s.active
	s.active = nil
	s.cursor = 0
	return dropped
}
