package ui

import (
	"hash/fnv"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"

	"vcnnet/internal/logging"
)

// Markdown renders glamour output and caches it by (text, width, theme).
// Tab renderers run on every frame, so the same doc section or reply is
// rendered many times.
type Markdown struct {
	mu      sync.Mutex
	dark    bool
	entries map[uint64]string
	order   []uint64
	maxSize int
}

// NewMarkdown creates a renderer for the given theme holding at most
// maxSize entries.
func NewMarkdown(theme Theme, maxSize int) *Markdown {
	if maxSize <= 0 {
		maxSize = 128
	}
	return &Markdown{dark: theme.IsDark, entries: make(map[uint64]string), maxSize: maxSize}
}

// Render returns text as styled markdown wrapped to width. Glamour errors
// fall back to the plain text.
func (m *Markdown) Render(text string, width int) string {
	if width < 20 {
		width = 20
	}
	key := cacheKey(text, width, m.dark)

	m.mu.Lock()
	if out, ok := m.entries[key]; ok {
		m.mu.Unlock()
		return out
	}
	m.mu.Unlock()

	out := m.render(text, width)

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[key]; !ok {
		m.entries[key] = out
		m.order = append(m.order, key)
		if len(m.order) > m.maxSize {
			delete(m.entries, m.order[0])
			m.order = m.order[1:]
		}
	}
	return out
}

// Len reports the number of cached entries.
func (m *Markdown) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

func (m *Markdown) render(text string, width int) string {
	style := glamour.WithStandardStyle("light")
	if m.dark {
		style = glamour.WithStandardStyle("dark")
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		logging.UIWarn("glamour renderer unavailable: %v", err)
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		logging.UIWarn("markdown render failed: %v", err)
		return text
	}
	return strings.Trim(out, "\n")
}

func cacheKey(text string, width int, dark bool) uint64 {
	h := fnv.New64a()
	h.Write([]byte(text))
	h.Write([]byte{0})
	h.Write([]byte(strconv.Itoa(width)))
	if dark {
		h.Write([]byte{1})
	}
	return h.Sum64()
}
