// Package gateway turns user intents into single calls against the
// generative service. Every operation returns a result value carrying an
// explicit Err instead of failing the caller; text paths also degrade to
// fixed fallback copy.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"vcnnet/internal/config"
	"vcnnet/internal/logging"
	"vcnnet/internal/voice"
)

var (
	ErrNoAPIKey              = errors.New("no API key configured")
	ErrKeySelectionCancelled = errors.New("API key selection cancelled")
	ErrSessionClosed         = voice.ErrSessionClosed
	ErrNoMedia               = errors.New("response contained no media")
	ErrNoLocation            = errors.New("location unavailable")
)

// KeySelector asks the user for an API key when none is configured.
type KeySelector interface {
	SelectKey(ctx context.Context) (string, error)
}

// KeySelectorFunc adapts a function to KeySelector.
type KeySelectorFunc func(ctx context.Context) (string, error)

func (f KeySelectorFunc) SelectKey(ctx context.Context) (string, error) { return f(ctx) }

// Locator supplies the user's position for maps grounding.
type Locator interface {
	Locate(ctx context.Context) (LatLng, error)
}

// StaticLocator returns a fixed position, or ErrNoLocation when unset.
type StaticLocator struct {
	Position *LatLng
}

func (l StaticLocator) Locate(ctx context.Context) (LatLng, error) {
	if l.Position == nil {
		return LatLng{}, ErrNoLocation
	}
	return *l.Position, nil
}

// LocatorFromConfig uses the configured latitude and longitude.
func LocatorFromConfig(cfg config.GeminiConfig) StaticLocator {
	if cfg.Latitude == nil || cfg.Longitude == nil {
		return StaticLocator{}
	}
	return StaticLocator{Position: &LatLng{Latitude: *cfg.Latitude, Longitude: *cfg.Longitude}}
}

// Option customizes a Gateway.
type Option func(*Gateway)

func WithBackendFactory(f BackendFactory) Option { return func(g *Gateway) { g.factory = f } }
func WithKeySelector(s KeySelector) Option       { return func(g *Gateway) { g.selector = s } }
func WithLocator(l Locator) Option               { return func(g *Gateway) { g.locator = l } }

// WithClock overrides time.Now for generated file names.
func WithClock(now func() time.Time) Option { return func(g *Gateway) { g.now = now } }

// Gateway holds the client configuration and a lazily built backend.
type Gateway struct {
	mu      sync.Mutex
	cfg     *config.Config
	apiKey  string
	backend Backend

	factory  BackendFactory
	selector KeySelector
	locator  Locator
	now      func() time.Time
}

// New creates a gateway for cfg. The production backend is used unless
// WithBackendFactory says otherwise.
func New(cfg *config.Config, opts ...Option) *Gateway {
	g := &Gateway{
		cfg:     cfg,
		apiKey:  strings.TrimSpace(cfg.Gemini.APIKey),
		factory: NewGenAIBackend,
		locator: LocatorFromConfig(cfg.Gemini),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// SetConfig swaps the configuration, e.g. after a hot reload. A changed
// API key drops the cached backend.
func (g *Gateway) SetConfig(cfg *config.Config) {
	g.mu.Lock()
	g.cfg = cfg
	g.locator = LocatorFromConfig(cfg.Gemini)
	g.mu.Unlock()
	if key := strings.TrimSpace(cfg.Gemini.APIKey); key != "" {
		g.SetAPIKey(key)
	}
}

// SetAPIKey replaces the key used for subsequent requests.
func (g *Gateway) SetAPIKey(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if key == g.apiKey {
		return
	}
	g.apiKey = key
	if g.backend != nil {
		_ = g.backend.Close()
		g.backend = nil
	}
}

// SetKeySelector installs the prompt used when a media request finds no key.
func (g *Gateway) SetKeySelector(s KeySelector) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.selector = s
}

// HasAPIKey reports whether a key is available without prompting.
func (g *Gateway) HasAPIKey() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.apiKey != ""
}

func (g *Gateway) config() *config.Config {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.cfg
}

// Close releases the backend.
func (g *Gateway) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.backend == nil {
		return nil
	}
	err := g.backend.Close()
	g.backend = nil
	return err
}

// ensureKey makes sure a key exists, asking the KeySelector when needed.
// Media paths call it before every request.
func (g *Gateway) ensureKey(ctx context.Context) error {
	g.mu.Lock()
	hasKey, selector := g.apiKey != "", g.selector
	g.mu.Unlock()
	if hasKey {
		return nil
	}
	if selector == nil {
		return ErrNoAPIKey
	}

	logging.Gateway("no API key configured; requesting key selection")
	key, err := selector.SelectKey(ctx)
	if err != nil {
		if errors.Is(err, ErrKeySelectionCancelled) {
			return err
		}
		return fmt.Errorf("key selection failed: %w", err)
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrKeySelectionCancelled
	}
	g.SetAPIKey(key)
	return nil
}

// client returns the backend for the current key, building it on first use.
func (g *Gateway) client(ctx context.Context) (Backend, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.backend != nil {
		return g.backend, nil
	}
	if g.apiKey == "" {
		return nil, ErrNoAPIKey
	}
	b, err := g.factory(ctx, g.apiKey)
	if err != nil {
		return nil, err
	}
	g.backend = b
	return b, nil
}

// withTimeout bounds a single request by the configured timeout.
func (g *Gateway) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, g.config().GetTimeout())
}

func newRequestLogger(op string) *logging.RequestLogger {
	return logging.WithRequestID(logging.CategoryAPI, uuid.NewString()[:8]).WithField("op", op)
}
