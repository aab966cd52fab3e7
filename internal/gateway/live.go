package gateway

import (
	"context"

	"vcnnet/internal/voice"
)

// OpenLive opens a native-audio live session with the configured voice.
// Like the studio, it asks for a key when none is configured.
func (g *Gateway) OpenLive(ctx context.Context) (voice.Conn, error) {
	log := newRequestLogger("live")
	backend, err := g.mediaClient(ctx)
	if err != nil {
		log.Warn("live session blocked: %v", err)
		return nil, err
	}

	cfg := g.config()
	conn, err := backend.ConnectLive(ctx, LiveSpec{
		Model:             cfg.Gemini.LiveModel,
		VoiceName:         cfg.Voice.VoiceName,
		SystemInstruction: cfg.Voice.SystemInstruction,
		InputSampleRate:   cfg.Voice.InputSampleRate,
	})
	if err != nil {
		log.Error("live connect failed: %v", err)
		return nil, err
	}
	log.Info("live session opened (%s, voice %s)", cfg.Gemini.LiveModel, cfg.Voice.VoiceName)
	return conn, nil
}
