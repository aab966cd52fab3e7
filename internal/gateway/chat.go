package gateway

import (
	"context"
	"strings"

	"vcnnet/internal/logging"
)

const chatSystemInstruction = "You are the VCN Network Assistant. Help members navigate the value creation network: " +
	"its contributors, enterprises, governance policies and roadmap. Be concise and concrete."

// NoReplyText is shown when the service answered with nothing.
const NoReplyText = "No response received."

// ChatOptions are the assistant's tool toggles.
type ChatOptions struct {
	WebSearch bool
	Maps      bool
	Thinking  bool
}

// ChatResult is one assistant reply. Err is set when the service failed;
// the caller records it as a failed transcript entry.
type ChatResult struct {
	Text      string
	Citations []Citation
	Err       error
}

// Chat sends message with the prior transcript. Maps grounding uses the
// Locator; a lookup failure is logged and the request goes out without a
// position. Thinking switches to the reasoning model with its budget.
func (g *Gateway) Chat(ctx context.Context, history []Turn, message string, opts ChatOptions) ChatResult {
	log := newRequestLogger("chat").
		WithField("search", opts.WebSearch).
		WithField("maps", opts.Maps).
		WithField("thinking", opts.Thinking)
	timer := logging.StartTimer(logging.CategoryAPI, "chat")
	defer timer.Stop()

	backend, err := g.client(ctx)
	if err != nil {
		log.Warn("chat unavailable: %v", err)
		return ChatResult{Err: err}
	}

	cfg := g.config().Gemini
	req := TextRequest{
		Model:   cfg.ChatModel,
		System:  chatSystemInstruction,
		History: history,
		Prompt:  message,
		Search:  opts.WebSearch,
	}
	if opts.Maps {
		req.Maps = true
		req.Model = cfg.MapsModel
		g.mu.Lock()
		locator := g.locator
		g.mu.Unlock()
		if locator != nil {
			if pos, lerr := locator.Locate(ctx); lerr != nil {
				log.Warn("location lookup failed, continuing without it: %v", lerr)
			} else {
				req.Location = &pos
			}
		}
	}
	if opts.Thinking {
		req.Model = cfg.ThinkingModel
		req.ThinkingBudget = cfg.ThinkingBudget
	}

	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	resp, err := backend.GenerateText(ctx, req)
	if err != nil {
		log.Error("chat failed: %v", err)
		return ChatResult{Err: err}
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		text = NoReplyText
	}
	log.Info("chat reply via %s (%d chars, %d citations)", req.Model, len(text), len(resp.Citations))
	return ChatResult{Text: text, Citations: resp.Citations}
}
