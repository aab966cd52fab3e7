package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"vcnnet/internal/content"
	"vcnnet/internal/logging"
)

// Fallback copy for the strategic analysis panel.
const (
	AnalysisUnavailableText = "Protocol analysis unavailable. System integrity check recommended."
	AnalysisOfflineText     = "Analysis offline."
)

// analysisContextArtifacts bounds how much recent activity goes into the prompt.
const analysisContextArtifacts = 5

// AnalysisResult is the strategic summary. On failure Text holds the
// fallback copy and Err the cause.
type AnalysisResult struct {
	Text string
	Err  error
}

// Failed reports whether the service call failed.
func (r AnalysisResult) Failed() bool { return r.Err != nil }

// Analyze asks the network architect persona for a summary of the
// current metrics and recent artifacts. It never returns an error to
// the caller; failures surface as fallback text.
func (g *Gateway) Analyze(ctx context.Context, metrics content.KPIMetrics, artifacts []content.Artifact) AnalysisResult {
	log := newRequestLogger("analyze")
	timer := logging.StartTimer(logging.CategoryAPI, "analyze")
	defer timer.Stop()

	prompt, err := analysisPrompt(metrics, artifacts)
	if err != nil {
		log.Error("failed to build prompt: %v", err)
		return AnalysisResult{Text: AnalysisUnavailableText, Err: err}
	}

	backend, err := g.client(ctx)
	if err != nil {
		log.Warn("analysis unavailable: %v", err)
		return AnalysisResult{Text: AnalysisUnavailableText, Err: err}
	}

	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	resp, err := backend.GenerateText(ctx, TextRequest{
		Model:  g.config().Gemini.AnalysisModel,
		Prompt: prompt,
	})
	if err != nil {
		log.Error("VCN intelligence error: %v", err)
		return AnalysisResult{Text: AnalysisUnavailableText, Err: err}
	}
	if strings.TrimSpace(resp.Text) == "" {
		log.Warn("analysis returned empty text")
		return AnalysisResult{Text: AnalysisOfflineText}
	}

	log.Info("analysis complete (%d chars)", len(resp.Text))
	return AnalysisResult{Text: strings.TrimSpace(resp.Text)}
}

func analysisPrompt(metrics content.KPIMetrics, artifacts []content.Artifact) (string, error) {
	if len(artifacts) > analysisContextArtifacts {
		artifacts = artifacts[:analysisContextArtifacts]
	}
	m, err := json.Marshal(metrics)
	if err != nil {
		return "", fmt.Errorf("marshal metrics: %w", err)
	}
	a, err := json.Marshal(artifacts)
	if err != nil {
		return "", fmt.Errorf("marshal artifacts: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("As a Lead VCN Network Architect, analyze the following production ecosystem data:\n")
	fmt.Fprintf(&sb, "Metrics: %s\n", m)
	fmt.Fprintf(&sb, "Recent Network Activity: %s\n\n", a)
	sb.WriteString("The network is currently in a hyper-expansion phase.\n")
	sb.WriteString("Provide a concise (2-3 sentences) strategic summary of network stability and 2 high-level protocol recommendations to maximize global collaboration density.")
	return sb.String(), nil
}
