package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"vcnnet/cmd/vcn/dashboard"
	"vcnnet/cmd/vcn/ui"
	"vcnnet/internal/content"
	"vcnnet/internal/gateway"
	"vcnnet/internal/voice"
)

var (
	chatSearch bool
	chatMaps   bool
	chatThink  bool

	imageSize   string
	imageAspect string

	videoAspect string
	videoImage  string
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Run the strategic audit over the current network metrics",
	Args:  cobra.NoArgs,
	RunE:  runAudit,
}

var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Ask the network assistant",
	Long: `Sends one message to the network assistant and prints the reply.
Without a message, reads one message per line from stdin and keeps the
conversation going until EOF.

Examples:
  vcn chat "Which pilots are at risk?"
  vcn chat --maps "Find co-working spaces near our Lagos node"
  vcn chat --think "Draft a token weighting proposal"`,
	RunE: runChat,
}

var imageCmd = &cobra.Command{
	Use:   "image [prompt]",
	Short: "Generate an image",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runImage,
}

var editCmd = &cobra.Command{
	Use:   "edit [image] [prompt]",
	Short: "Edit an existing image with a text instruction",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runEdit,
}

var videoCmd = &cobra.Command{
	Use:   "video [prompt]",
	Short: "Generate a short video, optionally animating a start image",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runVideo,
}

var liveCmd = &cobra.Command{
	Use:   "live",
	Short: "Start a live voice session with the network concierge",
	Long: `Streams the microphone to the live service and plays the spoken
replies. Audio goes through the capture and playback commands configured
under voice: (arecord and aplay by default). Press Ctrl+C to end.`,
	Args: cobra.NoArgs,
	RunE: runLive,
}

func init() {
	chatCmd.Flags().BoolVar(&chatSearch, "search", false, "Ground the reply with web search")
	chatCmd.Flags().BoolVar(&chatMaps, "maps", false, "Ground the reply with maps (uses VCN_LOCATION)")
	chatCmd.Flags().BoolVar(&chatThink, "think", false, "Use the reasoning model")

	imageCmd.Flags().StringVar(&imageSize, "size", "", "Image size: 1K, 2K, 4K")
	imageCmd.Flags().StringVar(&imageAspect, "aspect", "", "Aspect ratio, e.g. 1:1 or 16:9")

	videoCmd.Flags().StringVar(&videoAspect, "aspect", "", "Aspect ratio: 16:9 or 9:16")
	videoCmd.Flags().StringVar(&videoImage, "image", "", "Start image to animate")
}

// newGateway is replaced in tests.
var newGateway = func() *gateway.Gateway {
	return gateway.New(cfg, gateway.WithKeySelector(newPromptKeySelector()))
}

// withTimeout bounds a whole subcommand. The gateway applies the
// per-request timeout itself; this only stops runaway video polling.
func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if timeout > 0 {
		return context.WithTimeout(ctx, 10*timeout)
	}
	return context.WithCancel(ctx)
}

func markdown(out io.Writer, text string) {
	md := ui.NewMarkdown(ui.ThemeForSetting(cfg.UI.Theme), 8)
	fmt.Fprintln(out, strings.TrimRight(md.Render(text, 100), "\n"))
}

func runAudit(cmd *cobra.Command, args []string) error {
	ctx, cancel := withTimeout(cmd.Context())
	defer cancel()

	gw := newGateway()
	defer gw.Close()

	store := content.NewStore()
	logger.Debug("Running strategic audit", zap.Int("artifacts", len(store.Artifacts())))
	res := gw.Analyze(ctx, store.Metrics(), store.Artifacts())
	if res.Failed() {
		logger.Warn("Audit degraded to fallback", zap.Error(res.Err))
	}
	markdown(cmd.OutOrStdout(), res.Text)
	return nil
}

func runChat(cmd *cobra.Command, args []string) error {
	ctx, cancel := withTimeout(cmd.Context())
	defer cancel()

	gw := newGateway()
	defer gw.Close()

	opts := gateway.ChatOptions{WebSearch: chatSearch, Maps: chatMaps, Thinking: chatThink}
	out := cmd.OutOrStdout()

	if msg := joinArgs(args); msg != "" {
		_, err := chatTurn(ctx, gw, out, nil, msg, opts)
		return err
	}

	var history []gateway.Turn
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		msg := strings.TrimSpace(scanner.Text())
		if msg == "" {
			continue
		}
		turns, err := chatTurn(ctx, gw, out, history, msg, opts)
		if err != nil {
			return err
		}
		history = turns
	}
	return scanner.Err()
}

// chatTurn sends one message and returns the history extended by the
// exchange. A failed turn is reported but not kept in the history.
func chatTurn(ctx context.Context, gw *gateway.Gateway, out io.Writer, history []gateway.Turn, msg string, opts gateway.ChatOptions) ([]gateway.Turn, error) {
	res := gw.Chat(ctx, history, msg, opts)
	if res.Err != nil {
		if ctx.Err() != nil {
			return history, ctx.Err()
		}
		fmt.Fprintf(out, "error: %v\n", res.Err)
		return history, nil
	}

	markdown(out, res.Text)
	for i, c := range res.Citations {
		fmt.Fprintf(out, "  [%d] %s %s\n", i+1, c.Title, c.URI)
	}
	return append(history,
		gateway.Turn{Role: "user", Text: msg},
		gateway.Turn{Role: "model", Text: res.Text},
	), nil
}

func printMedia(out io.Writer, res gateway.MediaResult) error {
	if res.Err != nil {
		return errors.New(res.Alert())
	}
	fmt.Fprintf(out, "%s saved to %s (%s, %d bytes)\n", res.Media.Kind, res.Media.Path, res.Media.MIMEType, len(res.Media.Data))
	return nil
}

func runImage(cmd *cobra.Command, args []string) error {
	ctx, cancel := withTimeout(cmd.Context())
	defer cancel()

	gw := newGateway()
	defer gw.Close()

	res := gw.GenerateImage(ctx, gateway.ImageRequest{
		Prompt:      joinArgs(args),
		Size:        imageSize,
		AspectRatio: imageAspect,
	})
	return printMedia(cmd.OutOrStdout(), res)
}

func runEdit(cmd *cobra.Command, args []string) error {
	ctx, cancel := withTimeout(cmd.Context())
	defer cancel()

	gw := newGateway()
	defer gw.Close()

	res := gw.EditImage(ctx, gateway.EditRequest{
		SourcePath: args[0],
		Prompt:     joinArgs(args[1:]),
	})
	return printMedia(cmd.OutOrStdout(), res)
}

func runVideo(cmd *cobra.Command, args []string) error {
	ctx, cancel := withTimeout(cmd.Context())
	defer cancel()

	gw := newGateway()
	defer gw.Close()

	fmt.Fprintln(cmd.ErrOrStderr(), "Generating video, this can take a few minutes...")
	res := gw.GenerateVideo(ctx, gateway.VideoRequest{
		Prompt:         joinArgs(args),
		AspectRatio:    videoAspect,
		StartImagePath: videoImage,
	})
	return printMedia(cmd.OutOrStdout(), res)
}

// openAudio is replaced in tests.
var openAudio dashboard.AudioFactory = dashboard.CommandAudio

func runLive(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	gw := newGateway()
	defer gw.Close()

	conn, err := gw.OpenLive(ctx)
	if err != nil {
		return fmt.Errorf("failed to open live session: %w", err)
	}
	src, sink, err := openAudio(ctx, cfg.Voice)
	if err != nil {
		_ = conn.Close()
		return err
	}

	errOut := cmd.ErrOrStderr()
	session := voice.NewSession(conn, src, sink, voice.Options{
		InputSampleRate:  cfg.Voice.InputSampleRate,
		OutputSampleRate: cfg.Voice.OutputSampleRate,
		FrameSamples:     cfg.Voice.FrameSamples,
		OnStatus:         func(status string) { fmt.Fprintf(errOut, "● %s\n", status) },
	})
	err = session.Run(ctx)
	if errors.Is(err, context.Canceled) || errors.Is(err, voice.ErrSessionClosed) {
		return nil
	}
	return err
}
