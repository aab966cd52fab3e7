package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"vcnnet/internal/config"
	"vcnnet/internal/logging"
)

var (
	// Global flags
	verbose    bool
	workspace  string
	configPath string
	timeout    time.Duration
	overrides  *config.FlagOverrides

	// Resolved in PersistentPreRunE
	cfg *config.Config

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "vcn",
	Short: "VCN Network console (protocol v2.4)",
	Long: `vcn is the operator console for the Value Creation Network.

It browses contributors, the contribution ledger, enterprises, governance
and the roadmap, and fronts the network intelligence: strategic audits,
the grounded assistant, the media studio and live voice sessions.

Run without arguments to start the interactive dashboard.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
		logging.CloseAll()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard(cmd.Context())
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	pf.StringVarP(&workspace, "workspace", "w", "", "Workspace directory (default: current)")
	pf.StringVarP(&configPath, "config", "c", "", "Config file (default: <workspace>/.vcn/config.yaml)")
	pf.DurationVar(&timeout, "timeout", 0, "Per-request timeout (overrides gemini.timeout)")
	overrides = config.RegisterFlags(pf)

	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(imageCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(videoCmd)
	rootCmd.AddCommand(liveCmd)
	rootCmd.AddCommand(docsCmd)
	rootCmd.AddCommand(ledgerCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup resolves the workspace, loads .env and the config file, applies
// flag overrides and initializes both loggers.
func setup(cmd *cobra.Command) error {
	ws, err := resolveWorkspace()
	if err != nil {
		return err
	}
	workspace = ws
	if configPath == "" {
		configPath = config.DefaultConfigPath(ws)
	}

	if err := config.LoadDotEnv(ws); err != nil {
		return err
	}
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	overrides.Apply(cmd.Flags(), loaded)
	if !filepath.IsAbs(loaded.Studio.OutputDir) {
		loaded.Studio.OutputDir = filepath.Join(ws, loaded.Studio.OutputDir)
	}
	if timeout > 0 {
		loaded.Gemini.Timeout = timeout.String()
	}
	if verbose && !cmd.Flags().Changed("log-level") {
		loaded.Logging.Level = "debug"
	}
	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	cfg = loaded

	if err := logging.Initialize(ws, cfg.Logging.Options()); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	logging.Boot("vcn %s starting (command %q, config %s)", cfg.Version, cmd.Name(), configPath)

	// The dashboard owns the terminal; only subcommands log to stderr.
	if !cmd.HasParent() {
		logger = zap.NewNop()
		return nil
	}
	zc := zap.NewProductionConfig()
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		zc.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	logger, err = zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func resolveWorkspace() (string, error) {
	ws := workspace
	if ws == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to resolve workspace: %w", err)
		}
		ws = cwd
	}
	abs, err := filepath.Abs(ws)
	if err != nil {
		return "", fmt.Errorf("failed to resolve workspace: %w", err)
	}
	return abs, nil
}

func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
