package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"vcnnet/cmd/vcn/dashboard"
	"vcnnet/internal/content"
	"vcnnet/internal/gateway"
	"vcnnet/internal/logging"
)

// runDashboard starts the full-screen console. The dashboard installs its
// own key modal as the gateway's key selector.
func runDashboard(ctx context.Context) error {
	store := content.NewStore()
	if err := store.Validate(); err != nil {
		return fmt.Errorf("seed content is inconsistent: %w", err)
	}
	gw := gateway.New(cfg)

	var opts []dashboard.Option
	// Hot reload needs an existing file to watch.
	if _, err := os.Stat(configPath); err == nil {
		opts = append(opts, dashboard.WithConfigPath(configPath))
	}
	model := dashboard.New(cfg, store, gw, opts...)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			logging.UIWarn("dashboard interrupted: %v", ctx.Err())
			return nil
		}
		return fmt.Errorf("dashboard failed: %w", err)
	}
	return nil
}
