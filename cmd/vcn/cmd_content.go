package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"vcnnet/cmd/vcn/ui"
	"vcnnet/internal/content"
)

var ledgerToggle []string

var docsCmd = &cobra.Command{
	Use:   "docs [category]",
	Short: "Print the protocol documentation",
	Long: `Prints the documentation sections of one category, or lists the
categories when none is given.

Example:
  vcn docs concepts`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDocs,
}

var ledgerCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Show the contribution ledger",
	Long: `Prints every recorded contribution with its verification state.
--toggle flips protocol sync on the given artifacts before printing; the
change lasts for this invocation only.`,
	Args: cobra.NoArgs,
	RunE: runLedger,
}

func init() {
	ledgerCmd.Flags().StringSliceVar(&ledgerToggle, "toggle", nil, "Artifact id to toggle (repeatable)")
}

func runDocs(cmd *cobra.Command, args []string) error {
	store := content.NewStore()
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		s := ui.NewStyles(ui.ThemeForSetting(cfg.UI.Theme))
		table := ui.NewSimpleTable("Documentation", []string{"Category", "Title", "Sections"})
		for _, c := range store.DocCategories() {
			table.AddRow(c.ID, c.Title, strconv.Itoa(len(store.DocsByCategory(c.ID))))
		}
		fmt.Fprintln(out, table.View(s))
		return nil
	}

	id := strings.ToLower(args[0])
	if !store.HasDocCategory(id) {
		var ids []string
		for _, c := range store.DocCategories() {
			ids = append(ids, c.ID)
		}
		return fmt.Errorf("unknown category %q (valid: %s)", args[0], strings.Join(ids, ", "))
	}

	var b strings.Builder
	for _, d := range store.DocsByCategory(id) {
		fmt.Fprintf(&b, "## %s\n\n%s\n\n", d.Title, d.Content)
	}
	markdown(out, b.String())
	return nil
}

func runLedger(cmd *cobra.Command, args []string) error {
	store := content.NewStore()
	for _, id := range ledgerToggle {
		if !store.ToggleVerified(id) {
			return fmt.Errorf("unknown artifact %q", id)
		}
	}

	s := ui.NewStyles(ui.ThemeForSetting(cfg.UI.Theme))
	table := ui.NewSimpleTable("Contribution Ledger", []string{"ID", "Contributor", "Artifact", "Type", "Score", "Sync"})
	for _, a := range store.Artifacts() {
		owner := a.UserID
		if u, ok := store.User(a.UserID); ok {
			owner = u.Name
		}
		table.AddRow(a.ID, owner, a.Title, string(a.Type), "+"+strconv.Itoa(a.ScoreContribution), ui.SyncLabel(a.Verified))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, table.View(s))
	fmt.Fprintf(out, "%d of %d artifacts verified\n", store.VerifiedCount(), len(store.Artifacts()))
	return nil
}
