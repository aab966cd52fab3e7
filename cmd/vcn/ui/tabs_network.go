package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"vcnnet/internal/content"
	"vcnnet/internal/viewstate"
)

// ProtocolWeighting is the reputation formula shown beside the ledger summary.
const ProtocolWeighting = "Protocol Weighting 0.5P + 0.3O + 0.2I"

func renderDashboard(s Styles, store *content.Store, st viewstate.State, width int) string {
	text := store.Text()

	columns := 1
	switch {
	case width >= 4*26:
		columns = 4
	case width >= 2*26:
		columns = 2
	}
	cards := RenderStatCards(s, StatCards(store.Metrics()), columns, width, st.Cursor)

	chart := lipgloss.JoinVertical(lipgloss.Left,
		sectionHeader(s, "Collaboration Velocity", "Artifact submissions across the network, last 7 days"),
		RenderTrendChart(s, store.Trend(), ChartHeight, width-4),
	)

	ledger := card(s, lipgloss.JoinVertical(lipgloss.Left,
		s.Bold.Render(Glyph(IconShieldCheck)+" "+text.LedgerTitle),
		s.Info.Render(ProtocolWeighting),
		s.Body.Width(width-6).Render(text.LedgerDesc),
		s.Muted.Render(fmt.Sprintf("Verified in ledger: %d of %d", store.VerifiedCount(), len(store.Artifacts()))),
	), width, false)

	return join(
		sectionHeader(s, "Network Hub", "Live health of the value creation network"),
		cards,
		chart,
		ledger,
		renderInsight(s, text, st.Analysis, width),
		hint(s, "enter", "open selected metric")+"  "+hint(s, "a", "run strategic audit"),
	)
}

func renderInsight(s Styles, text content.UIText, a viewstate.AnalysisState, width int) string {
	body := text.AIDescription
	if a.Text != "" {
		body = a.Text
	}

	action := s.Badge.Render(Glyph(IconZap) + " Run Strategic Audit Analysis")
	if a.InFlight {
		action = s.Spinner.Render("Processing Architecture Data...")
	}

	lines := []string{
		s.Accent(ThemeIndigo).Render(Glyph(IconSparkles) + " Network Architecture Intelligence"),
		lipgloss.NewStyle().Bold(true).Render(text.AITitle),
		lipgloss.NewStyle().Width(width - 8).Render(body),
	}
	if a.Failed && a.Error != "" {
		lines = append(lines, s.Warning.Render("Analysis degraded: "+a.Error))
	}
	lines = append(lines, "", action)
	return s.Insight.Width(width - 2).Render(strings.Join(lines, "\n"))
}

func renderMarketplace(s Styles, store *content.Store, st viewstate.State, width int) string {
	text := store.Text()
	parts := []string{sectionHeader(s, text.Marketplace.Title, text.Marketplace.Subtitle)}

	for i, o := range store.Opportunities() {
		reward := s.Success.Render(fmt.Sprintf("+%d Reputation Reward", o.RewardRep))
		var badges []string
		for _, b := range o.RequiredBadges {
			badges = append(badges, s.Chip.Render("Requires: "+b))
		}
		body := lipgloss.JoinVertical(lipgloss.Left,
			s.Bold.Render(Glyph(IconBriefcase)+" "+o.Title)+"  "+reward,
			s.Body.Width(width-6).Render(o.Description),
			lipgloss.JoinHorizontal(lipgloss.Top, badges...),
			s.Muted.Render(Glyph(IconClock)+" Deadline "+o.Deadline),
		)
		parts = append(parts, card(s, body, width, i == st.Cursor))
	}
	parts = append(parts, hint(s, "enter", "Submit Qualification Artifacts"))
	return join(parts...)
}

func renderProfiles(s Styles, store *content.Store, st viewstate.State, width int) string {
	parts := []string{sectionHeader(s, "Professional Profiles", "Verified nodes and their social capital")}

	for i, u := range store.Users() {
		var badges []string
		for _, b := range u.Badges {
			badges = append(badges, s.Chip.Render(Glyph(IconStar)+" "+b))
		}
		arts := store.ArtifactsByUser(u.ID)
		body := lipgloss.JoinVertical(lipgloss.Left,
			s.Bold.Render(u.Name)+"  "+s.Badge.Render(string(u.Role)+" Node"),
			s.Info.Render(fmt.Sprintf("Social Capital %s", formatThousands(u.Reputation)))+
				s.Muted.Render(fmt.Sprintf("  %d ledger artifacts", len(arts))),
			lipgloss.JoinHorizontal(lipgloss.Top, badges...),
		)
		parts = append(parts, card(s, body, width, i == st.Cursor))
	}
	parts = append(parts, hint(s, "enter", "View Reputation Graph"))
	return join(parts...)
}

// SyncLabel is the ledger status cell for an artifact.
func SyncLabel(verified bool) string {
	if verified {
		return Glyph(IconShieldCheck) + " Verified Sync"
	}
	return "Execute Protocol Sync"
}

func renderLedger(s Styles, store *content.Store, st viewstate.State, width int) string {
	arts := store.Artifacts()

	nodeW, typeW, scoreW, syncW := 18, 12, 7, 22
	titleW := width - nodeW - typeW - scoreW - syncW - 12
	if titleW < 16 {
		titleW = 16
	}

	rows := make([]table.Row, 0, len(arts))
	for _, a := range arts {
		node := a.UserID
		if u, ok := store.User(a.UserID); ok {
			node = u.Name
		}
		rows = append(rows, table.Row{
			a.Title + " (" + a.Timestamp + ")",
			node,
			string(a.Type),
			fmt.Sprintf("+%d", a.ScoreContribution),
			SyncLabel(a.Verified),
		})
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Artifact Detail", Width: titleW},
			{Title: "Network Node", Width: nodeW},
			{Title: "Type", Width: typeW},
			{Title: "Score", Width: scoreW},
			{Title: "Sync Status", Width: syncW},
		}),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+3),
	)
	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(s.Theme.Border).
		BorderBottom(true).
		Bold(true)
	ts.Selected = ts.Selected.
		Foreground(lipgloss.Color("#ffffff")).
		Background(s.Theme.Primary)
	t.SetStyles(ts)
	if st.Cursor < len(rows) {
		t.SetCursor(st.Cursor)
	}

	summary := s.Muted.Render(fmt.Sprintf("%d of %d artifacts verified", store.VerifiedCount(), len(arts)))
	return join(
		sectionHeader(s, "Global Trust Ledger", "Verify cross-org artifacts to finalize reputation scores."),
		t.View(),
		summary,
		hint(s, "space", "toggle protocol sync"),
	)
}

func renderClients(s Styles, store *content.Store, st viewstate.State, width int) string {
	parts := []string{sectionHeader(s, "Strategic Enterprises", "Active enterprise nodes validating the VCN professional ecosystem.")}

	for i, c := range store.Clients() {
		status := s.Info.Render(string(c.Status))
		if c.Status == content.ClientStrategicPartner {
			status = s.Success.Render(string(c.Status))
		}
		body := lipgloss.JoinVertical(lipgloss.Left,
			s.Bold.Render(Glyph(IconBuilding)+" "+c.Name)+"  "+status,
			s.Muted.Render(c.Industry+" · "+c.Location),
			s.Muted.Render(fmt.Sprintf("%d feedback records", len(store.FeedbackForClient(c.ID)))),
		)
		parts = append(parts, card(s, body, width, i == st.Cursor))
	}
	parts = append(parts, hint(s, "enter", "Open Enterprise Node"))
	return join(parts...)
}
