package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"vcnnet/internal/content"
	"vcnnet/internal/viewstate"
)

// RecordNotFound is shown when a modal's subject no longer resolves.
const RecordNotFound = "Record not found."

// RenderModal draws the focused overlay. extra is appended below the body,
// which is where the dashboard places the key-selection input.
func RenderModal(s Styles, store *content.Store, m viewstate.Modal, width int, extra string) string {
	inner := PanelContentWidth(width) - 2

	var body string
	switch m.Kind {
	case viewstate.ModalUserPortfolio:
		body = portfolioBody(s, store, m.Subject, inner)
	case viewstate.ModalClientDetail:
		body = clientBody(s, store, m.Subject, inner)
	case viewstate.ModalAdvisorNotes:
		body = advisorBody(s, store, m.Subject, inner)
	case viewstate.ModalPolicyAudit:
		body = policyBody(s, store, m.Subject, inner)
	case viewstate.ModalOpportunity:
		body = opportunityBody(s, store, m.Subject, inner)
	case viewstate.ModalMilestone:
		body = milestoneBody(s, store, m.Subject, inner)
	default:
		body = s.Markdown.Render(m.Text, inner)
	}

	parts := []string{s.Title.Render(m.Title), body}
	if extra != "" {
		parts = append(parts, extra)
	}
	parts = append(parts, hint(s, "esc", "close"))
	return s.Modal.Width(width).Render(strings.Join(parts, "\n\n"))
}

func portfolioBody(s Styles, store *content.Store, id string, width int) string {
	u, ok := store.User(id)
	if !ok {
		return s.Muted.Render(RecordNotFound)
	}
	lines := []string{
		s.Info.Render("Social Capital Balance: " + formatThousands(u.Reputation)),
		s.Muted.Render(string(u.Role) + " Node · " + strings.Join(u.Badges, ", ")),
		"",
		s.Bold.Render("Contribution Ledger"),
	}
	arts := store.ArtifactsByUser(u.ID)
	if len(arts) == 0 {
		lines = append(lines, s.Muted.Render("No artifacts recorded yet."))
	}
	for _, a := range arts {
		status := s.Muted.Render("pending")
		if a.Verified {
			status = s.Success.Render(Glyph(IconShieldCheck) + " verified")
		}
		lines = append(lines, fmt.Sprintf("%s %s  %s  %s  %s",
			Glyph(IconChevronRight), a.Title, s.Muted.Render(a.Timestamp),
			s.Accent(ThemeIndigo).Render(fmt.Sprintf("+%d PTS", a.ScoreContribution)), status))
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}

func clientBody(s Styles, store *content.Store, id string, width int) string {
	c, ok := store.Client(id)
	if !ok {
		return s.Muted.Render(RecordNotFound)
	}
	lines := []string{
		s.Bold.Render(c.Industry) + s.Muted.Render(" · "+c.Location),
		s.Success.Render(string(c.Status)),
		"",
		s.Bold.Render("Partner Feedback"),
	}
	feedback := store.FeedbackForClient(c.ID)
	if len(feedback) == 0 {
		lines = append(lines, s.Muted.Render("No feedback recorded for this enterprise."))
	}
	for _, f := range feedback {
		lines = append(lines,
			s.Subtitle.Width(width).Render(Glyph(IconQuote)+" "+f.Content),
			s.Muted.Render(fmt.Sprintf("%s, %s · %s %.1f · %s · %s",
				f.Author, f.Role, Glyph(IconStar), f.Rating, f.Sentiment, f.Date)),
		)
	}
	return strings.Join(lines, "\n")
}

func advisorBody(s Styles, store *content.Store, id string, width int) string {
	a, ok := store.Advisor(id)
	if !ok {
		return s.Muted.Render(RecordNotFound)
	}
	return strings.Join([]string{
		s.Bold.Render(a.Specialty),
		s.Accent(priorityKind(a.Priority)).Render(string(a.Priority)+" priority") +
			s.Muted.Render(fmt.Sprintf("  %s %.1f", Glyph(IconStar), a.Rating)),
		"",
		s.Body.Width(width).Render(a.FullBio),
		"",
		s.Bold.Render("Latest Protocol Note"),
		s.Subtitle.Width(width).Render(Glyph(IconQuote) + " " + a.Feedback),
	}, "\n")
}

func policyBody(s Styles, store *content.Store, id string, width int) string {
	p, ok := store.Policy(id)
	if !ok {
		return s.Muted.Render(RecordNotFound)
	}
	return strings.Join([]string{
		s.Badge.Render(string(p.GovernanceLevel)+" Scope") + "  " + s.Info.Render("Protocol: "+string(p.Status)),
		"",
		s.Bold.Render("Impact"),
		s.Body.Width(width).Render(p.Impact),
		"",
		s.Bold.Render("Audit Trail"),
		s.Muted.Render(Glyph(IconFileCheck) + " Policy registered on the trust ledger"),
		s.Muted.Render(Glyph(IconFileCheck) + " Reviewed by the Governance Advisory Board"),
		s.Muted.Render(Glyph(IconClock) + " Next consensus review scheduled"),
	}, "\n")
}

func opportunityBody(s Styles, store *content.Store, id string, width int) string {
	o, ok := store.Opportunity(id)
	if !ok {
		return s.Muted.Render(RecordNotFound)
	}
	var badges []string
	for _, b := range o.RequiredBadges {
		badges = append(badges, s.Chip.Render("Requires: "+b))
	}
	return strings.Join([]string{
		s.Success.Render(fmt.Sprintf("+%d Reputation Reward", o.RewardRep)),
		s.Muted.Render(Glyph(IconClock) + " Deadline " + o.Deadline),
		"",
		s.Body.Width(width).Render(o.Description),
		lipgloss.JoinHorizontal(lipgloss.Top, badges...),
		"",
		s.Muted.Render("Qualification artifacts are verified on the trust ledger before rewards are granted."),
	}, "\n")
}

func milestoneBody(s Styles, store *content.Store, id string, width int) string {
	m, ok := store.Milestone(id)
	if !ok {
		return s.Muted.Render(RecordNotFound)
	}
	return strings.Join([]string{
		s.Info.Render(string(m.Status)) + s.Muted.Render("  Owner: "+m.Owner),
		"",
		s.Body.Width(width).Render(m.Description),
		"",
		RenderProgress(s, m.Progress, width-8),
	}, "\n")
}
