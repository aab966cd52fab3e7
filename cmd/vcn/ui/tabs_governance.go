package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"vcnnet/internal/content"
	"vcnnet/internal/viewstate"
)

func renderRoadmap(s Styles, store *content.Store, st viewstate.State, width int) string {
	parts := []string{sectionHeader(s, "Evolution Roadmap", "Strategic milestones for VCN protocol decentralization.")}

	for i, m := range store.Milestones() {
		status := s.Accent(ThemeIndigo).Render(string(m.Status))
		if m.Status == content.MilestoneLive {
			status = s.Accent(ThemeEmerald).Render(string(m.Status))
		}
		body := lipgloss.JoinVertical(lipgloss.Left,
			s.Bold.Render(Glyph(IconStar)+" "+m.Title)+"  "+status,
			s.Body.Width(width-6).Render(m.Description),
			s.Muted.Render("Owner: "+m.Owner),
			RenderProgress(s, m.Progress, width-16),
		)
		parts = append(parts, card(s, body, width, i == st.Cursor))
	}

	parts = append(parts, hint(s, "enter", "Milestone Detail"))
	return join(parts...)
}

func renderGovernance(s Styles, store *content.Store, st viewstate.State, width int) string {
	parts := []string{sectionHeader(s, "Protocol Policies", "Active network standards and verified governance policies.")}

	for i, p := range store.Policies() {
		status := s.Warning.Render("Protocol: " + string(p.Status))
		if p.Status == content.PolicyActive {
			status = s.Success.Render("Protocol: " + string(p.Status))
		}
		body := lipgloss.JoinVertical(lipgloss.Left,
			s.Badge.Render(string(p.GovernanceLevel)+" Scope")+"  "+status,
			s.Bold.Render(Glyph(IconShieldCheck)+" "+p.Title),
			s.Body.Width(width-6).Render(p.Impact),
		)
		parts = append(parts, card(s, body, width, i == st.Cursor))
	}
	parts = append(parts, hint(s, "enter", "Review Audit Log"))
	return join(parts...)
}

func renderAdvisors(s Styles, store *content.Store, st viewstate.State, width int) string {
	parts := []string{sectionHeader(s, "Advisory Board", "Specialized experts overseeing protocol health and global consensus standards.")}

	for i, a := range store.Advisors() {
		body := lipgloss.JoinVertical(lipgloss.Left,
			s.Bold.Render(Glyph(IconCompass)+" "+a.Name)+"  "+s.Muted.Render(a.Specialty),
			s.Accent(priorityKind(a.Priority)).Render(string(a.Priority))+
				s.Muted.Render(fmt.Sprintf("  %s %.1f", Glyph(IconStar), a.Rating)),
			s.Subtitle.Width(width-6).Render(Glyph(IconQuote)+" "+a.Feedback),
		)
		parts = append(parts, card(s, body, width, i == st.Cursor))
	}
	parts = append(parts, hint(s, "enter", "Audit Protocol Notes"))
	return join(parts...)
}

func priorityKind(p content.AdvisorPriority) ThemeKind {
	switch p {
	case content.PriorityCritical:
		return ThemeAmber
	case content.PriorityVisionary:
		return ThemePurple
	default:
		return ThemeEmerald
	}
}

func renderDocs(s Styles, store *content.Store, st viewstate.State, width int) string {
	text := store.Text()

	var labels []string
	active := ""
	for _, c := range store.DocCategories() {
		label := c.Title
		if k, ok := IconByName(c.Icon); ok {
			label = Glyph(k) + " " + label
		}
		labels = append(labels, label)
		if c.ID == st.ActiveDocCategory {
			active = label
		}
	}

	parts := []string{
		sectionHeader(s, text.Docs.Title, text.Docs.Subtitle),
		chips(s, labels, active),
	}

	docs := store.DocsByCategory(st.ActiveDocCategory)
	if len(docs) == 0 {
		parts = append(parts, s.Muted.Render("No articles in this category yet."))
	}
	for i, d := range docs {
		body := s.Markdown.Render("## "+d.Title+"\n\n"+d.Content, width-6)
		parts = append(parts, card(s, body, width, i == st.Cursor))
	}
	parts = append(parts, s.Muted.Render("[ and ] switch category")+"  "+hint(s, "enter", "read article"))
	return join(parts...)
}
