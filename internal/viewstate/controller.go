package viewstate

import (
	"sync"

	"vcnnet/internal/content"
	"vcnnet/internal/logging"
)

// Controller owns the live State and the content store it reads from.
// It is safe for concurrent use; async completions may Dispatch from any
// goroutine.
type Controller struct {
	mu    sync.RWMutex
	state State
	store *content.Store
}

// NewController starts at the given tab over store.
func NewController(store *content.Store, start Tab) *Controller {
	return &Controller{state: Initial(start), store: store}
}

// State returns a snapshot of the current view state.
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Store returns the backing content store.
func (c *Controller) Store() *content.Store { return c.store }

// Dispatch applies e and returns the resulting state.
func (c *Controller) Dispatch(e Event) State {
	if t, ok := e.(ToggleArtifactVerified); ok {
		if !c.store.ToggleVerified(t.ID) {
			logging.UIDebug("toggle ignored for unknown artifact %q", t.ID)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Reduce(c.state, e)
	return c.state
}

// Restore replaces the current state with a record produced by Unmarshal.
// Work that was in flight when the record was taken cannot complete, so its
// flags and pending transcript entries are dropped. Out-of-range fields fall
// back to their initial values.
func (c *Controller) Restore(s State) {
	s = s.settled()
	if !s.ActiveTab.Valid() {
		s.ActiveTab = TabDashboard
	}
	if !validDocCategory(s.ActiveDocCategory) {
		s.ActiveDocCategory = DocCategories()[0]
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

func (c *Controller) SelectTab(t Tab) State { return c.Dispatch(SelectTab{Tab: t}) }

func (c *Controller) SelectDocCategory(id string) State {
	return c.Dispatch(SelectDocCategory{ID: id})
}

func (c *Controller) CloseModal() State { return c.Dispatch(CloseModal{}) }

func (c *Controller) ToggleVerified(id string) State {
	return c.Dispatch(ToggleArtifactVerified{ID: id})
}

// VisibleDocs returns the knowledge hub sections for the active category.
func (c *Controller) VisibleDocs() []content.DocSection {
	return c.store.DocsByCategory(c.State().ActiveDocCategory)
}

// SelectionCount is the number of selectable rows on the active tab.
func (c *Controller) SelectionCount() int {
	s := c.State()
	switch s.ActiveTab {
	case TabDashboard:
		return len(DashboardTargets())
	case TabProfiles:
		return len(c.store.Users())
	case TabLedger:
		return len(c.store.Artifacts())
	case TabClients:
		return len(c.store.Clients())
	case TabRoadmap:
		return len(c.store.Milestones())
	case TabGovernance:
		return len(c.store.Policies())
	case TabAdvisors:
		return len(c.store.Advisors())
	case TabMarketplace:
		return len(c.store.Opportunities())
	case TabDocs:
		return len(c.store.DocsByCategory(s.ActiveDocCategory))
	}
	return 0
}

// MoveCursor moves the selection within the active tab's rows.
func (c *Controller) MoveCursor(delta int) State {
	return c.Dispatch(MoveCursor{Delta: delta, Count: c.SelectionCount()})
}

// SelectedArtifact is the ledger row under the cursor.
func (c *Controller) SelectedArtifact() (content.Artifact, bool) {
	s := c.State()
	arts := c.store.Artifacts()
	if s.ActiveTab != TabLedger || s.Cursor < 0 || s.Cursor >= len(arts) {
		return content.Artifact{}, false
	}
	return arts[s.Cursor], true
}

// OpenSelected opens the modal for the row under the cursor. On the
// dashboard it follows the selected stat card to its tab instead. Tabs
// without a detail view leave the state unchanged.
func (c *Controller) OpenSelected() State {
	s := c.State()
	i := s.Cursor
	if i < 0 {
		return s
	}

	if s.ActiveTab == TabDashboard {
		if targets := DashboardTargets(); i < len(targets) {
			return c.Dispatch(SelectTab{Tab: targets[i]})
		}
		return s
	}

	var (
		m  Modal
		ok bool
	)
	switch s.ActiveTab {
	case TabProfiles:
		if users := c.store.Users(); i < len(users) {
			m, ok = PortfolioModal(users[i]), true
		}
	case TabClients:
		if clients := c.store.Clients(); i < len(clients) {
			m, ok = ClientModal(clients[i]), true
		}
	case TabAdvisors:
		if advisors := c.store.Advisors(); i < len(advisors) {
			m, ok = AdvisorModal(advisors[i]), true
		}
	case TabGovernance:
		if policies := c.store.Policies(); i < len(policies) {
			m, ok = PolicyModal(policies[i]), true
		}
	case TabMarketplace:
		if opps := c.store.Opportunities(); i < len(opps) {
			m, ok = OpportunityModal(opps[i]), true
		}
	case TabRoadmap:
		if ms := c.store.Milestones(); i < len(ms) {
			m, ok = MilestoneModal(ms[i]), true
		}
	case TabDocs:
		if docs := c.store.DocsByCategory(s.ActiveDocCategory); i < len(docs) {
			m, ok = NoticeModal(docs[i].Title, docs[i].Content), true
		}
	}
	if !ok {
		return s
	}
	return c.Dispatch(OpenModal{Modal: m})
}
