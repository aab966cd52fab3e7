package content

import (
	"errors"
	"fmt"
	"sync"

	"vcnnet/internal/logging"
)

// Store is the in-memory content store. Every record is built once in
// NewStore and lives for the session; only Artifact.Verified changes.
type Store struct {
	mu sync.RWMutex

	users         []User
	artifacts     []Artifact
	milestones    []NetworkMilestone
	policies      []GovernancePolicy
	advisors      []AdvisorReview
	opportunities []Opportunity
	clients       []Client
	feedback      []ClientFeedback
	metrics       KPIMetrics
	trend         []TrendPoint
	categories    []DocCategory
	docs          []DocSection
	text          UIText
}

// NewStore builds a store from the static seed data.
// Each call returns independent copies, so toggling in one store never leaks into another.
func NewStore() *Store {
	return &Store{
		users:         seedUsers(),
		artifacts:     seedArtifacts(),
		milestones:    seedMilestones(),
		policies:      seedPolicies(),
		advisors:      seedAdvisors(),
		opportunities: seedOpportunities(),
		clients:       seedClients(),
		feedback:      seedFeedback(),
		metrics:       seedMetrics(),
		trend:         seedTrend(),
		categories:    seedDocCategories(),
		docs:          seedDocSections(),
		text:          seedUIText(),
	}
}

// Users returns all nodes.
func (s *Store) Users() []User {
	out := make([]User, len(s.users))
	for i, u := range s.users {
		u.Badges = append([]string(nil), u.Badges...)
		out[i] = u
	}
	return out
}

// User looks up a node by id.
func (s *Store) User(id string) (User, bool) {
	for _, u := range s.users {
		if u.ID == id {
			u.Badges = append([]string(nil), u.Badges...)
			return u, true
		}
	}
	return User{}, false
}

// Artifacts returns a snapshot of the ledger.
func (s *Store) Artifacts() []Artifact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Artifact(nil), s.artifacts...)
}

// Artifact looks up a ledger entry by id.
func (s *Store) Artifact(id string) (Artifact, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.artifacts {
		if a.ID == id {
			return a, true
		}
	}
	return Artifact{}, false
}

// ArtifactsByUser returns the ledger entries authored by userID.
func (s *Store) ArtifactsByUser(userID string) []Artifact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Artifact
	for _, a := range s.artifacts {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out
}

// ToggleVerified flips the verified flag of the artifact with id.
// Unknown ids are a silent no-op; the return value reports whether one matched.
func (s *Store) ToggleVerified(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.artifacts {
		if s.artifacts[i].ID == id {
			s.artifacts[i].Verified = !s.artifacts[i].Verified
			logging.StoreDebug("artifact %s verified=%v", id, s.artifacts[i].Verified)
			return true
		}
	}
	return false
}

// VerifiedCount counts currently verified ledger entries.
// KPIMetrics is not derived from this.
func (s *Store) VerifiedCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, a := range s.artifacts {
		if a.Verified {
			n++
		}
	}
	return n
}

// Milestones returns the roadmap.
func (s *Store) Milestones() []NetworkMilestone {
	return append([]NetworkMilestone(nil), s.milestones...)
}

// Policies returns the governance policies.
func (s *Store) Policies() []GovernancePolicy {
	return append([]GovernancePolicy(nil), s.policies...)
}

// Policy looks up a policy by id.
func (s *Store) Policy(id string) (GovernancePolicy, bool) {
	for _, p := range s.policies {
		if p.ID == id {
			return p, true
		}
	}
	return GovernancePolicy{}, false
}

// Advisors returns the advisory board.
func (s *Store) Advisors() []AdvisorReview {
	return append([]AdvisorReview(nil), s.advisors...)
}

// Advisor looks up an advisor by id.
func (s *Store) Advisor(id string) (AdvisorReview, bool) {
	for _, a := range s.advisors {
		if a.ID == id {
			return a, true
		}
	}
	return AdvisorReview{}, false
}

// Opportunities returns the marketplace listings.
func (s *Store) Opportunities() []Opportunity {
	out := make([]Opportunity, len(s.opportunities))
	for i, o := range s.opportunities {
		o.RequiredBadges = append([]string(nil), o.RequiredBadges...)
		out[i] = o
	}
	return out
}

// Opportunity looks up a listing by id.
func (s *Store) Opportunity(id string) (Opportunity, bool) {
	for _, o := range s.opportunities {
		if o.ID == id {
			o.RequiredBadges = append([]string(nil), o.RequiredBadges...)
			return o, true
		}
	}
	return Opportunity{}, false
}

// Milestone looks up a roadmap entry by id.
func (s *Store) Milestone(id string) (NetworkMilestone, bool) {
	for _, m := range s.milestones {
		if m.ID == id {
			return m, true
		}
	}
	return NetworkMilestone{}, false
}

// Clients returns the enterprise partners.
func (s *Store) Clients() []Client {
	return append([]Client(nil), s.clients...)
}

// Client looks up an enterprise by id.
func (s *Store) Client(id string) (Client, bool) {
	for _, c := range s.clients {
		if c.ID == id {
			return c, true
		}
	}
	return Client{}, false
}

// FeedbackForClient returns testimonials attached to clientID.
func (s *Store) FeedbackForClient(clientID string) []ClientFeedback {
	var out []ClientFeedback
	for _, f := range s.feedback {
		if f.ClientID == clientID {
			out = append(out, f)
		}
	}
	return out
}

// Metrics returns the static KPI snapshot.
func (s *Store) Metrics() KPIMetrics { return s.metrics }

// Trend returns the collaboration velocity series.
func (s *Store) Trend() []TrendPoint {
	return append([]TrendPoint(nil), s.trend...)
}

// DocCategories returns the knowledge hub categories in display order.
func (s *Store) DocCategories() []DocCategory {
	return append([]DocCategory(nil), s.categories...)
}

// HasDocCategory reports whether id names a known category.
func (s *Store) HasDocCategory(id string) bool {
	for _, c := range s.categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

// DocSections returns every knowledge hub article.
func (s *Store) DocSections() []DocSection {
	return append([]DocSection(nil), s.docs...)
}

// DocsByCategory returns the articles whose category equals id, in seed order.
func (s *Store) DocsByCategory(id string) []DocSection {
	var out []DocSection
	for _, d := range s.docs {
		if d.Category == id {
			out = append(out, d)
		}
	}
	return out
}

// Text returns the static UI copy.
func (s *Store) Text() UIText { return s.text }

// Validate checks the referential invariants between records.
func (s *Store) Validate() error {
	var errs []error

	users := make(map[string]bool, len(s.users))
	for _, u := range s.users {
		users[u.ID] = true
	}
	for _, a := range s.Artifacts() {
		if !users[a.UserID] {
			errs = append(errs, fmt.Errorf("artifact %s references unknown user %s", a.ID, a.UserID))
		}
	}

	for _, d := range s.docs {
		if !s.HasDocCategory(d.Category) {
			errs = append(errs, fmt.Errorf("doc %s references unknown category %s", d.ID, d.Category))
		}
	}

	clients := make(map[string]bool, len(s.clients))
	for _, c := range s.clients {
		clients[c.ID] = true
	}
	for _, f := range s.feedback {
		if !clients[f.ClientID] {
			errs = append(errs, fmt.Errorf("feedback %s references unknown client %s", f.ID, f.ClientID))
		}
	}

	for _, m := range s.milestones {
		if m.Progress < 0 || m.Progress > 100 {
			errs = append(errs, fmt.Errorf("milestone %s progress %d out of range", m.ID, m.Progress))
		}
	}

	return errors.Join(errs...)
}
