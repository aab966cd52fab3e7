package content

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedDataIsConsistent(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Validate())

	assert.Len(t, s.Users(), 4)
	assert.Len(t, s.Artifacts(), 4)
	assert.Len(t, s.Milestones(), 3)
	assert.Len(t, s.Policies(), 3)
	assert.Len(t, s.Advisors(), 2)
	assert.Len(t, s.Opportunities(), 3)
	assert.Len(t, s.Clients(), 2)
	assert.Len(t, s.Trend(), 7)
	assert.Len(t, s.DocCategories(), 4)
	assert.Len(t, s.DocSections(), 7)
}

func TestValidateReportsBrokenReferences(t *testing.T) {
	s := NewStore()
	s.artifacts = append(s.artifacts, Artifact{ID: "ax", UserID: "999"})
	s.docs = append(s.docs, DocSection{ID: "dx", Category: "nowhere"})
	s.feedback = append(s.feedback, ClientFeedback{ID: "fx", ClientID: "cx"})

	err := s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown user 999")
	assert.Contains(t, err.Error(), "unknown category nowhere")
	assert.Contains(t, err.Error(), "unknown client cx")
}

func TestToggleVerifiedTwiceRestores(t *testing.T) {
	s := NewStore()
	for _, a := range s.Artifacts() {
		require.True(t, s.ToggleVerified(a.ID))
		flipped, _ := s.Artifact(a.ID)
		assert.Equal(t, !a.Verified, flipped.Verified)

		require.True(t, s.ToggleVerified(a.ID))
		restored, _ := s.Artifact(a.ID)
		assert.Equal(t, a.Verified, restored.Verified, "artifact %s", a.ID)
	}
}

func TestToggleVerifiedUnknownIsNoop(t *testing.T) {
	s := NewStore()
	before := s.Artifacts()

	assert.False(t, s.ToggleVerified("missing"))
	if diff := cmp.Diff(before, s.Artifacts()); diff != "" {
		t.Fatalf("ledger changed on unknown id (-before +after):\n%s", diff)
	}
}

func TestToggleDoesNotTouchMetrics(t *testing.T) {
	s := NewStore()
	metrics := s.Metrics()
	verified := s.VerifiedCount()

	s.ToggleVerified("a3")

	assert.Equal(t, metrics, s.Metrics())
	assert.Equal(t, verified+1, s.VerifiedCount())
}

func TestStoresAreIndependent(t *testing.T) {
	a, b := NewStore(), NewStore()
	a.ToggleVerified("a1")

	fromA, _ := a.Artifact("a1")
	fromB, _ := b.Artifact("a1")
	assert.NotEqual(t, fromA.Verified, fromB.Verified)
}

func TestReturnedSlicesAreCopies(t *testing.T) {
	s := NewStore()
	arts := s.Artifacts()
	arts[0].Verified = !arts[0].Verified

	orig, _ := s.Artifact(arts[0].ID)
	assert.NotEqual(t, arts[0].Verified, orig.Verified)

	users := s.Users()
	users[0].Badges[0] = "tampered"
	u, _ := s.User(users[0].ID)
	assert.NotEqual(t, "tampered", u.Badges[0])
}

func TestArtifactsByUser(t *testing.T) {
	s := NewStore()

	sarah := s.ArtifactsByUser("1")
	require.Len(t, sarah, 2)
	for _, a := range sarah {
		assert.Equal(t, "1", a.UserID)
	}
	assert.Empty(t, s.ArtifactsByUser("4"))
	assert.Empty(t, s.ArtifactsByUser("nobody"))
}

func TestDocsByCategoryPartitionsDocs(t *testing.T) {
	s := NewStore()

	total := 0
	for _, cat := range s.DocCategories() {
		docs := s.DocsByCategory(cat.ID)
		for _, d := range docs {
			assert.Equal(t, cat.ID, d.Category)
		}
		total += len(docs)
	}
	assert.Equal(t, len(s.DocSections()), total, "union over categories must equal the full set")
}

func TestConceptsCategory(t *testing.T) {
	s := NewStore()

	var titles []string
	for _, d := range s.DocsByCategory(DocConcepts) {
		titles = append(titles, d.Title)
	}
	assert.Equal(t, []string{"Value Creation Networks", "Trust & Consensus"}, titles)
	assert.Empty(t, s.DocsByCategory("unknown"))
}

func TestLookups(t *testing.T) {
	s := NewStore()

	u, ok := s.User("3")
	require.True(t, ok)
	assert.Equal(t, "Elena Rodriguez", u.Name)

	_, ok = s.User("x")
	assert.False(t, ok)

	c, ok := s.Client("c1")
	require.True(t, ok)
	assert.Equal(t, ClientStrategicPartner, c.Status)
	assert.Len(t, s.FeedbackForClient("c1"), 1)
	assert.Empty(t, s.FeedbackForClient("c2"))

	_, ok = s.Policy("g3")
	assert.True(t, ok)
	_, ok = s.Advisor("e4")
	assert.True(t, ok)
	_, ok = s.Opportunity("o2")
	assert.True(t, ok)
	_, ok = s.Milestone("m1")
	assert.True(t, ok)
	assert.True(t, s.HasDocCategory(DocGlossary))
	assert.False(t, s.HasDocCategory("nope"))
}
