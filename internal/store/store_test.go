package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchboardapp/matchboard-server/internal/domain"
)

// setupTestStore creates a store over a temporary badger database.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	adapter, err := OpenAdapter(filepath.Join(t.TempDir(), "test.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = adapter.Close() })

	return New(adapter, nil, NoopIndexer{})
}

func TestNew_FirstRunLoadsSeed(t *testing.T) {
	s := setupTestStore(t)

	data := s.Snapshot()
	assert.Len(t, data.Candidates, 2)
	assert.Len(t, data.Tags, 5)
	assert.Empty(t, data.Notes)
	assert.Empty(t, data.Interactions)
}

func TestNew_FirstRunPersistsSeed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	adapter, err := OpenAdapter(path, nil)
	require.NoError(t, err)
	_ = New(adapter, nil, nil)
	require.NoError(t, adapter.Close())

	// A second process sees the seed, not first-run-absent.
	reopened, err := OpenAdapter(path, nil)
	require.NoError(t, err)
	defer reopened.Close()

	raw, ok := reopened.Load()
	require.True(t, ok)
	assert.Len(t, Sanitize(raw).Candidates, 2)
}

func TestAddCandidate_ThenRead(t *testing.T) {
	s := setupTestStore(t)

	in := CandidateInput{
		Name:         "Lena Vogel",
		Age:          27,
		Gender:       "Female",
		City:         "Cologne",
		Job:          "Teacher",
		Status:       domain.StatusNew,
		Tags:         []domain.Tag{{ID: "1", Label: "Funny", Color: "#FCD34D"}},
		NotesSummary: "Met at a friend's party.",
	}
	created := s.AddCandidate(in)

	data := s.Snapshot()
	require.Len(t, data.Candidates, 3)

	// Most recently added comes first.
	first := data.Candidates[0]
	assert.Equal(t, created.ID, first.ID)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, in.Name, first.Name)
	assert.Equal(t, in.Age, first.Age)
	assert.Equal(t, in.City, first.City)
	assert.Equal(t, in.Job, first.Job)
	assert.Equal(t, in.Status, first.Status)
	assert.Equal(t, in.Tags, first.Tags)
	assert.Equal(t, in.NotesSummary, first.NotesSummary)
	assert.True(t, first.CreatedAt.Equal(first.UpdatedAt))
}

func TestAddCandidate_IDsPairwiseDistinct(t *testing.T) {
	s := setupTestStore(t)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		c := s.AddCandidate(CandidateInput{Name: "X", Status: domain.StatusNew})
		assert.False(t, seen[c.ID], "duplicate id: %s", c.ID)
		seen[c.ID] = true
	}
	assert.Len(t, seen, 50)
}

func TestUpdateCandidate_RefreshesTimestampKeepsIdentity(t *testing.T) {
	s := setupTestStore(t)

	created := s.AddCandidate(CandidateInput{Name: "Jonas", City: "Bremen", Status: domain.StatusNew})
	t0 := created.CreatedAt

	time.Sleep(5 * time.Millisecond)

	city := "Berlin"
	updated := s.UpdateCandidate(created.ID, CandidatePatch{City: &city})
	require.NotNil(t, updated)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Berlin", updated.City)
	assert.Equal(t, "Jonas", updated.Name, "untouched fields survive the merge")
	assert.True(t, updated.CreatedAt.Equal(t0), "createdAt must not change")
	assert.True(t, updated.UpdatedAt.After(t0), "updatedAt must be refreshed")
}

func TestUpdateCandidate_UnknownIDIsNoop(t *testing.T) {
	s := setupTestStore(t)
	before := s.Snapshot()

	city := "X"
	assert.Nil(t, s.UpdateCandidate("missing-id", CandidatePatch{City: &city}))

	after := s.Snapshot()
	require.Len(t, after.Candidates, len(before.Candidates))
	for i := range before.Candidates {
		assert.Equal(t, before.Candidates[i], after.Candidates[i])
	}
}

func TestDeleteCandidate_RemovesExactlyOne(t *testing.T) {
	s := setupTestStore(t)

	a := s.AddCandidate(CandidateInput{Name: "A", Status: domain.StatusNew})
	b := s.AddCandidate(CandidateInput{Name: "B", Status: domain.StatusNew})
	c := s.AddCandidate(CandidateInput{Name: "C", Status: domain.StatusNew})

	before := s.Snapshot()
	require.True(t, s.DeleteCandidate(b.ID))

	after := s.Snapshot()
	assert.Len(t, after.Candidates, len(before.Candidates)-1)
	for _, cand := range after.Candidates {
		assert.NotEqual(t, b.ID, cand.ID)
	}

	// Survivors are untouched.
	assert.Equal(t, c.ID, after.Candidates[0].ID)
	assert.Equal(t, a.ID, after.Candidates[1].ID)
}

func TestDeleteCandidate_UnknownIDIsNoop(t *testing.T) {
	s := setupTestStore(t)
	before := s.Snapshot()

	assert.False(t, s.DeleteCandidate("missing-id"))
	assert.Equal(t, before.Candidates, s.Snapshot().Candidates)
}

func TestDeleteCandidate_OrphansNotesAndInteractions(t *testing.T) {
	s := setupTestStore(t)

	c := s.AddCandidate(CandidateInput{Name: "Orphan Test", Status: domain.StatusNew})
	s.AddNote(NoteInput{CandidateID: c.ID, Content: "keep me"})
	s.AddInteraction(InteractionInput{CandidateID: c.ID, Type: domain.InteractionCall, Summary: "call", Date: time.Now()})

	s.DeleteCandidate(c.ID)

	// No cascade: orphaned records remain, merely unreachable through
	// candidate-filtered views.
	data := s.Snapshot()
	assert.Len(t, data.Notes, 1)
	assert.Len(t, data.Interactions, 1)
	assert.Equal(t, c.ID, data.Notes[0].CandidateID)
}

func TestAddNote_PrependsWithTimestamp(t *testing.T) {
	s := setupTestStore(t)

	first := s.AddNote(NoteInput{CandidateID: "c1", Content: "first"})
	second := s.AddNote(NoteInput{CandidateID: "c1", Content: "second"})

	data := s.Snapshot()
	require.Len(t, data.Notes, 2)
	assert.Equal(t, second.ID, data.Notes[0].ID)
	assert.Equal(t, first.ID, data.Notes[1].ID)
	assert.NotEmpty(t, first.ID)
	assert.False(t, first.CreatedAt.IsZero())
}

func TestAddInteraction_CallerSuppliesDate(t *testing.T) {
	s := setupTestStore(t)

	occurred := time.Date(2024, 5, 20, 19, 0, 0, 0, time.UTC)
	rec := s.AddInteraction(InteractionInput{
		CandidateID: "c1",
		Type:        domain.InteractionDate,
		Summary:     "Dinner at the Italian place",
		Date:        occurred,
	})

	assert.True(t, rec.Date.Equal(occurred), "date is the occurrence time, not now")

	data := s.Snapshot()
	require.Len(t, data.Interactions, 1)
	assert.Equal(t, rec.ID, data.Interactions[0].ID)
}

func TestAddTag_AppendsToCatalogue(t *testing.T) {
	s := setupTestStore(t)

	created := s.AddTag(TagInput{Label: "Foodie", Color: "#AAAAAA"})

	data := s.Snapshot()
	require.Len(t, data.Tags, 6)
	// Tags append to the end; the catalogue is stable, not a feed.
	assert.Equal(t, created.ID, data.Tags[5].ID)
	assert.Equal(t, "Foodie", data.Tags[5].Label)
}

func TestTagCopySemantics(t *testing.T) {
	s := setupTestStore(t)

	// The concrete scenario: add a tag, assign it to c1, verify the
	// candidate holds a full copy and everyone else is untouched.
	newTag := s.AddTag(TagInput{Label: "Foodie", Color: "#AAAAAA"})

	tags := []domain.Tag{newTag}
	updated := s.UpdateCandidate("c1", CandidatePatch{Tags: &tags})
	require.NotNil(t, updated)

	require.Len(t, updated.Tags, 1)
	assert.Equal(t, domain.Tag{ID: newTag.ID, Label: "Foodie", Color: "#AAAAAA"}, updated.Tags[0])

	c2 := s.Snapshot().Candidate("c2")
	require.NotNil(t, c2)
	assert.Len(t, c2.Tags, 2, "other candidates unaffected")

	// Mutating the caller's slice afterwards must not leak into the store.
	tags[0].Label = "changed"
	assert.Equal(t, "Foodie", s.Snapshot().Candidate("c1").Tags[0].Label)
}

func TestSnapshotIsolation(t *testing.T) {
	s := setupTestStore(t)

	before := s.Snapshot()
	beforeLen := len(before.Candidates)
	beforeName := before.Candidates[0].Name

	s.AddCandidate(CandidateInput{Name: "Late Arrival", Status: domain.StatusNew})
	name := "Renamed"
	s.UpdateCandidate(before.Candidates[0].ID, CandidatePatch{Name: &name})

	// The previously taken snapshot is frozen.
	assert.Len(t, before.Candidates, beforeLen)
	assert.Equal(t, beforeName, before.Candidates[0].Name)
}

func TestPersistenceAcrossRestart(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	adapter, err := OpenAdapter(path, nil)
	require.NoError(t, err)

	s := New(adapter, nil, nil)
	created := s.AddCandidate(CandidateInput{Name: "Persistent Pia", Status: domain.StatusChatting})
	require.NoError(t, adapter.Close())

	reopened, err := OpenAdapter(path, nil)
	require.NoError(t, err)
	defer reopened.Close()

	s2 := New(reopened, nil, nil)
	data := s2.Snapshot()
	require.Len(t, data.Candidates, 3)
	assert.Equal(t, created.ID, data.Candidates[0].ID)
	assert.Equal(t, "Persistent Pia", data.Candidates[0].Name)
}

func TestReset_ErasesAndReseeds(t *testing.T) {
	s := setupTestStore(t)

	s.AddCandidate(CandidateInput{Name: "Doomed", Status: domain.StatusNew})
	s.AddNote(NoteInput{CandidateID: "c1", Content: "doomed note"})
	require.Len(t, s.Snapshot().Candidates, 3)

	data := s.Reset()

	assert.Len(t, data.Candidates, 2)
	assert.Len(t, data.Tags, 5)
	assert.Empty(t, data.Notes)
	assert.Equal(t, "c1", s.Snapshot().Candidates[0].ID)
}

// recordingIndexer captures index calls for verification.
type recordingIndexer struct {
	indexed []string
	deleted []string
}

func (r *recordingIndexer) IndexCandidate(c domain.Candidate) error {
	r.indexed = append(r.indexed, c.ID)
	return nil
}

func (r *recordingIndexer) DeleteCandidate(id string) error {
	r.deleted = append(r.deleted, id)
	return nil
}

func TestStore_KeepsIndexerInSync(t *testing.T) {
	adapter, err := OpenAdapter(filepath.Join(t.TempDir(), "test.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = adapter.Close() })

	idx := &recordingIndexer{}
	s := New(adapter, nil, idx)

	// Seed candidates are indexed on startup.
	assert.ElementsMatch(t, []string{"c1", "c2"}, idx.indexed)

	c := s.AddCandidate(CandidateInput{Name: "Indexed", Status: domain.StatusNew})
	assert.Contains(t, idx.indexed, c.ID)

	s.DeleteCandidate(c.ID)
	assert.Contains(t, idx.deleted, c.ID)
}
