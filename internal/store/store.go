// Package store owns the authoritative in-memory snapshot and its
// durable-persistence contract.
//
// Every mutation clones the current snapshot, applies one change to
// the clone, publishes the clone, and then fires a best-effort save of
// the whole snapshot through the persistence adapter. In-memory state
// is always ahead of (or equal to) the durable copy; a failed save
// leaves the durable copy stale until the next mutation writes again.
package store

import (
	"log/slog"
	"sync"
	"time"

	"github.com/matchboardapp/matchboard-server/internal/domain"
	"github.com/matchboardapp/matchboard-server/internal/id"
)

// Indexer is the hook for keeping a search index in sync with
// candidate changes. Store uses it without depending on search
// implementation details.
type Indexer interface {
	IndexCandidate(c domain.Candidate) error
	DeleteCandidate(id string) error
}

// NoopIndexer is a no-op implementation of Indexer for testing.
type NoopIndexer struct{}

// IndexCandidate implements Indexer as a no-op.
func (NoopIndexer) IndexCandidate(domain.Candidate) error { return nil }

// DeleteCandidate implements Indexer as a no-op.
func (NoopIndexer) DeleteCandidate(string) error { return nil }

// Store is the single source of truth for application data during a
// session. There is exactly one logical writer; the mutex exists
// because the HTTP layer serves concurrently, and it preserves the
// atomic snapshot-replace contract: readers see either the old or the
// new complete snapshot, never a partial one.
type Store struct {
	mu      sync.RWMutex
	adapter *Adapter
	data    domain.AppData
	logger  *slog.Logger
	indexer Indexer
}

// New creates a store: loads the persisted blob, sanitizes it into the
// current snapshot, writes the sanitized result straight back (which
// both persists the first-run seed and repairs any backfilled legacy
// blob on disk), and primes the search index.
func New(adapter *Adapter, logger *slog.Logger, indexer Indexer) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if indexer == nil {
		indexer = NoopIndexer{}
	}

	raw, _ := adapter.Load()
	s := &Store{
		adapter: adapter,
		data:    Sanitize(raw),
		logger:  logger,
		indexer: indexer,
	}

	s.persist(s.data)
	for _, c := range s.data.Candidates {
		s.index(c)
	}

	return s
}

// Snapshot returns the current complete snapshot. The returned value
// is never mutated afterwards — mutations publish fresh clones — so
// callers may hold it as long as they like.
func (s *Store) Snapshot() domain.AppData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// CandidateInput carries the caller-supplied fields of a new
// candidate; id and both timestamps are assigned by the store.
type CandidateInput struct {
	Name         string
	Age          int
	Gender       string
	City         string
	Job          string
	Status       domain.Status
	Tags         []domain.Tag
	Avatar       string
	NotesSummary string
}

// AddCandidate inserts a new candidate at the front of the sequence
// (most recently added first) and returns the created record.
func (s *Store) AddCandidate(in CandidateInput) domain.Candidate {
	now := time.Now()
	c := domain.Candidate{
		ID:           id.MustGenerate(id.PrefixCandidate),
		Name:         in.Name,
		Age:          in.Age,
		Gender:       in.Gender,
		City:         in.City,
		Job:          in.Job,
		Status:       in.Status,
		Tags:         cloneTags(in.Tags),
		Avatar:       in.Avatar,
		NotesSummary: in.NotesSummary,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if c.Tags == nil {
		c.Tags = []domain.Tag{}
	}

	s.mu.Lock()
	next := s.data.Clone()
	next.Candidates = append([]domain.Candidate{c}, next.Candidates...)
	s.data = next
	s.mu.Unlock()

	s.persist(next)
	s.index(c)
	return c.Clone()
}

// CandidatePatch carries a partial candidate update. Nil fields are
// left untouched; Tags replaces the whole list (full tag copies, per
// the copy-not-reference contract).
type CandidatePatch struct {
	Name         *string
	Age          *int
	Gender       *string
	City         *string
	Job          *string
	Status       *domain.Status
	Tags         *[]domain.Tag
	Avatar       *string
	NotesSummary *string
}

// UpdateCandidate merges the patch over the candidate with the given
// id and refreshes its updatedAt. An unknown id is a silent no-op and
// returns nil — by contract, not an error.
func (s *Store) UpdateCandidate(candidateID string, patch CandidatePatch) *domain.Candidate {
	s.mu.Lock()
	next := s.data.Clone()

	var updated *domain.Candidate
	for i := range next.Candidates {
		if next.Candidates[i].ID != candidateID {
			continue
		}
		c := &next.Candidates[i]
		applyPatch(c, patch)
		c.UpdatedAt = time.Now()
		updated = c
		break
	}

	if updated == nil {
		s.mu.Unlock()
		return nil
	}

	s.data = next
	result := updated.Clone()
	s.mu.Unlock()

	s.persist(next)
	s.index(result)
	return &result
}

// DeleteCandidate removes the candidate with the given id. Notes and
// interactions referencing it are deliberately left in place — they
// become unreachable through candidate-filtered views, nothing more.
// Unknown ids are silent no-ops; returns whether a record was removed.
func (s *Store) DeleteCandidate(candidateID string) bool {
	s.mu.Lock()
	next := s.data.Clone()

	found := false
	kept := next.Candidates[:0]
	for _, c := range next.Candidates {
		if c.ID == candidateID {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	next.Candidates = kept

	if !found {
		s.mu.Unlock()
		return false
	}

	s.data = next
	s.mu.Unlock()

	s.persist(next)
	if err := s.indexer.DeleteCandidate(candidateID); err != nil {
		s.logger.Warn("failed to remove candidate from search index", "candidate_id", candidateID, "error", err)
	}
	return true
}

// NoteInput carries the caller-supplied fields of a new note.
type NoteInput struct {
	CandidateID string
	Content     string
}

// AddNote inserts a new note at the front of the notes sequence.
// Notes are append-only; there is no update or delete.
func (s *Store) AddNote(in NoteInput) domain.Note {
	n := domain.Note{
		ID:          id.MustGenerate(id.PrefixNote),
		CandidateID: in.CandidateID,
		Content:     in.Content,
		CreatedAt:   time.Now(),
	}

	s.mu.Lock()
	next := s.data.Clone()
	next.Notes = append([]domain.Note{n}, next.Notes...)
	s.data = next
	s.mu.Unlock()

	s.persist(next)
	return n
}

// InteractionInput carries the caller-supplied fields of a new
// interaction. Date is the occurrence time, not "now".
type InteractionInput struct {
	CandidateID string
	Type        domain.InteractionType
	Summary     string
	Date        time.Time
}

// AddInteraction inserts a new interaction at the front of the
// interactions sequence.
func (s *Store) AddInteraction(in InteractionInput) domain.Interaction {
	rec := domain.Interaction{
		ID:          id.MustGenerate(id.PrefixInteraction),
		CandidateID: in.CandidateID,
		Type:        in.Type,
		Summary:     in.Summary,
		Date:        in.Date,
	}

	s.mu.Lock()
	next := s.data.Clone()
	next.Interactions = append([]domain.Interaction{rec}, next.Interactions...)
	s.data = next
	s.mu.Unlock()

	s.persist(next)
	return rec
}

// TagInput carries the caller-supplied fields of a new tag.
type TagInput struct {
	Label string
	Color string
}

// AddTag appends a new tag to the end of the tag catalogue. Appended,
// not prepended: tags are a stable reference list, not a feed.
func (s *Store) AddTag(in TagInput) domain.Tag {
	t := domain.Tag{
		ID:    id.MustGenerate(id.PrefixTag),
		Label: in.Label,
		Color: in.Color,
	}

	s.mu.Lock()
	next := s.data.Clone()
	next.Tags = append(next.Tags, t)
	s.data = next
	s.mu.Unlock()

	s.persist(next)
	return t
}

// Reset erases the persisted blob and restarts from first-run state.
// This is the adapter-level clear-all operation, not a regular store
// mutation; the API layer gates it behind explicit confirmation.
func (s *Store) Reset() domain.AppData {
	if err := s.adapter.Erase(); err != nil {
		s.logger.Warn("failed to erase persisted snapshot", "error", err)
	}

	seed := Seed()
	s.mu.Lock()
	old := s.data
	s.data = seed
	s.mu.Unlock()

	s.persist(seed)

	for _, c := range old.Candidates {
		if err := s.indexer.DeleteCandidate(c.ID); err != nil {
			s.logger.Warn("failed to remove candidate from search index", "candidate_id", c.ID, "error", err)
		}
	}
	for _, c := range seed.Candidates {
		s.index(c)
	}

	return seed
}

// persist writes the snapshot through the adapter. Failures are logged
// and absorbed: the in-memory snapshot stays authoritative and the
// next mutation attempts a fresh full write.
func (s *Store) persist(data domain.AppData) {
	if err := s.adapter.Save(data); err != nil {
		s.logger.Warn("failed to persist snapshot, continuing in memory", "error", err)
	}
}

func (s *Store) index(c domain.Candidate) {
	if err := s.indexer.IndexCandidate(c); err != nil {
		s.logger.Warn("failed to index candidate", "candidate_id", c.ID, "error", err)
	}
}

func applyPatch(c *domain.Candidate, patch CandidatePatch) {
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Age != nil {
		c.Age = *patch.Age
	}
	if patch.Gender != nil {
		c.Gender = *patch.Gender
	}
	if patch.City != nil {
		c.City = *patch.City
	}
	if patch.Job != nil {
		c.Job = *patch.Job
	}
	if patch.Status != nil {
		c.Status = *patch.Status
	}
	if patch.Tags != nil {
		c.Tags = cloneTags(*patch.Tags)
		if c.Tags == nil {
			c.Tags = []domain.Tag{}
		}
	}
	if patch.Avatar != nil {
		c.Avatar = *patch.Avatar
	}
	if patch.NotesSummary != nil {
		c.NotesSummary = *patch.NotesSummary
	}
}

func cloneTags(tags []domain.Tag) []domain.Tag {
	if tags == nil {
		return nil
	}
	out := make([]domain.Tag, len(tags))
	copy(out, tags)
	return out
}
