package search

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/blevesearch/bleve/v2"

	"github.com/matchboardapp/matchboard-server/internal/domain"
)

// Index wraps a memory-only Bleve index with candidate operations.
// The durable snapshot lives in the store; since every startup
// reindexes the full candidate set anyway, persisting the index to
// disk would only add mapping-version bookkeeping for nothing.
//
// Thread safety: all public methods are safe for concurrent use.
type Index struct {
	index  bleve.Index
	logger *slog.Logger
	mu     sync.RWMutex
}

// Options configures the search index.
type Options struct {
	Logger *slog.Logger // Logger for operations (uses discard if nil)
}

// NewIndex creates a fresh in-memory candidate index.
func NewIndex(opts Options) (*Index, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("create index: %w", err)
	}

	return &Index{
		index:  index,
		logger: logger,
	}, nil
}

// Close closes the index and releases resources.
func (s *Index) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index.Close()
}

// IndexCandidate indexes a single candidate, replacing any prior
// version of the same id. Satisfies the store's indexer hook.
func (s *Index) IndexCandidate(c domain.Candidate) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc := CandidateToDocument(c)
	// Convert to map so field names match the mapping (lowercase)
	return s.index.Index(doc.ID, doc.ToMap())
}

// IndexCandidates indexes multiple candidates in a batch.
func (s *Index) IndexCandidates(candidates []domain.Candidate) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	batch := s.index.NewBatch()
	for _, c := range candidates {
		doc := CandidateToDocument(c)
		if err := batch.Index(doc.ID, doc.ToMap()); err != nil {
			return fmt.Errorf("batch index %s: %w", doc.ID, err)
		}
	}

	return s.index.Batch(batch)
}

// DeleteCandidate removes a candidate from the index. Satisfies the
// store's indexer hook.
func (s *Index) DeleteCandidate(id string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index.Delete(id)
}

// DocumentCount returns the total number of indexed candidates.
func (s *Index) DocumentCount() (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index.DocCount()
}
