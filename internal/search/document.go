// Package search provides full-text candidate search using Bleve.
// The index is an in-memory projection of the store snapshot: it is
// rebuilt from scratch on every startup and kept in sync through the
// store's indexer hook.
package search

import (
	"github.com/matchboardapp/matchboard-server/internal/domain"
)

// CandidateDocument is the flattened shape a candidate takes inside
// the Bleve index. Tag labels are denormalized so a query for "Funny"
// finds everyone carrying that tag without a join.
type CandidateDocument struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	City         string   `json:"city"`
	Job          string   `json:"job"`
	Gender       string   `json:"gender"`
	NotesSummary string   `json:"notes_summary"`
	Status       string   `json:"status"`
	Tags         []string `json:"tags,omitempty"`
	Age          int      `json:"age,omitempty"`
	CreatedAt    int64    `json:"created_at"` // Unix millis
	UpdatedAt    int64    `json:"updated_at"` // Unix millis
}

// ToMap converts the document to a map with lowercase field names.
// Bleve by default uses Go struct field names (capitalized), but our
// mapping uses lowercase names, so we convert explicitly.
func (d *CandidateDocument) ToMap() map[string]interface{} {
	m := map[string]interface{}{
		"id":         d.ID,
		"name":       d.Name,
		"status":     d.Status,
		"created_at": d.CreatedAt,
		"updated_at": d.UpdatedAt,
	}

	if d.City != "" {
		m["city"] = d.City
	}
	if d.Job != "" {
		m["job"] = d.Job
	}
	if d.Gender != "" {
		m["gender"] = d.Gender
	}
	if d.NotesSummary != "" {
		m["notes_summary"] = d.NotesSummary
	}
	if len(d.Tags) > 0 {
		m["tags"] = d.Tags
	}
	if d.Age > 0 {
		m["age"] = d.Age
	}

	return m
}

// CandidateToDocument flattens a domain candidate for indexing.
func CandidateToDocument(c domain.Candidate) *CandidateDocument {
	labels := make([]string, 0, len(c.Tags))
	for _, t := range c.Tags {
		labels = append(labels, t.Label)
	}

	return &CandidateDocument{
		ID:           c.ID,
		Name:         c.Name,
		City:         c.City,
		Job:          c.Job,
		Gender:       c.Gender,
		NotesSummary: c.NotesSummary,
		Status:       string(c.Status),
		Tags:         labels,
		Age:          c.Age,
		CreatedAt:    c.CreatedAt.UnixMilli(),
		UpdatedAt:    c.UpdatedAt.UnixMilli(),
	}
}
