package domain

import "time"

// Tag is a reusable labeled marker attachable to candidates.
// Candidates store full copies of tags, not references — renaming a tag
// centrally does not retroactively update candidates that already hold
// a copy. That is documented behavior, not a bug.
type Tag struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// Candidate is a person tracked through the dating pipeline.
//
// JSON field names follow the persisted blob schema (camelCase), which
// predates this server and must round-trip unchanged.
type Candidate struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Age          int       `json:"age"`
	Gender       string    `json:"gender"`
	City         string    `json:"city"`
	Job          string    `json:"job"`
	Status       Status    `json:"status"`
	Tags         []Tag     `json:"tags"`
	Avatar       string    `json:"avatar,omitempty"`
	NotesSummary string    `json:"notesSummary"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Clone returns a deep copy of the candidate.
func (c Candidate) Clone() Candidate {
	out := c
	if c.Tags != nil {
		out.Tags = make([]Tag, len(c.Tags))
		copy(out.Tags, c.Tags)
	}
	return out
}

// Note is an append-only free-text annotation on one candidate.
// Notes are never updated or deleted; deleting the candidate leaves
// them orphaned rather than cascading.
type Note struct {
	ID          string    `json:"id"`
	CandidateID string    `json:"candidateId"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Interaction is an append-only logged event on one candidate.
// Date is the occurrence time supplied by the caller, not the time
// the record was written.
type Interaction struct {
	ID          string          `json:"id"`
	CandidateID string          `json:"candidateId"`
	Type        InteractionType `json:"type"`
	Summary     string          `json:"summary"`
	Date        time.Time       `json:"date"`
}
