package domain

// AppData is the full application snapshot: the unit of persistence.
// The entire value is serialized and written atomically under one key
// on every mutation.
//
// Snapshots follow a copy-on-write discipline: a mutation clones the
// current snapshot, applies its change to the clone, and publishes the
// clone. A snapshot that has been handed out is never written again,
// so readers holding an old snapshot are unaffected by later mutations.
type AppData struct {
	Candidates   []Candidate   `json:"candidates"`
	Notes        []Note        `json:"notes"`
	Interactions []Interaction `json:"interactions"`
	Tags         []Tag         `json:"tags"`
}

// Clone returns a deep copy of the snapshot.
func (d AppData) Clone() AppData {
	out := AppData{
		Candidates:   make([]Candidate, len(d.Candidates)),
		Notes:        make([]Note, len(d.Notes)),
		Interactions: make([]Interaction, len(d.Interactions)),
		Tags:         make([]Tag, len(d.Tags)),
	}
	for i, c := range d.Candidates {
		out.Candidates[i] = c.Clone()
	}
	copy(out.Notes, d.Notes)
	copy(out.Interactions, d.Interactions)
	copy(out.Tags, d.Tags)
	return out
}

// NotesFor returns the notes referencing the given candidate, in
// stored order. Orphaned notes (candidate deleted) are simply never
// returned by this filter.
func (d AppData) NotesFor(candidateID string) []Note {
	var out []Note
	for _, n := range d.Notes {
		if n.CandidateID == candidateID {
			out = append(out, n)
		}
	}
	return out
}

// InteractionsFor returns the interactions referencing the given
// candidate, in stored order.
func (d AppData) InteractionsFor(candidateID string) []Interaction {
	var out []Interaction
	for _, in := range d.Interactions {
		if in.CandidateID == candidateID {
			out = append(out, in)
		}
	}
	return out
}

// Candidate returns the candidate with the given id, or nil.
func (d AppData) Candidate(id string) *Candidate {
	for i := range d.Candidates {
		if d.Candidates[i].ID == id {
			return &d.Candidates[i]
		}
	}
	return nil
}

// Tag returns the tag with the given id, or nil.
func (d AppData) Tag(id string) *Tag {
	for i := range d.Tags {
		if d.Tags[i].ID == id {
			return &d.Tags[i]
		}
	}
	return nil
}
