package api

import (
	"time"

	"github.com/matchboardapp/matchboard-server/internal/domain"
)

// Response DTOs mirror the persisted blob's wire shape (camelCase
// field names) so the browser client can use API payloads and JSON
// exports interchangeably.

// TagResponse contains tag data in API responses.
type TagResponse struct {
	ID    string `json:"id" doc:"Tag ID"`
	Label string `json:"label" doc:"Display label"`
	Color string `json:"color" doc:"Display color"`
}

// CandidateResponse contains candidate data in API responses.
type CandidateResponse struct {
	ID           string        `json:"id" doc:"Candidate ID"`
	Name         string        `json:"name" doc:"Full name"`
	Age          int           `json:"age" doc:"Age in years"`
	Gender       string        `json:"gender,omitempty" doc:"Gender"`
	City         string        `json:"city,omitempty" doc:"City"`
	Job          string        `json:"job,omitempty" doc:"Occupation"`
	Status       string        `json:"status" doc:"Pipeline status"`
	Tags         []TagResponse `json:"tags" doc:"Assigned tags (full copies)"`
	Avatar       string        `json:"avatar,omitempty" doc:"Avatar image URL"`
	NotesSummary string        `json:"notesSummary" doc:"Short free-form summary"`
	CreatedAt    time.Time     `json:"createdAt" doc:"Creation time"`
	UpdatedAt    time.Time     `json:"updatedAt" doc:"Last update time"`
}

// NoteResponse contains note data in API responses.
type NoteResponse struct {
	ID          string    `json:"id" doc:"Note ID"`
	CandidateID string    `json:"candidateId" doc:"Candidate this note belongs to"`
	Content     string    `json:"content" doc:"Note text"`
	CreatedAt   time.Time `json:"createdAt" doc:"Creation time"`
}

// InteractionResponse contains interaction data in API responses.
type InteractionResponse struct {
	ID          string    `json:"id" doc:"Interaction ID"`
	CandidateID string    `json:"candidateId" doc:"Candidate this interaction belongs to"`
	Type        string    `json:"type" doc:"Interaction type"`
	Summary     string    `json:"summary" doc:"What happened"`
	Date        time.Time `json:"date" doc:"When the interaction occurred"`
}

// MessageResponse is a simple acknowledgement body.
type MessageResponse struct {
	Message string `json:"message" doc:"Human-readable confirmation"`
}

// MessageOutput wraps a message response for Huma.
type MessageOutput struct {
	Body MessageResponse
}

func toTagResponse(t domain.Tag) TagResponse {
	return TagResponse{ID: t.ID, Label: t.Label, Color: t.Color}
}

func toTagResponses(tags []domain.Tag) []TagResponse {
	out := make([]TagResponse, len(tags))
	for i, t := range tags {
		out[i] = toTagResponse(t)
	}
	return out
}

func toDomainTags(tags []TagResponse) []domain.Tag {
	out := make([]domain.Tag, len(tags))
	for i, t := range tags {
		out[i] = domain.Tag{ID: t.ID, Label: t.Label, Color: t.Color}
	}
	return out
}

func toCandidateResponse(c domain.Candidate) CandidateResponse {
	return CandidateResponse{
		ID:           c.ID,
		Name:         c.Name,
		Age:          c.Age,
		Gender:       c.Gender,
		City:         c.City,
		Job:          c.Job,
		Status:       string(c.Status),
		Tags:         toTagResponses(c.Tags),
		Avatar:       c.Avatar,
		NotesSummary: c.NotesSummary,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func toCandidateResponses(candidates []domain.Candidate) []CandidateResponse {
	out := make([]CandidateResponse, len(candidates))
	for i, c := range candidates {
		out[i] = toCandidateResponse(c)
	}
	return out
}

func toNoteResponse(n domain.Note) NoteResponse {
	return NoteResponse{
		ID:          n.ID,
		CandidateID: n.CandidateID,
		Content:     n.Content,
		CreatedAt:   n.CreatedAt,
	}
}

func toNoteResponses(notes []domain.Note) []NoteResponse {
	out := make([]NoteResponse, len(notes))
	for i, n := range notes {
		out[i] = toNoteResponse(n)
	}
	return out
}

func toInteractionResponse(rec domain.Interaction) InteractionResponse {
	return InteractionResponse{
		ID:          rec.ID,
		CandidateID: rec.CandidateID,
		Type:        string(rec.Type),
		Summary:     rec.Summary,
		Date:        rec.Date,
	}
}

func toInteractionResponses(recs []domain.Interaction) []InteractionResponse {
	out := make([]InteractionResponse, len(recs))
	for i, rec := range recs {
		out[i] = toInteractionResponse(rec)
	}
	return out
}
