package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/matchboardapp/matchboard-server/internal/store"
)

func (s *Server) registerNoteRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listNotes",
		Method:      http.MethodGet,
		Path:        "/api/v1/notes",
		Summary:     "List notes",
		Description: "Returns all notes, newest first, including orphans",
		Tags:        []string{"Notes"},
	}, s.handleListNotes)

	huma.Register(s.api, huma.Operation{
		OperationID:   "createNote",
		Method:        http.MethodPost,
		Path:          "/api/v1/notes",
		Summary:       "Create note",
		Description:   "Adds a note to the front of the notes feed",
		Tags:          []string{"Notes"},
		DefaultStatus: http.StatusCreated,
	}, s.handleCreateNote)
}

// === DTOs ===

// ListNotesResponse contains all notes.
type ListNotesResponse struct {
	Notes []NoteResponse `json:"notes" doc:"Notes, newest first"`
}

// ListNotesOutput wraps the list response for Huma.
type ListNotesOutput struct {
	Body ListNotesResponse
}

// CreateNoteRequest is the request body for creating a note.
// The candidate id is not required to resolve: notes survive their
// candidate's deletion, so the feed accepts orphan references too.
type CreateNoteRequest struct {
	CandidateID string `json:"candidateId" validate:"required" doc:"Candidate this note belongs to"`
	Content     string `json:"content" validate:"required,min=1,max=10000" doc:"Note text"`
}

// CreateNoteInput wraps the create request for Huma.
type CreateNoteInput struct {
	Body CreateNoteRequest
}

// NoteOutput wraps a single note response for Huma.
type NoteOutput struct {
	Body NoteResponse
}

// === Handlers ===

func (s *Server) handleListNotes(_ context.Context, _ *struct{}) (*ListNotesOutput, error) {
	data := s.store.Snapshot()
	return &ListNotesOutput{Body: ListNotesResponse{Notes: toNoteResponses(data.Notes)}}, nil
}

func (s *Server) handleCreateNote(_ context.Context, input *CreateNoteInput) (*NoteOutput, error) {
	if err := s.validator.Validate(input.Body); err != nil {
		return nil, err
	}

	created := s.store.AddNote(store.NoteInput{
		CandidateID: input.Body.CandidateID,
		Content:     input.Body.Content,
	})

	return &NoteOutput{Body: toNoteResponse(created)}, nil
}
