package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/matchboardapp/matchboard-server/internal/domain"
	domainerrors "github.com/matchboardapp/matchboard-server/internal/errors"
	"github.com/matchboardapp/matchboard-server/internal/store"
)

func (s *Server) registerCandidateRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listCandidates",
		Method:      http.MethodGet,
		Path:        "/api/v1/candidates",
		Summary:     "List candidates",
		Description: "Returns all candidates, most recently added first",
		Tags:        []string{"Candidates"},
	}, s.handleListCandidates)

	huma.Register(s.api, huma.Operation{
		OperationID:   "createCandidate",
		Method:        http.MethodPost,
		Path:          "/api/v1/candidates",
		Summary:       "Create candidate",
		Description:   "Adds a new candidate to the front of the board",
		Tags:          []string{"Candidates"},
		DefaultStatus: http.StatusCreated,
	}, s.handleCreateCandidate)

	huma.Register(s.api, huma.Operation{
		OperationID: "getCandidate",
		Method:      http.MethodGet,
		Path:        "/api/v1/candidates/{id}",
		Summary:     "Get candidate",
		Description: "Returns a candidate by ID",
		Tags:        []string{"Candidates"},
	}, s.handleGetCandidate)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateCandidate",
		Method:      http.MethodPatch,
		Path:        "/api/v1/candidates/{id}",
		Summary:     "Update candidate",
		Description: "Merges the given fields into a candidate and refreshes its update time",
		Tags:        []string{"Candidates"},
	}, s.handleUpdateCandidate)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteCandidate",
		Method:      http.MethodDelete,
		Path:        "/api/v1/candidates/{id}",
		Summary:     "Delete candidate",
		Description: "Removes a candidate; their notes and interactions are kept",
		Tags:        []string{"Candidates"},
	}, s.handleDeleteCandidate)

	huma.Register(s.api, huma.Operation{
		OperationID: "getCandidateNotes",
		Method:      http.MethodGet,
		Path:        "/api/v1/candidates/{id}/notes",
		Summary:     "Get candidate notes",
		Description: "Returns the candidate's notes, newest first",
		Tags:        []string{"Candidates"},
	}, s.handleGetCandidateNotes)

	huma.Register(s.api, huma.Operation{
		OperationID: "getCandidateInteractions",
		Method:      http.MethodGet,
		Path:        "/api/v1/candidates/{id}/interactions",
		Summary:     "Get candidate interactions",
		Description: "Returns the candidate's interactions, newest first",
		Tags:        []string{"Candidates"},
	}, s.handleGetCandidateInteractions)
}

// === DTOs ===

// ListCandidatesResponse contains all candidates.
type ListCandidatesResponse struct {
	Candidates []CandidateResponse `json:"candidates" doc:"Candidates, newest first"`
}

// ListCandidatesOutput wraps the list response for Huma.
type ListCandidatesOutput struct {
	Body ListCandidatesResponse
}

// CreateCandidateRequest is the request body for creating a candidate.
type CreateCandidateRequest struct {
	Name         string        `json:"name" validate:"required,min=1,max=120" doc:"Full name"`
	Age          int           `json:"age,omitempty" validate:"gte=0,lte=150" doc:"Age in years"`
	Gender       string        `json:"gender,omitempty" validate:"max=40" doc:"Gender"`
	City         string        `json:"city,omitempty" validate:"max=120" doc:"City"`
	Job          string        `json:"job,omitempty" validate:"max=120" doc:"Occupation"`
	Status       string        `json:"status" validate:"required,oneof=new chatting 'met once' 'on hold' ended" doc:"Pipeline status"`
	Tags         []TagResponse `json:"tags,omitempty" doc:"Tags to assign (stored as full copies)"`
	Avatar       string        `json:"avatar,omitempty" validate:"max=2048" doc:"Avatar image URL"`
	NotesSummary string        `json:"notesSummary,omitempty" validate:"max=2000" doc:"Short free-form summary"`
}

// CreateCandidateInput wraps the create request for Huma.
type CreateCandidateInput struct {
	Body CreateCandidateRequest
}

// CandidateOutput wraps a single candidate response for Huma.
type CandidateOutput struct {
	Body CandidateResponse
}

// GetCandidateInput contains parameters for getting a candidate.
type GetCandidateInput struct {
	ID string `path:"id" doc:"Candidate ID"`
}

// UpdateCandidateRequest is the request body for a partial update.
// Absent fields are left untouched; tags replace the whole list.
type UpdateCandidateRequest struct {
	Name         *string        `json:"name,omitempty" validate:"omitempty,min=1,max=120" doc:"Full name"`
	Age          *int           `json:"age,omitempty" validate:"omitempty,gte=0,lte=150" doc:"Age in years"`
	Gender       *string        `json:"gender,omitempty" validate:"omitempty,max=40" doc:"Gender"`
	City         *string        `json:"city,omitempty" validate:"omitempty,max=120" doc:"City"`
	Job          *string        `json:"job,omitempty" validate:"omitempty,max=120" doc:"Occupation"`
	Status       *string        `json:"status,omitempty" validate:"omitempty,oneof=new chatting 'met once' 'on hold' ended" doc:"Pipeline status"`
	Tags         *[]TagResponse `json:"tags,omitempty" doc:"Replacement tag list (full copies)"`
	Avatar       *string        `json:"avatar,omitempty" validate:"omitempty,max=2048" doc:"Avatar image URL"`
	NotesSummary *string        `json:"notesSummary,omitempty" validate:"omitempty,max=2000" doc:"Short free-form summary"`
}

// UpdateCandidateInput wraps the update request for Huma.
type UpdateCandidateInput struct {
	ID   string `path:"id" doc:"Candidate ID"`
	Body UpdateCandidateRequest
}

// CandidateNotesResponse contains a candidate's notes.
type CandidateNotesResponse struct {
	Notes []NoteResponse `json:"notes" doc:"Notes, newest first"`
}

// CandidateNotesOutput wraps the notes response for Huma.
type CandidateNotesOutput struct {
	Body CandidateNotesResponse
}

// CandidateInteractionsResponse contains a candidate's interactions.
type CandidateInteractionsResponse struct {
	Interactions []InteractionResponse `json:"interactions" doc:"Interactions, newest first"`
}

// CandidateInteractionsOutput wraps the interactions response for Huma.
type CandidateInteractionsOutput struct {
	Body CandidateInteractionsResponse
}

// === Handlers ===

func (s *Server) handleListCandidates(_ context.Context, _ *struct{}) (*ListCandidatesOutput, error) {
	data := s.store.Snapshot()
	return &ListCandidatesOutput{
		Body: ListCandidatesResponse{Candidates: toCandidateResponses(data.Candidates)},
	}, nil
}

func (s *Server) handleCreateCandidate(_ context.Context, input *CreateCandidateInput) (*CandidateOutput, error) {
	if err := s.validator.Validate(input.Body); err != nil {
		return nil, err
	}

	status, _ := domain.ParseStatus(input.Body.Status)
	created := s.store.AddCandidate(store.CandidateInput{
		Name:         input.Body.Name,
		Age:          input.Body.Age,
		Gender:       input.Body.Gender,
		City:         input.Body.City,
		Job:          input.Body.Job,
		Status:       status,
		Tags:         toDomainTags(input.Body.Tags),
		Avatar:       input.Body.Avatar,
		NotesSummary: input.Body.NotesSummary,
	})

	return &CandidateOutput{Body: toCandidateResponse(created)}, nil
}

func (s *Server) handleGetCandidate(_ context.Context, input *GetCandidateInput) (*CandidateOutput, error) {
	c := s.store.Snapshot().Candidate(input.ID)
	if c == nil {
		return nil, domainerrors.NotFoundf("candidate %s not found", input.ID)
	}
	return &CandidateOutput{Body: toCandidateResponse(*c)}, nil
}

func (s *Server) handleUpdateCandidate(_ context.Context, input *UpdateCandidateInput) (*CandidateOutput, error) {
	if err := s.validator.Validate(input.Body); err != nil {
		return nil, err
	}

	patch := store.CandidatePatch{
		Name:         input.Body.Name,
		Age:          input.Body.Age,
		Gender:       input.Body.Gender,
		City:         input.Body.City,
		Job:          input.Body.Job,
		Avatar:       input.Body.Avatar,
		NotesSummary: input.Body.NotesSummary,
	}
	if input.Body.Status != nil {
		status, _ := domain.ParseStatus(*input.Body.Status)
		patch.Status = &status
	}
	if input.Body.Tags != nil {
		tags := toDomainTags(*input.Body.Tags)
		patch.Tags = &tags
	}

	// The store treats an unknown id as a no-op; the HTTP surface
	// turns that into a 404 so the client learns the board moved on.
	updated := s.store.UpdateCandidate(input.ID, patch)
	if updated == nil {
		return nil, domainerrors.NotFoundf("candidate %s not found", input.ID)
	}

	return &CandidateOutput{Body: toCandidateResponse(*updated)}, nil
}

func (s *Server) handleDeleteCandidate(_ context.Context, input *GetCandidateInput) (*MessageOutput, error) {
	if !s.store.DeleteCandidate(input.ID) {
		return nil, domainerrors.NotFoundf("candidate %s not found", input.ID)
	}
	return &MessageOutput{Body: MessageResponse{Message: "Candidate deleted"}}, nil
}

func (s *Server) handleGetCandidateNotes(_ context.Context, input *GetCandidateInput) (*CandidateNotesOutput, error) {
	data := s.store.Snapshot()
	if data.Candidate(input.ID) == nil {
		return nil, domainerrors.NotFoundf("candidate %s not found", input.ID)
	}
	return &CandidateNotesOutput{
		Body: CandidateNotesResponse{Notes: toNoteResponses(data.NotesFor(input.ID))},
	}, nil
}

func (s *Server) handleGetCandidateInteractions(_ context.Context, input *GetCandidateInput) (*CandidateInteractionsOutput, error) {
	data := s.store.Snapshot()
	if data.Candidate(input.ID) == nil {
		return nil, domainerrors.NotFoundf("candidate %s not found", input.ID)
	}
	return &CandidateInteractionsOutput{
		Body: CandidateInteractionsResponse{Interactions: toInteractionResponses(data.InteractionsFor(input.ID))},
	}, nil
}
