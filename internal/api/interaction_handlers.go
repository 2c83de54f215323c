package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/matchboardapp/matchboard-server/internal/domain"
	"github.com/matchboardapp/matchboard-server/internal/store"
)

func (s *Server) registerInteractionRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listInteractions",
		Method:      http.MethodGet,
		Path:        "/api/v1/interactions",
		Summary:     "List interactions",
		Description: "Returns all interactions, newest first, including orphans",
		Tags:        []string{"Interactions"},
	}, s.handleListInteractions)

	huma.Register(s.api, huma.Operation{
		OperationID:   "createInteraction",
		Method:        http.MethodPost,
		Path:          "/api/v1/interactions",
		Summary:       "Create interaction",
		Description:   "Records a call, date or chat with a candidate",
		Tags:          []string{"Interactions"},
		DefaultStatus: http.StatusCreated,
	}, s.handleCreateInteraction)
}

// === DTOs ===

// ListInteractionsResponse contains all interactions.
type ListInteractionsResponse struct {
	Interactions []InteractionResponse `json:"interactions" doc:"Interactions, newest first"`
}

// ListInteractionsOutput wraps the list response for Huma.
type ListInteractionsOutput struct {
	Body ListInteractionsResponse
}

// CreateInteractionRequest is the request body for recording an
// interaction. Date is when it happened, supplied by the caller; an
// omitted date means "just now".
type CreateInteractionRequest struct {
	CandidateID string    `json:"candidateId" validate:"required" doc:"Candidate this interaction belongs to"`
	Type        string    `json:"type" validate:"required,oneof=call date chat" doc:"Interaction type"`
	Summary     string    `json:"summary" validate:"required,min=1,max=2000" doc:"What happened"`
	Date        time.Time `json:"date,omitempty" doc:"When the interaction occurred (defaults to now)"`
}

// CreateInteractionInput wraps the create request for Huma.
type CreateInteractionInput struct {
	Body CreateInteractionRequest
}

// InteractionOutput wraps a single interaction response for Huma.
type InteractionOutput struct {
	Body InteractionResponse
}

// === Handlers ===

func (s *Server) handleListInteractions(_ context.Context, _ *struct{}) (*ListInteractionsOutput, error) {
	data := s.store.Snapshot()
	return &ListInteractionsOutput{
		Body: ListInteractionsResponse{Interactions: toInteractionResponses(data.Interactions)},
	}, nil
}

func (s *Server) handleCreateInteraction(_ context.Context, input *CreateInteractionInput) (*InteractionOutput, error) {
	if err := s.validator.Validate(input.Body); err != nil {
		return nil, err
	}

	kind, _ := domain.ParseInteractionType(input.Body.Type)
	date := input.Body.Date
	if date.IsZero() {
		date = time.Now()
	}

	created := s.store.AddInteraction(store.InteractionInput{
		CandidateID: input.Body.CandidateID,
		Type:        kind,
		Summary:     input.Body.Summary,
		Date:        date,
	})

	return &InteractionOutput{Body: toInteractionResponse(created)}, nil
}
