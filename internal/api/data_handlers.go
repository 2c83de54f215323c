package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domainerrors "github.com/matchboardapp/matchboard-server/internal/errors"
)

func (s *Server) registerDataRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getData",
		Method:      http.MethodGet,
		Path:        "/api/v1/data",
		Summary:     "Get snapshot",
		Description: "Returns the complete application snapshot",
		Tags:        []string{"Data"},
	}, s.handleGetData)

	huma.Register(s.api, huma.Operation{
		OperationID: "resetData",
		Method:      http.MethodDelete,
		Path:        "/api/v1/data",
		Summary:     "Clear all data",
		Description: "Erases everything and restores the first-run board. Requires confirm=true.",
		Tags:        []string{"Data"},
	}, s.handleResetData)
}

// === DTOs ===

// DataResponse is the complete snapshot in wire shape.
type DataResponse struct {
	Candidates   []CandidateResponse   `json:"candidates" doc:"Candidates, newest first"`
	Notes        []NoteResponse        `json:"notes" doc:"Notes, newest first"`
	Interactions []InteractionResponse `json:"interactions" doc:"Interactions, newest first"`
	Tags         []TagResponse         `json:"tags" doc:"Tag catalogue"`
}

// DataOutput wraps the snapshot response for Huma.
type DataOutput struct {
	Body DataResponse
}

// ResetDataInput carries the explicit confirmation for clearing all
// data. This is a destructive, non-undoable operation.
type ResetDataInput struct {
	Confirm bool `query:"confirm" doc:"Must be true to proceed"`
}

// === Handlers ===

func (s *Server) handleGetData(_ context.Context, _ *struct{}) (*DataOutput, error) {
	data := s.store.Snapshot()
	return &DataOutput{
		Body: DataResponse{
			Candidates:   toCandidateResponses(data.Candidates),
			Notes:        toNoteResponses(data.Notes),
			Interactions: toInteractionResponses(data.Interactions),
			Tags:         toTagResponses(data.Tags),
		},
	}, nil
}

func (s *Server) handleResetData(_ context.Context, input *ResetDataInput) (*DataOutput, error) {
	if !input.Confirm {
		return nil, domainerrors.Validation("pass confirm=true to erase all data")
	}

	seed := s.store.Reset()
	s.logger.Info("all data erased and reseeded")

	return &DataOutput{
		Body: DataResponse{
			Candidates:   toCandidateResponses(seed.Candidates),
			Notes:        toNoteResponses(seed.Notes),
			Interactions: toInteractionResponses(seed.Interactions),
			Tags:         toTagResponses(seed.Tags),
		},
	}, nil
}
