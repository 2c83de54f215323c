package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/matchboardapp/matchboard-server/internal/store"
)

func (s *Server) registerTagRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listTags",
		Method:      http.MethodGet,
		Path:        "/api/v1/tags",
		Summary:     "List tags",
		Description: "Returns the tag catalogue in stable order",
		Tags:        []string{"Tags"},
	}, s.handleListTags)

	huma.Register(s.api, huma.Operation{
		OperationID:   "createTag",
		Method:        http.MethodPost,
		Path:          "/api/v1/tags",
		Summary:       "Create tag",
		Description:   "Appends a new tag to the catalogue",
		Tags:          []string{"Tags"},
		DefaultStatus: http.StatusCreated,
	}, s.handleCreateTag)
}

// === DTOs ===

// ListTagsResponse contains the tag catalogue.
type ListTagsResponse struct {
	Tags []TagResponse `json:"tags" doc:"Tag catalogue in creation order"`
}

// ListTagsOutput wraps the list tags response for Huma.
type ListTagsOutput struct {
	Body ListTagsResponse
}

// CreateTagRequest is the request body for creating a tag.
type CreateTagRequest struct {
	Label string `json:"label" validate:"required,min=1,max=50" doc:"Display label"`
	Color string `json:"color" validate:"required,hexcolor" doc:"Display color"`
}

// CreateTagInput wraps the create tag request for Huma.
type CreateTagInput struct {
	Body CreateTagRequest
}

// TagOutput wraps the tag response for Huma.
type TagOutput struct {
	Body TagResponse
}

// === Handlers ===

func (s *Server) handleListTags(_ context.Context, _ *struct{}) (*ListTagsOutput, error) {
	data := s.store.Snapshot()
	return &ListTagsOutput{Body: ListTagsResponse{Tags: toTagResponses(data.Tags)}}, nil
}

func (s *Server) handleCreateTag(_ context.Context, input *CreateTagInput) (*TagOutput, error) {
	if err := s.validator.Validate(input.Body); err != nil {
		return nil, err
	}

	created := s.store.AddTag(store.TagInput{
		Label: input.Body.Label,
		Color: input.Body.Color,
	})

	return &TagOutput{Body: toTagResponse(created)}, nil
}
