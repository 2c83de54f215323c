package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domainerrors "github.com/matchboardapp/matchboard-server/internal/errors"
	"github.com/matchboardapp/matchboard-server/internal/search"
)

func (s *Server) registerSearchRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "searchCandidates",
		Method:      http.MethodGet,
		Path:        "/api/v1/search",
		Summary:     "Search candidates",
		Description: "Full-text search over names, notes summaries, cities and jobs with optional filters",
		Tags:        []string{"Search"},
	}, s.handleSearchCandidates)
}

// SearchInput contains search parameters.
type SearchInput struct {
	Query     string   `query:"q" doc:"Search query"`
	Statuses  []string `query:"status" doc:"Filter by status (repeatable)"`
	Tags      []string `query:"tag" doc:"Filter by tag label (repeatable)"`
	City      string   `query:"city" doc:"Filter by city"`
	MinAge    int      `query:"minAge" minimum:"0" doc:"Minimum age"`
	MaxAge    int      `query:"maxAge" minimum:"0" doc:"Maximum age"`
	Limit     int      `query:"limit" minimum:"1" maximum:"100" default:"20" doc:"Page size"`
	Offset    int      `query:"offset" minimum:"0" doc:"Page offset"`
	SortBy    string   `query:"sortBy" enum:"relevance,name,recent,age" default:"relevance" doc:"Sort key"`
	SortOrder string   `query:"sortOrder" enum:"asc,desc" default:"desc" doc:"Sort direction"`
}

// SearchOutput wraps the search result for Huma.
type SearchOutput struct {
	Body search.Result
}

func (s *Server) handleSearchCandidates(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	params := search.DefaultParams()
	params.Query = input.Query
	params.Statuses = input.Statuses
	params.Tags = input.Tags
	params.City = input.City
	params.MinAge = input.MinAge
	params.MaxAge = input.MaxAge
	if input.Limit > 0 {
		params.Limit = input.Limit
	}
	params.Offset = input.Offset
	if input.SortBy != "" {
		params.SortBy = input.SortBy
	}
	if input.SortOrder != "" {
		params.SortOrder = input.SortOrder
	}

	result, err := s.search.Search(ctx, params)
	if err != nil {
		s.logger.Error("search failed", "query", input.Query, "error", err)
		return nil, domainerrors.Internal("search failed")
	}

	return &SearchOutput{Body: *result}, nil
}
