package search

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"
)

// Params configures a candidate search.
type Params struct {
	Query string // User's search query

	// Filters
	Statuses []string // Filter by exact status values (empty = all)
	Tags     []string // Filter by exact tag labels
	City     string   // Filter by city
	MinAge   int
	MaxAge   int

	// Pagination
	Limit  int
	Offset int

	// Sorting
	SortBy    string // "relevance", "name", "recent", "age"
	SortOrder string // "asc", "desc"

	Highlight bool // Include match highlighting
}

// DefaultParams returns sensible defaults.
func DefaultParams() Params {
	return Params{
		Limit:     20,
		Offset:    0,
		SortBy:    "relevance",
		SortOrder: "desc",
		Highlight: true,
	}
}

// Result represents the search results.
type Result struct {
	Query  string `json:"query"`
	Total  uint64 `json:"total"`
	TookMs int64  `json:"took_ms"`
	Hits   []Hit  `json:"hits"`
}

// Hit represents a single matched candidate.
type Hit struct {
	ID           string            `json:"id"`
	Score        float64           `json:"score"`
	Name         string            `json:"name"`
	City         string            `json:"city,omitempty"`
	Job          string            `json:"job,omitempty"`
	Status       string            `json:"status,omitempty"`
	NotesSummary string            `json:"notesSummary,omitempty"`
	Tags         []string          `json:"tags,omitempty"`
	Age          int               `json:"age,omitempty"`
	Highlights   map[string]string `json:"highlights,omitempty"`
}

// Search executes a candidate search.
func (s *Index) Search(ctx context.Context, params Params) (*Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	searchQuery := buildSearchQuery(params)
	searchRequest := bleve.NewSearchRequestOptions(searchQuery, params.Limit, params.Offset, false)

	addSorting(searchRequest, params)

	if params.Highlight {
		searchRequest.Highlight = bleve.NewHighlight()
		searchRequest.Highlight.AddField("name")
		searchRequest.Highlight.AddField("notes_summary")
	}

	searchRequest.Fields = []string{
		"id", "name", "city", "job", "status", "notes_summary", "tags", "age",
	}

	searchResult, err := s.index.SearchInContext(ctx, searchRequest)
	if err != nil {
		return nil, fmt.Errorf("execute search: %w", err)
	}

	result := &Result{
		Query:  params.Query,
		Total:  searchResult.Total,
		TookMs: searchResult.Took.Milliseconds(),
		Hits:   make([]Hit, 0, len(searchResult.Hits)),
	}

	for _, hit := range searchResult.Hits {
		h := Hit{
			ID:    hit.ID,
			Score: hit.Score,
		}

		if n, ok := hit.Fields["name"].(string); ok {
			h.Name = n
		}
		if c, ok := hit.Fields["city"].(string); ok {
			h.City = c
		}
		if j, ok := hit.Fields["job"].(string); ok {
			h.Job = j
		}
		if st, ok := hit.Fields["status"].(string); ok {
			h.Status = st
		}
		if ns, ok := hit.Fields["notes_summary"].(string); ok {
			h.NotesSummary = ns
		}
		if a, ok := hit.Fields["age"].(float64); ok {
			h.Age = int(a)
		}

		// Bleve returns a bare string for single-valued fields and a
		// slice for multi-valued ones.
		switch tags := hit.Fields["tags"].(type) {
		case string:
			h.Tags = []string{tags}
		case []interface{}:
			for _, t := range tags {
				if label, ok := t.(string); ok {
					h.Tags = append(h.Tags, label)
				}
			}
		}

		if len(hit.Fragments) > 0 {
			h.Highlights = make(map[string]string)
			for field, fragments := range hit.Fragments {
				if len(fragments) > 0 {
					h.Highlights[field] = fragments[0]
				}
			}
		}

		result.Hits = append(result.Hits, h)
	}

	return result, nil
}

// buildSearchQuery constructs the Bleve query from params.
func buildSearchQuery(params Params) query.Query {
	var queries []query.Query

	// Main text query spans name, notes summary, city and job. Name
	// matches are boosted so searching "Sarah" surfaces Sarah before
	// someone whose notes merely mention her.
	if params.Query != "" {
		textQueries := []query.Query{}

		nameMatch := bleve.NewMatchQuery(params.Query)
		nameMatch.SetField("name")
		nameMatch.SetBoost(3.0)
		textQueries = append(textQueries, nameMatch)

		notesMatch := bleve.NewMatchQuery(params.Query)
		notesMatch.SetField("notes_summary")
		notesMatch.SetBoost(1.5)
		textQueries = append(textQueries, notesMatch)

		cityMatch := bleve.NewMatchQuery(params.Query)
		cityMatch.SetField("city")
		textQueries = append(textQueries, cityMatch)

		jobMatch := bleve.NewMatchQuery(params.Query)
		jobMatch.SetField("job")
		textQueries = append(textQueries, jobMatch)

		// Fuzzy matching for typo tolerance on name
		fuzzyQuery := bleve.NewFuzzyQuery(params.Query)
		fuzzyQuery.SetFuzziness(1)
		fuzzyQuery.SetField("name")
		fuzzyQuery.SetBoost(0.8)
		textQueries = append(textQueries, fuzzyQuery)

		// Prefix query for autocomplete (minimum 2 chars)
		if len(params.Query) >= 2 {
			prefixQuery := bleve.NewPrefixQuery(strings.ToLower(params.Query))
			prefixQuery.SetField("name")
			prefixQuery.SetBoost(0.5)
			textQueries = append(textQueries, prefixQuery)
		}

		queries = append(queries, bleve.NewDisjunctionQuery(textQueries...))
	}

	// Status filter (OR across values)
	if len(params.Statuses) > 0 {
		statusQueries := make([]query.Query, len(params.Statuses))
		for i, st := range params.Statuses {
			sq := bleve.NewTermQuery(st)
			sq.SetField("status")
			statusQueries[i] = sq
		}
		queries = append(queries, bleve.NewDisjunctionQuery(statusQueries...))
	}

	// Tag label filter (exact match, OR across labels)
	if len(params.Tags) > 0 {
		tagQueries := make([]query.Query, len(params.Tags))
		for i, label := range params.Tags {
			tq := bleve.NewTermQuery(label)
			tq.SetField("tags")
			tagQueries[i] = tq
		}
		queries = append(queries, bleve.NewDisjunctionQuery(tagQueries...))
	}

	// City filter
	if params.City != "" {
		cq := bleve.NewMatchQuery(params.City)
		cq.SetField("city")
		queries = append(queries, cq)
	}

	// Age range filter
	if params.MinAge > 0 || params.MaxAge > 0 {
		min := float64(params.MinAge)
		max := float64(params.MaxAge)
		if params.MaxAge == 0 {
			max = math.MaxFloat64
		}
		rangeQuery := bleve.NewNumericRangeQuery(&min, &max)
		rangeQuery.SetField("age")
		queries = append(queries, rangeQuery)
	}

	// Combine all queries with AND
	if len(queries) == 0 {
		return bleve.NewMatchAllQuery()
	}
	if len(queries) == 1 {
		return queries[0]
	}
	return bleve.NewConjunctionQuery(queries...)
}

// addSorting configures sort order.
func addSorting(req *bleve.SearchRequest, params Params) {
	switch params.SortBy {
	case "name":
		if params.SortOrder == "desc" {
			req.SortBy([]string{"-name"})
		} else {
			req.SortBy([]string{"name"})
		}
	case "recent":
		if params.SortOrder == "asc" {
			req.SortBy([]string{"created_at"})
		} else {
			req.SortBy([]string{"-created_at"})
		}
	case "age":
		if params.SortOrder == "desc" {
			req.SortBy([]string{"-age"})
		} else {
			req.SortBy([]string{"age"})
		}
	default:
		// Relevance (score) is default - Bleve handles this
		req.SortBy([]string{"-_score"})
	}
}
