package api

import (
	"encoding/json/v2"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchboardapp/matchboard-server/internal/config"
	"github.com/matchboardapp/matchboard-server/internal/search"
	"github.com/matchboardapp/matchboard-server/internal/store"
)

// testServer wraps the API server for handler testing.
type testServer struct {
	*Server
	api humatest.TestAPI
}

// setupTestServer creates a full server over a temporary database.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	adapter, err := store.OpenAdapter(filepath.Join(t.TempDir(), "test.db"), nil)
	require.NoError(t, err)

	idx, err := search.NewIndex(search.Options{})
	require.NoError(t, err)

	st := store.New(adapter, nil, idx)

	cfg := &config.Config{
		Server: config.ServerConfig{
			Name:           "Matchboard Test",
			Port:           "8080",
			AllowedOrigins: []string{"http://localhost:5173"},
			// Generous limits so tests never trip the throttle.
			MutationRPS:   1000,
			MutationBurst: 1000,
		},
	}

	logger := slog.New(slog.DiscardHandler)
	s := NewServer(cfg, st, idx, logger)

	t.Cleanup(func() {
		s.Close()
		_ = idx.Close()
		_ = adapter.Close()
	})

	return &testServer{
		Server: s,
		api:    humatest.Wrap(t, s.api),
	}
}

func TestHealthCheck(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/health")
	assert.Equal(t, http.StatusOK, resp.Code)

	var body HealthResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body.Status)
}

func TestListCandidates_SeedOnFirstRun(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/candidates")
	assert.Equal(t, http.StatusOK, resp.Code)

	var body ListCandidatesResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body.Candidates, 2)
	assert.Equal(t, "Sarah Jenkins", body.Candidates[0].Name)
	assert.Equal(t, "chatting", body.Candidates[0].Status)
}

func TestCreateCandidate(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/candidates", map[string]any{
		"name":         "Lena Vogel",
		"age":          27,
		"city":         "Cologne",
		"job":          "Teacher",
		"status":       "new",
		"notesSummary": "Met at a friend's party.",
	})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var created CandidateResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Lena Vogel", created.Name)
	assert.True(t, created.CreatedAt.Equal(created.UpdatedAt))

	// New candidate leads the list.
	listResp := ts.api.Get("/api/v1/candidates")
	var list ListCandidatesResponse
	require.NoError(t, json.Unmarshal(listResp.Body.Bytes(), &list))
	require.Len(t, list.Candidates, 3)
	assert.Equal(t, created.ID, list.Candidates[0].ID)
}

func TestCreateCandidate_ValidationFailures(t *testing.T) {
	ts := setupTestServer(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing name", map[string]any{"status": "new"}},
		{"unknown status", map[string]any{"name": "X", "status": "ghosted"}},
		{"negative age", map[string]any{"name": "X", "status": "new", "age": -4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := ts.api.Post("/api/v1/candidates", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.Code, resp.Body.String())
		})
	}
}

func TestGetCandidate_NotFound(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/candidates/nope")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestUpdateCandidate(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Patch("/api/v1/candidates/c1", map[string]any{
		"city":   "Hamburg",
		"status": "on hold",
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var updated CandidateResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &updated))
	assert.Equal(t, "c1", updated.ID)
	assert.Equal(t, "Hamburg", updated.City)
	assert.Equal(t, "on hold", updated.Status)
	assert.Equal(t, "Sarah Jenkins", updated.Name, "untouched fields survive")
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))
}

func TestUpdateCandidate_NotFound(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Patch("/api/v1/candidates/nope", map[string]any{"city": "X"})
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestDeleteCandidate(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Delete("/api/v1/candidates/c2")
	require.Equal(t, http.StatusOK, resp.Code)

	assert.Equal(t, http.StatusNotFound, ts.api.Get("/api/v1/candidates/c2").Code)
	assert.Equal(t, http.StatusNotFound, ts.api.Delete("/api/v1/candidates/c2").Code)
}

func TestDeleteCandidate_KeepsNotes(t *testing.T) {
	ts := setupTestServer(t)

	noteResp := ts.api.Post("/api/v1/notes", map[string]any{
		"candidateId": "c1",
		"content":     "survives deletion",
	})
	require.Equal(t, http.StatusCreated, noteResp.Code, noteResp.Body.String())

	require.Equal(t, http.StatusOK, ts.api.Delete("/api/v1/candidates/c1").Code)

	listResp := ts.api.Get("/api/v1/notes")
	var list ListNotesResponse
	require.NoError(t, json.Unmarshal(listResp.Body.Bytes(), &list))
	require.Len(t, list.Notes, 1)
	assert.Equal(t, "c1", list.Notes[0].CandidateID)
}

func TestCandidateNotes_Filtered(t *testing.T) {
	ts := setupTestServer(t)

	for _, body := range []map[string]any{
		{"candidateId": "c1", "content": "first for c1"},
		{"candidateId": "c2", "content": "for c2"},
		{"candidateId": "c1", "content": "second for c1"},
	} {
		require.Equal(t, http.StatusCreated, ts.api.Post("/api/v1/notes", body).Code)
	}

	resp := ts.api.Get("/api/v1/candidates/c1/notes")
	require.Equal(t, http.StatusOK, resp.Code)

	var body CandidateNotesResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body.Notes, 2)
	assert.Equal(t, "second for c1", body.Notes[0].Content)
	assert.Equal(t, "first for c1", body.Notes[1].Content)
}

func TestCreateInteraction(t *testing.T) {
	ts := setupTestServer(t)

	occurred := time.Date(2024, 5, 20, 19, 0, 0, 0, time.UTC)
	resp := ts.api.Post("/api/v1/interactions", map[string]any{
		"candidateId": "c1",
		"type":        "date",
		"summary":     "Dinner at the Italian place",
		"date":        occurred,
	})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var created InteractionResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	assert.Equal(t, "date", created.Type)
	assert.True(t, created.Date.Equal(occurred))
}

func TestCreateInteraction_RejectsUnknownType(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/interactions", map[string]any{
		"candidateId": "c1",
		"type":        "letter",
		"summary":     "wrote a letter",
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestTags_ListAndCreate(t *testing.T) {
	ts := setupTestServer(t)

	listResp := ts.api.Get("/api/v1/tags")
	require.Equal(t, http.StatusOK, listResp.Code)

	var list ListTagsResponse
	require.NoError(t, json.Unmarshal(listResp.Body.Bytes(), &list))
	require.Len(t, list.Tags, 5)
	assert.Equal(t, "Funny", list.Tags[0].Label)

	createResp := ts.api.Post("/api/v1/tags", map[string]any{
		"label": "Foodie",
		"color": "#AAAAAA",
	})
	require.Equal(t, http.StatusCreated, createResp.Code, createResp.Body.String())

	// New tags append to the end of the catalogue.
	listResp = ts.api.Get("/api/v1/tags")
	require.NoError(t, json.Unmarshal(listResp.Body.Bytes(), &list))
	require.Len(t, list.Tags, 6)
	assert.Equal(t, "Foodie", list.Tags[5].Label)
}

func TestCreateTag_RejectsBadColor(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/tags", map[string]any{
		"label": "Broken",
		"color": "reddish",
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestGetData_FullSnapshot(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/data")
	require.Equal(t, http.StatusOK, resp.Code)

	var body DataResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Len(t, body.Candidates, 2)
	assert.Len(t, body.Tags, 5)
	assert.NotNil(t, body.Notes)
	assert.NotNil(t, body.Interactions)
}

func TestResetData_RequiresConfirmation(t *testing.T) {
	ts := setupTestServer(t)

	assert.Equal(t, http.StatusBadRequest, ts.api.Delete("/api/v1/data").Code)

	// Board untouched.
	var list ListCandidatesResponse
	listResp := ts.api.Get("/api/v1/candidates")
	require.NoError(t, json.Unmarshal(listResp.Body.Bytes(), &list))
	assert.Len(t, list.Candidates, 2)
}

func TestResetData_Confirmed(t *testing.T) {
	ts := setupTestServer(t)

	require.Equal(t, http.StatusCreated, ts.api.Post("/api/v1/candidates", map[string]any{
		"name":   "Doomed",
		"status": "new",
	}).Code)

	resp := ts.api.Delete("/api/v1/data?confirm=true")
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var body DataResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Len(t, body.Candidates, 2)
	assert.Empty(t, body.Notes)
}

func TestSearchCandidates(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/search?q=hiking")
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var result search.Result
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	require.Equal(t, uint64(1), result.Total)
	assert.Equal(t, "c1", result.Hits[0].ID)
}

func TestSearchCandidates_ReflectsMutations(t *testing.T) {
	ts := setupTestServer(t)

	createResp := ts.api.Post("/api/v1/candidates", map[string]any{
		"name":   "Quentin Quillfeather",
		"status": "new",
	})
	require.Equal(t, http.StatusCreated, createResp.Code)

	resp := ts.api.Get("/api/v1/search?q=Quillfeather")
	require.Equal(t, http.StatusOK, resp.Code)

	var result search.Result
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	assert.Equal(t, uint64(1), result.Total)

	// Deleting removes the hit.
	var created CandidateResponse
	require.NoError(t, json.Unmarshal(createResp.Body.Bytes(), &created))
	require.Equal(t, http.StatusOK, ts.api.Delete("/api/v1/candidates/"+created.ID).Code)

	resp = ts.api.Get("/api/v1/search?q=Quillfeather")
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	assert.Equal(t, uint64(0), result.Total)
}

func TestExportJSON_Download(t *testing.T) {
	ts := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/export/json", nil)
	rec := httptest.NewRecorder()
	ts.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "matchboard-export-")

	var got DataResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got.Candidates, 2)
}

func TestExportPDF_Download(t *testing.T) {
	ts := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/export/pdf", nil)
	rec := httptest.NewRecorder()
	ts.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "matchboard-roster-")
	assert.Equal(t, "%PDF", rec.Body.String()[:4])
}

func TestMutationRateLimit(t *testing.T) {
	adapter, err := store.OpenAdapter(filepath.Join(t.TempDir(), "test.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = adapter.Close() })

	st := store.New(adapter, nil, nil)
	cfg := &config.Config{
		Server: config.ServerConfig{
			Name:           "Matchboard Test",
			AllowedOrigins: []string{"http://localhost:5173"},
			MutationRPS:    1,
			MutationBurst:  2,
		},
	}

	idx, err := search.NewIndex(search.Options{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = idx.Close() })

	s := NewServer(cfg, st, idx, slog.New(slog.DiscardHandler))
	t.Cleanup(s.Close)

	send := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/tags", nil)
		req.RemoteAddr = "10.0.0.1:55555"
		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, req)
		return rec.Code
	}

	// Burst of 2 allowed through the limiter (they fail validation
	// later, which is fine, we only care about the 429 boundary).
	assert.NotEqual(t, http.StatusTooManyRequests, send())
	assert.NotEqual(t, http.StatusTooManyRequests, send())
	assert.Equal(t, http.StatusTooManyRequests, send())

	// Reads are never throttled.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tags", nil)
	req.RemoteAddr = "10.0.0.1:55556"
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
