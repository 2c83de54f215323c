package response

import (
	"encoding/json/v2"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/matchboardapp/matchboard-server/internal/errors"
)

func TestError_Generic(t *testing.T) {
	w := httptest.NewRecorder()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	Error(w, http.StatusInternalServerError, "something went wrong", logger)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

	var result Envelope
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, "something went wrong", result.Error)
}

func TestError_NilLogger(t *testing.T) {
	w := httptest.NewRecorder()

	Error(w, http.StatusBadRequest, "bad request", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var result Envelope
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, "bad request", result.Error)
}

func TestTooManyRequests(t *testing.T) {
	w := httptest.NewRecorder()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	TooManyRequests(w, "too many requests", logger)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	var result Envelope
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, "too many requests", result.Error)
}

func TestInternalError(t *testing.T) {
	w := httptest.NewRecorder()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	InternalError(w, "internal server error", logger)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var result Envelope
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, "internal server error", result.Error)
}

func TestHandleError_DomainErrors(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "not found",
			err:            domainerrors.NotFoundf("candidate %s not found", "c1"),
			expectedStatus: http.StatusNotFound,
			expectedError:  "candidate c1 not found",
		},
		{
			name:           "validation",
			err:            domainerrors.Validation("name is required"),
			expectedStatus: http.StatusBadRequest,
			expectedError:  "name is required",
		},
		{
			name:           "internal",
			err:            domainerrors.Internal("persistence failed"),
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "persistence failed",
		},
		{
			name:           "wrapped cause keeps the outer message",
			err:            domainerrors.Wrap(errors.New("disk full"), domainerrors.CodeInternal, "Failed to export data"),
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Failed to export data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			HandleError(w, tt.err, logger)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var result Envelope
			err := json.Unmarshal(w.Body.Bytes(), &result)
			require.NoError(t, err)

			assert.False(t, result.Success)
			assert.Equal(t, tt.expectedError, result.Error)
		})
	}
}

func TestHandleError_UnknownError(t *testing.T) {
	w := httptest.NewRecorder()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	HandleError(w, errors.New("unexpected"), logger)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var result Envelope
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, "internal server error", result.Error)
}

func TestEnvelope_OmitsEmptyError(t *testing.T) {
	data, err := json.Marshal(Envelope{Success: true})
	require.NoError(t, err)

	jsonStr := string(data)
	assert.Contains(t, jsonStr, `"success":true`)
	assert.NotContains(t, jsonStr, `"error":`)
}
