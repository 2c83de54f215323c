package api

import (
	"fmt"
	"net/http"
	"time"

	domainerrors "github.com/matchboardapp/matchboard-server/internal/errors"
	"github.com/matchboardapp/matchboard-server/internal/export"
	"github.com/matchboardapp/matchboard-server/internal/http/response"
)

// handleExportJSON streams the full snapshot as a dated JSON download.
func (s *Server) handleExportJSON(w http.ResponseWriter, r *http.Request) {
	data := s.store.Snapshot()

	out, err := export.JSON(data)
	if err != nil {
		response.HandleError(w, domainerrors.Wrap(err, domainerrors.CodeInternal, "Failed to export data"), s.logger)
		return
	}

	serveDownload(w, out, export.JSONFilename(time.Now()), "application/json")
}

// handleExportPDF streams the candidate roster as a dated PDF download.
func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	data := s.store.Snapshot()

	out, err := export.PDF(data, time.Now())
	if err != nil {
		response.HandleError(w, domainerrors.Wrap(err, domainerrors.CodeInternal, "Failed to render report"), s.logger)
		return
	}

	serveDownload(w, out, export.PDFFilename(time.Now()), "application/pdf")
}

func serveDownload(w http.ResponseWriter, body []byte, filename, contentType string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(body)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
