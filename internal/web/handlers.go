package web

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/yankh764/cookies-analyzer/internal/core"
	"github.com/yankh764/cookies-analyzer/internal/render"
)

// ErrInvalidLogName is returned for log names that are not plain file names.
var ErrInvalidLogName = errors.New("invalid log name")

// uploadName labels reports for logs sent in the request body.
const uploadName = "upload"

// handleHealth reports that the server is up.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

// handleLogMostActive answers GET /api/logs/{name}/most-active?date=YYYY-MM-DD
// for a log in the configured directory.
func (s *Server) handleLogMostActive(w http.ResponseWriter, r *http.Request) {
	name, err := logName(chi.URLParam(r, "name"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	date, err := core.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	report, err := s.service.AnalyzeFile(r.Context(), filepath.Join(s.cfg.Logs.Dir, name), date)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	// Never expose the server-side directory
	report.File = name
	respondReport(w, report)
}

// handleUploadMostActive answers POST /api/most-active?date=YYYY-MM-DD with
// the log as the request body.
func (s *Server) handleUploadMostActive(w http.ResponseWriter, r *http.Request) {
	date, err := core.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	body := http.MaxBytesReader(w, r.Body, s.cfg.Upload.MaxFileSize)
	data, err := io.ReadAll(body)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	report, err := s.service.AnalyzeReader(r.Context(), uploadName, bytes.NewReader(data), date)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	respondReport(w, report)
}

// logName decodes a {name} route parameter and rejects anything that could
// leave the logs directory.
func logName(raw string) (string, error) {
	name, err := url.PathUnescape(raw)
	if err != nil {
		return "", ErrInvalidLogName
	}
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", ErrInvalidLogName
	}
	return name, nil
}

// respondReport writes report as JSON.
func respondReport(w http.ResponseWriter, report render.Report) {
	w.Header().Set("Content-Type", "application/json")
	w.Write(render.AppendJSON(nil, report))
}
