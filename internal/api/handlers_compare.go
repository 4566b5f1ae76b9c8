package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/dgallion1/resumescore/internal/compare"
	"github.com/dgallion1/resumescore/internal/doctree"
	"github.com/dgallion1/resumescore/internal/feedback"
	"github.com/google/uuid"
)

const kindTooLarge = "too_large"

var errTooLarge = errors.New("file too large")

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	// Two documents plus 1MB for form overhead.
	r.Body = http.MaxBytesReader(w, r.Body, 2*s.cfg.MaxUploadBytes+1024*1024)

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}
	if format != "json" && format != "markdown" && format != "html" {
		jsonError(w, fmt.Sprintf("unknown format %q (want json, markdown or html)", format), "bad_request", http.StatusBadRequest)
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.fail(w, r, kindTooLarge, "upload exceeds max size", http.StatusRequestEntityTooLarge)
			return
		}
		s.fail(w, r, compare.KindMissingInput, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	resume, err := s.readDocument(r, "resume")
	if err != nil {
		s.fail(w, r, kindTooLarge, err.Error(), http.StatusRequestEntityTooLarge)
		return
	}
	job, err := s.readDocument(r, "job_description")
	if err != nil {
		s.fail(w, r, kindTooLarge, err.Error(), http.StatusRequestEntityTooLarge)
		return
	}

	id := uuid.NewString()
	start := time.Now()
	report, err := s.comparer.Compare(resume, job)
	if err != nil {
		kind := compare.ErrorKind(err)
		s.fail(w, r, kind, err.Error(), statusForKind(kind))
		return
	}
	elapsed := time.Since(start)
	s.stats.Record(elapsed)
	s.log.Info("comparison completed",
		"comparison_id", id,
		"resume", resume.Filename,
		"job_description", job.Filename,
		"score", report.Score,
		"missing_keywords", len(report.MissingKeywords),
		"duration_ms", elapsed.Milliseconds(),
	)

	w.Header().Set("X-Comparison-ID", id)
	switch format {
	case "markdown":
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		io.WriteString(w, feedback.Markdown(report))
	case "html":
		out, err := feedback.HTML(report)
		if err != nil {
			s.fail(w, r, compare.KindInternal, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		io.WriteString(w, out)
	default:
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(report)
	}
}

// readDocument returns nil when the field was not uploaded.
func (s *Server) readDocument(r *http.Request, field string) (*doctree.Document, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, nil
	}
	defer file.Close()
	return s.readUpload(file, header)
}

func (s *Server) readUpload(file multipart.File, header *multipart.FileHeader) (*doctree.Document, error) {
	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", header.Filename, err)
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", errTooLarge, header.Filename, s.cfg.MaxUploadBytes)
	}
	return &doctree.Document{Filename: sanitizeFilename(header.Filename), Content: data}, nil
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, kind, msg string, code int) {
	s.stats.RecordFailure(kind)
	s.log.Warn("comparison failed", "kind", kind, "error", msg, "path", r.URL.Path)
	jsonError(w, msg, kind, code)
}

func statusForKind(kind string) int {
	switch kind {
	case compare.KindMissingInput:
		return http.StatusBadRequest
	case compare.KindUnsupportedFormat:
		return http.StatusUnsupportedMediaType
	case compare.KindCorruptDocument:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func jsonError(w http.ResponseWriter, msg, kind string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg, "kind": kind})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
