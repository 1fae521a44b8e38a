// Package handlers provides the HTTP handlers for the document
// manipulation API.
//
// Every transformation endpoint follows the same pipeline: validate the
// request shape, stage the upload into the artifact store's incoming
// zone, delegate to the codec, persist the result in the generated zone,
// register it with the retention scheduler, and stream it back. Staged
// input is removed unconditionally when the handler returns; the
// generated artifact belongs to the scheduler from registration on.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"go-docstudio/internal/pdf"
	"go-docstudio/internal/retention"
	"go-docstudio/internal/storage"
)

const (
	maxUploadSize = 50 * 1024 * 1024
	apiVersion    = "1.0.0"
)

var pdfExts = map[string]bool{".pdf": true}

type APIHandler struct {
	Store     *storage.Store
	Retention *retention.Scheduler
	Window    time.Duration
}

func NewAPIHandler(store *storage.Store, sched *retention.Scheduler, window time.Duration) *APIHandler {
	return &APIHandler{Store: store, Retention: sched, Window: window}
}

// httpError carries a response status alongside the message, so
// validation failures surface as 4xx and everything else as 500.
type httpError struct {
	status  int
	message string
}

func (e *httpError) Error() string {
	return e.message
}

func badRequest(format string, args ...any) *httpError {
	return &httpError{status: http.StatusBadRequest, message: fmt.Sprintf(format, args...)}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("handlers: failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"detail": message})
}

// fail maps an error onto the error taxonomy: explicit httpError
// statuses pass through, wrong decryption passwords are client errors,
// anything else is a codec or storage failure.
func (h *APIHandler) fail(w http.ResponseWriter, err error) {
	var herr *httpError
	switch {
	case errors.As(err, &herr):
		writeError(w, herr.status, herr.message)
	case pdf.IsWrongPassword(err):
		writeError(w, http.StatusBadRequest, "Incorrect password")
	default:
		log.Printf("handlers: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func parseForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return badRequest("Invalid multipart form data or file too large")
	}
	return nil
}

// formValue returns a form field, falling back to a default when the
// field is absent or empty.
func formValue(r *http.Request, key, fallback string) string {
	if v := r.FormValue(key); v != "" {
		return v
	}
	return fallback
}

// checkMagic verifies the upload starts with the given magic bytes and
// rewinds it afterwards.
func checkMagic(file multipart.File, magic string) error {
	header := make([]byte, len(magic))
	if _, err := io.ReadFull(file, header); err != nil {
		return badRequest("Failed to read file")
	}
	if string(header) != magic {
		return badRequest("Uploaded file is not a valid PDF")
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewind upload: %w", err)
	}
	return nil
}

// stagePDF validates the single "file" upload (extension plus %PDF-
// magic header) and stages it into the incoming zone. The caller owns
// the returned path.
func (h *APIHandler) stagePDF(r *http.Request) (string, string, error) {
	file, header, err := r.FormFile("file")
	if err != nil {
		return "", "", badRequest("PDF file is required")
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".pdf") {
		return "", "", badRequest("File must be a PDF")
	}
	if err := checkMagic(file, "%PDF-"); err != nil {
		return "", "", err
	}
	path, err := h.Store.Stage(header.Filename, file)
	if err != nil {
		return "", "", err
	}
	return path, header.Filename, nil
}

// stageAll stages every upload in the "files" field. Extensions are
// checked up front so nothing is staged when any file fails. The
// returned cleanup removes everything that was staged.
func (h *APIHandler) stageAll(r *http.Request, allowed map[string]bool, badExt func(name string) string) ([]string, func(), error) {
	headers := r.MultipartForm.File["files"]
	for _, fh := range headers {
		if !allowed[strings.ToLower(filepath.Ext(fh.Filename))] {
			return nil, nil, badRequest("%s", badExt(fh.Filename))
		}
	}

	var staged []string
	cleanup := func() {
		for _, p := range staged {
			h.Store.Remove(p)
		}
	}
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			cleanup()
			return nil, nil, badRequest("Error retrieving file %s", fh.Filename)
		}
		path, err := h.Store.Stage(fh.Filename, f)
		f.Close()
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		staged = append(staged, path)
	}
	return staged, cleanup, nil
}

// fileOp describes one single-document transformation for runFileOp.
type fileOp struct {
	kind         string // artifact name prefix
	ext          string
	contentType  string
	downloadName string // defaults to the artifact's basename
	transform    func(inputPath, outputPath string) error
	after        func(w http.ResponseWriter, inputPath, outputPath string)
}

// runFileOp is the shared pipeline for endpoints taking one document in
// and producing one artifact out: stage, transform, schedule cleanup,
// respond. The staged input is removed on every exit path.
func (h *APIHandler) runFileOp(w http.ResponseWriter, r *http.Request, op fileOp) {
	inputPath, _, err := h.stagePDF(r)
	if err != nil {
		h.fail(w, err)
		return
	}
	defer h.Store.Remove(inputPath)

	outputPath := h.Store.Allocate(op.kind, op.ext)
	if err := op.transform(inputPath, outputPath); err != nil {
		h.Store.Remove(outputPath)
		h.fail(w, err)
		return
	}
	if op.after != nil {
		op.after(w, inputPath, outputPath)
	}
	h.sendArtifact(w, r, outputPath, op.contentType, op.downloadName)
}

// sendArtifact hands the artifact to the retention scheduler and streams
// it back. Registration happens before the body is written; the
// retention window dwarfs any transfer, and a disconnected caller's
// partial artifact is cleaned up the same way.
func (h *APIHandler) sendArtifact(w http.ResponseWriter, r *http.Request, path, contentType, downloadName string) {
	h.Retention.Register(path, h.Window)
	if downloadName == "" {
		downloadName = filepath.Base(path)
	}
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", downloadName))
	w.Header().Set("Content-Type", contentType)
	http.ServeFile(w, r, path)
}

// Health godoc
// @Summary      Health check
// @Tags         status
// @Produce      json
// @Success      200  {object}  map[string]string  "{ status, version }"
// @Router       /api/health [get]
func (h *APIHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy", "version": apiVersion})
}

// Root godoc
// @Summary      Service banner
// @Tags         status
// @Produce      json
// @Success      200  {object}  map[string]string  "{ message, status }"
// @Router       / [get]
func (h *APIHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "go-docstudio API", "status": "running"})
}
