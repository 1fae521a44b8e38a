package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"go-docstudio/internal/retention"
	"go-docstudio/internal/storage"
)

func newTestHandler(t *testing.T) *APIHandler {
	t.Helper()
	store, err := storage.New(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	return NewAPIHandler(store, retention.NewScheduler(), time.Hour)
}

type upload struct {
	field   string
	name    string
	content string
}

func buildMultipart(t *testing.T, uploads []upload, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, u := range uploads {
		part, err := w.CreateFormFile(u.field, u.name)
		if err != nil {
			t.Fatalf("Failed to create form file: %v", err)
		}
		if _, err := part.Write([]byte(u.content)); err != nil {
			t.Fatalf("Failed to write form file: %v", err)
		}
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("Failed to write field: %v", err)
		}
	}
	w.Close()
	return &buf, w.FormDataContentType()
}

func post(t *testing.T, handler http.HandlerFunc, uploads []upload, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := buildMultipart(t, uploads, fields)
	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func detail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode error body: %v", err)
	}
	return body["detail"]
}

func assertZoneEmpty(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read zone %s: %v", dir, err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected empty zone %s, found %d entries", dir, len(entries))
	}
}

func TestHealth(t *testing.T) {
	h := newTestHandler(t)
	req := httptest.NewRequest("GET", "/api/health", nil)
	rec := httptest.NewRecorder()
	h.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body["status"] != "healthy" {
		t.Errorf("Expected healthy status, got %q", body["status"])
	}
}

func TestMergeRequiresTwoFiles(t *testing.T) {
	h := newTestHandler(t)
	rec := post(t, h.MergePDFs, []upload{
		{"files", "one.pdf", "%PDF-1.4"},
	}, nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}
	if got := detail(t, rec); got != "At least 2 PDF files required" {
		t.Errorf("Unexpected detail: %q", got)
	}
	assertZoneEmpty(t, h.Store.IncomingDir)
}

func TestMergeRejectsNonPDFBeforeStaging(t *testing.T) {
	h := newTestHandler(t)
	rec := post(t, h.MergePDFs, []upload{
		{"files", "a.pdf", "%PDF-1.4"},
		{"files", "b.txt", "plain text"},
	}, nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}
	if got := detail(t, rec); got != "File b.txt is not a PDF" {
		t.Errorf("Unexpected detail: %q", got)
	}
	// Extension check runs before any staging: nothing may be on disk.
	assertZoneEmpty(t, h.Store.IncomingDir)
}

func TestRotateRejectsInvalidAngle(t *testing.T) {
	h := newTestHandler(t)
	for _, angle := range []string{"45", "0", "360", "ninety"} {
		rec := post(t, h.RotatePDF, []upload{
			{"file", "doc.pdf", "%PDF-1.4"},
		}, map[string]string{"angle": angle})

		if rec.Code != http.StatusBadRequest {
			t.Errorf("angle %q: expected 400, got %d", angle, rec.Code)
		}
	}
	// Rejected before any file is written.
	assertZoneEmpty(t, h.Store.IncomingDir)
}

func TestProtectRejectsShortPassword(t *testing.T) {
	h := newTestHandler(t)
	rec := post(t, h.ProtectPDF, []upload{
		{"file", "doc.pdf", "%PDF-1.4"},
	}, map[string]string{"password": "abc"})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}
	if got := detail(t, rec); got != "Password must be at least 4 characters" {
		t.Errorf("Unexpected detail: %q", got)
	}
	assertZoneEmpty(t, h.Store.IncomingDir)
}

func TestUnlockRequiresPassword(t *testing.T) {
	h := newTestHandler(t)
	rec := post(t, h.UnlockPDF, []upload{
		{"file", "doc.pdf", "%PDF-1.4"},
	}, nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}
}

func TestUploadMustBePDF(t *testing.T) {
	h := newTestHandler(t)
	rec := post(t, h.SplitPDF, []upload{
		{"file", "doc.txt", "%PDF-1.4"},
	}, nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}
	if got := detail(t, rec); got != "File must be a PDF" {
		t.Errorf("Unexpected detail: %q", got)
	}
}

func TestUploadMagicHeaderChecked(t *testing.T) {
	h := newTestHandler(t)
	rec := post(t, h.SplitPDF, []upload{
		{"file", "doc.pdf", "MZ not a pdf at all"},
	}, nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}
	if got := detail(t, rec); got != "Uploaded file is not a valid PDF" {
		t.Errorf("Unexpected detail: %q", got)
	}
	assertZoneEmpty(t, h.Store.IncomingDir)
}

func TestStagedInputRemovedOnCodecFailure(t *testing.T) {
	h := newTestHandler(t)
	// Passes the magic check, then fails inside the codec.
	rec := post(t, h.SplitPDF, []upload{
		{"file", "corrupt.pdf", "%PDF-1.4 but nothing else"},
	}, nil)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("Expected 500 for corrupt input, got %d", rec.Code)
	}
	assertZoneEmpty(t, h.Store.IncomingDir)
	assertZoneEmpty(t, h.Store.GeneratedDir)
}

func TestPDFToImagesRejectsBadFormat(t *testing.T) {
	h := newTestHandler(t)
	rec := post(t, h.PDFToImages, []upload{
		{"file", "doc.pdf", "%PDF-1.4"},
	}, map[string]string{"format": "tiff"})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}
	assertZoneEmpty(t, h.Store.IncomingDir)
}

func TestPDFToImagesRejectsBadDPI(t *testing.T) {
	h := newTestHandler(t)
	for _, dpi := range []string{"10", "10000", "lots"} {
		rec := post(t, h.PDFToImages, []upload{
			{"file", "doc.pdf", "%PDF-1.4"},
		}, map[string]string{"dpi": dpi})

		if rec.Code != http.StatusBadRequest {
			t.Errorf("dpi %q: expected 400, got %d", dpi, rec.Code)
		}
	}
}

func TestImagesToPDFRejectsNonImage(t *testing.T) {
	h := newTestHandler(t)
	rec := post(t, h.ImagesToPDF, []upload{
		{"files", "a.png", "fake png"},
		{"files", "b.exe", "fake exe"},
	}, nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}
	if got := detail(t, rec); got != "File b.exe is not a valid image" {
		t.Errorf("Unexpected detail: %q", got)
	}
	assertZoneEmpty(t, h.Store.IncomingDir)
}

func TestImagesToPDFRejectsEmptyUpload(t *testing.T) {
	h := newTestHandler(t)
	rec := post(t, h.ImagesToPDF, nil, map[string]string{"unused": "x"})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}
	if got := detail(t, rec); got != "No valid images provided" {
		t.Errorf("Unexpected detail: %q", got)
	}
}

func TestWatermarkRejectsBadOpacity(t *testing.T) {
	h := newTestHandler(t)
	for _, opacity := range []string{"0", "1.5", "-0.2", "opaque"} {
		rec := post(t, h.AddWatermark, []upload{
			{"file", "doc.pdf", "%PDF-1.4"},
		}, map[string]string{"opacity": opacity})

		if rec.Code != http.StatusBadRequest {
			t.Errorf("opacity %q: expected 400, got %d", opacity, rec.Code)
		}
	}
}

func TestAddPageNumbersRejectsNegativeStart(t *testing.T) {
	h := newTestHandler(t)
	rec := post(t, h.AddPageNumbers, []upload{
		{"file", "doc.pdf", "%PDF-1.4"},
	}, map[string]string{"start_from": "-3"})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}
}

func TestAnchorFor(t *testing.T) {
	tests := []struct {
		position string
		want     string
	}{
		{"center", "c"},
		{"", "c"},
		{"bottom-center", "bc"},
		{"bottom-left", "bl"},
		{"bottom-right", "br"},
		{"top-center", "tc"},
		{"top-left", "tl"},
		{"top-right", "tr"},
		{"bottom", "bl"},
		{"TOP-RIGHT", "tr"},
	}
	for _, tt := range tests {
		if got := anchorFor(tt.position); got != tt.want {
			t.Errorf("anchorFor(%q) = %q, want %q", tt.position, got, tt.want)
		}
	}
}
