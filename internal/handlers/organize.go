package handlers

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"go-docstudio/internal/pdf"
)

var validAngles = map[int]bool{
	90: true, 180: true, 270: true,
	-90: true, -180: true, -270: true,
}

// MergePDFs godoc
// @Summary      Merge PDF files
// @Description  Merges two or more uploaded PDFs into a single document
// @Tags         organize
// @Accept       multipart/form-data
// @Produce      application/pdf
// @Param        files  formData  file  true  "PDF files (2 or more)"
// @Success      200  {file}    file               "Merged PDF"
// @Failure      400  {object}  map[string]string  "Validation error"
// @Failure      500  {object}  map[string]string  "Processing error"
// @Router       /api/merge [post]
func (h *APIHandler) MergePDFs(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		h.fail(w, err)
		return
	}
	if len(r.MultipartForm.File["files"]) < 2 {
		h.fail(w, badRequest("At least 2 PDF files required"))
		return
	}
	staged, cleanup, err := h.stageAll(r, pdfExts, func(name string) string {
		return fmt.Sprintf("File %s is not a PDF", name)
	})
	if err != nil {
		h.fail(w, err)
		return
	}
	defer cleanup()

	outputPath := h.Store.Allocate("merged", ".pdf")
	if err := pdf.Merge(staged, outputPath); err != nil {
		h.Store.Remove(outputPath)
		h.fail(w, fmt.Errorf("merge documents: %w", err))
		return
	}
	h.sendArtifact(w, r, outputPath, "application/pdf", "")
}

// SplitPDF godoc
// @Summary      Split a PDF
// @Description  Extracts the first page matched by the pages range expression as a single-page document
// @Tags         organize
// @Accept       multipart/form-data
// @Produce      application/pdf
// @Param        file   formData  file    true   "PDF file"
// @Param        pages  formData  string  false  "Page range, e.g. 1-3,5,7-9 (empty selects all)"
// @Success      200  {file}    file               "Single-page PDF"
// @Failure      400  {object}  map[string]string  "Validation error"
// @Failure      500  {object}  map[string]string  "Processing error"
// @Router       /api/split [post]
func (h *APIHandler) SplitPDF(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		h.fail(w, err)
		return
	}
	pagesExpr := r.FormValue("pages")

	h.runFileOp(w, r, fileOp{
		kind:        "split",
		ext:         ".pdf",
		contentType: "application/pdf",
		transform: func(inputPath, outputPath string) error {
			pageCount, err := pdf.PageCount(inputPath)
			if err != nil {
				return fmt.Errorf("read document: %w", err)
			}
			indices, err := pdf.ParsePageRange(pagesExpr, pageCount)
			if err != nil {
				return badRequest("Invalid page range: %v", err)
			}
			if len(indices) == 0 {
				return badRequest("No valid pages to split")
			}
			// First selected page only; zipping every page is out of scope.
			return pdf.Trim(inputPath, outputPath, pdf.PageSelection(indices[:1]))
		},
	})
}

// CompressPDF godoc
// @Summary      Compress a PDF
// @Description  Rewrites the document through the codec optimizer and reports size headers
// @Tags         organize
// @Accept       multipart/form-data
// @Produce      application/pdf
// @Param        file     formData  file    true   "PDF file"
// @Param        quality  formData  string  false  "Compression tier hint (accepted, single profile)"
// @Success      200  {file}    file               "Compressed PDF"
// @Failure      400  {object}  map[string]string  "Validation error"
// @Failure      500  {object}  map[string]string  "Processing error"
// @Router       /api/compress [post]
func (h *APIHandler) CompressPDF(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		h.fail(w, err)
		return
	}
	// quality is accepted for API compatibility; the optimizer has a
	// single profile. TODO: map low/medium/high onto image downsampling
	// once the intended tiers are decided.
	_ = formValue(r, "quality", "medium")

	h.runFileOp(w, r, fileOp{
		kind:        "compressed",
		ext:         ".pdf",
		contentType: "application/pdf",
		transform:   pdf.Optimize,
		after: func(w http.ResponseWriter, inputPath, outputPath string) {
			originalInfo, err := os.Stat(inputPath)
			if err != nil || originalInfo.Size() == 0 {
				return
			}
			compressedInfo, err := os.Stat(outputPath)
			if err != nil {
				return
			}
			ratio := (1 - float64(compressedInfo.Size())/float64(originalInfo.Size())) * 100
			w.Header().Set("X-Original-Size", strconv.FormatInt(originalInfo.Size(), 10))
			w.Header().Set("X-Compressed-Size", strconv.FormatInt(compressedInfo.Size(), 10))
			w.Header().Set("X-Compression-Ratio", fmt.Sprintf("%.1f%%", ratio))
		},
	})
}

// RotatePDF godoc
// @Summary      Rotate PDF pages
// @Description  Rotates all pages or a page range by a multiple of 90 degrees
// @Tags         organize
// @Accept       multipart/form-data
// @Produce      application/pdf
// @Param        file   formData  file    true   "PDF file"
// @Param        angle  formData  int     false  "Rotation angle: 90, 180, 270 or negatives (default 90)"
// @Param        pages  formData  string  false  "Page range or \"all\" (default all)"
// @Success      200  {file}    file               "Rotated PDF"
// @Failure      400  {object}  map[string]string  "Validation error"
// @Failure      500  {object}  map[string]string  "Processing error"
// @Router       /api/rotate [post]
func (h *APIHandler) RotatePDF(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		h.fail(w, err)
		return
	}
	angle, err := strconv.Atoi(formValue(r, "angle", "90"))
	if err != nil || !validAngles[angle] {
		h.fail(w, badRequest("Angle must be 90, 180, or 270 degrees"))
		return
	}
	pagesExpr := formValue(r, "pages", "all")

	h.runFileOp(w, r, fileOp{
		kind:        "rotated",
		ext:         ".pdf",
		contentType: "application/pdf",
		transform: func(inputPath, outputPath string) error {
			var selection []string
			if !strings.EqualFold(pagesExpr, "all") {
				pageCount, err := pdf.PageCount(inputPath)
				if err != nil {
					return fmt.Errorf("read document: %w", err)
				}
				indices, err := pdf.ParsePageRange(pagesExpr, pageCount)
				if err != nil {
					return badRequest("Invalid page range: %v", err)
				}
				if len(indices) == 0 {
					return badRequest("No valid pages to rotate")
				}
				selection = pdf.PageSelection(indices)
			}
			return pdf.Rotate(inputPath, outputPath, angle, selection)
		},
	})
}
